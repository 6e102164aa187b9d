package config

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
)

func env(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestFromEnv(t *testing.T) {
	testCases := []struct {
		name string
		vars map[string]string
		want Config
	}{
		{
			name: "defaults",
			vars: map[string]string{"BFLOW_DATA_DIR": "/data"},
			want: Config{
				Auth:      FirebaseAuth,
				Store:     FileStore,
				DataDir:   "/data",
				RedisAddr: "localhost:6379",
				Currency:  "INR",
				LogLevel:  logrus.WarnLevel,
			},
		},
		{
			name: "everything",
			vars: map[string]string{
				"FIREBASE_API_KEY":     "key",
				"FIREBASE_AUTH_DOMAIN": "app.firebaseapp.com",
				"FIREBASE_PROJECT_ID":  "app",
				"FIREBASE_APP_ID":      "1:2:web:3",
				"GEMINI_API_KEY":       "gem",
				"BFLOW_AUTH":           "Local",
				"BFLOW_STORE":          "redis",
				"BFLOW_DATA_DIR":       "/data",
				"REDIS_ADDR":           "redis:6379",
				"REDIS_PASS":           "secret",
				"REDIS_DB":             "3",
				"BFLOW_CURRENCY":       "usd",
				"BFLOW_LOG_LEVEL":      "debug",
			},
			want: Config{
				FirebaseAPIKey:     "key",
				FirebaseAuthDomain: "app.firebaseapp.com",
				FirebaseProjectID:  "app",
				FirebaseAppID:      "1:2:web:3",
				GeminiAPIKey:       "gem",
				Auth:               LocalAuth,
				Store:              RedisStore,
				DataDir:            "/data",
				RedisAddr:          "redis:6379",
				RedisPass:          "secret",
				RedisDB:            3,
				Currency:           "USD",
				LogLevel:           logrus.DebugLevel,
			},
		},
		{
			name: "api key fallback",
			vars: map[string]string{"API_KEY": "gem", "BFLOW_DATA_DIR": "/data", "BFLOW_STORE": "  "},
			want: Config{
				GeminiAPIKey: "gem",
				Auth:         FirebaseAuth,
				Store:        FileStore,
				DataDir:      "/data",
				RedisAddr:    "localhost:6379",
				Currency:     "INR",
				LogLevel:     logrus.WarnLevel,
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FromEnv(env(tc.vars))
			if err != nil {
				t.Fatalf("FromEnv() error = %v", err)
			}
			if diff := cmp.Diff(tc.want, *got); diff != "" {
				t.Errorf("FromEnv() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFromEnv_Invalid(t *testing.T) {
	testCases := []map[string]string{
		{"BFLOW_AUTH": "ldap"},
		{"BFLOW_STORE": "postgres"},
		{"REDIS_DB": "two"},
		{"REDIS_DB": "-1"},
		{"BFLOW_LOG_LEVEL": "loud"},
	}
	for _, vars := range testCases {
		if _, err := FromEnv(env(vars)); err == nil {
			t.Errorf("FromEnv(%v) succeeded, want an error", vars)
		}
	}
}

func TestSessionPath(t *testing.T) {
	c := Config{DataDir: "/data"}
	if got, want := c.SessionPath(), filepath.Join("/data", "session.json"); got != want {
		t.Errorf("SessionPath() = %q, want %q", got, want)
	}
}

func TestFromEnv_DefaultDataDir(t *testing.T) {
	c, err := FromEnv(env(nil))
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(c.DataDir) != ".bflow" {
		t.Errorf("DataDir = %q, want a .bflow directory", c.DataDir)
	}
}
