package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

const identityToolkit = "https://identitytoolkit.googleapis.com/v1/"

// placeholderKeys are API keys shipped in sample configuration files.
var placeholderKeys = []string{"your_firebase_api_key", "PLACEHOLDER_API_KEY"}

// Configured reports whether apiKey looks like a real key.
func Configured(apiKey string) bool {
	if strings.TrimSpace(apiKey) == "" {
		return false
	}
	for _, p := range placeholderKeys {
		if apiKey == p {
			return false
		}
	}
	return true
}

// Firebase is a Provider backed by Firebase Authentication.
type Firebase struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

// NewFirebase returns a provider for the project of apiKey.
func NewFirebase(apiKey string) *Firebase {
	return &Firebase{
		apiKey:   apiKey,
		endpoint: identityToolkit,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// authResponse is the common payload of signInWithPassword, signUp and update.
type authResponse struct {
	LocalID string `json:"localId"`
	Email   string `json:"email"`
	IDToken string `json:"idToken"`
}

// SignIn implements Provider.
func (f *Firebase) SignIn(ctx context.Context, email, password string) (Identity, error) {
	var resp authResponse
	err := f.call(ctx, "signInWithPassword", map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}, &resp)
	if err != nil {
		return Identity{}, err
	}
	return identityOf(resp), nil
}

// SignUp implements Provider.
func (f *Firebase) SignUp(ctx context.Context, email, password string) (Identity, error) {
	var resp authResponse
	err := f.call(ctx, "signUp", map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}, &resp)
	if err != nil {
		return Identity{}, err
	}
	return identityOf(resp), nil
}

// ChangePassword implements Provider. The account signs in again with
// current to obtain a fresh token before the update. The update revokes
// that token, so the returned identity carries the one issued with it.
func (f *Firebase) ChangePassword(ctx context.Context, id Identity, current, next string) (Identity, error) {
	if id.Email == "" {
		return Identity{}, ErrNotSignedIn
	}
	fresh, err := f.SignIn(ctx, id.Email, current)
	if err != nil {
		return Identity{}, fmt.Errorf("could not confirm current password: %w", err)
	}
	var resp authResponse
	if err := f.call(ctx, "update", map[string]any{
		"idToken":           fresh.IDToken,
		"password":          next,
		"returnSecureToken": true,
	}, &resp); err != nil {
		return Identity{}, err
	}
	return identityOf(resp), nil
}

// call posts req to the accounts:<method> endpoint and decodes the answer into resp.
func (f *Firebase) call(ctx context.Context, method string, req, resp any) error {
	if !Configured(f.apiKey) {
		return ErrNotConfigured
	}
	body, err := json.Marshal(req)
	if err != nil {
		return err
	}
	addr := fmt.Sprintf("%saccounts:%s?key=%s", f.endpoint, method, url.QueryEscape(f.apiKey))
	hreq, err := http.NewRequestWithContext(ctx, http.MethodPost, addr, bytes.NewReader(body))
	if err != nil {
		return err
	}
	hreq.Header.Set("Content-Type", "application/json")

	hresp, err := f.client.Do(hreq)
	if err != nil {
		return fmt.Errorf("cannot reach identity provider: %w", err)
	}
	defer hresp.Body.Close()
	data, err := io.ReadAll(hresp.Body)
	if err != nil {
		return fmt.Errorf("cannot read identity provider response: %w", err)
	}
	logrus.WithFields(logrus.Fields{"method": method, "status": hresp.StatusCode}).Debug("identity toolkit call")

	if hresp.StatusCode != http.StatusOK {
		return decodeError(data, hresp.Status)
	}
	return json.Unmarshal(data, resp)
}

// decodeError maps an Identity Toolkit error payload
//
//	{"error": {"code": 400, "message": "INVALID_PASSWORD", "errors": [...]}}
//
// to the package errors. The message may carry details after " : ".
func decodeError(data []byte, status string) error {
	var obj any
	if err := json.Unmarshal(data, &obj); err != nil {
		return &ProviderError{Code: status, Message: strings.TrimSpace(string(data))}
	}
	jval, err := jsonpath.Get("$.error.message", obj)
	if err != nil {
		return &ProviderError{Code: status}
	}
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	msg, _ := jval.(string)
	code, detail, _ := strings.Cut(msg, " : ")
	code = strings.TrimSpace(code)

	switch code {
	case "EMAIL_NOT_FOUND", "USER_DISABLED":
		return fmt.Errorf("%w: %s", ErrUnknownAccount, code)
	case "INVALID_PASSWORD", "INVALID_LOGIN_CREDENTIALS":
		return fmt.Errorf("%w: %s", ErrWrongPassword, code)
	case "INVALID_EMAIL", "MISSING_EMAIL":
		return fmt.Errorf("%w: %s", ErrInvalidEmail, code)
	case "TOO_MANY_ATTEMPTS_TRY_LATER":
		return fmt.Errorf("%w: %s", ErrTooManyRequests, code)
	case "API_KEY_INVALID":
		return fmt.Errorf("%w: %s", ErrNotConfigured, code)
	case "":
		return &ProviderError{Code: status}
	}
	return &ProviderError{Code: code, Message: detail}
}

// identityOf reads the identity from the id token claims, falling back to
// the response fields when the token cannot be decoded.
func identityOf(resp authResponse) Identity {
	id := Identity{UID: resp.LocalID, Email: resp.Email, IDToken: resp.IDToken}
	if resp.IDToken == "" {
		return id
	}
	// The token is only read here, never trusted to authorise anything.
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(resp.IDToken, claims); err != nil {
		logrus.WithError(err).Debug("could not decode id token")
		return id
	}
	if uid, ok := claims["user_id"].(string); ok && uid != "" {
		id.UID = uid
	}
	if email, ok := claims["email"].(string); ok && email != "" {
		id.Email = email
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		id.Expires = exp.Time
	}
	return id
}
