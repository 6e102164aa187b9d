package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// RedisStore keeps one redis key per collection.
type RedisStore struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisStore returns a store over rdb. Keys are the collection names
// preceded by prefix, which may be empty.
func NewRedisStore(rdb *redis.Client, prefix string) *RedisStore {
	return &RedisStore{rdb: rdb, prefix: prefix}
}

// DialRedis connects to the redis server at addr and checks it answers.
func DialRedis(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, errors.Join(fmt.Errorf("could not reach redis at %s: %w", addr, err), rdb.Close())
	}
	return rdb, nil
}

func (r *RedisStore) key(collection string) string { return r.prefix + collection }

// Load implements Store.
func (r *RedisStore) Load(ctx context.Context, collection string, v any) error {
	val, err := r.rdb.Get(ctx, r.key(collection)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not read collection %q: %w", collection, err)
	}
	if err := json.Unmarshal(val, v); err != nil {
		return fmt.Errorf("could not decode collection %q: %w", collection, err)
	}
	return nil
}

// Save implements Store. Collections never expire.
func (r *RedisStore) Save(ctx context.Context, collection string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("could not encode collection %q: %w", collection, err)
	}
	if err := r.rdb.Set(ctx, r.key(collection), b, 0).Err(); err != nil {
		return fmt.Errorf("could not save collection %q: %w", collection, err)
	}
	logrus.WithFields(logrus.Fields{"key": r.key(collection), "bytes": len(b)}).Debug("collection saved")
	return nil
}

// Drop deletes every collection of the store.
func (r *RedisStore) Drop(ctx context.Context) error {
	keys := make([]string, len(Collections))
	for i, c := range Collections {
		keys[i] = r.key(c)
	}
	return r.rdb.Del(ctx, keys...).Err()
}
