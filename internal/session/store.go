package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"time"

	apperrors "hackpass/pkg/app_errors"

	"github.com/redis/go-redis/v9"
)

// CookieName 登入 session 的 cookie 名稱
const CookieName = "hackpass_session"

const keyPrefix = "session:"

// Identity 每個請求建立一次的登入身分，is_admin 決定能否使用特權操作
type Identity struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	IsAdmin bool   `json:"is_admin"`
}

type Store interface {
	Create(ctx context.Context, identity *Identity) (string, error)
	Get(ctx context.Context, token string) (*Identity, error)
	Delete(ctx context.Context, token string) error
}

// RedisStore 不透明 token 對應到 Redis 裡的 identity JSON，過期由 TTL 處理
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) Store {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (s *RedisStore) Create(ctx context.Context, identity *Identity) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(identity)
	if err != nil {
		return "", err
	}

	err = s.rdb.Set(ctx, keyPrefix+token, payload, s.ttl).Err()
	if err != nil {
		return "", err
	}

	return token, nil
}

func (s *RedisStore) Get(ctx context.Context, token string) (*Identity, error) {
	payload, err := s.rdb.Get(ctx, keyPrefix+token).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, apperrors.ErrSessionNotFound
		}
		return nil, err
	}

	var identity Identity
	if err := json.Unmarshal(payload, &identity); err != nil {
		return nil, err
	}

	return &identity, nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, keyPrefix+token).Err()
}

func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
