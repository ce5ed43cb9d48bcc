package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/khabaroff/flabef-storefront/src/models"
	"github.com/khabaroff/flabef-storefront/src/repositories"
	"github.com/redis/go-redis/v9"
)

// SessionCookieName is the cookie carrying the signed session reference
const SessionCookieName = "session_token"

// errSessionNotFound is returned by stores for missing or expired sessions
var errSessionNotFound = errors.New("session not found")

// Session is the server-side state of a signed-in admin
type Session struct {
	ID        string      `json:"id"`
	AdminID   uuid.UUID   `json:"adminId"`
	Email     string      `json:"email"`
	Role      models.Role `json:"role"`
	FullName  string      `json:"fullName"`
	CreatedAt time.Time   `json:"createdAt"`
	ExpiresAt time.Time   `json:"expiresAt"`
}

// HasRole reports whether the session role is one of roles
func (s *Session) HasRole(roles ...models.Role) bool {
	for _, r := range roles {
		if s.Role == r {
			return true
		}
	}
	return false
}

// SessionStore persists sessions with a fixed time-to-live
type SessionStore interface {
	Save(ctx context.Context, session *Session, ttl time.Duration) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

// SessionClaims contains JWT claims; the token only references the server-side session
type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// SessionService creates, resolves and destroys admin sessions
type SessionService struct {
	store    SessionStore
	accounts repositories.AdminRepository
	secret   []byte
	ttl      time.Duration
}

// NewSessionService creates a new session service; accounts is consulted on
// every resolve so role changes, deactivation and deletion apply at once
func NewSessionService(store SessionStore, accounts repositories.AdminRepository, secret string, ttl time.Duration) *SessionService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionService{store: store, accounts: accounts, secret: []byte(secret), ttl: ttl}
}

// TTL returns the fixed session lifetime
func (ss *SessionService) TTL() time.Duration {
	return ss.ttl
}

// Create stores a session for admin and returns its signed token
func (ss *SessionService) Create(ctx context.Context, admin *models.AdminUser) (string, *Session, error) {
	now := time.Now()
	session := &Session{
		ID:        uuid.NewString(),
		AdminID:   admin.ID,
		Email:     admin.Email,
		Role:      admin.Role,
		FullName:  admin.FullName,
		CreatedAt: now,
		ExpiresAt: now.Add(ss.ttl),
	}
	if err := ss.store.Save(ctx, session, ss.ttl); err != nil {
		return "", nil, fmt.Errorf("failed to save session: %w", err)
	}

	claims := SessionClaims{
		SessionID: session.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   admin.ID.String(),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "flabef",
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ss.secret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign session token: %w", err)
	}
	return token, session, nil
}

func (ss *SessionService) parse(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return ss.secret, nil
	})
	if err != nil || !token.Valid || claims.SessionID == "" {
		return nil, ErrUnauthorized
	}
	return claims, nil
}

// Resolve returns the live session referenced by tokenString
func (ss *SessionService) Resolve(ctx context.Context, tokenString string) (*Session, error) {
	if tokenString == "" {
		return nil, ErrUnauthorized
	}
	claims, err := ss.parse(tokenString)
	if err != nil {
		return nil, err
	}
	session, err := ss.store.Get(ctx, claims.SessionID)
	if errors.Is(err, errSessionNotFound) {
		return nil, ErrUnauthorized
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	admin, err := ss.accounts.GetByID(ctx, session.AdminID)
	if errors.Is(err, repositories.ErrNotFound) || (err == nil && !admin.IsActive) {
		_ = ss.store.Delete(ctx, session.ID)
		return nil, ErrUnauthorized
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session account: %w", err)
	}

	// the account record wins over what was captured at login
	session.Email = admin.Email
	session.Role = admin.Role
	session.FullName = admin.FullName
	return session, nil
}

// Destroy removes the session referenced by tokenString; unknown tokens are ignored
func (ss *SessionService) Destroy(ctx context.Context, tokenString string) error {
	claims, err := ss.parse(tokenString)
	if err != nil {
		return nil
	}
	if err := ss.store.Delete(ctx, claims.SessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// RedisSessionStore keeps sessions in Redis under session:<id>
type RedisSessionStore struct {
	client *redis.Client
}

// NewRedisSessionStore connects to the Redis instance at url
func NewRedisSessionStore(ctx context.Context, url string) (*RedisSessionStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to reach redis: %w", err)
	}
	return &RedisSessionStore{client: client}, nil
}

func sessionKey(id string) string {
	return "session:" + id
}

func (s *RedisSessionStore) Save(ctx context.Context, session *Session, ttl time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKey(session.ID), data, ttl).Err()
}

func (s *RedisSessionStore) Get(ctx context.Context, id string) (*Session, error) {
	data, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, errSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("corrupt session %s: %w", id, err)
	}
	return &session, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKey(id)).Err()
}

// Ping checks the Redis connection
func (s *RedisSessionStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the Redis client
func (s *RedisSessionStore) Close() error {
	return s.client.Close()
}

// MemorySessionStore keeps sessions in process memory; used when Redis is not configured
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]memorySession
	now      func() time.Time
}

type memorySession struct {
	session   Session
	expiresAt time.Time
}

// NewMemorySessionStore creates an empty in-memory session store
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]memorySession), now: time.Now}
}

func (s *MemorySessionStore) Save(_ context.Context, session *Session, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = memorySession{session: *session, expiresAt: s.now().Add(ttl)}
	return nil
}

func (s *MemorySessionStore) Get(_ context.Context, id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.sessions[id]
	if !ok {
		return nil, errSessionNotFound
	}
	if !s.now().Before(entry.expiresAt) {
		delete(s.sessions, id)
		return nil, errSessionNotFound
	}
	session := entry.session
	return &session, nil
}

func (s *MemorySessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// Sweep drops expired sessions
func (s *MemorySessionStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	n := 0
	for id, entry := range s.sessions {
		if !now.Before(entry.expiresAt) {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}
