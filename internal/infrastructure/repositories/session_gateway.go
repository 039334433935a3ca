package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/JGS-JAVA/albaing-personalpart/domain"
)

// SessionGatewayImpl implements domain.SessionGateway using Redis.
type SessionGatewayImpl struct {
	client    *redis.Client
	prefix    string
	ttl       time.Duration
	exclusive bool
}

// NewSessionGateway creates a Redis-backed session gateway. When exclusive
// is set, binding one role clears the other; otherwise a session may carry
// both a person and a company identity at once.
func NewSessionGateway(client *redis.Client, ttl time.Duration, exclusive bool) domain.SessionGateway {
	return &SessionGatewayImpl{
		client:    client,
		prefix:    "session:",
		ttl:       ttl,
		exclusive: exclusive,
	}
}

// Login implements domain.SessionGateway
func (r *SessionGatewayImpl) Login(ctx context.Context, sessionID string, role domain.SessionRole, accountID uint) error {
	session, err := r.find(ctx, sessionID)
	if err != nil {
		return err
	}
	if session == nil {
		session = &domain.Session{ID: sessionID, CreatedAt: time.Now()}
	}

	switch role {
	case domain.RolePerson:
		session.UserID = accountID
		if r.exclusive {
			session.CompanyID = 0
		}
	case domain.RoleCompany:
		session.CompanyID = accountID
		if r.exclusive {
			session.UserID = 0
		}
	default:
		return fmt.Errorf("unknown session role %q", role)
	}

	return r.save(ctx, session)
}

// Logout implements domain.SessionGateway; removes both role bindings by
// deleting the session outright.
func (r *SessionGatewayImpl) Logout(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, r.prefix+sessionID).Err()
}

// Current implements domain.SessionGateway
func (r *SessionGatewayImpl) Current(ctx context.Context, sessionID string) (*domain.Session, error) {
	session, err := r.find(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

func (r *SessionGatewayImpl) find(ctx context.Context, sessionID string) (*domain.Session, error) {
	data, err := r.client.Get(ctx, r.prefix+sessionID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var session domain.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &session, nil
}

func (r *SessionGatewayImpl) save(ctx context.Context, session *domain.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	return r.client.Set(ctx, r.prefix+session.ID, data, r.ttl).Err()
}
