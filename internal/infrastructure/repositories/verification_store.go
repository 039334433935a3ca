package repositories

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/JGS-JAVA/albaing-personalpart/domain"
)

// VerificationStoreImpl implements domain.VerificationStore on Redis.
// Each email maps to one hash key; per-command atomicity covers concurrent
// resend/check races on the same email.
type VerificationStoreImpl struct {
	client     *redis.Client
	codeLength int
	codeTTL    time.Duration
	recordTTL  time.Duration
}

// NewVerificationStore creates a Redis-backed verification store.
// codeTTL bounds how long an issued code is accepted; recordTTL is the
// retention of the record itself so the verified flag outlives the code
// window and the eventual registration can still consult it.
func NewVerificationStore(client *redis.Client, codeLength int, codeTTL, recordTTL time.Duration) domain.VerificationStore {
	return &VerificationStoreImpl{
		client:     client,
		codeLength: codeLength,
		codeTTL:    codeTTL,
		recordTTL:  recordTTL,
	}
}

func verificationKey(email string) string {
	return "verify:" + email
}

// IssueCode implements domain.VerificationStore. Any previous record for the
// email is overwritten, so only the latest code ever matches.
func (s *VerificationStoreImpl) IssueCode(ctx context.Context, email string) (string, error) {
	code, err := s.generateCode()
	if err != nil {
		return "", fmt.Errorf("failed to generate verification code: %w", err)
	}

	key := verificationKey(email)
	expiresAt := time.Now().Add(s.codeTTL)

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key,
		"code", code,
		"expires_at", expiresAt.Format(time.RFC3339Nano),
		"verified", "0",
	)
	pipe.Expire(ctx, key, s.recordTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return "", fmt.Errorf("failed to store verification record: %w", err)
	}

	return code, nil
}

// CheckCode implements domain.VerificationStore. This is the only operation
// that evaluates expiry.
func (s *VerificationStoreImpl) CheckCode(ctx context.Context, email, code string) (bool, error) {
	rec, err := s.load(ctx, email)
	if err != nil {
		return false, err
	}
	if rec == nil {
		return false, nil
	}
	if rec.Code != code {
		return false, nil
	}
	if rec.Expired() {
		return false, nil
	}
	return true, nil
}

// markVerifiedScript flips the verified flag only while the record still
// exists and refreshes the retention window in the same step. A separate
// EXISTS check would race a concurrent Clear: the HSET after it resurrects
// the key as a bare {verified:1} hash with no code and no TTL.
var markVerifiedScript = redis.NewScript(`
if redis.call("EXISTS", KEYS[1]) == 0 then
	return 0
end
redis.call("HSET", KEYS[1], "verified", "1")
redis.call("PEXPIRE", KEYS[1], ARGV[1])
return 1
`)

// MarkVerified implements domain.VerificationStore. A missing record is left
// untouched; the registration precondition then fails on IsVerified.
func (s *VerificationStoreImpl) MarkVerified(ctx context.Context, email string) error {
	err := markVerifiedScript.Run(ctx, s.client,
		[]string{verificationKey(email)}, s.recordTTL.Milliseconds()).Err()
	if err != nil {
		return fmt.Errorf("failed to mark email verified: %w", err)
	}
	return nil
}

// IsVerified implements domain.VerificationStore
func (s *VerificationStoreImpl) IsVerified(ctx context.Context, email string) (bool, error) {
	verified, err := s.client.HGet(ctx, verificationKey(email), "verified").Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read verification record: %w", err)
	}
	return verified == "1", nil
}

// Clear implements domain.VerificationStore
func (s *VerificationStoreImpl) Clear(ctx context.Context, email string) error {
	return s.client.Del(ctx, verificationKey(email)).Err()
}

func (s *VerificationStoreImpl) load(ctx context.Context, email string) (*domain.VerificationRecord, error) {
	fields, err := s.client.HGetAll(ctx, verificationKey(email)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read verification record: %w", err)
	}
	if len(fields) == 0 {
		return nil, nil
	}

	expiresAt, err := time.Parse(time.RFC3339Nano, fields["expires_at"])
	if err != nil {
		return nil, fmt.Errorf("corrupt verification record for %s: %w", email, err)
	}

	return &domain.VerificationRecord{
		Email:     email,
		Code:      fields["code"],
		ExpiresAt: expiresAt,
		Verified:  fields["verified"] == "1",
	}, nil
}

// generateCode produces a cryptographically random numeric code.
func (s *VerificationStoreImpl) generateCode() (string, error) {
	digits := make([]byte, s.codeLength)
	for i := 0; i < s.codeLength; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + num.Int64())
	}
	return string(digits), nil
}
