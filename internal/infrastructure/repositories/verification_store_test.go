package repositories

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestStore(t *testing.T) (*VerificationStoreImpl, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewVerificationStore(client, 6, 10*time.Minute, 24*time.Hour).(*VerificationStoreImpl)
	return store, mr
}

func TestIssueAndCheckCode(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	code, err := store.IssueCode(ctx, "person@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(code) != 6 {
		t.Fatalf("expected 6-digit code, got %q", code)
	}

	ok, err := store.CheckCode(ctx, "person@example.com", code)
	if err != nil || !ok {
		t.Fatalf("expected match, got ok=%v err=%v", ok, err)
	}

	ok, err = store.CheckCode(ctx, "person@example.com", "000000")
	if err != nil || ok {
		t.Fatalf("expected mismatch, got ok=%v err=%v", ok, err)
	}

	ok, err = store.CheckCode(ctx, "someone-else@example.com", code)
	if err != nil || ok {
		t.Fatalf("expected no record for other email, got ok=%v err=%v", ok, err)
	}
}

func TestCheckCodeExpired(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	code, err := store.IssueCode(ctx, "person@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Rewrite the stored deadline to the past; expiry lives in the record,
	// not in the key TTL.
	mr.HSet(verificationKey("person@example.com"),
		"expires_at", time.Now().Add(-time.Minute).Format(time.RFC3339Nano))

	ok, err := store.CheckCode(ctx, "person@example.com", code)
	if err != nil || ok {
		t.Fatalf("expired code must not match, got ok=%v err=%v", ok, err)
	}
}

func TestReissueSupersedesPreviousCode(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	first, err := store.IssueCode(ctx, "person@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := store.IssueCode(ctx, "person@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first != second {
		ok, _ := store.CheckCode(ctx, "person@example.com", first)
		if ok {
			t.Error("superseded code must not match")
		}
	}
	ok, err := store.CheckCode(ctx, "person@example.com", second)
	if err != nil || !ok {
		t.Fatalf("latest code must match, got ok=%v err=%v", ok, err)
	}
}

func TestMarkVerifiedLifecycle(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	// No record yet: a no-op, and the email stays unverified.
	if err := store.MarkVerified(ctx, "person@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	verified, err := store.IsVerified(ctx, "person@example.com")
	if err != nil || verified {
		t.Fatalf("absent record must read unverified, got %v err=%v", verified, err)
	}

	if _, err := store.IssueCode(ctx, "person@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	verified, _ = store.IsVerified(ctx, "person@example.com")
	if verified {
		t.Fatal("fresh record must start unverified")
	}

	if err := store.MarkVerified(ctx, "person@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	verified, err = store.IsVerified(ctx, "person@example.com")
	if err != nil || !verified {
		t.Fatalf("expected verified, got %v err=%v", verified, err)
	}

	if err := store.Clear(ctx, "person@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	verified, _ = store.IsVerified(ctx, "person@example.com")
	if verified {
		t.Fatal("cleared record must read unverified")
	}
}

func TestMarkVerifiedRacingClearNeverResurrectsRecord(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 50; i++ {
		if _, err := store.IssueCode(ctx, "person@example.com"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = store.MarkVerified(ctx, "person@example.com")
		}()
		go func() {
			defer wg.Done()
			_ = store.Clear(ctx, "person@example.com")
		}()
		wg.Wait()

		// Whichever order won, a surviving record must be complete: a bare
		// {verified:1} hash with no code would let registration skip
		// verification forever.
		if mr.Exists(verificationKey("person@example.com")) {
			rec, err := store.load(ctx, "person@example.com")
			if err != nil {
				t.Fatalf("iteration %d: record corrupted: %v", i, err)
			}
			if rec.Code == "" {
				t.Fatalf("iteration %d: record has no code: %+v", i, rec)
			}
			if mr.TTL(verificationKey("person@example.com")) <= 0 {
				t.Fatalf("iteration %d: record lost its retention TTL", i)
			}
		} else {
			verified, err := store.IsVerified(ctx, "person@example.com")
			if err != nil || verified {
				t.Fatalf("iteration %d: cleared email reads verified=%v err=%v", i, verified, err)
			}
		}

		_ = store.Clear(ctx, "person@example.com")
	}
}

func TestMarkVerifiedKeepsRetentionTTL(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	if _, err := store.IssueCode(ctx, "person@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.MarkVerified(ctx, "person@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ttl := mr.TTL(verificationKey("person@example.com")); ttl <= 0 {
		t.Fatalf("marking verified must not strip the retention TTL, got %v", ttl)
	}
}

func TestVerifiedFlagSurvivesCodeExpiry(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	code, _ := store.IssueCode(ctx, "person@example.com")
	if err := store.MarkVerified(ctx, "person@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mr.HSet(verificationKey("person@example.com"),
		"expires_at", time.Now().Add(-time.Minute).Format(time.RFC3339Nano))

	// The code window has passed but the ownership proof stands.
	if ok, _ := store.CheckCode(ctx, "person@example.com", code); ok {
		t.Error("expired code must not match")
	}
	verified, err := store.IsVerified(ctx, "person@example.com")
	if err != nil || !verified {
		t.Fatalf("verified flag must outlive the code window, got %v err=%v", verified, err)
	}
}
