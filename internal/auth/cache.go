package auth

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"ppf-service/internal/client"
)

// Verifier checks a bearer token and returns the identity behind it.
type Verifier interface {
	Verify(ctx context.Context, token string) (*client.Identity, error)
}

type cacheEntry struct {
	identity  client.Identity
	expiresAt time.Time
}

// CachedVerifier keeps successful verifications for a short window so each
// request does not pay a full identity-service round trip. Rejections are
// never cached; a revoked token is re-checked as soon as its entry lapses.
type CachedVerifier struct {
	inner Verifier
	ttl   time.Duration
	now   func() time.Time

	mu      sync.Mutex
	entries map[string]cacheEntry
}

func NewCachedVerifier(inner Verifier, ttl time.Duration) *CachedVerifier {
	return &CachedVerifier{
		inner:   inner,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cacheEntry),
	}
}

func (v *CachedVerifier) Verify(ctx context.Context, token string) (*client.Identity, error) {
	now := v.now()

	v.mu.Lock()
	if entry, ok := v.entries[token]; ok {
		if now.Before(entry.expiresAt) {
			identity := entry.identity
			v.mu.Unlock()
			return &identity, nil
		}
		delete(v.entries, token)
	}
	v.mu.Unlock()

	identity, err := v.inner.Verify(ctx, token)
	if err != nil {
		return nil, err
	}

	v.mu.Lock()
	v.entries[token] = cacheEntry{
		identity:  *identity,
		expiresAt: cacheDeadline(token, now, v.ttl),
	}
	v.mu.Unlock()

	return identity, nil
}

// cacheDeadline bounds the cache window by the token's own expiry when the
// token is a JWT. The claim is read without signature verification; it only
// shortens how long we trust the provider's answer, never extends it.
func cacheDeadline(token string, now time.Time, ttl time.Duration) time.Time {
	deadline := now.Add(ttl)

	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return deadline
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return deadline
	}
	if exp.Time.Before(deadline) {
		return exp.Time
	}
	return deadline
}
