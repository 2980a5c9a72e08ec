package identity

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"tradehub/internal/domain/entities"
	"tradehub/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingSessionSecret = errors.New("missing SESSION_JWT_SECRET")
	ErrInvalidSession       = errors.New("invalid session token")
)

// SessionAuthority resolves bearer tokens minted by the identity provider
// into {userId, role, tier}. It only reads claims; issuance and renewal live
// with the identity provider, outside this service.

type SessionAuthority struct {
	secret []byte
}

var _ interfaces.ISessionAuthority = (*SessionAuthority)(nil)

func NewSessionAuthority() (*SessionAuthority, error) {
	secret := strings.TrimSpace(os.Getenv("SESSION_JWT_SECRET"))
	if secret == "" {
		return nil, ErrMissingSessionSecret
	}
	return &SessionAuthority{secret: []byte(secret)}, nil
}

func (a *SessionAuthority) Resolve(_ context.Context, token string) (entities.Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.Identity{}, ErrInvalidSession
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSession
		}
		return a.secret, nil
	})
	if err != nil || !parsed.Valid {
		return entities.Identity{}, ErrInvalidSession
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return entities.Identity{}, ErrInvalidSession
	}

	userID, _ := claims["user_id"].(string)
	role, _ := claims["role"].(string)
	tier, _ := claims["tier"].(string)
	if userID == "" || role == "" {
		return entities.Identity{}, ErrInvalidSession
	}

	return entities.Identity{
		UserID: userID,
		Role:   entities.Role(role),
		Tier:   entities.Tier(tier),
	}, nil
}

// IssueToken mints a session token. Only used by local tooling and tests;
// production tokens come from the identity provider.
func (a *SessionAuthority) IssueToken(ident entities.Identity, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": ident.UserID,
		"role":    string(ident.Role),
		"tier":    string(ident.Tier),
		"exp":     time.Now().Add(ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(a.secret)
}
