package auth

import (
	"errors"
	"fmt"
	"time"

	"deliveryhub/internal/entities"
	"deliveryhub/internal/pkg/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims are issued by the identity service. Subject holds the user id.
type Claims struct {
	Role     string `json:"role"`
	Verified bool   `json:"verified"`
	jwt.RegisteredClaims
}

// Validator turns HS256 bearer tokens into actors.
type Validator struct {
	secret []byte
	issuer string
	parser *jwt.Parser
}

func NewValidator(cfg *config.Auth) *Validator {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(30 * time.Second),
	}
	if cfg.JWTIssuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.JWTIssuer))
	}

	return &Validator{
		secret: []byte(cfg.JWTSecret),
		issuer: cfg.JWTIssuer,
		parser: jwt.NewParser(opts...),
	}
}

func (v *Validator) Validate(raw string) (entities.Actor, error) {
	var claims Claims
	_, err := v.parser.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return entities.Actor{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return entities.Actor{}, fmt.Errorf("%w: subject: %w", ErrInvalidClaims, err)
	}

	role := entities.Role(claims.Role)
	if !role.Valid() {
		return entities.Actor{}, fmt.Errorf("%w: role %q", ErrInvalidClaims, claims.Role)
	}

	return entities.Actor{
		ID:       id,
		Role:     role,
		Verified: claims.Verified,
	}, nil
}

// Sign issues a token for actor. The service only validates tokens; Sign
// backs local tooling and tests.
func (v *Validator) Sign(actor entities.Actor, issuedAt time.Time, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		return "", errors.New("token ttl must be positive")
	}

	claims := Claims{
		Role:     actor.Role.String(),
		Verified: actor.Verified,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.ID.String(),
			Issuer:    v.issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
