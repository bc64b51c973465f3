// Package auth issues and verifies access tokens and hashes passwords.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	Admin bool `json:"adm"`
	jwt.RegisteredClaims
}

type Token struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Issuer signs HS256 access tokens with a shared secret.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (i *Issuer) Issue(user domain.User) (Token, error) {
	now := i.now().UTC()
	exp := now.Add(i.ttl)
	claims := Claims{
		Admin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return Token{}, fmt.Errorf("sign token: %w", err)
	}
	return Token{Token: signed, ExpiresAt: exp}, nil
}

// Parse verifies raw and returns the caller it was issued for. Every failure
// is reported as domain.ErrUnauthorized.
func (i *Issuer) Parse(raw string) (domain.Caller, error) {
	var claims Claims
	tok, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(i.now), jwt.WithExpirationRequired())
	if err != nil || !tok.Valid {
		return domain.Caller{}, errors.Join(domain.ErrUnauthorized, err)
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || id <= 0 {
		return domain.Caller{}, fmt.Errorf("%w: invalid subject", domain.ErrUnauthorized)
	}
	return domain.Caller{UserID: id, IsAdmin: claims.Admin}, nil
}
