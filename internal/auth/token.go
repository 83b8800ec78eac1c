package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims 令牌载荷
type Claims struct {
	UserID int64  `json:"uid"`
	Name   string `json:"name"`
	Kind   Kind   `json:"kind"`
	jwt.RegisteredClaims
}

// Signer 按密钥与有效期签发、校验 HS256 令牌
type Signer struct {
	secret []byte
	ttl    time.Duration
	kind   Kind
}

func NewSigner(secret string, ttl time.Duration, kind Kind) *Signer {
	return &Signer{secret: []byte(secret), ttl: ttl, kind: kind}
}

func (s *Signer) Issue(userID int64, name string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Name:   name,
		Kind:   s.kind,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *Signer) Parse(tokenString string) (Identity, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid || claims.Kind != s.kind {
		return Identity{}, ErrInvalidToken
	}
	return Identity{UserID: claims.UserID, Name: claims.Name, Kind: claims.Kind}, nil
}
