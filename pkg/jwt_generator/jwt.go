package jwt_generator

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"user-auth-api/pkg/config"
)

//go:generate mockgen -source=jwt.go -destination=mock_jwt.go -package=jwt_generator

var (
	ErrEmptySecret     = errors.New("jwt secret is empty")
	ErrInvalidToken    = errors.New("jwt token is not valid")
	ErrAmbiguousIssuer = errors.New("ambiguous jwt token issuer")
)

type JwtGenerator interface {
	GenerateToken(expirationTime time.Time, payload *Payload) (string, error)
	VerifyToken(rawJwtToken string) (*Claims, error)
}

type jwtGenerator struct {
	secret []byte
}

func NewJwtGenerator(jwtConfig config.JwtConfig) (JwtGenerator, error) {
	if len(jwtConfig.Secret) == 0 {
		return nil, ErrEmptySecret
	}

	return &jwtGenerator{
		secret: jwtConfig.Secret,
	}, nil
}

func (jwtGenerator *jwtGenerator) GenerateToken(expirationTime time.Time, payload *Payload) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		Payload: *payload,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Issuer:    IssuerDefault,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString(jwtGenerator.secret)
	if err != nil {
		return "", err
	}

	return signedToken, nil
}

// VerifyToken checks signature, algorithm, issuer and the exp/nbf/iat window.
func (jwtGenerator *jwtGenerator) VerifyToken(rawJwtToken string) (*Claims, error) {
	var claims Claims

	token, err := jwt.ParseWithClaims(
		rawJwtToken,
		&claims,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}

			return jwtGenerator.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	if !claims.VerifyIssuer(IssuerDefault, true) {
		return nil, ErrAmbiguousIssuer
	}

	return &claims, nil
}
