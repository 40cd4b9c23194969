package jwt_generator

import "github.com/golang-jwt/jwt/v4"

const IssuerDefault = "user-auth-api"

// Payload is the identity a token carries.
type Payload struct {
	UserId   uint   `json:"id"`
	Login    string `json:"login"`
	Password string `json:"password,omitempty"`
}

type Claims struct {
	Payload
	jwt.RegisteredClaims
}

type Tokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
