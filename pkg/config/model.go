package config

import "time"

// #nosec
const (
	EnvironmentVariableNotDefined = "%s variable is not defined"
	EnvironmentVariableMalformed  = "%s variable is malformed: %w"

	ServerPort = "SERVER_PORT"
	IsAtRemote = "IS_AT_REMOTE"

	PostgresHost     = "POSTGRES_HOST"
	PostgresUsername = "POSTGRES_USERNAME"
	PostgresPassword = "POSTGRES_PASSWORD"
	PostgresDatabase = "POSTGRES_DATABASE"
	PostgresSslMode  = "POSTGRES_SSL_MODE"

	JwtSecret               = "JWT_SECRET"
	JwtAccessTokenTtl       = "JWT_ACCESS_TOKEN_TTL"
	JwtLoginRefreshTokenTtl = "JWT_LOGIN_REFRESH_TOKEN_TTL"
	JwtRefreshTokenTtl      = "JWT_REFRESH_TOKEN_TTL"
	JwtLoginClaimsPassword  = "JWT_LOGIN_CLAIMS_PASSWORD"
)

const (
	DefaultServerPort          = "8080"
	DefaultPostgresSslMode     = "disable"
	DefaultAccessTokenTtl      = 2 * time.Hour
	DefaultLoginRefreshTtl     = 48 * time.Hour
	DefaultRefreshTokenTtl     = 168 * time.Hour
	DefaultLoginClaimsPassword = true
)

type PostgresConfig struct {
	Host     string
	Username string
	Password string
	Database string
	SslMode  string
}

type JwtConfig struct {
	Secret []byte
	// AccessTokenTtl applies to every access token.
	AccessTokenTtl time.Duration
	// LoginRefreshTokenTtl applies to refresh tokens minted by login,
	// RefreshTokenTtl to those minted by the refresh flow.
	LoginRefreshTokenTtl time.Duration
	RefreshTokenTtl      time.Duration
	LoginClaimsPassword  bool
}
