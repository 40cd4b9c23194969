package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/kr/pretty"
)

const maskedValue = "******"

type Config struct {
	ServerPort string
	Postgres   PostgresConfig
	Jwt        JwtConfig
}

func ReadConfig() (*Config, error) {
	serverPort := os.Getenv(ServerPort)
	if serverPort == "" {
		serverPort = DefaultServerPort
		fmt.Println("server port environment variable is empty its declared 8080 by default")
	}

	postgresConfig, err := ReadPostgresConfig()
	if err != nil {
		return nil, err
	}

	jwtConfig, err := ReadJwtConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		ServerPort: serverPort,
		Postgres:   postgresConfig,
		Jwt:        jwtConfig,
	}, nil
}

// Print writes the config to stdout with secrets masked.
func (c *Config) Print() {
	masked := *c
	masked.Postgres.Password = maskedValue
	masked.Jwt.Secret = []byte(maskedValue)
	_, _ = pretty.Println(masked)
}

func ReadPostgresConfig() (PostgresConfig, error) {
	host := os.Getenv(PostgresHost)
	if host == "" {
		return PostgresConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, PostgresHost)
	}

	username := os.Getenv(PostgresUsername)
	if username == "" {
		return PostgresConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, PostgresUsername)
	}

	password := os.Getenv(PostgresPassword)
	if password == "" {
		return PostgresConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, PostgresPassword)
	}

	database := os.Getenv(PostgresDatabase)
	if database == "" {
		return PostgresConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, PostgresDatabase)
	}

	sslMode := os.Getenv(PostgresSslMode)
	if sslMode == "" {
		sslMode = DefaultPostgresSslMode
	}

	return PostgresConfig{
		Host:     host,
		Username: username,
		Password: password,
		Database: database,
		SslMode:  sslMode,
	}, nil
}

// Dsn renders a pgx connection url, credentials are escaped.
func (c PostgresConfig) Dsn() string {
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Username, c.Password),
		Host:     c.Host,
		Path:     "/" + c.Database,
		RawQuery: url.Values{"sslmode": []string{c.SslMode}}.Encode(),
	}

	return dsn.String()
}

func ReadJwtConfig() (JwtConfig, error) {
	secret := os.Getenv(JwtSecret)
	if secret == "" {
		return JwtConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, JwtSecret)
	}

	accessTokenTtl, err := readDuration(JwtAccessTokenTtl, DefaultAccessTokenTtl)
	if err != nil {
		return JwtConfig{}, err
	}

	loginRefreshTokenTtl, err := readDuration(JwtLoginRefreshTokenTtl, DefaultLoginRefreshTtl)
	if err != nil {
		return JwtConfig{}, err
	}

	refreshTokenTtl, err := readDuration(JwtRefreshTokenTtl, DefaultRefreshTokenTtl)
	if err != nil {
		return JwtConfig{}, err
	}

	loginClaimsPassword := DefaultLoginClaimsPassword
	if rawValue := os.Getenv(JwtLoginClaimsPassword); rawValue != "" {
		loginClaimsPassword, err = strconv.ParseBool(rawValue)
		if err != nil {
			return JwtConfig{}, fmt.Errorf(EnvironmentVariableMalformed, JwtLoginClaimsPassword, err)
		}
	}

	return JwtConfig{
		Secret:               []byte(secret),
		AccessTokenTtl:       accessTokenTtl,
		LoginRefreshTokenTtl: loginRefreshTokenTtl,
		RefreshTokenTtl:      refreshTokenTtl,
		LoginClaimsPassword:  loginClaimsPassword,
	}, nil
}

func readDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	rawValue := os.Getenv(key)
	if rawValue == "" {
		return defaultValue, nil
	}

	duration, err := time.ParseDuration(rawValue)
	if err != nil {
		return 0, fmt.Errorf(EnvironmentVariableMalformed, key, err)
	}

	if duration <= 0 {
		return 0, fmt.Errorf(EnvironmentVariableMalformed, key, fmt.Errorf("%s is not positive", duration))
	}

	return duration, nil
}
