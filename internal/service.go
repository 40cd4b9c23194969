package user

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"user-auth-api/pkg/cerror"
	"user-auth-api/pkg/config"
	"user-auth-api/pkg/jwt_generator"
)

//go:generate mockgen -source=service.go -destination=mock_service.go -package=user

type Service interface {
	GetUsers(ctx context.Context) ([]User, error)
	GetUserById(ctx context.Context, userId uint) (*User, error)
	CreateUser(ctx context.Context, payload *CreateUserPayload) (*User, error)
	DeleteUserById(ctx context.Context, userId uint) (*User, error)
	Login(ctx context.Context, payload *LoginPayload) (*LoginResponse, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*jwt_generator.Tokens, error)
}

type service struct {
	userRepository Repository
	jwtGenerator   jwt_generator.JwtGenerator
	jwtConfig      config.JwtConfig
}

func NewService(
	userRepository Repository,
	jwtGenerator jwt_generator.JwtGenerator,
	jwtConfig config.JwtConfig,
) Service {
	return &service{
		userRepository: userRepository,
		jwtGenerator:   jwtGenerator,
		jwtConfig:      jwtConfig,
	}
}

func (s *service) GetUsers(ctx context.Context) ([]User, error) {
	return s.userRepository.FindUsers(ctx)
}

// GetUserById yields a nil user without error when nothing matches.
func (s *service) GetUserById(ctx context.Context, userId uint) (*User, error) {
	user, err := s.userRepository.FindUserWithId(ctx, userId)
	if errors.Is(err, cerror.ErrorUserNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *service) CreateUser(ctx context.Context, payload *CreateUserPayload) (*User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, cerror.ErrorBadRequest.With(zap.Error(err))
	}
	if err != nil {
		return nil, cerror.ErrorHashPassword.With(zap.Error(err))
	}

	user := &User{
		Uuid:        uuid.New().String(),
		Name:        payload.Name,
		Surname:     payload.Surname,
		Login:       payload.Login,
		Password:    string(hashedPassword),
		Role:        payload.Role,
		Rank:        payload.Rank,
		Appointment: payload.Appointment,
		Chats:       []Chat{},
	}

	err = s.userRepository.InsertUser(ctx, user)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *service) DeleteUserById(ctx context.Context, userId uint) (*User, error) {
	return s.userRepository.DeleteUserWithId(ctx, userId)
}

func (s *service) Login(ctx context.Context, payload *LoginPayload) (*LoginResponse, error) {
	user, err := s.userRepository.FindUserWithLogin(ctx, payload.Login)
	if err != nil {
		return nil, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(payload.Password))
	if err != nil {
		return nil, cerror.ErrorPasswordsDoNotMatch.With(zap.Uint("userId", user.Id))
	}

	tokenPayload := &jwt_generator.Payload{
		UserId: user.Id,
		Login:  user.Login,
	}
	if s.jwtConfig.LoginClaimsPassword {
		tokenPayload.Password = payload.Password
	}

	tokens, err := s.generateTokens(tokenPayload, s.jwtConfig.LoginRefreshTokenTtl)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		Id:           user.Id,
		Uuid:         user.Uuid,
		Name:         user.Name,
		Surname:      user.Surname,
	}, nil
}

// RefreshTokens rejects bad tokens before touching the store.
func (s *service) RefreshTokens(ctx context.Context, refreshToken string) (*jwt_generator.Tokens, error) {
	if refreshToken == "" {
		return nil, cerror.ErrorMissingRefreshToken
	}

	claims, err := s.jwtGenerator.VerifyToken(refreshToken)
	if err != nil {
		return nil, cerror.ErrorInvalidRefreshToken.With(zap.Error(err))
	}

	user, err := s.userRepository.FindUserWithId(ctx, claims.UserId)
	if err != nil {
		return nil, err
	}

	return s.generateTokens(&jwt_generator.Payload{
		UserId: user.Id,
		Login:  user.Login,
	}, s.jwtConfig.RefreshTokenTtl)
}

func (s *service) generateTokens(payload *jwt_generator.Payload, refreshTokenTtl time.Duration) (*jwt_generator.Tokens, error) {
	now := time.Now().UTC()

	accessToken, err := s.jwtGenerator.GenerateToken(now.Add(s.jwtConfig.AccessTokenTtl), payload)
	if err != nil {
		return nil, cerror.ErrorGenerateAccessToken.With(zap.Error(err))
	}

	refreshToken, err := s.jwtGenerator.GenerateToken(now.Add(refreshTokenTtl), payload)
	if err != nil {
		return nil, cerror.ErrorGenerateRefreshToken.With(zap.Error(err))
	}

	return &jwt_generator.Tokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
