//go:build unit

package user

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"user-auth-api/pkg/cerror"
	"user-auth-api/pkg/config"
	"user-auth-api/pkg/jwt_generator"
)

const (
	TestUserId      uint = 1
	TestUuid             = "0b1d2c7e-61e1-4f0e-9d63-6b1b5f3b7c11"
	TestName             = "A"
	TestSurname          = "B"
	TestLogin            = "ab"
	TestPassword         = "secret"
	TestAppointment      = "x"
	TestRank             = "y"
	TestRole             = "z"
	TestRefreshToken     = "abcd.abcd.abcd"
	TestAccessToken      = "efgh.efgh.efgh"
)

var TestJwtConfig = config.JwtConfig{
	Secret:               []byte("test-secret"),
	AccessTokenTtl:       config.DefaultAccessTokenTtl,
	LoginRefreshTokenTtl: config.DefaultLoginRefreshTtl,
	RefreshTokenTtl:      config.DefaultRefreshTokenTtl,
	LoginClaimsPassword:  true,
}

func hashPassword(t *testing.T, password string) string {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return string(hashedPassword)
}

func newTestUser(t *testing.T) *User {
	return &User{
		Id:          TestUserId,
		Uuid:        TestUuid,
		Name:        TestName,
		Surname:     TestSurname,
		Login:       TestLogin,
		Password:    hashPassword(t, TestPassword),
		Role:        TestRole,
		Rank:        TestRank,
		Appointment: TestAppointment,
		Chats:       []Chat{},
	}
}

func newTestJwtGenerator(t *testing.T) jwt_generator.JwtGenerator {
	jwtGenerator, err := jwt_generator.NewJwtGenerator(TestJwtConfig)
	require.NoError(t, err)

	return jwtGenerator
}

func requireStatus(t *testing.T, err error, status int) {
	var cerr *cerror.CustomError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, status, cerr.HttpStatusCode)
}

func TestNewService(t *testing.T) {
	userService := NewService(nil, nil, TestJwtConfig)

	assert.Implements(t, (*Service)(nil), userService)
}

func TestService_GetUsers(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	ctx := context.Background()
	mockUserRepository := NewMockRepository(mockController)
	mockUserRepository.
		EXPECT().
		FindUsers(ctx).
		Return([]User{*newTestUser(t)}, nil)

	users, err := NewService(mockUserRepository, nil, TestJwtConfig).GetUsers(ctx)

	assert.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestService_GetUserById(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	t.Run("happy path", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepository := NewMockRepository(mockController)
		mockUserRepository.
			EXPECT().
			FindUserWithId(ctx, TestUserId).
			Return(newTestUser(t), nil)

		user, err := NewService(mockUserRepository, nil, TestJwtConfig).GetUserById(ctx, TestUserId)

		assert.NoError(t, err)
		assert.Equal(t, TestUserId, user.Id)
	})

	t.Run("when user not found should return nil without error", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepository := NewMockRepository(mockController)
		mockUserRepository.
			EXPECT().
			FindUserWithId(ctx, TestUserId).
			Return(nil, cerror.ErrorUserNotFound)

		user, err := NewService(mockUserRepository, nil, TestJwtConfig).GetUserById(ctx, TestUserId)

		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("when repository fails should return error", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepository := NewMockRepository(mockController)
		mockUserRepository.
			EXPECT().
			FindUserWithId(ctx, TestUserId).
			Return(nil, errors.New("something went wrong"))

		user, err := NewService(mockUserRepository, nil, TestJwtConfig).GetUserById(ctx, TestUserId)

		assert.Error(t, err)
		assert.Nil(t, user)
	})
}

func TestService_CreateUser(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	payload := &CreateUserPayload{
		Name:        TestName,
		Surname:     TestSurname,
		Login:       TestLogin,
		Password:    TestPassword,
		Appointment: TestAppointment,
		Rank:        TestRank,
		Role:        TestRole,
	}

	t.Run("happy path", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepository := NewMockRepository(mockController)
		mockUserRepository.
			EXPECT().
			InsertUser(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, user *User) error {
				user.Id = TestUserId
				return nil
			})

		user, err := NewService(mockUserRepository, nil, TestJwtConfig).CreateUser(ctx, payload)

		require.NoError(t, err)
		assert.Equal(t, TestUserId, user.Id)
		assert.NotEmpty(t, user.Uuid)
		assert.Equal(t, TestLogin, user.Login)
		assert.NotEqual(t, TestPassword, user.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(TestPassword)))
	})

	t.Run("every created user should get a distinct uuid", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepository := NewMockRepository(mockController)
		mockUserRepository.
			EXPECT().
			InsertUser(ctx, gomock.Any()).
			Return(nil).
			Times(2)

		userService := NewService(mockUserRepository, nil, TestJwtConfig)
		first, err := userService.CreateUser(ctx, payload)
		require.NoError(t, err)
		second, err := userService.CreateUser(ctx, payload)
		require.NoError(t, err)

		assert.NotEqual(t, first.Uuid, second.Uuid)
	})

	t.Run("when password is longer than bcrypt allows should return bad request", func(t *testing.T) {
		ctx := context.Background()
		longPayload := *payload
		longPayload.Password = strings.Repeat("ы", 72)

		_, err := NewService(nil, nil, TestJwtConfig).CreateUser(ctx, &longPayload)

		requireStatus(t, err, fiber.StatusBadRequest)
	})

	t.Run("when error occurred while insert user should return error", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepository := NewMockRepository(mockController)
		mockUserRepository.
			EXPECT().
			InsertUser(ctx, gomock.Any()).
			Return(cerror.ErrorUserAlreadyExists)

		user, err := NewService(mockUserRepository, nil, TestJwtConfig).CreateUser(ctx, payload)

		requireStatus(t, err, fiber.StatusConflict)
		assert.Nil(t, user)
	})
}

func TestService_DeleteUserById(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	ctx := context.Background()
	mockUserRepository := NewMockRepository(mockController)
	mockUserRepository.
		EXPECT().
		DeleteUserWithId(ctx, TestUserId).
		Return(newTestUser(t), nil)

	user, err := NewService(mockUserRepository, nil, TestJwtConfig).DeleteUserById(ctx, TestUserId)

	assert.NoError(t, err)
	assert.Equal(t, TestUserId, user.Id)
}

func TestService_Login(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	payload := &LoginPayload{
		Login:    TestLogin,
		Password: TestPassword,
	}

	t.Run("happy path", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepository := NewMockRepository(mockController)
		mockUserRepository.
			EXPECT().
			FindUserWithLogin(ctx, TestLogin).
			Return(newTestUser(t), nil)

		jwtGenerator := newTestJwtGenerator(t)
		response, err := NewService(mockUserRepository, jwtGenerator, TestJwtConfig).Login(ctx, payload)

		require.NoError(t, err)
		assert.NotEmpty(t, response.AccessToken)
		assert.NotEmpty(t, response.RefreshToken)
		assert.Equal(t, TestUserId, response.Id)
		assert.Equal(t, TestUuid, response.Uuid)
		assert.Equal(t, TestName, response.Name)
		assert.Equal(t, TestSurname, response.Surname)

		accessClaims, err := jwtGenerator.VerifyToken(response.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, TestUserId, accessClaims.UserId)
		assert.Equal(t, TestLogin, accessClaims.Login)
		assert.Equal(t, TestPassword, accessClaims.Password)
		assert.WithinDuration(t, time.Now().Add(2*time.Hour), accessClaims.ExpiresAt.Time, time.Minute)

		refreshClaims, err := jwtGenerator.VerifyToken(response.RefreshToken)
		require.NoError(t, err)
		assert.Equal(t, TestPassword, refreshClaims.Password)
		assert.WithinDuration(t, time.Now().Add(48*time.Hour), refreshClaims.ExpiresAt.Time, time.Minute)
	})

	t.Run("when password claim is disabled tokens should not carry it", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepository := NewMockRepository(mockController)
		mockUserRepository.
			EXPECT().
			FindUserWithLogin(ctx, TestLogin).
			Return(newTestUser(t), nil)

		jwtConfig := TestJwtConfig
		jwtConfig.LoginClaimsPassword = false
		jwtGenerator := newTestJwtGenerator(t)
		response, err := NewService(mockUserRepository, jwtGenerator, jwtConfig).Login(ctx, payload)
		require.NoError(t, err)

		claims, err := jwtGenerator.VerifyToken(response.RefreshToken)
		require.NoError(t, err)
		assert.Empty(t, claims.Password)
	})

	t.Run("when user not found should return not found", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepository := NewMockRepository(mockController)
		mockUserRepository.
			EXPECT().
			FindUserWithLogin(ctx, TestLogin).
			Return(nil, cerror.ErrorUserNotFound)

		response, err := NewService(mockUserRepository, nil, TestJwtConfig).Login(ctx, payload)

		requireStatus(t, err, fiber.StatusNotFound)
		assert.Nil(t, response)
	})

	t.Run("when passwords do not match should return unauthorized", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepository := NewMockRepository(mockController)
		mockUserRepository.
			EXPECT().
			FindUserWithLogin(ctx, TestLogin).
			Return(newTestUser(t), nil)

		response, err := NewService(mockUserRepository, nil, TestJwtConfig).Login(ctx, &LoginPayload{
			Login:    TestLogin,
			Password: "wrong-password",
		})

		requireStatus(t, err, fiber.StatusUnauthorized)
		assert.Nil(t, response)
	})

	t.Run("when error occurred while generate access token should return error", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepository := NewMockRepository(mockController)
		mockUserRepository.
			EXPECT().
			FindUserWithLogin(ctx, TestLogin).
			Return(newTestUser(t), nil)

		mockJwtGenerator := jwt_generator.NewMockJwtGenerator(mockController)
		mockJwtGenerator.
			EXPECT().
			GenerateToken(gomock.Any(), gomock.Any()).
			Return("", errors.New("something went wrong"))

		_, err := NewService(mockUserRepository, mockJwtGenerator, TestJwtConfig).Login(ctx, payload)

		requireStatus(t, err, fiber.StatusInternalServerError)
	})

	t.Run("when error occurred while generate refresh token should return error", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepository := NewMockRepository(mockController)
		mockUserRepository.
			EXPECT().
			FindUserWithLogin(ctx, TestLogin).
			Return(newTestUser(t), nil)

		mockJwtGenerator := jwt_generator.NewMockJwtGenerator(mockController)
		gomock.InOrder(
			mockJwtGenerator.
				EXPECT().
				GenerateToken(gomock.Any(), gomock.Any()).
				Return(TestAccessToken, nil),
			mockJwtGenerator.
				EXPECT().
				GenerateToken(gomock.Any(), gomock.Any()).
				Return("", errors.New("something went wrong")),
		)

		_, err := NewService(mockUserRepository, mockJwtGenerator, TestJwtConfig).Login(ctx, payload)

		var cerr *cerror.CustomError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, cerror.ErrorGenerateRefreshToken.LogMessage, cerr.LogMessage)
	})
}

func TestService_RefreshTokens(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	t.Run("happy path", func(t *testing.T) {
		ctx := context.Background()
		jwtGenerator := newTestJwtGenerator(t)
		refreshToken, err := jwtGenerator.GenerateToken(time.Now().Add(time.Hour), &jwt_generator.Payload{
			UserId:   TestUserId,
			Login:    TestLogin,
			Password: TestPassword,
		})
		require.NoError(t, err)

		mockUserRepository := NewMockRepository(mockController)
		mockUserRepository.
			EXPECT().
			FindUserWithId(ctx, TestUserId).
			Return(newTestUser(t), nil)

		tokens, err := NewService(mockUserRepository, jwtGenerator, TestJwtConfig).RefreshTokens(ctx, refreshToken)
		require.NoError(t, err)

		assert.NotEqual(t, refreshToken, tokens.RefreshToken)

		accessClaims, err := jwtGenerator.VerifyToken(tokens.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, TestUserId, accessClaims.UserId)
		assert.Equal(t, TestLogin, accessClaims.Login)
		assert.Empty(t, accessClaims.Password)
		assert.WithinDuration(t, time.Now().Add(2*time.Hour), accessClaims.ExpiresAt.Time, time.Minute)

		refreshClaims, err := jwtGenerator.VerifyToken(tokens.RefreshToken)
		require.NoError(t, err)
		assert.Empty(t, refreshClaims.Password)
		assert.WithinDuration(t, time.Now().Add(168*time.Hour), refreshClaims.ExpiresAt.Time, time.Minute)
	})

	t.Run("reissued refresh token should be accepted again and yield a new pair", func(t *testing.T) {
		ctx := context.Background()
		jwtGenerator := newTestJwtGenerator(t)
		refreshToken, err := jwtGenerator.GenerateToken(time.Now().Add(time.Hour), &jwt_generator.Payload{
			UserId: TestUserId,
			Login:  TestLogin,
		})
		require.NoError(t, err)

		mockUserRepository := NewMockRepository(mockController)
		mockUserRepository.
			EXPECT().
			FindUserWithId(ctx, TestUserId).
			Return(newTestUser(t), nil).
			Times(2)

		userService := NewService(mockUserRepository, jwtGenerator, TestJwtConfig)
		first, err := userService.RefreshTokens(ctx, refreshToken)
		require.NoError(t, err)
		second, err := userService.RefreshTokens(ctx, first.RefreshToken)
		require.NoError(t, err)

		assert.NotEqual(t, first.AccessToken, second.AccessToken)
		assert.NotEqual(t, first.RefreshToken, second.RefreshToken)
	})

	t.Run("when refresh token is missing should return bad request", func(t *testing.T) {
		tokens, err := NewService(nil, nil, TestJwtConfig).RefreshTokens(context.Background(), "")

		requireStatus(t, err, fiber.StatusBadRequest)
		assert.Nil(t, tokens)
	})

	t.Run("when refresh token is expired should return unauthorized without store lookup", func(t *testing.T) {
		jwtGenerator := newTestJwtGenerator(t)
		expiredToken, err := jwtGenerator.GenerateToken(time.Now().Add(-time.Minute), &jwt_generator.Payload{
			UserId: TestUserId,
			Login:  TestLogin,
		})
		require.NoError(t, err)

		mockUserRepository := NewMockRepository(mockController)

		tokens, err := NewService(mockUserRepository, jwtGenerator, TestJwtConfig).
			RefreshTokens(context.Background(), expiredToken)

		requireStatus(t, err, fiber.StatusUnauthorized)
		assert.Nil(t, tokens)
	})

	t.Run("when refresh token is invalid should return unauthorized", func(t *testing.T) {
		tokens, err := NewService(nil, newTestJwtGenerator(t), TestJwtConfig).
			RefreshTokens(context.Background(), TestRefreshToken)

		requireStatus(t, err, fiber.StatusUnauthorized)
		assert.Nil(t, tokens)
	})

	t.Run("when user no longer exists should return not found", func(t *testing.T) {
		ctx := context.Background()
		jwtGenerator := newTestJwtGenerator(t)
		refreshToken, err := jwtGenerator.GenerateToken(time.Now().Add(time.Hour), &jwt_generator.Payload{
			UserId: TestUserId,
			Login:  TestLogin,
		})
		require.NoError(t, err)

		mockUserRepository := NewMockRepository(mockController)
		mockUserRepository.
			EXPECT().
			FindUserWithId(ctx, TestUserId).
			Return(nil, cerror.ErrorUserNotFound)

		tokens, err := NewService(mockUserRepository, jwtGenerator, TestJwtConfig).RefreshTokens(ctx, refreshToken)

		requireStatus(t, err, fiber.StatusNotFound)
		assert.Nil(t, tokens)
	})
}
