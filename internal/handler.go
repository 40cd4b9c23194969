package user

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"user-auth-api/pkg/cerror"
	"user-auth-api/pkg/logger"
	"user-auth-api/pkg/server"
)

const eventNameField = "eventName"

type handler struct {
	userService Service
	validate    *validator.Validate
}

func NewHandler(userService Service) server.Handler {
	return &handler{
		userService: userService,
		validate:    newValidator(),
	}
}

func (h *handler) RegisterRoutes(app *fiber.App) {
	app.Get("/users", h.GetUsers)
	app.Get("/users/:id", h.GetUserById)
	app.Post("/users", h.CreateUser)
	app.Delete("/users/:id", h.DeleteUserById)
	app.Post("/auth", h.Login)
	app.Post("/auth/refresh", h.RefreshTokens)
}

func (h *handler) GetUsers(ctx *fiber.Ctx) error {
	log := logger.With(ctx, zap.String(eventNameField, "getUsers"))

	users, err := h.userService.GetUsers(ctx.Context())
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(users)
}

func (h *handler) GetUserById(ctx *fiber.Ctx) error {
	log := logger.With(ctx, zap.String(eventNameField, "getUserById"))

	userId, err := userIdParam(ctx)
	if err != nil {
		return err
	}

	user, err := h.userService.GetUserById(ctx.Context(), userId)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(user)
}

func (h *handler) CreateUser(ctx *fiber.Ctx) error {
	log := logger.With(ctx, zap.String(eventNameField, "createUser"))

	var payload CreateUserPayload
	err := ctx.BodyParser(&payload)
	if err != nil {
		return cerror.ErrorBadRequest.With(zap.Error(err))
	}

	err = h.validate.Struct(&payload)
	if err != nil {
		return cerror.NewValidationError(err)
	}

	user, err := h.userService.CreateUser(ctx.Context(), &payload)
	if err != nil {
		return err
	}

	log.Infow(logger.EventFinishedSuccessfully, zap.Uint("userId", user.Id))
	return ctx.
		Status(fiber.StatusCreated).
		JSON(user)
}

func (h *handler) DeleteUserById(ctx *fiber.Ctx) error {
	log := logger.With(ctx, zap.String(eventNameField, "deleteUserById"))

	userId, err := userIdParam(ctx)
	if err != nil {
		return err
	}

	user, err := h.userService.DeleteUserById(ctx.Context(), userId)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(user)
}

func (h *handler) Login(ctx *fiber.Ctx) error {
	log := logger.With(ctx, zap.String(eventNameField, "login"))

	var payload LoginPayload
	err := ctx.BodyParser(&payload)
	if err != nil {
		return cerror.ErrorBadRequest.With(zap.Error(err))
	}

	err = h.validate.Struct(&payload)
	if err != nil {
		return cerror.NewValidationError(err)
	}

	response, err := h.userService.Login(ctx.Context(), &payload)
	if err != nil {
		return err
	}

	log.Infow(logger.EventFinishedSuccessfully, zap.Uint("userId", response.Id))
	return ctx.
		Status(fiber.StatusOK).
		JSON(response)
}

func (h *handler) RefreshTokens(ctx *fiber.Ctx) error {
	log := logger.With(ctx, zap.String(eventNameField, "refreshTokens"))

	var payload RefreshTokenPayload
	if len(ctx.Body()) > 0 {
		err := ctx.BodyParser(&payload)
		if err != nil {
			return cerror.ErrorBadRequest.With(zap.Error(err))
		}
	}

	if payload.RefreshToken == "" {
		return cerror.ErrorMissingRefreshToken
	}

	tokens, err := h.userService.RefreshTokens(ctx.Context(), payload.RefreshToken)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(tokens)
}

func userIdParam(ctx *fiber.Ctx) (uint, error) {
	userId, err := ctx.ParamsInt("id")
	if err != nil || userId <= 0 {
		return 0, cerror.ErrorInvalidUserId.With(zap.String("id", ctx.Params("id")))
	}

	return uint(userId), nil
}

// newValidator reports fields by their json name so error paths match the request body.
func newValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return validate
}
