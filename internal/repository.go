package user

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"user-auth-api/pkg/cerror"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=user

const chatsAssociation = "Chats"

type Repository interface {
	FindUsers(ctx context.Context) ([]User, error)
	FindUserWithId(ctx context.Context, userId uint) (*User, error)
	FindUserWithLogin(ctx context.Context, login string) (*User, error)
	InsertUser(ctx context.Context, user *User) error
	DeleteUserWithId(ctx context.Context, userId uint) (*User, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

func (r *repository) FindUsers(ctx context.Context) ([]User, error) {
	users := make([]User, 0)
	err := r.db.
		WithContext(ctx).
		Preload(chatsAssociation).
		Order("id").
		Find(&users).
		Error
	if err != nil {
		return nil, storeError(err, "error occurred while find users")
	}

	return users, nil
}

func (r *repository) FindUserWithId(ctx context.Context, userId uint) (*User, error) {
	var user User
	err := r.db.
		WithContext(ctx).
		Preload(chatsAssociation).
		First(&user, userId).
		Error
	if err != nil {
		return nil, storeError(err, "error occurred while find user by id")
	}

	return &user, nil
}

// FindUserWithLogin matches the login exactly and picks the lowest id on ties.
func (r *repository) FindUserWithLogin(ctx context.Context, login string) (*User, error) {
	var user User
	err := r.db.
		WithContext(ctx).
		Where("login = ?", login).
		First(&user).
		Error
	if err != nil {
		return nil, storeError(err, "error occurred while find user by login")
	}

	return &user, nil
}

// InsertUser fills in the store assigned id and timestamps on success.
func (r *repository) InsertUser(ctx context.Context, user *User) error {
	err := r.db.
		WithContext(ctx).
		Omit(chatsAssociation).
		Create(user).
		Error
	if err != nil {
		return storeError(err, "error occurred while insert user")
	}

	return nil
}

// DeleteUserWithId removes the user together with its chat memberships and
// returns the record as it was before removal.
func (r *repository) DeleteUserWithId(ctx context.Context, userId uint) (*User, error) {
	var user User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.
			Preload(chatsAssociation).
			First(&user, userId).
			Error
		if err != nil {
			return err
		}

		result := tx.Select(chatsAssociation).Delete(&user)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return nil
	})
	if err != nil {
		return nil, storeError(err, "error occurred while delete user")
	}

	return &user, nil
}

func storeError(err error, logMessage string) *cerror.CustomError {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return cerror.ErrorUserNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return cerror.ErrorUserAlreadyExists.With(zap.Error(err))
	default:
		return cerror.NewError(
			fiber.StatusInternalServerError,
			logMessage,
			zap.Error(err),
		).SetMessage(cerror.MessageInternalServerError)
	}
}
