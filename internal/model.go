package user

import "time"

type User struct {
	Id          uint      `json:"id" gorm:"primaryKey"`
	Uuid        string    `json:"uuid" gorm:"column:uuid;uniqueIndex;not null;<-:create"`
	Name        string    `json:"name" gorm:"not null"`
	Surname     string    `json:"surname" gorm:"not null"`
	Login       string    `json:"login" gorm:"uniqueIndex;not null"`
	Password    string    `json:"-" gorm:"not null"`
	Role        string    `json:"role" gorm:"not null"`
	Rank        string    `json:"rank" gorm:"not null"`
	Appointment string    `json:"appointment" gorm:"not null"`
	Chats       []Chat    `json:"chats" gorm:"many2many:user_chats;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Chat struct {
	Id        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateUserPayload struct {
	Name        string `json:"name" validate:"required,max=255"`
	Surname     string `json:"surname" validate:"required,max=255"`
	Login       string `json:"login" validate:"required,max=255"`
	Password    string `json:"password" validate:"required,max=72"`
	Appointment string `json:"appointment" validate:"required,max=255"`
	Rank        string `json:"rank" validate:"required,max=255"`
	Role        string `json:"role" validate:"required,max=255"`
}

type LoginPayload struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenPayload struct {
	RefreshToken string `json:"refreshToken"`
}

type LoginResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	Id           uint   `json:"id"`
	Uuid         string `json:"uuid"`
	Name         string `json:"name"`
	Surname      string `json:"surname"`
}
