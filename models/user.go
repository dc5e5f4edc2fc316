package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

type User struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:50;not null" json:"name" validate:"required,min=3,max=50"`
	Email     string    `gorm:"uniqueIndex;size:255;not null" json:"email" validate:"required,email"`
	Password  string    `gorm:"size:100;not null" json:"-" validate:"required,min=6,max=100"` // hashed, never serialised
	Role      Role      `gorm:"type:VARCHAR(20);default:'user'" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Validate runs the field rules against the plaintext password, so it must be
// called before SetPassword replaces it with the hash.
func (u *User) Validate() ValidationErrors {
	return validateStruct(u, userMessages)
}

// SetPassword replaces the plaintext password with its bcrypt hash.
func (u *User) SetPassword(plain string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

// ComparePassword reports whether the plaintext matches the stored hash.
func (u *User) ComparePassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plain)) == nil
}

var userMessages = map[string]string{
	"Name.required":     "Name is required",
	"Name.min":          "Name must be at least 3 characters long",
	"Name.max":          "Name cannot exceed 50 characters long",
	"Email.required":    "Email is required",
	"Email.email":       "Please provide a valid email address",
	"Password.required": "Password is required",
	"Password.min":      "Password must be at least 6 characters long",
	"Password.max":      "Password cannot exceed 100 characters",
}
