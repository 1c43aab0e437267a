// internal/models/user.go
package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

type User struct {
	BaseModel
	Email        string `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string `json:"-" gorm:"size:255;not null"`
	FirstName    string `json:"first_name" gorm:"size:100"`
	LastName     string `json:"last_name" gorm:"size:100"`
	IsStaff      bool   `json:"is_staff" gorm:"default:false"`
	// Accounts start inactive and are enabled through the activation link.
	IsActive            bool       `json:"is_active" gorm:"default:false"`
	ActivationToken     string     `json:"-" gorm:"size:64;index"`
	ActivationExpiresAt *time.Time `json:"-"`
	LastLoginAt         *time.Time `json:"last_login_at"`

	// Relationships
	Orders        []Order        `json:"orders,omitempty" gorm:"foreignKey:UserID"`
	Reviews       []Review       `json:"reviews,omitempty" gorm:"foreignKey:UserID"`
	WishlistItems []WishlistItem `json:"wishlist_items,omitempty" gorm:"foreignKey:UserID"`
	Carts         []Cart         `json:"carts,omitempty" gorm:"foreignKey:UserID"`
}

func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}
