package models

import (
	"frontrow/src/types"
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID         uint       `gorm:"primarykey" json:"id"`
	Name       string     `json:"name,omitempty"`
	Email      string     `gorm:"uniqueIndex" json:"email,omitempty"`
	UID        string     `json:"uid,omitempty"`
	ImageURL   string     `json:"image_url,omitempty"`
	Role       types.Role `gorm:"default:'USER'" json:"role,omitempty"`
	LastActive *time.Time `json:"last_active,omitempty"`

	Tickets []Ticket `gorm:"foreignKey:user_id" json:"tickets,omitempty"`

	types.Timestamps
}

func (u *User) IsAdmin() bool {
	return u.Role == types.ROLE_ADMIN
}

// FirstOrCreateByEmail resolves the identity-provider user to a local
// row, creating it on first login.
func FirstOrCreateByEmail(tx *gorm.DB, email, name, imageURL, uid string) (*User, error) {
	var user User
	err := tx.Where(&User{Email: email}).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}
	user = User{
		Email:    email,
		Name:     name,
		ImageURL: imageURL,
		UID:      uid,
		Role:     types.ROLE_USER,
	}
	if err := tx.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
