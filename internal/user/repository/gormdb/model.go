package gormdb

import (
	"time"

	"inventory-tracker/internal/user"
)

// userModel keeps Email nullable so that any number of accounts may omit it
// while non-empty addresses stay unique.
type userModel struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	Username   string    `gorm:"size:150;not null;uniqueIndex"`
	Email      *string   `gorm:"size:254;uniqueIndex"`
	Password   string    `gorm:"size:128;not null"`
	FirstName  string    `gorm:"size:150;not null;default:''"`
	LastName   string    `gorm:"size:150;not null;default:''"`
	IsActive   bool      `gorm:"not null;default:true"`
	DateJoined time.Time `gorm:"autoCreateTime;not null"`
}

func (userModel) TableName() string {
	return "users"
}

func (m userModel) toEntity() user.User {
	u := user.User{
		ID:           m.ID,
		Username:     m.Username,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		PasswordHash: m.Password,
		DateJoined:   m.DateJoined.UTC(),
	}
	if m.Email != nil {
		u.Email = *m.Email
	}
	return u
}

func nullableEmail(email string) *string {
	if email == "" {
		return nil
	}
	return &email
}
