package model

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey" json:"-"`
	Username     string    `gorm:"uniqueIndex;size:150;not null" json:"username"`
	Email        string    `gorm:"size:254" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Created      time.Time `json:"created"`
}

// AuthToken is the opaque bearer credential for a user. The uniqueness
// constraint on UserID guarantees at most one live token per user.
type AuthToken struct {
	Key     string    `gorm:"primaryKey;size:40" json:"key"`
	UserID  uint      `gorm:"uniqueIndex;not null" json:"-"`
	Created time.Time `json:"created"`
}
