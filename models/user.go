package models

import (
	"time"
)

type UserRole string

const (
	RoleAdmin  UserRole = "Admin"
	RoleEditor UserRole = "Editor"
	RoleWriter UserRole = "Writer"
	RoleReader UserRole = "Reader"
)

type User struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null;size:50"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	Password     string    `json:"-" gorm:"not null"`
	Role         UserRole  `json:"role" gorm:"default:'Reader'"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	Verified     bool      `json:"verified" gorm:"default:false"`
	RefreshToken string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
