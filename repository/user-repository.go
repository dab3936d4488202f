package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"scholarship/engine"
	"scholarship/utils"

	"gorm.io/gorm"
)

type Permission string

const (
	PermissionStudent   Permission = "student"
	PermissionReviewer  Permission = "reviewer"
	PermissionCommittee Permission = "committee"
	PermissionAdmin     Permission = "admin"
)

type User struct {
	ID          int          `gorm:"primaryKey;autoIncrement"`
	Username    string       `gorm:"not null;uniqueIndex"`
	Email       string       `gorm:"not null;uniqueIndex"`
	Permissions []Permission `gorm:"serializer:json;type:text;not null"`
	CreatedAt   time.Time
}

func (u *User) HasPermission(permission Permission) bool {
	return utils.Contains(u.Permissions, permission)
}

func (u *User) PermissionStrings() []string {
	permissions := make([]string, len(u.Permissions))
	for i, p := range u.Permissions {
		permissions[i] = string(p)
	}
	return permissions
}

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) GetUserById(userId int) (*User, error) {
	var user User
	result := r.DB.First(&user, userId)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("user %d: %w", userId, engine.ErrNotFound)
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

func (r *UserRepository) SaveUser(user *User) (*User, error) {
	result := r.DB.Save(user)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to save user: %v", result.Error)
	}
	return user, nil
}

// IsReviewer reports whether the user exists and carries the reviewer
// permission. Unknown users are not reviewers.
func (r *UserRepository) IsReviewer(ctx context.Context, userId int) (bool, error) {
	var user User
	result := r.DB.WithContext(ctx).First(&user, userId)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if result.Error != nil {
		return false, result.Error
	}
	return user.HasPermission(PermissionReviewer), nil
}
