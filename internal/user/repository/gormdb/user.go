package gormdb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"inventory-tracker/internal/user"
	repo "inventory-tracker/internal/user/repository"
)

// CreateUser inserts a user row. Unique index violations surface as
// repo.ErrDuplicateKey.
func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (user.User, error) {
	m := userModel{
		Username:  opt.Username,
		Email:     nullableEmail(opt.Email),
		Password:  opt.PasswordHash,
		FirstName: opt.FirstName,
		LastName:  opt.LastName,
		IsActive:  true,
	}
	err := r.db.WithContext(ctx).Create(&m).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		r.l.Warnf(ctx, "%s: duplicate username or email", r.dsn("CreateUser"))
		return user.User{}, repo.ErrDuplicateKey
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return user.User{}, repo.ErrFailedToInsert
	}
	return m.toEntity(), nil
}

// GetOneUser returns a zero-value User (ID == 0) when nothing matches.
func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (user.User, error) {
	var m userModel
	err := r.db.WithContext(ctx).Where("id = ?", opt.ID).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
		return user.User{}, repo.ErrFailedToGet
	}
	return m.toEntity(), nil
}

func (r *implRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if email == "" {
		return false, nil
	}
	return r.exists(ctx, "ExistsByEmail", "email = ?", email)
}

func (r *implRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, "ExistsByUsername", "username = ?", username)
}

func (r *implRepository) exists(ctx context.Context, method, cond string, arg any) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&userModel{}).Where(cond, arg).Count(&count).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn(method), err)
		return false, repo.ErrFailedToGet
	}
	return count > 0, nil
}
