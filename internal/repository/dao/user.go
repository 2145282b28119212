package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/starevents/starevents-api/internal/domain"
)

var (
	ErrUserEmailExists   = domain.ErrUserEmailExists
	ErrUserNotFound      = domain.ErrUserNotFound
	ErrUserHasDependents = domain.ErrUserHasDependents
)

type User struct {
	ID uint `gorm:"primaryKey"`

	Email    string `gorm:"unique;not null"`
	Password string `gorm:"not null"`

	FirstName string `gorm:"not null"`
	LastName  string `gorm:"not null"`
	City      string
	Role      string `gorm:"not null;index;check:chk_users_role,role IN ('Customer','Organizer','Admin')"`

	DateJoined time.Time `gorm:"not null"`
	LastLogin  *time.Time
	IsActive   bool `gorm:"not null;default:true"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type UserDAO struct {
	db *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{
		db: db,
	}
}

func (d *UserDAO) Insert(ctx context.Context, user User) (User, error) {
	result := d.db.WithContext(ctx).Create(&user)
	if result.Error != nil {
		if isUniqueViolation(result.Error, "uni_users_email") {
			return User{}, ErrUserEmailExists
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindByID(ctx context.Context, id uint) (User, error) {
	var user User

	result := d.db.WithContext(ctx).First(&user, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindByEmail(ctx context.Context, email string) (User, error) {
	var user User

	result := d.db.WithContext(ctx).First(&user, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

// List returns users matching search (name or email) and role, newest first.
func (d *UserDAO) List(ctx context.Context, search, role string) ([]User, error) {
	var users []User

	q := d.db.WithContext(ctx).Model(&User{})
	if search != "" {
		like := containsPattern(search)
		q = q.Where("first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ?", like, like, like)
	}
	if role != "" {
		q = q.Where("role = ?", role)
	}

	if err := q.Order("date_joined DESC").Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

// Update writes the given columns of user id.
func (d *UserDAO) Update(ctx context.Context, id uint, fields map[string]interface{}) (User, error) {
	result := d.db.WithContext(ctx).Model(&User{ID: id}).Updates(fields)
	if result.Error != nil {
		if isUniqueViolation(result.Error, "uni_users_email") {
			return User{}, ErrUserEmailExists
		}
		return User{}, result.Error
	}
	if result.RowsAffected == 0 {
		return User{}, ErrUserNotFound
	}

	return d.FindByID(ctx, id)
}

func (d *UserDAO) TouchLastLogin(ctx context.Context, id uint, at time.Time) error {
	return d.db.WithContext(ctx).Model(&User{ID: id}).Update("last_login", at).Error
}

// Delete removes a user that owns no events, venues or bookings.
func (d *UserDAO) Delete(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var owned int64
		err := tx.Raw(`
			SELECT (SELECT COUNT(*) FROM events WHERE organizer_id = ?)
			     + (SELECT COUNT(*) FROM venues WHERE created_by = ?)
			     + (SELECT COUNT(*) FROM bookings WHERE user_id = ?)`, id, id, id).
			Scan(&owned).Error
		if err != nil {
			return fmt.Errorf("count dependents -> %w", err)
		}
		if owned > 0 {
			return ErrUserHasDependents
		}

		result := tx.Delete(&User{}, id)
		if result.Error != nil {
			if isForeignKeyViolation(result.Error) {
				return ErrUserHasDependents
			}
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrUserNotFound
		}

		return nil
	})
}
