package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/JGS-JAVA/albaing-personalpart/domain"
)

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// DBUser represents the database model for User (with GORM tags)
type DBUser struct {
	ID           uint       `gorm:"primaryKey"`
	Email        string     `gorm:"uniqueIndex;size:255"`
	PasswordHash string     `gorm:"column:password"`
	Name         string     `gorm:"index;size:64"`
	Birthdate    *time.Time
	Gender       string     `gorm:"size:16"`
	Phone        string     `gorm:"uniqueIndex;size:32"`
	Address      string     `gorm:"size:255"`
	ProfileImage string     `gorm:"size:512"`
	TermsAgreed  bool
	IsAdmin      bool           `gorm:"index"`
	KakaoID      string         `gorm:"index;size:64"`
	NaverID      string         `gorm:"index;size:64"`
	CreatedAt    time.Time      `gorm:"index"`
	UpdatedAt    time.Time      `gorm:"index"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBUser) TableName() string {
	return "users"
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create implements domain.UserRepository. The unique constraints on email
// and phone are the backstop for the check-then-create race window; a
// duplicate-key violation surfaces as ErrAccountExists.
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrAccountExists
		}
		return err
	}
	user.ID = dbUser.ID
	return nil
}

// ExistsByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&DBUser{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// ExistsByPhone implements domain.UserRepository
func (r *UserRepositoryImpl) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&DBUser{}).Where("phone = ?", phone).Count(&count).Error
	return count > 0, err
}

// FindByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByCredentialMatch implements domain.UserRepository. Used by the
// find-my-email flow; name and phone must both match exactly.
func (r *UserRepositoryImpl) FindByCredentialMatch(ctx context.Context, name, phone string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("name = ? AND phone = ?", name, phone).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// Update implements domain.UserRepository
func (r *UserRepositoryImpl) Update(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Save(r.domainToDB(user)).Error
}

// UpdatePassword implements domain.UserRepository
func (r *UserRepositoryImpl) UpdatePassword(ctx context.Context, email, newHash string) error {
	return r.db.WithContext(ctx).Model(&DBUser{}).Where("email = ?", email).Update("password", newHash).Error
}

// Delete implements domain.UserRepository
func (r *UserRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&DBUser{}, id).Error
}

func (r *UserRepositoryImpl) domainToDB(user *domain.User) *DBUser {
	return &DBUser{
		ID:           user.ID,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Name:         user.Name,
		Birthdate:    user.Birthdate,
		Gender:       string(user.Gender),
		Phone:        user.Phone,
		Address:      user.Address,
		ProfileImage: user.ProfileImage,
		TermsAgreed:  user.TermsAgreed,
		IsAdmin:      user.IsAdmin,
		KakaoID:      user.KakaoID,
		NaverID:      user.NaverID,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

func (r *UserRepositoryImpl) dbToDomain(dbUser *DBUser) *domain.User {
	return &domain.User{
		ID:           dbUser.ID,
		Email:        dbUser.Email,
		PasswordHash: dbUser.PasswordHash,
		Name:         dbUser.Name,
		Birthdate:    dbUser.Birthdate,
		Gender:       domain.Gender(dbUser.Gender),
		Phone:        dbUser.Phone,
		Address:      dbUser.Address,
		ProfileImage: dbUser.ProfileImage,
		TermsAgreed:  dbUser.TermsAgreed,
		IsAdmin:      dbUser.IsAdmin,
		KakaoID:      dbUser.KakaoID,
		NaverID:      dbUser.NaverID,
		CreatedAt:    dbUser.CreatedAt,
		UpdatedAt:    dbUser.UpdatedAt,
	}
}
