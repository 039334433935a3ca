package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/JGS-JAVA/albaing-personalpart/domain"
)

// CompanyRepositoryImpl implements domain.CompanyRepository using GORM
type CompanyRepositoryImpl struct {
	db *gorm.DB
}

// DBCompany represents the database model for Company (with GORM tags)
type DBCompany struct {
	ID                 uint   `gorm:"primaryKey"`
	Name               string `gorm:"index;size:128"`
	RegistrationNumber string `gorm:"size:32"`
	OwnerName          string `gorm:"size:64"`
	OpenDate           *time.Time
	PasswordHash       string `gorm:"column:password"`
	Email              string `gorm:"uniqueIndex;size:255"`
	Phone              string `gorm:"uniqueIndex;size:32"`
	Address            string `gorm:"size:255"`
	ApprovalStatus     string `gorm:"index;size:16"`
	Logo               string `gorm:"size:512"`
	Description        string
	CreatedAt          time.Time      `gorm:"index"`
	UpdatedAt          time.Time      `gorm:"index"`
	DeletedAt          gorm.DeletedAt `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBCompany) TableName() string {
	return "companies"
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *gorm.DB) domain.CompanyRepository {
	return &CompanyRepositoryImpl{db: db}
}

// Create implements domain.CompanyRepository; duplicate-key violations from
// the store's unique constraints surface as ErrAccountExists.
func (r *CompanyRepositoryImpl) Create(ctx context.Context, company *domain.Company) error {
	dbCompany := r.domainToDB(company)
	if err := r.db.WithContext(ctx).Create(dbCompany).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrAccountExists
		}
		return err
	}
	company.ID = dbCompany.ID
	return nil
}

// ExistsByEmail implements domain.CompanyRepository
func (r *CompanyRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&DBCompany{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// ExistsByPhone implements domain.CompanyRepository
func (r *CompanyRepositoryImpl) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&DBCompany{}).Where("phone = ?", phone).Count(&count).Error
	return count > 0, err
}

// FindByEmail implements domain.CompanyRepository
func (r *CompanyRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.Company, error) {
	var dbCompany DBCompany
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&dbCompany).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbCompany), nil
}

// FindByID implements domain.CompanyRepository
func (r *CompanyRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Company, error) {
	var dbCompany DBCompany
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbCompany).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbCompany), nil
}

// FindByCredentialMatch implements domain.CompanyRepository. Recovery
// matches on the registered owner's name, not the company name.
func (r *CompanyRepositoryImpl) FindByCredentialMatch(ctx context.Context, name, phone string) (*domain.Company, error) {
	var dbCompany DBCompany
	err := r.db.WithContext(ctx).Where("owner_name = ? AND phone = ?", name, phone).First(&dbCompany).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbCompany), nil
}

// Update implements domain.CompanyRepository
func (r *CompanyRepositoryImpl) Update(ctx context.Context, company *domain.Company) error {
	return r.db.WithContext(ctx).Save(r.domainToDB(company)).Error
}

// UpdatePassword implements domain.CompanyRepository
func (r *CompanyRepositoryImpl) UpdatePassword(ctx context.Context, email, newHash string) error {
	return r.db.WithContext(ctx).Model(&DBCompany{}).Where("email = ?", email).Update("password", newHash).Error
}

// Delete implements domain.CompanyRepository
func (r *CompanyRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&DBCompany{}, id).Error
}

func (r *CompanyRepositoryImpl) domainToDB(company *domain.Company) *DBCompany {
	return &DBCompany{
		ID:                 company.ID,
		Name:               company.Name,
		RegistrationNumber: company.RegistrationNumber,
		OwnerName:          company.OwnerName,
		OpenDate:           company.OpenDate,
		PasswordHash:       company.PasswordHash,
		Email:              company.Email,
		Phone:              company.Phone,
		Address:            company.Address,
		ApprovalStatus:     string(company.ApprovalStatus),
		Logo:               company.Logo,
		Description:        company.Description,
		CreatedAt:          company.CreatedAt,
		UpdatedAt:          company.UpdatedAt,
	}
}

func (r *CompanyRepositoryImpl) dbToDomain(dbCompany *DBCompany) *domain.Company {
	return &domain.Company{
		ID:                 dbCompany.ID,
		Name:               dbCompany.Name,
		RegistrationNumber: dbCompany.RegistrationNumber,
		OwnerName:          dbCompany.OwnerName,
		OpenDate:           dbCompany.OpenDate,
		PasswordHash:       dbCompany.PasswordHash,
		Email:              dbCompany.Email,
		Phone:              dbCompany.Phone,
		Address:            dbCompany.Address,
		ApprovalStatus:     domain.ApprovalStatus(dbCompany.ApprovalStatus),
		Logo:               dbCompany.Logo,
		Description:        dbCompany.Description,
		CreatedAt:          dbCompany.CreatedAt,
		UpdatedAt:          dbCompany.UpdatedAt,
	}
}
