package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/billcraft/billcraft-api/internal/domain/entity"
	"github.com/billcraft/billcraft-api/internal/domain/repository"
)

type companyProfileRepository struct {
	db *gorm.DB
}

// NewCompanyProfileRepository creates a new company profile repository
func NewCompanyProfileRepository(db *gorm.DB) repository.CompanyProfileRepository {
	return &companyProfileRepository{db: db}
}

// GetByUserID retrieves the company profile for a user
func (r *companyProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.CompanyProfile, error) {
	var profile entity.CompanyProfile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// Create creates a new company profile
func (r *companyProfileRepository) Create(ctx context.Context, profile *entity.CompanyProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

// Update updates an existing company profile
func (r *companyProfileRepository) Update(ctx context.Context, profile *entity.CompanyProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}
