package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/billcraft/billcraft-api/internal/domain/entity"
)

// CompanyProfileRepository defines the interface for company profile data access
type CompanyProfileRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.CompanyProfile, error)
	Create(ctx context.Context, profile *entity.CompanyProfile) error
	Update(ctx context.Context, profile *entity.CompanyProfile) error
}
