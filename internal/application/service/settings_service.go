package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/billcraft/billcraft-api/internal/domain/entity"
	"github.com/billcraft/billcraft-api/internal/domain/repository"
)

// SettingsService handles company profile business logic
type SettingsService struct {
	profileRepo repository.CompanyProfileRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(profileRepo repository.CompanyProfileRepository) *SettingsService {
	return &SettingsService{
		profileRepo: profileRepo,
	}
}

// GetCompanyProfile retrieves the user's company profile, creating defaults
// if none exists yet
func (s *SettingsService) GetCompanyProfile(ctx context.Context, userID uuid.UUID) (*entity.CompanyProfile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if profile == nil {
		profile = &entity.CompanyProfile{
			UserID:            userID,
			CompanyName:       "My Company",
			Currency:          "INR",
			QuoteValidityDays: 30,
			InvoiceDueDays:    30,
		}
		if err := s.profileRepo.Create(ctx, profile); err != nil {
			return nil, err
		}
	}

	return profile, nil
}

// UpdateCompanyProfileInput represents the input for updating the profile
type UpdateCompanyProfileInput struct {
	UserID              uuid.UUID
	CompanyName         string
	GSTIN               *string
	Email               *string
	Phone               *string
	Address             *string
	City                *string
	State               *string
	Pincode             *string
	Currency            string
	QuoteValidityDays   int
	InvoiceDueDays      int
	DefaultQuoteTerms   *string
	DefaultInvoiceTerms *string
	BankAccountName     *string
	BankAccountNumber   *string
	BankName            *string
	BankIFSC            *string
}

// UpdateCompanyProfile updates the user's company profile
func (s *SettingsService) UpdateCompanyProfile(ctx context.Context, input *UpdateCompanyProfileInput) (*entity.CompanyProfile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if profile == nil {
		profile = &entity.CompanyProfile{
			UserID: input.UserID,
		}
	}

	profile.CompanyName = input.CompanyName
	profile.GSTIN = input.GSTIN
	profile.Email = input.Email
	profile.Phone = input.Phone
	profile.Address = input.Address
	profile.City = input.City
	profile.State = input.State
	profile.Pincode = input.Pincode
	if input.Currency != "" {
		profile.Currency = input.Currency
	}
	if input.QuoteValidityDays > 0 {
		profile.QuoteValidityDays = input.QuoteValidityDays
	}
	if input.InvoiceDueDays > 0 {
		profile.InvoiceDueDays = input.InvoiceDueDays
	}
	profile.DefaultQuoteTerms = input.DefaultQuoteTerms
	profile.DefaultInvoiceTerms = input.DefaultInvoiceTerms
	profile.BankAccountName = input.BankAccountName
	profile.BankAccountNumber = input.BankAccountNumber
	profile.BankName = input.BankName
	profile.BankIFSC = input.BankIFSC

	if profile.ID == uuid.Nil {
		if err := s.profileRepo.Create(ctx, profile); err != nil {
			return nil, err
		}
	} else {
		if err := s.profileRepo.Update(ctx, profile); err != nil {
			return nil, err
		}
	}

	return profile, nil
}
