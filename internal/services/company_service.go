package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/joblane/joblane-backend/internal/common"
	"github.com/joblane/joblane-backend/internal/dtos"
	"github.com/joblane/joblane-backend/internal/models"
	"github.com/joblane/joblane-backend/internal/repository"
	"github.com/joblane/joblane-backend/internal/storage"
)

type CompanyService struct {
	companies repository.CompanyRepository
	uploader  storage.Uploader
}

func NewCompanyService(companies repository.CompanyRepository, uploader storage.Uploader) *CompanyService {
	return &CompanyService{companies: companies, uploader: uploader}
}

func (s *CompanyService) Register(ctx context.Context, name string, ownerID uuid.UUID) (*models.Company, error) {
	if _, err := s.companies.FindByName(ctx, name); err == nil {
		return nil, common.NewError(common.CodeConflict, "You can't register the same company.", nil)
	} else if !common.Is(err, common.CodeNotFound) {
		return nil, err
	}

	company := &models.Company{
		Name:   name,
		UserID: ownerID,
	}
	if err := s.companies.Create(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

func (s *CompanyService) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Company, error) {
	companies, err := s.companies.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if len(companies) == 0 {
		return nil, common.NewError(common.CodeNotFound, "Companies not found.", nil)
	}
	return companies, nil
}

func (s *CompanyService) GetByID(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	return s.companies.FindByID(ctx, id)
}

// Update is a partial update of only the supplied fields. The caller identity
// is available upstream but not compared against the stored owner; the wire
// contract keeps that behavior.
func (s *CompanyService) Update(ctx context.Context, id uuid.UUID, req *dtos.UpdateCompanyRequest, logo *FileUpload) (*models.Company, error) {
	company, err := s.companies.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		company.Name = req.Name
	}
	if req.Description != "" {
		company.Description = req.Description
	}
	if req.Website != "" {
		company.Website = req.Website
	}
	if req.Location != "" {
		company.Location = req.Location
	}

	if logo != nil {
		url, err := s.uploader.Upload(ctx, logo.Data, logo.Filename)
		if err != nil {
			return nil, err
		}
		company.Logo = url
	}

	if err := s.companies.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}
