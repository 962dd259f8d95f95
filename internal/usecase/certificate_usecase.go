package usecase

import (
	"context"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
)

type certificateUsecase struct {
	certificateRepo domain.CertificateRepository
}

func NewCertificateUsecase(certificateRepo domain.CertificateRepository) domain.CertificateUsecase {
	return &certificateUsecase{certificateRepo: certificateRepo}
}

func (u *certificateUsecase) Create(ctx context.Context, certificate *domain.Certificate) (*domain.Certificate, error) {
	existing, err := u.certificateRepo.FindByNameAndPlatform(ctx, certificate.Name, certificate.Platform)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict("Certificate with this name and platform already exists")
	}

	certificate.ID = ""
	if err := u.certificateRepo.Save(ctx, certificate); err != nil {
		return nil, err
	}
	return certificate, nil
}

func (u *certificateUsecase) FindByNameAndPlatform(ctx context.Context, name, platform string) (*domain.Certificate, error) {
	return u.certificateRepo.FindByNameAndPlatform(ctx, name, platform)
}

func (u *certificateUsecase) FindByID(ctx context.Context, id string) (*domain.Certificate, error) {
	return u.certificateRepo.FindByID(ctx, id)
}

func (u *certificateUsecase) List(ctx context.Context) ([]domain.Certificate, error) {
	return u.certificateRepo.FindAll(ctx)
}

func (u *certificateUsecase) Update(ctx context.Context, id string, data domain.CertificateUpdate) (*domain.Certificate, error) {
	certificate, err := u.certificateRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if certificate == nil {
		return nil, apperror.NotFound("Certificate not found")
	}

	// (name, platform) is the uniqueness key; re-check the merged pair when it changes
	name, platform := certificate.Name, certificate.Platform
	if data.Name != nil {
		name = *data.Name
	}
	if data.Platform != nil {
		platform = *data.Platform
	}
	if name != certificate.Name || platform != certificate.Platform {
		existing, err := u.certificateRepo.FindByNameAndPlatform(ctx, name, platform)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, apperror.Conflict("Certificate with this name and platform already exists")
		}
	}

	certificate.Name = name
	certificate.Platform = platform
	if data.Date != nil {
		certificate.Date = *data.Date
	}
	if data.URL != nil {
		certificate.URL = *data.URL
	}
	if data.Category != nil {
		certificate.Category = *data.Category
	}

	if err := u.certificateRepo.Save(ctx, certificate); err != nil {
		return nil, err
	}
	return certificate, nil
}

func (u *certificateUsecase) Delete(ctx context.Context, id string) error {
	certificate, err := u.certificateRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if certificate == nil {
		return apperror.NotFound("Certificate not found")
	}
	return u.certificateRepo.Delete(ctx, id)
}

func (u *certificateUsecase) Seed(ctx context.Context) error {
	seed := []domain.Certificate{
		{
			Name:     "Node.js: REST APIs with authentication and permissions",
			Platform: "Alura",
			Date:     "2025-03-10",
			URL:      "https://cursos.alura.com.br/certificate/c2dd0442-a0f3-418e-9912-d810665587ec",
			Category: "Backend",
		},
		{
			Name:     "Node.js: cryptography and JWT tokens",
			Platform: "Alura",
			Date:     "2025-03-08",
			URL:      "https://cursos.alura.com.br/certificate/db2a6a62-fe9d-4d48-b067-1273b1cfb819",
			Category: "Backend",
		},
		{
			Name:     "Six Sigma White Belt",
			Platform: "Six Sigma",
			Date:     "2025-02-22",
			URL:      "https://dashboard.educate360.com/certification/white-belt",
			Category: "Agile",
		},
		{
			Name:     "Oracle Cloud Infrastructure 2024 Certified AI Foundations Associate",
			Platform: "Oracle",
			Date:     "2025-02-21",
			URL:      "https://catalog-education.oracle.com/pls/certview/sharebadge?id=40FDA11B",
			Category: "Backend",
		},
		{
			Name:     "Node.js: testing a REST API",
			Platform: "Alura",
			Date:     "2025-01-29",
			URL:      "https://cursos.alura.com.br/certificate/6a72f8f5-5287-4458-8283-2b71eda08002",
			Category: "Backend",
		},
	}

	for i := range seed {
		existing, err := u.certificateRepo.FindByNameAndPlatform(ctx, seed[i].Name, seed[i].Platform)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		if err := u.certificateRepo.Save(ctx, &seed[i]); err != nil {
			return err
		}
	}
	return nil
}
