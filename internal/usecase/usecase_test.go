package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock Repositories
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) FindAll(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepo) Save(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockSkillRepo struct {
	mock.Mock
}

func (m *MockSkillRepo) FindByName(ctx context.Context, name string) (*domain.Skill, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Skill), args.Error(1)
}

func (m *MockSkillRepo) FindByID(ctx context.Context, id string) (*domain.Skill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Skill), args.Error(1)
}

func (m *MockSkillRepo) FindAll(ctx context.Context) ([]domain.Skill, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Skill), args.Error(1)
}

func (m *MockSkillRepo) Save(ctx context.Context, skill *domain.Skill) error {
	return m.Called(ctx, skill).Error(0)
}

func (m *MockSkillRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockExperienceRepo struct {
	mock.Mock
}

func (m *MockExperienceRepo) FindByRoleAndCompany(ctx context.Context, role, company string) (*domain.Experience, error) {
	args := m.Called(ctx, role, company)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Experience), args.Error(1)
}

func (m *MockExperienceRepo) FindByID(ctx context.Context, id string) (*domain.Experience, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Experience), args.Error(1)
}

func (m *MockExperienceRepo) FindAll(ctx context.Context) ([]domain.Experience, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Experience), args.Error(1)
}

func (m *MockExperienceRepo) Save(ctx context.Context, experience *domain.Experience) error {
	return m.Called(ctx, experience).Error(0)
}

func (m *MockExperienceRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockCertificateRepo struct {
	mock.Mock
}

func (m *MockCertificateRepo) FindByNameAndPlatform(ctx context.Context, name, platform string) (*domain.Certificate, error) {
	args := m.Called(ctx, name, platform)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Certificate), args.Error(1)
}

func (m *MockCertificateRepo) FindByID(ctx context.Context, id string) (*domain.Certificate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Certificate), args.Error(1)
}

func (m *MockCertificateRepo) FindAll(ctx context.Context) ([]domain.Certificate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Certificate), args.Error(1)
}

func (m *MockCertificateRepo) Save(ctx context.Context, certificate *domain.Certificate) error {
	return m.Called(ctx, certificate).Error(0)
}

func (m *MockCertificateRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// Mock Providers
type MockHasher struct {
	mock.Mock
}

func (m *MockHasher) Generate(plain string) (string, error) {
	args := m.Called(plain)
	return args.String(0), args.Error(1)
}

func (m *MockHasher) Compare(plain, hashed string) bool {
	return m.Called(plain, hashed).Bool(0)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Generate(subject string) (string, time.Time, error) {
	args := m.Called(subject)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func appErrCode(t *testing.T, err error) int {
	t.Helper()
	var appErr *apperror.AppError
	assert.True(t, errors.As(err, &appErr), "expected *apperror.AppError, got %T", err)
	return appErr.Code
}

func strPtr(s string) *string {
	return &s
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("Should return token and expiry on valid credentials", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockHasher := new(MockHasher)
		mockTokens := new(MockTokenIssuer)
		uc := usecase.NewAuthUsecase(mockRepo, mockHasher, mockTokens)

		expiresAt := time.Now().Add(24 * time.Hour)
		mockRepo.On("FindByUsername", ctx, "samuel").
			Return(&domain.User{ID: "u1", Username: "samuel", Password: "hashed"}, nil)
		mockHasher.On("Compare", "123456", "hashed").Return(true)
		mockTokens.On("Generate", "u1").Return("signed-token", expiresAt, nil)

		result, err := uc.Authenticate(ctx, "samuel", "123456")

		assert.NoError(t, err)
		assert.Equal(t, "signed-token", result.Token)
		assert.Equal(t, expiresAt.UnixMilli(), result.ExpireIn)
	})

	t.Run("Should reject unknown username and wrong password with the same message", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockHasher := new(MockHasher)
		mockTokens := new(MockTokenIssuer)
		uc := usecase.NewAuthUsecase(mockRepo, mockHasher, mockTokens)

		mockRepo.On("FindByUsername", ctx, "ghost").Return(nil, nil)
		mockRepo.On("FindByUsername", ctx, "samuel").
			Return(&domain.User{ID: "u1", Username: "samuel", Password: "hashed"}, nil)
		mockHasher.On("Compare", "wrong", "hashed").Return(false)

		_, errUnknown := uc.Authenticate(ctx, "ghost", "whatever")
		_, errWrongPass := uc.Authenticate(ctx, "samuel", "wrong")

		assert.Error(t, errUnknown)
		assert.Error(t, errWrongPass)
		assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
		assert.Equal(t, http.StatusUnauthorized, appErrCode(t, errUnknown))
		assert.Equal(t, http.StatusUnauthorized, appErrCode(t, errWrongPass))
		mockTokens.AssertNotCalled(t, "Generate", mock.Anything)
	})
}

func TestUserCreate(t *testing.T) {
	ctx := context.Background()
	validate := validator.New()

	t.Run("Should persist the hash, never the plaintext", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockHasher := new(MockHasher)
		uc := usecase.NewUserUsecase(mockRepo, mockHasher, validate)

		mockRepo.On("FindByUsername", ctx, "samuel").Return(nil, nil)
		mockHasher.On("Generate", "123456").Return("$2a$10$hash", nil)
		mockRepo.On("Save", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Username == "samuel" && u.Password == "$2a$10$hash"
		})).Return(nil)

		user, err := uc.Create(ctx, "samuel", "123456")

		assert.NoError(t, err)
		assert.Equal(t, "$2a$10$hash", user.Password)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should fail with conflict when username is taken", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockHasher := new(MockHasher)
		uc := usecase.NewUserUsecase(mockRepo, mockHasher, validate)

		mockRepo.On("FindByUsername", ctx, "samuel").
			Return(&domain.User{ID: "u1", Username: "samuel"}, nil)

		_, err := uc.Create(ctx, "samuel", "123456")

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, appErrCode(t, err))
		mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("Should reject a short password before touching the store", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockHasher := new(MockHasher)
		uc := usecase.NewUserUsecase(mockRepo, mockHasher, validate)

		_, err := uc.Create(ctx, "samuel", "123")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, appErrCode(t, err))
		mockRepo.AssertNotCalled(t, "FindByUsername", mock.Anything, mock.Anything)
	})
}

func TestSkillCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Should save when the name is free", func(t *testing.T) {
		mockRepo := new(MockSkillRepo)
		uc := usecase.NewSkillUsecase(mockRepo)

		mockRepo.On("FindByName", ctx, "Go").Return(nil, nil)
		mockRepo.On("Save", ctx, mock.MatchedBy(func(s *domain.Skill) bool {
			return s.Name == "Go" && s.ID == ""
		})).Return(nil)

		skill, err := uc.Create(ctx, &domain.Skill{Name: "Go", Level: "Advanced", Category: "Backend"})

		assert.NoError(t, err)
		assert.Equal(t, "Go", skill.Name)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should fail with conflict and leave the store untouched", func(t *testing.T) {
		mockRepo := new(MockSkillRepo)
		uc := usecase.NewSkillUsecase(mockRepo)

		mockRepo.On("FindByName", ctx, "Go").
			Return(&domain.Skill{ID: "s1", Name: "Go"}, nil)

		_, err := uc.Create(ctx, &domain.Skill{Name: "Go", Level: "Advanced", Category: "Backend"})

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, appErrCode(t, err))
		mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestEntityKeyLookups(t *testing.T) {
	ctx := context.Background()

	t.Run("Should find a skill by its name key", func(t *testing.T) {
		mockRepo := new(MockSkillRepo)
		uc := usecase.NewSkillUsecase(mockRepo)

		mockRepo.On("FindByName", ctx, "Go").
			Return(&domain.Skill{ID: "s1", Name: "Go"}, nil)

		skill, err := uc.FindByName(ctx, "Go")

		assert.NoError(t, err)
		assert.Equal(t, "s1", skill.ID)
	})

	t.Run("Should report absence as nil without an error", func(t *testing.T) {
		mockRepo := new(MockCertificateRepo)
		uc := usecase.NewCertificateUsecase(mockRepo)

		mockRepo.On("FindByNameAndPlatform", ctx, "Ghost Cert", "Alura").Return(nil, nil)

		certificate, err := uc.FindByNameAndPlatform(ctx, "Ghost Cert", "Alura")

		assert.NoError(t, err)
		assert.Nil(t, certificate)
	})
}

func TestSkillUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("Should fail with not found for an unknown id", func(t *testing.T) {
		mockRepo := new(MockSkillRepo)
		uc := usecase.NewSkillUsecase(mockRepo)

		mockRepo.On("FindByID", ctx, "missing").Return(nil, nil)

		_, err := uc.Update(ctx, "missing", domain.SkillUpdate{Level: strPtr("Advanced")})

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, appErrCode(t, err))
	})

	t.Run("Should reject a rename onto another skill's name", func(t *testing.T) {
		mockRepo := new(MockSkillRepo)
		uc := usecase.NewSkillUsecase(mockRepo)

		mockRepo.On("FindByID", ctx, "s1").
			Return(&domain.Skill{ID: "s1", Name: "Go", Level: "Advanced", Category: "Backend"}, nil)
		mockRepo.On("FindByName", ctx, "PHP").
			Return(&domain.Skill{ID: "s2", Name: "PHP"}, nil)

		_, err := uc.Update(ctx, "s1", domain.SkillUpdate{Name: strPtr("PHP")})

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, appErrCode(t, err))
		mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("Should apply only the provided fields", func(t *testing.T) {
		mockRepo := new(MockSkillRepo)
		uc := usecase.NewSkillUsecase(mockRepo)

		mockRepo.On("FindByID", ctx, "s1").
			Return(&domain.Skill{ID: "s1", Name: "Go", Level: "Intermediate", Category: "Backend"}, nil)
		mockRepo.On("Save", ctx, mock.Anything).Return(nil)

		skill, err := uc.Update(ctx, "s1", domain.SkillUpdate{Level: strPtr("Advanced")})

		assert.NoError(t, err)
		assert.Equal(t, "Go", skill.Name)
		assert.Equal(t, "Advanced", skill.Level)
		assert.Equal(t, "Backend", skill.Category)
	})
}

func TestSkillDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Should fail with not found for an unknown id", func(t *testing.T) {
		mockRepo := new(MockSkillRepo)
		uc := usecase.NewSkillUsecase(mockRepo)

		mockRepo.On("FindByID", ctx, "missing").Return(nil, nil)

		err := uc.Delete(ctx, "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, appErrCode(t, err))
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Should delete an existing skill", func(t *testing.T) {
		mockRepo := new(MockSkillRepo)
		uc := usecase.NewSkillUsecase(mockRepo)

		mockRepo.On("FindByID", ctx, "s1").
			Return(&domain.Skill{ID: "s1", Name: "Go"}, nil)
		mockRepo.On("Delete", ctx, "s1").Return(nil)

		err := uc.Delete(ctx, "s1")

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestSkillSeed(t *testing.T) {
	ctx := context.Background()

	t.Run("Should skip names that already exist", func(t *testing.T) {
		mockRepo := new(MockSkillRepo)
		uc := usecase.NewSkillUsecase(mockRepo)

		mockRepo.On("FindByName", ctx, "PHP").
			Return(&domain.Skill{ID: "s1", Name: "PHP"}, nil)
		mockRepo.On("FindByName", ctx, mock.Anything).Return(nil, nil)
		mockRepo.On("Save", ctx, mock.Anything).Return(nil)

		err := uc.Seed(ctx)

		assert.NoError(t, err)
		mockRepo.AssertNotCalled(t, "Save", ctx, mock.MatchedBy(func(s *domain.Skill) bool {
			return s.Name == "PHP"
		}))
	})
}

func TestExperienceUpdate(t *testing.T) {
	ctx := context.Background()

	current := func() *domain.Experience {
		return &domain.Experience{
			ID:      "e1",
			Role:    "Technical Lead",
			Company: "Campsoft",
			Period:  "2020 - 2023",
		}
	}

	t.Run("Should re-check the pair when only the role changes", func(t *testing.T) {
		mockRepo := new(MockExperienceRepo)
		uc := usecase.NewExperienceUsecase(mockRepo)

		mockRepo.On("FindByID", ctx, "e1").Return(current(), nil)
		mockRepo.On("FindByRoleAndCompany", ctx, "IT Manager", "Campsoft").
			Return(&domain.Experience{ID: "e2", Role: "IT Manager", Company: "Campsoft"}, nil)

		_, err := uc.Update(ctx, "e1", domain.ExperienceUpdate{Role: strPtr("IT Manager")})

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, appErrCode(t, err))
		mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("Should update when the merged pair is free", func(t *testing.T) {
		mockRepo := new(MockExperienceRepo)
		uc := usecase.NewExperienceUsecase(mockRepo)

		mockRepo.On("FindByID", ctx, "e1").Return(current(), nil)
		mockRepo.On("FindByRoleAndCompany", ctx, "IT Manager", "Campsoft").Return(nil, nil)
		mockRepo.On("Save", ctx, mock.Anything).Return(nil)

		experience, err := uc.Update(ctx, "e1", domain.ExperienceUpdate{Role: strPtr("IT Manager")})

		assert.NoError(t, err)
		assert.Equal(t, "IT Manager", experience.Role)
		assert.Equal(t, "Campsoft", experience.Company)
	})

	t.Run("Should skip the pair check when the key is unchanged", func(t *testing.T) {
		mockRepo := new(MockExperienceRepo)
		uc := usecase.NewExperienceUsecase(mockRepo)

		mockRepo.On("FindByID", ctx, "e1").Return(current(), nil)
		mockRepo.On("Save", ctx, mock.Anything).Return(nil)

		experience, err := uc.Update(ctx, "e1", domain.ExperienceUpdate{Period: strPtr("2020 - Present")})

		assert.NoError(t, err)
		assert.Equal(t, "2020 - Present", experience.Period)
		mockRepo.AssertNotCalled(t, "FindByRoleAndCompany", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestDashboard(t *testing.T) {
	ctx := context.Background()

	t.Run("Should group skills by category in first-seen order", func(t *testing.T) {
		mockSkills := new(MockSkillRepo)
		mockCerts := new(MockCertificateRepo)
		uc := usecase.NewDashboardUsecase(mockSkills, mockCerts)

		mockSkills.On("FindAll", ctx).Return([]domain.Skill{
			{Name: "PHP", Level: "Advanced", Category: "Backend"},
			{Name: "React", Level: "Advanced", Category: "Frontend"},
			{Name: "Node.js", Level: "Advanced", Category: "Backend"},
			{Name: "Docker", Level: "Advanced", Category: "DevOps"},
		}, nil)

		counts, err := uc.SkillsByCategory(ctx)

		assert.NoError(t, err)
		assert.Equal(t, []string{"Backend", "Frontend", "DevOps"}, counts.Labels)
		assert.Equal(t, []int{2, 1, 1}, counts.Counts)
	})

	t.Run("Should split category counts by level for the radar chart", func(t *testing.T) {
		mockSkills := new(MockSkillRepo)
		mockCerts := new(MockCertificateRepo)
		uc := usecase.NewDashboardUsecase(mockSkills, mockCerts)

		mockSkills.On("FindAll", ctx).Return([]domain.Skill{
			{Name: "PHP", Level: "Advanced", Category: "Backend"},
			{Name: "GraphQL", Level: "Intermediate", Category: "Backend"},
			{Name: "Node.js", Level: "Advanced", Category: "Backend"},
			{Name: "React", Level: "Advanced", Category: "Frontend"},
		}, nil)

		radar, err := uc.SkillsRadarData(ctx)

		assert.NoError(t, err)
		assert.Equal(t, []string{"Backend", "Frontend"}, radar.Categories)
		assert.Equal(t, []string{"Advanced", "Intermediate"}, radar.Levels)
		assert.Equal(t, [][]int{{2, 1}, {1, 0}}, radar.Counts)
	})

	t.Run("Should bucket certificates into chronological half-year periods", func(t *testing.T) {
		mockSkills := new(MockSkillRepo)
		mockCerts := new(MockCertificateRepo)
		uc := usecase.NewDashboardUsecase(mockSkills, mockCerts)

		mockCerts.On("FindAll", ctx).Return([]domain.Certificate{
			{Name: "Late Cert", Platform: "Alura", Date: "2024-09-15"},
			{Name: "Early Cert", Platform: "Alura", Date: "2024-02-01"},
			{Name: "Newer Cert", Platform: "Oracle", Date: "2025-03-10"},
			{Name: "Sibling Cert", Platform: "Alura", Date: "2025-01-29"},
			{Name: "Broken Cert", Platform: "Alura", Date: "not-a-date"},
		}, nil)

		timeline, err := uc.CertificatesTimeline(ctx)

		assert.NoError(t, err)
		assert.Equal(t, []string{"2024-01", "2024-07", "2025-01"}, timeline.Labels)
		assert.Equal(t, []int{1, 1, 2}, timeline.Counts)
	})

	t.Run("Should build the summary with the most recent certificates first", func(t *testing.T) {
		mockSkills := new(MockSkillRepo)
		mockCerts := new(MockCertificateRepo)
		uc := usecase.NewDashboardUsecase(mockSkills, mockCerts)

		mockSkills.On("FindAll", ctx).Return([]domain.Skill{
			{Name: "PHP", Level: "Advanced", Category: "Backend"},
			{Name: "MySQL", Level: "Advanced", Category: "Database"},
			{Name: "Node.js", Level: "Advanced", Category: "Backend"},
		}, nil)
		mockCerts.On("FindAll", ctx).Return([]domain.Certificate{
			{Name: "Old Cert", Platform: "Alura", Date: "2024-05-01", Category: "Backend"},
			{Name: "New Cert", Platform: "Alura", Date: "2025-03-10", Category: "Backend"},
			{Name: "Mid Cert", Platform: "Oracle", Date: "2025-01-29", Category: "Cloud"},
		}, nil)

		summary, err := uc.Summary(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 3, summary.TotalSkills)
		assert.Equal(t, 3, summary.TotalCertificates)
		assert.Len(t, summary.RecentCertificates, 2)
		assert.Equal(t, "New Cert", summary.RecentCertificates[0].Name)
		assert.Equal(t, "Mid Cert", summary.RecentCertificates[1].Name)
	})
}
