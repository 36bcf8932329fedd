package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"dhaba/internal/config"
	"dhaba/internal/domain"
	"dhaba/internal/service"
	"dhaba/mocks"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:             "test-secret-key",
		Issuer:             "dhaba-test",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 24 * time.Hour,
	}
}

func newAuthService() (service.AuthService, *mocks.MockUserRepo, *mocks.MockTenantRepo) {
	userRepo := new(mocks.MockUserRepo)
	tenantRepo := new(mocks.MockTenantRepo)
	return service.NewAuthService(userRepo, tenantRepo, testJWTConfig()), userRepo, tenantRepo
}

func activeStaff(tenantID uuid.UUID, password string) *domain.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return &domain.User{
		ID:           uuid.New(),
		TenantID:     tenantID,
		Email:        "captain@sharmadhaba.in",
		PasswordHash: string(hash),
		Role:         domain.RoleCaptain,
		IsActive:     true,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, userRepo, tenantRepo := newAuthService()

	tenantID := uuid.New()
	user := activeStaff(tenantID, "correct-password")
	tenantRepo.On("GetBySlug", mock.Anything, "sharma-dhaba").
		Return(&domain.Tenant{ID: tenantID, Slug: "sharma-dhaba", IsActive: true}, nil)
	userRepo.On("GetByEmail", mock.Anything, tenantID, user.Email).Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		TenantSlug: "sharma-dhaba",
		Email:      user.Email,
		Password:   "correct-password",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	claims, err := svc.ValidateToken(pair.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, tenantID, claims.TenantID)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, domain.RoleCaptain, claims.Role)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, userRepo, tenantRepo := newAuthService()

	tenantID := uuid.New()
	user := activeStaff(tenantID, "correct-password")
	tenantRepo.On("GetBySlug", mock.Anything, "sharma-dhaba").
		Return(&domain.Tenant{ID: tenantID, Slug: "sharma-dhaba", IsActive: true}, nil)
	userRepo.On("GetByEmail", mock.Anything, tenantID, user.Email).Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		TenantSlug: "sharma-dhaba",
		Email:      user.Email,
		Password:   "wrong-password",
	})

	assert.Nil(t, pair)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownTenantSlug(t *testing.T) {
	svc, _, tenantRepo := newAuthService()

	tenantRepo.On("GetBySlug", mock.Anything, "no-such-place").Return(nil, domain.ErrNotFound)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		TenantSlug: "no-such-place",
		Email:      "someone@example.com",
		Password:   "whatever-pass",
	})

	assert.Nil(t, pair)
	// Unknown tenant must not be distinguishable from a bad password.
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_InactiveTenant(t *testing.T) {
	svc, _, tenantRepo := newAuthService()

	tenantRepo.On("GetBySlug", mock.Anything, "closed-down").
		Return(&domain.Tenant{ID: uuid.New(), Slug: "closed-down", IsActive: false}, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		TenantSlug: "closed-down",
		Email:      "owner@example.com",
		Password:   "whatever-pass",
	})

	assert.Nil(t, pair)
	assert.ErrorIs(t, err, domain.ErrTenantInactive)
}

func TestAuthService_Login_InactiveUser(t *testing.T) {
	svc, userRepo, tenantRepo := newAuthService()

	tenantID := uuid.New()
	user := activeStaff(tenantID, "correct-password")
	user.IsActive = false
	tenantRepo.On("GetBySlug", mock.Anything, "sharma-dhaba").
		Return(&domain.Tenant{ID: tenantID, Slug: "sharma-dhaba", IsActive: true}, nil)
	userRepo.On("GetByEmail", mock.Anything, tenantID, user.Email).Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		TenantSlug: "sharma-dhaba",
		Email:      user.Email,
		Password:   "correct-password",
	})

	assert.Nil(t, pair)
	assert.ErrorIs(t, err, domain.ErrUserInactive)
}

func TestAuthService_RefreshToken_Success(t *testing.T) {
	svc, userRepo, tenantRepo := newAuthService()

	tenantID := uuid.New()
	user := activeStaff(tenantID, "correct-password")
	tenantRepo.On("GetBySlug", mock.Anything, "sharma-dhaba").
		Return(&domain.Tenant{ID: tenantID, Slug: "sharma-dhaba", IsActive: true}, nil)
	userRepo.On("GetByEmail", mock.Anything, tenantID, user.Email).Return(user, nil)
	userRepo.On("GetByID", mock.Anything, tenantID, user.ID).Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		TenantSlug: "sharma-dhaba",
		Email:      user.Email,
		Password:   "correct-password",
	})
	assert.NoError(t, err)

	refreshed, err := svc.RefreshToken(context.Background(), pair.RefreshToken)
	assert.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
}

func TestAuthService_RefreshToken_RejectsAccessToken(t *testing.T) {
	svc, userRepo, tenantRepo := newAuthService()

	tenantID := uuid.New()
	user := activeStaff(tenantID, "correct-password")
	tenantRepo.On("GetBySlug", mock.Anything, "sharma-dhaba").
		Return(&domain.Tenant{ID: tenantID, Slug: "sharma-dhaba", IsActive: true}, nil)
	userRepo.On("GetByEmail", mock.Anything, tenantID, user.Email).Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		TenantSlug: "sharma-dhaba",
		Email:      user.Email,
		Password:   "correct-password",
	})
	assert.NoError(t, err)

	refreshed, err := svc.RefreshToken(context.Background(), pair.AccessToken)
	assert.Nil(t, refreshed)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthService_ValidateToken_Garbage(t *testing.T) {
	svc, _, _ := newAuthService()

	claims, err := svc.ValidateToken("not-a-jwt")

	assert.Nil(t, claims)
	assert.Error(t, err)
}
