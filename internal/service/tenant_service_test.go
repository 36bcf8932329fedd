package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"dhaba/internal/domain"
	"dhaba/internal/service"
	"dhaba/mocks"
)

func TestTenantService_Create_Success(t *testing.T) {
	repo := new(mocks.MockTenantRepo)
	svc := service.NewTenantService(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Tenant")).Return(nil)

	tenant, err := svc.Create(context.Background(), service.CreateTenantInput{
		Name:  "Sharma Dhaba",
		Slug:  "sharma-dhaba",
		GSTIN: "22AAAAA0000A1Z5",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Sharma Dhaba", tenant.Name)
	assert.Equal(t, "sharma-dhaba", tenant.Slug)
	assert.Equal(t, "22AAAAA0000A1Z5", tenant.GSTIN)
	assert.True(t, tenant.IsActive)
	repo.AssertExpectations(t)
}

func TestTenantService_Create_DuplicateSlug(t *testing.T) {
	repo := new(mocks.MockTenantRepo)
	svc := service.NewTenantService(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Tenant")).Return(domain.ErrDuplicateTenantSlug)

	tenant, err := svc.Create(context.Background(), service.CreateTenantInput{
		Name: "Sharma Dhaba",
		Slug: "existing-slug",
	})

	assert.Nil(t, tenant)
	assert.ErrorIs(t, err, domain.ErrDuplicateTenantSlug)
}

func TestTenantService_GetByID_NotFound(t *testing.T) {
	repo := new(mocks.MockTenantRepo)
	svc := service.NewTenantService(repo)

	tenantID := uuid.New()
	repo.On("GetByID", mock.Anything, tenantID).Return(nil, domain.ErrNotFound)

	tenant, err := svc.GetByID(context.Background(), tenantID)

	assert.Nil(t, tenant)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTenantService_Update_Success(t *testing.T) {
	repo := new(mocks.MockTenantRepo)
	svc := service.NewTenantService(repo)

	tenantID := uuid.New()
	existing := &domain.Tenant{ID: tenantID, Name: "Old Name", Slug: "old-slug", IsActive: true}
	newGSTIN := "06BBBBB1111B2Z6"

	repo.On("GetByID", mock.Anything, tenantID).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Tenant")).Return(nil)

	tenant, err := svc.Update(context.Background(), tenantID, service.UpdateTenantInput{
		GSTIN: &newGSTIN,
	})

	assert.NoError(t, err)
	assert.Equal(t, "06BBBBB1111B2Z6", tenant.GSTIN)
	assert.Equal(t, "Old Name", tenant.Name)
	repo.AssertExpectations(t)
}

func TestTenantService_Delete_NotFound(t *testing.T) {
	repo := new(mocks.MockTenantRepo)
	svc := service.NewTenantService(repo)

	tenantID := uuid.New()
	repo.On("Delete", mock.Anything, tenantID).Return(domain.ErrNotFound)

	err := svc.Delete(context.Background(), tenantID)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
