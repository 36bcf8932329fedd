package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/google/uuid"

	"dhaba/internal/config"
	"dhaba/internal/domain"
	"dhaba/internal/port"
)

// CreateCategoryInput is the DTO for creating a menu category.
type CreateCategoryInput struct {
	Name      string   `json:"name" binding:"required"`
	SortOrder int      `json:"sort_order"`
	GSTRate   *float64 `json:"gst_rate"`
	GSTMode   string   `json:"gst_mode"`
}

// UpdateCategoryInput is the DTO for updating a menu category.
type UpdateCategoryInput struct {
	Name      *string  `json:"name"`
	SortOrder *int     `json:"sort_order"`
	GSTRate   *float64 `json:"gst_rate"`
	GSTMode   *string  `json:"gst_mode"`
	IsActive  *bool    `json:"is_active"`
}

// CreateMenuItemInput is the DTO for creating a menu item.
type CreateMenuItemInput struct {
	CategoryID  uuid.UUID `json:"category_id" binding:"required"`
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
	Price       float64   `json:"price" binding:"required,gt=0"`
	GSTRate     *float64  `json:"gst_rate"`
	GSTMode     string    `json:"gst_mode"`
}

// UpdateMenuItemInput is the DTO for updating a menu item.
type UpdateMenuItemInput struct {
	CategoryID  *uuid.UUID `json:"category_id"`
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Price       *float64   `json:"price"`
	GSTRate     *float64   `json:"gst_rate"`
	GSTMode     *string    `json:"gst_mode"`
	IsAvailable *bool      `json:"is_available"`
}

// UploadImageInput is the DTO for menu item image uploads.
type UploadImageInput struct {
	TenantID uuid.UUID
	ItemID   uuid.UUID
	File     multipart.File
	Header   *multipart.FileHeader
}

// allowedImageTypes are the content types accepted for menu item images,
// detected from magic bytes rather than the client-supplied header.
var allowedImageTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

// MenuService defines the menu management contract.
type MenuService interface {
	CreateCategory(ctx context.Context, tenantID uuid.UUID, input CreateCategoryInput) (*domain.MenuCategory, error)
	GetCategory(ctx context.Context, tenantID, id uuid.UUID) (*domain.MenuCategory, error)
	ListCategories(ctx context.Context, tenantID uuid.UUID) ([]domain.MenuCategory, error)
	UpdateCategory(ctx context.Context, tenantID, id uuid.UUID, input UpdateCategoryInput) (*domain.MenuCategory, error)
	DeleteCategory(ctx context.Context, tenantID, id uuid.UUID) error

	CreateItem(ctx context.Context, tenantID uuid.UUID, input CreateMenuItemInput) (*domain.MenuItem, error)
	GetItem(ctx context.Context, tenantID, id uuid.UUID) (*domain.MenuItem, error)
	ListItems(ctx context.Context, tenantID uuid.UUID, categoryID *uuid.UUID) ([]domain.MenuItem, error)
	UpdateItem(ctx context.Context, tenantID, id uuid.UUID, input UpdateMenuItemInput) (*domain.MenuItem, error)
	DeleteItem(ctx context.Context, tenantID, id uuid.UUID) error

	UploadItemImage(ctx context.Context, input UploadImageInput) (*domain.MenuItem, error)
	GetItemImageURL(ctx context.Context, tenantID, id uuid.UUID) (string, error)
}

type menuService struct {
	repo    port.MenuRepository
	storage port.ObjectStorage
	cfg     *config.S3Config
}

// NewMenuService creates a new MenuService implementation.
func NewMenuService(repo port.MenuRepository, storage port.ObjectStorage, cfg *config.S3Config) MenuService {
	return &menuService{repo: repo, storage: storage, cfg: cfg}
}

func (s *menuService) CreateCategory(ctx context.Context, tenantID uuid.UUID, input CreateCategoryInput) (*domain.MenuCategory, error) {
	cat := &domain.MenuCategory{
		TenantID:  tenantID,
		Name:      input.Name,
		SortOrder: input.SortOrder,
		GSTRate:   input.GSTRate,
		GSTMode:   input.GSTMode,
		IsActive:  true,
	}
	if err := s.repo.CreateCategory(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *menuService) GetCategory(ctx context.Context, tenantID, id uuid.UUID) (*domain.MenuCategory, error) {
	return s.repo.GetCategory(ctx, tenantID, id)
}

func (s *menuService) ListCategories(ctx context.Context, tenantID uuid.UUID) ([]domain.MenuCategory, error) {
	return s.repo.ListCategories(ctx, tenantID)
}

func (s *menuService) UpdateCategory(ctx context.Context, tenantID, id uuid.UUID, input UpdateCategoryInput) (*domain.MenuCategory, error) {
	cat, err := s.repo.GetCategory(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		cat.Name = *input.Name
	}
	if input.SortOrder != nil {
		cat.SortOrder = *input.SortOrder
	}
	if input.GSTRate != nil {
		cat.GSTRate = input.GSTRate
	}
	if input.GSTMode != nil {
		cat.GSTMode = *input.GSTMode
	}
	if input.IsActive != nil {
		cat.IsActive = *input.IsActive
	}

	if err := s.repo.UpdateCategory(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *menuService) DeleteCategory(ctx context.Context, tenantID, id uuid.UUID) error {
	return s.repo.DeleteCategory(ctx, tenantID, id)
}

func (s *menuService) CreateItem(ctx context.Context, tenantID uuid.UUID, input CreateMenuItemInput) (*domain.MenuItem, error) {
	if _, err := s.repo.GetCategory(ctx, tenantID, input.CategoryID); err != nil {
		return nil, err
	}

	item := &domain.MenuItem{
		TenantID:    tenantID,
		CategoryID:  input.CategoryID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		GSTRate:     input.GSTRate,
		GSTMode:     input.GSTMode,
		IsAvailable: true,
	}
	if err := s.repo.CreateItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *menuService) GetItem(ctx context.Context, tenantID, id uuid.UUID) (*domain.MenuItem, error) {
	return s.repo.GetItem(ctx, tenantID, id)
}

func (s *menuService) ListItems(ctx context.Context, tenantID uuid.UUID, categoryID *uuid.UUID) ([]domain.MenuItem, error) {
	return s.repo.ListItems(ctx, tenantID, categoryID)
}

func (s *menuService) UpdateItem(ctx context.Context, tenantID, id uuid.UUID, input UpdateMenuItemInput) (*domain.MenuItem, error) {
	item, err := s.repo.GetItem(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if input.CategoryID != nil {
		if _, err := s.repo.GetCategory(ctx, tenantID, *input.CategoryID); err != nil {
			return nil, err
		}
		item.CategoryID = *input.CategoryID
	}
	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.Price != nil {
		item.Price = *input.Price
	}
	if input.GSTRate != nil {
		item.GSTRate = input.GSTRate
	}
	if input.GSTMode != nil {
		item.GSTMode = *input.GSTMode
	}
	if input.IsAvailable != nil {
		item.IsAvailable = *input.IsAvailable
	}

	if err := s.repo.UpdateItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *menuService) DeleteItem(ctx context.Context, tenantID, id uuid.UUID) error {
	item, err := s.repo.GetItem(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if item.ImageKey != "" {
		if err := s.storage.Delete(ctx, s.cfg.Bucket, item.ImageKey); err != nil {
			log.Printf("menuService.DeleteItem: failed to delete image %s: %v", item.ImageKey, err)
		}
	}
	return s.repo.DeleteItem(ctx, tenantID, id)
}

func (s *menuService) UploadItemImage(ctx context.Context, input UploadImageInput) (*domain.MenuItem, error) {
	item, err := s.repo.GetItem(ctx, input.TenantID, input.ItemID)
	if err != nil {
		return nil, err
	}

	maxBytes := s.cfg.MaxImageSizeMB * 1024 * 1024
	if input.Header.Size > maxBytes {
		return nil, domain.ErrImageTooLarge
	}

	// Detect content type from magic bytes, not the client-supplied header
	buf := make([]byte, 512)
	n, err := input.File.Read(buf)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading image header: %w", err)
	}
	detectedType := http.DetectContentType(buf[:n])
	ext, ok := allowedImageTypes[detectedType]
	if !ok {
		return nil, domain.ErrUnsupportedImageType
	}

	if _, err := input.File.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking image: %w", err)
	}

	key := fmt.Sprintf("tenants/%s/menu-items/%s.%s", input.TenantID, input.ItemID, ext)

	log.Printf("menuService.UploadItemImage: uploading %s (%s, %d bytes) for tenant %s",
		key, detectedType, input.Header.Size, input.TenantID)

	_, err = s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.Bucket,
		Key:         key,
		Body:        input.File,
		ContentType: detectedType,
	})
	if err != nil {
		log.Printf("menuService.UploadItemImage: upload failed for item %s: %v", input.ItemID, err)
		return nil, domain.ErrUploadFailed
	}

	item.ImageKey = key
	if err := s.repo.UpdateItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *menuService) GetItemImageURL(ctx context.Context, tenantID, id uuid.UUID) (string, error) {
	item, err := s.repo.GetItem(ctx, tenantID, id)
	if err != nil {
		return "", err
	}
	if item.ImageKey == "" {
		return "", domain.ErrNotFound
	}
	return s.storage.PresignGet(ctx, s.cfg.Bucket, item.ImageKey, time.Duration(s.cfg.PresignExpiry)*time.Second)
}
