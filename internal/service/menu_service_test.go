package service_test

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"dhaba/internal/config"
	"dhaba/internal/domain"
	"dhaba/internal/port"
	"dhaba/internal/service"
	"dhaba/mocks"
)

func newMenuService() (service.MenuService, *mocks.MockMenuRepo, *mocks.MockObjectStorage) {
	repo := new(mocks.MockMenuRepo)
	storage := new(mocks.MockObjectStorage)
	cfg := &config.S3Config{Bucket: "dhaba-menu-images", MaxImageSizeMB: 5, PresignExpiry: 3600}
	return service.NewMenuService(repo, storage, cfg), repo, storage
}

// fakeUpload satisfies multipart.File over an in-memory buffer.
type fakeUpload struct {
	*bytes.Reader
}

func (fakeUpload) Close() error { return nil }

func uploadOf(data []byte, name string) (multipart.File, *multipart.FileHeader) {
	return fakeUpload{bytes.NewReader(data)}, &multipart.FileHeader{Filename: name, Size: int64(len(data))}
}

var pngBytes = append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 64)...)

func TestMenuService_CreateItem_CategoryMustExist(t *testing.T) {
	svc, repo, _ := newMenuService()

	tenantID := uuid.New()
	categoryID := uuid.New()
	repo.On("GetCategory", mock.Anything, tenantID, categoryID).Return(nil, domain.ErrCategoryNotFound)

	item, err := svc.CreateItem(context.Background(), tenantID, service.CreateMenuItemInput{
		CategoryID: categoryID,
		Name:       "Paneer Tikka",
		Price:      250,
	})

	assert.Nil(t, item)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestMenuService_UploadItemImage_Success(t *testing.T) {
	svc, repo, storage := newMenuService()

	tenantID := uuid.New()
	itemID := uuid.New()
	repo.On("GetItem", mock.Anything, tenantID, itemID).
		Return(&domain.MenuItem{ID: itemID, TenantID: tenantID, Name: "Paneer Tikka"}, nil)
	repo.On("UpdateItem", mock.Anything, mock.AnythingOfType("*domain.MenuItem")).Return(nil)

	var uploaded port.UploadInput
	storage.On("Upload", mock.Anything, mock.AnythingOfType("port.UploadInput")).
		Run(func(args mock.Arguments) { uploaded = args.Get(1).(port.UploadInput) }).
		Return(&port.UploadOutput{Key: "whatever", ETag: "abc"}, nil)

	file, header := uploadOf(pngBytes, "dish.png")
	item, err := svc.UploadItemImage(context.Background(), service.UploadImageInput{
		TenantID: tenantID,
		ItemID:   itemID,
		File:     file,
		Header:   header,
	})

	assert.NoError(t, err)
	wantKey := fmt.Sprintf("tenants/%s/menu-items/%s.png", tenantID, itemID)
	assert.Equal(t, wantKey, item.ImageKey)
	assert.Equal(t, "dhaba-menu-images", uploaded.Bucket)
	assert.Equal(t, "image/png", uploaded.ContentType)
	storage.AssertExpectations(t)
}

func TestMenuService_UploadItemImage_TooLarge(t *testing.T) {
	svc, repo, _ := newMenuService()

	tenantID := uuid.New()
	itemID := uuid.New()
	repo.On("GetItem", mock.Anything, tenantID, itemID).
		Return(&domain.MenuItem{ID: itemID, TenantID: tenantID}, nil)

	file, header := uploadOf(pngBytes, "huge.png")
	header.Size = 6 * 1024 * 1024

	item, err := svc.UploadItemImage(context.Background(), service.UploadImageInput{
		TenantID: tenantID,
		ItemID:   itemID,
		File:     file,
		Header:   header,
	})

	assert.Nil(t, item)
	assert.ErrorIs(t, err, domain.ErrImageTooLarge)
}

func TestMenuService_UploadItemImage_RejectsNonImage(t *testing.T) {
	svc, repo, _ := newMenuService()

	tenantID := uuid.New()
	itemID := uuid.New()
	repo.On("GetItem", mock.Anything, tenantID, itemID).
		Return(&domain.MenuItem{ID: itemID, TenantID: tenantID}, nil)

	// A PDF renamed to .png still gets rejected: detection uses magic bytes.
	file, header := uploadOf([]byte("%PDF-1.7 not really an image"), "sneaky.png")

	item, err := svc.UploadItemImage(context.Background(), service.UploadImageInput{
		TenantID: tenantID,
		ItemID:   itemID,
		File:     file,
		Header:   header,
	})

	assert.Nil(t, item)
	assert.ErrorIs(t, err, domain.ErrUnsupportedImageType)
}

func TestMenuService_GetItemImageURL_Success(t *testing.T) {
	svc, repo, storage := newMenuService()

	tenantID := uuid.New()
	itemID := uuid.New()
	key := fmt.Sprintf("tenants/%s/menu-items/%s.png", tenantID, itemID)
	repo.On("GetItem", mock.Anything, tenantID, itemID).
		Return(&domain.MenuItem{ID: itemID, TenantID: tenantID, ImageKey: key}, nil)
	storage.On("PresignGet", mock.Anything, "dhaba-menu-images", key, time.Hour).
		Return("https://s3.example.com/signed", nil)

	url, err := svc.GetItemImageURL(context.Background(), tenantID, itemID)

	assert.NoError(t, err)
	assert.Equal(t, "https://s3.example.com/signed", url)
}

func TestMenuService_GetItemImageURL_NoImage(t *testing.T) {
	svc, repo, _ := newMenuService()

	tenantID := uuid.New()
	itemID := uuid.New()
	repo.On("GetItem", mock.Anything, tenantID, itemID).
		Return(&domain.MenuItem{ID: itemID, TenantID: tenantID}, nil)

	url, err := svc.GetItemImageURL(context.Background(), tenantID, itemID)

	assert.Empty(t, url)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
