package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"dhaba/internal/service"
)

// MenuHandler handles menu category and item endpoints.
type MenuHandler struct {
	menuService service.MenuService
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(menuService service.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// CreateCategory handles POST /api/v1/menu/categories
// @Summary Create a menu category
// @Description Create a category carrying the GST configuration its items inherit
// @Tags menu
// @Accept json
// @Produce json
// @Param request body CreateCategoryRequest true "Category details"
// @Success 201 {object} Response{data=domain.MenuCategory} "Category created"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Security BearerAuth
// @Router /menu/categories [post]
func (h *MenuHandler) CreateCategory(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.CreateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	cat, err := h.menuService.CreateCategory(c.Request.Context(), tenantID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, cat)
}

// ListCategories handles GET /api/v1/menu/categories
// @Summary List menu categories
// @Tags menu
// @Produce json
// @Success 200 {object} Response{data=[]domain.MenuCategory} "Categories"
// @Security BearerAuth
// @Router /menu/categories [get]
func (h *MenuHandler) ListCategories(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	cats, err := h.menuService.ListCategories(c.Request.Context(), tenantID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, cats)
}

// UpdateCategory handles PUT /api/v1/menu/categories/:id
// @Summary Update a menu category
// @Tags menu
// @Accept json
// @Produce json
// @Param id path string true "Category ID (UUID)"
// @Success 200 {object} Response{data=domain.MenuCategory} "Category updated"
// @Failure 404 {object} ErrorResponseBody "Category not found"
// @Security BearerAuth
// @Router /menu/categories/{id} [put]
func (h *MenuHandler) UpdateCategory(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid category ID")
		return
	}

	var input service.UpdateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	cat, err := h.menuService.UpdateCategory(c.Request.Context(), tenantID, id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, cat)
}

// DeleteCategory handles DELETE /api/v1/menu/categories/:id
// @Summary Delete a menu category
// @Tags menu
// @Produce json
// @Param id path string true "Category ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Category deleted"
// @Failure 404 {object} ErrorResponseBody "Category not found"
// @Security BearerAuth
// @Router /menu/categories/{id} [delete]
func (h *MenuHandler) DeleteCategory(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid category ID")
		return
	}

	if err := h.menuService.DeleteCategory(c.Request.Context(), tenantID, id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "category deleted"})
}

// CreateItem handles POST /api/v1/menu/items
// @Summary Create a menu item
// @Description Create a dish; gst_rate/gst_mode are optional overrides of the category's configuration
// @Tags menu
// @Accept json
// @Produce json
// @Param request body CreateMenuItemRequest true "Item details"
// @Success 201 {object} Response{data=domain.MenuItem} "Item created"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 404 {object} ErrorResponseBody "Category not found"
// @Security BearerAuth
// @Router /menu/items [post]
func (h *MenuHandler) CreateItem(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.CreateMenuItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	item, err := h.menuService.CreateItem(c.Request.Context(), tenantID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, item)
}

// ListItems handles GET /api/v1/menu/items
// @Summary List menu items
// @Tags menu
// @Produce json
// @Param category_id query string false "Filter by category (UUID)"
// @Success 200 {object} Response{data=[]domain.MenuItem} "Items"
// @Security BearerAuth
// @Router /menu/items [get]
func (h *MenuHandler) ListItems(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var categoryID *uuid.UUID
	if raw := c.Query("category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid category ID")
			return
		}
		categoryID = &id
	}

	items, err := h.menuService.ListItems(c.Request.Context(), tenantID, categoryID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, items)
}

// GetItem handles GET /api/v1/menu/items/:id
func (h *MenuHandler) GetItem(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid item ID")
		return
	}

	item, err := h.menuService.GetItem(c.Request.Context(), tenantID, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, item)
}

// UpdateItem handles PUT /api/v1/menu/items/:id
// @Summary Update a menu item
// @Tags menu
// @Accept json
// @Produce json
// @Param id path string true "Item ID (UUID)"
// @Success 200 {object} Response{data=domain.MenuItem} "Item updated"
// @Failure 404 {object} ErrorResponseBody "Item not found"
// @Security BearerAuth
// @Router /menu/items/{id} [put]
func (h *MenuHandler) UpdateItem(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid item ID")
		return
	}

	var input service.UpdateMenuItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	item, err := h.menuService.UpdateItem(c.Request.Context(), tenantID, id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, item)
}

// DeleteItem handles DELETE /api/v1/menu/items/:id
// @Summary Delete a menu item
// @Tags menu
// @Produce json
// @Param id path string true "Item ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Item deleted"
// @Failure 404 {object} ErrorResponseBody "Item not found"
// @Security BearerAuth
// @Router /menu/items/{id} [delete]
func (h *MenuHandler) DeleteItem(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid item ID")
		return
	}

	if err := h.menuService.DeleteItem(c.Request.Context(), tenantID, id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "item deleted"})
}

// UploadItemImage handles POST /api/v1/menu/items/:id/image
// @Summary Upload a menu item image
// @Description Upload an item photo (jpg/png/webp) to object storage
// @Tags menu
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Item ID (UUID)"
// @Param file formData file true "Image file"
// @Success 200 {object} Response{data=domain.MenuItem} "Item with image key"
// @Failure 400 {object} ErrorResponseBody "Unsupported image type"
// @Failure 413 {object} ErrorResponseBody "Image too large"
// @Security BearerAuth
// @Router /menu/items/{id}/image [post]
func (h *MenuHandler) UploadItemImage(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid item ID")
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "missing file field")
		return
	}
	defer file.Close()

	item, err := h.menuService.UploadItemImage(c.Request.Context(), service.UploadImageInput{
		TenantID: tenantID,
		ItemID:   id,
		File:     file,
		Header:   header,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, item)
}

// GetItemImageURL handles GET /api/v1/menu/items/:id/image
// @Summary Get a presigned menu item image URL
// @Tags menu
// @Produce json
// @Param id path string true "Item ID (UUID)"
// @Success 200 {object} Response{data=ImageURLResponse} "Presigned URL"
// @Failure 404 {object} ErrorResponseBody "Item or image not found"
// @Security BearerAuth
// @Router /menu/items/{id}/image [get]
func (h *MenuHandler) GetItemImageURL(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid item ID")
		return
	}

	url, err := h.menuService.GetItemImageURL(c.Request.Context(), tenantID, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"url": url})
}
