package handler

import (
	catalogapp "github.com/erp/bizhub/internal/application/catalog"
	"github.com/gin-gonic/gin"
)

// CategoryHandler handles the global product category endpoints
type CategoryHandler struct {
	BaseHandler
	categoryService *catalogapp.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService *catalogapp.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// List godoc
// @Summary  List categories (?top_level=true for roots only)
// @Tags     categories
// @Router   /categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	page, err := h.categoryService.List(c.Request.Context(), ParseFilter(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	Page(c, page)
}

// Get godoc
// @Summary  Get a category with its subcategories
// @Tags     categories
// @Router   /categories/{id} [get]
func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	category, err := h.categoryService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, category)
}

// Create godoc
// @Summary  Create a category
// @Tags     categories
// @Router   /categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req catalogapp.CategoryRequest
	if !h.bindJSON(c, &req) {
		return
	}
	category, err := h.categoryService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, category)
}

// Update godoc
// @Summary  Update a category
// @Tags     categories
// @Router   /categories/{id} [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var req catalogapp.CategoryRequest
	if !h.bindJSON(c, &req) {
		return
	}
	category, err := h.categoryService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, category)
}

// Delete godoc
// @Summary  Delete a category
// @Tags     categories
// @Router   /categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	if err := h.categoryService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// TaxHandler serves /taxes
type TaxHandler = ResourceHandler[catalogapp.TaxRequest, catalogapp.TaxResponse]

// NewTaxHandler creates a TaxHandler
func NewTaxHandler(service *catalogapp.TaxService) *TaxHandler {
	return NewResourceHandler[catalogapp.TaxRequest, catalogapp.TaxResponse](service)
}

// ProductHandler serves /products and the product image sub-resource
type ProductHandler struct {
	*ResourceHandler[catalogapp.ProductRequest, catalogapp.ProductResponse]
	imageService *catalogapp.ImageService
}

// NewProductHandler creates a ProductHandler
func NewProductHandler(service *catalogapp.ProductService, imageService *catalogapp.ImageService) *ProductHandler {
	return &ProductHandler{
		ResourceHandler: NewResourceHandler[catalogapp.ProductRequest, catalogapp.ProductResponse](service),
		imageService:    imageService,
	}
}

// RequestImageUpload returns a presigned upload slot for a product image
func (h *ProductHandler) RequestImageUpload(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var req catalogapp.ImageUploadRequest
	if !h.bindJSON(c, &req) {
		return
	}
	upload, err := h.imageService.RequestUpload(c.Request.Context(), scope, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, upload)
}

// ListImages lists a product's images with download urls
func (h *ProductHandler) ListImages(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	images, err := h.imageService.List(c.Request.Context(), scope, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, images)
}
