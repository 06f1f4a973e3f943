package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-catalog-service/internal/application"
	"github.com/oksasatya/go-catalog-service/pkg/apperrors"
	"github.com/oksasatya/go-catalog-service/pkg/pagination"
	"github.com/oksasatya/go-catalog-service/pkg/response"
	"github.com/oksasatya/go-catalog-service/pkg/validation"
)

type ProductHandler struct {
	Svc    *application.CatalogService
	Logger *logrus.Logger
}

func NewProductHandler(svc *application.CatalogService, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{Svc: svc, Logger: logger}
}

type productCreateRequest struct {
	Name        string           `json:"name" binding:"required,min=2,max=120"`
	Description *string          `json:"description" binding:"omitempty,max=1000"`
	Price       *decimal.Decimal `json:"price" binding:"required"`
	Stock       *int             `json:"stock" binding:"required"`
	SKU         string           `json:"sku" binding:"required,min=3,max=32"`
}

type productUpdateRequest struct {
	Name        string           `json:"name" binding:"required,min=2,max=120"`
	Description *string          `json:"description" binding:"omitempty,max=1000"`
	Price       *decimal.Decimal `json:"price" binding:"required"`
	Stock       *int             `json:"stock" binding:"required"`
}

// Create POST /api/v1/products
func (h *ProductHandler) Create(c *gin.Context) {
	var req productCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, h.Logger, validation.ToDetails(err))
		return
	}
	res, err := h.Svc.CreateProduct(c.Request.Context(), application.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Stock:       *req.Stock,
		SKU:         req.SKU,
	})
	if err != nil {
		response.Error(c, h.Logger, err)
		return
	}
	c.Header("Location", fmt.Sprintf("/api/v1/products/%d", res.ID))
	c.JSON(http.StatusCreated, res)
}

// GetByID GET /api/v1/products/:id
func (h *ProductHandler) GetByID(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, h.Logger, err)
		return
	}
	res, err := h.Svc.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetAll GET /api/v1/products
func (h *ProductHandler) GetAll(c *gin.Context) {
	page, err := pageRequest(c)
	if err != nil {
		response.Error(c, h.Logger, err)
		return
	}
	res, err := h.Svc.GetAll(c.Request.Context(), page)
	if err != nil {
		response.Error(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Search GET /api/v1/products/search?query=...
func (h *ProductHandler) Search(c *gin.Context) {
	page, err := pageRequest(c)
	if err != nil {
		response.Error(c, h.Logger, err)
		return
	}
	res, err := h.Svc.SearchByName(c.Request.Context(), c.Query("query"), page)
	if err != nil {
		response.Error(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Update PUT /api/v1/products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, h.Logger, err)
		return
	}
	var req productUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, h.Logger, validation.ToDetails(err))
		return
	}
	res, err := h.Svc.UpdateProduct(c.Request.Context(), id, application.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Stock:       *req.Stock,
	})
	if err != nil {
		response.Error(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Delete DELETE /api/v1/products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, h.Logger, err)
		return
	}
	if err := h.Svc.DeleteProduct(c.Request.Context(), id); err != nil {
		response.Error(c, h.Logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperrors.InvalidArgument("invalid id: %s", c.Param("id"))
	}
	return id, nil
}

// pageRequest parses page/size/sort query params. Size above the boundary
// limit is rejected before the service is ever called.
func pageRequest(c *gin.Context) (pagination.Request, error) {
	page, err := queryInt(c, "page", 0)
	if err != nil {
		return pagination.Request{}, err
	}
	if page < 0 {
		page = 0
	}
	size, err := queryInt(c, "size", pagination.DefaultSize)
	if err != nil {
		return pagination.Request{}, err
	}
	if size > pagination.MaxSize {
		return pagination.Request{}, apperrors.InvalidArgument("size must be <= %d", pagination.MaxSize)
	}
	if size <= 0 {
		size = pagination.DefaultSize
	}
	return pagination.Request{
		Page: page,
		Size: size,
		Sort: pagination.ParseSort(c.QueryArray("sort")),
	}, nil
}

func queryInt(c *gin.Context, name string, def int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.InvalidArgument("invalid %s: %s", name, raw)
	}
	return v, nil
}
