package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-catalog-service/internal/interface/http"
)

// ProductModule wires the catalog HTTP handlers into routes under /api/v1.
type ProductModule struct {
	Handler *handlers.ProductHandler
}

func NewProductModule(h *handlers.ProductHandler) *ProductModule {
	return &ProductModule{Handler: h}
}

func (m *ProductModule) Register(rg *gin.RouterGroup) {
	products := rg.Group("/api/v1/products")
	{
		products.POST("", m.Handler.Create)
		products.GET("", m.Handler.GetAll)
		products.GET("/search", m.Handler.Search)
		products.GET("/:id", m.Handler.GetByID)
		products.PUT("/:id", m.Handler.Update)
		products.DELETE("/:id", m.Handler.Delete)
	}
}
