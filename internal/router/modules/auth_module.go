package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-catalog-service/internal/container"
	handlers "github.com/oksasatya/go-catalog-service/internal/interface/http"
	"github.com/oksasatya/go-catalog-service/internal/interface/middleware"
)

// AuthModule wires register/login with per-IP rate limits.
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath())
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath())

	auth := rg.Group("/auth")
	{
		auth.POST("/register", registerLimiter, m.Handler.Register)
		auth.POST("/login", loginLimiter, m.Handler.Login)
	}
}
