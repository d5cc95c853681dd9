package server

import (
	"github.com/Wilfred1097/ShoPay/internal/config"
	"github.com/Wilfred1097/ShoPay/internal/middleware"
	"github.com/Wilfred1097/ShoPay/internal/repository"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, cfg config.Config, userRepo repository.UserRepository, h Handlers) {
	auth := middleware.AuthJWT(cfg)
	adminOnly := middleware.AdminRoleGuard(userRepo)

	h.Product.RegisterRoutes(e)
	h.Auth.RegisterRoutes(e)
	h.Cart.RegisterRoutes(e, auth)
	h.Checkout.RegisterRoutes(e, auth)
	h.Admin.RegisterRoutes(e, auth, adminOnly)
}
