package handler

import (
	"net/http"

	"github.com/Wilfred1097/ShoPay/internal/middleware"
	"github.com/Wilfred1097/ShoPay/internal/repository"
	"github.com/Wilfred1097/ShoPay/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ミドルウェアが詰めたユーザーIDを取り出す
func getUserIDFromContext(c echo.Context) (int64, error) {
	userID, ok := c.Get(middleware.CtxUserIDKey).(int64)
	if !ok || userID <= 0 {
		return 0, c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
	}
	return userID, nil
}

// カートAPI（要ログイン）
type CartHandler struct {
	uc *usecase.CartUsecase
}

// DI
func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

func (h *CartHandler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	e.POST("/add-to-cart", h.add, auth)
	e.GET("/cart", h.list, auth)
}

type addToCartRequest struct {
	ProductID int64 `json:"productId"`
}

type cartResponse struct {
	Data []repository.CartLine `json:"data"`
}

type addToCartResponse struct {
	Status string `json:"status"`
}

func (h *CartHandler) add(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return err
	}

	var req addToCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
	}

	if err := h.uc.AddToCart(c.Request().Context(), userID, req.ProductID); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, addToCartResponse{Status: "Product added to cart successfully"})
}

func (h *CartHandler) list(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return err
	}

	lines, err := h.uc.GetCart(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, cartResponse{Data: lines})
}
