package handler

import (
	"net/http"

	"github.com/Wilfred1097/ShoPay/internal/event"
	"github.com/Wilfred1097/ShoPay/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 購入確定API（要ログイン）
type CheckoutHandler struct {
	uc       *usecase.CheckoutUsecase
	producer *event.Producer
}

// DI
func NewCheckoutHandler(uc *usecase.CheckoutUsecase, producer *event.Producer) *CheckoutHandler {
	return &CheckoutHandler{uc: uc, producer: producer}
}

func (h *CheckoutHandler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	e.POST("/checkout", h.checkout, auth)
}

type checkoutRequest struct {
	CartID      int64  `json:"cartId"`
	ProductName string `json:"productName"`
}

type checkoutResponse struct {
	Success bool `json:"success"`
}

func (h *CheckoutHandler) checkout(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return err
	}

	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
	}

	out, err := h.uc.Checkout(c.Request().Context(), userID, usecase.CheckoutInput{
		CartID:      req.CartID,
		ProductName: req.ProductName,
	})
	if err != nil {
		return writeError(c, err)
	}

	//失敗してもレスポンスは返す
	if perr := h.producer.PublishEvent(c.Request().Context(), event.TopicOrderEvents, out.Reference, map[string]any{
		"type":         "order_placed",
		"reference":    out.Reference,
		"user_id":      userID,
		"product_name": req.ProductName,
	}); perr != nil {
		c.Logger().Errorf("failed to publish event to %s: %v", event.TopicOrderEvents, perr)
	}

	return c.JSON(http.StatusOK, checkoutResponse{Success: true})
}
