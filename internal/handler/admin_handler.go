package handler

import (
	"net/http"
	"strconv"

	"github.com/Wilfred1097/ShoPay/internal/event"
	"github.com/Wilfred1097/ShoPay/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 管理者専用API。ルート登録時にロールガードを必ず挟む
type AdminHandler struct {
	admin    *usecase.AdminUsecase
	catalog  *usecase.CatalogUsecase
	producer *event.Producer
}

// DI
func NewAdminHandler(admin *usecase.AdminUsecase, catalog *usecase.CatalogUsecase, producer *event.Producer) *AdminHandler {
	return &AdminHandler{admin: admin, catalog: catalog, producer: producer}
}

func (h *AdminHandler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	e.POST("/add_product", h.addProduct, auth, adminOnly)
	e.GET("/data", h.listUsers, auth, adminOnly)
	e.PUT("/update/:tableName/:id", h.update, auth, adminOnly)
	e.DELETE("/delete/:itemType/:itemId", h.delete, auth, adminOnly)
}

type addProductRequest struct {
	ProductName        string  `json:"product_name"`
	ProductDescription string  `json:"product_description"`
	ProductPhoto       string  `json:"product_photo"`
	ProductPrice       float64 `json:"product_price"`
	ProductQty         int64   `json:"product_qty"`
}

func (h *AdminHandler) addProduct(c echo.Context) error {
	var req addProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
	}

	p, err := h.catalog.CreateProduct(c.Request().Context(), usecase.CreateProductInput{
		Name:        req.ProductName,
		Description: req.ProductDescription,
		Photo:       req.ProductPhoto,
		Price:       req.ProductPrice,
		Quantity:    req.ProductQty,
	})
	if err != nil {
		return writeError(c, err)
	}

	h.publish(c, event.TopicProductEvents, p.Name, map[string]any{
		"type":       "product_created",
		"product_id": p.ID,
		"name":       p.Name,
	})

	return c.JSON(http.StatusCreated, StatusResponse{Status: "Product added successfully"})
}

func (h *AdminHandler) listUsers(c echo.Context) error {
	users, err := h.admin.ListUsers(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, users)
}

type updateUserRequest struct {
	Name       string `json:"name"`
	Username   string `json:"username"`
	Birthdate  string `json:"birthdate"`
	Address    string `json:"address"`
	Role       string `json:"role"`
	Email      string `json:"email"`
	ProfilePic string `json:"profile_pic"`
}

// 更新対象のテーブルは列挙した2つだけ。それ以外は弾く
func (h *AdminHandler) update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid item ID"})
	}

	switch c.Param("tableName") {
	case "users":
		var req updateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		}
		if err := h.admin.UpdateUser(c.Request().Context(), id, usecase.UpdateUserInput{
			Name:       req.Name,
			Username:   req.Username,
			Birthdate:  req.Birthdate,
			Address:    req.Address,
			Role:       req.Role,
			Email:      req.Email,
			ProfilePic: req.ProfilePic,
		}); err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, StatusResponse{Status: "users record updated successfully"})

	case "product":
		var req addProductRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		}
		if err := h.catalog.UpdateProduct(c.Request().Context(), id, usecase.CreateProductInput{
			Name:        req.ProductName,
			Description: req.ProductDescription,
			Photo:       req.ProductPhoto,
			Price:       req.ProductPrice,
			Quantity:    req.ProductQty,
		}); err != nil {
			return writeError(c, err)
		}
		h.publish(c, event.TopicProductEvents, req.ProductName, map[string]any{
			"type":       "product_updated",
			"product_id": id,
		})
		return c.JSON(http.StatusOK, StatusResponse{Status: "product record updated successfully"})

	default:
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid table name"})
	}
}

func (h *AdminHandler) delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("itemId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid item ID"})
	}

	switch c.Param("itemType") {
	case "user":
		if err := h.admin.DeleteUser(c.Request().Context(), id); err != nil {
			return writeError(c, err)
		}
	case "product":
		if err := h.catalog.DeleteProduct(c.Request().Context(), id); err != nil {
			return writeError(c, err)
		}
		h.publish(c, event.TopicProductEvents, c.Param("itemId"), map[string]any{
			"type":       "product_deleted",
			"product_id": id,
		})
	default:
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid item type"})
	}

	return c.JSON(http.StatusOK, StatusResponse{Status: "Item deleted successfully"})
}

// 失敗してもリクエストは落とさない
func (h *AdminHandler) publish(c echo.Context, topic, key string, payload map[string]any) {
	if err := h.producer.PublishEvent(c.Request().Context(), topic, key, payload); err != nil {
		c.Logger().Errorf("failed to publish event to %s: %v", topic, err)
	}
}
