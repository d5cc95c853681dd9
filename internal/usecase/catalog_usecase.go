package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Wilfred1097/ShoPay/internal/domain/model"
	repo "github.com/Wilfred1097/ShoPay/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// CatalogUsecase は商品の公開参照と管理者CRUDをまとめる。
type CatalogUsecase struct {
	productRepo repo.ProductRepository
}

// DI
func NewCatalogUsecase(productRepo repo.ProductRepository) *CatalogUsecase {
	return &CatalogUsecase{productRepo: productRepo}
}

// 全商品（ページング・絞り込みなし）。
func (u *CatalogUsecase) ListProducts(ctx context.Context) ([]model.Product, error) {
	products, err := u.productRepo.ListAll(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
	}
	return products, nil
}

func (u *CatalogUsecase) GetProduct(ctx context.Context, productID int64) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "Invalid product ID")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "Product not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
	}
	return p, nil
}

type CreateProductInput struct {
	Name        string
	Description string
	Photo       string
	Price       float64
	Quantity    int64
}

func (u *CatalogUsecase) CreateProduct(ctx context.Context, in CreateProductInput) (model.Product, error) {
	if strings.TrimSpace(in.Name) == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "Product name is required")
	}
	if in.Price < 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "Price must be >= 0")
	}
	if in.Quantity < 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "Quantity must be >= 0")
	}

	//商品名の重複チェック
	exists, err := u.productRepo.ExistsByName(ctx, strings.TrimSpace(in.Name))
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
	}
	if exists {
		return model.Product{}, NewHTTPError(http.StatusConflict, "Product name already exists")
	}

	p, err := u.productRepo.Create(ctx, model.Product{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Photo:       in.Photo,
		Price:       in.Price,
		Quantity:    in.Quantity,
	})
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
	}
	return p, nil
}

func (u *CatalogUsecase) UpdateProduct(ctx context.Context, productID int64, in CreateProductInput) error {
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "Invalid product ID")
	}
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "Product name is required")
	}
	if in.Price < 0 {
		return NewHTTPError(http.StatusBadRequest, "Price must be >= 0")
	}
	if in.Quantity < 0 {
		return NewHTTPError(http.StatusBadRequest, "Quantity must be >= 0")
	}

	err := u.productRepo.Update(ctx, model.Product{
		ID:          productID,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Photo:       in.Photo,
		Price:       in.Price,
		Quantity:    in.Quantity,
	})
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "Item not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
	}
	return nil
}

func (u *CatalogUsecase) DeleteProduct(ctx context.Context, productID int64) error {
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "Invalid item ID")
	}

	err := u.productRepo.Delete(ctx, productID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "Item not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
	}
	return nil
}
