package usecase

import (
	"context"
	"net/http"

	"github.com/Wilfred1097/ShoPay/internal/domain/model"
	repo "github.com/Wilfred1097/ShoPay/internal/repository"
)

// CartUsecase は /cart の業務ロジックです。
type CartUsecase struct {
	cartRepo    repo.CartRepository
	productRepo repo.ProductRepository
}

// DI
func NewCartUsecase(cartRepo repo.CartRepository, productRepo repo.ProductRepository) *CartUsecase {
	return &CartUsecase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// AddToCart は数量1の明細を追加する（同じ商品の2行目は作らない）。
func (u *CartUsecase) AddToCart(ctx context.Context, userID int64, productID int64) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "Invalid product ID")
	}

	//同じ(user, product)の明細が既にあれば2行目は作らない
	exists, err := u.cartRepo.Exists(ctx, userID, productID)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
	}
	if exists {
		return NewHTTPError(http.StatusConflict, "Product already in the cart")
	}

	//在庫チェック（1個以上あること）
	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "Product not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
	}
	if p.Quantity < 1 {
		return NewHTTPError(http.StatusConflict, "Product quantity is not sufficient")
	}

	item := &model.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  1,
	}
	if err := u.cartRepo.Create(ctx, item); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
	}
	return nil
}

// GetCart は商品情報付きの明細一覧を返す。
func (u *CartUsecase) GetCart(ctx context.Context, userID int64) ([]repo.CartLine, error) {
	if userID <= 0 {
		return nil, NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}

	lines, err := u.cartRepo.ListLinesByUserID(ctx, userID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
	}
	return lines, nil
}
