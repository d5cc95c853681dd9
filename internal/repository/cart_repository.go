package repository

import (
	"context"

	"github.com/Wilfred1097/ShoPay/internal/domain/model"
)

// カート明細と商品をJOINした1行（GET /cartの返却形）。
type CartLine struct {
	CartID             int64   `json:"cart_id"`
	ProductID          int64   `json:"product_id"`
	ProductName        string  `json:"product_name"`
	ProductDescription string  `json:"product_description"`
	ProductPrice       float64 `json:"product_price"`
	Quantity           int64   `json:"quantity"`
}

type CartRepository interface {
	ListByUserID(ctx context.Context, userID int64) ([]model.CartItem, error)
	// 商品情報付きで明細を返す
	ListLinesByUserID(ctx context.Context, userID int64) ([]CartLine, error)
	Exists(ctx context.Context, userID int64, productID int64) (bool, error)
	Create(ctx context.Context, item *model.CartItem) error
	// 所有ユーザーの明細だけを削除する
	DeleteByIDAndUser(ctx context.Context, cartID int64, userID int64) error
}
