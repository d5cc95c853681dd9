package repository

import (
	"context"
	"errors"

	"github.com/Wilfred1097/ShoPay/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	ListAll(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)
	ExistsByName(ctx context.Context, name string) (bool, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
	Delete(ctx context.Context, id int64) error

	// 在庫が足りるときだけ減算。減らせたかどうかを返す。
	DecrementStockByName(ctx context.Context, name string, qty int64) (bool, error)
}
