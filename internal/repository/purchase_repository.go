package repository

import (
	"context"

	"github.com/Wilfred1097/ShoPay/internal/domain/model"
)

// 購入台帳は追記と一覧のみ。
type PurchaseRepository interface {
	Create(ctx context.Context, p model.Purchase) (int64, error)
	ListByUserID(ctx context.Context, userID int64) ([]model.Purchase, error)
}
