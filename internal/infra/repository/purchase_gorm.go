package repository

import (
	"context"

	"github.com/Wilfred1097/ShoPay/internal/domain/model"

	"gorm.io/gorm"
)

type PurchaseGormRepository struct {
	db *gorm.DB
}

// DI
func NewPurchaseGormRepository(db *gorm.DB) *PurchaseGormRepository {
	return &PurchaseGormRepository{db: db}
}

// 台帳へ追記
func (r *PurchaseGormRepository) Create(ctx context.Context, p model.Purchase) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return 0, err
	}
	return p.ID, nil
}

// ユーザーの購入履歴
func (r *PurchaseGormRepository) ListByUserID(ctx context.Context, userID int64) ([]model.Purchase, error) {
	var purchases []model.Purchase
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("purchased_date desc").
		Find(&purchases).Error; err != nil {
		return []model.Purchase{}, err
	}
	return purchases, nil
}
