package repository

import (
	"context"

	"github.com/Wilfred1097/ShoPay/internal/domain/model"
	repo "github.com/Wilfred1097/ShoPay/internal/repository"

	"gorm.io/gorm"
)

type CartGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartGormRepository(db *gorm.DB) *CartGormRepository {
	return &CartGormRepository{db: db}
}

// カート明細を一覧取得
func (r *CartGormRepository) ListByUserID(ctx context.Context, userID int64) ([]model.CartItem, error) {
	var items []model.CartItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("cart_id asc").
		Find(&items).Error; err != nil {
		return []model.CartItem{}, err
	}
	return items, nil
}

// 商品情報付きでカート明細を返す（cart × product のJOIN）。
func (r *CartGormRepository) ListLinesByUserID(ctx context.Context, userID int64) ([]repo.CartLine, error) {
	var lines []repo.CartLine

	err := r.db.WithContext(ctx).
		Table("cart").
		Select("cart.cart_id, product.product_id, product.product_name, product.product_description, product.product_price, cart.quantity").
		Joins("join product on product.product_id = cart.product_id").
		Where("cart.user_id = ?", userID).
		Order("cart.cart_id asc").
		Scan(&lines).Error

	if err != nil {
		return []repo.CartLine{}, err
	}
	return lines, nil
}

// (user, product) の明細が既にあるか
func (r *CartGormRepository) Exists(ctx context.Context, userID int64, productID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.CartItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// 明細を作成
func (r *CartGormRepository) Create(ctx context.Context, item *model.CartItem) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return err
	}
	return nil
}

// 所有ユーザーの明細だけを削除する
func (r *CartGormRepository) DeleteByIDAndUser(ctx context.Context, cartID int64, userID int64) error {
	res := r.db.WithContext(ctx).
		Where("cart_id = ? AND user_id = ?", cartID, userID).
		Delete(&model.CartItem{})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
