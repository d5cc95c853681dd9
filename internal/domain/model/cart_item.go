package model

import "time"

// cartテーブル。1明細=数量1、(user, product)で一意。
type CartItem struct {
	ID        int64 `gorm:"primaryKey;autoIncrement;column:cart_id" json:"cart_id"`
	UserID    int64 `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"user_id"`
	ProductID int64 `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"product_id"`
	Quantity  int64 `gorm:"not null;default:1" json:"quantity"`

	CreatedAt time.Time `json:"-"`
}

func (CartItem) TableName() string { return "cart" }
