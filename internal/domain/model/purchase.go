package model

import "time"

// purchaseテーブル（購入台帳）。checkoutだけが追記し、更新・削除はしない。
type Purchase struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Reference     string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"reference"`
	UserID        int64     `gorm:"not null;index" json:"user_id"`
	ProductName   string    `gorm:"type:varchar(255);not null;column:product_name" json:"product_name"`
	Quantity      int64     `gorm:"not null" json:"quantity"`
	PurchasedDate time.Time `gorm:"not null;column:purchased_date" json:"purchased_date"`
}

func (Purchase) TableName() string { return "purchase" }
