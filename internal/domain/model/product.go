package model

import "time"

// productテーブル。在庫（product_qty）は0未満にならない。
type Product struct {
	ID          int64   `gorm:"primaryKey;autoIncrement;column:product_id" json:"product_id"`
	Name        string  `gorm:"type:varchar(255);uniqueIndex;not null;column:product_name" json:"product_name"`
	Description string  `gorm:"type:text;column:product_description" json:"product_description"`
	Photo       string  `gorm:"type:varchar(512);column:product_photo" json:"product_photo"`
	Price       float64 `gorm:"not null;column:product_price" json:"product_price"`
	Quantity    int64   `gorm:"not null;default:0;column:product_qty" json:"product_qty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (Product) TableName() string { return "product" }
