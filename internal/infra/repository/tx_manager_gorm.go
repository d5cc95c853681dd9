package repository

import (
	"context"

	repo "github.com/Wilfred1097/ShoPay/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	purchases repo.PurchaseRepository
	products  repo.ProductRepository
	carts     repo.CartRepository
}

func (r *txReposGorm) Purchases() repo.PurchaseRepository { return r.purchases }
func (r *txReposGorm) Products() repo.ProductRepository   { return r.products }
func (r *txReposGorm) Carts() repo.CartRepository         { return r.carts }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			purchases: NewPurchaseGormRepository(tx),
			products:  NewProductGormRepository(tx),
			carts:     NewCartGormRepository(tx),
		}
		return fn(r)
	})
}
