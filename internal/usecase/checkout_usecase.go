package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/Wilfred1097/ShoPay/internal/domain/model"
	repo "github.com/Wilfred1097/ShoPay/internal/repository"

	"github.com/google/uuid"
)

// CheckoutUsecase はカート明細1件を購入へ確定する。
// 台帳追記・在庫減算・明細削除は1トランザクションで行い、
// 途中で失敗したら全部戻す。
type CheckoutUsecase struct {
	tx repo.TransactionManager
}

func NewCheckoutUsecase(tx repo.TransactionManager) *CheckoutUsecase {
	return &CheckoutUsecase{tx: tx}
}

type CheckoutInput struct {
	CartID      int64
	ProductName string
}

type CheckoutOutput struct {
	Reference string
}

func (u *CheckoutUsecase) Checkout(ctx context.Context, userID int64, in CheckoutInput) (CheckoutOutput, error) {
	if userID <= 0 {
		return CheckoutOutput{}, NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}
	if in.CartID <= 0 || strings.TrimSpace(in.ProductName) == "" {
		return CheckoutOutput{}, NewHTTPError(http.StatusBadRequest, "Invalid checkout request")
	}

	reference := uuid.NewString()

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		//台帳へ追記
		if _, err := r.Purchases().Create(ctx, model.Purchase{
			Reference:     reference,
			UserID:        userID,
			ProductName:   in.ProductName,
			Quantity:      1,
			PurchasedDate: time.Now(),
		}); err != nil {
			return err
		}

		//在庫減算（在庫0なら減らさずに中断。マイナス在庫は作らない）
		ok, err := r.Products().DecrementStockByName(ctx, in.ProductName, 1)
		if err != nil {
			return err
		}
		if !ok {
			return repo.ErrNotFound
		}

		//本人の明細だけを削除。0件なら他人の明細なので中断
		if err := r.Carts().DeleteByIDAndUser(ctx, in.CartID, userID); err != nil {
			return err
		}

		return nil
	})

	//どの段で失敗したかは呼び出し側に見せない
	if err != nil {
		return CheckoutOutput{}, NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
	}

	return CheckoutOutput{Reference: reference}, nil
}
