package repository

import (
	"context"

	"github.com/Wilfred1097/ShoPay/internal/domain/model"
)

// 保存・取得を約束
type UserRepository interface {
	//新規ユーザー作成
	Create(ctx context.Context, user *model.User) error
	// IDからユーザーを1件取得する。
	FindByID(ctx context.Context, userID int64) (model.User, error)
	//メールからユーザーを1件取得する。
	FindByEmail(ctx context.Context, email string) (model.User, error)
	//signupの重複チェック用
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	//管理画面の一覧
	ListAll(ctx context.Context) ([]model.User, error)
	//管理者によるユーザー更新・削除
	Update(ctx context.Context, user model.User) error
	Delete(ctx context.Context, userID int64) error
}
