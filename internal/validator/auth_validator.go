package validator

import (
	"context"
	"net/http"
	"regexp"
	"strings"

	"github.com/Wilfred1097/ShoPay/internal/usecase"
)

type authValidator struct{}

// Usecaseは interface を依存注入
func NewAuthValidator() usecase.AuthValidator {
	return &authValidator{}
}

// サインアップの入力を検証
func (v *authValidator) ValidateSignup(ctx context.Context, in usecase.SignupInput) error {
	// 必須チェック
	if strings.TrimSpace(in.Name) == "" ||
		strings.TrimSpace(in.Username) == "" ||
		strings.TrimSpace(in.Email) == "" ||
		in.Password == "" {
		return usecase.NewHTTPError(http.StatusBadRequest, "Missing required field")
	}

	// email形式
	if !isEmailLike(strings.TrimSpace(in.Email)) {
		return usecase.NewHTTPError(http.StatusBadRequest, "Invalid email format")
	}

	// パスワード最低文字数（MVP: 8）
	if len(in.Password) < 8 {
		return usecase.NewHTTPError(http.StatusBadRequest, "Password too short")
	}

	return nil
}

// ログインの入力を検証
func (v *authValidator) ValidateLogin(ctx context.Context, email string, password string) error {
	email = strings.TrimSpace(email)

	// 必須チェック
	if email == "" || password == "" {
		return usecase.NewHTTPError(http.StatusBadRequest, "Missing required field")
	}

	// email形式
	if !isEmailLike(email) {
		return usecase.NewHTTPError(http.StatusBadRequest, "Invalid email format")
	}

	return nil
}

// 簡易メール形式をチェック
func isEmailLike(s string) bool {
	re := regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	return re.MatchString(s)
}
