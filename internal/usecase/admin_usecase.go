package usecase

import (
	"context"
	"net/http"
	"strings"

	"github.com/Wilfred1097/ShoPay/internal/domain/model"
	repo "github.com/Wilfred1097/ShoPay/internal/repository"
)

// AdminUsecase はユーザー管理（一覧・更新・削除）をまとめる。
// 商品側の管理CRUDは CatalogUsecase が持つ。
type AdminUsecase struct {
	users repo.UserRepository
}

// DI
func NewAdminUsecase(users repo.UserRepository) *AdminUsecase {
	return &AdminUsecase{users: users}
}

func (u *AdminUsecase) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := u.users.ListAll(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
	}
	return users, nil
}

type UpdateUserInput struct {
	Name       string
	Username   string
	Birthdate  string
	Address    string
	Role       string
	Email      string
	ProfilePic string
}

func (u *AdminUsecase) UpdateUser(ctx context.Context, userID int64, in UpdateUserInput) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "Invalid item ID")
	}
	if strings.TrimSpace(in.Username) == "" || strings.TrimSpace(in.Email) == "" {
		return NewHTTPError(http.StatusBadRequest, "Username and email are required")
	}

	role := model.Role(in.Role)
	if role != model.RoleAdmin && role != model.RoleUser {
		return NewHTTPError(http.StatusBadRequest, "Invalid user role")
	}

	err := u.users.Update(ctx, model.User{
		ID:         userID,
		Name:       in.Name,
		Username:   strings.TrimSpace(in.Username),
		Birthdate:  in.Birthdate,
		Address:    in.Address,
		Role:       role,
		Email:      strings.TrimSpace(in.Email),
		ProfilePic: in.ProfilePic,
	})
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "Item not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
	}
	return nil
}

func (u *AdminUsecase) DeleteUser(ctx context.Context, userID int64) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "Invalid item ID")
	}

	err := u.users.Delete(ctx, userID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "Item not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
	}
	return nil
}
