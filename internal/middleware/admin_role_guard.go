package middleware

import (
	"net/http"

	"github.com/Wilfred1097/ShoPay/internal/domain/model"
	"github.com/Wilfred1097/ShoPay/internal/repository"

	"github.com/labstack/echo/v4"
)

//トークンはロールを持たないので、DBの最新roleで判定する。

func AdminRoleGuard(userRepo repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rawUserID := c.Get(CtxUserIDKey)
			userID, ok := rawUserID.(int64)
			if !ok || userID <= 0 {
				return c.JSON(http.StatusUnauthorized, errorJSON("Authentication token is missing."))
			}

			//DBから最新のuserを取得する
			user, err := userRepo.FindByID(c.Request().Context(), userID)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorJSON("Authentication token is missing."))
			}

			//userは拒否、adminだけ許可
			if user.Role != model.RoleAdmin {
				return c.JSON(http.StatusForbidden, errorJSON("Admin only"))
			}

			return next(c)
		}
	}
}
