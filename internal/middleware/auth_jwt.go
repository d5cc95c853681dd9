package middleware

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Wilfred1097/ShoPay/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	// セッショントークンを乗せるCookie名
	SessionCookieName = "token"

	CtxUserIDKey   = "user_id"   // int64
	CtxUserNameKey = "user_name" // string
)

// Cookie JWT検証ミドルウェア。
// 発行はロール別シークレットなので、検証はuser→adminの順で両方試す。
func AuthJWT(cfg config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			//Cookieからtokenを取得
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("Authentication token is missing."))
			}
			rawToken := cookie.Value

			//まずuserシークレットで検証
			token, parseErr := parseHS256(rawToken, cfg.UserTokenSecret)
			if parseErr != nil {
				//署名が通って期限だけ切れている場合はここで確定
				if errors.Is(parseErr, jwt.ErrTokenExpired) {
					return c.JSON(http.StatusUnauthorized, errorJSON("Authentication token has expired."))
				}
				//adminシークレットでもう一度
				if cfg.AdminTokenSecret != "" {
					token, parseErr = parseHS256(rawToken, cfg.AdminTokenSecret)
				}
			}
			if parseErr != nil || token == nil || !token.Valid {
				if errors.Is(parseErr, jwt.ErrTokenExpired) {
					return c.JSON(http.StatusUnauthorized, errorJSON("Authentication token has expired."))
				}
				return c.JSON(http.StatusForbidden, errorJSON("Invalid authentication token."))
			}

			//claimsを取り出す
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusForbidden, errorJSON("Invalid authentication token."))
			}

			//userIdを取り出す
			userID, err := parseUserID(claims["userId"])
			if err != nil || userID <= 0 {
				return c.JSON(http.StatusForbidden, errorJSON("Invalid authentication token."))
			}

			name, _ := claims["name"].(string)

			//contextへ保存
			c.Set(CtxUserIDKey, userID)
			c.Set(CtxUserNameKey, name)

			return next(c)
		}
	}
}

func parseHS256(rawToken string, secret string) (*jwt.Token, error) {
	return jwt.Parse(rawToken, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
}

type errorResponse struct {
	Error string `json:"error"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Error: msg}
}

// userIdをint64に変換する
func parseUserID(v interface{}) (int64, error) {
	switch t := v.(type) {
	case float64:
		return int64(t), nil
	case string:
		return strconv.ParseInt(t, 10, 64)
	default:
		return 0, errors.New("invalid userId")
	}
}
