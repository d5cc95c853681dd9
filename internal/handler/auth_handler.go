package handler

import (
	"net/http"
	"time"

	"github.com/Wilfred1097/ShoPay/internal/config"
	"github.com/Wilfred1097/ShoPay/internal/event"
	"github.com/Wilfred1097/ShoPay/internal/middleware"
	"github.com/Wilfred1097/ShoPay/internal/usecase"

	"github.com/labstack/echo/v4"
)

type StatusResponse struct {
	Status string `json:"Status"`
}

type LoginResponse struct {
	Status string `json:"Status"`
	Role   string `json:"Role"`
	UserID int64  `json:"UserId"`
}

// 認証まわりのAPI
type AuthHandler struct {
	uc       *usecase.AuthUsecase
	cfg      config.Config
	producer *event.Producer
}

// DI
func NewAuthHandler(uc *usecase.AuthUsecase, cfg config.Config, producer *event.Producer) *AuthHandler {
	return &AuthHandler{uc: uc, cfg: cfg, producer: producer}
}

// 認証ルートを登録。/profile のみトークン必須
func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/signup", h.signup)
	e.POST("/login", h.login)
	e.POST("/logout", h.logout)
	e.GET("/profile", h.profile, middleware.AuthJWT(h.cfg))
}

type signupRequest struct {
	Name       string `json:"name"`
	Username   string `json:"username"`
	Birthdate  string `json:"birthdate"`
	Address    string `json:"address"`
	Role       string `json:"role"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	ProfilePic string `json:"profile_pic"`
}

func (h *AuthHandler) signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
	}

	in := usecase.SignupInput{
		Name:       req.Name,
		Username:   req.Username,
		Birthdate:  req.Birthdate,
		Address:    req.Address,
		Role:       req.Role,
		Email:      req.Email,
		Password:   req.Password,
		ProfilePic: req.ProfilePic,
	}
	if err := h.uc.Signup(c.Request().Context(), in); err != nil {
		return writeError(c, err)
	}

	h.publish(c, event.TopicUserEvents, req.Email, map[string]any{
		"type":  "user_signed_up",
		"email": req.Email,
	})

	return c.JSON(http.StatusOK, StatusResponse{Status: "Success"})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
	}

	out, err := h.uc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return writeError(c, err)
	}

	h.setSessionCookie(c, out.Token, out.ExpiresAt)

	return c.JSON(http.StatusOK, LoginResponse{
		Status: "Success",
		Role:   string(out.Role),
		UserID: out.UserID,
	})
}

func (h *AuthHandler) logout(c echo.Context) error {
	h.clearSessionCookie(c)
	return c.JSON(http.StatusOK, StatusResponse{Status: "Success"})
}

func (h *AuthHandler) profile(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return err
	}

	out, err := h.uc.Profile(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *AuthHandler) setSessionCookie(c echo.Context, token string, expiresAt time.Time) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// 失敗してもリクエストは落とさない
func (h *AuthHandler) publish(c echo.Context, topic, key string, payload map[string]any) {
	if err := h.producer.PublishEvent(c.Request().Context(), topic, key, payload); err != nil {
		c.Logger().Errorf("failed to publish event to %s: %v", topic, err)
	}
}
