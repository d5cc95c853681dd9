package usecase

import (
	"context"
	"net/http"
	"time"

	"github.com/Wilfred1097/ShoPay/internal/config"
	"github.com/Wilfred1097/ShoPay/internal/domain/model"
	repo "github.com/Wilfred1097/ShoPay/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// セッショントークンの有効期限（発行から24時間）
const sessionTokenTTL = 24 * time.Hour

// usecaseがValidatorInterfaceに依存する約束
type AuthValidator interface {
	ValidateSignup(ctx context.Context, in SignupInput) error
	ValidateLogin(ctx context.Context, email string, password string) error
}

type SignupInput struct {
	Name       string
	Username   string
	Birthdate  string
	Address    string
	Role       string
	Email      string
	Password   string
	ProfilePic string
}

type LoginOutput struct {
	UserID    int64
	Role      model.Role
	Token     string
	ExpiresAt time.Time
}

// 購入履歴の1行（profileの返却形）。
type PurchasedItem struct {
	ProductName   string    `json:"product_name"`
	Quantity      int64     `json:"quantity"`
	PurchasedDate time.Time `json:"purchased_date"`
}

type ProfileOutput struct {
	UserID         int64           `json:"userId"`
	Name           string          `json:"name"`
	Username       string          `json:"username"`
	Birthdate      string          `json:"birthdate"`
	Address        string          `json:"address"`
	Email          string          `json:"email"`
	ProfilePic     string          `json:"profile_pic"`
	PurchasedItems []PurchasedItem `json:"purchasedItems"`
}

type AuthUsecase struct {
	cfg       config.Config
	users     repo.UserRepository
	purchases repo.PurchaseRepository
	validator AuthValidator
}

func NewAuthUsecase(
	cfg config.Config,
	users repo.UserRepository,
	purchases repo.PurchaseRepository,
	validator AuthValidator,
) *AuthUsecase {
	return &AuthUsecase{
		cfg:       cfg,
		users:     users,
		purchases: purchases,
		validator: validator,
	}
}

func (u *AuthUsecase) Signup(ctx context.Context, in SignupInput) error {
	//入力検証（validatorに寄せる）
	if err := u.validator.ValidateSignup(ctx, in); err != nil {
		return err
	}

	//email重複チェック
	exists, err := u.users.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
	}
	if exists {
		return NewHTTPError(http.StatusConflict, "Email already exists")
	}

	//username重複チェック
	exists, err = u.users.ExistsByUsername(ctx, in.Username)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
	}
	if exists {
		return NewHTTPError(http.StatusConflict, "Username already exists")
	}

	//パスワードは必ずハッシュ化して保存（平文保存しない）
	pwHash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
	}

	role := model.Role(in.Role)
	if role != model.RoleAdmin {
		role = model.RoleUser
	}

	user := &model.User{
		Name:       in.Name,
		Username:   in.Username,
		Birthdate:  in.Birthdate,
		Address:    in.Address,
		Role:       role,
		Email:      in.Email,
		Password:   string(pwHash),
		ProfilePic: in.ProfilePic,
	}

	if err := u.users.Create(ctx, user); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
	}
	return nil
}

func (u *AuthUsecase) Login(ctx context.Context, email string, password string) (LoginOutput, error) {
	if err := u.validator.ValidateLogin(ctx, email, password); err != nil {
		return LoginOutput{}, err
	}

	//emailでユーザー取得
	user, err := u.users.FindByEmail(ctx, email)
	if err == repo.ErrNotFound {
		return LoginOutput{}, NewHTTPError(http.StatusNotFound, "No email existed")
	}
	if err != nil {
		return LoginOutput{}, NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
	}

	//パスワード照合（bcrypt）
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return LoginOutput{}, NewHTTPError(http.StatusUnauthorized, "Password not matched")
	}

	//ロール別の署名シークレットを選ぶ
	secret, err := u.signingSecret(user.Role)
	if err != nil {
		return LoginOutput{}, err
	}

	//セッショントークン発行（userId / name を埋め込む）
	now := time.Now()
	expiresAt := now.Add(sessionTokenTTL)

	claims := jwt.MapClaims{
		"userId": user.ID,
		"name":   user.Name,
		"iat":    now.Unix(),
		"exp":    expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(secret))
	if err != nil {
		return LoginOutput{}, NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
	}

	return LoginOutput{
		UserID:    user.ID,
		Role:      user.Role,
		Token:     signed,
		ExpiresAt: expiresAt,
	}, nil
}

// ロールに対応する署名シークレット。未設定なら設定エラー。
func (u *AuthUsecase) signingSecret(role model.Role) (string, error) {
	switch role {
	case model.RoleAdmin:
		if u.cfg.AdminTokenSecret == "" {
			return "", NewHTTPError(http.StatusInternalServerError, "Admin token not configured")
		}
		return u.cfg.AdminTokenSecret, nil
	case model.RoleUser:
		if u.cfg.UserTokenSecret == "" {
			return "", NewHTTPError(http.StatusInternalServerError, "User token not configured")
		}
		return u.cfg.UserTokenSecret, nil
	default:
		return "", NewHTTPError(http.StatusInternalServerError, "Invalid user role")
	}
}

// ユーザー情報と購入履歴をまとめて返す。
func (u *AuthUsecase) Profile(ctx context.Context, userID int64) (ProfileOutput, error) {
	if userID <= 0 {
		return ProfileOutput{}, NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}

	user, err := u.users.FindByID(ctx, userID)
	if err == repo.ErrNotFound {
		return ProfileOutput{}, NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}
	if err != nil {
		return ProfileOutput{}, NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
	}

	purchases, err := u.purchases.ListByUserID(ctx, userID)
	if err != nil {
		return ProfileOutput{}, NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
	}

	items := make([]PurchasedItem, 0, len(purchases))
	for _, p := range purchases {
		items = append(items, PurchasedItem{
			ProductName:   p.ProductName,
			Quantity:      p.Quantity,
			PurchasedDate: p.PurchasedDate,
		})
	}

	return ProfileOutput{
		UserID:         user.ID,
		Name:           user.Name,
		Username:       user.Username,
		Birthdate:      user.Birthdate,
		Address:        user.Address,
		Email:          user.Email,
		ProfilePic:     user.ProfilePic,
		PurchasedItems: items,
	}, nil
}
