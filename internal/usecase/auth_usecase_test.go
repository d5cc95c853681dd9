package usecase_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/Wilfred1097/ShoPay/internal/config"
	"github.com/Wilfred1097/ShoPay/internal/domain/model"
	"github.com/Wilfred1097/ShoPay/internal/repository"
	"github.com/Wilfred1097/ShoPay/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// =====================
// Mock: UserRepository
// =====================

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, userID int64) (model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ListAll(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	us, _ := args.Get(0).([]model.User)
	return us, args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// =====================
// Mock: PurchaseRepository
// =====================

type MockPurchaseRepository struct {
	mock.Mock
}

func (m *MockPurchaseRepository) Create(ctx context.Context, p model.Purchase) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPurchaseRepository) ListByUserID(ctx context.Context, userID int64) ([]model.Purchase, error) {
	args := m.Called(ctx, userID)
	ps, _ := args.Get(0).([]model.Purchase)
	return ps, args.Error(1)
}

// =====================
// Mock: AuthValidator
// =====================

type MockAuthValidator struct {
	mock.Mock
}

func (m *MockAuthValidator) ValidateSignup(ctx context.Context, in usecase.SignupInput) error {
	args := m.Called(ctx, in)
	return args.Error(0)
}

func (m *MockAuthValidator) ValidateLogin(ctx context.Context, email string, password string) error {
	args := m.Called(ctx, email, password)
	return args.Error(0)
}

// =====================
// Helper
// =====================

func mustHash(t *testing.T, plain string) string {
	t.Helper()
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("bcrypt failed: %v", err)
	}
	return string(b)
}

func newAuthUC(userRepo *MockUserRepository, purchaseRepo *MockPurchaseRepository, v *MockAuthValidator) *usecase.AuthUsecase {
	cfg := config.Config{
		UserTokenSecret:  "user-test-secret",
		AdminTokenSecret: "admin-test-secret",
	}
	return usecase.NewAuthUsecase(cfg, userRepo, purchaseRepo, v)
}

func assertHTTPError(t *testing.T, err error, status int, message string) {
	t.Helper()
	he, ok := usecase.AsHTTPError(err)
	if !ok {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	assert.Equal(t, status, he.Status)
	assert.Equal(t, message, he.Message)
}

// =====================
// Signup
// =====================

func TestAuthUsecase_Signup_Success(t *testing.T) {
	ctx := context.Background()

	userRepo := new(MockUserRepository)
	purchaseRepo := new(MockPurchaseRepository)
	v := new(MockAuthValidator)

	in := usecase.SignupInput{
		Name:     "Ada Lovelace",
		Username: "ada",
		Email:    "ada@test.com",
		Password: "CorrectPW1",
	}

	v.On("ValidateSignup", mock.Anything, in).Return(nil)
	userRepo.On("ExistsByEmail", mock.Anything, in.Email).Return(false, nil)
	userRepo.On("ExistsByUsername", mock.Anything, in.Username).Return(false, nil)

	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		// 平文が保存されないこと、ロールが既定のuserに落ちることを見る
		if u.Password == in.Password {
			return false
		}
		if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(in.Password)) != nil {
			return false
		}
		return u.Email == in.Email && u.Role == model.RoleUser
	})).Return(nil)

	u := newAuthUC(userRepo, purchaseRepo, v)

	err := u.Signup(ctx, in)
	assert.NoError(t, err)

	userRepo.AssertExpectations(t)
	v.AssertExpectations(t)
}

func TestAuthUsecase_Signup_DuplicateEmail(t *testing.T) {
	ctx := context.Background()

	userRepo := new(MockUserRepository)
	purchaseRepo := new(MockPurchaseRepository)
	v := new(MockAuthValidator)

	in := usecase.SignupInput{
		Name:     "Ada Lovelace",
		Username: "ada",
		Email:    "ada@test.com",
		Password: "CorrectPW1",
	}

	v.On("ValidateSignup", mock.Anything, in).Return(nil)
	userRepo.On("ExistsByEmail", mock.Anything, in.Email).Return(true, nil)

	u := newAuthUC(userRepo, purchaseRepo, v)

	err := u.Signup(ctx, in)
	assertHTTPError(t, err, http.StatusConflict, "Email already exists")

	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthUsecase_Signup_DuplicateUsername(t *testing.T) {
	ctx := context.Background()

	userRepo := new(MockUserRepository)
	purchaseRepo := new(MockPurchaseRepository)
	v := new(MockAuthValidator)

	in := usecase.SignupInput{
		Name:     "Ada Lovelace",
		Username: "ada",
		Email:    "ada@test.com",
		Password: "CorrectPW1",
	}

	v.On("ValidateSignup", mock.Anything, in).Return(nil)
	userRepo.On("ExistsByEmail", mock.Anything, in.Email).Return(false, nil)
	userRepo.On("ExistsByUsername", mock.Anything, in.Username).Return(true, nil)

	u := newAuthUC(userRepo, purchaseRepo, v)

	err := u.Signup(ctx, in)
	assertHTTPError(t, err, http.StatusConflict, "Username already exists")

	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthUsecase_Signup_UnknownRoleFallsBackToUser(t *testing.T) {
	ctx := context.Background()

	userRepo := new(MockUserRepository)
	purchaseRepo := new(MockPurchaseRepository)
	v := new(MockAuthValidator)

	in := usecase.SignupInput{
		Name:     "Mallory",
		Username: "mallory",
		Role:     "superadmin",
		Email:    "mallory@test.com",
		Password: "CorrectPW1",
	}

	v.On("ValidateSignup", mock.Anything, in).Return(nil)
	userRepo.On("ExistsByEmail", mock.Anything, in.Email).Return(false, nil)
	userRepo.On("ExistsByUsername", mock.Anything, in.Username).Return(false, nil)
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.Role == model.RoleUser
	})).Return(nil)

	u := newAuthUC(userRepo, purchaseRepo, v)

	err := u.Signup(ctx, in)
	assert.NoError(t, err)
	userRepo.AssertExpectations(t)
}

// =====================
// Login
// =====================

func TestAuthUsecase_Login_UnknownEmail(t *testing.T) {
	ctx := context.Background()

	userRepo := new(MockUserRepository)
	purchaseRepo := new(MockPurchaseRepository)
	v := new(MockAuthValidator)

	email := "ghost@test.com"
	pass := "CorrectPW1"

	v.On("ValidateLogin", mock.Anything, email, pass).Return(nil)
	userRepo.On("FindByEmail", mock.Anything, email).Return(model.User{}, repository.ErrNotFound)

	u := newAuthUC(userRepo, purchaseRepo, v)

	_, err := u.Login(ctx, email, pass)
	assertHTTPError(t, err, http.StatusNotFound, "No email existed")
}

func TestAuthUsecase_Login_WrongPassword(t *testing.T) {
	ctx := context.Background()

	userRepo := new(MockUserRepository)
	purchaseRepo := new(MockPurchaseRepository)
	v := new(MockAuthValidator)

	email := "ada@test.com"

	v.On("ValidateLogin", mock.Anything, email, "WrongPW").Return(nil)
	userRepo.On("FindByEmail", mock.Anything, email).Return(model.User{
		ID:       1,
		Email:    email,
		Password: mustHash(t, "CorrectPW1"),
		Role:     model.RoleUser,
	}, nil)

	u := newAuthUC(userRepo, purchaseRepo, v)

	_, err := u.Login(ctx, email, "WrongPW")
	assertHTTPError(t, err, http.StatusUnauthorized, "Password not matched")
}

func TestAuthUsecase_Login_UserTokenSignedWithUserSecret(t *testing.T) {
	ctx := context.Background()

	userRepo := new(MockUserRepository)
	purchaseRepo := new(MockPurchaseRepository)
	v := new(MockAuthValidator)

	email := "ada@test.com"
	pass := "CorrectPW1"

	v.On("ValidateLogin", mock.Anything, email, pass).Return(nil)
	userRepo.On("FindByEmail", mock.Anything, email).Return(model.User{
		ID:       42,
		Name:     "Ada Lovelace",
		Email:    email,
		Password: mustHash(t, pass),
		Role:     model.RoleUser,
	}, nil)

	u := newAuthUC(userRepo, purchaseRepo, v)

	out, err := u.Login(ctx, email, pass)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), out.UserID)
	assert.Equal(t, model.RoleUser, out.Role)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), out.ExpiresAt, time.Minute)

	// user側のシークレットで検証が通り、claimsにuserId/nameが入っていること
	tok, err := jwt.Parse(out.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte("user-test-secret"), nil
	})
	assert.NoError(t, err)
	claims, ok := tok.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, float64(42), claims["userId"])
	assert.Equal(t, "Ada Lovelace", claims["name"])
}

func TestAuthUsecase_Login_AdminTokenSignedWithAdminSecret(t *testing.T) {
	ctx := context.Background()

	userRepo := new(MockUserRepository)
	purchaseRepo := new(MockPurchaseRepository)
	v := new(MockAuthValidator)

	email := "boss@test.com"
	pass := "CorrectPW1"

	v.On("ValidateLogin", mock.Anything, email, pass).Return(nil)
	userRepo.On("FindByEmail", mock.Anything, email).Return(model.User{
		ID:       7,
		Name:     "Boss",
		Email:    email,
		Password: mustHash(t, pass),
		Role:     model.RoleAdmin,
	}, nil)

	u := newAuthUC(userRepo, purchaseRepo, v)

	out, err := u.Login(ctx, email, pass)
	assert.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, out.Role)

	// admin側のシークレットでのみ検証が通る
	_, err = jwt.Parse(out.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte("admin-test-secret"), nil
	})
	assert.NoError(t, err)

	_, err = jwt.Parse(out.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte("user-test-secret"), nil
	})
	assert.Error(t, err)
}

func TestAuthUsecase_Login_AdminSecretNotConfigured(t *testing.T) {
	ctx := context.Background()

	userRepo := new(MockUserRepository)
	purchaseRepo := new(MockPurchaseRepository)
	v := new(MockAuthValidator)

	email := "boss@test.com"
	pass := "CorrectPW1"

	v.On("ValidateLogin", mock.Anything, email, pass).Return(nil)
	userRepo.On("FindByEmail", mock.Anything, email).Return(model.User{
		ID:       7,
		Email:    email,
		Password: mustHash(t, pass),
		Role:     model.RoleAdmin,
	}, nil)

	cfg := config.Config{UserTokenSecret: "user-test-secret"} // ADMIN_TOKEN未設定
	u := usecase.NewAuthUsecase(cfg, userRepo, purchaseRepo, v)

	_, err := u.Login(ctx, email, pass)
	assertHTTPError(t, err, http.StatusInternalServerError, "Admin token not configured")
}

// =====================
// Profile
// =====================

func TestAuthUsecase_Profile_IncludesPurchaseHistory(t *testing.T) {
	ctx := context.Background()

	userRepo := new(MockUserRepository)
	purchaseRepo := new(MockPurchaseRepository)
	v := new(MockAuthValidator)

	purchasedAt := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	userRepo.On("FindByID", mock.Anything, int64(42)).Return(model.User{
		ID:       42,
		Name:     "Ada Lovelace",
		Username: "ada",
		Email:    "ada@test.com",
	}, nil)
	purchaseRepo.On("ListByUserID", mock.Anything, int64(42)).Return([]model.Purchase{
		{ProductName: "Keyboard", Quantity: 1, PurchasedDate: purchasedAt},
	}, nil)

	u := newAuthUC(userRepo, purchaseRepo, v)

	out, err := u.Profile(ctx, 42)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), out.UserID)
	assert.Equal(t, "ada", out.Username)
	assert.Len(t, out.PurchasedItems, 1)
	assert.Equal(t, "Keyboard", out.PurchasedItems[0].ProductName)
	assert.Equal(t, purchasedAt, out.PurchasedItems[0].PurchasedDate)
}

func TestAuthUsecase_Profile_UnknownUser(t *testing.T) {
	ctx := context.Background()

	userRepo := new(MockUserRepository)
	purchaseRepo := new(MockPurchaseRepository)
	v := new(MockAuthValidator)

	userRepo.On("FindByID", mock.Anything, int64(999)).Return(model.User{}, repository.ErrNotFound)

	u := newAuthUC(userRepo, purchaseRepo, v)

	_, err := u.Profile(ctx, 999)
	assertHTTPError(t, err, http.StatusUnauthorized, "Unauthorized")
}
