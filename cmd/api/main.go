package main

import (
	"os"

	"github.com/Wilfred1097/ShoPay/internal/config"
	"github.com/Wilfred1097/ShoPay/internal/domain/model"
	"github.com/Wilfred1097/ShoPay/internal/event"
	"github.com/Wilfred1097/ShoPay/internal/handler"
	"github.com/Wilfred1097/ShoPay/internal/infra/db"
	infraRepo "github.com/Wilfred1097/ShoPay/internal/infra/repository"
	"github.com/Wilfred1097/ShoPay/internal/logging"
	"github.com/Wilfred1097/ShoPay/internal/server"
	"github.com/Wilfred1097/ShoPay/internal/usecase"
	"github.com/Wilfred1097/ShoPay/internal/validator"

	"github.com/joho/godotenv"
)

func main() {
	//.envはあれば読む（本番は環境変数で渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logging.New(cfg.LogLevel)

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.CartItem{},
		&model.Purchase{},
	); err != nil {
		log.Error("failed to migrate schema", "error", err)
		os.Exit(1)
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	cartRepo := infraRepo.NewCartGormRepository(gormDB)
	purchaseRepo := infraRepo.NewPurchaseGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//Kafka（ブローカー未設定なら無効のまま動く）
	producer := event.NewProducer(cfg.KafkaBrokers)
	if producer != nil {
		defer producer.Close()
	}

	//Usecase生成
	authUC := usecase.NewAuthUsecase(cfg, userRepo, purchaseRepo, validator.NewAuthValidator())
	catalogUC := usecase.NewCatalogUsecase(productRepo)
	cartUC := usecase.NewCartUsecase(cartRepo, productRepo)
	checkoutUC := usecase.NewCheckoutUsecase(txManager)
	adminUC := usecase.NewAdminUsecase(userRepo)

	//Handler生成
	handlers := server.Handlers{
		Auth:     handler.NewAuthHandler(authUC, cfg, producer),
		Product:  handler.NewProductHandler(catalogUC),
		Cart:     handler.NewCartHandler(cartUC),
		Checkout: handler.NewCheckoutHandler(checkoutUC, producer),
		Admin:    handler.NewAdminHandler(adminUC, catalogUC, producer),
	}

	//Server起動
	e := server.New(cfg, log, userRepo, handlers)
	log.Info("starting server", "port", cfg.Port, "env", cfg.GoEnv)
	if err := server.Start(e, cfg.Port); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
