package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"procurehub/internal/adapter/api"
	"procurehub/internal/adapter/api/handler"
	apimiddleware "procurehub/internal/adapter/api/middleware"
	"procurehub/internal/adapter/api/router"
	"procurehub/internal/adapter/repository"
	"procurehub/internal/infrastructure/mongodb"
	"procurehub/internal/infrastructure/websocket"
	"procurehub/internal/usecase"
	"procurehub/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	mongoClient, err := mongodb.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect(ctx)

	db := mongoClient.Database(cfg.MongoDB)
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}

	userRepo := repository.NewMongoUserRepository(db)
	productRepo := repository.NewMongoProductRepository(db)
	categoryRepo := repository.NewMongoCategoryRepository(db)
	bidRepo := repository.NewMongoBidRepository(db)
	requirementRepo := repository.NewMongoRequirementRepository(db)
	chatRepo := repository.NewMongoChatRepository(db)

	authUseCase := usecase.NewAuthUseCase(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	productUseCase := usecase.NewProductUseCase(productRepo, categoryRepo)
	bidUseCase := usecase.NewBidUseCase(bidRepo, productRepo, userRepo, requirementRepo)
	requirementUseCase := usecase.NewRequirementUseCase(requirementRepo, productRepo)
	chatUseCase := usecase.NewChatUseCase(chatRepo, userRepo, productRepo)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)
	wsRouter := websocket.NewRouter(wsManager, chatUseCase, requirementUseCase)

	authMiddleware := apimiddleware.NewAuthMiddleware(cfg.JWTSecret)

	e := echo.New()

	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	e.Validator = api.NewValidator()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	router.Setup(e, router.Handlers{
		Auth:        handler.NewAuthHandler(authUseCase),
		Product:     handler.NewProductHandler(productUseCase),
		Bid:         handler.NewBidHandler(bidUseCase),
		Requirement: handler.NewRequirementHandler(requirementUseCase),
		Chat:        handler.NewChatHandler(chatUseCase),
		WebSocket:   handler.NewWebSocketHandler(wsManager, wsRouter, authMiddleware),
	}, authMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
