package main

import (
	"context"
	"log"
	"os"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"swipemall/internal/adapter/api"
	"swipemall/internal/adapter/api/handler"
	apimiddleware "swipemall/internal/adapter/api/middleware"
	"swipemall/internal/adapter/api/router"
	"swipemall/internal/adapter/repository"
	"swipemall/internal/infrastructure/auth"
	"swipemall/internal/usecase"
	"swipemall/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	} else if serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); serviceAccountPath != "" {
		opts = append(opts, option.WithCredentialsFile(serviceAccountPath))
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	firestoreClient, err := firebaseApp.Firestore(ctx)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	storeRepo := repository.NewFirestoreStoreRepository(firestoreClient)
	categoryRepo := repository.NewFirestoreCategoryRepository(firestoreClient)
	productRepo := repository.NewFirestoreProductRepository(firestoreClient)
	swipeRepo := repository.NewFirestoreSwipeRepository(firestoreClient)
	followRepo := repository.NewFirestoreFollowRepository(firestoreClient)
	searchHistoryRepo := repository.NewFirestoreSearchHistoryRepository(firestoreClient)

	tokenManager := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiry)

	authUseCase := usecase.NewAuthUseCase(userRepo, tokenManager)
	swipeUseCase := usecase.NewSwipeUseCase(swipeRepo, productRepo)
	feedUseCase := usecase.NewFeedUseCase(productRepo, swipeRepo, followRepo)
	preferenceUseCase := usecase.NewPreferenceUseCase(userRepo)
	recommendationUseCase := usecase.NewRecommendationUseCase(storeRepo, swipeRepo, followRepo, productRepo)
	searchUseCase := usecase.NewSearchUseCase(productRepo, categoryRepo, storeRepo, searchHistoryRepo)
	storeUseCase := usecase.NewStoreUseCase(storeRepo, userRepo, productRepo, followRepo)
	categoryUseCase := usecase.NewCategoryUseCase(categoryRepo, productRepo)
	productUseCase := usecase.NewProductUseCase(productRepo, storeRepo, categoryRepo)
	followUseCase := usecase.NewFollowUseCase(followRepo, storeRepo)

	handler.Setup(
		authUseCase,
		swipeUseCase,
		feedUseCase,
		preferenceUseCase,
		recommendationUseCase,
		searchUseCase,
		storeUseCase,
		categoryUseCase,
		productUseCase,
		followUseCase,
	)

	e := echo.New()

	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(tokenManager)
	adminMiddleware := apimiddleware.NewAdminMiddleware(userRepo)

	router.Setup(e, authMiddleware, adminMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
