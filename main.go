package main

import (
	"log"

	api "revdev-backend/cmd/api"
	authdomain "revdev-backend/internal/auth/domain"
	authRepo "revdev-backend/internal/auth/repository"
	authUsecase "revdev-backend/internal/auth/usecase"
	chatUsecase "revdev-backend/internal/chat/usecase"
	contactUsecase "revdev-backend/internal/contact/usecase"
	projectdomain "revdev-backend/internal/project/domain"
	projectRepo "revdev-backend/internal/project/repository"
	projectUsecase "revdev-backend/internal/project/usecase"
	uploadUsecase "revdev-backend/internal/upload/usecase"
	usersRepo "revdev-backend/internal/users/repository"
	usersUsecase "revdev-backend/internal/users/usecase"
	"revdev-backend/pkg/ai"
	"revdev-backend/pkg/blob"
	"revdev-backend/pkg/config"
	"revdev-backend/pkg/database"
	"revdev-backend/pkg/email"
	"revdev-backend/pkg/sse"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Repositories default to demo mode and are swapped for postgres
	// implementations when a database is configured
	var userRepository authRepo.UserRepository
	projectRepository := projectRepo.NewDemoProjectRepository()
	userAdminRepository := usersRepo.NewDemoUserRepository()

	if cfg.IsDatabaseConfigured() {
		db, err := database.NewPostgresConnection(cfg)
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}

		// Auto-migrate database schemas
		if err := db.AutoMigrate(&authdomain.User{}, &projectdomain.Project{}); err != nil {
			log.Fatal("Failed to migrate database:", err)
		}

		serviceDB, err := database.NewServiceConnection(cfg, db)
		if err != nil {
			log.Fatal("Failed to connect with service credentials:", err)
		}

		userRepository = authRepo.NewUserRepository(db)
		projectRepository = projectRepo.NewGormProjectRepository(db, serviceDB)
		userAdminRepository = usersRepo.NewGormUserAdminRepository(db)

		ensureCanonicalAdmin(cfg, userRepository)
	} else {
		log.Printf("[WARN] DATABASE_URL not configured, running in demo mode")
	}

	// Initialize SSE Manager for session change notifications
	sseManager := sse.NewManager()
	go sseManager.Run()

	// Initialize AI chat service
	chatService, err := ai.NewChatService(ai.Config{
		Provider:      ai.ProviderType(cfg.AIProvider),
		GeminiAPIKey:  cfg.GeminiApiKey,
		OllamaBaseURL: cfg.OllamaBaseURL,
		OllamaModel:   cfg.OllamaModel,
	})
	if err != nil {
		log.Printf("[WARN] Failed to initialize AI service (chat will answer with the fallback message): %v", err)
	}

	// Initialize blob storage for image uploads
	var blobStore uploadUsecase.BlobStore
	if cfg.IsBlobConfigured() {
		store, err := blob.NewS3Store(cfg)
		if err != nil {
			log.Printf("[WARN] Failed to initialize blob storage (uploads disabled): %v", err)
		} else {
			blobStore = store
		}
	} else {
		log.Printf("[WARN] Blob storage not configured, uploads disabled")
	}

	// Initialize use cases (dependency injection)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, cfg)
	projectUsecaseInstance := projectUsecase.NewProjectUsecase(projectRepository, authUsecaseInstance, cfg)
	userUsecaseInstance := usersUsecase.NewUserUsecase(userAdminRepository, authUsecaseInstance, cfg)
	contactUsecaseInstance := contactUsecase.NewContactUsecase(email.NewResendService(cfg.ResendAPIKey), cfg)
	chatUsecaseInstance := chatUsecase.NewChatUsecase(chatService)
	uploadUsecaseInstance := uploadUsecase.NewUploadUsecase(blobStore, cfg.MaxUploadBytes)

	// Initialize HTTP handler
	handler := api.NewHandler(
		cfg,
		authUsecaseInstance,
		projectUsecaseInstance,
		userUsecaseInstance,
		contactUsecaseInstance,
		chatUsecaseInstance,
		uploadUsecaseInstance,
		sseManager,
	)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// ensureCanonicalAdmin creates the fixed admin account on first boot so the
// admin predicate has exactly one canonical identity to match.
func ensureCanonicalAdmin(cfg *config.Config, repo authRepo.UserRepository) {
	existing, err := repo.FindByEmail(cfg.AdminEmail)
	if err != nil {
		log.Printf("[ERROR] Could not look up canonical admin: %v", err)
		return
	}
	if existing != nil {
		return
	}

	if cfg.AdminPassword == "" {
		log.Printf("[WARN] Canonical admin %s does not exist and ADMIN_PASSWORD is not set", cfg.AdminEmail)
		return
	}

	hashed, err := authRepo.HashPassword(cfg.AdminPassword)
	if err != nil {
		log.Printf("[ERROR] Could not hash admin password: %v", err)
		return
	}

	admin := &authdomain.User{
		Email:    cfg.AdminEmail,
		Password: hashed,
		Name:     "Administrador RevDev",
		Role:     authdomain.RoleAdmin,
	}
	if err := repo.Create(admin); err != nil {
		log.Printf("[ERROR] Could not create canonical admin: %v", err)
		return
	}
	log.Printf("[DEBUG] Canonical admin %s created", cfg.AdminEmail)
}
