package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/vitrinecms/backend/docs"
	httphandlers "github.com/vitrinecms/backend/internal/handlers/http"
	"github.com/vitrinecms/backend/internal/handlers/middleware"
	"github.com/vitrinecms/backend/internal/infrastructure/blobstore"
	"github.com/vitrinecms/backend/internal/infrastructure/config"
	"github.com/vitrinecms/backend/internal/infrastructure/logging"
	"github.com/vitrinecms/backend/internal/infrastructure/persistence/postgres"
	"github.com/vitrinecms/backend/internal/infrastructure/token"
	"github.com/vitrinecms/backend/internal/services"

	"github.com/vitrinecms/backend/internal/domain/entities"
)

//	@title			VitrineCMS API
//	@version		1.0
//	@description	Backend multilíngue de catálogo, blog e administração
//	@BasePath		/api

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting vitrinecms backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	// Token service (secret ausente é erro fatal de configuração)
	tokenService, err := token.NewJWTService(cfg.JWT.Secret)
	if err != nil {
		logger.Error("failed to initialize token service", "error", err)
		log.Fatal(err)
	}

	// Blob store das imagens
	blobStore, err := blobstore.NewS3Store(context.Background(), &cfg.Blob)
	if err != nil {
		logger.Error("failed to initialize blob store", "error", err)
		log.Fatal(err)
	}

	// Inicializar repositories
	userRepo := postgres.NewUserRepository(db)
	languageRepo := postgres.NewLanguageRepository(db)
	productRepo := postgres.NewProductRepository(db)
	blogRepo := postgres.NewBlogPostRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Inicializar services
	authService := services.NewAuthService(userRepo, tokenService, uow, logger)
	userService := services.NewUserService(userRepo, logger)
	languageService := services.NewLanguageService(languageRepo, logger)
	productService := services.NewProductService(productRepo, languageRepo, blobStore, logger)
	blogService := services.NewBlogService(blogRepo, languageRepo, blobStore, logger)

	// Inicializar handlers
	authHandler := httphandlers.NewAuthHandler(authService)
	userHandler := httphandlers.NewUserHandler(userService)
	languageHandler := httphandlers.NewLanguageHandler(languageService)
	productHandler := httphandlers.NewProductHandler(productService)
	blogHandler := httphandlers.NewBlogHandler(blogService)

	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Middleware CORS
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := router.Group("/api")
	{
		// Rotas públicas
		api.POST("/login", authHandler.Login)
		api.GET("/products", productHandler.ListProducts)
		api.GET("/products/:id", productHandler.GetProduct)
		api.GET("/blog", blogHandler.ListPosts)
		api.GET("/blog/:slug", blogHandler.GetPostBySlug)
		api.GET("/languages", languageHandler.ListLanguages)

		// Bootstrap do primeiro admin: responde 409 depois que
		// qualquer usuário existir
		api.POST("/admin/register-initial-admin", authHandler.RegisterInitialAdmin)

		// Rotas privilegiadas: authenticate + role
		admin := api.Group("/admin", authMiddleware.Authenticate())
		{
			products := admin.Group("/products", middleware.RequireRole(entities.RoleAdmin))
			{
				products.POST("", productHandler.CreateProduct)
				products.PUT("/:id", productHandler.UpdateProduct)
				products.DELETE("/:id", productHandler.DeleteProduct)
			}

			// Blog aceita editor (admin passa por ser superconjunto)
			blog := admin.Group("/blog", middleware.RequireRole(entities.RoleEditor))
			{
				blog.POST("", blogHandler.CreatePost)
				blog.PUT("/:id", blogHandler.UpdatePost)
				blog.DELETE("/:id", blogHandler.DeletePost)
			}

			languages := admin.Group("/languages", middleware.RequireRole(entities.RoleAdmin))
			{
				languages.POST("", languageHandler.CreateLanguage)
				languages.PUT("/:id", languageHandler.UpdateLanguage)
				languages.DELETE("/:id", languageHandler.DeleteLanguage)
			}

			users := admin.Group("/users", middleware.RequireRole(entities.RoleAdmin))
			{
				users.GET("", userHandler.ListUsers)
				users.POST("", userHandler.CreateUser)
				users.PUT("/:id", userHandler.UpdateUser)
				users.DELETE("/:id", userHandler.DeleteUser)
			}
		}
	}

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
