package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bcrservices/car-rental-api/internal/audit"
	"github.com/bcrservices/car-rental-api/internal/auth"
	"github.com/bcrservices/car-rental-api/internal/authz"
	"github.com/bcrservices/car-rental-api/internal/cache"
	"github.com/bcrservices/car-rental-api/internal/config"
	"github.com/bcrservices/car-rental-api/internal/handlers"
	infraRepo "github.com/bcrservices/car-rental-api/internal/infra/repository"
	"github.com/bcrservices/car-rental-api/internal/middleware"
	"github.com/bcrservices/car-rental-api/internal/storage"
	ucrental "github.com/bcrservices/car-rental-api/internal/usecase/rental"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	hasher := auth.NewHasher(cfg.BcryptCost)
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	listCache := cache.New(cfg.RedisAddr, "cars", cfg.CacheTTL)

	uploader := storage.NewUploader(storage.Options{
		Region:    cfg.S3Region,
		Bucket:    cfg.S3Bucket,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		Endpoint:  cfg.S3Endpoint,
		PublicURL: cfg.S3PublicURL,
	})

	rentalRepo := infraRepo.NewRentalGormRepository(db)

	// ======================================================
	// USE CASES
	// ======================================================
	rentCarUC := ucrental.NewRentCar(rentalRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	appHandler := handlers.NewAppHandler()
	authHandler := handlers.NewAuthHandler(db, hasher, tokens, auditDispatcher)
	carHandler := handlers.NewCarHandler(db, listCache, uploader, auditDispatcher)
	rentalHandler := handlers.NewRentalHandler(rentCarUC, listCache)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// ROUTES
	// ======================================================
	r.GET("/", appHandler.Root)
	r.NoRoute(appHandler.NotFound)

	v1 := r.Group("/v1")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		v1.POST("/auth/register", authHandler.Register)
		v1.POST("/auth/login", authHandler.Login)
		v1.GET("/auth/whoami", middleware.Authenticate(tokens), authHandler.Whoami)

		// ------------------------------
		// PUBLIC CARS
		// ------------------------------
		v1.GET("/cars", carHandler.List)
		v1.GET("/cars/:id", carHandler.Get)

		// ------------------------------
		// SECURED
		// ------------------------------
		secured := v1.Group("/")
		secured.Use(middleware.Authenticate(tokens))
		{
			secured.POST("/cars", middleware.Require(authz.OpCarCreate), carHandler.Create)
			secured.PUT("/cars/:id", middleware.Require(authz.OpCarUpdate), carHandler.Update)
			secured.DELETE("/cars/:id", middleware.Require(authz.OpCarDelete), carHandler.Delete)
			secured.POST("/cars/:id/image", middleware.Require(authz.OpCarImageUpload), carHandler.UploadImage)

			secured.POST("/cars/:id/rent", middleware.Require(authz.OpCarRent), rentalHandler.Rent)

			secured.GET("/audit-logs", middleware.Require(authz.OpAuditLogList), auditLogsHandler.List)
		}
	}
}
