// @title Azhari Attar Storefront API
// @version 1.0
// @description Local-first storefront API for the Azhari Attar fragrance catalog
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/ArmanNagariya-Developer/azhari-attar/catalog"
	"github.com/ArmanNagariya-Developer/azhari-attar/config"
	"github.com/ArmanNagariya-Developer/azhari-attar/controllers/storefront/featured_controller"
	"github.com/ArmanNagariya-Developer/azhari-attar/controllers/storefront/filter_controller"
	"github.com/ArmanNagariya-Developer/azhari-attar/controllers/storefront/product_controller"
	"github.com/ArmanNagariya-Developer/azhari-attar/controllers/storefront/wishlist_controller"
	_ "github.com/ArmanNagariya-Developer/azhari-attar/docs"
	"github.com/ArmanNagariya-Developer/azhari-attar/middleware"
	"github.com/ArmanNagariya-Developer/azhari-attar/models"
	"github.com/ArmanNagariya-Developer/azhari-attar/notify"
	"github.com/ArmanNagariya-Developer/azhari-attar/routes"
	"github.com/ArmanNagariya-Developer/azhari-attar/services"
	"github.com/ArmanNagariya-Developer/azhari-attar/wishlist"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	if err := config.Init(); err != nil {
		log.Fatalf("failed to initialize configuration: %v", err)
	}
	defer config.Log.Sync()

	// The catalog is loaded once and lives, immutable, for the process.
	cat, err := catalog.Load()
	if err != nil {
		config.Log.Fatal("failed to load catalog", zap.Error(err))
	}
	config.Log.Info("catalog loaded", zap.Int("products", cat.Len()))

	hub := notify.NewHub()
	store := wishlist.NewStore(config.App.WishlistPath, hub, config.Log)
	watcher := notify.NewStorageWatcher(config.App.WishlistPath, hub, config.Log)

	// The carousel rotates through the popular tab.
	popular := cat.Query(models.FilterSpec{ActiveTab: models.CategoryPopular})
	rotator := services.NewRotator(popular, hub, config.Log)

	// Wire controllers
	product_controller.Init(cat)
	filter_controller.Init(cat)
	wishlist_controller.Init(cat, store, hub)
	featured_controller.Init(rotator)

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"},
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")
	api.Use(middleware.RateLimiter(300, time.Minute))
	routes.SetupStorefrontRoutes(api)

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{Addr: config.App.Addr, Handler: router}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return watcher.Run(ctx) })
	g.Go(func() error { return rotator.Run(ctx) })
	g.Go(func() error {
		config.Log.Info("storefront listening", zap.String("addr", config.App.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		config.Log.Fatal("storefront exited", zap.Error(err))
	}
}
