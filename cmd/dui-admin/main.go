package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/avelikanov/dui-admin/internal/config"
	"github.com/avelikanov/dui-admin/internal/database"
	"github.com/avelikanov/dui-admin/internal/handlers"
	authmw "github.com/avelikanov/dui-admin/internal/middleware"
	"github.com/avelikanov/dui-admin/internal/printclient"
	"github.com/avelikanov/dui-admin/internal/services"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/m1z23r/drift/pkg/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	jwtService := services.NewJWTService(cfg.JWTSecret, cfg.JWTAccessExpiry)
	collectionService := services.NewCollectionService(db)
	pageService := services.NewPageService(db)
	templateService := services.NewTemplateService(db, cfg.TemplateDir)
	printClient := printclient.New(cfg.PrintService.BaseURL, cfg.PrintService.Timeout)

	collectionHandler := handlers.NewCollectionHandler(collectionService)
	pageHandler := handlers.NewPageHandler(pageService)
	templateHandler := handlers.NewTemplateHandler(templateService)
	printHandler := handlers.NewPrintHandler(printClient)

	app := drift.New()

	if cfg.IsProduction() {
		app.SetMode(drift.ReleaseMode)
	} else {
		app.SetMode(drift.DebugMode)
	}

	app.Use(middleware.Recovery())
	app.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		MaxAge:       86400,
	}))
	app.Use(middleware.BodyParser())

	api := app.Group("/app/v1")

	api.Get("/page", pageHandler.Get)
	api.Get("/page/instructions", pageHandler.GetInstructions)

	protected := api.Group("")
	protected.Use(authmw.Auth(jwtService))

	protected.Post("/template/list", templateHandler.List)
	protected.Get("/template/:templateId/page", templateHandler.GetPage)
	protected.Get("/template/:templateId/image", templateHandler.GetImage)

	protected.Post("/print/template/filter", printHandler.Filter)
	protected.Get("/print/template/:templateId", printHandler.Get)
	protected.Post("/print/template/:templateId/schema", printHandler.Schema)
	protected.Post("/print/template", printHandler.Create)
	protected.Put("/print/template/:templateId", printHandler.Update)
	protected.Delete("/print/template/:templateId", printHandler.Delete)
	protected.Get("/print/template/:templateId/download", printHandler.Download)

	protected.Post("/collection/list", collectionHandler.List)
	protected.Post("/collection", collectionHandler.Create)
	protected.Get("/collection/:collectionId", collectionHandler.Get)
	protected.Put("/collection/:collectionId", collectionHandler.Edit)
	protected.Delete("/collection/:collectionId", collectionHandler.Delete)
	protected.Post("/collection/:collectionId/history", collectionHandler.History)
	protected.Get("/collection/:collectionId/history/:versionId", collectionHandler.GetByVersion)
	protected.Get("/collection/:collectionId/export", collectionHandler.Export)

	api.Get("/health", func(c *drift.Context) {
		_ = c.JSON(200, map[string]string{"status": "ok"})
	})

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		log.Printf("Server starting on %s", addr)
		if err := app.Run(addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
}
