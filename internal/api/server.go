package api

import (
	"novitatravel/internal/app/config"
	"novitatravel/internal/app/handler"
	"novitatravel/internal/app/middleware"
	"novitatravel/internal/app/repository"
	"novitatravel/internal/app/storage"
	"novitatravel/internal/pkg"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func StartServer() {
	logrus.Info("Starting server")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	repo, err := repository.New(cfg.DSN())
	if err != nil {
		logrus.Fatalf("Failed to initialize repository: %v", err)
	}

	if err := repo.EnsureAdmin(cfg.Admin.Email, cfg.Admin.Password); err != nil {
		logrus.Errorf("Database initialization error: %v", err)
	}
	if err := repo.SeedDefaults(); err != nil {
		logrus.Errorf("Database initialization error: %v", err)
	}

	store, err := storage.NewDiskStorage(cfg.Upload.Dir, cfg.Upload.MaxSize)
	if err != nil {
		logrus.Fatalf("Failed to initialize storage: %v", err)
	}

	apiHandler := handler.NewAPIHandler(repo, store, cfg)
	authMiddleware := middleware.NewAuthMiddleware(cfg)

	router := gin.Default()
	router.Use(cors.Default()) // the admin panel runs from a separate origin

	app := pkg.NewApp(cfg, router, apiHandler, authMiddleware)
	app.RunApp()
}
