package main

import (
	"os"
	"os/signal"
	"syscall"

	"emps/inner/common"
	"emps/inner/database"
	"emps/inner/employee"
	"emps/inner/info"
	"emps/inner/validator"
	"emps/inner/web"

	"go.uber.org/zap"
)

// @title Employee Record Service API
// @version 1.0
// @description REST API for employee CRUD operations
// @BasePath /api/v1
func main() {
	cfg := common.GetConfig(".env")
	logger := common.NewLogger(cfg)
	defer func() { _ = logger.Sync() }()

	db, err := database.ConnectDbWithCfg(cfg)
	if err != nil {
		logger.Fatal("Connection error", zap.Error(err))
	}
	defer func() { _ = db.Close() }()

	vld := validator.New()

	// явная сборка зависимостей: репозиторий -> сервис -> контроллер
	server := web.NewServer()
	server.App.Use(web.RequestLogger(logger.Logger))

	employeeRepo := employee.NewRepository(db)
	employeeService := employee.NewService(employeeRepo, cfg.EmpIdPrefix, logger)
	employeeController := employee.NewController(server, employeeService, vld, cfg.EmpIdPrefix, logger)
	employeeController.RegisterRoutes()

	infoController := info.NewController(server, cfg, db, logger)
	infoController.RegisterRoutes()

	// останавливаем сервер по SIGINT/SIGTERM
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		logger.Info("Shutting down server")
		if err := server.App.Shutdown(); err != nil {
			logger.Error("Server shutdown failed", zap.Error(err))
		}
	}()

	logger.Info("Starting server",
		zap.String("app", cfg.AppName),
		zap.String("version", cfg.AppVersion),
		zap.String("addr", cfg.ServerAddr))
	if err := server.App.Listen(cfg.ServerAddr); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}
