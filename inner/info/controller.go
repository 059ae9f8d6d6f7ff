package info

import (
	"emps/inner/common"
	"emps/inner/web"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type Controller struct {
	server *web.Server
	cfg    common.Config
	db     *sqlx.DB
	logger *common.Logger
}

func NewController(server *web.Server, cfg common.Config, db *sqlx.DB, logger *common.Logger) *Controller {
	return &Controller{
		server: server,
		cfg:    cfg,
		db:     db,
		logger: logger,
	}
}

type InfoResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

func (c *Controller) RegisterRoutes() {
	// полный путь будет "/internal/info"
	c.server.GroupInternal.Get("/info", c.GetInfo)
	// полный путь будет "/internal/health"
	c.server.GroupInternal.Get("/health", c.GetHealth)
}

// GetInfo получение информации о приложении
func (c *Controller) GetInfo(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(&InfoResponse{
		Name:    c.cfg.AppName,
		Version: c.cfg.AppVersion,
	})
}

// GetHealth проверка работоспособности приложения и подключения к базе
func (c *Controller) GetHealth(ctx *fiber.Ctx) error {
	health := HealthResponse{
		Status:   "OK",
		Database: "OK",
	}

	if c.db == nil {
		health.Status = "ERROR"
		health.Database = "NOT_CONNECTED"
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(&health)
	}

	if err := c.db.Ping(); err != nil {
		c.logger.ErrorCtx(ctx, "Database ping failed", zap.Error(err))
		health.Status = "ERROR"
		health.Database = "ERROR"
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(&health)
	}

	return ctx.Status(fiber.StatusOK).JSON(&health)
}
