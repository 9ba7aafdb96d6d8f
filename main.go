package main

import (
	"errors"
	"net/http"
	"os"
	"os/signal"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/sirupsen/logrus"

	"github.com/rozanhaisyam/wablas-api-bolt/config"
	"github.com/rozanhaisyam/wablas-api-bolt/infrastructure/notify"
	"github.com/rozanhaisyam/wablas-api-bolt/infrastructure/qrlink"
	"github.com/rozanhaisyam/wablas-api-bolt/infrastructure/wablas"
	"github.com/rozanhaisyam/wablas-api-bolt/pkg/utils"
	"github.com/rozanhaisyam/wablas-api-bolt/ui/rest"
	"github.com/rozanhaisyam/wablas-api-bolt/usecase"
	"github.com/rozanhaisyam/wablas-api-bolt/views"
)

func main() {
	// Load configuration
	cfg := config.LoadConfig()

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	// Wire the gateway store, client and workflows
	store := config.NewGatewayStore()
	center := notify.NewCenter()
	client := wablas.NewClient(store)
	linker := qrlink.NewLinker(client, store, center, cfg.PollInterval, cfg.LinkTimeout)

	appService := usecase.NewAppService(store, linker)
	messageService := usecase.NewMessageService(client, center)
	deviceService := usecase.NewDeviceService(client)
	linkService := usecase.NewLinkService(linker)

	engine := html.NewFileSystem(http.FS(views.FS), ".html")

	app := fiber.New(fiber.Config{
		Views:        engine,
		ErrorHandler: errorHandler,
	})
	app.Use(recover.New())
	app.Use(logger.New())

	rest.InitRestPage(app, appService)
	rest.InitRestApp(app, appService, center)

	// gateway-backed endpoints need a credential
	app.Use("/device", rest.RequireAuth(store))
	app.Use("/send", rest.RequireAuth(store))
	rest.InitRestDevice(app, deviceService, linkService)
	rest.InitRestSend(app, messageService)

	go func() {
		if err := app.Listen(cfg.ListenAddr); err != nil {
			logrus.Fatalf("❌ Failed to start server: %v", err)
		}
	}()
	logrus.Infof("🚀 Wablas dashboard listening on %s", cfg.ListenAddr)

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)
	<-sigChan

	logrus.Info("Shutting down...")
	linker.Reset()
	if err := app.Shutdown(); err != nil {
		logrus.Errorf("❌ Shutdown failed: %v", err)
	}
}

// errorHandler renders every handler error through the standard envelope.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}
	return c.Status(code).JSON(utils.ResponseData{
		Status:  code,
		Code:    "ERROR",
		Message: err.Error(),
	})
}
