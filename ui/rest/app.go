package rest

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rozanhaisyam/wablas-api-bolt/domains/app"
	"github.com/rozanhaisyam/wablas-api-bolt/domains/notification"
	"github.com/rozanhaisyam/wablas-api-bolt/pkg/utils"
	"github.com/rozanhaisyam/wablas-api-bolt/usecase"
)

type AppHandler struct {
	Service *usecase.AppService
	Notify  notification.INotificationCenter
}

func InitRestApp(router fiber.Router, service *usecase.AppService, notify notification.INotificationCenter) AppHandler {
	handler := AppHandler{Service: service, Notify: notify}

	router.Post("/app/login", handler.Login)
	router.Post("/app/logout", handler.Logout)
	router.Get("/app/session", handler.Session)
	router.Get("/app/notifications", handler.Notifications)

	return handler
}

// Login configures the gateway and authenticates in one step, so the first
// dashboard request already carries the new credential.
func (h *AppHandler) Login(c *fiber.Ctx) error {
	var req app.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body: "+err.Error())
	}

	if err := h.Service.Login(c.UserContext(), req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Logged in",
		Results: h.Service.Session(c.UserContext()),
	})
}

// Logout clears the credential and discards any linking attempt.
func (h *AppHandler) Logout(c *fiber.Ctx) error {
	if err := h.Service.Logout(c.UserContext()); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Logged out",
	})
}

// Session reports the authentication state.
func (h *AppHandler) Session(c *fiber.Ctx) error {
	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Session retrieved",
		Results: h.Service.Session(c.UserContext()),
	})
}

// Notifications drains pending one-shot toasts for the UI.
func (h *AppHandler) Notifications(c *fiber.Ctx) error {
	drained := h.Notify.Drain()
	if drained == nil {
		drained = []notification.Notification{}
	}

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Notifications drained",
		Results: drained,
	})
}
