package rest

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rozanhaisyam/wablas-api-bolt/usecase"
)

type PageHandler struct {
	Service *usecase.AppService
}

func InitRestPage(router fiber.Router, service *usecase.AppService) PageHandler {
	handler := PageHandler{Service: service}

	router.Get("/", handler.Index)

	return handler
}

// Index renders the login view until a credential is held, then the
// dashboard.
func (h *PageHandler) Index(c *fiber.Ctx) error {
	session := h.Service.Session(c.UserContext())
	if !session.Authenticated {
		return c.Render("login", fiber.Map{
			"Regions": h.Service.Regions(),
		})
	}

	return c.Render("dashboard", fiber.Map{
		"Server": session.Server,
	})
}
