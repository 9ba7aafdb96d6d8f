package rest

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rozanhaisyam/wablas-api-bolt/domains/gateway"
	"github.com/rozanhaisyam/wablas-api-bolt/pkg/utils"
	"github.com/rozanhaisyam/wablas-api-bolt/usecase"
)

type SendHandler struct {
	Service *usecase.MessageService
}

func InitRestSend(router fiber.Router, service *usecase.MessageService) SendHandler {
	handler := SendHandler{Service: service}

	router.Post("/send/message", handler.SendMessage)

	return handler
}

// SendMessage submits one outbound message through the gateway.
func (h *SendHandler) SendMessage(c *fiber.Ctx) error {
	var payload gateway.SendMessagePayload
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body: "+err.Error())
	}

	ack, err := h.Service.Send(c.UserContext(), payload)
	if err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return gatewayError(err)
	}

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Message sent",
		Results: ack,
	})
}
