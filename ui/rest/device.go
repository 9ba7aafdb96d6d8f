package rest

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rozanhaisyam/wablas-api-bolt/domains/link"
	"github.com/rozanhaisyam/wablas-api-bolt/infrastructure/wablas"
	"github.com/rozanhaisyam/wablas-api-bolt/pkg/utils"
	"github.com/rozanhaisyam/wablas-api-bolt/usecase"
)

type DeviceHandler struct {
	Device *usecase.DeviceService
	Link   *usecase.LinkService
}

func InitRestDevice(router fiber.Router, device *usecase.DeviceService, linkService *usecase.LinkService) DeviceHandler {
	handler := DeviceHandler{Device: device, Link: linkService}

	router.Get("/device/info", handler.GetDeviceInfo)
	router.Post("/device/link", handler.GenerateQR)
	router.Get("/device/link", handler.GetLinkState)
	router.Get("/device/link/qr-image", handler.GetScanURLImage)

	return handler
}

// GetDeviceInfo proxies the device connection snapshot.
func (h *DeviceHandler) GetDeviceInfo(c *fiber.Ctx) error {
	info, err := h.Device.Info(c.UserContext())
	if err != nil {
		return gatewayError(err)
	}

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Device info retrieved",
		Results: info,
	})
}

// GenerateQR starts a new linking attempt. A second trigger while one is
// generating or pending is rejected, never forwarded to the gateway.
func (h *DeviceHandler) GenerateQR(c *fiber.Ctx) error {
	snap, err := h.Link.Generate(c.UserContext())
	if err != nil {
		if errors.Is(err, link.ErrLinkInProgress) {
			return fiber.NewError(fiber.StatusConflict, err.Error())
		}
		return gatewayError(err)
	}

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "QR code generated",
		Results: snap,
	})
}

// GetLinkState returns the current workflow snapshot; the browser polls it.
func (h *DeviceHandler) GetLinkState(c *fiber.Ctx) error {
	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Link state retrieved",
		Results: h.Link.Snapshot(),
	})
}

// GetScanURLImage returns the manual link URL rendered as a QR PNG.
func (h *DeviceHandler) GetScanURLImage(c *fiber.Ctx) error {
	png, err := h.Link.ScanURLImage(256)
	if err != nil {
		if errors.Is(err, link.ErrNoActiveLink) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	c.Type("png")
	return c.Send(png)
}

// gatewayError maps client failures onto HTTP statuses: upstream rejections
// become 502, everything else 500.
func gatewayError(err error) error {
	var apiErr *wablas.APIError
	if errors.As(err, &apiErr) {
		return fiber.NewError(fiber.StatusBadGateway, err.Error())
	}
	return fiber.NewError(fiber.StatusInternalServerError, err.Error())
}
