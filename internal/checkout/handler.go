package checkout

import (
	"github.com/gofiber/fiber/v2"

	"github.com/shoplite/shop-backend/internal/address"
	"github.com/shoplite/shop-backend/internal/user"
)

// Handler exposes the single checkout endpoint. Responses follow the
// {success, data|message} envelope the mobile client consumes.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/checkout", h.submit)
}

func (h *Handler) submit(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "unauthorized"})
	}

	payload := new(Request)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	result, err := h.service.Submit(userID, *payload)
	if err != nil {
		switch err {
		case ErrEmptyCart, ErrIncompleteAddress, ErrInvalidPayment:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
		case address.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "address not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": err.Error()})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": result.Order})
}
