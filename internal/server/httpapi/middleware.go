package httpapi

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/rwandev/busfleet/internal/common"
)

const (
	localsUserID = "userID"
	localsDevice = "device"

	headerAPIKey = "X-Api-Key"
)

// requireAuth validates the bearer token and stores the resolved user id in
// the request locals. A missing header is 401; a token that fails validation
// is 403. Both go through the shared sentinel mapping.
func (s *Server) requireAuth(c fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return s.errorJSON(c, common.ErrUnauthenticated)
	}
	token := strings.TrimPrefix(header, "Bearer ")

	userID, err := s.users.Authenticate(c.Context(), token)
	if err != nil {
		return s.errorJSON(c, err)
	}

	c.Locals(localsUserID, userID)
	return c.Next()
}

// requireDeviceKey authenticates the ingestion API key from the X-Api-Key
// header and stores the matching device in the request locals.
func (s *Server) requireDeviceKey(c fiber.Ctx) error {
	key := c.Get(headerAPIKey)
	if key == "" {
		return s.errorJSON(c, common.ErrUnauthenticated)
	}

	ctx, cancel := s.opCtx(c)
	defer cancel()

	device, err := s.devices.Authenticate(ctx, key)
	if err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Invalid API key"})
	}

	c.Locals(localsDevice, device)
	return c.Next()
}
