package httpapi

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/rwandev/busfleet/internal/common"
	"github.com/rwandev/busfleet/internal/server/models"
)

type deviceRequest struct {
	SerialNumber string `json:"serialNumber"`
	SimNumber    string `json:"simNumber"`
	DeviceModel  string `json:"deviceModel"`
}

// gpsDataRequest uses pointers for the numeric fields so that a missing
// field is distinguishable from a legitimate zero (the equator is a valid
// latitude).
type gpsDataRequest struct {
	DeviceID  string    `json:"deviceId"`
	Latitude  *float64  `json:"latitude"`
	Longitude *float64  `json:"longitude"`
	Speed     *float64  `json:"speed"`
	Timestamp time.Time `json:"timestamp"`
}

func (s *Server) registerDevice(c fiber.Ctx) error {
	var in deviceRequest
	if err := c.Bind().Body(&in); err != nil {
		return badRequest(c, "invalid request body")
	}
	if in.SerialNumber == "" || in.SimNumber == "" || in.DeviceModel == "" {
		return badRequest(c, "serialNumber, simNumber and deviceModel are required")
	}

	userID, _ := c.Locals(localsUserID).(string)

	ctx, cancel := s.opCtx(c)
	defer cancel()

	created, key, err := s.devices.Register(ctx, &models.Device{
		SerialNumber: in.SerialNumber,
		SimNumber:    in.SimNumber,
		DeviceModel:  in.DeviceModel,
		AddedBy:      userID,
	})
	if err != nil {
		return s.errorJSON(c, err)
	}

	// the plaintext key appears in this response only
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"device": created,
		"apiKey": key,
	})
}

func (s *Server) listDevices(c fiber.Ctx) error {
	ctx, cancel := s.opCtx(c)
	defer cancel()

	list, err := s.devices.List(ctx)
	if err != nil {
		return s.errorJSON(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(list)
}

func (s *Server) recordPosition(c fiber.Ctx) error {
	var in gpsDataRequest
	if err := c.Bind().Body(&in); err != nil {
		return badRequest(c, "invalid request body")
	}
	if in.DeviceID == "" || in.Latitude == nil || in.Longitude == nil || in.Speed == nil {
		return badRequest(c, "deviceId, latitude, longitude and speed are required")
	}

	device, ok := c.Locals(localsDevice).(*models.Device)
	if !ok {
		return s.errorJSON(c, common.ErrUnauthenticated)
	}
	if in.DeviceID != device.ID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Device mismatch"})
	}

	ctx, cancel := s.opCtx(c)
	defer cancel()

	updated, err := s.devices.RecordPosition(ctx, device.ID, models.Position{
		Latitude:   *in.Latitude,
		Longitude:  *in.Longitude,
		Speed:      *in.Speed,
		RecordedAt: in.Timestamp,
	})
	if err != nil {
		return s.errorJSON(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(updated)
}
