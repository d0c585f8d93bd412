package httpapi

import (
	"github.com/gofiber/fiber/v3"
	"github.com/rwandev/busfleet/internal/server/models"
)

type schoolRequest struct {
	Name         string `json:"name"`
	Address      string `json:"address"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
}

type destinationRequest struct {
	Name string `json:"destinationName"`
}

type busRequest struct {
	PlateNumber   string `json:"plateNumber"`
	GpsModel      string `json:"gpsModel"`
	OwnerName     string `json:"ownerName"`
	SchoolID      string `json:"schoolId"`
	DestinationID string `json:"destinationId"`
}

type childRequest struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	ParentName    string `json:"parentName"`
	ParentPhone   string `json:"parentPhone"`
	SchoolID      string `json:"schoolId"`
	DestinationID string `json:"destinationId"`
}

type driverRequest struct {
	FullName      string  `json:"fullName"`
	Phone         string  `json:"phone"`
	LicenseNumber string  `json:"licenseNumber"`
	BusID         *string `json:"busId"`
}

func badRequest(c fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

func (s *Server) createSchool(c fiber.Ctx) error {
	var in schoolRequest
	if err := c.Bind().Body(&in); err != nil {
		return badRequest(c, "invalid request body")
	}
	if in.Name == "" || in.Address == "" || in.ContactEmail == "" {
		return badRequest(c, "name, address and contactEmail are required")
	}

	ctx, cancel := s.opCtx(c)
	defer cancel()

	created, err := s.fleet.CreateSchool(ctx, &models.School{
		Name:         in.Name,
		Address:      in.Address,
		ContactEmail: in.ContactEmail,
		ContactPhone: in.ContactPhone,
	})
	if err != nil {
		return s.errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (s *Server) listSchools(c fiber.Ctx) error {
	ctx, cancel := s.opCtx(c)
	defer cancel()

	list, err := s.fleet.ListSchools(ctx)
	if err != nil {
		return s.errorJSON(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(list)
}

func (s *Server) countSchools(c fiber.Ctx) error {
	ctx, cancel := s.opCtx(c)
	defer cancel()

	n, err := s.fleet.CountSchools(ctx)
	if err != nil {
		return s.errorJSON(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"count": n})
}

func (s *Server) createDestination(c fiber.Ctx) error {
	var in destinationRequest
	if err := c.Bind().Body(&in); err != nil {
		return badRequest(c, "invalid request body")
	}
	if in.Name == "" {
		return badRequest(c, "destinationName is required")
	}

	ctx, cancel := s.opCtx(c)
	defer cancel()

	created, err := s.fleet.CreateDestination(ctx, &models.Destination{Name: in.Name})
	if err != nil {
		return s.errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (s *Server) listDestinations(c fiber.Ctx) error {
	ctx, cancel := s.opCtx(c)
	defer cancel()

	list, err := s.fleet.ListDestinations(ctx)
	if err != nil {
		return s.errorJSON(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(list)
}

func (s *Server) createBus(c fiber.Ctx) error {
	var in busRequest
	if err := c.Bind().Body(&in); err != nil {
		return badRequest(c, "invalid request body")
	}
	if in.PlateNumber == "" || in.GpsModel == "" || in.OwnerName == "" ||
		in.SchoolID == "" || in.DestinationID == "" {
		return badRequest(c, "plateNumber, gpsModel, ownerName, schoolId and destinationId are required")
	}

	ctx, cancel := s.opCtx(c)
	defer cancel()

	created, err := s.fleet.CreateBus(ctx, &models.Bus{
		PlateNumber:   in.PlateNumber,
		GpsModel:      in.GpsModel,
		OwnerName:     in.OwnerName,
		SchoolID:      in.SchoolID,
		DestinationID: in.DestinationID,
	})
	if err != nil {
		return s.errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (s *Server) listBuses(c fiber.Ctx) error {
	ctx, cancel := s.opCtx(c)
	defer cancel()

	list, err := s.fleet.ListBuses(ctx)
	if err != nil {
		return s.errorJSON(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(list)
}

func (s *Server) countBuses(c fiber.Ctx) error {
	ctx, cancel := s.opCtx(c)
	defer cancel()

	n, err := s.fleet.CountBuses(ctx)
	if err != nil {
		return s.errorJSON(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"count": n})
}

func (s *Server) createChild(c fiber.Ctx) error {
	var in childRequest
	if err := c.Bind().Body(&in); err != nil {
		return badRequest(c, "invalid request body")
	}
	if in.FirstName == "" || in.LastName == "" || in.ParentName == "" ||
		in.ParentPhone == "" || in.SchoolID == "" || in.DestinationID == "" {
		return badRequest(c, "firstName, lastName, parentName, parentPhone, schoolId and destinationId are required")
	}

	ctx, cancel := s.opCtx(c)
	defer cancel()

	created, err := s.fleet.CreateChild(ctx, &models.Child{
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		ParentName:    in.ParentName,
		ParentPhone:   in.ParentPhone,
		SchoolID:      in.SchoolID,
		DestinationID: in.DestinationID,
	})
	if err != nil {
		return s.errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (s *Server) countChildren(c fiber.Ctx) error {
	ctx, cancel := s.opCtx(c)
	defer cancel()

	n, err := s.fleet.CountChildren(ctx)
	if err != nil {
		return s.errorJSON(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"count": n})
}

func (s *Server) createDriver(c fiber.Ctx) error {
	var in driverRequest
	if err := c.Bind().Body(&in); err != nil {
		return badRequest(c, "invalid request body")
	}
	if in.FullName == "" || in.Phone == "" || in.LicenseNumber == "" {
		return badRequest(c, "fullName, phone and licenseNumber are required")
	}

	ctx, cancel := s.opCtx(c)
	defer cancel()

	created, err := s.fleet.CreateDriver(ctx, &models.Driver{
		FullName:      in.FullName,
		Phone:         in.Phone,
		LicenseNumber: in.LicenseNumber,
		BusID:         in.BusID,
	})
	if err != nil {
		return s.errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (s *Server) listDrivers(c fiber.Ctx) error {
	ctx, cancel := s.opCtx(c)
	defer cancel()

	list, err := s.fleet.ListDrivers(ctx)
	if err != nil {
		return s.errorJSON(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(list)
}
