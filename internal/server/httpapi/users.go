package httpapi

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/rwandev/busfleet/internal/common"
)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) register(c fiber.Ctx) error {
	var in registerRequest
	if err := c.Bind().Body(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "email and password are required"})
	}

	ctx, cancel := s.opCtx(c)
	defer cancel()

	if _, err := s.users.Register(ctx, in.Email, in.Password); err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "User already exists"})
		}
		return s.errorJSON(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "User registered successfully"})
}

func (s *Server) login(c fiber.Ctx) error {
	var in loginRequest
	if err := c.Bind().Body(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "email and password are required"})
	}

	ctx, cancel := s.opCtx(c)
	defer cancel()

	token, err := s.users.Login(ctx, in.Email, in.Password)
	if err != nil {
		return s.errorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
	})
}
