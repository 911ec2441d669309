package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// The admin frontend consumes a flat contract: errors are always
// {"error": message}, successes carry a "message" key plus the entity.

func JsonError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func JsonMessage(c *fiber.Ctx, message string) error {
	return c.JSON(fiber.Map{"message": message})
}

// JsonInvalid maps a validator.v10 failure to a 400 with the endpoint's
// documented message; non-validator errors get a generic body.
func JsonInvalid(c *fiber.Ctx, err error, message string) error {
	if _, ok := err.(validator.ValidationErrors); ok {
		return JsonError(c, fiber.StatusBadRequest, message)
	}
	return JsonError(c, fiber.StatusBadRequest, "Invalid request body")
}
