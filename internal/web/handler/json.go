package handler

import "github.com/gofiber/fiber/v2"

// JSONError writes the API error envelope with the given status code.
func JSONError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}
