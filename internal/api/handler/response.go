package handler

import "github.com/gofiber/fiber/v2"

// ok wraps a payload in the shared response envelope.
func ok(c *fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

// okList adds the collection total so clients can render counters without
// walking the payload.
func okList(c *fiber.Ctx, data any, total int) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
		"total":   total,
	})
}

// created responds 201 with an optional human-readable message.
func created(c *fiber.Ctx, data any, message string) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    data,
		"message": message,
	})
}

func okMessage(c *fiber.Ctx, message string) error {
	return c.JSON(fiber.Map{
		"success": true,
		"message": message,
	})
}
