// pkg/utils/uuid.go
package utils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ParseUUID แปลง string เป็น uuid.UUID
func ParseUUID(value string) (uuid.UUID, error) {
	return uuid.Parse(value)
}

// ParseUUIDParam อ่าน path parameter แล้วแปลงเป็น uuid.UUID
func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(name))
}
