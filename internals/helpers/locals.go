// file: internals/helpers/locals.go
package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetUserID membaca user_id (di-set auth middleware) dari Locals.
func GetUserID(c *fiber.Ctx) (uuid.UUID, bool) {
	s, ok := c.Locals("user_id").(string)
	if !ok || s == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// GetSiteID membaca site affiliation caller. ok=false artinya user
// tidak punya site (site-scoped write wajib menolak 403).
func GetSiteID(c *fiber.Ctx) (uuid.UUID, bool) {
	s, ok := c.Locals("site_id").(string)
	if !ok || s == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func GetUserRole(c *fiber.Ctx) string {
	role, _ := c.Locals("userRole").(string)
	return role
}
