package server

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

// parseID extracts a route parameter as a positive uint. Callers translate
// a false return into the entity-specific not-found response, matching how
// the API treats malformed ids the same as unknown ones.
func parseID(c *fiber.Ctx, param string) (uint, bool) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

// parseDate accepts RFC 3339 timestamps and bare YYYY-MM-DD dates.
func parseDate(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
