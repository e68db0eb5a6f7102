package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"chorechart/internal/core/domain"
)

// tzCookieName holds the viewer's IANA timezone, set by the frontend so
// "today" matches the clock on the wall rather than the server's.
const tzCookieName = "tz"

func resolveLocation(c *gin.Context, fallback *time.Location) *time.Location {
	name, err := c.Cookie(tzCookieName)
	if err != nil || name == "" {
		return fallback
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return fallback
	}
	return loc
}

// resolveDate reads the named query parameter as a calendar date. A missing
// or malformed value falls back to today in the viewer's timezone, never an
// error, so a stale bookmark still renders something sensible.
func resolveDate(c *gin.Context, param string, loc *time.Location) time.Time {
	raw := c.Query(param)
	if raw == "" {
		return domain.Today(loc)
	}

	d, err := domain.ParseDate(raw)
	if err != nil {
		return domain.Today(loc)
	}
	return d
}
