package handler

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const dateLayout = "2006-01-02"

// uuidParam parses the named path parameter.
func uuidParam(c echo.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}

// parseDate accepts a calendar date or a full RFC 3339 timestamp.
func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, errors.Errorf("%q is neither a date (YYYY-MM-DD) nor an RFC 3339 timestamp", value)
	}

	return t.UTC(), nil
}

// parseOptionalUUID parses a possibly empty identifier already validated by the request tags.
func parseOptionalUUID(value string) *uuid.UUID {
	if value == "" {
		return nil
	}

	id := uuid.MustParse(value)

	return &id
}
