// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"strconv"

	"directory/internal/delivery/http/middleware"
	"directory/internal/delivery/http/response"
	"directory/internal/domain/policy"

	"github.com/labstack/echo/v4"
)

// Paging defaults for list endpoints.
const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100
)

// callerFromContext reads the authenticated caller set by the auth
// middleware. Routes without the middleware yield an anonymous caller.
func callerFromContext(c echo.Context) policy.Caller {
	caller, ok := c.Get(middleware.CallerContextKey).(policy.Caller)
	if !ok {
		return policy.Caller{}
	}

	return caller
}

// pageParams parses ?page and ?limit with defaults and an upper bound.
func pageParams(c echo.Context) (int, int) {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		page = defaultPage
	}

	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return page, limit
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
