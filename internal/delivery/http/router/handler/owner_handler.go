package handler

import (
	"log/slog"
	"net/http"

	"directory/internal/delivery/http/response"
	"directory/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OwnerHandler holds dependencies for the owner dashboard: review responses
// and aggregate statistics.
type OwnerHandler struct {
	reviewUC usecase.ReviewUsecase
	statsUC  usecase.StatsUsecase
	logger   *slog.Logger
}

// NewOwnerHandler is the constructor for OwnerHandler, injected by Fx.
func NewOwnerHandler(reviewUC usecase.ReviewUsecase, statsUC usecase.StatsUsecase, logger *slog.Logger) *OwnerHandler {
	return &OwnerHandler{reviewUC: reviewUC, statsUC: statsUC, logger: logger}
}

// responseRequest carries the owner response text.
type responseRequest struct {
	Response string
}

// Respond handles filling a review's empty owner response slot.
func (h *OwnerHandler) Respond(c echo.Context) error {
	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid review ID")
	}

	var input responseRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid response input")
	}

	review, err := h.reviewUC.Respond(c.Request().Context(), callerFromContext(c), reviewID, input.Response)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, review, "Response created successfully")
}

// UpdateResponse handles overwriting an existing owner response.
func (h *OwnerHandler) UpdateResponse(c echo.Context) error {
	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid review ID")
	}

	var input responseRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid response input")
	}

	review, err := h.reviewUC.UpdateResponse(c.Request().Context(), callerFromContext(c), reviewID, input.Response)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, review, "Response updated successfully")
}

// DeleteResponse handles clearing the owner response slot.
func (h *OwnerHandler) DeleteResponse(c echo.Context) error {
	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid review ID")
	}

	review, err := h.reviewUC.DeleteResponse(c.Request().Context(), callerFromContext(c), reviewID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, review, "Response deleted successfully")
}

// Stats handles the owner dashboard statistics request.
func (h *OwnerHandler) Stats(c echo.Context) error {
	stats, err := h.statsUC.OwnerStats(c.Request().Context(), callerFromContext(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "Statistics retrieved successfully")
}
