package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"directory/internal/delivery/http/response"
	"directory/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BusinessHandler holds dependencies for business listing handlers.
type BusinessHandler struct {
	uc     usecase.BusinessUsecase
	logger *slog.Logger
}

// NewBusinessHandler is the constructor for BusinessHandler, injected by Fx.
func NewBusinessHandler(uc usecase.BusinessUsecase, logger *slog.Logger) *BusinessHandler {
	return &BusinessHandler{uc: uc, logger: logger}
}

// List handles the public directory listing with filters and paging.
func (h *BusinessHandler) List(c echo.Context) error {
	page, limit := pageParams(c)

	input := &usecase.ListBusinessesInput{
		CategorySlug: c.QueryParam("category"),
		City:         c.QueryParam("city"),
		Query:        c.QueryParam("q"),
		Status:       c.QueryParam("status"),
		Sort:         c.QueryParam("sort"),
		Page:         page,
		Limit:        limit,
	}
	if featured := c.QueryParam("featured"); featured != "" {
		value := featured == "true"
		input.Featured = &value
	}

	result, err := h.uc.List(c.Request().Context(), callerFromContext(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Businesses retrieved successfully")
}

// ListNearby handles the geo search around a coordinate.
func (h *BusinessHandler) ListNearby(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Query parameter 'lat' must be a number")
	}
	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Query parameter 'lng' must be a number")
	}

	input := &usecase.NearbyBusinessesInput{Latitude: lat, Longitude: lng}
	if radius := c.QueryParam("radius"); radius != "" {
		if input.RadiusKm, err = strconv.ParseFloat(radius, 64); err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Query parameter 'radius' must be a number")
		}
	}
	if limit := c.QueryParam("limit"); limit != "" {
		if input.Limit, err = strconv.Atoi(limit); err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Query parameter 'limit' must be a number")
		}
	}

	result, err := h.uc.ListNearby(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Nearby businesses retrieved successfully")
}

// GetByID handles retrieving one business by ID.
func (h *BusinessHandler) GetByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid business ID")
	}

	business, err := h.uc.GetByID(c.Request().Context(), callerFromContext(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, business, "Business retrieved successfully")
}

// GetBySlug handles retrieving one business by its public slug.
func (h *BusinessHandler) GetBySlug(c echo.Context) error {
	business, err := h.uc.GetBySlug(c.Request().Context(), callerFromContext(c), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, business, "Business retrieved successfully")
}

// Create handles submitting a new listing for moderation.
func (h *BusinessHandler) Create(c echo.Context) error {
	var input *usecase.CreateBusinessInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid business input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	business, err := h.uc.Create(c.Request().Context(), callerFromContext(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, business, "Business submitted for review")
}

// Update handles patching a listing's content fields.
func (h *BusinessHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid business ID")
	}

	var input *usecase.UpdateBusinessInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid business input")
	}

	business, err := h.uc.Update(c.Request().Context(), callerFromContext(c), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, business, "Business updated successfully")
}

// Delete handles removing a listing.
func (h *BusinessHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid business ID")
	}

	if err := h.uc.Delete(c.Request().Context(), callerFromContext(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Business deleted successfully")
}

// ListOwned handles listing the caller's own businesses in any status.
func (h *BusinessHandler) ListOwned(c echo.Context) error {
	page, limit := pageParams(c)

	result, err := h.uc.ListOwned(c.Request().Context(), callerFromContext(c), page, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Businesses retrieved successfully")
}

// QRCode renders the PNG QR code linking to a listing's public page.
func (h *BusinessHandler) QRCode(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid business ID")
	}

	png, err := h.uc.QRCode(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
