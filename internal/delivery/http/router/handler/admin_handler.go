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
	"go.uber.org/fx"
)

// AdminHandler holds dependencies for the moderation console: the business
// queue, review moderation, user bans and platform statistics.
type AdminHandler struct {
	businessUC usecase.BusinessUsecase
	reviewUC   usecase.ReviewUsecase
	userUC     usecase.UserUsecase
	statsUC    usecase.StatsUsecase
	logger     *slog.Logger
}

// AdminHandlerParams groups the usecases the moderation console needs.
type AdminHandlerParams struct {
	fx.In

	BusinessUC usecase.BusinessUsecase
	ReviewUC   usecase.ReviewUsecase
	UserUC     usecase.UserUsecase
	StatsUC    usecase.StatsUsecase
	Logger     *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		businessUC: params.BusinessUC,
		reviewUC:   params.ReviewUC,
		userUC:     params.UserUC,
		statsUC:    params.StatsUC,
		logger:     params.Logger,
	}
}

// ListPending handles the moderation queue listing.
func (h *AdminHandler) ListPending(c echo.Context) error {
	page, limit := pageParams(c)

	result, err := h.businessUC.ListPending(c.Request().Context(), callerFromContext(c), page, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Pending businesses retrieved successfully")
}

// Approve handles the approve decision on a pending business.
func (h *AdminHandler) Approve(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid business ID")
	}

	business, err := h.businessUC.Approve(c.Request().Context(), callerFromContext(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, business, "Business approved successfully")
}

// rejectRequest carries the mandatory rejection reason.
type rejectRequest struct {
	Reason string
}

// Reject handles the reject decision on a pending business.
func (h *AdminHandler) Reject(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid business ID")
	}

	var input rejectRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rejection input")
	}

	business, err := h.businessUC.Reject(c.Request().Context(), callerFromContext(c), id, input.Reason)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, business, "Business rejected successfully")
}

// Deactivate handles taking an approved business off the public directory.
func (h *AdminHandler) Deactivate(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid business ID")
	}

	business, err := h.businessUC.Deactivate(c.Request().Context(), callerFromContext(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, business, "Business deactivated successfully")
}

// ListReviews handles the platform-wide review moderation listing.
func (h *AdminHandler) ListReviews(c echo.Context) error {
	page, limit := pageParams(c)

	result, err := h.reviewUC.ListAll(c.Request().Context(), callerFromContext(c), page, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Reviews retrieved successfully")
}

// DeleteReview handles removing a review through moderation.
func (h *AdminHandler) DeleteReview(c echo.Context) error {
	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid review ID")
	}

	if err := h.reviewUC.Delete(c.Request().Context(), callerFromContext(c), reviewID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Review deleted successfully")
}

// ListUsers handles the account moderation listing.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	page, limit := pageParams(c)

	result, err := h.userUC.ListUsers(c.Request().Context(), callerFromContext(c), page, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Users retrieved successfully")
}

// SetUserBanned handles toggling the banned flag on an account. The target
// state comes from the 'banned' query parameter, defaulting to true.
func (h *AdminHandler) SetUserBanned(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	banned := true
	if raw := c.QueryParam("banned"); raw != "" {
		if banned, err = strconv.ParseBool(raw); err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Query parameter 'banned' must be a boolean")
		}
	}

	if err := h.userUC.SetUserBanned(c.Request().Context(), callerFromContext(c), userID, banned); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "User ban state updated successfully")
}

// Stats handles the platform statistics request.
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.statsUC.AdminStats(c.Request().Context(), callerFromContext(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "Statistics retrieved successfully")
}
