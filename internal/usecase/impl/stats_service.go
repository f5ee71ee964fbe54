package impl

import (
	"context"
	"log/slog"

	domainerrors "directory/internal/domain/errors"
	"directory/internal/domain/policy"
	"directory/internal/domain/repository"
	"directory/internal/usecase"
	"directory/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type statsService struct {
	businessRepo repository.BusinessRepository
	reviewRepo   repository.ReviewRepository
	userRepo     repository.UserRepository
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// StatsServiceParams holds dependencies for StatsService, injected by Fx.
type StatsServiceParams struct {
	fx.In

	BusinessRepo repository.BusinessRepository
	ReviewRepo   repository.ReviewRepository
	UserRepo     repository.UserRepository
	CategoryRepo repository.CategoryRepository
	Logger       *slog.Logger
}

// NewStatsService is the constructor for statsService.
func NewStatsService(params StatsServiceParams) usecase.StatsUsecase {
	return &statsService{
		businessRepo: params.BusinessRepo,
		reviewRepo:   params.ReviewRepo,
		userRepo:     params.UserRepo,
		categoryRepo: params.CategoryRepo,
		logger:       params.Logger,
	}
}

// OwnerStats aggregates figures across the caller's own businesses.
func (srv *statsService) OwnerStats(ctx context.Context, caller policy.Caller) (*usecase.OwnerStatsOutput, error) {
	if !policy.CanViewOwnerStats(caller) {
		return nil, domainerrors.ErrForbidden.WrapMessage("caller cannot view owner statistics")
	}

	statusCounts, err := srv.businessRepo.CountByStatus(ctx, caller.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count businesses by status")
	}

	reviewStats, err := srv.reviewRepo.OwnerStats(ctx, caller.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate review statistics")
	}

	return &usecase.OwnerStatsOutput{
		Businesses:       statusCountsToMap(statusCounts),
		TotalReviews:     reviewStats.TotalReviews,
		AverageRating:    util.RoundRating(reviewStats.AverageRating),
		AwaitingResponse: reviewStats.AwaitingResponse,
	}, nil
}

// AdminStats aggregates platform-wide figures.
func (srv *statsService) AdminStats(ctx context.Context, caller policy.Caller) (*usecase.AdminStatsOutput, error) {
	if !policy.CanViewAdminStats(caller) {
		return nil, domainerrors.ErrForbidden.WrapMessage("caller cannot view platform statistics")
	}

	statusCounts, err := srv.businessRepo.CountByStatus(ctx, uuid.Nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count businesses by status")
	}

	users, err := srv.userRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}

	reviews, err := srv.reviewRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count reviews")
	}

	categories, err := srv.categoryRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count categories")
	}

	return &usecase.AdminStatsOutput{
		Businesses: statusCountsToMap(statusCounts),
		Users:      users,
		Reviews:    reviews,
		Categories: categories,
	}, nil
}

func statusCountsToMap(counts repository.StatusCounts) map[string]int64 {
	out := make(map[string]int64, len(counts))
	for status, n := range counts {
		out[status.String()] = n
	}

	return out
}
