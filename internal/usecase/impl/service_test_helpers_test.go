package impl

import (
	"io"
	"log/slog"

	"directory/config"
	"directory/internal/domain/entity"
	"directory/internal/domain/policy"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxActiveSessions int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        12,
			MaxActiveSessions: maxActiveSessions,
		},
		Directory: config.DirectoryConfig{
			DefaultNearbyRadiusKm: 5,
			MaxNearbyRadiusKm:     50,
		},
	}
}

func adminCaller() policy.Caller {
	return policy.Caller{UserID: uuid.New(), Roles: entity.Roles{entity.RoleAdmin}}
}

func ownerCaller(userID uuid.UUID) policy.Caller {
	return policy.Caller{UserID: userID, Roles: entity.Roles{entity.RoleOwner}}
}

func userCaller(userID uuid.UUID) policy.Caller {
	return policy.Caller{UserID: userID, Roles: entity.Roles{entity.RoleUser}}
}

func anonymousCaller() policy.Caller {
	return policy.Caller{}
}
