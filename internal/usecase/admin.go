package usecase

import (
	"context"
	"fmt"

	"github.com/trippulse/trippulse-api/internal/domain"
)

// API log page size bounds.
const (
	DefaultLogLimit = 50
	MaxLogLimit     = 200
)

// AdminUseCase exposes operational data to administrators.
type AdminUseCase interface {
	// RecentLogs returns the newest API-call log entries. A limit outside
	// 1..200 is clamped, and zero means the default of 50.
	RecentLogs(ctx context.Context, limit int) ([]domain.APILog, error)
}

type adminUseCase struct {
	logs domain.APILogRepository
}

// NewAdminUseCase creates an AdminUseCase.
func NewAdminUseCase(logs domain.APILogRepository) AdminUseCase {
	return &adminUseCase{logs: logs}
}

func (uc *adminUseCase) RecentLogs(ctx context.Context, limit int) ([]domain.APILog, error) {
	logs, err := uc.logs.Recent(ctx, clampLogLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("recent api logs: %w", err)
	}
	return logs, nil
}

func clampLogLimit(limit int) int {
	switch {
	case limit == 0:
		return DefaultLogLimit
	case limit < 1:
		return 1
	case limit > MaxLogLimit:
		return MaxLogLimit
	default:
		return limit
	}
}

var _ AdminUseCase = (*adminUseCase)(nil)
