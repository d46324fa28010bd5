package query

import (
	"context"
	"fmt"

	"github.com/ameyali/crib-monitoring/internal/pkg/application/alerts"
	"github.com/ameyali/crib-monitoring/internal/pkg/infrastructure/storage"
	"github.com/ameyali/crib-monitoring/pkg/types"
)

// ErrUnauthorized is returned for callers without any crib grants, so that
// "not allowed" is distinguishable from "no data".
var ErrUnauthorized = fmt.Errorf("caller has no authorized cribs")

const (
	DefaultReadingLimit = 10
	DefaultAlertLimit   = 50
	maxLimit            = 100
)

//go:generate moq -rm -out cribregistry_mock.go . CribRegistry
type CribRegistry interface {
	AuthorizedCribs(ctx context.Context, callerID string) ([]string, error)
}

//go:generate moq -rm -out readingrepository_mock.go . ReadingRepository
type ReadingRepository interface {
	QueryReadings(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.SensorReading], error)
}

//go:generate moq -rm -out queryservice_mock.go . QueryService
type QueryService interface {
	ListReadings(ctx context.Context, callerID string, cribFilter []string, limit int) (types.Collection[types.SensorReading], error)
	ListAlerts(ctx context.Context, callerID string, cribFilter []string, limit int, status types.AlertStatus) (types.Collection[types.Alert], error)
}

type querySvc struct {
	registry CribRegistry
	readings ReadingRepository
	alertSvc alerts.AlertService
}

func New(registry CribRegistry, readings ReadingRepository, alertSvc alerts.AlertService) QueryService {
	return &querySvc{
		registry: registry,
		readings: readings,
		alertSvc: alertSvc,
	}
}

func (svc *querySvc) ListReadings(ctx context.Context, callerID string, cribFilter []string, limit int) (types.Collection[types.SensorReading], error) {
	cribIDs, err := svc.visibleCribs(ctx, callerID, cribFilter)
	if err != nil {
		return types.Collection[types.SensorReading]{}, err
	}
	if len(cribIDs) == 0 {
		return types.Collection[types.SensorReading]{Data: []types.SensorReading{}}, nil
	}

	return svc.readings.QueryReadings(ctx,
		storage.WithCribIDs(cribIDs),
		storage.WithLimit(clampLimit(limit, DefaultReadingLimit)),
	)
}

func (svc *querySvc) ListAlerts(ctx context.Context, callerID string, cribFilter []string, limit int, status types.AlertStatus) (types.Collection[types.Alert], error) {
	cribIDs, err := svc.visibleCribs(ctx, callerID, cribFilter)
	if err != nil {
		return types.Collection[types.Alert]{}, err
	}
	if len(cribIDs) == 0 {
		return types.Collection[types.Alert]{Data: []types.Alert{}}, nil
	}

	return svc.alertSvc.Query(ctx, cribIDs, clampLimit(limit, DefaultAlertLimit), status)
}

// visibleCribs resolves the caller's grants and intersects them with the
// requested filter. The result never widens beyond the granted set; an empty
// intersection is an empty result for the caller, not an error.
func (svc *querySvc) visibleCribs(ctx context.Context, callerID string, cribFilter []string) ([]string, error) {
	granted, err := svc.registry.AuthorizedCribs(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("could not resolve authorized cribs: %w", err)
	}

	if len(granted) == 0 {
		return nil, ErrUnauthorized
	}

	if len(cribFilter) == 0 {
		return granted, nil
	}

	grantedSet := make(map[string]struct{}, len(granted))
	for _, cribID := range granted {
		grantedSet[cribID] = struct{}{}
	}

	visible := make([]string, 0, len(cribFilter))
	for _, cribID := range cribFilter {
		if _, ok := grantedSet[cribID]; ok {
			visible = append(visible, cribID)
		}
	}

	return visible, nil
}

func clampLimit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}
