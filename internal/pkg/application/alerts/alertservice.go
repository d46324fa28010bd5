package alerts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ameyali/crib-monitoring/internal/pkg/infrastructure/storage"
	"github.com/ameyali/crib-monitoring/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/google/uuid"
)

var ErrAlertNotFound = fmt.Errorf("alert not found")
var ErrAlreadyResolved = fmt.Errorf("alert already resolved")

// FallbackResolverName is recorded when the caregiver directory cannot be
// reached. Recording the resolution with an imprecise attribution is
// preferred over blocking the clinical action.
const FallbackResolverName = "personal de guardia"

const directoryLookupTimeout = 2 * time.Second

//go:generate moq -rm -out alertservice_mock.go . AlertService
type AlertService interface {
	Add(ctx context.Context, alert types.Alert) error
	Query(ctx context.Context, cribIDs []string, limit int, status types.AlertStatus) (types.Collection[types.Alert], error)
	Resolve(ctx context.Context, alertID, callerID, note string) error
}

//go:generate moq -rm -out alertrepository_mock.go . AlertRepository
type AlertRepository interface {
	AddAlert(ctx context.Context, alert types.Alert) error
	QueryAlerts(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Alert], error)
	ResolveAlert(ctx context.Context, alertID, resolvedBy, note string) error
}

//go:generate moq -rm -out caregiverdirectory_mock.go . CaregiverDirectory
type CaregiverDirectory interface {
	DisplayName(ctx context.Context, callerID string) (string, error)
}

type alertSvc struct {
	storage   AlertRepository
	messenger messaging.MsgContext
	directory CaregiverDirectory
}

func New(s AlertRepository, m messaging.MsgContext, d CaregiverDirectory) AlertService {
	return &alertSvc{
		storage:   s,
		messenger: m,
		directory: d,
	}
}

func (svc *alertSvc) Add(ctx context.Context, alert types.Alert) error {
	if alert.CribID == "" {
		return fmt.Errorf("no crib id is set on alert")
	}
	if alert.ID == "" {
		alert.ID = uuid.NewString()
	}
	if alert.CreatedAt.IsZero() {
		alert.CreatedAt = time.Now().UTC()
	}
	alert.Status = types.AlertPending

	err := svc.storage.AddAlert(ctx, alert)
	if err != nil {
		return err
	}

	return svc.messenger.PublishOnTopic(ctx, &AlertCreated{
		Alert:     alert,
		Timestamp: alert.CreatedAt,
	})
}

func (svc *alertSvc) Query(ctx context.Context, cribIDs []string, limit int, status types.AlertStatus) (types.Collection[types.Alert], error) {
	conditions := []storage.ConditionFunc{
		storage.WithCribIDs(cribIDs),
		storage.WithLimit(limit),
	}
	if status != "" {
		conditions = append(conditions, storage.WithStatus(status))
	}

	alerts, err := svc.storage.QueryAlerts(ctx, conditions...)
	if err != nil {
		return types.Collection[types.Alert]{}, err
	}

	return alerts, nil
}

func (svc *alertSvc) Resolve(ctx context.Context, alertID, callerID, note string) error {
	log := logging.GetFromContext(ctx)

	lookupCtx, cancel := context.WithTimeout(ctx, directoryLookupTimeout)
	defer cancel()

	resolvedBy, err := svc.directory.DisplayName(lookupCtx, callerID)
	if err != nil {
		log.Warn("caregiver directory lookup failed, using fallback attribution", "caller_id", callerID, "err", err.Error())
		resolvedBy = FallbackResolverName
	}

	err = svc.storage.ResolveAlert(ctx, alertID, resolvedBy, note)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return ErrAlertNotFound
		}
		if errors.Is(err, storage.ErrAlreadyResolved) {
			return ErrAlreadyResolved
		}
		return err
	}

	return svc.messenger.PublishOnTopic(ctx, &AlertResolved{
		ID:         alertID,
		ResolvedBy: resolvedBy,
		Timestamp:  time.Now().UTC(),
	})
}
