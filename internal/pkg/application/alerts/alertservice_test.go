package alerts

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/ameyali/crib-monitoring/internal/pkg/infrastructure/storage"
	"github.com/ameyali/crib-monitoring/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/matryer/is"
)

func TestAddAssignsIDAndPublishes(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := &AlertRepositoryMock{
		AddAlertFunc: func(ctx context.Context, alert types.Alert) error {
			return nil
		},
	}

	published := make([]messaging.TopicMessage, 0)
	m := &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			published = append(published, message)
			return nil
		},
	}

	svc := New(s, m, &CaregiverDirectoryMock{})

	err := svc.Add(ctx, types.Alert{
		CribID:        "CUNA001",
		RuleType:      types.RuleLowOxygenation,
		ObservedValue: 84,
		Threshold:     90,
		Severity:      types.SeverityCritical,
	})
	is.NoErr(err)

	is.Equal(len(s.AddAlertCalls()), 1)
	is.True(s.AddAlertCalls()[0].Alert.ID != "")
	is.Equal(s.AddAlertCalls()[0].Alert.Status, types.AlertPending)

	is.Equal(len(published), 1)
	is.Equal(published[0].TopicName(), "alerts.alertCreated")
}

func TestAddWithoutCribIDFails(t *testing.T) {
	is := is.New(t)

	svc := New(&AlertRepositoryMock{}, &messaging.MsgContextMock{}, &CaregiverDirectoryMock{})

	err := svc.Add(context.Background(), types.Alert{})
	is.True(err != nil)
}

func TestResolveRecordsDirectoryName(t *testing.T) {
	is := is.New(t)

	s := &AlertRepositoryMock{
		ResolveAlertFunc: func(ctx context.Context, alertID, resolvedBy, note string) error {
			return nil
		},
	}
	d := &CaregiverDirectoryMock{
		DisplayNameFunc: func(ctx context.Context, callerID string) (string, error) {
			return "Enf. Ramirez", nil
		},
	}
	m := &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			return nil
		},
	}

	svc := New(s, m, d)

	err := svc.Resolve(context.Background(), "alert-01", "ENF042", "falsa alarma")
	is.NoErr(err)

	is.Equal(len(s.ResolveAlertCalls()), 1)
	is.Equal(s.ResolveAlertCalls()[0].ResolvedBy, "Enf. Ramirez")
	is.Equal(s.ResolveAlertCalls()[0].Note, "falsa alarma")
}

func TestResolveFallsBackWhenDirectoryFails(t *testing.T) {
	is := is.New(t)

	s := &AlertRepositoryMock{
		ResolveAlertFunc: func(ctx context.Context, alertID, resolvedBy, note string) error {
			return nil
		},
	}
	d := &CaregiverDirectoryMock{
		DisplayNameFunc: func(ctx context.Context, callerID string) (string, error) {
			return "", fmt.Errorf("directory unavailable")
		},
	}
	m := &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			return nil
		},
	}

	svc := New(s, m, d)

	err := svc.Resolve(context.Background(), "alert-01", "ENF042", "atendida")
	is.NoErr(err)

	is.Equal(s.ResolveAlertCalls()[0].ResolvedBy, FallbackResolverName)
}

func TestResolveUnknownAlert(t *testing.T) {
	is := is.New(t)

	s := &AlertRepositoryMock{
		ResolveAlertFunc: func(ctx context.Context, alertID, resolvedBy, note string) error {
			return storage.ErrNoRows
		},
	}

	svc := New(s, &messaging.MsgContextMock{}, staticDirectory("Enf. Ramirez"))

	err := svc.Resolve(context.Background(), "nosuchalert", "ENF042", "atendida")
	is.True(errors.Is(err, ErrAlertNotFound))
}

func TestResolveAlreadyResolvedAlert(t *testing.T) {
	is := is.New(t)

	s := &AlertRepositoryMock{
		ResolveAlertFunc: func(ctx context.Context, alertID, resolvedBy, note string) error {
			return storage.ErrAlreadyResolved
		},
	}

	svc := New(s, &messaging.MsgContextMock{}, staticDirectory("Enf. Ramirez"))

	err := svc.Resolve(context.Background(), "alert-01", "ENF042", "atendida")
	is.True(errors.Is(err, ErrAlreadyResolved))
}

func TestQueryPassesStatusFilter(t *testing.T) {
	is := is.New(t)

	s := &AlertRepositoryMock{
		QueryAlertsFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Alert], error) {
			condition := &storage.Condition{}
			for _, f := range conditions {
				f(condition)
			}

			is.Equal(condition.CribIDs, []string{"CUNA001"})
			is.Equal(condition.Status, types.AlertPending)

			return types.Collection[types.Alert]{}, nil
		},
	}

	svc := New(s, &messaging.MsgContextMock{}, staticDirectory("Enf. Ramirez"))

	_, err := svc.Query(context.Background(), []string{"CUNA001"}, 50, types.AlertPending)
	is.NoErr(err)
	is.Equal(len(s.QueryAlertsCalls()), 1)
}

func staticDirectory(name string) *CaregiverDirectoryMock {
	return &CaregiverDirectoryMock{
		DisplayNameFunc: func(ctx context.Context, callerID string) (string, error) {
			return name, nil
		},
	}
}
