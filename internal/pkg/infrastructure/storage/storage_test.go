package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ameyali/crib-monitoring/pkg/types"
	"github.com/google/uuid"
	"github.com/matryer/is"
)

func testSetup(t *testing.T) (context.Context, *Storage) {
	ctx := context.Background()

	config := Config{
		host:     "localhost",
		user:     "postgres",
		password: "password",
		port:     "5432",
		dbname:   "postgres",
		sslmode:  "disable",
	}

	s, err := New(ctx, config)
	if err != nil {
		t.SkipNow()
	}

	err = s.Initialize(ctx)
	if err != nil {
		t.SkipNow()
	}

	return ctx, s
}

func TestAddReadingAssignsID(t *testing.T) {
	ctx, s := testSetup(t)
	is := is.New(t)

	r, err := s.AddReading(ctx, newReading("CUNA001", 120, 97))
	is.NoErr(err)
	is.True(r.ID > 0)
}

func TestQueryReadingsMostRecentFirst(t *testing.T) {
	ctx, s := testSetup(t)
	is := is.New(t)

	cribID := uuid.NewString()

	for i := 0; i < 3; i++ {
		reading := newReading(cribID, 120, 97)
		reading.Timestamp = time.Now().UTC().Add(time.Duration(i) * time.Minute)
		_, err := s.AddReading(ctx, reading)
		is.NoErr(err)
	}

	collection, err := s.QueryReadings(ctx, WithCribIDs([]string{cribID}), WithLimit(10))
	is.NoErr(err)
	is.Equal(int(collection.Count), 3)

	for i := 1; i < len(collection.Data); i++ {
		is.True(!collection.Data[i].Timestamp.After(collection.Data[i-1].Timestamp))
	}
}

func TestQueryReadingsBreaksTimestampTiesByInsertionOrder(t *testing.T) {
	ctx, s := testSetup(t)
	is := is.New(t)

	cribID := uuid.NewString()
	ts := time.Now().UTC()

	first, err := s.AddReading(ctx, readingAt(cribID, ts))
	is.NoErr(err)
	second, err := s.AddReading(ctx, readingAt(cribID, ts))
	is.NoErr(err)

	collection, err := s.QueryReadings(ctx, WithCribIDs([]string{cribID}), WithLimit(10))
	is.NoErr(err)
	is.Equal(int(collection.Count), 2)
	is.Equal(collection.Data[0].ID, second.ID)
	is.Equal(collection.Data[1].ID, first.ID)
}

func TestResolveAlert(t *testing.T) {
	ctx, s := testSetup(t)
	is := is.New(t)

	alertID := uuid.NewString()
	err := s.AddAlert(ctx, newAlert(alertID))
	is.NoErr(err)

	err = s.ResolveAlert(ctx, alertID, "Enf. Ramirez", "falsa alarma, sensor movido")
	is.NoErr(err)

	alert, err := s.GetAlert(ctx, alertID)
	is.NoErr(err)
	is.Equal(alert.Status, types.AlertResolved)
	is.Equal(*alert.ResolvedBy, "Enf. Ramirez")
	is.Equal(*alert.ResolutionNote, "falsa alarma, sensor movido")
}

func TestResolveAlertTwiceIsRejected(t *testing.T) {
	ctx, s := testSetup(t)
	is := is.New(t)

	alertID := uuid.NewString()
	err := s.AddAlert(ctx, newAlert(alertID))
	is.NoErr(err)

	err = s.ResolveAlert(ctx, alertID, "Enf. Ramirez", "atendida")
	is.NoErr(err)

	err = s.ResolveAlert(ctx, alertID, "Enf. Lopez", "otra vez")
	is.True(errors.Is(err, ErrAlreadyResolved))

	alert, err := s.GetAlert(ctx, alertID)
	is.NoErr(err)
	is.Equal(*alert.ResolvedBy, "Enf. Ramirez")
	is.Equal(*alert.ResolutionNote, "atendida")
}

func TestResolveUnknownAlertReturnsNoRows(t *testing.T) {
	ctx, s := testSetup(t)
	is := is.New(t)

	err := s.ResolveAlert(ctx, uuid.NewString(), "Enf. Ramirez", "atendida")
	is.True(errors.Is(err, ErrNoRows))
}

func TestQueryAlertsPendingSortBeforeResolved(t *testing.T) {
	ctx, s := testSetup(t)
	is := is.New(t)

	cribID := uuid.NewString()
	now := time.Now().UTC()

	a := newAlert(uuid.NewString())
	a.CribID = cribID
	a.CreatedAt = now.Add(3 * time.Minute)
	is.NoErr(s.AddAlert(ctx, a))

	b := newAlert(uuid.NewString())
	b.CribID = cribID
	b.CreatedAt = now.Add(5 * time.Minute)
	is.NoErr(s.AddAlert(ctx, b))
	is.NoErr(s.ResolveAlert(ctx, b.ID, "Enf. Ramirez", "atendida"))

	c := newAlert(uuid.NewString())
	c.CribID = cribID
	c.CreatedAt = now.Add(1 * time.Minute)
	is.NoErr(s.AddAlert(ctx, c))

	collection, err := s.QueryAlerts(ctx, WithCribIDs([]string{cribID}), WithLimit(10))
	is.NoErr(err)
	is.Equal(int(collection.Count), 3)
	is.Equal(collection.Data[0].ID, a.ID)
	is.Equal(collection.Data[1].ID, c.ID)
	is.Equal(collection.Data[2].ID, b.ID)
}

func TestQueryAlertsFilterByStatus(t *testing.T) {
	ctx, s := testSetup(t)
	is := is.New(t)

	cribID := uuid.NewString()

	a := newAlert(uuid.NewString())
	a.CribID = cribID
	is.NoErr(s.AddAlert(ctx, a))

	b := newAlert(uuid.NewString())
	b.CribID = cribID
	is.NoErr(s.AddAlert(ctx, b))
	is.NoErr(s.ResolveAlert(ctx, b.ID, "Enf. Ramirez", "atendida"))

	collection, err := s.QueryAlerts(ctx, WithCribIDs([]string{cribID}), WithStatus(types.AlertPending), WithLimit(10))
	is.NoErr(err)
	is.Equal(int(collection.Count), 1)
	is.Equal(collection.Data[0].ID, a.ID)
}

func TestAddFaultReport(t *testing.T) {
	ctx, s := testSetup(t)
	is := is.New(t)

	err := s.AddFaultReport(ctx, types.FaultReport{
		ID:          uuid.NewString(),
		CribID:      "CUNA001",
		Description: "sensor de oximetria desconectado",
		ReportedBy:  "ENF042",
		ReportedAt:  time.Now().UTC(),
	})
	is.NoErr(err)
}

func newReading(cribID string, heartRate, spo2 float64) types.SensorReading {
	return types.SensorReading{
		CribID:       cribID,
		Origin:       "hospital",
		Timestamp:    time.Now().UTC(),
		HeartRateBpm: heartRate,
		Spo2Percent:  spo2,
		TemperatureC: 36.8,
	}
}

func readingAt(cribID string, ts time.Time) types.SensorReading {
	r := newReading(cribID, 120, 97)
	r.Timestamp = ts
	return r
}

func newAlert(alertID string) types.Alert {
	return types.Alert{
		ID:            alertID,
		CribID:        "CUNA001",
		RuleType:      types.RuleLowOxygenation,
		ObservedValue: 84,
		Threshold:     90,
		Severity:      types.SeverityCritical,
		Status:        types.AlertPending,
		CreatedAt:     time.Now().UTC(),
	}
}
