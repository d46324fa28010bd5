package storage

import (
	"fmt"

	"context"

	"github.com/ameyali/crib-monitoring/pkg/types"
	"github.com/jackc/pgx/v5"
)

// AddReading appends a validated reading and returns it with its store
// assigned id. Readings are never updated or deleted.
func (s *Storage) AddReading(ctx context.Context, r types.SensorReading) (types.SensorReading, error) {
	if r.CribID == "" {
		return types.SensorReading{}, ErrNoID
	}

	args := pgx.NamedArgs{
		"crib_id":     r.CribID,
		"origin":      r.Origin,
		"time":        r.Timestamp,
		"heart_rate":  r.HeartRateBpm,
		"spo2":        r.Spo2Percent,
		"temperature": r.TemperatureC,
		"movement":    r.MovementDetected,
	}

	var readingID int64

	err := s.pool.QueryRow(ctx, `
		INSERT INTO sensor_readings (crib_id, origin, time, heart_rate, spo2, temperature, movement)
		VALUES (@crib_id, @origin, @time, @heart_rate, @spo2, @temperature, @movement)
		RETURNING reading_id
	`, args).Scan(&readingID)
	if err != nil {
		return types.SensorReading{}, fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	r.ID = readingID

	return r, nil
}

// QueryReadings returns readings most recent first. Ties on the timestamp are
// broken by the store assigned id so that the order is deterministic.
func (s *Storage) QueryReadings(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.SensorReading], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	args := condition.NamedArgs()
	where := condition.Where()

	offsetLimit := fmt.Sprintf("OFFSET %d LIMIT %d", condition.Offset(), condition.Limit())

	var readingID int64
	var cribID, origin string
	var r types.SensorReading
	var count int64

	query := fmt.Sprintf(`
		SELECT reading_id, crib_id, origin, time, heart_rate, spo2, temperature, movement, count(*) OVER () AS count
		FROM sensor_readings
		WHERE %s
		ORDER BY time DESC, reading_id DESC
		%s
	`, where, offsetLimit)

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return types.Collection[types.SensorReading]{}, err
	}

	readings := make([]types.SensorReading, 0)

	_, err = pgx.ForEachRow(rows, []any{&readingID, &cribID, &origin, &r.Timestamp, &r.HeartRateBpm, &r.Spo2Percent, &r.TemperatureC, &r.MovementDetected, &count}, func() error {
		reading := r
		reading.ID = readingID
		reading.CribID = cribID
		reading.Origin = origin

		readings = append(readings, reading)

		return nil
	})
	if err != nil {
		return types.Collection[types.SensorReading]{}, err
	}

	return types.Collection[types.SensorReading]{
		Data:       readings,
		Count:      uint64(len(readings)),
		Limit:      uint64(condition.Limit()),
		Offset:     uint64(condition.Offset()),
		TotalCount: uint64(count),
	}, nil
}
