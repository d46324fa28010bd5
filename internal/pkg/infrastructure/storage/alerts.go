package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ameyali/crib-monitoring/pkg/types"
	"github.com/jackc/pgx/v5"
)

// QueryAlerts returns alerts with pending alerts before resolved ones and
// each group ordered most recent first.
func (s *Storage) QueryAlerts(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.Alert], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	args := condition.NamedArgs()
	where := condition.Where()

	offsetLimit := fmt.Sprintf("OFFSET %d LIMIT %d", condition.Offset(), condition.Limit())

	var alertID, cribID, ruleType, severity, status string
	var resolvedBy, resolutionNote *string
	var observedValue, threshold float64
	var createdOn time.Time
	var count int64

	query := fmt.Sprintf(`
		SELECT alert_id, crib_id, rule_type, observed_value, threshold, severity, status, resolved_by, resolution_note, created_on, count(*) OVER () AS count
		FROM alerts
		WHERE %s
		ORDER BY CASE WHEN status = 'pendiente' THEN 0 ELSE 1 END ASC, created_on DESC
		%s
	`, where, offsetLimit)

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return types.Collection[types.Alert]{}, err
	}

	alerts := make([]types.Alert, 0)

	_, err = pgx.ForEachRow(rows, []any{&alertID, &cribID, &ruleType, &observedValue, &threshold, &severity, &status, &resolvedBy, &resolutionNote, &createdOn, &count}, func() error {
		alert := types.Alert{
			ID:            alertID,
			CribID:        cribID,
			RuleType:      types.RuleType(ruleType),
			ObservedValue: observedValue,
			Threshold:     threshold,
			Severity:      types.Severity(severity),
			Status:        types.AlertStatus(status),
			CreatedAt:     createdOn,
		}

		if resolvedBy != nil {
			v := *resolvedBy
			alert.ResolvedBy = &v
		}
		if resolutionNote != nil {
			v := *resolutionNote
			alert.ResolutionNote = &v
		}

		alerts = append(alerts, alert)

		return nil
	})
	if err != nil {
		return types.Collection[types.Alert]{}, err
	}

	return types.Collection[types.Alert]{
		Data:       alerts,
		Count:      uint64(len(alerts)),
		Limit:      uint64(condition.Limit()),
		Offset:     uint64(condition.Offset()),
		TotalCount: uint64(count),
	}, nil
}

func (s *Storage) GetAlert(ctx context.Context, alertID string) (types.Alert, error) {
	var ruleType, severity, status, cribID string
	var resolvedBy, resolutionNote *string
	var observedValue, threshold float64
	var createdOn time.Time

	err := s.pool.QueryRow(ctx, `
		SELECT crib_id, rule_type, observed_value, threshold, severity, status, resolved_by, resolution_note, created_on
		FROM alerts
		WHERE alert_id = @alert_id
	`, pgx.NamedArgs{"alert_id": alertID}).Scan(&cribID, &ruleType, &observedValue, &threshold, &severity, &status, &resolvedBy, &resolutionNote, &createdOn)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Alert{}, ErrNoRows
		}
		return types.Alert{}, err
	}

	return types.Alert{
		ID:             alertID,
		CribID:         cribID,
		RuleType:       types.RuleType(ruleType),
		ObservedValue:  observedValue,
		Threshold:      threshold,
		Severity:       types.Severity(severity),
		Status:         types.AlertStatus(status),
		ResolvedBy:     resolvedBy,
		ResolutionNote: resolutionNote,
		CreatedAt:      createdOn,
	}, nil
}

func (s *Storage) AddAlert(ctx context.Context, alert types.Alert) error {
	if alert.ID == "" {
		return ErrNoID
	}
	if alert.CribID == "" {
		return ErrNoID
	}

	args := pgx.NamedArgs{
		"alert_id":       alert.ID,
		"crib_id":        alert.CribID,
		"rule_type":      string(alert.RuleType),
		"observed_value": alert.ObservedValue,
		"threshold":      alert.Threshold,
		"severity":       string(alert.Severity),
		"created_on":     alert.CreatedAt,
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO alerts (alert_id, crib_id, rule_type, observed_value, threshold, severity, status, created_on)
		VALUES (@alert_id, @crib_id, @rule_type, @observed_value, @threshold, @severity, 'pendiente', @created_on)
	`, args)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	return nil
}

// ResolveAlert transitions a pending alert to resolved, recording who
// resolved it and why. The guarded update serializes concurrent resolve
// attempts so that exactly one succeeds; later attempts observe
// ErrAlreadyResolved, a missing row ErrNoRows.
func (s *Storage) ResolveAlert(ctx context.Context, alertID, resolvedBy, note string) error {
	args := pgx.NamedArgs{
		"alert_id":        alertID,
		"resolved_by":     resolvedBy,
		"resolution_note": note,
	}

	tag, err := s.pool.Exec(ctx, `
		UPDATE alerts
		SET status = 'resuelta', resolved_by = @resolved_by, resolution_note = @resolution_note, resolved_on = CURRENT_TIMESTAMP
		WHERE alert_id = @alert_id AND status = 'pendiente'
	`, args)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 1 {
		return nil
	}

	var status string

	err = s.pool.QueryRow(ctx, `
		SELECT status FROM alerts WHERE alert_id = @alert_id
	`, pgx.NamedArgs{"alert_id": alertID}).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNoRows
		}
		return err
	}

	return ErrAlreadyResolved
}
