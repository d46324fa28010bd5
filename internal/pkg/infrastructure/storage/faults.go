package storage

import (
	"context"
	"fmt"

	"github.com/ameyali/crib-monitoring/pkg/types"
	"github.com/jackc/pgx/v5"
)

// AddFaultReport appends a technical fault report. Reports are an append
// only sink, there is no update or delete path.
func (s *Storage) AddFaultReport(ctx context.Context, report types.FaultReport) error {
	if report.ID == "" {
		return ErrNoID
	}

	args := pgx.NamedArgs{
		"report_id":   report.ID,
		"crib_id":     report.CribID,
		"description": report.Description,
		"reported_by": report.ReportedBy,
		"reported_on": report.ReportedAt,
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO fault_reports (report_id, crib_id, description, reported_by, reported_on)
		VALUES (@report_id, @crib_id, @description, @reported_by, @reported_on)
	`, args)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	return nil
}
