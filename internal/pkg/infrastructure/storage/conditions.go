package storage

import (
	"strings"

	"github.com/ameyali/crib-monitoring/pkg/types"
	"github.com/jackc/pgx/v5"
)

type ConditionFunc func(*Condition) *Condition

type Condition struct {
	CribIDs []string
	Status  types.AlertStatus

	offset *int
	limit  *int
}

func WithCribIDs(cribIDs []string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.CribIDs = cribIDs
		return c
	}
}

func WithStatus(status types.AlertStatus) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Status = status
		return c
	}
}

func WithLimit(limit int) ConditionFunc {
	return func(c *Condition) *Condition {
		c.limit = &limit
		return c
	}
}

func WithOffset(offset int) ConditionFunc {
	return func(c *Condition) *Condition {
		c.offset = &offset
		return c
	}
}

func (c Condition) NamedArgs() pgx.NamedArgs {
	args := pgx.NamedArgs{}

	if len(c.CribIDs) > 0 {
		args["crib_ids"] = c.CribIDs
	}
	if c.Status != "" {
		args["status"] = string(c.Status)
	}

	return args
}

func (c Condition) Where() string {
	parts := make([]string, 0, 2)

	if len(c.CribIDs) > 0 {
		parts = append(parts, "crib_id = ANY(@crib_ids)")
	}
	if c.Status != "" {
		parts = append(parts, "status = @status")
	}

	if len(parts) == 0 {
		return "TRUE"
	}

	return strings.Join(parts, " AND ")
}

func (c Condition) Offset() int {
	if c.offset == nil {
		return 0
	}
	return *c.offset
}

func (c Condition) Limit() int {
	if c.limit == nil {
		return 50
	}
	return *c.limit
}
