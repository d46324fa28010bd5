package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Config struct {
	host     string
	user     string
	password string
	port     string
	dbname   string
	sslmode  string
}

func (c Config) ConnStr() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", c.user, c.password, c.host, c.port, c.dbname, c.sslmode)
}

func NewConfig(host, user, password, port, dbname, sslmode string) Config {
	return Config{
		host:     host,
		user:     user,
		password: password,
		port:     port,
		dbname:   dbname,
		sslmode:  sslmode,
	}
}

func NewPool(ctx context.Context, config Config) (*pgxpool.Pool, error) {
	p, err := pgxpool.New(ctx, config.ConnStr())
	if err != nil {
		return nil, err
	}

	err = p.Ping(ctx)
	if err != nil {
		return nil, err
	}

	return p, nil
}

var (
	ErrNoRows          = errors.New("no rows in result set")
	ErrStoreFailed     = errors.New("could not store data")
	ErrNoID            = errors.New("data contains no id")
	ErrAlreadyResolved = errors.New("alert is already resolved")
)

type Storage struct {
	pool *pgxpool.Pool
}

func NewWithPool(pool *pgxpool.Pool) *Storage {
	return &Storage{pool: pool}
}

func New(ctx context.Context, config Config) (*Storage, error) {
	pool, err := NewPool(ctx, config)
	if err != nil {
		return nil, err
	}

	return &Storage{pool: pool}, nil
}

func (s *Storage) Initialize(ctx context.Context) error {
	return s.createTables(ctx)
}

func (s *Storage) createTables(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS sensor_readings (
			reading_id	BIGSERIAL	PRIMARY KEY,
			crib_id		TEXT		NOT NULL,
			origin		TEXT		NOT NULL DEFAULT 'hospital',
			time 		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			heart_rate	NUMERIC		NOT NULL,
			spo2		NUMERIC		NOT NULL,
			temperature	NUMERIC		NULL,
			movement	BOOLEAN		NOT NULL DEFAULT FALSE
		);

		CREATE INDEX IF NOT EXISTS idx_sensor_readings_crib_time ON sensor_readings (crib_id, time DESC);

		CREATE TABLE IF NOT EXISTS alerts (
			alert_id		TEXT	NOT NULL,
			crib_id			TEXT	NOT NULL,
			rule_type		TEXT	NOT NULL,
			observed_value	NUMERIC	NOT NULL,
			threshold		NUMERIC	NOT NULL,
			severity		TEXT	NOT NULL,
			status			TEXT	NOT NULL DEFAULT 'pendiente',
			resolved_by		TEXT	NULL,
			resolution_note	TEXT	NULL,
			created_on  	timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			resolved_on 	timestamp with time zone NULL,
			CONSTRAINT pkey_alerts PRIMARY KEY (alert_id)
		);

		CREATE INDEX IF NOT EXISTS idx_alerts_crib_created ON alerts (crib_id, created_on DESC);

		CREATE TABLE IF NOT EXISTS fault_reports (
			report_id	TEXT	NOT NULL,
			crib_id		TEXT	NOT NULL,
			description	TEXT	NOT NULL,
			reported_by	TEXT	NOT NULL,
			reported_on	timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_fault_reports PRIMARY KEY (report_id)
		);
	`)

	return err
}

func (s *Storage) Close() {
	s.pool.Close()
}
