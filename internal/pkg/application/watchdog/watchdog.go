package watchdog

import (
	"context"
	"time"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

// DefaultInterval matches the reporting cadence of the crib hardware. A gap
// longer than one interval means the stream has gone silent.
const DefaultInterval = 15 * time.Second

type Config struct {
	Interval time.Duration `yaml:"interval"`
}

// LastReceiver reports the receipt time of the last successfully ingested
// reading.
type LastReceiver interface {
	LastReceived() time.Time
}

type Watchdog interface {
	Start(ctx context.Context)
	Stop(ctx context.Context)
}

type watchdogImpl struct {
	ingest    LastReceiver
	messenger messaging.MsgContext
	interval  time.Duration
	started   time.Time
	done      chan bool
}

func New(ingest LastReceiver, messenger messaging.MsgContext, cfg *Config) Watchdog {
	interval := DefaultInterval
	if cfg != nil && cfg.Interval > 0 {
		interval = cfg.Interval
	}

	return &watchdogImpl{
		ingest:    ingest,
		messenger: messenger,
		interval:  interval,
		done:      make(chan bool, 1),
	}
}

func (w *watchdogImpl) Start(ctx context.Context) {
	w.started = time.Now().UTC()
	go w.run(ctx)
}

// Stop signals the worker to exit. The buffered send also returns immediately
// when the worker is already gone because its context was cancelled.
func (w *watchdogImpl) Stop(ctx context.Context) {
	w.done <- true
}

// run emits a health degraded signal whenever the ingestion stream has been
// silent for more than one interval. It is observational only, it never
// mutates alert state and leaves reconnection to the transport client.
func (w *watchdogImpl) run(ctx context.Context) {
	log := logging.GetFromContext(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.done:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			last := w.ingest.LastReceived()
			if last.IsZero() {
				// nothing ingested since boot yet
				last = w.started
			}

			silentFor := time.Since(last)
			if silentFor <= w.interval {
				continue
			}

			log.Warn("no sensor data received", "silent_for", silentFor.String(), "last_received", last.Format(time.RFC3339))

			err := w.messenger.PublishOnTopic(ctx, &CribSilent{
				LastReceived: last,
				Timestamp:    time.Now().UTC(),
			})
			if err != nil {
				log.Error("failed to publish health signal", "err", err.Error())
			}
		}
	}
}
