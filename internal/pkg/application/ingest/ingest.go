package ingest

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/ameyali/crib-monitoring/internal/pkg/application/alerts"
	"github.com/ameyali/crib-monitoring/internal/pkg/infrastructure/transport/mqtt"
	"github.com/ameyali/crib-monitoring/pkg/types"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("crib-monitoring/ingest")

// DefaultCribID is substituted when a device does not report which crib it
// belongs to, matching the provisioning default of the crib hardware.
const DefaultCribID = "CUNA001"
const DefaultOrigin = "hospital"

const storeTimeout = 5 * time.Second

type Config struct {
	Topic string `yaml:"topic"`
	QoS   byte   `yaml:"qos"`
}

//go:generate moq -rm -out readingstorage_mock.go . ReadingStorage
type ReadingStorage interface {
	AddReading(ctx context.Context, r types.SensorReading) (types.SensorReading, error)
}

type Subscriber interface {
	Subscribe(ctx context.Context, topic string, qos byte, handler mqtt.MessageHandler) error
}

type Ingestor interface {
	Start(ctx context.Context) error
	LastReceived() time.Time
}

type ingestor struct {
	subscriber Subscriber
	storage    ReadingStorage
	alertSvc   alerts.AlertService
	config     *Config

	mu           sync.RWMutex
	lastReceived time.Time
}

func New(subscriber Subscriber, storage ReadingStorage, alertSvc alerts.AlertService, config *Config) Ingestor {
	if config.Topic == "" {
		config.Topic = "sensor/oximetro"
	}

	return &ingestor{
		subscriber: subscriber,
		storage:    storage,
		alertSvc:   alertSvc,
		config:     config,
	}
}

func (i *ingestor) Start(ctx context.Context) error {
	return i.subscriber.Subscribe(ctx, i.config.Topic, i.config.QoS, i.handleMessage)
}

// LastReceived returns the receipt time of the last successfully ingested
// reading. The watchdog uses this to detect a silent stream.
func (i *ingestor) LastReceived() time.Time {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.lastReceived
}

func (i *ingestor) touch(t time.Time) {
	i.mu.Lock()
	i.lastReceived = t
	i.mu.Unlock()
}

// incomingReading is the wire format published by the crib hardware. The two
// vitals are required, everything else is optional.
type incomingReading struct {
	CribID      *string  `json:"cunaId"`
	Origin      *string  `json:"origin"`
	HeartRate   *float64 `json:"frecuenciaCardiaca"`
	Oxygenation *float64 `json:"oxigenacion"`
	Temperature *float64 `json:"temperatura"`
	Movement    *bool    `json:"movimiento"`
}

// handleMessage validates and stores one inbound reading and evaluates the
// threshold rules against it. Failures are contained here so that the
// subscription keeps consuming subsequent messages; an invalid or unstorable
// reading is dropped and only surfaced via logs.
func (i *ingestor) handleMessage(ctx context.Context, topic string, payload []byte) {
	var err error

	ctx, span := tracer.Start(ctx, "ingest-reading")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
	_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

	msg := incomingReading{}

	err = json.Unmarshal(payload, &msg)
	if err != nil {
		log.Warn("dropping malformed sensor payload", "topic", topic, "err", err.Error())
		return
	}

	if msg.HeartRate == nil || msg.Oxygenation == nil {
		log.Warn("dropping incomplete sensor payload", "topic", topic)
		return
	}

	reading := types.SensorReading{
		CribID:       DefaultCribID,
		Origin:       DefaultOrigin,
		Timestamp:    time.Now().UTC(),
		HeartRateBpm: *msg.HeartRate,
		Spo2Percent:  *msg.Oxygenation,
	}

	if msg.CribID != nil && *msg.CribID != "" {
		reading.CribID = *msg.CribID
	} else {
		log.Debug("no crib id in payload, using default", "crib_id", DefaultCribID)
	}
	if msg.Origin != nil && *msg.Origin != "" {
		reading.Origin = *msg.Origin
	}
	if msg.Temperature != nil {
		reading.TemperatureC = *msg.Temperature
	}
	if msg.Movement != nil {
		reading.MovementDetected = *msg.Movement
	}

	storeCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	stored, err := i.storage.AddReading(storeCtx, reading)
	if err != nil {
		log.Error("could not store reading, dropping it", "crib_id", reading.CribID, "err", err.Error())
		return
	}

	i.touch(stored.Timestamp)

	// The handler runs on the paho delivery goroutine, so alert persistence
	// is bounded just like the reading write; a hung insert must not stall
	// ingestion of subsequent readings.
	alertCtx, cancelAlerts := context.WithTimeout(ctx, storeTimeout)
	defer cancelAlerts()

	// store-then-evaluate, so no alert is ever created for a reading that
	// failed to persist
	for _, alert := range alerts.Evaluate(stored) {
		err = i.alertSvc.Add(alertCtx, alert)
		if err != nil {
			log.Error("could not create alert", "crib_id", alert.CribID, "rule_type", string(alert.RuleType), "err", err.Error())
		}
	}
}
