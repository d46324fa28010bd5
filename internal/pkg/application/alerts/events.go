package alerts

import (
	"encoding/json"
	"time"

	"github.com/ameyali/crib-monitoring/pkg/types"
)

type AlertCreated struct {
	Alert     types.Alert `json:"alert"`
	Timestamp time.Time   `json:"timestamp"`
}

func (l *AlertCreated) ContentType() string {
	return "application/json"
}
func (l *AlertCreated) TopicName() string {
	return "alerts.alertCreated"
}
func (l *AlertCreated) Body() []byte {
	b, _ := json.Marshal(l)
	return b
}

type AlertResolved struct {
	ID         string    `json:"id"`
	ResolvedBy string    `json:"resolvedBy"`
	Timestamp  time.Time `json:"timestamp"`
}

func (l *AlertResolved) ContentType() string {
	return "application/json"
}
func (l *AlertResolved) TopicName() string {
	return "alerts.alertResolved"
}
func (l *AlertResolved) Body() []byte {
	b, _ := json.Marshal(l)
	return b
}
