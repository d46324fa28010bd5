package watchdog

import (
	"encoding/json"
	"time"
)

type CribSilent struct {
	LastReceived time.Time `json:"lastReceived"`
	Timestamp    time.Time `json:"timestamp"`
}

func (l *CribSilent) ContentType() string {
	return "application/json"
}
func (l *CribSilent) TopicName() string {
	return "watchdog.cribSilent"
}
func (l *CribSilent) Body() []byte {
	b, _ := json.Marshal(l)
	return b
}
