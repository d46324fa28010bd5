package alerts

import (
	"github.com/ameyali/crib-monitoring/pkg/types"
)

// The single authoritative threshold table. The tighter critical bands are
// applied already at creation time so the severity a caregiver sees later is
// the severity the alert was created with.
const (
	Spo2FireBelow         = 90.0
	Spo2CriticalAtOrBelow = 85.0

	HeartRateFireAbove     = 150.0
	HeartRateFireBelow     = 60.0
	HeartRateCriticalAbove = 160.0
	HeartRateCriticalBelow = 50.0
)

// Evaluate classifies one stored reading against the threshold rules. It is
// pure and performs no I/O. Both rules may fire on the same reading, in which
// case two independent alerts are produced. There is no suppression window, a
// persistently out of range vital produces one alert per qualifying reading.
func Evaluate(r types.SensorReading) []types.Alert {
	alerts := make([]types.Alert, 0, 2)

	if r.Spo2Percent < Spo2FireBelow {
		severity := types.SeverityReview
		if r.Spo2Percent <= Spo2CriticalAtOrBelow {
			severity = types.SeverityCritical
		}

		alerts = append(alerts, types.Alert{
			CribID:        r.CribID,
			RuleType:      types.RuleLowOxygenation,
			ObservedValue: r.Spo2Percent,
			Threshold:     Spo2FireBelow,
			Severity:      severity,
			Status:        types.AlertPending,
			CreatedAt:     r.Timestamp,
		})
	}

	if r.HeartRateBpm > HeartRateFireAbove || r.HeartRateBpm < HeartRateFireBelow {
		severity := types.SeverityReview
		if r.HeartRateBpm > HeartRateCriticalAbove || r.HeartRateBpm < HeartRateCriticalBelow {
			severity = types.SeverityCritical
		}

		threshold := HeartRateFireAbove
		if r.HeartRateBpm < HeartRateFireBelow {
			threshold = HeartRateFireBelow
		}

		alerts = append(alerts, types.Alert{
			CribID:        r.CribID,
			RuleType:      types.RuleAbnormalHeartRate,
			ObservedValue: r.HeartRateBpm,
			Threshold:     threshold,
			Severity:      severity,
			Status:        types.AlertPending,
			CreatedAt:     r.Timestamp,
		})
	}

	return alerts
}
