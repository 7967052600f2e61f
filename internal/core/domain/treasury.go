package domain

import "time"

// DistributionState mirrors the external prize-distribution service's
// reported state. The coordinator refuses to hand off while the service is
// calculating a draw.
type DistributionState string

const (
	StateOpen        DistributionState = "open"
	StateCalculating DistributionState = "calculating"
)

// ParseDistributionState converts the wire representation into a
// DistributionState. Unknown values are returned as-is with ok=false so the
// caller can decide how to react.
func ParseDistributionState(s string) (DistributionState, bool) {
	switch DistributionState(s) {
	case StateOpen, StateCalculating:
		return DistributionState(s), true
	default:
		return DistributionState(s), false
	}
}

// Treasury is the single shared aggregate for the whole service: the fee
// pool awaiting handoff, the platform's own balance, and the automation
// bookkeeping. It is persisted as one row and mutated only through the
// funding and coordinator operations.
type Treasury struct {
	PrizePool        int64
	RaiserBalance    int64
	LastScanTime     time.Time
	CoordinatorState DistributionState
}
