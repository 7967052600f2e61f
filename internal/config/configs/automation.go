package configs

import "time"

// Automation configures the expiration-and-settlement coordinator and the
// in-process polling agent.
type Automation struct {
	// Interval is the minimum time between automated executions; the
	// due-check only reports true once it has elapsed since the last scan.
	Interval time.Duration `env:"INTERVAL" envDefault:"1h"`
	// HandoffCadence selects how often the prize pool is handed off within
	// one cycle that expires campaigns: "per-campaign" (default) or
	// "per-cycle".
	HandoffCadence string `env:"HANDOFF_CADENCE" envDefault:"per-campaign"`
	// PollEnabled starts the in-process polling agent. Disable it when an
	// external agent drives the automation endpoints.
	PollEnabled bool `env:"POLL_ENABLED" envDefault:"true"`
	// PollEvery is the polling cadence. It should be at least as
	// fine-grained as Interval.
	PollEvery time.Duration `env:"POLL_EVERY" envDefault:"1m"`
}
