package configs

import "time"

// Distribution configures the external prize-distribution service client.
type Distribution struct {
	// Addr is the service base URL.
	Addr string `env:"ADDRESS" envDefault:"http://localhost:8090"`
	// Timeout bounds every request to the service.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
}

// Payout configures the external value-transfer provider client.
type Payout struct {
	// Addr is the provider base URL.
	Addr string `env:"ADDRESS" envDefault:"http://localhost:8091"`
	// Timeout bounds every request to the provider.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
}
