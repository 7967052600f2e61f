package configs

// Redis configures the optional pub/sub connection used to publish
// notifications for off-system consumers.
type Redis struct {
	// Enabled turns notification publishing on.
	Enabled bool `env:"ENABLED" envDefault:"false"`
	// Addr is the redis host:port.
	Addr string `env:"ADDRESS" envDefault:"localhost:6379"`
	// Password authenticates the connection when set.
	Password string `env:"PASSWORD" envDefault:""`
	// DB selects the redis database.
	DB int `env:"DB" envDefault:"0"`
}
