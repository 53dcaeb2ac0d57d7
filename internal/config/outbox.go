package config

// Outbox toggles writing product change events to the outbox table.
type Outbox struct {
	Enabled bool `env:"OUTBOX_ENABLED" envDefault:"false"`
}
