package config

import "time"

// Client configures the form client's connection to the product API.
type Client struct {
	APIURL  string        `env:"CLIENT_API_URL" envDefault:"http://localhost:8082"`
	Timeout time.Duration `env:"CLIENT_TIMEOUT" envDefault:"10s"`
}
