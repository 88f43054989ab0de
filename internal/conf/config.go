package conf

import (
	"github.com/caarlos0/env/v6"
)

type App struct {
	PrometheusBind string `env:"PROMETHEUS_BIND" envDefault:":2112"`

	// PlanPath is a YAML or JSON file describing the initial pool.
	PlanPath string `env:"LOTTERY_PLAN,required"`

	// Seed for the draw generator. Zero means seeding from the current time.
	Seed int64 `env:"LOTTERY_SEED" envDefault:"0"`

	// Draws is how many tickets each worker tries to draw.
	Draws int `env:"LOTTERY_DRAWS" envDefault:"100"`

	// Workers is the number of goroutines drawing from the same pool.
	Workers int `env:"LOTTERY_WORKERS" envDefault:"4"`

	// Debug enables development logging.
	Debug bool `env:"LOTTERY_DEBUG" envDefault:"false"`
}

func ParseEnv() (*App, error) {
	cfg := App{}
	err := env.Parse(&cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
