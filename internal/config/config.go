package config

import (
	"flag"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Address            string        `env:"RUN_ADDRESS"            envDefault:"localhost:8080"`
	StoreDSN           string        `env:"STORE_DSN"              envDefault:"memory://"`
	LogLvl             string        `env:"LOG_LVL"                envDefault:"info"`
	LogFormat          string        `env:"LOG_FORMAT"             envDefault:"console"`
	Hasher             string        `env:"HASHER"                 envDefault:"bcrypt"`
	JWTSecret          string        `env:"JWT_SECRET"             envDefault:"fruitshop-secret"`
	StartDelay         time.Duration `env:"SIMULATE_START_DELAY"   envDefault:"5s"`
	StepInterval       time.Duration `env:"SIMULATE_STEP_INTERVAL" envDefault:"30s"`
	StrictStatuses     bool          `env:"STRICT_STATUSES"        envDefault:"false"`
	LoginRatePerMinute int           `env:"LOGIN_RATE_PER_MINUTE"  envDefault:"10"`
}

func New() *Config {
	cfg := &Config{}

	env.Parse(cfg)

	flag.StringVar(&cfg.Address, "a", cfg.Address, "address and port to run server")
	flag.StringVar(&cfg.StoreDSN, "d", cfg.StoreDSN, "store DSN: memory://, postgres://... or sqlite://path")
	flag.StringVar(&cfg.LogLvl, "l", cfg.LogLvl, "log level")
	flag.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log encoding: console or json")
	flag.StringVar(&cfg.Hasher, "h", cfg.Hasher, "password hasher: bcrypt or legacy")
	flag.StringVar(&cfg.JWTSecret, "s", cfg.JWTSecret, "secret used to sign tokens")
	flag.DurationVar(&cfg.StartDelay, "simulate-start-delay", cfg.StartDelay, "delay before a simulated order is confirmed")
	flag.DurationVar(&cfg.StepInterval, "simulate-step-interval", cfg.StepInterval, "interval between simulated status changes")
	flag.BoolVar(&cfg.StrictStatuses, "strict-statuses", cfg.StrictStatuses, "reject order statuses outside the known set")
	flag.IntVar(&cfg.LoginRatePerMinute, "login-rate", cfg.LoginRatePerMinute, "login attempts per minute per client, 0 disables the limit")
	flag.Parse()

	return cfg
}
