package rta

import (
	"os"

	yaml "github.com/goccy/go-yaml"
)

// Selector values for the tunable analysis knobs.
const (
	SeedStandard = "standard" // seed the recurrence with the task's own execution time
	SeedChained  = "chained"  // seed with the previous task's response time plus own C

	ReleaseAtZero   = "zero"   // first release at t = 0 (critical instant)
	ReleaseAtPeriod = "period" // first release at t = T

	SlackCeiling = "ceiling"
	SlackFloor   = "floor"
)

// Config mirrors config.yml
type Config struct {
	Precision     int     `yaml:"precision"`      // decimal places kept on task parameters
	MaxIter       int     `yaml:"max_iter"`       // response-time fixed-point cap
	SlotMaxIter   int     `yaml:"slot_max_iter"`  // first-free-slot fixed-point cap
	Seed          string  `yaml:"seed"`           // standard | chained
	ReleaseOffset string  `yaml:"release_offset"` // zero | period
	SlackMode     string  `yaml:"slack_mode"`     // ceiling | floor
	Blocking      float64 `yaml:"blocking"`       // blocking term F charged in the slack computation
	Horizon       int     `yaml:"horizon"`        // simulation cells; 0 = one hyperperiod
}

// If the config file is not found, we use default values
func defaultConfig() Config {
	return Config{
		Precision:     2,
		MaxIter:       50,
		SlotMaxIter:   50,
		Seed:          SeedStandard,
		ReleaseOffset: ReleaseAtZero,
		SlackMode:     SlackCeiling,
	}
}

// Load reads YAML and overrides defaults; empty path = defaults only
func Load(path string) Config {
	cfg := defaultConfig()

	if path == "" {
		return cfg
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	_ = yaml.Unmarshal(data, &cfg)

	// sanity clamps
	if cfg.Precision < 0 {
		cfg.Precision = 2
	}
	if cfg.MaxIter <= 0 {
		cfg.MaxIter = 50
	}
	if cfg.SlotMaxIter <= 0 {
		cfg.SlotMaxIter = 50
	}
	if cfg.Seed != SeedChained {
		cfg.Seed = SeedStandard
	}
	if cfg.ReleaseOffset != ReleaseAtPeriod {
		cfg.ReleaseOffset = ReleaseAtZero
	}
	if cfg.SlackMode != SlackFloor {
		cfg.SlackMode = SlackCeiling
	}
	if cfg.Blocking < 0 {
		cfg.Blocking = 0
	}
	if cfg.Horizon < 0 {
		cfg.Horizon = 0
	}

	return cfg
}
