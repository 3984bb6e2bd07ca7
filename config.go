package dynarray

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Tuning holds the allocation knobs for an Array. The growth factor itself
// is fixed doubling; only the bootstrap capacity and the slot limit are
// tunable.
type Tuning struct {
	// BootstrapCapacity is the slot count allocated by New before any
	// element is inserted. Zero defers the first allocation to the first
	// insert.
	BootstrapCapacity int `yaml:"bootstrap_capacity"`

	// MaxSlots caps the backing block size. Growth past the cap fails with
	// ErrCapacityExhausted. Zero means unlimited.
	MaxSlots int `yaml:"max_slots"`
}

// DefaultTuning returns the tuning used when none is supplied.
func DefaultTuning() Tuning {
	return Tuning{BootstrapCapacity: 32}
}

// Validate checks the tuning for internal consistency.
func (t Tuning) Validate() error {
	if t.BootstrapCapacity < 0 {
		return fmt.Errorf("bootstrap_capacity must not be negative, got %d", t.BootstrapCapacity)
	}
	if t.MaxSlots < 0 {
		return fmt.Errorf("max_slots must not be negative, got %d", t.MaxSlots)
	}
	if t.MaxSlots > 0 && t.BootstrapCapacity > t.MaxSlots {
		return fmt.Errorf("bootstrap_capacity %d exceeds max_slots %d", t.BootstrapCapacity, t.MaxSlots)
	}
	return nil
}

// LoadTuning reads a tuning profile from a YAML file, applies environment
// overrides, and validates the result.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()

	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("reading tuning profile: %w", err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("parsing tuning profile: %w", err)
	}

	TuningFromEnv(&t)

	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("invalid tuning profile %s: %w", path, err)
	}
	return t, nil
}

// TuningFromEnv overrides tuning fields from environment variables.
func TuningFromEnv(t *Tuning) {
	if v := os.Getenv("DYNARRAY_BOOTSTRAP_CAPACITY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			t.BootstrapCapacity = n
		}
	}
	if v := os.Getenv("DYNARRAY_MAX_SLOTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			t.MaxSlots = n
		}
	}
}
