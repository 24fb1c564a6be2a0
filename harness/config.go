// SPDX-License-Identifier: MIT

package harness

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/katalvlaran/facloc/uflp"
)

// DefaultTimeout is the per-run budget used by DefaultConfig.
const DefaultTimeout = 10 * time.Second

// ErrBadConfig is returned by Run for an unusable Config.
var ErrBadConfig = errors.New("harness: invalid config")

// Config controls a batch run.
//
// Workers    – maximum concurrent jobs (> 0).
// Timeout    – wall-clock budget per job, exact oracle included (> 0).
// Algorithms – engine configurations to run on every instance (non-empty).
// Exact      – optional oracle; when set, every record carries a ratio.
// Metrics    – optional Prometheus collectors.
type Config struct {
	Workers    int
	Timeout    time.Duration
	Algorithms []uflp.Options
	Exact      uflp.ExactOracle
	Metrics    *Metrics
}

// DefaultConfig runs the primal-dual engine against exact enumeration with
// one worker per CPU.
func DefaultConfig() Config {
	return Config{
		Workers:    runtime.GOMAXPROCS(0),
		Timeout:    DefaultTimeout,
		Algorithms: []uflp.Options{uflp.DefaultOptions()},
		Exact:      uflp.Enumerator{},
	}
}

func validateConfig(cfg Config) error {
	if cfg.Workers <= 0 {
		return fmt.Errorf("%w: Workers=%d", ErrBadConfig, cfg.Workers)
	}
	if cfg.Timeout <= 0 {
		return fmt.Errorf("%w: Timeout=%s", ErrBadConfig, cfg.Timeout)
	}
	if len(cfg.Algorithms) == 0 {
		return fmt.Errorf("%w: no algorithms", ErrBadConfig)
	}

	return nil
}
