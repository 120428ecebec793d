package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/streamfield/config"
)

// OutputManager handles structured experiment output: a run summary CSV
// and a snapshot of the effective configuration. All methods are no-ops
// on a nil manager, so callers can thread one through unconditionally.
type OutputManager struct {
	dir string
}

// NewOutputManager creates a new output manager and initializes the output
// directory. Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &OutputManager{dir: dir}, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	configPath := filepath.Join(om.dir, "config.yaml")
	return cfg.WriteYAML(configPath)
}

// WriteRun writes the run summary to run.csv.
func (om *OutputManager) WriteRun(stats RunStats) error {
	if om == nil {
		return nil
	}

	runPath := filepath.Join(om.dir, "run.csv")
	f, err := os.Create(runPath)
	if err != nil {
		return fmt.Errorf("creating run.csv: %w", err)
	}
	defer f.Close()

	records := []RunStats{stats}
	if err := gocsv.Marshal(records, f); err != nil {
		return fmt.Errorf("writing run.csv: %w", err)
	}
	return nil
}
