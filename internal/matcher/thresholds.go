package matcher

import "fmt"

// Thresholds are the minimum scores a title or intent match must reach.
type Thresholds struct {
	Title  int
	Intent int
}

// Preset names.
const (
	PresetStandalone = "standalone"
	PresetDatabase   = "database"
)

var (
	// StandaloneThresholds are tuned for the small built-in tables.
	StandaloneThresholds = Thresholds{Title: 70, Intent: 50}
	// DatabaseThresholds are stricter, for larger database-backed tables.
	DatabaseThresholds = Thresholds{Title: 75, Intent: 80}
)

// PresetThresholds returns the thresholds registered under name.
func PresetThresholds(name string) (Thresholds, error) {
	switch name {
	case PresetStandalone:
		return StandaloneThresholds, nil
	case PresetDatabase:
		return DatabaseThresholds, nil
	default:
		return Thresholds{}, fmt.Errorf("unknown match preset %q", name)
	}
}

// Validate checks that both thresholds lie in [0,100].
func (t Thresholds) Validate() error {
	if t.Title < 0 || t.Title > 100 {
		return fmt.Errorf("title threshold %d out of range [0,100]", t.Title)
	}
	if t.Intent < 0 || t.Intent > 100 {
		return fmt.Errorf("intent threshold %d out of range [0,100]", t.Intent)
	}
	return nil
}
