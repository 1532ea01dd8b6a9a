package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"

	"peakline/internal/score"
)

// LoadTuning resolves the engine tuning. An empty path means the default
// location under the config directory. A missing file is not an error:
// the engine defaults apply. A file that exists but does not parse or
// validate is fatal, so a bad tuning never reaches the scoring path.
func LoadTuning(path string) (score.Tuning, error) {
	tuning := score.DefaultTuning()

	if path == "" {
		dir, err := GetConfigDir()
		if err != nil {
			return score.Tuning{}, err
		}
		path = filepath.Join(dir, "tuning.yaml")
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return tuning, nil
		}
	}

	// cleanenv overlays the file and any PLS_* environment variables
	// onto the defaults.
	if err := cleanenv.ReadConfig(path, &tuning); err != nil {
		return score.Tuning{}, fmt.Errorf("reading tuning file %s: %w", path, err)
	}

	if err := tuning.Validate(); err != nil {
		return score.Tuning{}, fmt.Errorf("invalid tuning in %s: %w", path, err)
	}

	return tuning, nil
}

// WriteExampleTuning writes the engine defaults as a starting point for
// tuning, unless the file already exists.
func WriteExampleTuning(path string) error {
	if path == "" {
		dir, err := GetConfigDir()
		if err != nil {
			return err
		}
		path = filepath.Join(dir, "tuning.yaml")
	}

	if _, err := os.Stat(path); err == nil {
		return nil // don't overwrite an existing tuning file
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating tuning directory: %w", err)
	}

	data, err := yaml.Marshal(score.DefaultTuning())
	if err != nil {
		return fmt.Errorf("encoding tuning: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing tuning file: %w", err)
	}

	return nil
}
