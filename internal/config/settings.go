package config

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/pkg/errors"
)

type Settings struct {
	Variant    string `json:"variant"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Fullscreen bool   `json:"fullscreen"`
	TPS        int    `json:"tps"`
	// Seed fixes the random source when non-zero.
	Seed uint64 `json:"seed"`
}

func Defaults() Settings {
	return Settings{
		Variant: DefaultVariant,
		Width:   WindowWidth,
		Height:  WindowHeight,
		TPS:     DefaultTPS,
	}
}

func GetSettingsPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "locate home directory")
	}
	return filepath.Join(homeDir, ".config", "backdrop", "settings.json"), nil
}

func LoadSettings() (*Settings, error) {
	settingsPath, err := GetSettingsPath()
	if err != nil {
		return nil, err
	}
	return LoadSettingsFrom(settingsPath)
}

// LoadSettingsFrom reads settings from path, writing a default file when
// none exists. Malformed files and out-of-range values fall back to the
// defaults with a warning rather than failing.
func LoadSettingsFrom(settingsPath string) (*Settings, error) {
	defaults := Defaults()

	data, err := os.ReadFile(settingsPath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Creating default settings file at %s", settingsPath)
			if err := createDefaultSettings(settingsPath, &defaults); err != nil {
				log.Printf("Failed to create default settings file: %v", err)
			}
			return &defaults, nil
		}
		return nil, errors.Wrapf(err, "read settings %s", settingsPath)
	}

	var rawSettings map[string]interface{}
	if err := json.Unmarshal(data, &rawSettings); err != nil {
		log.Printf("Invalid settings file, using defaults: %v", err)
		return &defaults, nil
	}

	knownKeys := getKnownKeys(Settings{})
	for key := range rawSettings {
		if !knownKeys[key] {
			log.Printf("Warning: unrecognised setting key '%s' in settings file", key)
		}
	}

	settings := defaults
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Invalid settings file, using defaults: %v", err)
		return &defaults, nil
	}

	settings.validate(defaults)
	return &settings, nil
}

func (s *Settings) validate(defaults Settings) {
	if s.Width <= 0 || s.Height <= 0 {
		log.Printf("Invalid window size %dx%d, using default %dx%d",
			s.Width, s.Height, defaults.Width, defaults.Height)
		s.Width, s.Height = defaults.Width, defaults.Height
	}
	if s.TPS <= 0 || s.TPS > 240 {
		log.Printf("Invalid tps value %d, must be between 1 and 240, using default %d", s.TPS, defaults.TPS)
		s.TPS = defaults.TPS
	}
	if strings.TrimSpace(s.Variant) == "" {
		s.Variant = defaults.Variant
	}
}

func createDefaultSettings(path string, settings *Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "create settings directory")
	}
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func getKnownKeys(v interface{}) map[string]bool {
	keys := make(map[string]bool)
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if jsonTag := field.Tag.Get("json"); jsonTag != "" {
			tagName := strings.Split(jsonTag, ",")[0]
			if tagName != "-" {
				keys[tagName] = true
			}
		}
	}
	return keys
}
