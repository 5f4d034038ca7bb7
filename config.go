package main

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/kirsle/configdir"

	log "chiproll/logger"
	"chiproll/roll"
)

type Config struct {
	Display DisplayConfig `toml:"display"`
}

type DisplayConfig struct {
	RollSeconds float64 `toml:"roll_seconds"`
	OctaveLow   int     `toml:"octave_low"`
	OctaveHigh  int     `toml:"octave_high"`
}

func defaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			RollSeconds: roll.DefaultRollSeconds,
			OctaveLow:   roll.DefaultOctaveLow,
			OctaveHigh:  roll.DefaultOctaveHigh,
		},
	}
}

var configDir string = sync.OnceValue(func() string {
	dir := configdir.LocalConfig("chiproll")
	if err := configdir.MakePath(dir); err != nil {
		log.ModApp.Fatalf("failed to create directory %s: %v", dir, err)
	}
	return dir
})()

const cfgFilename = "config.toml"

// loadConfigOrDefault loads the configuration from the chiproll
// config directory, or provides a default one.
func loadConfigOrDefault() Config {
	var cfg Config
	if _, err := toml.DecodeFile(filepath.Join(configDir, cfgFilename), &cfg); err != nil {
		return defaultConfig()
	}
	return cfg
}

// saveConfig into the chiproll config directory.
func saveConfig(cfg Config) error {
	buf, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(configDir, cfgFilename), buf, 0644)
}

// applyConfig pushes the display settings onto the tracker, falling
// back to defaults for nonsense values.
func applyConfig(cfg Config, tr *roll.Tracker) {
	if err := tr.SetRollSeconds(cfg.Display.RollSeconds); err != nil {
		log.ModApp.Warnf("config: %v", err)
	}
	if err := tr.SetOctaveRange(cfg.Display.OctaveLow, cfg.Display.OctaveHigh); err != nil {
		log.ModApp.Warnf("config: %v", err)
	}
}

// snapshotConfig reads the (possibly adjusted) display settings back
// from the tracker for saving.
func snapshotConfig(tr *roll.Tracker) Config {
	var cfg Config
	cfg.Display.RollSeconds = tr.RollSeconds()
	cfg.Display.OctaveLow, cfg.Display.OctaveHigh = tr.OctaveRange()
	return cfg
}
