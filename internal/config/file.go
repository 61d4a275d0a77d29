package config

import (
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Level holds the tilt transform and scene geometry settings.
type Level struct {
	Gravity        float64 `yaml:"gravity"`
	MaxOffset      float64 `yaml:"max_offset"`
	BubbleRadius   float64 `yaml:"bubble_radius"`
	LevelThreshold float64 `yaml:"level_threshold"`
	StripeHeight   float64 `yaml:"stripe_height"`
}

// Serial describes a line-oriented accelerometer on a serial port.
type Serial struct {
	Path     string `yaml:"path"`
	BaudRate int    `yaml:"baud_rate"`
	DataBits int    `yaml:"data_bits"`
	StopBits int    `yaml:"stop_bits"`
	Parity   string `yaml:"parity"`
}

// BLE describes a peripheral that notifies accelerometer samples.
type BLE struct {
	Name           string `yaml:"name"`
	Address        string `yaml:"address"`
	Service        string `yaml:"service"`
	Characteristic string `yaml:"characteristic"`
}

// Source selects where tilt readings come from.
type Source struct {
	Kind   string `yaml:"kind"` // mock, stdin, serial or ble
	Serial Serial `yaml:"serial"`
	BLE    BLE    `yaml:"ble"`
}

// File is the top-level structure of levelkit.yaml.
type File struct {
	Level  Level  `yaml:"level"`
	Source Source `yaml:"source"`
}

// Default returns a File with every field set to its built-in default.
func Default() *File {
	f := &File{}
	f.Normalize()
	return f
}

// Load reads and parses a YAML config file and fills unset fields with defaults.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	f.Normalize()
	return &f, nil
}

// Normalize applies defaults for zero-valued fields. Non-positive and
// non-finite level settings are replaced by their defaults as well.
func (f *File) Normalize() {
	f.Level.Gravity = positive(f.Level.Gravity, Gravity)
	f.Level.MaxOffset = positive(f.Level.MaxOffset, MaxOffset)
	f.Level.BubbleRadius = positive(f.Level.BubbleRadius, BubbleRadius)
	f.Level.LevelThreshold = positive(f.Level.LevelThreshold, LevelThreshold)
	f.Level.StripeHeight = positive(f.Level.StripeHeight, StripeHeight)

	f.Source.Kind = strings.ToLower(strings.TrimSpace(f.Source.Kind))
	if f.Source.Kind == "" {
		f.Source.Kind = "mock"
	}
	if f.Source.Serial.BaudRate <= 0 {
		f.Source.Serial.BaudRate = SerialBaud
	}
}

func positive(v, def float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return def
	}
	return v
}
