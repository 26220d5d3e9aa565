package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"nmea-hub/internal/nmea"
)

type Config struct {
	GPS GPSConfig `yaml:"gps"`
	UDP UDPConfig `yaml:"udp"`
	PPS PPSConfig `yaml:"pps"`
}

type GPSConfig struct {
	Enable bool `yaml:"enable"`

	// Source selects how sentences are ingested: "serial" (direct from a
	// tty) or "tcp" (a socket feed, e.g. a multiplexer exporting raw
	// NMEA). When empty, defaults to "serial".
	Source string `yaml:"source"`

	// Device is the serial device path for source=serial. Empty means
	// auto-detect.
	Device string `yaml:"device"`
	Baud   int    `yaml:"baud"`

	// Addr is host:port for source=tcp.
	Addr string `yaml:"addr"`

	// Required lists the three-letter message IDs that must all be seen
	// within one receiver tick before a fix is reported, e.g. [GGA, RMC].
	Required []string `yaml:"required"`
}

type UDPConfig struct {
	Enable   bool          `yaml:"enable"`
	Dest     string        `yaml:"dest"`
	Interval time.Duration `yaml:"interval"`
}

type PPSConfig struct {
	Enable bool `yaml:"enable"`
	Pin    int  `yaml:"pin"`
}

func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, err
	}

	src := strings.ToLower(strings.TrimSpace(cfg.GPS.Source))
	if src == "" {
		src = "serial"
	}
	if src != "serial" && src != "tcp" {
		return Config{}, fmt.Errorf("gps.source must be 'serial' or 'tcp'")
	}
	cfg.GPS.Source = src

	if src == "tcp" && strings.TrimSpace(cfg.GPS.Addr) == "" {
		return Config{}, fmt.Errorf("gps.addr is required when gps.source is 'tcp'")
	}
	if cfg.GPS.Baud == 0 {
		cfg.GPS.Baud = 9600
	}
	if cfg.GPS.Baud < 0 {
		return Config{}, fmt.Errorf("gps.baud must be > 0")
	}

	if len(cfg.GPS.Required) == 0 {
		cfg.GPS.Required = []string{"RMC"}
	}
	for i, name := range cfg.GPS.Required {
		id := strings.ToUpper(strings.TrimSpace(name))
		if nmea.SentenceTypeOf(id) == nmea.TypeUnknown {
			return Config{}, fmt.Errorf("gps.required: unknown sentence id %q", name)
		}
		cfg.GPS.Required[i] = id
	}

	if cfg.UDP.Enable && strings.TrimSpace(cfg.UDP.Dest) == "" {
		return Config{}, fmt.Errorf("udp.dest is required when udp.enable is true")
	}
	if cfg.UDP.Interval <= 0 {
		cfg.UDP.Interval = 1 * time.Second
	}

	if cfg.PPS.Enable && cfg.PPS.Pin <= 0 {
		return Config{}, fmt.Errorf("pps.pin is required when pps.enable is true")
	}

	return cfg, nil
}

// RequiredTypes maps the validated gps.required IDs to sentence types.
func (c GPSConfig) RequiredTypes() []nmea.SentenceType {
	out := make([]nmea.SentenceType, 0, len(c.Required))
	for _, name := range c.Required {
		out = append(out, nmea.SentenceTypeOf(name))
	}
	return out
}
