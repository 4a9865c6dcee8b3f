package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Listen     string `yaml:"listen"`
	StatHatKey string `yaml:"stathat_key"`

	// Resolver is the DNS server used to vet texture hosts; empty means the
	// system resolver.
	Resolver     string `yaml:"resolver"`
	AllowPrivate bool   `yaml:"allow_private"`

	FetchTimeout     time.Duration `yaml:"fetch_timeout"`
	RenderTimeout    time.Duration `yaml:"render_timeout"`
	MaxTextureBytes  int64         `yaml:"max_texture_bytes"`
	MaxTexturePixels int64         `yaml:"max_texture_pixels"`
	MaxScale         int           `yaml:"max_scale"`

	MojangServer  string `yaml:"mojang_server"`
	SessionServer string `yaml:"session_server"`
}

func defaultConfig() Config {
	return Config{
		Listen:           ":21333",
		Resolver:         "8.8.8.8:53",
		FetchTimeout:     10 * time.Second,
		RenderTimeout:    15 * time.Second,
		MaxTextureBytes:  1 << 20,
		MaxTexturePixels: 512 * 512,
		MaxScale:         16,
	}
}

// loadConfig reads a YAML file over cfg; keys missing from the file keep
// their current values.
func loadConfig(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

// parseConfig builds the configuration from defaults, then the file named
// by -config, then any flags given explicitly.
func parseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := defaultConfig()

	var configPath string
	flags := defaultConfig()
	fs.StringVar(&configPath, "config", "", "YAML configuration file")
	fs.StringVar(&flags.Listen, "listen", flags.Listen, "HTTP listener location")
	fs.StringVar(&flags.StatHatKey, "stathat", "", "StatHat EZ key (stats are discarded if empty)")
	fs.StringVar(&flags.Resolver, "resolver", flags.Resolver, "DNS server used to resolve texture hosts, empty for the system resolver")
	fs.BoolVar(&flags.AllowPrivate, "allow-private", false, "allow fetching textures from private and loopback addresses")
	fs.DurationVar(&flags.FetchTimeout, "fetch-timeout", flags.FetchTimeout, "timeout for fetching a texture")
	fs.DurationVar(&flags.RenderTimeout, "render-timeout", flags.RenderTimeout, "how long a request waits for its portrait")
	fs.Int64Var(&flags.MaxTextureBytes, "max-texture-bytes", flags.MaxTextureBytes, "largest texture accepted, in bytes")
	fs.Int64Var(&flags.MaxTexturePixels, "max-texture-pixels", flags.MaxTexturePixels, "largest texture accepted, in decoded pixels")
	fs.IntVar(&flags.MaxScale, "max-scale", flags.MaxScale, "largest upscale factor a request may ask for")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if configPath != "" {
		if err := loadConfig(configPath, &cfg); err != nil {
			return Config{}, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "listen":
			cfg.Listen = flags.Listen
		case "stathat":
			cfg.StatHatKey = flags.StatHatKey
		case "resolver":
			cfg.Resolver = flags.Resolver
		case "allow-private":
			cfg.AllowPrivate = flags.AllowPrivate
		case "fetch-timeout":
			cfg.FetchTimeout = flags.FetchTimeout
		case "render-timeout":
			cfg.RenderTimeout = flags.RenderTimeout
		case "max-texture-bytes":
			cfg.MaxTextureBytes = flags.MaxTextureBytes
		case "max-texture-pixels":
			cfg.MaxTexturePixels = flags.MaxTexturePixels
		case "max-scale":
			cfg.MaxScale = flags.MaxScale
		}
	})

	return cfg, nil
}
