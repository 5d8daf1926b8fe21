package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	flag "github.com/spf13/pflag"
)

const (
	envPrefix         = "EMFCTL_"
	defaultConfigFile = "emfctl.toml"
)

// config is the merged view of defaults, config file, environment and flags.
type config struct {
	JSON      bool
	Verbose   bool
	Quiet     bool
	BigEndian bool

	DumpHex      bool
	DumpHexBytes int
	DumpLimit    int

	InitialCapacity int
	MaxSize         int

	SwapOrder    string
	TestbedOrder string
}

// flagKeys maps command-line flags onto config keys. Flags not listed here
// are command arguments, not configuration.
var flagKeys = map[string]string{
	"json":             "output.json",
	"verbose":          "output.verbose",
	"quiet":            "output.quiet",
	"big-endian":       "input.big_endian",
	"order":            "testbed.order",
	"hex":              "dump.hex",
	"hex-bytes":        "dump.hex_bytes",
	"limit":            "dump.limit",
	"initial-capacity": "writer.initial_capacity",
	"max-size":         "writer.max_size",
	"to":               "swap.order",
}

func defaults() map[string]any {
	return map[string]any{
		"output.json":             false,
		"output.verbose":          false,
		"output.quiet":            false,
		"input.big_endian":        false,
		"dump.hex":                false,
		"dump.hex_bytes":          64,
		"dump.limit":              0,
		"writer.initial_capacity": 1 << 20,
		"writer.max_size":         0,
		"swap.order":              "big",
		"testbed.order":           "little",
	}
}

// loadConfig layers the sources in increasing priority.
func loadConfig(fset *flag.FlagSet) (config, error) {
	ko := koanf.New(".")

	if err := ko.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return config{}, err
	}

	path, explicit := defaultConfigFile, false
	if f := fset.Lookup("config"); f != nil && f.Changed {
		path, explicit = f.Value.String(), true
	}
	if explicit || fileExists(path) {
		if err := ko.Load(file.Provider(path), toml.Parser()); err != nil {
			return config{}, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	err := ko.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "__", ".")
	}), nil)
	if err != nil {
		return config{}, err
	}

	err = ko.Load(posflag.ProviderWithValue(fset, ".", ko, func(key, value string) (string, any) {
		if k, ok := flagKeys[key]; ok {
			return k, value
		}
		return "flags." + key, value
	}), nil)
	if err != nil {
		return config{}, err
	}

	cfg := config{
		JSON:            ko.Bool("output.json"),
		Verbose:         ko.Bool("output.verbose"),
		Quiet:           ko.Bool("output.quiet"),
		BigEndian:       ko.Bool("input.big_endian"),
		DumpHex:         ko.Bool("dump.hex"),
		DumpHexBytes:    ko.Int("dump.hex_bytes"),
		DumpLimit:       ko.Int("dump.limit"),
		InitialCapacity: ko.Int("writer.initial_capacity"),
		MaxSize:         ko.Int("writer.max_size"),
		SwapOrder:       strings.ToLower(ko.String("swap.order")),
		TestbedOrder:    strings.ToLower(ko.String("testbed.order")),
	}
	if cfg.DumpLimit < 0 || cfg.DumpHexBytes < 0 {
		return config{}, errors.New("dump.limit and dump.hex_bytes must not be negative")
	}
	return cfg, nil
}

// fileExists reports whether path names an existing file.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
