package flags

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the flags file does not exist.
var ErrConfigNotFound = errors.New("flags config not found")

// ErrEmptyConfig is returned when the flags file holds no YAML document.
var ErrEmptyConfig = errors.New("flags config is empty")

// fileConfig mirrors the YAML layout. Pointers mark required keys so a
// missing key can be told apart from a zero value.
type fileConfig struct {
	RotationDelaySeconds *int       `yaml:"rotation_delay_seconds"`
	ShowFlagName         *bool      `yaml:"show_flag_name"`
	ShowColorNames       *bool      `yaml:"show_color_names"`
	JumpKeys             []string   `yaml:"jump_keys"`
	LabelCase            string     `yaml:"label_case"`
	Flags                []fileFlag `yaml:"flags"`
}

type fileFlag struct {
	Name   string      `yaml:"name"`
	Colors []fileColor `yaml:"colors"`
}

type fileColor struct {
	Name string `yaml:"name"`
	R    *int   `yaml:"r"`
	G    *int   `yaml:"g"`
	B    *int   `yaml:"b"`
}

// Load reads and validates the flags file at path.
func Load(path string) (*Config, error) {
	// #nosec G304 -- path comes from the operator (flag, env or default)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates a flags document.
func Parse(data []byte) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var raw fileConfig
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyConfig
		}
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	cfg, verr := raw.toConfig()
	if err := cfg.Validate(); err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			verr.Problems = append(verr.Problems, ve.Problems...)
		}
	}
	if len(verr.Problems) > 0 {
		return nil, verr
	}
	return cfg, nil
}

// toConfig converts the YAML shape into a Config, recording missing keys and
// out-of-range channels on the returned ValidationError.
func (raw *fileConfig) toConfig() (*Config, *ValidationError) {
	verr := &ValidationError{}
	cfg := &Config{
		JumpKeys:  raw.JumpKeys,
		LabelCase: raw.LabelCase,
	}

	if raw.RotationDelaySeconds == nil {
		verr.add("rotation_delay_seconds is required")
	} else {
		cfg.RotationDelaySeconds = *raw.RotationDelaySeconds
	}
	if raw.ShowFlagName == nil {
		verr.add("show_flag_name is required")
	} else {
		cfg.ShowFlagName = *raw.ShowFlagName
	}
	if raw.ShowColorNames == nil {
		verr.add("show_color_names is required")
	} else {
		cfg.ShowColorNames = *raw.ShowColorNames
	}

	if cfg.JumpKeys == nil {
		cfg.JumpKeys = append([]string(nil), DefaultJumpKeys...)
	}
	if cfg.LabelCase == "" {
		cfg.LabelCase = CaseAsIs
	}

	cfg.Flags = make([]Flag, 0, len(raw.Flags))
	for i, rf := range raw.Flags {
		f := Flag{Name: rf.Name, Colors: make([]Color, 0, len(rf.Colors))}
		for j, rc := range rf.Colors {
			c := Color{Name: rc.Name}
			where := fmt.Sprintf("flags[%d].colors[%d]", i, j)
			c.R = channel(verr, where+".r", rc.R)
			c.G = channel(verr, where+".g", rc.G)
			c.B = channel(verr, where+".b", rc.B)
			f.Colors = append(f.Colors, c)
		}
		cfg.Flags = append(cfg.Flags, f)
	}
	return cfg, verr
}

func channel(verr *ValidationError, where string, v *int) uint8 {
	if v == nil {
		verr.add(where + " is required")
		return 0
	}
	if *v < 0 || *v > 255 {
		verr.add(fmt.Sprintf("%s = %d is outside 0..255", where, *v))
		return 0
	}
	return uint8(*v)
}
