package render

import (
	"encoding/json"

	"github.com/dkoosis/flagwave/pkg/flags"
)

// JSON renders flags as structured JSON for automation.
type JSON struct{}

// NewJSON creates a JSON renderer.
func NewJSON() *JSON {
	return &JSON{}
}

type jsonOutput struct {
	Version              string     `json:"version"`
	RotationDelaySeconds int        `json:"rotation_delay_seconds"`
	ShowFlagName         bool       `json:"show_flag_name"`
	ShowColorNames       bool       `json:"show_color_names"`
	Flags                []jsonFlag `json:"flags"`
}

type jsonFlag struct {
	Name    string      `json:"name"`
	JumpKey string      `json:"jump_key,omitempty"`
	Colors  []jsonColor `json:"colors"`
}

type jsonColor struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
	R    uint8  `json:"r"`
	G    uint8  `json:"g"`
	B    uint8  `json:"b"`
}

// Render formats all flags as JSON.
func (j *JSON) Render(cfg *flags.Config) string {
	out := jsonOutput{
		Version:              "1",
		RotationDelaySeconds: cfg.RotationDelaySeconds,
		ShowFlagName:         cfg.ShowFlagName,
		ShowColorNames:       cfg.ShowColorNames,
		Flags:                make([]jsonFlag, 0, len(cfg.Flags)),
	}
	for i, f := range cfg.Flags {
		jf := jsonFlag{Name: f.Name, Colors: make([]jsonColor, 0, len(f.Colors))}
		if i < len(cfg.JumpKeys) {
			jf.JumpKey = cfg.JumpKeys[i]
		}
		for _, c := range f.Colors {
			jf.Colors = append(jf.Colors, jsonColor{Name: c.Name, Hex: c.Hex(), R: c.R, G: c.G, B: c.B})
		}
		out.Flags = append(out.Flags, jf)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		errJSON, _ := json.Marshal(map[string]string{"error": err.Error()})
		return string(errJSON)
	}
	return string(data) + "\n"
}
