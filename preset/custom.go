package preset

import (
	"encoding/json"
	"fmt"
	"os"

	"drumrack/kit"
)

type customPad struct {
	MidiNote   *int   `json:"midiNote"`
	SamplePath string `json:"samplePath"`
	SampleName string `json:"sampleName"`
}

type customPreset struct {
	Name string      `json:"name"`
	Pads []customPad `json:"pads"`
}

// LoadCustom reads a JSON preset saved by the host application:
//
//	{"name": "My Kit", "pads": [{"midiNote": 36, "samplePath": "...", "sampleName": "..."}]}
//
// Pads without a valid note are dropped. Notes are kept as stored.
func LoadCustom(path string) (kit.Kit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return kit.Kit{}, err
	}

	var p customPreset
	if err := json.Unmarshal(data, &p); err != nil {
		return kit.Kit{}, fmt.Errorf("custom preset %s: %w", path, err)
	}

	k := kit.Kit{
		Name:       p.Name,
		SourceFile: path,
	}
	if k.Name == "" {
		k.Name = "Custom"
	}

	for _, pad := range p.Pads {
		if pad.MidiNote == nil || *pad.MidiNote < 0 || *pad.MidiNote > 127 {
			continue
		}
		m := kit.NewMapping(uint8(*pad.MidiNote), pad.SamplePath)
		if pad.SampleName != "" {
			m.SampleName = pad.SampleName
		}
		k.Mappings = append(k.Mappings, m)
	}

	return k, nil
}
