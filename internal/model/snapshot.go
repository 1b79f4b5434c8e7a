package model

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Snapshot is one screen's worth of enumerated fields, as captured by the
// platform integration. Snapshots are accepted in YAML or JSON.
type Snapshot struct {
	App     string  `yaml:"app,omitempty"     json:"app,omitempty"`
	Package string  `yaml:"package,omitempty" json:"package,omitempty"`
	TS      int64   `yaml:"ts,omitempty"      json:"ts,omitempty"`
	Fields  []Field `yaml:"fields"            json:"fields"`
}

// ParseSnapshot decodes a snapshot from YAML or JSON, sniffing the format
// from the first non-space byte. Unknown field types degrade to "other";
// only undecodable input is an error.
func ParseSnapshot(data []byte) (*Snapshot, error) {
	var snap Snapshot
	if trimmed := bytes.TrimLeft(data, " \t\r\n"); len(trimmed) > 0 && trimmed[0] == '{' {
		if err := json.Unmarshal(data, &snap); err != nil {
			return nil, fmt.Errorf("json decode: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &snap); err != nil {
			return nil, fmt.Errorf("yaml decode: %w", err)
		}
	}
	for i := range snap.Fields {
		snap.Fields[i].Type = ParseFieldType(string(snap.Fields[i].Type))
	}
	return &snap, nil
}
