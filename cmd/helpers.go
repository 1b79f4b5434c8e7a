package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fieldsense/fieldsense/internal/model"
	"github.com/fieldsense/fieldsense/internal/session"
	"gopkg.in/yaml.v3"
)

// loadSnapshot reads a field snapshot from the given path, or from stdin
// when path is "-".
func loadSnapshot(path string) (*model.Snapshot, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	snap, err := model.ParseSnapshot(data)
	if err != nil {
		return nil, fmt.Errorf("parse snapshot %s: %w", path, err)
	}
	return snap, nil
}

// loadState populates the store from a YAML session-state file. A missing
// file is not an error: the first step of a flow starts from empty state.
func loadState(store *session.Store, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read state: %w", err)
	}
	var sessions map[string]session.Record
	if err := yaml.Unmarshal(data, &sessions); err != nil {
		return fmt.Errorf("parse state %s: %w", path, err)
	}
	store.Import(sessions)
	return nil
}

// saveState writes the store's sessions back to the YAML state file.
func saveState(store *session.Store, path string) error {
	data, err := yaml.Marshal(store.Export())
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	return nil
}

// StringParam extracts a string value from an MCP tool argument map.
func StringParam(params map[string]interface{}, key, def string) string {
	if v, ok := params[key].(string); ok {
		return v
	}
	return def
}

// BoolParam extracts a bool value from an MCP tool argument map.
func BoolParam(params map[string]interface{}, key string, def bool) bool {
	if v, ok := params[key].(bool); ok {
		return v
	}
	return def
}
