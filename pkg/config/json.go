package config

import (
	"bytes"
	"encoding/json"
	"errors"
)

var errNotObject = errors.New("configuration must be a JSON object")

// unmarshalJSONObject decodes data into dst and rejects documents whose
// top-level value is not an object.
func unmarshalJSONObject(data []byte, dst *map[string]any) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		if err := json.Unmarshal(trimmed, new(any)); err != nil {
			return err
		}
		return errNotObject
	}
	return json.Unmarshal(trimmed, dst)
}
