package layout

import (
	"encoding/json"
	"os"
)

// WriteDebugJSON dumps a recorded draw command stream as JSON for
// debugging or visualization.
func WriteDebugJSON(rec *Recorder, path string) error {
	if rec == nil {
		return nil
	}
	data, err := json.MarshalIndent(rec.Ops, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
