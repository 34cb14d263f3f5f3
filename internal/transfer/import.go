package transfer

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jeanpaul/driftnotes/internal/note"
	"github.com/jeanpaul/driftnotes/internal/store"
)

// ImportError means the payload could not be merged. Zero notes were
// imported and the store is unchanged.
type ImportError struct {
	Reason string
	Err    error
}

func (e *ImportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("import failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("import failed: %s", e.Reason)
}

func (e *ImportError) Unwrap() error { return e.Err }

// payloadSchema describes the minimum shape an import payload must
// have. Extra fields (exported_at, total_notes) are allowed and
// ignored.
var payloadSchema = map[string]any{
	"type":     "object",
	"required": []string{"notes"},
	"properties": map[string]any{
		"notes": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []string{"title", "content"},
			},
		},
	},
}

var compiledSchema = func() *gojsonschema.Schema {
	raw, err := json.Marshal(payloadSchema)
	if err != nil {
		panic(err)
	}
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		panic(err)
	}
	return s
}()

// Import merges an exported payload into the store. Every incoming
// note gets a fresh identifier (whatever ID it arrived with is
// discarded, so it cannot collide with an existing note) and an
// imported_at stamp. Notes are appended in their original order, the
// store is persisted, and the imported count is returned.
func Import(db *store.DB, st store.Store, payload []byte) (int, error) {
	result, err := compiledSchema.Validate(gojsonschema.NewBytesLoader(payload))
	if err != nil {
		return 0, &ImportError{Reason: "payload is not valid JSON", Err: err}
	}
	if !result.Valid() {
		return 0, &ImportError{Reason: firstSchemaError(result)}
	}

	var ext Export
	if err := json.Unmarshal(payload, &ext); err != nil {
		return 0, &ImportError{Reason: "payload does not decode", Err: err}
	}

	now := time.Now().Format(time.RFC3339)
	before := len(db.Notes)
	for _, n := range ext.Notes {
		n.ID = note.GenerateID()
		n.ImportedAt = now
		db.Notes = append(db.Notes, n)
	}

	if err := st.Save(db); err != nil {
		db.Notes = db.Notes[:before]
		return 0, fmt.Errorf("persisting imported notes: %w", err)
	}
	return len(ext.Notes), nil
}

func firstSchemaError(result *gojsonschema.Result) string {
	errs := result.Errors()
	if len(errs) == 0 {
		return "payload does not match the export shape"
	}
	return errs[0].String()
}
