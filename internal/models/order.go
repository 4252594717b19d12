package models

import (
	"encoding/json"
	"time"
)

// OrderRecord is one line of the append-only order log: a generated id, the
// creation timestamp and whatever confirmation payload the client sent back
// after the provider redirect. Payload fields are opaque passthrough.
type OrderRecord struct {
	ID        string
	CreatedAt time.Time
	Payload   map[string]any
}

// MarshalJSON flattens the payload into the record object. The generated id
// and timestamp always win over payload keys of the same name.
func (r OrderRecord) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Payload)+2)
	for k, v := range r.Payload {
		out[k] = v
	}
	out["id"] = r.ID
	out["created_at"] = r.CreatedAt.UTC().Format(time.RFC3339)
	return json.Marshal(out)
}
