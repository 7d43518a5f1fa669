package backendprotocol

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Ref models upstream fields that arrive either as a bare identifier string
// or as the expanded record (Mongo populate). The variant is resolved once
// here, during decode; callers use ID/Record instead of re-inspecting JSON.
type Ref[T any] struct {
	id     string
	record *T
}

func ExpandedRef[T any](id string, record T) Ref[T] {
	return Ref[T]{id: id, record: &record}
}

func UnexpandedRef[T any](id string) Ref[T] {
	return Ref[T]{id: id}
}

func (r Ref[T]) ID() string {
	return r.id
}

func (r Ref[T]) IsExpanded() bool {
	return r.record != nil
}

func (r Ref[T]) Record() (T, bool) {
	if r.record == nil {
		var zero T
		return zero, false
	}
	return *r.record, true
}

func (r Ref[T]) IsZero() bool {
	return r.id == "" && r.record == nil
}

func (r *Ref[T]) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*r = Ref[T]{}
		return nil
	}
	if trimmed[0] == '"' {
		var id string
		if err := json.Unmarshal(trimmed, &id); err != nil {
			return fmt.Errorf("ref id decode failed: %w", err)
		}
		*r = Ref[T]{id: id}
		return nil
	}
	var record T
	if err := json.Unmarshal(trimmed, &record); err != nil {
		return fmt.Errorf("ref record decode failed: %w", err)
	}
	var probe struct {
		ID string `json:"_id"`
	}
	if err := json.Unmarshal(trimmed, &probe); err != nil {
		return fmt.Errorf("ref record id decode failed: %w", err)
	}
	*r = Ref[T]{id: probe.ID, record: &record}
	return nil
}

func (r Ref[T]) MarshalJSON() ([]byte, error) {
	if r.record != nil {
		return json.Marshal(r.record) //nolint:wrapcheck // unnecessary
	}
	if r.id == "" {
		return []byte("null"), nil
	}
	return json.Marshal(r.id) //nolint:wrapcheck // unnecessary
}
