// Package types provides type definitions for the CV document and the payloads exchanged with the AI and export endpoints.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Field is a single key/value pair of a record entry
type Field struct {
	Key   string
	Value any
}

// Entry is a single item of a section: either free text or an open record.
// Record fields keep the order in which they were written.
type Entry struct {
	Text   string
	Fields []Field // nil for text entries
}

// TextEntry creates a free-text entry
func TextEntry(text string) Entry {
	return Entry{Text: text}
}

// RecordEntry creates a record entry from the given fields
func RecordEntry(fields ...Field) Entry {
	out := make([]Field, 0, len(fields))
	out = append(out, fields...)
	return Entry{Fields: out}
}

// IsRecord reports whether the entry is a key/value record
func (e Entry) IsRecord() bool {
	return e.Fields != nil
}

// Get returns the value stored under key
func (e Entry) Get(key string) (any, bool) {
	for _, f := range e.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// GetString returns the value stored under key formatted as a string, or "" when absent
func (e Entry) GetString(key string) string {
	v, ok := e.Get(key)
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// With returns a copy of the record with key set to value.
// Existing keys keep their position; new keys are appended.
func (e Entry) With(key string, value any) Entry {
	out := e.Clone()
	if out.Fields == nil {
		out.Fields = []Field{}
	}
	for i := range out.Fields {
		if out.Fields[i].Key == key {
			out.Fields[i].Value = value
			return out
		}
	}
	out.Fields = append(out.Fields, Field{Key: key, Value: value})
	return out
}

// Clone returns a deep copy of the entry
func (e Entry) Clone() Entry {
	if e.Fields == nil {
		return Entry{Text: e.Text}
	}
	fields := make([]Field, len(e.Fields))
	for i, f := range e.Fields {
		fields[i] = Field{Key: f.Key, Value: cloneValue(f.Value)}
	}
	return Entry{Fields: fields}
}

// CloneEntries deep-copies a slice of entries, preserving nil
func CloneEntries(entries []Entry) []Entry {
	if entries == nil {
		return nil
	}
	out := make([]Entry, len(entries))
	for i, e := range entries {
		out[i] = e.Clone()
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, inner := range val {
			out[k] = cloneValue(inner)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, inner := range val {
			out[i] = cloneValue(inner)
		}
		return out
	default:
		return v
	}
}

// MarshalJSON encodes text entries as JSON strings and records as objects in field order
func (e Entry) MarshalJSON() ([]byte, error) {
	if !e.IsRecord() {
		return json.Marshal(e.Text)
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range e.Fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(f.Value)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal entry field %q: %w", f.Key, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON accepts a JSON string or object; object key order is preserved
func (e *Entry) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("entry is empty")
	}

	switch data[0] {
	case '"':
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return fmt.Errorf("failed to parse text entry: %w", err)
		}
		*e = Entry{Text: text}
		return nil
	case '{':
		fields, err := decodeOrderedObject(data)
		if err != nil {
			return err
		}
		*e = Entry{Fields: fields}
		return nil
	default:
		return fmt.Errorf("entry must be a string or an object, got %s", string(data))
	}
}

func decodeOrderedObject(data []byte) ([]Field, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("failed to parse record entry: %w", err)
	}

	fields := []Field{}
	index := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to parse record entry key: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("record entry key is not a string: %v", tok)
		}

		var value any
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("failed to parse record entry field %q: %w", key, err)
		}

		// Later duplicates win, like a JSON object literal
		if i, seen := index[key]; seen {
			fields[i].Value = value
			continue
		}
		index[key] = len(fields)
		fields = append(fields, Field{Key: key, Value: value})
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("failed to parse record entry: %w", err)
	}
	return fields, nil
}
