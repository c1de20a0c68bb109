package report

import (
	"bytes"
	"encoding/json"
)

// Mapping is an insertion-ordered association from region id to resolved code
type Mapping struct {
	keys   []string
	values map[string]string
}

// NewMapping returns an empty mapping sized for n entries
func NewMapping(n int) *Mapping {
	return &Mapping{
		keys:   make([]string, 0, n),
		values: make(map[string]string, n),
	}
}

// Add inserts id -> code. An existing id is never overwritten; Add reports
// whether the entry was inserted.
func (m *Mapping) Add(id, code string) bool {
	if _, exists := m.values[id]; exists {
		return false
	}
	m.keys = append(m.keys, id)
	m.values[id] = code
	return true
}

// Get returns the code stored for id
func (m *Mapping) Get(id string) (string, bool) {
	code, ok := m.values[id]
	return code, ok
}

// Keys returns the ids in insertion order
func (m *Mapping) Keys() []string {
	return append([]string(nil), m.keys...)
}

// Len returns the number of entries
func (m *Mapping) Len() int {
	return len(m.keys)
}

// MarshalJSON encodes the mapping as an object whose keys keep insertion order
func (m *Mapping) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeString(&buf, key); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeString(&buf, m.values[key]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encode terminates every value with a newline
	buf.Truncate(buf.Len() - 1)
	return nil
}
