package metadata

import (
	"encoding/json"
	"strings"
)

// Metadata is the free-form object carried as a JSON-encoded string on
// campaigns and quests.
type Metadata map[string]any

// Raw is the wire field: a string holding encoded JSON. Any other JSON value
// decodes to a marker that Parse discards, so one bad entry never fails the
// payload it arrived in.
type Raw string

const notAString Raw = "\x00"

func (r *Raw) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*r = notAString
		return nil
	}
	*r = Raw(s)
	return nil
}

// Parse never fails: empty, malformed, or non-object input yields an empty map.
// The second return value reports whether non-empty input had to be discarded.
func Parse(r Raw) (Metadata, bool) {
	raw := strings.TrimSpace(string(r))
	if raw == "" {
		return Metadata{}, false
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(raw), &m); err != nil || m == nil {
		return Metadata{}, true
	}
	return Metadata(m), false
}

func (m Metadata) String(key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	return s
}

func (m Metadata) Category() string {
	return m.String("category")
}

// Encode is used by the static seed entries, which store metadata the same
// way the backend does.
func Encode(m Metadata) Raw {
	b, err := json.Marshal(m)
	if err != nil {
		return ""
	}
	return Raw(b)
}
