// Package normalize reduces the region-from-location payloads WattTime has
// returned over time to a single region abbreviation.
package normalize

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Unknown is returned when no abbreviation can be extracted
const Unknown = "UNKNOWN"

// fieldPrecedence lists the direct fields checked on a region object
var fieldPrecedence = []string{"abbrev", "name", "id"}

// Abbrev accepts any decoded JSON value and returns the region abbreviation.
// Recognized shapes:
//
//	"PJM_DC"
//	{"region": "PJM_DC"}
//	{"region": {"abbrev": "PJM_DC", "name": "...", "id": "..."}}
//	{"abbrev": "...", "name": "...", "id": "..."}
//
// Anything else yields Unknown. Abbrev never fails.
func Abbrev(raw any) string {
	switch v := raw.(type) {
	case string:
		return fromString(v)
	case map[string]any:
		inner, ok := v["region"]
		if !ok {
			return fromFields(v)
		}
		switch iv := inner.(type) {
		case string:
			return fromString(iv)
		case map[string]any:
			return fromFields(iv)
		}
	}
	return Unknown
}

func fromString(s string) string {
	if s = strings.TrimSpace(s); s != "" {
		return s
	}
	return Unknown
}

func fromFields(m map[string]any) string {
	for _, key := range fieldPrecedence {
		if s, ok := scalar(m[key]); ok {
			return s
		}
	}
	return Unknown
}

// scalar renders a non-empty string or number field
func scalar(v any) (string, bool) {
	var s string
	switch tv := v.(type) {
	case string:
		s = strings.TrimSpace(tv)
	case json.Number:
		s = tv.String()
	case float64:
		s = strconv.FormatFloat(tv, 'f', -1, 64)
	case int:
		s = strconv.Itoa(tv)
	case int64:
		s = strconv.FormatInt(tv, 10)
	}
	return s, s != ""
}
