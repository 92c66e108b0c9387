package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Profile is the user's stored data, supplied by the storage collaborator as
// an opaque nested document. The engine reads it and never writes back. It
// must tolerate missing sub-objects and legacy shapes (flat keys, singular
// "experience" instead of "experiences").
type Profile map[string]any

// ParseProfile decodes a JSON document into a Profile.
func ParseProfile(data []byte) (Profile, error) {
	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	return p, nil
}

// Empty reports whether the profile carries no data at all.
func (p Profile) Empty() bool {
	return len(p) == 0
}

// Get walks a dotted path into the profile. Path segments index maps by key
// and arrays by decimal position ("professional.experiences.0.jobTitle").
// A miss at any segment returns (nil, false).
func (p Profile) Get(path string) (any, bool) {
	var cur any = map[string]any(p)
	for _, seg := range strings.Split(path, ".") {
		switch node := cur.(type) {
		case map[string]any:
			next, ok := node[seg]
			if !ok {
				return nil, false
			}
			cur = next
		case []any:
			idx, err := strconv.Atoi(seg)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, false
			}
			cur = node[idx]
		default:
			return nil, false
		}
	}
	return cur, true
}

// Experiences returns the job-experience entries, accepting both the
// canonical "professional.experiences" array and the legacy singular
// "professional.experience" object.
func (p Profile) Experiences() []map[string]any {
	if v, ok := p.Get("professional.experiences"); ok {
		if arr, ok := v.([]any); ok {
			out := make([]map[string]any, 0, len(arr))
			for _, e := range arr {
				if m, ok := e.(map[string]any); ok {
					out = append(out, m)
				}
			}
			return out
		}
	}
	if v, ok := p.Get("professional.experience"); ok {
		if m, ok := v.(map[string]any); ok {
			return []map[string]any{m}
		}
	}
	return nil
}
