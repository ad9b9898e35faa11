// Package visibility holds the legend state of a chart: which participant
// lines are hidden. Map has value semantics; every mutator returns a new map
// and leaves its receiver untouched, so a map handed to a reader is never
// changed underneath it.
package visibility

// Map maps a participant id to its hidden flag
type Map map[string]bool

// Clone returns a copy of m. Cloning a nil map yields an empty map.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for id, hidden := range m {
		out[id] = hidden
	}
	return out
}

// Hidden reports whether the participant's line is hidden. Unknown ids are visible.
func (m Map) Hidden(participantID string) bool {
	return m[participantID]
}

// Missing returns the ids that have no entry in m, deduplicated, in input order
func (m Map) Missing(ids []string) []string {
	missing := []string{}
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := m[id]; ok {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		missing = append(missing, id)
	}
	return missing
}

// Merge returns a copy of m where every id without an entry is inserted as visible
func (m Map) Merge(ids []string) Map {
	out := m.Clone()
	for _, id := range ids {
		if _, ok := out[id]; !ok {
			out[id] = false
		}
	}
	return out
}

// Toggle returns a copy of m with the participant's flag flipped.
// An absent id is treated as visible, so it becomes hidden.
func (m Map) Toggle(participantID string) Map {
	out := m.Clone()
	out[participantID] = !out[participantID]
	return out
}
