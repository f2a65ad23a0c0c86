package domain

// TechniqueEntry is the static metadata for one focus technique.
type TechniqueEntry struct {
	ID                    TechniqueID
	Name                  string
	Description           string
	Duration              int
	BreakDuration         int
	Accommodations        []string
	SensoryConsiderations []string
}

// IsZero reports whether e is the empty value returned for unknown ids.
func (e TechniqueEntry) IsZero() bool {
	return e.ID == "" && e.Name == ""
}

// Clone returns a copy of e whose slices do not alias the original.
func (e TechniqueEntry) Clone() TechniqueEntry {
	e.Accommodations = cloneStrings(e.Accommodations)
	e.SensoryConsiderations = cloneStrings(e.SensoryConsiderations)
	return e
}

// Preferences are explicit user-stated needs that override task-type
// heuristics when suggesting a technique.
type Preferences struct {
	NeedsAccountability bool `json:"needs_accountability" yaml:"needs_accountability"`
	SensorySensitive    bool `json:"sensory_sensitive" yaml:"sensory_sensitive"`
	GetsOverwhelmed     bool `json:"gets_overwhelmed" yaml:"gets_overwhelmed"`
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
