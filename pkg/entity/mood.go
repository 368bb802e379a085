package entity

import (
	"fmt"
	"strings"
)

// MoodLevel is ordered: the numeric value is the ordinal used for averaging.
type MoodLevel int

const (
	// MoodNone means "no data", it is never stored
	MoodNone MoodLevel = iota
	MoodTerrible
	MoodPoor
	MoodOkay
	MoodGood
	MoodExcellent
)

var MoodLevels = []MoodLevel{MoodTerrible, MoodPoor, MoodOkay, MoodGood, MoodExcellent}

var moodNames = map[MoodLevel]string{
	MoodNone:      "none",
	MoodTerrible:  "terrible",
	MoodPoor:      "poor",
	MoodOkay:      "okay",
	MoodGood:      "good",
	MoodExcellent: "excellent",
}

func (m MoodLevel) Valid() bool {
	return m >= MoodTerrible && m <= MoodExcellent
}

func (m MoodLevel) String() string {
	if name, ok := moodNames[m]; ok {
		return name
	}
	return fmt.Sprintf("mood(%d)", int(m))
}

// Label is the capitalized form shown on stats cards
func (m MoodLevel) Label() string {
	if !m.Valid() {
		return "No data"
	}
	name := moodNames[m]
	return strings.ToUpper(name[:1]) + name[1:]
}

func ParseMoodLevel(s string) (MoodLevel, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for level, name := range moodNames {
		if level != MoodNone && name == s {
			return level, nil
		}
	}
	return MoodNone, fmt.Errorf("unknown mood level %q", s)
}

func (m MoodLevel) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *MoodLevel) UnmarshalText(text []byte) error {
	level, err := ParseMoodLevel(string(text))
	if err != nil {
		return err
	}
	*m = level
	return nil
}
