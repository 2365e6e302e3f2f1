package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

const (
	Capacity      = 16 // Maximum number of students a roster can hold
	MaxNameLength = 49 // Maximum stored name length, in visible characters
)

// Grade is a student's letter grade
type Grade int

const (
	GradeA Grade = iota
	GradeB
	GradeC
	GradeD
	GradeF
)

// String returns the single-letter form of the grade
func (g Grade) String() string {
	switch g {
	case GradeA:
		return "A"
	case GradeB:
		return "B"
	case GradeC:
		return "C"
	case GradeD:
		return "D"
	case GradeF:
		return "F"
	}
	return "?"
}

// Valid reports whether g is one of the known grades
func (g Grade) Valid() bool {
	return g.String() != "?"
}

// ParseGrade converts a letter ("A".."F", any case) into a Grade
func ParseGrade(s string) (Grade, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "A":
		return GradeA, nil
	case "B":
		return GradeB, nil
	case "C":
		return GradeC, nil
	case "D":
		return GradeD, nil
	case "F":
		return GradeF, nil
	}
	return 0, fmt.Errorf("invalid grade %q", s)
}

// MarshalJSON encodes the grade as its letter
func (g Grade) MarshalJSON() ([]byte, error) {
	if !g.Valid() {
		return nil, fmt.Errorf("invalid grade value %d", int(g))
	}
	return json.Marshal(g.String())
}

// UnmarshalJSON decodes a grade letter
func (g *Grade) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("grade must be a string: %w", err)
	}
	parsed, err := ParseGrade(s)
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// Student represents a student record
type Student struct {
	ID    int    `json:"id"`    // Student ID, not required to be unique
	Name  string `json:"name"`  // Student name, truncated to MaxNameLength on insert
	Grade Grade  `json:"grade"` // Letter grade
}
