package db

import (
	"errors"

	"github.com/rivo/uniseg"
	"rollcall-roster-go/models"
)

// ErrRosterFull is returned when an insert is attempted on a roster at capacity
var ErrRosterFull = errors.New("database is full, cannot add more students")

// Roster is a fixed-capacity, insertion-ordered collection of students.
// It has no internal locking; see RosterService for shared use.
type Roster struct {
	students [models.Capacity]models.Student
	count    int
}

// NewRoster creates an empty roster
func NewRoster() *Roster {
	return &Roster{}
}

// Insert appends a student at the next free slot.
// The name is truncated to models.MaxNameLength visible characters.
func (r *Roster) Insert(id int, name string, grade models.Grade) error {
	if r.count >= len(r.students) {
		return ErrRosterFull
	}
	r.students[r.count] = models.Student{
		ID:    id,
		Name:  TruncateName(name),
		Grade: grade,
	}
	r.count++
	return nil
}

// FindByID returns the first student with the given ID, or nil if none matches
func (r *Roster) FindByID(id int) *models.Student {
	for i := 0; i < r.count; i++ {
		if r.students[i].ID == id {
			return &r.students[i]
		}
	}
	return nil
}

// Len returns the number of occupied slots
func (r *Roster) Len() int {
	return r.count
}

// Cap returns the fixed capacity
func (r *Roster) Cap() int {
	return len(r.students)
}

// Students returns a copy of the occupied slots in insertion order
func (r *Roster) Students() []models.Student {
	return append([]models.Student(nil), r.students[:r.count]...)
}

// TruncateName cuts name down to models.MaxNameLength grapheme clusters
func TruncateName(name string) string {
	g := uniseg.NewGraphemes(name)
	n := 0
	for g.Next() {
		n++
		if n == models.MaxNameLength {
			_, end := g.Positions()
			return name[:end]
		}
	}
	return name
}
