package db

import (
	"fmt"
	"io"
	"strings"

	"rollcall-roster-go/models"
)

// RenderStudent formats a single student as an ID/Name/Grade block
func RenderStudent(s models.Student) string {
	return fmt.Sprintf("ID: %d\nName: %s\nGrade: %s\n", s.ID, s.Name, s.Grade)
}

// RenderAll formats every student in insertion order, each block followed by a blank line
func RenderAll(r *Roster) string {
	var b strings.Builder
	for i := 0; i < r.count; i++ {
		b.WriteString(RenderStudent(r.students[i]))
		b.WriteString("\n")
	}
	return b.String()
}

// WriteAll writes RenderAll(r) to w
func WriteAll(w io.Writer, r *Roster) error {
	if _, err := io.WriteString(w, RenderAll(r)); err != nil {
		return fmt.Errorf("failed to write roster: %w", err)
	}
	return nil
}
