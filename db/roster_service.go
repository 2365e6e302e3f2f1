package db

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/xuri/excelize/v2"
	"rollcall-roster-go/models"
)

const sheetName = "Students"

var excelHeader = []interface{}{"ID", "Name", "Grade"}

// RosterService guards a Roster with a single mutex so it can be shared by HTTP handlers
type RosterService struct {
	mu       sync.Mutex
	roster   *Roster
	metrics  *rosterMetrics
	Registry *prometheus.Registry
}

// NewRosterService creates a RosterService around roster.
// A nil roster starts the service empty.
func NewRosterService(roster *Roster) *RosterService {
	if roster == nil {
		roster = NewRoster()
	}
	reg := prometheus.NewRegistry()
	s := &RosterService{
		roster:   roster,
		metrics:  newRosterMetrics(reg),
		Registry: reg,
	}
	s.metrics.capacity.Set(float64(roster.Cap()))
	s.metrics.students.Set(float64(roster.Len()))
	return s
}

// --- Student Operations ---

// AddStudent inserts a student, returning ErrRosterFull when there is no room
func (s *RosterService) AddStudent(student models.Student) error {
	if !student.Grade.Valid() {
		return fmt.Errorf("invalid grade for student %d", student.ID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertLocked(student)
}

func (s *RosterService) insertLocked(student models.Student) error {
	if err := s.roster.Insert(student.ID, student.Name, student.Grade); err != nil {
		if errors.Is(err, ErrRosterFull) {
			s.metrics.rejected.Inc()
		}
		return err
	}
	s.metrics.students.Set(float64(s.roster.Len()))
	return nil
}

// GetStudentByID returns a copy of the first student with the given ID, or nil if not found
func (s *RosterService) GetStudentByID(id int) *models.Student {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := s.roster.FindByID(id)
	if found == nil {
		return nil // Not found
	}
	student := *found
	return &student
}

// GetAllStudents returns every student in insertion order
func (s *RosterService) GetAllStudents() []models.Student {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roster.Students()
}

// Render returns the text rendering of the whole roster
func (s *RosterService) Render() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return RenderAll(s.roster)
}

// Stats returns the occupied count and the capacity
func (s *RosterService) Stats() (count, capacity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roster.Len(), s.roster.Cap()
}

// --- Excel Import / Export ---

// ImportStudentsFromExcel reads an Excel file stream and adds its students to the roster.
// The first sheet is used; row 1 is a header and columns are ID, Name, Grade.
// Import stops at the first full-roster failure and returns the count added so far.
func (s *RosterService) ImportStudentsFromExcel(file io.Reader) (int, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		log.Printf("Error opening Excel reader: %v", err)
		return 0, fmt.Errorf("failed to open excel file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("Error closing excel file: %v", err)
		}
	}()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return 0, errors.New("excel file does not contain any sheets")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		log.Printf("Error getting rows from sheet '%s': %v", sheet, err)
		return 0, fmt.Errorf("failed to get rows from sheet %s: %w", sheet, err)
	}

	studentsToAdd := []models.Student{}
	for i, row := range rows {
		if i == 0 {
			continue // Skip header row
		}

		student, err := parseStudentRow(row)
		if err != nil {
			log.Printf("Skipping row %d: %v", i+1, err)
			continue
		}
		studentsToAdd = append(studentsToAdd, student)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	importedCount := 0
	for _, student := range studentsToAdd {
		if err := s.insertLocked(student); err != nil {
			log.Printf("Import stopped at student %d (%s): %v", student.ID, student.Name, err)
			return importedCount, fmt.Errorf("imported %d of %d students: %w", importedCount, len(studentsToAdd), err)
		}
		importedCount++
	}

	log.Printf("Successfully imported %d students", importedCount)
	return importedCount, nil
}

func parseStudentRow(row []string) (models.Student, error) {
	var rawID, name, rawGrade string
	if len(row) > 0 {
		rawID = strings.TrimSpace(row[0])
	}
	if len(row) > 1 {
		name = row[1]
	}
	if len(row) > 2 {
		rawGrade = row[2]
	}

	if rawID == "" {
		return models.Student{}, errors.New("missing ID")
	}
	id, err := strconv.Atoi(rawID)
	if err != nil {
		return models.Student{}, fmt.Errorf("invalid ID %q: %w", rawID, err)
	}
	grade, err := models.ParseGrade(rawGrade)
	if err != nil {
		return models.Student{}, err
	}
	return models.Student{ID: id, Name: name, Grade: grade}, nil
}

// ExportStudentsToExcel writes the roster to w as a single-sheet workbook
func (s *RosterService) ExportStudentsToExcel(w io.Writer) error {
	students := s.GetAllStudents()

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("Error closing excel file: %v", err)
		}
	}()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	if err := f.SetSheetRow(sheetName, "A1", &excelHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, st := range students {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{st.ID, st.Name, st.Grade.String()}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write student %d: %w", st.ID, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write excel file: %w", err)
	}
	return nil
}
