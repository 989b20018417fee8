package importer

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// CSV column names. Files written before the action/is_milestone split carry
// milestone_text instead.
const (
	ColID             = "id"
	ColDate           = "date"
	ColStartTime      = "start_time"
	ColEndTime        = "end_time"
	ColDuration       = "duration_minutes"
	ColProjectID      = "project_id"
	ColProject        = "project"
	ColActivityTypeID = "activity_type_id"
	ColNotes          = "notes"
	ColMood           = "mood"
	ColAction         = "action"
	ColIsMilestone    = "is_milestone"
	ColMilestoneText  = "milestone_text"
)

// ExportHeader is the column order written by WriteCSV.
var ExportHeader = []string{
	ColID, ColDate, ColStartTime, ColEndTime, ColDuration,
	ColProjectID, ColProject, ColActivityTypeID, ColNotes, ColMood,
	ColAction, ColIsMilestone,
}

// columnAliases maps alternative header spellings to their canonical column.
var columnAliases = map[string]string{
	"project_name": ColProject,
	"start":        ColStartTime,
	"end":          ColEndTime,
	"note":         ColNotes,
	"activity":     ColActivityTypeID,
}

// Row is one session line of a session CSV file, as text.
type Row struct {
	Line           int
	ID             string
	Date           string
	StartTime      string
	EndTime        string
	ProjectID      string
	Project        string
	ActivityTypeID string
	Notes          string
	Mood           string
	Milestone      string
}

// File is a parsed session CSV file.
type File struct {
	Header []string
	Rows   []Row
	// Legacy is true when milestones come from the milestone_text column.
	Legacy bool
	// LeadingBlankLines counts the empty lines skipped before the header.
	LeadingBlankLines int
}

// ErrEmptyFile is returned when a file holds no header row.
var ErrEmptyFile = errors.New("csv file has no header")

// LoadCSV reads and parses a session CSV file from disk.
func LoadCSV(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening csv file: %w", err)
	}
	defer f.Close()

	parsed, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return parsed, nil
}

// ReadCSV parses session rows from r. Leading blank lines are skipped, header
// names are matched case-insensitively, and rows shorter than the header
// read missing cells as empty.
func ReadCSV(r io.Reader) (*File, error) {
	br := bufio.NewReader(r)
	skipped := 0
	var first string
	for {
		line, err := br.ReadString('\n')
		if strings.TrimSpace(line) != "" {
			first = line
			break
		}
		if err == io.EOF {
			return nil, ErrEmptyFile
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv: %w", err)
		}
		skipped++
	}

	cr := csv.NewReader(io.MultiReader(strings.NewReader(first), br))
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}
	cols := indexColumns(header)

	file := &File{Header: header, LeadingBlankLines: skipped}
	_, hasAction := cols[ColAction]
	_, hasFlag := cols[ColIsMilestone]
	_, hasText := cols[ColMilestoneText]
	split := hasAction && hasFlag
	file.Legacy = hasText && !split

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv row: %w", err)
		}
		if blankRecord(record) {
			continue
		}
		line, _ := cr.FieldPos(0)
		line += skipped
		cell := func(name string) string {
			i, ok := cols[name]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		row := Row{
			Line:           line,
			ID:             cell(ColID),
			Date:           cell(ColDate),
			StartTime:      cell(ColStartTime),
			EndTime:        cell(ColEndTime),
			ProjectID:      cell(ColProjectID),
			Project:        cell(ColProject),
			ActivityTypeID: cell(ColActivityTypeID),
			Notes:          cell(ColNotes),
			Mood:           cell(ColMood),
		}
		switch {
		case split:
			if isTruthy(cell(ColIsMilestone)) {
				row.Milestone = cell(ColAction)
			}
		case hasText:
			row.Milestone = cell(ColMilestoneText)
		}
		file.Rows = append(file.Rows, row)
	}
	return file, nil
}

func indexColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if alias, ok := columnAliases[name]; ok {
			name = alias
		}
		if _, dup := cols[name]; !dup {
			cols[name] = i
		}
	}
	return cols
}

func blankRecord(record []string) bool {
	for _, c := range record {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func isTruthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes":
		return true
	}
	return false
}
