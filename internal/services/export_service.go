package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/bracurobu/traction-intake/internal/models"
)

// SheetName and Filename match the original spreadsheet the reviewers pass
// around.
const (
	SheetName = "Students"
	Filename  = "students.xlsx"
)

// applicantColumns fixes a deterministic header order for the known record
// keys. Keys not listed here (future upstream additions) are appended after
// these, sorted alphabetically.
var applicantColumns = []string{
	"student_id",
	"name",
	"semester",
	"personal_email",
	"bracu_email",
	"mobile",
	"address",
	"bio",
	"date_of_birth",
	"gender",
	"rs",
	"preferred_departments",
	"facebook_profile_link",
	"linkedin_profile_link",
	"github_profile_link",
}

// ExportService renders the in-memory record set of the dashboard into an
// .xlsx workbook. It only ever sees the currently loaded page.
type ExportService struct {
	logger *zap.Logger
}

func NewExportService(logger *zap.Logger) *ExportService {
	return &ExportService{logger: logger}
}

// RowsFromApplicants flattens records into key/value rows so the workbook can
// take the union of keys across all of them.
func RowsFromApplicants(items []models.Applicant) []map[string]any {
	rows := make([]map[string]any, 0, len(items))
	for _, a := range items {
		raw, err := json.Marshal(a)
		if err != nil {
			continue
		}
		var row map[string]any
		if err := json.Unmarshal(raw, &row); err != nil {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

// Workbook builds the spreadsheet: header row from the union of keys across
// all rows, one row per record, missing keys as empty cells, slice values
// joined with ", ". An empty input produces no file: the call logs and
// returns a nil buffer without error.
func (s *ExportService) Workbook(rows []map[string]any) (*bytes.Buffer, error) {
	if len(rows) == 0 {
		s.logger.Warn("no data provided for excel export")
		return nil, nil
	}

	headers := headerUnion(rows)

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("name sheet: %w", err)
	}

	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}

	for i, row := range rows {
		for col, h := range headers {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, fmt.Errorf("data cell: %w", err)
			}
			if err := f.SetCellValue(SheetName, cell, cellText(row[h])); err != nil {
				return nil, fmt.Errorf("write cell: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf, nil
}

// headerUnion returns every key present across the rows: known applicant
// columns first in their canonical order, then unknown keys sorted.
func headerUnion(rows []map[string]any) []string {
	present := make(map[string]bool)
	for _, row := range rows {
		for k := range row {
			present[k] = true
		}
	}

	var headers []string
	for _, k := range applicantColumns {
		if present[k] {
			headers = append(headers, k)
			delete(present, k)
		}
	}

	var extras []string
	for k := range present {
		extras = append(extras, k)
	}
	sort.Strings(extras)
	return append(headers, extras...)
}

func cellText(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			parts = append(parts, cellText(item))
		}
		return strings.Join(parts, ", ")
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}
