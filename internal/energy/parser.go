package energy

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// ErrMissingColumns rejects the whole upload; it is a format error on
// the client side, not a partial-success case.
var ErrMissingColumns = errors.New("upload must contain a date column and a kWh consumption column")

// ParsedRow is one usable line from an uploaded file.
type ParsedRow struct {
	Date       string
	KWh        float64
	BranchName string
	PeriodType string
}

var dateHeaders = []string{"date", "day", "reading_date"}
var kwhHeaders = []string{"kwh_consumed", "kwh", "consumption", "usage", "kwh consumed", "energy"}
var branchHeaders = []string{"branch", "branch_name", "location"}
var periodHeaders = []string{"period_type", "period"}

const dateLayout = "2006-01-02"

// ParseTable turns raw header+data rows into records. The header row is
// matched case-insensitively; date and kWh columns are required.
// Individual rows that fail to parse are skipped, not fatal.
func ParseTable(rows [][]string) ([]ParsedRow, int, error) {
	if len(rows) == 0 {
		return nil, 0, ErrMissingColumns
	}

	dateCol := findColumn(rows[0], dateHeaders)
	kwhCol := findColumn(rows[0], kwhHeaders)
	if dateCol < 0 || kwhCol < 0 {
		return nil, 0, ErrMissingColumns
	}
	branchCol := findColumn(rows[0], branchHeaders)
	periodCol := findColumn(rows[0], periodHeaders)

	parsed := make([]ParsedRow, 0, len(rows)-1)
	skipped := 0

	for _, row := range rows[1:] {
		date, ok := cell(row, dateCol)
		if !ok {
			skipped++
			continue
		}
		date = normalizeDate(date)
		if date == "" {
			skipped++
			continue
		}

		kwhStr, ok := cell(row, kwhCol)
		if !ok {
			skipped++
			continue
		}
		kwh, err := strconv.ParseFloat(strings.TrimSpace(kwhStr), 64)
		if err != nil {
			skipped++
			continue
		}

		p := ParsedRow{Date: date, KWh: kwh, PeriodType: "daily"}
		if branchCol >= 0 {
			if v, ok := cell(row, branchCol); ok {
				p.BranchName = strings.TrimSpace(v)
			}
		}
		if periodCol >= 0 {
			if v, ok := cell(row, periodCol); ok && strings.TrimSpace(v) != "" {
				p.PeriodType = strings.TrimSpace(v)
			}
		}
		parsed = append(parsed, p)
	}

	return parsed, skipped, nil
}

// ParseCSV reads an uploaded CSV file.
func ParseCSV(r io.Reader) ([]ParsedRow, int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // tolerate ragged rows, they get skipped per-cell
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, 0, err
	}
	return ParseTable(rows)
}

// ParseXLSX reads the first sheet of an uploaded workbook.
func ParseXLSX(data []byte) ([]ParsedRow, int, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, 0, ErrMissingColumns
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, 0, err
	}
	return ParseTable(rows)
}

func findColumn(header []string, candidates []string) int {
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(h))
		for _, cand := range candidates {
			if h == cand {
				return i
			}
		}
	}
	return -1
}

func cell(row []string, col int) (string, bool) {
	if col < 0 || col >= len(row) {
		return "", false
	}
	v := strings.TrimSpace(row[col])
	if v == "" {
		return "", false
	}
	return v, true
}

// normalizeDate returns "YYYY-MM-DD" or "" when the value is unreadable.
func normalizeDate(v string) string {
	for _, layout := range []string{dateLayout, "2006/01/02", "01/02/2006"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t.Format(dateLayout)
		}
	}
	return ""
}
