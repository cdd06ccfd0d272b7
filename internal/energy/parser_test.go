package energy

import (
	"errors"
	"strings"
	"testing"
)

func TestParseCSV_HappyPath(t *testing.T) {
	csv := strings.Join([]string{
		"Date,KWh_Consumed,Branch",
		"2025-01-01,12.5,Main",
		"2025-01-02,13.0,",
		"2025-01-03,11.2,Depot",
	}, "\n")

	rows, skipped, err := ParseCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if skipped != 0 {
		t.Fatalf("skipped = %d, want 0", skipped)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}

	if rows[0].Date != "2025-01-01" || rows[0].KWh != 12.5 || rows[0].BranchName != "Main" {
		t.Errorf("row 0 = %+v", rows[0])
	}
	if rows[1].BranchName != "" {
		t.Errorf("row 1 branch = %q, want empty", rows[1].BranchName)
	}
	if rows[0].PeriodType != "daily" {
		t.Errorf("period defaulted to %q, want daily", rows[0].PeriodType)
	}
}

func TestParseCSV_HeaderMatchingIsFlexible(t *testing.T) {
	csv := "DATE,Consumption\n2025/06/01,9.9\n"

	rows, _, err := ParseCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0].Date != "2025-06-01" {
		t.Errorf("date normalized to %q, want 2025-06-01", rows[0].Date)
	}
}

func TestParseCSV_MissingRequiredColumnRejectsUpload(t *testing.T) {
	cases := []string{
		"Date,Branch\n2025-01-01,Main\n",    // no kWh column
		"KWh,Branch\n12.5,Main\n",           // no date column
		"",                                  // empty file
	}
	for _, c := range cases {
		_, _, err := ParseCSV(strings.NewReader(c))
		if !errors.Is(err, ErrMissingColumns) {
			t.Errorf("input %q: err = %v, want ErrMissingColumns", c, err)
		}
	}
}

func TestParseCSV_MalformedRowsAreSkippedNotFatal(t *testing.T) {
	csv := strings.Join([]string{
		"date,kwh",
		"2025-01-01,10",
		"not-a-date,11",
		"2025-01-03,not-a-number",
		"2025-01-04,12",
	}, "\n")

	rows, skipped, err := ParseCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if skipped != 2 {
		t.Fatalf("skipped = %d, want 2", skipped)
	}
}

func TestParseTable_PeriodColumnOverridesDefault(t *testing.T) {
	rows, _, err := ParseTable([][]string{
		{"date", "kwh", "period_type"},
		{"2025-01-01", "5", "weekly"},
		{"2025-01-02", "6", ""},
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if rows[0].PeriodType != "weekly" {
		t.Errorf("period = %q, want weekly", rows[0].PeriodType)
	}
	if rows[1].PeriodType != "daily" {
		t.Errorf("empty period = %q, want daily default", rows[1].PeriodType)
	}
}
