package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestRead(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}

	if err := os.WriteFile(logPath, []byte(content.String()), 0644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{name: "read all (0)", maxLines: 0, expected: expectedAll},
		{name: "read all (negative)", maxLines: -1, expected: expectedAll},
		{name: "read partial (5)", maxLines: 5, expected: expectedAll[5:]},
		{name: "read exactly all (10)", maxLines: 10, expected: expectedAll},
		{name: "read more than exists (20)", maxLines: 20, expected: expectedAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestReadMissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "nope.log"), 10)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got != nil {
		t.Fatalf("Read() = %v, want nil", got)
	}
}

func TestParse(t *testing.T) {
	line := `{"level":"info","ts":"2024-03-01T12:30:45.000Z","msg":"summary applied","generation":3,"code":"US"}`

	entry := Parse(line)
	if entry.Raw != "" {
		t.Fatalf("Raw = %q, want empty", entry.Raw)
	}
	if entry.Level != "INFO" {
		t.Errorf("Level = %q, want INFO", entry.Level)
	}
	if entry.Message != "summary applied" {
		t.Errorf("Message = %q", entry.Message)
	}
	want := time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC)
	if !entry.Time.Equal(want) {
		t.Errorf("Time = %v, want %v", entry.Time, want)
	}
	wantFields := []Field{{Key: "code", Value: "US"}, {Key: "generation", Value: "3"}}
	if !reflect.DeepEqual(entry.Fields, wantFields) {
		t.Errorf("Fields = %v, want %v", entry.Fields, wantFields)
	}
}

func TestParseNonJSON(t *testing.T) {
	for _, line := range []string{"plain text", "[1,2,3]", ""} {
		entry := Parse(line)
		if entry.String() != line {
			t.Errorf("Parse(%q).String() = %q", line, entry.String())
		}
	}
}

func TestEntryString(t *testing.T) {
	entry := Entry{Level: "WARN", Message: "history fetch failed", Fields: []Field{{Key: "error", Value: "boom"}}}
	got := entry.String()
	want := "WARN  history fetch failed error=boom"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
