package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestSummaryRejectsUnknownMetric(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"summary", "--metric", "vaccines"})

	err := cmd.Execute()
	if err == nil {
		t.Fatalf("Execute returned nil error")
	}
	if !strings.Contains(err.Error(), "unknown metric") {
		t.Fatalf("error = %v, want unknown metric", err)
	}
}

func TestRootRejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"extra"})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	if err := cmd.Execute(); err == nil {
		t.Fatalf("Execute returned nil error for stray argument")
	}
}

func TestSummaryFlagsDefaults(t *testing.T) {
	cmd := newRootCmd()
	summary, _, err := cmd.Find([]string{"summary"})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	for flag, want := range map[string]string{"country": "worldwide", "top": "10", "metric": "cases"} {
		f := summary.Flags().Lookup(flag)
		if f == nil {
			t.Fatalf("flag --%s missing", flag)
		}
		if f.DefValue != want {
			t.Fatalf("--%s default = %q, want %q", flag, f.DefValue, want)
		}
	}
}
