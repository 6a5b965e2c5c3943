package cliutil

import (
	"bytes"
	"testing"
)

func TestDisplayWidth(t *testing.T) {
	tests := []struct {
		s    string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"pets", 4},
		{"日本語", 6},
		{"a日b", 4},
	}

	for _, tt := range tests {
		if got := DisplayWidth(tt.s); got != tt.want {
			t.Errorf("DisplayWidth(%q) = %d, want %d", tt.s, got, tt.want)
		}
	}
}

func TestWriteTable_AlignsColumnsByDisplayWidth(t *testing.T) {
	var buf bytes.Buffer
	WriteTable(&buf, []Row{
		{Name: "pets", Status: "PASS"},
		{Name: "日本語", Status: "FAIL", Detail: "1/2 file(s) differ"},
	})

	want := "PASS  pets  \n" + "FAIL  日本語  1/2 file(s) differ\n"
	if got := buf.String(); got != want {
		t.Errorf("WriteTable() = %q, want %q", got, want)
	}
}

func TestWriteTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	WriteTable(&buf, nil)
	if got := buf.String(); got != "" {
		t.Errorf("WriteTable(nil) = %q, want empty", got)
	}
}
