package main

import (
	"io"
	"strings"
	"testing"
)

func TestRootCmd_Subcommands(t *testing.T) {
	root := newRootCmd()

	for _, name := range []string{"extract", "load"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered: %v", name, err)
		}
	}
	for _, flag := range []string{"config", "log-level", "sheet-id", "all-sheets", "header-policy"} {
		if root.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("persistent flag --%s not registered", flag)
		}
	}
}

func TestExtract_InvalidFormat(t *testing.T) {
	root := newRootCmd()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"extract", "--format", "xml", "program.xlsx"})
	t.Cleanup(func() { format = "json" })

	err := root.Execute()
	if err == nil || !strings.Contains(err.Error(), "invalid format") {
		t.Errorf("expected invalid format error, got %v", err)
	}
}

func TestSheetFileName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Block 1", "Block 1"},
		{"Block 2 - 5/3/1", "Block 2 - 5_3_1"},
		{`a\b:c*d?e"f<g>h|i`, "a_b_c_d_e_f_g_h_i"},
	}

	for _, tt := range tests {
		if got := sheetFileName(tt.input); got != tt.expected {
			t.Errorf("sheetFileName(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}
