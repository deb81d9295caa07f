package main

import "testing"

func TestModeID(t *testing.T) {
	tests := []struct {
		in       string
		expected string
		wantErr  bool
	}{
		{"campaign", "glowbreak", false},
		{"Endless", "glowbreak_endless", false},
		{"glowbreak_endless", "glowbreak_endless", false},
		{"snake", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := modeID(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("modeID(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.expected {
				t.Errorf("modeID(%q) = %q, expected %q", tt.in, got, tt.expected)
			}
		})
	}
}

func TestPortOf(t *testing.T) {
	tests := map[string]string{
		":23234":         "23234",
		"0.0.0.0:2222":   "2222",
		"[::1]:2200":     "2200",
		"not-an-address": "not-an-address",
	}
	for in, expected := range tests {
		if got := portOf(in); got != expected {
			t.Errorf("portOf(%q) = %q, expected %q", in, got, expected)
		}
	}
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/player")
	if got := expandHome("~/.glowbreak/glowbreak.db"); got != "/home/player/.glowbreak/glowbreak.db" {
		t.Errorf("expandHome() = %q", got)
	}
	if got := expandHome("./local.db"); got != "./local.db" {
		t.Errorf("expandHome() = %q, expected the path unchanged", got)
	}
}
