package errors

import (
	"math"
	"testing"
)

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid relative", "out/graph.pdf", false},
		{"valid absolute", "/tmp/graph.pdf", false},
		{"valid with dots", "../graph.pdf", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 5000)), true},
		{"null byte", "foo\x00bar", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidPath)
			}
		})
	}
}

func TestValidatePageSize(t *testing.T) {
	tests := []struct {
		name    string
		w, h    float64
		wantErr bool
	}{
		{"letter", 612, 792, false},
		{"a4", 595, 842, false},
		{"minimum", MinPageSide, MinPageSide, false},
		{"too small", 10, 792, true},
		{"too large", 612, 20000, true},
		{"zero", 0, 0, true},
		{"nan", math.NaN(), 792, true},
		{"inf", 612, math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePageSize(tt.w, tt.h)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePageSize(%v, %v) error = %v, wantErr %v", tt.w, tt.h, err, tt.wantErr)
			}
		})
	}
}

func TestValidateAlgorithm(t *testing.T) {
	for _, name := range []string{"bfs", "DFS", "dijkstra", "none"} {
		if err := ValidateAlgorithm(name); err != nil {
			t.Errorf("ValidateAlgorithm(%q) = %v, want nil", name, err)
		}
	}
	if err := ValidateAlgorithm("astar"); err == nil {
		t.Error("ValidateAlgorithm(astar) = nil, want error")
	}
}

func TestValidateNodeIndex(t *testing.T) {
	if err := ValidateNodeIndex(0, 3); err != nil {
		t.Errorf("ValidateNodeIndex(0, 3) = %v", err)
	}
	for _, i := range []int{-1, 3, 10} {
		err := ValidateNodeIndex(i, 3)
		if !Is(err, ErrCodeIndexRange) {
			t.Errorf("ValidateNodeIndex(%d, 3) = %v, want %s", i, err, ErrCodeIndexRange)
		}
	}
}
