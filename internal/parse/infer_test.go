package parse

import (
	"strings"
	"testing"

	"github.com/leengari/tabledom/internal/model"
)

func TestInferType(t *testing.T) {
	tests := []struct {
		name     string
		values   []string
		expected model.DataType
	}{
		{"no values", nil, model.TypeText},
		{"integers", []string{"1", "2", "3"}, model.TypeInteger},
		{"mixed numeric", []string{"1.5", "2"}, model.TypeDecimal},
		{"booleans with empty", []string{"true", "false", ""}, model.TypeBoolean},
		{"booleans case insensitive", []string{"TRUE", "False"}, model.TypeBoolean},
		{"markup", []string{"<b>x</b>"}, model.TypeRaw},
		{"angle bracket anywhere", []string{"1", "2", "a > b"}, model.TypeRaw},
		{"oversized value", []string{strings.Repeat("x", 101)}, model.TypeRaw},
		{"exactly at length limit", []string{strings.Repeat("x", 100)}, model.TypeText},
		{"mixed text and number", []string{"a", "1"}, model.TypeText},
		{"integers with empty", []string{"1", "", "3"}, model.TypeInteger},
		{"negative integers", []string{"-1", "0"}, model.TypeInteger},
		{"only empty strings", []string{"", ""}, model.TypeBoolean},
		{"decimals", []string{"1.5", "2.25"}, model.TypeDecimal},
		{"plain text", []string{"alpha", "beta"}, model.TypeText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InferType(tt.values)
			if got != tt.expected {
				t.Errorf("InferType(%v) = %s, expected %s", tt.values, got, tt.expected)
			}
		})
	}
}

func TestInferTypeRawBeatsBoolean(t *testing.T) {
	// order matters: the RAW check runs before the boolean check
	got := InferType([]string{"true", "<i>false</i>"})
	if got != model.TypeRaw {
		t.Errorf("expected RAW, got %s", got)
	}
}
