package parse

import (
	"testing"

	"github.com/leengari/tabledom/internal/model"
)

func TestCoerceInteger(t *testing.T) {
	v := Coerce("42", model.TypeInteger)
	if v.Null || v.Int != 42 {
		t.Errorf("expected 42, got %+v", v)
	}

	v = Coerce("", model.TypeInteger)
	if !v.Null {
		t.Errorf("empty integer cell should be null, got %+v", v)
	}
	if v.String() != "" {
		t.Errorf("null integer should render empty, got %q", v.String())
	}
}

func TestCoerceDecimal(t *testing.T) {
	v := Coerce("1.5", model.TypeDecimal)
	if v.Null || v.Dec != 1.5 {
		t.Errorf("expected 1.5, got %+v", v)
	}

	v = Coerce("", model.TypeDecimal)
	if !v.Null {
		t.Errorf("empty decimal cell should be null, got %+v", v)
	}
}

func TestCoerceBoolean(t *testing.T) {
	tests := []struct {
		text     string
		expected bool
	}{
		{"true", true},
		{"TRUE", true},
		{"false", false},
		{"", false}, // no null state: empty coerces to false
		{"yes", false},
	}

	for _, tt := range tests {
		v := Coerce(tt.text, model.TypeBoolean)
		if v.Bool != tt.expected {
			t.Errorf("Coerce(%q, BOOLEAN) = %v, expected %v", tt.text, v.Bool, tt.expected)
		}
		if v.Null {
			t.Errorf("Coerce(%q, BOOLEAN) must never be null", tt.text)
		}
	}
}

func TestCoerceTextAndRaw(t *testing.T) {
	if v := Coerce("hello", model.TypeText); v.Str != "hello" {
		t.Errorf("expected verbatim text, got %+v", v)
	}
	if v := Coerce("<b>x</b>", model.TypeRaw); v.Str != "<b>x</b>" {
		t.Errorf("expected verbatim markup, got %+v", v)
	}
}
