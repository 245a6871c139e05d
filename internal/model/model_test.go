package model

import (
	"reflect"
	"testing"
)

func TestRowOrderedKeys(t *testing.T) {
	row := NewRow("r1")
	row.Set("b", Text("2"))
	row.Set("a", Text("1"))
	row.Set("c", Text("3"))
	row.Set("a", Text("updated")) // overwrite keeps the original position

	want := []string{"b", "a", "c"}
	if !reflect.DeepEqual(row.Keys(), want) {
		t.Errorf("expected insertion order %v, got %v", want, row.Keys())
	}
	if v, _ := row.Get("a"); v.Str != "updated" {
		t.Errorf("overwrite lost the new value: %+v", v)
	}
}

func TestRowCopyIsolation(t *testing.T) {
	row := NewRow("r1")
	row.Set("name", Text("alice"))

	cp := row.Copy()
	cp.Set("name", Text("bob"))
	cp.Set("extra", Text("x"))

	if v, _ := row.Get("name"); v.Str != "alice" {
		t.Error("copy mutation leaked into the source")
	}
	if row.Has("extra") {
		t.Error("copy key set leaked into the source")
	}
}

func TestRowMarshalJSON(t *testing.T) {
	row := NewRow("r1")
	row.Set("name", Text("alice"))
	row.Set("age", Integer(34))
	row.Set("score", NullOf(TypeDecimal))

	b, err := row.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"id":"r1","name":"alice","age":34,"score":null}`
	if string(b) != want {
		t.Errorf("expected %s, got %s", want, b)
	}
}

func TestValueOf(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected Value
	}{
		{"string", "hi", Text("hi")},
		{"int", 30, Integer(30)},
		{"int64", int64(30), Integer(30)},
		{"float64", 1.5, Decimal(1.5)},
		{"bool", true, Boolean(true)},
		{"nil", nil, NullOf(TypeText)},
		{"value passthrough", Raw("<b>x</b>"), Raw("<b>x</b>")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValueOf(tt.input)
			if got != tt.expected {
				t.Errorf("ValueOf(%v) = %+v, expected %+v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestZeroOf(t *testing.T) {
	tests := []struct {
		dataType DataType
		rendered string
	}{
		{TypeText, ""},
		{TypeRaw, ""},
		{TypeInteger, "0"},
		{TypeDecimal, "0"},
		{TypeBoolean, "false"},
	}

	for _, tt := range tests {
		z := ZeroOf(tt.dataType)
		if z.Null {
			t.Errorf("ZeroOf(%s) must not be null", tt.dataType)
		}
		if z.String() != tt.rendered {
			t.Errorf("ZeroOf(%s).String() = %q, expected %q", tt.dataType, z.String(), tt.rendered)
		}
	}
}

func TestValueString(t *testing.T) {
	if got := Decimal(1.5).String(); got != "1.5" {
		t.Errorf("expected 1.5, got %q", got)
	}
	if got := NullOf(TypeInteger).String(); got != "" {
		t.Errorf("null integer must render empty, got %q", got)
	}
	if got := Boolean(true).String(); got != "true" {
		t.Errorf("expected true, got %q", got)
	}
}

func TestTableCopy(t *testing.T) {
	table := &Table{
		ID:      "t",
		Headers: []TableHeader{{Name: "a", Type: TypeText}},
		Hidden:  map[string]string{"k": "v"},
		Rows:    []TableRow{NewRow("r1")},
	}
	table.Rows[0].Set("a", Text("x"))

	cp := table.Copy()
	cp.Headers[0].Name = "changed"
	cp.Hidden["k"] = "changed"
	cp.Rows[0].Set("a", Text("changed"))

	if table.Headers[0].Name != "a" {
		t.Error("header slice shared with copy")
	}
	if table.Hidden["k"] != "v" {
		t.Error("hidden map shared with copy")
	}
	if v, _ := table.Rows[0].Get("a"); v.Str != "x" {
		t.Error("rows shared with copy")
	}
}

func TestFindRowFirstMatchWins(t *testing.T) {
	table := &Table{Rows: []TableRow{NewRow("dup"), NewRow("dup")}}
	idx, ok := table.FindRow("dup")
	if !ok || idx != 0 {
		t.Errorf("expected first match at 0, got %d ok=%v", idx, ok)
	}
	if _, ok := table.FindRow("nope"); ok {
		t.Error("found a row that does not exist")
	}
}
