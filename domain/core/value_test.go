package core

import (
	"encoding/json"
	"testing"
)

func TestValueLabel(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		want string
	}{
		{"integer number", Number(42), "42"},
		{"fractional number", Number(2.5), "2.5"},
		{"whole float collapses", Number(1.0), "1"},
		{"text", Text("vein"), "vein"},
		{"bool true", Bool(true), "true"},
		{"bool false", Bool(false), "false"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.v.Label(); got != tc.want {
				t.Errorf("Label() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestValueCompare(t *testing.T) {
	cases := []struct {
		name string
		a, b Value
		want int
	}{
		{"numbers ascending", Number(1), Number(2), -1},
		{"numbers equal", Number(3), Number(3), 0},
		{"text lexical", Text("artery"), Text("vein"), -1},
		{"bool false before true", Bool(false), Bool(true), -1},
		{"number before text", Number(99), Text("a"), -1},
		{"text before bool", Text("z"), Bool(false), -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Compare(tc.b); got != tc.want {
				t.Errorf("Compare = %d, want %d", got, tc.want)
			}
			if got := tc.b.Compare(tc.a); got != -tc.want {
				t.Errorf("reverse Compare = %d, want %d", got, -tc.want)
			}
		})
	}
}

func TestValueEqual(t *testing.T) {
	if !Number(1.5).Equal(Number(1.5)) {
		t.Error("equal numbers should be Equal")
	}
	if Number(1).Equal(Text("1")) {
		t.Error("number and text must not be Equal even with matching labels")
	}
}

func TestValueMarshalJSON(t *testing.T) {
	payload, err := json.Marshal(map[string]Value{
		"n": Number(2.5),
		"s": Text("low"),
		"b": Bool(true),
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded["n"] != 2.5 {
		t.Errorf("number decoded as %v", decoded["n"])
	}
	if decoded["s"] != "low" {
		t.Errorf("text decoded as %v", decoded["s"])
	}
	if decoded["b"] != true {
		t.Errorf("bool decoded as %v", decoded["b"])
	}
}
