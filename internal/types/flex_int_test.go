package types

import (
	"encoding/json"
	"testing"
)

func TestFlexIntUnmarshal(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected int
		wantErr  bool
	}{
		{"number", `7`, 7, false},
		{"string number", `"42"`, 42, false},
		{"empty string", `""`, 0, false},
		{"null", `null`, 0, false},
		{"negative string", `"-3"`, -3, false},
		{"non-numeric string", `"seven"`, 0, true},
		{"object", `{}`, 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var f FlexInt
			err := json.Unmarshal([]byte(tc.input), &f)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Expected an error for %s", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal failed: %v", err)
			}
			if f.Int() != tc.expected {
				t.Errorf("Expected %d, got %d", tc.expected, f.Int())
			}
		})
	}
}

func TestFlexIntMarshal(t *testing.T) {
	out, err := json.Marshal(FlexInt(12))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(out) != "12" {
		t.Errorf("Expected plain number output, got %s", out)
	}
}

func TestFlexListUnmarshal(t *testing.T) {
	var list FlexList[string]
	if err := json.Unmarshal([]byte(`["a","b"]`), &list); err != nil {
		t.Fatalf("Unmarshal array failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(list))
	}

	list = nil
	if err := json.Unmarshal([]byte(`"solo"`), &list); err != nil {
		t.Fatalf("Unmarshal single item failed: %v", err)
	}
	if len(list) != 1 || list[0] != "solo" {
		t.Errorf("Expected single item wrapped in a slice, got %v", list.Slice())
	}
}
