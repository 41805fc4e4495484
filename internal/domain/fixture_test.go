package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"gitlab.com/codeclass-2026.net/internal/jsonval"
)

func TestFixtureUnmarshalRequiresBothKeys(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		ok   bool
	}{
		{"both present", `{"input": [1, 2], "output": 3}`, true},
		{"null values still count", `{"input": null, "output": null}`, true},
		{"missing output", `{"input": [1, 2]}`, false},
		{"missing input", `{"output": 3}`, false},
		{"empty object", `{}`, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var f Fixture
			err := json.Unmarshal([]byte(c.doc), &f)
			if c.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !c.ok && !errors.Is(err, ErrMalformedFixture) {
				t.Fatalf("want ErrMalformedFixture, got %v", err)
			}
		})
	}
}

func TestFixtureArgumentsSpreadsArrays(t *testing.T) {
	f := Fixture{Input: jsonval.MustParse(`[1, "two", [3]]`)}
	args := f.Arguments()
	if len(args) != 3 {
		t.Fatalf("array input should spread into %d arguments, got %d", 3, len(args))
	}
	if !args[2].Equal(jsonval.MustParse(`[3]`)) {
		t.Errorf("nested array should stay a single argument, got %s", args[2])
	}
}

func TestFixtureArgumentsWrapsScalars(t *testing.T) {
	for _, doc := range []string{`5`, `"abc"`, `{"k": 1}`, `null`} {
		f := Fixture{Input: jsonval.MustParse(doc)}
		args := f.Arguments()
		if len(args) != 1 {
			t.Errorf("input %s should become one argument, got %d", doc, len(args))
			continue
		}
		if !args[0].Equal(f.Input) {
			t.Errorf("input %s should be passed through unchanged", doc)
		}
	}
}

func TestRoomAccess(t *testing.T) {
	room := Room{OwnerID: "owner", Members: []string{"member"}}

	if !room.AccessibleBy("owner") {
		t.Errorf("owner should have access")
	}
	if !room.AccessibleBy("member") {
		t.Errorf("member should have access")
	}
	if room.AccessibleBy("stranger") {
		t.Errorf("stranger should not access a private room")
	}

	room.Public = true
	if !room.AccessibleBy("stranger") {
		t.Errorf("anyone should access a public room")
	}
}

func TestValidFunctionName(t *testing.T) {
	for _, name := range []string{"solve", "_private", "$fn", "twoSum2"} {
		if !ValidFunctionName(name) {
			t.Errorf("%q should be a valid function name", name)
		}
	}
	for _, name := range []string{"", "2start", "a-b", "a b", "fn()", "a;b"} {
		if ValidFunctionName(name) {
			t.Errorf("%q should be rejected", name)
		}
	}
}
