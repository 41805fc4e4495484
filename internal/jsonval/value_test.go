package jsonval

import (
	"math"
	"testing"
)

func TestEqualNumbers(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"1", "1", true},
		{"1", "1.0", true},
		{"1", "2", false},
		{"3e2", "300", true},
		{"0.1", "0.10", true},
		{"9007199254740993", "9007199254740993", true},
		{"-0", "0", true},
	}
	for _, c := range cases {
		if got := Number(c.a).Equal(Number(c.b)); got != c.want {
			t.Errorf("Number(%q).Equal(Number(%q)) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestEqualObjectsKeyOrderInsensitive(t *testing.T) {
	a := MustParse(`{"x": 1, "y": [2, 3]}`)
	b := MustParse(`{"y": [2, 3], "x": 1}`)
	if !a.Equal(b) {
		t.Errorf("objects with same entries in different order should be equal")
	}
}

func TestEqualArraysOrderSensitive(t *testing.T) {
	a := MustParse(`[1, 2]`)
	b := MustParse(`[2, 1]`)
	if a.Equal(b) {
		t.Errorf("arrays with different element order should not be equal")
	}
}

func TestEqualKindMismatch(t *testing.T) {
	if MustParse(`"1"`).Equal(MustParse(`1`)) {
		t.Errorf("string and number should not be equal")
	}
	if MustParse(`null`).Equal(MustParse(`false`)) {
		t.Errorf("null and false should not be equal")
	}
	if MustParse(`[]`).Equal(MustParse(`{}`)) {
		t.Errorf("array and object should not be equal")
	}
}

func TestEqualNested(t *testing.T) {
	a := MustParse(`{"items": [{"id": 1, "tags": ["a"]}], "total": 1}`)
	b := MustParse(`{"total": 1.0, "items": [{"tags": ["a"], "id": 1}]}`)
	if !a.Equal(b) {
		t.Errorf("nested structures should compare equal")
	}
}

func TestFromInterfaceRoundTrip(t *testing.T) {
	v := FromInterface(map[string]interface{}{
		"n":   int64(42),
		"f":   1.5,
		"s":   "hi",
		"b":   true,
		"nil": nil,
		"arr": []interface{}{int64(1), "two"},
	})
	want := MustParse(`{"n":42,"f":1.5,"s":"hi","b":true,"nil":null,"arr":[1,"two"]}`)
	if !v.Equal(want) {
		t.Errorf("FromInterface mismatch: got %s, want %s", v, want)
	}
}

func TestFromInterfaceUnsupportedCollapsesToNull(t *testing.T) {
	v := FromInterface(func() {})
	if v.Kind() != KindNull {
		t.Errorf("unsupported type should collapse to null, got kind %d", v.Kind())
	}
}

func TestFromInterfaceNonFiniteCollapsesToNull(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		v := FromInterface(f)
		if v.Kind() != KindNull {
			t.Errorf("FromInterface(%v) should be null, got kind %d", f, v.Kind())
		}
		b, err := v.MarshalJSON()
		if err != nil || string(b) != "null" {
			t.Errorf("FromInterface(%v) should marshal as null, got %s (%v)", f, b, err)
		}
	}
}

func TestInterfaceNumbers(t *testing.T) {
	if got := Number("7").Interface(); got != int64(7) {
		t.Errorf("integer literal should export as int64, got %T(%v)", got, got)
	}
	if got := Number("2.5").Interface(); got != 2.5 {
		t.Errorf("float literal should export as float64, got %T(%v)", got, got)
	}
}

func TestMarshalDeterministic(t *testing.T) {
	v := MustParse(`{"b": 2, "a": 1}`)
	got, err := v.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	if string(got) != `{"a":1,"b":2}` {
		t.Errorf("keys should be emitted sorted, got %s", got)
	}
}

func TestUnmarshalPreservesNumberLiteral(t *testing.T) {
	v := MustParse(`{"big": 9007199254740993}`)
	got, _ := v.MarshalJSON()
	if string(got) != `{"big":9007199254740993}` {
		t.Errorf("large integer literal should survive a round trip, got %s", got)
	}
}
