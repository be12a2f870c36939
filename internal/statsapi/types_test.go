package statsapi

import (
	"encoding/json"
	"testing"
)

func TestFlexIDAcceptsStringsAndNumbers(t *testing.T) {
	cases := map[string]flexID{
		`"abc01"`: "abc01",
		`" 12 "`:  "12",
		`2544`:    "2544",
		`2544.0`:  "2544",
		`12.5`:    "12.5",
		`null`:    "",
	}
	for in, want := range cases {
		var id flexID
		if err := json.Unmarshal([]byte(in), &id); err != nil {
			t.Fatalf("input %s: unexpected error %v", in, err)
		}
		if id != want {
			t.Fatalf("input %s: expected %q, got %q", in, want, id)
		}
	}

	var id flexID
	if err := json.Unmarshal([]byte(`{}`), &id); err == nil {
		t.Fatal("expected object id to fail")
	}
}
