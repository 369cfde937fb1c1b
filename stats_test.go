package deepsim

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCalcStats(t *testing.T) {
	aJSON := []byte(`{"a": 100,"foo": [1,2,3],"bar": false,"baz": {"a": {"b": 4,"c": false,"d": "apples-and-oranges"},"e": null,"g": "apples-and-oranges"}}`)
	bJSON := []byte(`{"a": 99,"foo": [1,2,3],"bar": false,"baz": {"a": {"b": 5,"c": false,"d": "apples-and-oranges"},"e": "thirty-thousand-something-dogecoin","f": {"a" : false, "b": true}}}`)

	var a, b map[string]interface{}
	if err := json.Unmarshal(aJSON, &a); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(bJSON, &b); err != nil {
		t.Fatal(err)
	}

	expect := Stats{
		Leaves:          11,
		Matches:         6,
		MissingInLeft:   1,
		MissingInRight:  1,
		ValueMismatches: 3,
	}
	res, err := Compare(a, b)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(expect, res.Stats); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}
	if expect.Differences() != len(res.Differences) {
		t.Errorf("wrong difference count. want: %d. got: %d", expect.Differences(), len(res.Differences))
	}
}

func TestStatsSimilarity(t *testing.T) {
	cases := []struct {
		stats  Stats
		expect float64
	}{
		{Stats{}, 100},
		{Stats{Leaves: 4, Matches: 4}, 100},
		{Stats{Leaves: 4, Matches: 1}, 25},
		{Stats{Leaves: 3}, 0},
	}

	for i, c := range cases {
		if got := c.stats.Similarity(); got != c.expect {
			t.Errorf("case %d: want %f, got %f", i, c.expect, got)
		}
	}
}
