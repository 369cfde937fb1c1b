package deepsim

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPathString(t *testing.T) {
	cases := []struct {
		path   Path
		expect string
	}{
		{nil, "."},
		{Path{StringAddr("a")}, "a"},
		{Path{StringAddr("a"), IndexAddr(2), StringAddr("c")}, "a[2].c"},
		{Path{IndexAddr(0), StringAddr("a")}, "[0].a"},
		{Path{IndexAddr(0), IndexAddr(1)}, "[0][1]"},
		{Path{StringAddr("a.b")}, `["a.b"]`},
		{Path{StringAddr("x"), StringAddr("")}, `x[""]`},
		{Path{StringAddr("first name"), StringAddr("en-US")}, `["first name"].en-US`},
		{Path{StringAddr("0")}, "0"},
	}

	for _, c := range cases {
		if got := c.path.String(); got != c.expect {
			t.Errorf("path %#v: want %s, got %s", c.path, c.expect, got)
		}
	}
}

func TestPathPointer(t *testing.T) {
	cases := []struct {
		path   Path
		expect string
	}{
		{nil, ""},
		{Path{StringAddr("a"), IndexAddr(1)}, "/a/1"},
		{Path{StringAddr("a/b"), StringAddr("m~n")}, "/a~1b/m~0n"},
	}

	for _, c := range cases {
		if got := c.path.Pointer(); got != c.expect {
			t.Errorf("path %#v: want %s, got %s", c.path, c.expect, got)
		}
	}
}

func TestPathJSON(t *testing.T) {
	p := Path{StringAddr("a"), IndexAddr(1), StringAddr("2")}
	data, err := json.Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `["a",1,"2"]` {
		t.Errorf("encoding mismatch. got: %s", data)
	}

	var got Path
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if !got.Eq(p) {
		t.Errorf("decoding mismatch. want: %s, got: %s", p, got)
	}

	for _, bad := range []string{`[true]`, `[-1]`, `[1.5]`, `{}`} {
		if err := json.Unmarshal([]byte(bad), &got); err == nil {
			t.Errorf("expected error decoding %s", bad)
		}
	}
}

func TestPathResolve(t *testing.T) {
	var doc interface{}
	if err := json.Unmarshal([]byte(`{"a": [{"b": null}, 2], "c": "d"}`), &doc); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		description string
		path        Path
		expect      interface{}
		ok          bool
	}{
		{"root", nil, doc, true},
		{"key", Path{StringAddr("c")}, "d", true},
		{"index", Path{StringAddr("a"), IndexAddr(1)}, float64(2), true},
		{"null value", Path{StringAddr("a"), IndexAddr(0), StringAddr("b")}, nil, true},
		{"missing key", Path{StringAddr("x")}, nil, false},
		{"index past end", Path{StringAddr("a"), IndexAddr(2)}, nil, false},
		{"key into array", Path{StringAddr("a"), StringAddr("0")}, nil, false},
		{"index into object", Path{IndexAddr(0)}, nil, false},
		{"through scalar", Path{StringAddr("c"), IndexAddr(0)}, nil, false},
	}

	for _, c := range cases {
		t.Run(c.description, func(t *testing.T) {
			got, ok := c.path.Resolve(doc)
			if ok != c.ok {
				t.Fatalf("expected ok: %t, got: %t", c.ok, ok)
			}
			if diff := cmp.Diff(c.expect, got); diff != "" {
				t.Errorf("result mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPathAppendCopies(t *testing.T) {
	base := make(Path, 1, 4)
	base[0] = StringAddr("a")

	b := base.Append(StringAddr("b"))
	c := base.Append(StringAddr("c"))

	if b.String() != "a.b" {
		t.Errorf("append aliased backing array. want a.b, got %s", b)
	}
	if c.String() != "a.c" {
		t.Errorf("want a.c, got %s", c)
	}
	if len(base) != 1 {
		t.Errorf("receiver modified")
	}
}

func TestDifferencePathsResolve(t *testing.T) {
	var a, b interface{}
	if err := json.Unmarshal([]byte(`{"a": {"x": [1, 2]}, "b": 1, "c": {"d": 1}}`), &a); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal([]byte(`{"a": {"x": [1], "y": 3}, "b": 2, "c": 5}`), &b); err != nil {
		t.Fatal(err)
	}

	res, err := Compare(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Differences) != 4 {
		t.Fatalf("expected 4 differences, got %d", len(res.Differences))
	}

	for _, d := range res.Differences {
		lv, lok := d.Path.Resolve(a)
		rv, rok := d.Path.Resolve(b)
		if lok != (d.Kind != MissingInLeft) || rok != (d.Kind != MissingInRight) {
			t.Errorf("%s %s: unexpected resolution. left: %t right: %t", d.Kind, d.Path, lok, rok)
		}
		if lok {
			if diff := cmp.Diff(d.Left, lv); diff != "" {
				t.Errorf("%s left value mismatch (-want +got):\n%s", d.Path, diff)
			}
		}
		if rok {
			if diff := cmp.Diff(d.Right, rv); diff != "" {
				t.Errorf("%s right value mismatch (-want +got):\n%s", d.Path, diff)
			}
		}
	}
}
