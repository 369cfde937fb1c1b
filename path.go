package deepsim

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Addr is a single step in a Path. A step is either a mapping key
// (StringAddr) or a sequence index (IndexAddr)
type Addr interface {
	// Value returns the underlying key (string) or index (int)
	Value() interface{}
	// String renders the address as it appears in a JSON pointer
	String() string
	// Eq reports whether two addresses refer to the same step
	Eq(b Addr) bool
}

// StringAddr addresses a value within a mapping by key
type StringAddr string

// Value returns the key as a string
func (a StringAddr) Value() interface{} { return string(a) }

// String returns the key
func (a StringAddr) String() string { return string(a) }

// Eq tests for equality with another address
func (a StringAddr) Eq(b Addr) bool {
	sb, ok := b.(StringAddr)
	return ok && a == sb
}

// IndexAddr addresses a value within a sequence by position
type IndexAddr int

// Value returns the index as an int
func (a IndexAddr) Value() interface{} { return int(a) }

// String returns the decimal index
func (a IndexAddr) String() string { return strconv.Itoa(int(a)) }

// Eq tests for equality with another address
func (a IndexAddr) Eq(b Addr) bool {
	ib, ok := b.(IndexAddr)
	return ok && a == ib
}

// Path locates a value within a document, starting at the root. The zero
// value (an empty path) is the root itself
type Path []Addr

// Append returns a new path with a added to the end. The receiver is never
// modified & the result never shares backing storage with it
func (p Path) Append(a Addr) Path {
	cp := make(Path, len(p), len(p)+1)
	copy(cp, p)
	return append(cp, a)
}

// Eq reports whether two paths have identical steps
func (p Path) Eq(b Path) bool {
	if len(p) != len(b) {
		return false
	}
	for i := range p {
		if !p[i].Eq(b[i]) {
			return false
		}
	}
	return true
}

// String renders the path in dotted form: a.b[2].c
// keys that aren't plain identifiers are quoted in brackets (["a.b"]) so
// a rendered path always reads back to exactly one location. The root path
// renders as "."
func (p Path) String() string {
	if len(p) == 0 {
		return "."
	}
	buf := &strings.Builder{}
	for i, a := range p {
		switch x := a.(type) {
		case IndexAddr:
			fmt.Fprintf(buf, "[%d]", int(x))
		case StringAddr:
			key := string(x)
			if !plainKey(key) {
				fmt.Fprintf(buf, "[%s]", strconv.Quote(key))
				continue
			}
			if i > 0 {
				buf.WriteByte('.')
			}
			buf.WriteString(key)
		}
	}
	return buf.String()
}

// plainKey is true for keys made up only of letters, digits, '_' & '-'
func plainKey(key string) bool {
	if key == "" {
		return false
	}
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
		default:
			return false
		}
	}
	return true
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// Pointer renders the path as an IETF JSON-pointer, outlined in RFC 6901:
// https://tools.ietf.org/html/rfc6901
func (p Path) Pointer() string {
	buf := &strings.Builder{}
	for _, a := range p {
		buf.WriteByte('/')
		buf.WriteString(pointerEscaper.Replace(a.String()))
	}
	return buf.String()
}

// MarshalJSON encodes a path as an array of keys (strings) & indices
// (numbers)
func (p Path) MarshalJSON() ([]byte, error) {
	v := make([]interface{}, len(p))
	for i, a := range p {
		v[i] = a.Value()
	}
	return json.Marshal(v)
}

// UnmarshalJSON decodes the array form written by MarshalJSON
func (p *Path) UnmarshalJSON(data []byte) error {
	var steps []interface{}
	if err := json.Unmarshal(data, &steps); err != nil {
		return err
	}
	path := make(Path, 0, len(steps))
	for i, s := range steps {
		switch x := s.(type) {
		case string:
			path = append(path, StringAddr(x))
		case float64:
			if x < 0 || x != float64(int(x)) {
				return fmt.Errorf("path step %d: invalid index %v", i, x)
			}
			path = append(path, IndexAddr(int(x)))
		default:
			return fmt.Errorf("path step %d: unexpected type %T", i, s)
		}
	}
	*p = path
	return nil
}

// Resolve follows the path from the root of doc, returning the value found
// there. ok is false if any step indexes a scalar, misses a key or falls
// outside a sequence
func (p Path) Resolve(doc interface{}) (v interface{}, ok bool) {
	v = doc
	for _, a := range p {
		switch x := a.(type) {
		case StringAddr:
			obj, isObj := v.(map[string]interface{})
			if !isObj {
				return nil, false
			}
			if v, ok = obj[string(x)]; !ok {
				return nil, false
			}
		case IndexAddr:
			arr, isArr := v.([]interface{})
			if !isArr || int(x) < 0 || int(x) >= len(arr) {
				return nil, false
			}
			v = arr[int(x)]
		default:
			return nil, false
		}
	}
	return v, true
}
