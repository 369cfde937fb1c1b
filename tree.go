package deepsim

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"sort"
	"strings"
)

// nodeType defines all of the atoms in our universe, or the types of data we
// will encounter while walking a document
type nodeType uint8

const (
	ntUnknown nodeType = iota
	ntObject
	ntArray
	ntString
	ntNumber
	ntBool
	ntNull
)

func (nt nodeType) String() string {
	switch nt {
	case ntObject:
		return "Object"
	case ntArray:
		return "Array"
	case ntString:
		return "String"
	case ntNumber:
		return "Number"
	case ntBool:
		return "Bool"
	case ntNull:
		return "Null"
	default:
		return "Unknown"
	}
}

// compound types can contain children. basically objects & arrays
func (nt nodeType) compound() bool {
	return nt == ntObject || nt == ntArray
}

// typeOf classifies a decoded value. JSON decoders produce float64 (or
// json.Number), YAML decoders produce the sized integer types, so all numeric
// kinds collapse to ntNumber
func typeOf(v interface{}) nodeType {
	switch v.(type) {
	case nil:
		return ntNull
	case map[string]interface{}:
		return ntObject
	case []interface{}:
		return ntArray
	case string:
		return ntString
	case bool:
		return ntBool
	case float64, float32, json.Number,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return ntNumber
	default:
		return ntUnknown
	}
}

// leaf is a single terminal comparison produced by the walker. every leaf
// counts once toward the similarity denominator
type leaf struct {
	kind        Kind
	path        Path
	left, right interface{}
}

// walker traverses two documents in lock-step, emitting one leaf per
// terminal position in depth-first, pre-order
type walker struct {
	cfg  Config
	emit func(l leaf)
}

func (w *walker) walk(left, right interface{}, p Path) error {
	lt, rt := typeOf(left), typeOf(right)
	if lt == ntUnknown {
		return unsupported(left, p)
	}
	if rt == ntUnknown {
		return unsupported(right, p)
	}

	switch {
	case lt == ntObject && rt == ntObject:
		return w.walkObjects(left.(map[string]interface{}), right.(map[string]interface{}), p)
	case lt == ntArray && rt == ntArray:
		return w.walkArrays(left.([]interface{}), right.([]interface{}), p)
	case lt.compound() || rt.compound():
		// structural kinds differ. report the whole subtree once, don't descend
		w.emit(leaf{kind: TypeMismatch, path: p, left: left, right: right})
	case w.scalarsEqual(left, right):
		w.emit(leaf{kind: kindMatch, path: p, left: left, right: right})
	default:
		w.emit(leaf{kind: ValueMismatch, path: p, left: left, right: right})
	}
	return nil
}

func (w *walker) walkObjects(left, right map[string]interface{}, p Path) error {
	// gotta sort keys for a reproducible traversal order
	keys := make([]string, 0, len(left)+len(right))
	for k := range left {
		keys = append(keys, k)
	}
	for k := range right {
		if _, ok := left[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	for _, k := range keys {
		cp := p.Append(StringAddr(k))
		lv, inLeft := left[k]
		rv, inRight := right[k]
		if err := w.child(lv, rv, inLeft, inRight, cp); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) walkArrays(left, right []interface{}, p Path) error {
	n := len(left)
	if len(right) > n {
		n = len(right)
	}
	for i := 0; i < n; i++ {
		var lv, rv interface{}
		inLeft, inRight := i < len(left), i < len(right)
		if inLeft {
			lv = left[i]
		}
		if inRight {
			rv = right[i]
		}
		if err := w.child(lv, rv, inLeft, inRight, p.Append(IndexAddr(i))); err != nil {
			return err
		}
	}
	return nil
}

// child handles a single position within a pair of compound values, where
// the position may be absent from one side
func (w *walker) child(lv, rv interface{}, inLeft, inRight bool, p Path) error {
	switch {
	case inLeft && inRight:
		return w.walk(lv, rv, p)
	case inLeft:
		if typeOf(lv) == ntUnknown {
			return unsupported(lv, p)
		}
		w.emit(leaf{kind: MissingInRight, path: p, left: lv})
	default:
		if typeOf(rv) == ntUnknown {
			return unsupported(rv, p)
		}
		w.emit(leaf{kind: MissingInLeft, path: p, right: rv})
	}
	return nil
}

// scalarsEqual compares two scalar values. values must have the same type to
// be equal: the number 1 never equals the string "1"
func (w *walker) scalarsEqual(a, b interface{}) bool {
	at := typeOf(a)
	if at != typeOf(b) {
		return false
	}

	switch at {
	case ntNull:
		return true
	case ntBool:
		return a.(bool) == b.(bool)
	case ntNumber:
		return numbersEqual(a, b)
	case ntString:
		as, bs := a.(string), b.(string)
		if as == bs {
			return true
		}
		if w.cfg.FuzzyThreshold <= 0 {
			return false
		}
		if w.cfg.CaseInsensitive {
			as, bs = strings.ToLower(as), strings.ToLower(bs)
		}
		return ratio(as, bs) >= w.cfg.FuzzyThreshold
	}
	return false
}

// numbersEqual compares numeric values by magnitude, regardless of which go
// type a decoder chose to represent them with
func numbersEqual(a, b interface{}) bool {
	ar, aok := rat(a)
	br, bok := rat(b)
	switch {
	case aok && bok:
		return ar.Cmp(br) == 0
	case aok || bok:
		return false
	}

	// neither side has a rational form. json.Numbers land here when they're
	// malformed or their exponent is out of range, and are only equal to the
	// exact same literal
	an, aNum := a.(json.Number)
	bn, bNum := b.(json.Number)
	if aNum || bNum {
		return aNum && bNum && an == bn
	}
	// non-finite floats. NaN != NaN, Inf == Inf
	return float(a) == float(b)
}

func rat(v interface{}) (*big.Rat, bool) {
	r := new(big.Rat)
	switch x := v.(type) {
	case int:
		return r.SetInt64(int64(x)), true
	case int8:
		return r.SetInt64(int64(x)), true
	case int16:
		return r.SetInt64(int64(x)), true
	case int32:
		return r.SetInt64(int64(x)), true
	case int64:
		return r.SetInt64(x), true
	case uint:
		return r.SetUint64(uint64(x)), true
	case uint8:
		return r.SetUint64(uint64(x)), true
	case uint16:
		return r.SetUint64(uint64(x)), true
	case uint32:
		return r.SetUint64(uint64(x)), true
	case uint64:
		return r.SetUint64(x), true
	case float32:
		r = r.SetFloat64(float64(x))
		return r, r != nil
	case float64:
		r = r.SetFloat64(x)
		return r, r != nil
	case json.Number:
		_, ok := r.SetString(string(x))
		return r, ok
	}
	return nil, false
}

func float(v interface{}) float64 {
	switch x := v.(type) {
	case float32:
		return float64(x)
	case float64:
		return x
	}
	return math.NaN()
}

func unsupported(v interface{}, p Path) error {
	return fmt.Errorf("%w: %T at %s", ErrUnsupportedType, v, p)
}
