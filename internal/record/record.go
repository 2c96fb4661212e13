package record

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"strings"

	"relation-factory/internal/common"
)

// Record is one exported relation row, keyed by attribute name.
type Record map[string]any

// Has reports whether the key is present, even when its value is null.
func (r Record) Has(key string) bool {
	_, ok := r[key]
	return ok
}

// Present reports whether the key is present with a non-null value.
func (r Record) Present(key string) bool {
	v, ok := r[key]
	return ok && v != nil
}

// Delete removes key and returns the value it held.
func (r Record) Delete(key string) (any, bool) {
	v, ok := r[key]
	if ok {
		delete(r, key)
	}

	return v, ok
}

// Clone returns a shallow copy. Nested sub-records are shared.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}

	return maps.Clone(r)
}

// Keys returns the attribute names in ascending order.
func (r Record) Keys() []string {
	return common.SortedKeys(r)
}

// String renders the value of key as text. Null and missing keys render empty.
func (r Record) String(key string) string {
	return Text(r[key])
}

// Sub returns the nested record stored under key, if any.
func (r Record) Sub(key string) (Record, bool) {
	return As(r[key])
}

// As returns v as a Record when it is a nested attribute mapping.
func As(v any) (Record, bool) {
	switch m := v.(type) {
	case Record:
		return m, true
	case map[string]any:
		return Record(m), true
	default:
		return nil, false
	}
}

// Text renders an attribute value as text.
func Text(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case json.Number:
		return s.String()
	default:
		return fmt.Sprint(v)
	}
}

// Blank reports whether v is null or renders as whitespace only.
func Blank(v any) bool {
	return strings.TrimSpace(Text(v)) == ""
}

// ID normalizes a decoded identifier value. Strings are not ids.
func ID(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint:
		if uint64(n) > math.MaxInt64 {
			return 0, false
		}

		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}

		return int64(n), true
	case float64:
		if n != math.Trunc(n) || n > math.MaxInt64 || n < math.MinInt64 {
			return 0, false
		}

		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}

		return i, true
	default:
		return 0, false
	}
}
