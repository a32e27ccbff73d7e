// SPDX-License-Identifier: MIT

package accessor

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// ErrNonNumeric is returned when an item's value cannot be coerced to a
// finite float64.
var ErrNonNumeric = errors.New("accessor: value is not numeric")

// Func extracts the classification value of an item.
type Func[T any] func(item T) (float64, error)

// Number is the set of Go numeric kinds accepted by Identity.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Identity returns an accessor that converts a numeric item to float64.
func Identity[T Number]() Func[T] {
	return func(item T) (float64, error) {
		return finite(float64(item))
	}
}

// Field wraps an infallible getter. The result is still checked for NaN/Inf.
func Field[T any](fn func(T) float64) Func[T] {
	if fn == nil {
		panic("accessor: Field(nil)")
	}
	return func(item T) (float64, error) {
		return finite(fn(item))
	}
}

// Coerce wraps a getter returning an untyped value and converts it with
// ToFloat.
func Coerce[T any](fn func(T) any) Func[T] {
	if fn == nil {
		panic("accessor: Coerce(nil)")
	}
	return func(item T) (float64, error) {
		return ToFloat(fn(item))
	}
}

// ToFloat converts v to a finite float64.
//
// Accepted: every Go integer and float kind, and strings / byte slices that
// parse as a decimal float after trimming surrounding space. Everything else,
// including bool and nil, fails with ErrNonNumeric.
func ToFloat(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return finite(x)
	case float32:
		return finite(float64(x))
	case int:
		return float64(x), nil
	case int8:
		return float64(x), nil
	case int16:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint:
		return float64(x), nil
	case uint8:
		return float64(x), nil
	case uint16:
		return float64(x), nil
	case uint32:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	case string:
		return parse(x)
	case []byte:
		return parse(string(x))
	case nil:
		return 0, fmt.Errorf("%w: nil", ErrNonNumeric)
	default:
		return viaKind(v)
	}
}

// viaKind handles named numeric and string types (type Score float64).
func viaKind(v any) (float64, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return finite(rv.Float())
	case reflect.String:
		return parse(rv.String())
	default:
		return 0, fmt.Errorf("%w: unsupported type %T", ErrNonNumeric, v)
	}
}

// parse accepts decimal float syntax only; "NaN" and "Inf" spellings are
// rejected by finite.
func parse(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNonNumeric, s)
	}
	return finite(f)
}

func finite(f float64) (float64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %v", ErrNonNumeric, f)
	}
	return f, nil
}

// Extract evaluates acc once per item.
//
// With discard=false the first failure is returned, wrapped with the index of
// the offending item. With discard=true failing items are skipped and the
// returned slices hold only the survivors, in input order.
//
// Complexity: O(n) accessor calls.
func Extract[T any](items []T, acc Func[T], discard bool) ([]T, []float64, error) {
	kept := make([]T, 0, len(items))
	values := make([]float64, 0, len(items))
	for i, item := range items {
		v, err := acc(item)
		if err != nil {
			if discard {
				continue
			}
			return nil, nil, fmt.Errorf("item %d: %w", i, err)
		}
		kept = append(kept, item)
		values = append(values, v)
	}

	return kept, values, nil
}

// Sorted is Extract followed by a stable ascending sort on value; items and
// values stay aligned. The input slice is never reordered.
//
// Complexity: O(n log n).
func Sorted[T any](items []T, acc Func[T], discard bool) ([]T, []float64, error) {
	kept, values, err := Extract(items, acc, discard)
	if err != nil {
		return nil, nil, err
	}
	sort.Stable(byValue[T]{items: kept, values: values})

	return kept, values, nil
}

// byValue co-sorts items with their extracted values.
type byValue[T any] struct {
	items  []T
	values []float64
}

func (b byValue[T]) Len() int           { return len(b.values) }
func (b byValue[T]) Less(i, j int) bool { return b.values[i] < b.values[j] }
func (b byValue[T]) Swap(i, j int) {
	b.values[i], b.values[j] = b.values[j], b.values[i]
	b.items[i], b.items[j] = b.items[j], b.items[i]
}
