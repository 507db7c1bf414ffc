package grid

import (
	"errors"
	"fmt"
	"math"
	"reflect"

	"golang.org/x/exp/constraints"
)

// ErrOverflow reports a pixel component that does not fit the requested
// numeric type. Wrapped errors carry the offending value; test with
// errors.Is.
var ErrOverflow = errors.New("pixel component overflows target type")

// Scalar is the constraint for numeric pixel components.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Pixeler is satisfied by any value type that can expose a pixel-space
// position as x and y. Host applications implement it on their own vector
// types; no further contract is required.
type Pixeler interface {
	XY() (x, y float64)
}

// PixelCoord is the canonical continuous 2D position, in the same units
// as tile pixel dimensions.
type PixelCoord struct {
	X, Y float64
}

// XY implements Pixeler.
func (p PixelCoord) XY() (float64, float64) {
	return p.X, p.Y
}

// Pixel adapts any Pixeler value into the canonical representation.
func Pixel(v Pixeler) PixelCoord {
	x, y := v.XY()
	return PixelCoord{X: x, Y: y}
}

// Convert converts v to the numeric type T. Fractional values truncate
// toward zero unless T is a floating-point type, in which case the value
// passes through under standard narrowing or widening. Values that do not
// fit T (negative into unsigned, magnitude out of range, NaN or Inf into
// an integer) return an error wrapping ErrOverflow instead of wrapping
// around.
func Convert[T Scalar](v float64) (T, error) {
	var zero T
	rt := reflect.TypeOf(zero)
	switch rt.Kind() {
	case reflect.Float32, reflect.Float64:
		return T(v), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		tv := math.Trunc(v)
		// Values at or beyond 2^63 cannot round-trip through int64.
		if math.IsNaN(tv) || tv >= math.MaxInt64 || tv < math.MinInt64 {
			return zero, fmt.Errorf("converting %v to %s: %w", v, rt, ErrOverflow)
		}
		if reflect.New(rt).Elem().OverflowInt(int64(tv)) {
			return zero, fmt.Errorf("converting %v to %s: %w", v, rt, ErrOverflow)
		}
		return T(tv), nil

	default: // unsigned integer kinds
		tv := math.Trunc(v)
		if math.IsNaN(tv) || tv < 0 || tv >= math.MaxUint64 {
			return zero, fmt.Errorf("converting %v to %s: %w", v, rt, ErrOverflow)
		}
		if reflect.New(rt).Elem().OverflowUint(uint64(tv)) {
			return zero, fmt.Errorf("converting %v to %s: %w", v, rt, ErrOverflow)
		}
		return T(tv), nil
	}
}

// ConvertPixel converts both components of p to the numeric type T,
// with the same truncation and overflow rules as Convert.
func ConvertPixel[T Scalar](p PixelCoord) (x, y T, err error) {
	x, err = Convert[T](p.X)
	if err != nil {
		return x, y, fmt.Errorf("pixel x: %w", err)
	}
	y, err = Convert[T](p.Y)
	if err != nil {
		return x, y, fmt.Errorf("pixel y: %w", err)
	}
	return x, y, nil
}
