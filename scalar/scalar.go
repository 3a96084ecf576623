// SPDX-License-Identifier: MIT

// Package scalar describes the numeric element capability used by the
// linalg packages.
//
// Purpose:
//   - One generic constraint (Number) replaces per-type duplicates for real
//     and complex, single and double precision elements.
//   - Kind classifies an element type so the blas package can pick an
//     accelerated kernel table for the four kinds it understands.
//   - Zero/One/Conj/Abs2/Real give generic code the few operations that
//     differ between real and complex elements.
//
// Determinism & Performance:
//   - Exact built-in types take a type-switch fast path.
//   - Named types (type Celsius float64) fall back to reflect; correct, slower.
package scalar

import (
	"math/cmplx"
	"reflect"
)

// Integer is the set of built-in integer element types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is the set of real floating-point element types.
type Float interface {
	~float32 | ~float64
}

// Complex is the set of complex element types (a pair of reals).
type Complex interface {
	~complex64 | ~complex128
}

// Real is every non-complex numeric element type.
type Real interface {
	Integer | Float
}

// Number supports + - * / and is accepted by every arithmetic operator.
type Number interface {
	Real | Complex
}

// Kind identifies an element type for kernel selection.
type Kind uint8

// Element kinds. KindOther covers everything the accelerated backend does not
// understand (integers, named float types, ...).
const (
	KindOther Kind = iota
	KindFloat32
	KindFloat64
	KindComplex64
	KindComplex128
)

var kindNames = [...]string{
	KindOther:      "other",
	KindFloat32:    "float32",
	KindFloat64:    "float64",
	KindComplex64:  "complex64",
	KindComplex128: "complex128",
}

// String returns the lower-case kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return kindNames[KindOther]
}

// KindOf reports the Kind of T. Only the exact built-in types map to an
// accelerated kind; named types report KindOther.
func KindOf[T any]() Kind {
	var z T
	switch any(z).(type) {
	case float32:
		return KindFloat32
	case float64:
		return KindFloat64
	case complex64:
		return KindComplex64
	case complex128:
		return KindComplex128
	}

	return KindOther
}

// IsComplex reports whether T's underlying type is complex64 or complex128.
func IsComplex[T any]() bool {
	var z T
	k := reflect.TypeOf(&z).Elem().Kind()

	return k == reflect.Complex64 || k == reflect.Complex128
}

// IsInteger reports whether T's underlying type is an integer; integer
// division by zero panics, so callers check divisors first.
func IsInteger[T any]() bool {
	var z T
	switch reflect.TypeOf(&z).Elem().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}

	return false
}

// Zero returns the additive identity.
func Zero[T Number]() T {
	var z T

	return z
}

// One returns the multiplicative identity.
func One[T Number]() T {
	return T(1)
}

// Conj returns the complex conjugate of x, or x itself for real types.
func Conj[T Number](x T) T {
	switch v := any(x).(type) {
	case complex128:
		return any(cmplx.Conj(v)).(T)
	case complex64:
		return any(complex(real(v), -imag(v))).(T)
	case float64, float32, int, int64, int32:
		return x
	}

	rv := reflect.ValueOf(&x).Elem()
	if k := rv.Kind(); k == reflect.Complex64 || k == reflect.Complex128 {
		c := rv.Complex()
		rv.SetComplex(complex(real(c), -imag(c)))
	}

	return x
}

// Abs2 returns the squared magnitude |x|² as float64 (x*x for reals,
// re²+im² for complex values).
func Abs2[T Number](x T) float64 {
	switch v := any(x).(type) {
	case float64:
		return v * v
	case float32:
		f := float64(v)
		return f * f
	case complex128:
		return real(v)*real(v) + imag(v)*imag(v)
	case complex64:
		re, im := float64(real(v)), float64(imag(v))
		return re*re + im*im
	}

	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Complex64, reflect.Complex128:
		c := rv.Complex()
		return real(c)*real(c) + imag(c)*imag(c)
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f * f
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		f := float64(rv.Uint())
		return f * f
	default:
		f := float64(rv.Int())
		return f * f
	}
}

// RealPart returns the real component of x as float64.
func RealPart[T Number](x T) float64 {
	switch v := any(x).(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case complex128:
		return real(v)
	case complex64:
		return float64(real(v))
	}

	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Complex64, reflect.Complex128:
		return real(rv.Complex())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint())
	default:
		return float64(rv.Int())
	}
}
