// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for constructors and operators.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Constructors (NewZeros, NewFromFunc, ...) read memoryCheck and logger.
//   - Operators (AddAssign, Gemm, ...) read generic and logger.
package matrix

import (
	"github.com/sirupsen/logrus"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultGeneric keeps accelerated kernels enabled for the four native kinds.
	DefaultGeneric = false

	// DefaultMemoryCheck rejects owned allocations larger than physical memory.
	DefaultMemoryCheck = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNilLogger = "matrix: WithLogger: logger must be non-nil"
)

// pkgLogger is the process-wide fallback logger; replace it with SetLogger.
var pkgLogger = logrus.StandardLogger()

// SetLogger replaces the package logger used when no WithLogger option is
// given. A nil logger restores logrus' standard logger.
func SetLogger(l *logrus.Logger) {
	if l == nil {
		l = logrus.StandardLogger()
	}
	pkgLogger = l
}

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	generic     bool           // force blas.Generic kernels
	memoryCheck bool           // guard owned allocations
	logger      *logrus.Logger // dispatch/borrow diagnostics
}

// WithGeneric forces the pure-Go fallback kernels even for float32, float64,
// complex64 and complex128. Results match the accelerated path up to
// summation order.
func WithGeneric() Option {
	return func(o *Options) { o.generic = true }
}

// WithLogger routes diagnostics of one call (or one owned matrix and its
// views) to l. Panics on nil.
func WithLogger(l *logrus.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// WithMemoryCheck toggles the physical-memory guard on owned allocations.
func WithMemoryCheck(on bool) Option {
	return func(o *Options) { o.memoryCheck = on }
}

// NewOptions resolves opts against the defaults (exposed for diagnostics).
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

// Generic reports whether fallback kernels are forced.
func (o Options) Generic() bool { return o.generic }

// MemoryCheck reports whether the allocation guard is on.
func (o Options) MemoryCheck() bool { return o.memoryCheck }

// gatherOptions applies user setters over the documented defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		generic:     DefaultGeneric,
		memoryCheck: DefaultMemoryCheck,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}
	if o.logger == nil {
		o.logger = pkgLogger
	}

	return o
}
