// SPDX-License-Identifier: MIT

// Package matrix - translation of windows into kernel descriptors.
//
// Purpose:
//   - Pick the kernel table for one operator call (accelerated or generic).
//   - Map a layout to blas.General and a line to blas.Vector: the owner's
//     stride becomes the leading dimension, a transposed layout becomes
//     Trans = Yes, and the slice starts at the window's offset.
//   - Reject operand overlaps the kernels cannot handle.
//
// Notes:
//   - Empty windows never reach the slicing step: their offset may lie past
//     the end of the buffer.
package matrix

import (
	"github.com/katalvlaran/linalg/blas"
	"github.com/katalvlaran/linalg/scalar"
	log "github.com/sirupsen/logrus"
)

// kernelsFor returns the table op runs on and records the choice at Debug.
func kernelsFor[T scalar.Number](op string, o Options) blas.Kernels[T] {
	var k blas.Kernels[T]
	if o.generic {
		k = blas.Generic[T]()
	} else {
		k = blas.For[T]()
	}
	if o.logger.IsLevelEnabled(log.DebugLevel) {
		o.logger.WithFields(log.Fields{
			"op":          op,
			"kernels":     k.Name(),
			"accelerated": !o.generic && blas.Accelerated[T](),
		}).Debug("matrix: dispatch")
	}

	return k
}

// loopFor records at Debug that op has no kernel and runs as a plain loop,
// whatever WithGeneric says.
func loopFor[T scalar.Number](op string, o Options) {
	if o.logger.IsLevelEnabled(log.DebugLevel) {
		o.logger.WithFields(log.Fields{
			"op":          op,
			"kernels":     "loop/" + scalar.KindOf[T]().String(),
			"accelerated": false,
		}).Debug("matrix: dispatch")
	}
}

// generalOf describes the physical rectangle of o for the kernels.
func generalOf[T any](o operand[T]) (blas.General[T], error) {
	pr, pc := o.lay.physDims()
	data := o.st.data
	if o.lay.empty() {
		data = nil
	} else {
		data = data[o.lay.off:]
	}

	return blas.NewGeneral(data, pr, pc, o.lay.stride, blas.Of(o.lay.trans))
}

// vectorOf describes a line for the kernels.
func vectorOf[T any](v lineOperand[T]) (blas.Vector[T], error) {
	if v.ln.n == 0 {
		return blas.NewVector[T](nil, 0, 1)
	}

	return blas.NewVector(v.st.data[v.ln.off:], v.ln.n, v.ln.inc)
}

// sameStorage reports whether two windows share a buffer and their physical
// cells intersect.
func sameStorage[T any](a, b *store[T], ra, rb region) bool {
	return a == b && ra.overlaps(rb)
}

// lineRows projects every logical row of o to a line, the unit element-wise
// operators run their kernels on. A contiguous window in storage
// orientation collapses into a single line.
func lineRows[T any](o operand[T]) []lineOperand[T] {
	if o.lay.empty() {
		return nil
	}
	if !o.lay.trans && o.lay.contiguous() {
		ln := line{off: o.lay.off, n: o.lay.rows * o.lay.cols, inc: 1, stride: o.lay.stride}

		return []lineOperand[T]{{st: o.st, ln: ln, id: o.id}}
	}
	out := make([]lineOperand[T], o.lay.rows)
	for i := range out {
		out[i] = o.lineAt(o.lay.row(i))
	}

	return out
}

// pairedRows projects dst and src (same logical shape) to matching lines.
// The collapsed form is used only when both sides collapse.
func pairedRows[T any](dst, src operand[T]) (d, s []lineOperand[T]) {
	d, s = lineRows(dst), lineRows(src)
	if len(d) == len(s) {
		return d, s
	}
	d = make([]lineOperand[T], dst.lay.rows)
	s = make([]lineOperand[T], src.lay.rows)
	for i := range d {
		d[i] = dst.lineAt(dst.lay.row(i))
		s[i] = src.lineAt(src.lay.row(i))
	}

	return d, s
}
