// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// layout is the shape/stride description of a rectangular window over a
// row-major backing slice.
//
// Logical (i, j) maps to physical index off + i*rs + j*cs with
// (rs, cs) = (stride, 1) for a plain window and (1, stride) when trans is set.
// Invariant: stride >= physical cols, so distinct logical cells of one layout
// never share a physical index.
type layout struct {
	off    int  // physical index of logical (0,0)
	rows   int  // logical rows
	cols   int  // logical cols
	stride int  // physical row length of the owner (leading dimension)
	trans  bool // logical = physicalᵀ
}

// packed returns the layout of a freshly allocated rows×cols owner.
func packed(rows, cols int) layout {
	return layout{rows: rows, cols: cols, stride: cols}
}

// rs and cs return the physical step between logical rows and columns.
func (l layout) rs() int {
	if l.trans {
		return 1
	}

	return l.stride
}

func (l layout) cs() int {
	if l.trans {
		return l.stride
	}

	return 1
}

// at maps logical (i, j) to a physical index; no bounds check.
func (l layout) at(i, j int) int { return l.off + i*l.rs() + j*l.cs() }

// t flips the orientation; t().t() is the identity.
func (l layout) t() layout {
	l.rows, l.cols = l.cols, l.rows
	l.trans = !l.trans

	return l
}

// sub rebases the layout on the logical rectangle [r0,r1)×[c0,c1).
// Bounds are the caller's responsibility.
func (l layout) sub(r0, c0, r1, c1 int) layout {
	out := l
	out.off = l.at(r0, c0)
	out.rows = r1 - r0
	out.cols = c1 - c0

	return out
}

// physDims returns the extent of the window in storage orientation.
func (l layout) physDims() (pr, pc int) {
	if l.trans {
		return l.cols, l.rows
	}

	return l.rows, l.cols
}

// contiguous reports whether the window occupies one unbroken run of storage.
func (l layout) contiguous() bool {
	pr, pc := l.physDims()

	return pr <= 1 || pc == l.stride
}

func (l layout) empty() bool { return l.rows == 0 || l.cols == 0 }

// area returns the physical rectangle covered by the window.
func (l layout) area() region {
	if l.empty() || l.stride == 0 {
		return region{}
	}
	pr, pc := l.physDims()
	r0, c0 := l.off/l.stride, l.off%l.stride

	return region{box: rect{r0: r0, c0: c0, r1: r0 + pr, c1: c0 + pc}}
}

// cell returns the one-element region of logical (i, j).
func (l layout) cell(i, j int) region { return region{box: cellAt(l.at(i, j), l.stride)} }

// row and col project one logical row or column to a 1-D line.
func (l layout) row(i int) line { return line{off: l.at(i, 0), n: l.cols, inc: l.cs(), stride: l.stride} }
func (l layout) col(j int) line { return line{off: l.at(0, j), n: l.rows, inc: l.rs(), stride: l.stride} }

// diag projects diagonal k; ok is false when the diagonal is empty.
// k >= 0 starts at (0, k), k < 0 starts at (-k, 0).
func (l layout) diag(k int) (ln line, ok bool) {
	var i0, j0, n int
	if k >= 0 {
		j0 = k
		n = min(l.rows, l.cols-k)
	} else {
		i0 = -k
		n = min(l.rows+k, l.cols)
	}
	if n <= 0 {
		return line{}, false
	}

	return line{off: l.at(i0, j0), n: n, inc: l.rs() + l.cs(), stride: l.stride}, true
}

// line is a 1-D strided projection: element i lives at off + i*inc.
// stride is the owner's leading dimension, used to map back to rectangles.
type line struct {
	off    int
	n      int
	inc    int
	stride int
}

func (ln line) at(i int) int { return ln.off + i*ln.inc }

// sub rebases the line on [start, end).
func (ln line) sub(start, end int) line {
	out := ln
	out.off = ln.at(start)
	out.n = end - start

	return out
}

// area returns the cells of the line. Rows and columns are exact rectangles;
// any other increment (diagonals) is kept cell-exact behind its bounding box.
func (ln line) area() region {
	if ln.n == 0 || ln.stride == 0 {
		return region{}
	}
	first := cellAt(ln.off, ln.stride)
	last := cellAt(ln.at(ln.n-1), ln.stride)
	g := region{box: rect{
		r0: min(first.r0, last.r0),
		c0: min(first.c0, last.c0),
		r1: max(first.r1, last.r1),
		c1: max(first.c1, last.c1),
	}}
	if ln.n > 1 && ln.inc != 1 && ln.inc != ln.stride {
		g.sparse, g.ln = true, ln
	}

	return g
}

func (ln line) cell(i int) region { return region{box: cellAt(ln.at(i), ln.stride)} }

// holds reports whether physical index p is one of the line's elements.
func (ln line) holds(p int) bool {
	d := p - ln.off

	return d >= 0 && d%ln.inc == 0 && d/ln.inc < ln.n
}

// region is a set of physical cells: the rectangle box, or, when sparse is
// set, only the elements of ln inside box.
type region struct {
	box    rect
	sparse bool
	ln     line
}

func (g region) empty() bool { return g.box.empty() }

// overlaps reports whether two regions share at least one cell.
// Sparse regions are compared element by element: O(min(n)).
func (g region) overlaps(o region) bool {
	if !g.box.overlaps(o.box) {
		return false
	}
	switch {
	case !g.sparse && !o.sparse:
		return true
	case g.sparse && (!o.sparse || g.ln.n <= o.ln.n):
		return g.meets(o)
	default:
		return o.meets(g)
	}
}

// meets walks the elements of sparse g against o.
func (g region) meets(o region) bool {
	for i := 0; i < g.ln.n; i++ {
		p := g.ln.at(i)
		if o.sparse {
			if o.ln.holds(p) {
				return true
			}
		} else if o.box.overlaps(cellAt(p, g.ln.stride)) {
			return true
		}
	}

	return false
}

// String renders the bounding box for log fields.
func (g region) String() string {
	return fmt.Sprintf("[%d,%d)x[%d,%d)", g.box.r0, g.box.r1, g.box.c0, g.box.c1)
}

// rect is a half-open physical rectangle [r0,r1)×[c0,c1).
type rect struct {
	r0, c0, r1, c1 int
}

func cellAt(p, stride int) rect {
	if stride == 0 {
		return rect{}
	}
	r, c := p/stride, p%stride

	return rect{r0: r, c0: c, r1: r + 1, c1: c + 1}
}

func (r rect) empty() bool { return r.r0 >= r.r1 || r.c0 >= r.c1 }

// overlaps reports whether two rectangles share at least one cell.
// Touching rectangles ([0,5) and [5,10)) do not overlap.
func (r rect) overlaps(o rect) bool {
	if r.empty() || o.empty() {
		return false
	}

	return r.r0 < o.r1 && o.r0 < r.r1 && r.c0 < o.c1 && o.c0 < r.c1
}
