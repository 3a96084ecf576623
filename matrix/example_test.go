// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/linalg/matrix"
)

// ExampleGemm multiplies through a transposed view without copying.
func ExampleGemm() {
	a, _ := matrix.FromSlice(2, 3, []float64{1, 2, 3, 4, 5, 6})
	c, _ := matrix.Zeros[float64](2, 2)

	// c = a * aᵀ
	if err := matrix.Gemm(1, a, a.T(), 0, c); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(c)

	// Output:
	// [14, 32]
	// [32, 77]
}

// ExampleMat_SplitAtRow fills two disjoint halves concurrently.
func ExampleMat_SplitAtRow() {
	m, _ := matrix.Zeros[int](4, 2)
	top, bottom, err := m.SplitAtRow(2)
	if err != nil {
		fmt.Println(err)
		return
	}

	var wg sync.WaitGroup
	for k, half := range []matrix.MutView[int]{top, bottom} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = half.Fill(k + 1)
		}()
	}
	wg.Wait()
	_ = top.Release()
	_ = bottom.Release()
	fmt.Print(m)

	// Output:
	// [1, 1]
	// [1, 1]
	// [2, 2]
	// [2, 2]
}

// ExampleMat_SliceMut shows an overlapping borrow being rejected.
func ExampleMat_SliceMut() {
	m, _ := matrix.Zeros[float64](10, 10)
	a, _ := m.SliceMut(0, 0, 5, 5)
	_, err := m.SliceMut(4, 4, 6, 6)
	fmt.Println(errors.Is(err, matrix.ErrAliasing))

	b, err := m.SliceMut(5, 5, 10, 10) // touches a only at a corner
	fmt.Println(err == nil)
	_ = a.Release()
	_ = b.Release()

	// Output:
	// true
	// true
}

// ExampleView_IterRows walks the rows of a window in reverse.
func ExampleView_IterRows() {
	m, _ := matrix.FromFunc(3, 3, func(i, j int) int { return 3*i + j })
	v, _ := m.Slice(0, 1, 3, 3)
	for i, row := range v.IterRows().Backward() {
		fmt.Print(i, " ", row)
	}

	// Output:
	// 2 [7, 8]
	// 1 [4, 5]
	// 0 [1, 2]
}

// ExampleNorm2 uses the squared modulus of complex elements.
func ExampleNorm2() {
	x, _ := matrix.ColFromSlice([]complex128{3 + 4i, 1i})
	n2, _ := matrix.Norm2(x)
	fmt.Println(n2)

	// Output:
	// 26
}
