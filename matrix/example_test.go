// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/facloc/matrix"
)

// ExampleNewDenseFromRows builds a 2×3 client×facility cost table and reads
// one cell back.
func ExampleNewDenseFromRows() {
	m, err := matrix.NewDenseFromRows([][]float64{
		{0, 4, 9},
		{3, 0, 7},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	v, _ := m.At(1, 2)
	fmt.Println(m.Rows(), m.Cols(), v)
	fmt.Print(m)
	// Output:
	// 2 3 7
	// [0, 4, 9]
	// [3, 0, 7]
}

// ExampleValidateNoNaN shows that +Inf passes the NaN policy while the
// finiteness validator rejects it.
func ExampleValidateNoNaN() {
	m, _ := matrix.NewDenseFromRows([][]float64{{1, math.Inf(1)}})

	fmt.Println(matrix.ValidateNoNaN(m) == nil)
	fmt.Println(errors.Is(matrix.ValidateFinite(m), matrix.ErrNaNInf))
	// Output:
	// true
	// true
}
