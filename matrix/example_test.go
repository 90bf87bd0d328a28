package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/glmath/matrix"
	"github.com/katalvlaran/glmath/vector"
)

// ExampleMat3x2_Mul2x3 multiplies a 2×3 by a 3×2 matrix (rows × columns),
// producing a 2×2 result.
func ExampleMat3x2_Mul2x3() {
	a := matrix.Mat3x2[int32]{{1, 4}, {2, 5}, {3, 6}}
	b := matrix.Mat2x3[int32]{{7, 9, 11}, {8, 10, 12}}
	fmt.Println(a.Mul2x3(b))
	// Output:
	// [[58 139] [64 154]]
}

// ExampleMat4x4_InverseChecked shows the error path for a singular matrix.
func ExampleMat4x4_InverseChecked() {
	_, err := matrix.Mat4x4[float64]{}.InverseChecked()
	fmt.Println(err)

	inv, _ := matrix.Ident4x4[float64]().Scale(4).InverseChecked()
	fmt.Println(inv.MulVec(vector.New4(4.0, 8.0, 12.0, 16.0)))
	// Output:
	// Mat4x4.InverseChecked: matrix: singular matrix
	// [1 2 3 4]
}
