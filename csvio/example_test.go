// SPDX-License-Identifier: MIT
package csvio_test

import (
	"fmt"

	"github.com/katalvlaran/tabkit/csvio"
)

func ExampleSerializeToCSVFormattedBytes() {
	b, err := csvio.SerializeToCSVFormattedBytes([][]float64{{0.1, 0.2, 0.7}, {0.3, 0.4, 0.3}})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(string(b))

	f, _ := csvio.ReadCSV(b)
	fmt.Println(f.Columns(), f.DTypes())
	// Output:
	// 0,1,2
	// 0.1,0.2,0.7
	// 0.3,0.4,0.3
	// [0 1 2] [float64 float64 float64]
}
