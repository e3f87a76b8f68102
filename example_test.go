package matcache_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/matcache"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleCachedInverse
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Invert A = [[2,0],[0,2]] three times around one invalidation:
//	  1st call — cache miss, computes [[0.5,0],[0,0.5]]
//	  2nd call — cache hit, identical matrix, notifier fires
//	  SetMatrix(I) — invalidates the slot
//	  3rd call — fresh compute of I^{-1} = I, notifier silent again
//
// Use case:
//
//	Repeated solves against a matrix that changes rarely.
//
// Complexity: O(n³) per miss, O(n²) per hit.
func ExampleCachedInverse() {
	cm, err := matcache.FromRows([][]float64{
		{2, 0},
		{0, 2},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	// Count hit signals instead of logging them.
	notified := 0
	note := matcache.WithNotifier(matcache.NotifierFunc(func(int) { notified++ }))

	inv, err := matcache.CachedInverse(cm, note)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("first:  [[%.1f %.1f] [%.1f %.1f]] notified=%d\n",
		inv.At(0, 0), inv.At(0, 1), inv.At(1, 0), inv.At(1, 1), notified)

	inv, _ = matcache.CachedInverse(cm, note)
	fmt.Printf("second: [[%.1f %.1f] [%.1f %.1f]] notified=%d\n",
		inv.At(0, 0), inv.At(0, 1), inv.At(1, 0), inv.At(1, 1), notified)

	cm.SetMatrix(mat.NewDense(2, 2, []float64{1, 0, 0, 1}))
	inv, _ = matcache.CachedInverse(cm, note)
	fmt.Printf("reset:  [[%.1f %.1f] [%.1f %.1f]] notified=%d\n",
		inv.At(0, 0), inv.At(0, 1), inv.At(1, 0), inv.At(1, 1), notified)

	// Output:
	// first:  [[0.5 0.0] [0.0 0.5]] notified=0
	// second: [[0.5 0.0] [0.0 0.5]] notified=1
	// reset:  [[1.0 0.0] [0.0 1.0]] notified=1
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleCachedInverse_singular
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Attempt to invert the all-zero 2×2 matrix. The solve fails with
//	ErrNotInvertible and the cache slot stays unset — no garbage is stored.
func ExampleCachedInverse_singular() {
	cm := matcache.New(mat.NewDense(2, 2, nil))

	_, err := matcache.CachedInverse(cm, matcache.WithNotifier(matcache.NewNopNotifier()))
	fmt.Println("invertible:", err == nil)

	_, ok := cm.CachedInverse()
	fmt.Println("cached:", ok)

	// Output:
	// invertible: false
	// cached: false
}
