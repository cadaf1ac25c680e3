package getisord_test

import (
	"fmt"
	"log"

	"github.com/katalvlaran/esda/getisord"
	"github.com/katalvlaran/esda/weights"
)

// ExampleGlobalG runs the classic six-point worked example: two loose
// clusters of points, high attribute values concentrated in one of them.
func ExampleGlobalG() {
	points := [][2]float64{
		{10, 10}, {20, 10}, {40, 10}, {15, 20}, {30, 20}, {30, 30},
	}
	y := []float64{2, 3, 3.2, 5, 8, 7}

	w, err := weights.DistanceBand(points, 15)
	if err != nil {
		log.Fatal(err)
	}

	res, err := getisord.GlobalG(y, w, getisord.WithPermutations(0))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("G = %.3f\n", res.G)
	fmt.Printf("p = %.3f\n", res.PNorm)

	// Output:
	// G = 0.557
	// p = 0.173
}

// ExampleLocalG scores each location separately; location 5 sits in the
// high-valued cluster and gets the largest standardized statistic.
func ExampleLocalG() {
	points := [][2]float64{
		{10, 10}, {20, 10}, {40, 10}, {15, 20}, {30, 20}, {30, 30},
	}
	y := []float64{2, 3, 3.2, 5, 8, 7}

	w, err := weights.DistanceBand(points, 15)
	if err != nil {
		log.Fatal(err)
	}

	res, err := getisord.LocalG(y, w, getisord.WithPermutations(0))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Zs[0] = %.3f\n", res.Zs[0])
	fmt.Printf("Zs[5] = %.3f\n", res.Zs[5])

	// Output:
	// Zs[0] = -0.621
	// Zs[5] = 1.778
}
