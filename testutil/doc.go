// Package testutil provides testing utilities for crystio.
//
// This package is intended for use in tests and benchmarks only.
// It builds synthetic reflection containers and deterministic reflection data.
//
// # Synthetic Stills
//
//	rng := testutil.NewRNG(8675309)
//	refls := rng.Reflections(1000, 5, 0, 0) // rows, experiments, shot offset, global offset
//	data := refls.Still().Marshal()
//
// # Hand-built Containers
//
//	data := testutil.NewStill(2).
//	    Identifiers(map[int]string{0: "expt-0"}).
//	    MillerIndex("miller_index", [][3]int32{{1, 0, 0}, {0, 2, 1}}).
//	    Float64("intensity.sum.value", []float64{10, 20}).
//	    Marshal()
package testutil
