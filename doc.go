// Package crystio reads reflection tables written by crystallographic
// integration software into a single in-memory table.
//
// The main entry point is ReadStills, which merges the reflection files of a
// serial (still-shot) experiment. Each file is a msgpack container holding
// typed column buffers and a map of experiment identifiers; see package
// reflfile for the format.
//
// # Quick Start
//
//	sg, _ := crystal.SpaceGroupByName("P 65 2 2")
//	cell, _ := crystal.NewUnitCell(78, 78, 235, 90, 90, 120)
//
//	ds, err := crystio.ReadStills(ctx, paths, cell, sg)
//	ds, err := crystio.ReadStills(ctx, paths, cell, sg,
//	    crystio.WithBackend("pool"),
//	    crystio.WithNumJobs(8),
//	    crystio.WithExtraColumns("xyz"),
//	)
//
// # Output
//
// The table holds H, K, L (the row key), I, SigI and id, followed by the
// requested extra columns. SigI is the square root of the source variance and
// is NaN where the variance is negative. Experiment ids are shifted by the
// number of identifiers in all preceding files, so they are unique across the
// read. Vector extras such as "xyz" become "xyz.0", "xyz.1" and "xyz.2".
//
// # Storage
//
// Paths are resolved against a blobstore.BlobStore. The default is the local
// filesystem (memory-mapped); s3.Store and minio.Store read from object
// storage, and blobstore.MemoryStore serves byte slices already in memory.
//
// # Dispatch
//
// Files are partitioned into contiguous chunks (WithNumJobs) and handed to a
// parallel backend (WithBackend). Output order never depends on the backend
// or the number of jobs. An unavailable backend is reported as a warning and
// the read runs serially.
//
// # Logging
//
// Records go through a *Logger tagged logger=crystio.io.stills. With
// Verbose(true) every file produces an Info record with its path and row
// count. Nothing is ever written to standard output.
package crystio
