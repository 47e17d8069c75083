// Package reflfile decodes packed reflection-table containers.
//
// A container is a msgpack array
//
//	["dials::af::reflection_table", 1, {
//	    "identifiers": {0: "expt-0", ...},
//	    "nrows": N,
//	    "data": {"miller_index": ["cctbx::miller::index<>", [N, <bin>]], ...},
//	}]
//
// where every column buffer holds N rows of a fixed-width element type in
// little-endian, row-major order. Column types form a closed set (see
// ColumnType); a requested column with any other type tag is rejected, while
// columns that were not requested are skipped without being inspected.
//
// Files may additionally be wrapped in a zstd, gzip or lz4 frame.
package reflfile
