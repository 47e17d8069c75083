package crystio

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/crystio/blobstore"
	"github.com/hupe1980/crystio/crystal"
	"github.com/hupe1980/crystio/dataset"
	"github.com/hupe1980/crystio/internal/compress"
	"github.com/hupe1980/crystio/internal/conv"
	"github.com/hupe1980/crystio/parallel"
	"github.com/hupe1980/crystio/reflfile"
)

// ReadStills reads reflection files from still-shot experiments into one
// table keyed by Miller index.
//
// The result holds H, K, L, I, SigI and id, followed by any extra columns, in
// the order of paths. Experiment ids are renumbered so they are unique across
// files. cell and sg are authoritative for all files and are validated before
// anything is read. The first failing file aborts the read; its error is a
// *FileError carrying the path.
//
//	sg, _ := crystal.SpaceGroupByName("P 65 2 2")
//	cell, _ := crystal.NewUnitCell(78, 78, 235, 90, 90, 120)
//	ds, err := crystio.ReadStills(ctx, paths, cell, sg,
//	    crystio.WithBackend("pool"), crystio.WithNumJobs(4))
func ReadStills(ctx context.Context, paths []string, cell crystal.UnitCell, sg *crystal.SpaceGroup, opts ...Option) (*dataset.DataSet, error) {
	o := applyOptions(opts)
	start := time.Now()

	ds, err := readStills(ctx, paths, cell, sg, &o)

	elapsed := time.Since(start)
	rows := 0
	if ds != nil {
		rows = ds.NumRows()
	}
	o.metricsCollector.RecordRead(len(paths), rows, elapsed, err)
	if o.verbose {
		o.logger.LogRead(ctx, len(paths), rows, elapsed, err)
	}
	return ds, err
}

func readStills(ctx context.Context, paths []string, cell crystal.UnitCell, sg *crystal.SpaceGroup, o *options) (*dataset.DataSet, error) {
	if err := validateMetadata(cell, sg, o.checkMetadata); err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, ErrNoFiles
	}

	backend := selectBackend(ctx, o)
	o.logger = o.logger.WithBackend(backend.Name())
	plan := newColumnPlan(o)
	columns := plan.sourceColumns()

	stills := make([]*stillTable, len(paths))
	task := func(ctx context.Context, i int) error {
		t, err := readStill(ctx, paths[i], columns, plan, o)
		if err != nil {
			return &FileError{Path: paths[i], Err: err}
		}
		stills[i] = t
		return nil
	}
	if err := backend.Run(ctx, parallel.Partition(len(paths), o.numJobs), task); err != nil {
		return nil, err
	}

	// offsets follow file order, never completion order
	tables := make([]*dataset.DataSet, len(paths))
	offset := 0
	for i, t := range stills {
		if err := checkIDRange(t.localIDs, offset); err != nil {
			return nil, &FileError{Path: paths[i], Err: fmt.Errorf("experiment ids: %w", err)}
		}
		var ids []int32
		ids, offset = RemapIDs(t.localIDs, t.identifiers, offset)
		if _, err := conv.IntToInt32(offset); err != nil {
			return nil, &FileError{Path: paths[i], Err: fmt.Errorf("experiment ids: %w", err)}
		}
		ds, err := t.dataSet(cell, sg, ids)
		if err != nil {
			return nil, &FileError{Path: paths[i], Err: err}
		}
		tables[i] = ds
		stills[i] = nil
	}
	return dataset.Concat(tables...)
}

// readStill decodes one file. The fetched bytes, and the decompressed bytes
// of a compressed file, count against the controller's memory budget until
// the file's columns are built.
func readStill(ctx context.Context, path string, columns []string, plan columnPlan, o *options) (*stillTable, error) {
	start := time.Now()
	t, err := func() (*stillTable, error) {
		data, release, err := blobstore.ReadAll(ctx, o.store, path)
		if err != nil {
			return nil, err
		}
		defer func() { _ = release() }()

		if err := o.controller.AcquireIO(ctx, len(data)); err != nil {
			return nil, err
		}
		reserved := int64(len(data))
		if err := o.controller.AcquireMemory(ctx, reserved); err != nil {
			return nil, err
		}
		defer func() { o.controller.ReleaseMemory(reserved) }()

		raw, format, err := compress.Decompress(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", reflfile.ErrCorruptContainer, err)
		}
		if format != compress.None {
			// one combined request, so a file never waits on its own reservation
			o.controller.ReleaseMemory(reserved)
			reserved = int64(len(data)) + int64(len(raw))
			if err := o.controller.AcquireMemory(ctx, reserved); err != nil {
				reserved = 0
				return nil, err
			}
		}

		c, err := reflfile.Decode(raw, columns)
		if err != nil {
			return nil, err
		}
		return buildStill(c, plan)
	}()
	elapsed := time.Since(start)

	rows := 0
	if t != nil {
		rows = t.numRows()
	}
	o.metricsCollector.RecordFile(path, rows, elapsed, err)
	if err != nil {
		return nil, err
	}
	if o.verbose {
		o.logger.LogFile(ctx, path, rows, len(t.identifiers), o.controller.MemoryUsage(), elapsed)
	}
	return t, nil
}

// selectBackend resolves the requested backend, falling back to serial
// execution with a warning when it cannot be used.
func selectBackend(ctx context.Context, o *options) parallel.Backend {
	name := o.backend
	if name == "" || name == parallel.SerialName {
		return parallel.Serial{}
	}
	if !o.capabilitiesOrDetect().Parallel {
		o.logger.LogFallback(ctx, name, fmt.Errorf("%w: single CPU", parallel.ErrBackendUnavailable))
		return parallel.Serial{}
	}
	b, err := parallel.Lookup(name, o.parallelConfig())
	if err != nil {
		o.logger.LogFallback(ctx, name, err)
		return parallel.Serial{}
	}
	return b
}

// validateMetadata checks the caller-supplied cell and space group.
func validateMetadata(cell crystal.UnitCell, sg *crystal.SpaceGroup, checkSystem bool) error {
	if sg == nil {
		return fmt.Errorf("%w: no space group", ErrInconsistentMetadata)
	}
	if err := cell.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInconsistentMetadata, err)
	}
	if checkSystem && !cell.CompatibleWith(sg) {
		return fmt.Errorf("%w: cell %s does not fit %s (%s)", ErrInconsistentMetadata, cell, sg, sg.CrystalSystem())
	}
	return nil
}
