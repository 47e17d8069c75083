package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hupe1980/crystio"
	"github.com/hupe1980/crystio/crystal"
	"github.com/hupe1980/crystio/dataset"
)

type columnInfo struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}

type readSummary struct {
	Files          int          `json:"files"`
	Rows           int          `json:"rows"`
	AbsentRemoved  int          `json:"absent_removed"`
	Experiments    int          `json:"experiments"`
	Cell           [6]float64   `json:"cell"`
	SpaceGroup     string       `json:"space_group"`
	SpaceGroupHall string       `json:"space_group_hall"`
	Index          []string     `json:"index"`
	Columns        []columnInfo `json:"columns"`
}

func newReadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "read [flags] file|dir ...",
		Short: "Read still-shot reflection files into one table.",
		Long: `Read still-shot reflection files into one table and print a summary.
Directories (and bucket prefixes ending in "/") are expanded to the .refl files below them.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runRead,
	}
	cmd.Flags().String("cell", "", "unit cell a,b,c,alpha,beta,gamma (required)")
	cmd.Flags().String("spacegroup", "", `space group symbol, e.g. "P 65 2 2" or "Hall: P 65 2 (0 0 1)" (required)`)
	cmd.Flags().String("backend", "", "parallel backend (serial, pool)")
	cmd.Flags().IntP("jobs", "j", 1, "number of file chunks read concurrently")
	cmd.Flags().StringSlice("extra", nil, "extra source columns to carry, e.g. xyz,global_refl_index")
	cmd.Flags().Bool("remove-absences", false, "drop systematically absent reflections")
	cmd.Flags().Bool("no-metadata-check", false, "skip the cell / crystal-system consistency check")
	cmd.Flags().Int("head", 0, "print the first N rows (text format only)")
	_ = cmd.MarkFlagRequired("cell")
	_ = cmd.MarkFlagRequired("spacegroup")
	return cmd
}

func runRead(cmd *cobra.Command, args []string) error {
	enc, err := outputCodec(cmd)
	if err != nil {
		return err
	}
	log, err := logger(cmd)
	if err != nil {
		return err
	}
	cell, err := crystal.ParseUnitCell(GetString(cmd, "cell"))
	if err != nil {
		return err
	}
	sg, err := crystal.SpaceGroupByName(GetString(cmd, "spacegroup"))
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	store, err := openStore(ctx, cmd)
	if err != nil {
		return err
	}
	paths, err := expandPaths(ctx, store, args)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return errors.New("no reflection files found")
	}

	ds, err := crystio.ReadStills(ctx, paths, cell, sg,
		crystio.WithBlobStore(store),
		crystio.WithBackend(GetString(cmd, "backend")),
		crystio.WithNumJobs(GetInt(cmd, "jobs")),
		crystio.WithExtraColumns(GetStringArray(cmd, "extra")...),
		crystio.WithMetadataCheck(!GetFlag(cmd, "no-metadata-check")),
		crystio.Verbose(GetFlag(cmd, "verbose")),
		crystio.WithLogger(log),
	)
	if err != nil {
		return err
	}

	removed := 0
	if GetFlag(cmd, "remove-absences") {
		kept, err := ds.RemoveAbsences()
		if err != nil {
			return err
		}
		removed = ds.NumRows() - kept.NumRows()
		ds = kept
	}

	summary, err := summarize(ds, len(paths), removed)
	if err != nil {
		return err
	}
	if enc != nil {
		return encode(cmd, enc, summary)
	}
	out := cmd.OutOrStdout()
	printSummary(out, summary)
	if n := GetInt(cmd, "head"); n > 0 {
		return printHead(out, ds, n)
	}
	return nil
}

func summarize(ds *dataset.DataSet, files, removed int) (readSummary, error) {
	s := readSummary{
		Files:          files,
		Rows:           ds.NumRows(),
		AbsentRemoved:  removed,
		Cell:           ds.Cell().Parameters(),
		SpaceGroup:     ds.SpaceGroup().String(),
		SpaceGroupHall: ds.SpaceGroup().Hall(),
		Index:          ds.Index(),
	}
	for _, c := range ds.Columns() {
		s.Columns = append(s.Columns, columnInfo{Name: c.Name(), Kind: c.Kind().String()})
	}
	ids, err := dataset.Values[int32](ds, crystio.IDColumn)
	if err != nil {
		return s, err
	}
	seen := make(map[int32]struct{})
	for _, id := range ids {
		seen[id] = struct{}{}
	}
	s.Experiments = len(seen)
	return s, nil
}

func printSummary(w io.Writer, s readSummary) {
	fmt.Fprintf(w, "files:        %d\n", s.Files)
	fmt.Fprintf(w, "reflections:  %d\n", s.Rows)
	if s.AbsentRemoved > 0 {
		fmt.Fprintf(w, "absent:       %d removed\n", s.AbsentRemoved)
	}
	fmt.Fprintf(w, "experiments:  %d\n", s.Experiments)
	fmt.Fprintf(w, "cell:         %g\n", s.Cell)
	fmt.Fprintf(w, "space group:  %s\n", s.SpaceGroup)
	fmt.Fprintf(w, "columns:\n")
	for _, c := range s.Columns {
		fmt.Fprintf(w, "  %-24s %s\n", c.Name, c.Kind)
	}
}

func printHead(w io.Writer, ds *dataset.DataSet, n int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	cols := ds.Columns()
	for _, c := range cols {
		fmt.Fprintf(tw, "%s\t", c.Name())
	}
	fmt.Fprintln(tw)
	for row := range min(n, ds.NumRows()) {
		for _, c := range cols {
			fmt.Fprintf(tw, "%s\t", formatCell(c, row))
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

func formatCell(c dataset.Column, row int) string {
	switch s := c.(type) {
	case *dataset.Series[int32]:
		return strconv.FormatInt(int64(s.At(row)), 10)
	case *dataset.Series[uint64]:
		return strconv.FormatUint(s.At(row), 10)
	case *dataset.Series[float64]:
		v := s.At(row)
		if math.IsNaN(v) {
			return "NaN"
		}
		return strconv.FormatFloat(v, 'g', 6, 64)
	case *dataset.Series[bool]:
		return strconv.FormatBool(s.At(row))
	}
	return "?"
}
