package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/hupe1980/crystio/reflfile"
)

type containerInfo struct {
	Path        string            `json:"path"`
	Tag         string            `json:"tag"`
	Version     int               `json:"version"`
	Rows        int               `json:"rows"`
	Compression string            `json:"compression"`
	Identifiers map[int]string    `json:"identifiers"`
	Schema      map[string]string `json:"schema"`
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect file ...",
		Short: "Print the header and column schema of reflection files.",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runInspect,
	}
}

func runInspect(cmd *cobra.Command, args []string) error {
	enc, err := outputCodec(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	store, err := openStore(ctx, cmd)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for _, name := range args {
		c, err := reflfile.Open(ctx, store, name, nil)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		info := containerInfo{
			Path:        name,
			Tag:         c.Tag,
			Version:     c.Version,
			Rows:        c.NumRows,
			Compression: c.Compression.String(),
			Identifiers: c.Identifiers,
			Schema:      c.Schema,
		}
		if enc != nil {
			if err := encode(cmd, enc, info); err != nil {
				return err
			}
			continue
		}

		fmt.Fprintf(w, "%s: %s v%d, %d rows, %d experiments, compression %s\n",
			info.Path, info.Tag, info.Version, info.Rows, len(info.Identifiers), info.Compression)
		for _, col := range c.ColumnNames() {
			fmt.Fprintf(w, "  %-28s %s\n", col, c.Schema[col])
		}
		ids := make([]int, 0, len(c.Identifiers))
		for id := range c.Identifiers {
			ids = append(ids, id)
		}
		slices.Sort(ids)
		for _, id := range ids {
			fmt.Fprintf(w, "  experiment %-17d %s\n", id, c.Identifiers[id])
		}
	}
	return nil
}
