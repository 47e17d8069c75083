package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hupe1980/crystio/crystal"
)

type absence struct {
	HKL    [3]int32 `json:"hkl"`
	Absent bool     `json:"absent"`
}

func newAbsentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "absent --spacegroup SG h,k,l ...",
		Short: "Report which Miller indices are systematically absent.",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runAbsent,
	}
	cmd.Flags().String("spacegroup", "", "space group symbol (required)")
	_ = cmd.MarkFlagRequired("spacegroup")
	return cmd
}

func runAbsent(cmd *cobra.Command, args []string) error {
	enc, err := outputCodec(cmd)
	if err != nil {
		return err
	}
	sg, err := crystal.SpaceGroupByName(GetString(cmd, "spacegroup"))
	if err != nil {
		return err
	}
	hkl := make([][3]int32, len(args))
	for i, arg := range args {
		if hkl[i], err = parseHKL(arg); err != nil {
			return err
		}
	}

	flags := crystal.HKLIsAbsent(hkl, sg)
	out := make([]absence, len(hkl))
	for i := range hkl {
		out[i] = absence{HKL: hkl[i], Absent: flags[i]}
	}
	if enc != nil {
		return encode(cmd, enc, out)
	}
	w := cmd.OutOrStdout()
	for _, a := range out {
		state := "present"
		if a.Absent {
			state = "absent"
		}
		fmt.Fprintf(w, "%4d %4d %4d  %s\n", a.HKL[0], a.HKL[1], a.HKL[2], state)
	}
	return nil
}

func parseHKL(s string) ([3]int32, error) {
	var hkl [3]int32
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return hkl, fmt.Errorf("miller index %q: want h,k,l", s)
	}
	for j, p := range parts {
		v, err := strconv.ParseInt(strings.TrimSpace(p), 10, 32)
		if err != nil {
			return hkl, fmt.Errorf("miller index %q: %w", s, err)
		}
		hkl[j] = int32(v)
	}
	return hkl, nil
}
