package main

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/hupe1980/crystio"
	"github.com/hupe1980/crystio/codec"
)

// Version is set at link time by release builds.
var Version string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "crystio",
		Short:         "Read crystallographic reflection tables.",
		Long:          "Read, inspect and filter reflection tables written by still-shot integration.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().BoolP("verbose", "v", false, "log every file read to stderr")
	root.PersistentFlags().String("format", "text", "output format (text, json or go-json)")
	root.PersistentFlags().String("log-format", "text", "stderr log format (text or json)")
	root.PersistentFlags().String("s3-bucket", "", "read paths as keys of this bucket")
	root.PersistentFlags().String("prefix", "", "key prefix prepended to every path in the bucket")
	root.PersistentFlags().String("minio-endpoint", "", "S3-compatible endpoint (host:port) serving --s3-bucket")
	root.PersistentFlags().Bool("minio-insecure", false, "talk plain HTTP to --minio-endpoint")
	root.PersistentFlags().Int("cache-mb", 0, "cache fetched objects in memory, up to this many MiB")

	root.AddCommand(newReadCmd(), newAbsentCmd(), newInspectCmd(), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			v := Version
			if v == "" {
				if info, ok := debug.ReadBuildInfo(); ok {
					v = info.Main.Version
				} else {
					v = "(unknown version)"
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "crystio %s\n", v)
		},
	}
}

// GetFlag gets an expected bool flag, or panics if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		panic(err)
	}
	return r
}

// GetInt gets an expected int flag, or panics if an error arises.
func GetInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		panic(err)
	}
	return r
}

// GetString gets an expected string flag, or panics if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		panic(err)
	}
	return r
}

// GetStringArray gets an expected string slice flag, or panics if an error arises.
func GetStringArray(cmd *cobra.Command, flag string) []string {
	r, err := cmd.Flags().GetStringSlice(flag)
	if err != nil {
		panic(err)
	}
	return r
}

// outputCodec resolves --format: nil for text, otherwise the named codec.
func outputCodec(cmd *cobra.Command) (codec.Codec, error) {
	f := GetString(cmd, "format")
	if f == "text" {
		return nil, nil
	}
	c, ok := codec.ByName(f)
	if !ok {
		return nil, fmt.Errorf("unknown format %q (want text, json or go-json)", f)
	}
	return c, nil
}

func encode(cmd *cobra.Command, c codec.Codec, v any) error {
	return codec.Encode(cmd.OutOrStdout(), c, v)
}

// logger sends library records to the command's stderr.
func logger(cmd *cobra.Command) (*crystio.Logger, error) {
	switch f := GetString(cmd, "log-format"); f {
	case "text":
		return crystio.NewTextLogger(cmd.ErrOrStderr(), slog.LevelInfo), nil
	case "json":
		return crystio.NewJSONLogger(cmd.ErrOrStderr(), slog.LevelInfo), nil
	default:
		return nil, fmt.Errorf("unknown log format %q (want text or json)", f)
	}
}
