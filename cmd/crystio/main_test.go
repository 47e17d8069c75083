package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/crystio/codec"
	"github.com/hupe1980/crystio/testutil"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeStills(t *testing.T, n int) string {
	t.Helper()
	dir := t.TempDir()
	rng := testutil.NewRNG(11)
	for i := range n {
		data := rng.Reflections(20, 2, 2*i, int32(20*i)).Still().Marshal()
		require.NoError(t, os.WriteFile(filepath.Join(dir, fmt.Sprintf("shot_%d.refl", i)), data, 0o600))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shots.expt"), []byte("{}"), 0o600))
	return dir
}

func TestRead_JSON(t *testing.T) {
	dir := writeStills(t, 3)
	out, _, err := run(t, "read", "--cell", "78,78,235,90,90,120", "--spacegroup", "P 65 2 2",
		"--backend", "pool", "--jobs", "2", "--extra", "xyz", "--format", "json", dir)
	require.NoError(t, err)

	var s readSummary
	require.NoError(t, codec.Default.Unmarshal([]byte(out), &s))
	assert.Equal(t, 3, s.Files)
	assert.Equal(t, 60, s.Rows)
	assert.Equal(t, 6, s.Experiments)
	assert.Equal(t, "P 65 2 2", s.SpaceGroup)
	assert.Equal(t, [6]float64{78, 78, 235, 90, 90, 120}, s.Cell)
	require.Len(t, s.Columns, 9)
	assert.Equal(t, columnInfo{Name: "xyz.2", Kind: "float64"}, s.Columns[8])
}

func TestRead_TextVerboseAndAbsences(t *testing.T) {
	dir := writeStills(t, 2)
	out, stderr, err := run(t, "read", "-v", "--cell", "78 78 235 90 90 120", "--spacegroup", "P6522",
		"--remove-absences", "--head", "3",
		filepath.Join(dir, "shot_0.refl"), filepath.Join(dir, "shot_1.refl"))
	require.NoError(t, err)

	assert.Contains(t, out, "files:        2")
	assert.Contains(t, out, "SigI")
	assert.Contains(t, stderr, "logger=crystio.io.stills")
	assert.Contains(t, stderr, "shot_1.refl")
}

func TestRead_JSONLogs(t *testing.T) {
	dir := writeStills(t, 1)
	_, stderr, err := run(t, "read", "-v", "--log-format", "json", "--format", "go-json",
		"--cell", "78,78,235,90,90,120", "--spacegroup", "P 65 2 2", dir)
	require.NoError(t, err)
	assert.Contains(t, stderr, `"logger":"crystio.io.stills"`)
	assert.Contains(t, stderr, `"backend":"serial"`)
}

func TestRead_Errors(t *testing.T) {
	dir := writeStills(t, 1)

	_, _, err := run(t, "read", "--cell", "78,78,235,90,90,120", "--spacegroup", "P 2 3", dir)
	assert.ErrorContains(t, err, "inconsistent crystal metadata")

	_, _, err = run(t, "read", "--cell", "78,78,235,90,90,120", "--spacegroup", "P 65 2 2", "--format", "xml", dir)
	assert.ErrorContains(t, err, "unknown format")

	_, _, err = run(t, "read", "--cell", "78,78,235,90,90,120", "--spacegroup", "P 65 2 2",
		filepath.Join(dir, "missing.refl"))
	assert.ErrorContains(t, err, "missing.refl")

	_, _, err = run(t, "read", "--cell", "78,78,235,90,90,120", "--spacegroup", "P 65 2 2", "--log-format", "xml", dir)
	assert.ErrorContains(t, err, "unknown log format")
	assert.ErrorContains(t, err, "missing.refl")

	_, _, err = run(t, "read", "--spacegroup", "P 65 2 2", dir)
	assert.Error(t, err)

	_, _, err = run(t, "read", "--cell", "78,78,235,90,90,120", "--spacegroup", "P 65 2 2",
		"--minio-endpoint", "localhost:9000", dir)
	assert.ErrorContains(t, err, "requires --s3-bucket")
}

func TestAbsent(t *testing.T) {
	out, _, err := run(t, "absent", "--spacegroup", "P 21 21 21", "1,0,0", "2,0,0", "1,2,3")
	require.NoError(t, err)
	assert.Equal(t, "   1    0    0  absent\n   2    0    0  present\n   1    2    3  present\n", out)

	out, _, err = run(t, "absent", "--format", "json", "--spacegroup", "P 65 2 2", "0,0,1", "0,0,6")
	require.NoError(t, err)
	var got []absence
	require.NoError(t, codec.Default.Unmarshal([]byte(out), &got))
	assert.Equal(t, []absence{{HKL: [3]int32{0, 0, 1}, Absent: true}, {HKL: [3]int32{0, 0, 6}}}, got)

	stdlib, _, err := run(t, "absent", "--format", "json", "--spacegroup", "P 65 2 2", "0,0,1", "0,0,6")
	require.NoError(t, err)
	fast, _, err := run(t, "absent", "--format", "go-json", "--spacegroup", "P 65 2 2", "0,0,1", "0,0,6")
	require.NoError(t, err)
	assert.JSONEq(t, stdlib, fast)

	_, _, err = run(t, "absent", "--spacegroup", "P 1", "1,2")
	assert.ErrorContains(t, err, "want h,k,l")
}

func TestInspect(t *testing.T) {
	dir := writeStills(t, 1)
	path := filepath.Join(dir, "shot_0.refl")

	out, _, err := run(t, "inspect", path)
	require.NoError(t, err)
	assert.Contains(t, out, "dials::af::reflection_table v1, 20 rows, 2 experiments")
	assert.Contains(t, out, "Shoebox<>")
	assert.Contains(t, out, "experiment1")

	out, _, err = run(t, "inspect", "--format", "json", path)
	require.NoError(t, err)
	var info containerInfo
	require.NoError(t, codec.Default.Unmarshal([]byte(out), &info))
	assert.Equal(t, 20, info.Rows)
	assert.Equal(t, "none", info.Compression)
	assert.Equal(t, "vec3<double>", info.Schema["xyz"])
}

func TestVersion(t *testing.T) {
	Version = "v1.2.3"
	defer func() { Version = "" }()
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "crystio v1.2.3\n", out)
}
