// SPDX-License-Identifier: MIT
// Package csvio_test contains round-trip and format tests for the CSV codec.
package csvio_test

import (
	"bytes"
	"io"
	"log/slog"
	"math"
	"os"
	"testing"

	"github.com/katalvlaran/tabkit/csvio"
	"github.com/katalvlaran/tabkit/internal/logx"
	"github.com/katalvlaran/tabkit/table"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// mustFrame builds a Frame with the given kind on every column or fails the test.
func mustFrame(t *testing.T, cols []string, kind table.DType, rows [][]float64) *table.Frame {
	t.Helper()
	f, err := table.NewFrame(cols, rows)
	require.NoError(t, err)
	kinds := make([]table.DType, len(cols))
	for j := range kinds {
		kinds[j] = kind
	}
	f, err = f.WithDTypes(kinds...)
	require.NoError(t, err)

	return f
}

// TestSerializeNumericArray: a plain int array gets "0","1","2" labels.
func TestSerializeNumericArray(t *testing.T) {
	t.Parallel()

	src := [][]int{{1, 2, 3}, {4, 5, 6}}
	want := mustFrame(t, []string{"0", "1", "2"}, table.Int64, [][]float64{{1, 2, 3}, {4, 5, 6}})

	b, err := csvio.SerializeToCSVFormattedBytes(src)
	require.NoError(t, err)
	require.Equal(t, "0,1,2\n1,2,3\n4,5,6\n", string(b))

	got, err := csvio.ReadCSV(b)
	require.NoError(t, err)
	require.True(t, want.Equal(got), "got %v", got)
}

// TestSerializeLabeledFrame: explicit labels survive, not default indices.
func TestSerializeLabeledFrame(t *testing.T) {
	t.Parallel()

	src := mustFrame(t, []string{"a", "b", "c"}, table.Int64, [][]float64{{1, 2, 3}, {4, 5, 6}})

	b, err := csvio.SerializeToCSVFormattedBytes(src)
	require.NoError(t, err)
	require.Equal(t, "a,b,c\n1,2,3\n4,5,6\n", string(b))

	got, err := csvio.ReadCSV(b)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, got.Columns())
	require.True(t, src.Equal(got))
}

// TestSerializeFloatTensor: float64 tensors keep their kind through ".0".
func TestSerializeFloatTensor(t *testing.T) {
	t.Parallel()

	nd, err := table.NewNDArray([]int{2, 3}, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	want := mustFrame(t, []string{"0", "1", "2"}, table.Float64, [][]float64{{1, 2, 3}, {4, 5, 6}})

	b, err := csvio.SerializeToCSVFormattedBytes(nd)
	require.NoError(t, err)
	require.Equal(t, "0,1,2\n1.0,2.0,3.0\n4.0,5.0,6.0\n", string(b))

	got, err := csvio.ReadCSV(b)
	require.NoError(t, err)
	require.True(t, want.Equal(got), "got %v", got)
}

// TestRoundTripAllSources: parse(serialize(T)) == Canonical(T) for every source kind.
func TestRoundTripAllSources(t *testing.T) {
	t.Parallel()

	dense, err := table.NewDenseFrom(2, 2, []float64{0.1, -2.5, 1e-7, 3e20})
	require.NoError(t, err)
	emptyLabel, err := table.NewFrame([]string{""}, [][]float64{{1}, {2}})
	require.NoError(t, err)
	labeled, err := table.NewFrame([]string{"x,y", "q\"uote"}, [][]float64{{math.NaN(), math.Inf(1)}, {math.Inf(-1), 0.5}})
	require.NoError(t, err)

	tests := []struct {
		name string
		src  any
	}{
		{"float rows", [][]float64{{0.1, 0.2, 0.7}, {1.0 / 3, 2.0 / 3, 0}}},
		{"int64 rows", [][]int64{{-1, 0}, {1 << 40, 7}}},
		{"dense", dense},
		{"awkward labels and specials", labeled},
		{"single empty label", emptyLabel},
		{"gonum", mat.NewDense(2, 2, []float64{1, 2.25, 123456789.125, -0.0001})},
		{"float32 rows", [][]float32{{0.5, 0.25}}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			src, err := table.From(tc.src)
			require.NoError(t, err)
			want, err := table.Canonical(src)
			require.NoError(t, err)

			b, err := csvio.SerializeToCSVFormattedBytes(tc.src)
			require.NoError(t, err)
			got, err := csvio.ReadCSV(b)
			require.NoError(t, err)
			require.True(t, want.Equal(got), "csv:\n%s", b)
		})
	}
}

// TestSerializeRejects covers the failure paths.
func TestSerializeRejects(t *testing.T) {
	t.Parallel()

	rank1, err := table.NewNDArray([]int{3}, []float64{1, 2, 3})
	require.NoError(t, err)
	badInts := mustFrame(t, []string{"a"}, table.Int64, [][]float64{{1.5}})
	noCols, err := table.NewDense(2, 0)
	require.NoError(t, err)

	tests := []struct {
		name string
		src  any
		want error
	}{
		{"nil", nil, table.ErrNilTable},
		{"string", "1,2,3", table.ErrUnsupportedType},
		{"flat slice", []float64{1, 2, 3}, table.ErrNotTwoDimensional},
		{"rank 1 tensor", rank1, table.ErrNotTwoDimensional},
		{"ragged", [][]float64{{1}, {1, 2}}, table.ErrRagged},
		{"fractional int column", badInts, csvio.ErrNonIntegral},
		{"no columns", noCols, csvio.ErrNoColumns},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := csvio.SerializeToCSVFormattedBytes(tc.src)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestFloatRendering pins the textual form of floats.
func TestFloatRendering(t *testing.T) {
	t.Parallel()

	tests := []struct {
		v    float64
		want string
	}{
		{1, "1.0"},
		{0, "0.0"},
		{0.1, "0.1"},
		{-2.5, "-2.5"},
		{0.0001, "0.0001"},
		{0.00001, "1e-05"},
		{1e15, "1000000000000000.0"},
		{1e16, "1e+16"},
		{1.5e300, "1.5e+300"},
		{math.NaN(), ""},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
	}
	for _, tc := range tests {
		b, err := csvio.SerializeToCSVFormattedBytes([][]float64{{tc.v, 0}})
		require.NoError(t, err)
		require.Equal(t, "0,1\n"+tc.want+",0.0\n", string(b), "value %v", tc.v)
	}
}

// TestSingleColumnNaN guards against empty lines swallowing rows.
func TestSingleColumnNaN(t *testing.T) {
	t.Parallel()

	src := [][]float64{{1}, {math.NaN()}, {2}}
	b, err := csvio.SerializeToCSVFormattedBytes(src)
	require.NoError(t, err)
	require.Equal(t, "0\n1.0\n\"\"\n2.0\n", string(b))

	got, err := csvio.ReadCSV(b)
	require.NoError(t, err)
	r, _ := got.Dims()
	require.Equal(t, 3, r)
	v, err := got.At(1, 0)
	require.NoError(t, err)
	require.True(t, math.IsNaN(v))
}

func TestEmptyHeaderLabelIsQuoted(t *testing.T) {
	t.Parallel()

	f, err := table.NewFrame([]string{""}, [][]float64{{1}, {math.NaN()}})
	require.NoError(t, err)
	b, err := csvio.SerializeToCSVFormattedBytes(f, csvio.WithCRLF())
	require.NoError(t, err)
	require.Equal(t, "\"\"\r\n1.0\r\n\"\"\r\n", string(b))

	got, err := csvio.ReadCSV(b)
	require.NoError(t, err)
	require.Equal(t, []string{""}, got.Columns())
	require.True(t, f.Equal(got))
}

func TestCRLFAndEmptyRows(t *testing.T) {
	t.Parallel()

	f, err := table.NewFrame([]string{"a", "b"}, nil)
	require.NoError(t, err)
	b, err := csvio.SerializeToCSVFormattedBytes(f, csvio.WithCRLF())
	require.NoError(t, err)
	require.Equal(t, "a,b\r\n", string(b))

	got, err := csvio.ReadCSV(b)
	require.NoError(t, err)
	require.True(t, f.Equal(got))
}

func TestReadCSVMalformed(t *testing.T) {
	t.Parallel()

	for name, in := range map[string]string{
		"empty":      "",
		"ragged":     "a,b\n1,2\n3\n",
		"non-number": "a\nfoo\n",
		"bad quote":  "a\n\"1\n",
	} {
		_, err := csvio.ReadCSV([]byte(in))
		require.ErrorIs(t, err, csvio.ErrMalformedCSV, name)
	}
}

func TestSerializeLogsDebug(t *testing.T) {
	var buf bytes.Buffer
	l := logx.New(&buf, slog.LevelDebug)

	_, err := csvio.SerializeToCSVFormattedBytes([][]int{{1}}, csvio.WithLogger(l))
	require.NoError(t, err)
	require.Contains(t, buf.String(), "serialized table")
	require.Contains(t, buf.String(), "rows=1")
}

// TestDefaultLoggerFollowsEnv: without WithLogger, TABKIT_LOG_LEVEL routes
// records to stderr through the tint handler.
func TestDefaultLoggerFollowsEnv(t *testing.T) {
	t.Setenv(logx.EnvLevel, "debug")

	r, w, err := os.Pipe()
	require.NoError(t, err)
	stderr := os.Stderr
	os.Stderr = w
	_, serr := csvio.SerializeToCSVFormattedBytes([][]int{{1, 2}})
	os.Stderr = stderr
	require.NoError(t, w.Close())
	require.NoError(t, serr)

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Contains(t, string(out), "serialized table")
	require.Contains(t, string(out), "cols=2")
}
