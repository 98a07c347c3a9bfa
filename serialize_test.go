package blobgen

import (
	"context"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/squarcia/blobgen/sink"
)

func TestFormatCoord(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{-1.5, "-1.5"},
		{1.23456, "1.2346"},
		{-3.14159, "-3.1416"},
		{0.12341, "0.1234"},
		{10.00004, "10"},
		{-0.00001, "0"}, // negative zero normalized
		{1234.56789, "1234.5679"},
		{0.5, "0.5"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, FormatCoord(tt.in))
		})
	}
}

func TestFormatCoord_PlainDecimal(t *testing.T) {
	// Small magnitudes must never fall into scientific notation.
	for _, v := range []float64{0.00004, 0.0001, 0.00015, 1e-9, -2e-7} {
		got := FormatCoord(v)
		require.NotContains(t, got, "e")
		require.NotContains(t, got, "E")
	}
}

func TestFormatCoord_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	for i := 0; i < 1000; i++ {
		v := (rng.Float64() - 0.5) * 40
		formatted := FormatCoord(v)

		parsed, err := strconv.ParseFloat(formatted, 64)
		require.NoError(t, err)
		require.Equal(t, formatted, FormatCoord(parsed))
	}
}

func TestWriteDataset_Format(t *testing.T) {
	ctx := context.Background()
	cfg := Config{Dimensions: 2, Centroids: 2, Samples: 5}
	ds := Generate(cfg, rand.New(rand.NewSource(42)))

	mem := sink.NewMemory()
	name, err := WriteDataset(ctx, mem, cfg.Key(), ds)
	require.NoError(t, err)
	require.Equal(t, "txt/data_5_2_2.txt", name)

	data := mem.Bytes(name)
	require.NotNil(t, data)
	require.True(t, strings.HasSuffix(string(data), "\n"))

	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Len(t, lines, cfg.Samples)
	for _, line := range lines {
		require.Equal(t, cfg.Dimensions-1, strings.Count(line, ","))
		for _, field := range strings.Split(line, ",") {
			_, err := strconv.ParseFloat(field, 64)
			require.NoError(t, err)
		}
	}
}

func TestWriteDataset_OneDimension(t *testing.T) {
	ctx := context.Background()
	cfg := Config{Dimensions: 1, Centroids: 2, Samples: 10}
	ds := Generate(cfg, rand.New(rand.NewSource(1)))

	mem := sink.NewMemory()
	name, err := WriteDataset(ctx, mem, cfg.Key(), ds)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(string(mem.Bytes(name)), "\n"), "\n")
	require.Len(t, lines, 10)
	for _, line := range lines {
		require.NotContains(t, line, ",")
	}
}

func TestWriteDataset_RoundTrip(t *testing.T) {
	ctx := context.Background()
	cfg := Config{Dimensions: 3, Centroids: 4, Samples: 50}
	ds := Generate(cfg, rand.New(rand.NewSource(23)))

	mem := sink.NewMemory()
	name, err := WriteDataset(ctx, mem, cfg.Key(), ds)
	require.NoError(t, err)
	original := mem.Bytes(name)

	// Parse the corpus back and re-serialize: byte-identical.
	parsed := &Dataset{}
	for _, line := range strings.Split(strings.TrimSuffix(string(original), "\n"), "\n") {
		fields := strings.Split(line, ",")
		p := make([]float64, len(fields))
		for j, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			require.NoError(t, err)
			p[j] = v
		}
		parsed.Points = append(parsed.Points, p)
	}

	name2, err := WriteDataset(ctx, mem, cfg.Key(), parsed)
	require.NoError(t, err)
	require.Equal(t, original, mem.Bytes(name2))
}

func TestWriteDataset_Deterministic(t *testing.T) {
	ctx := context.Background()
	cfg := Config{Dimensions: 2, Centroids: 3, Samples: 100}

	write := func(seed int64) []byte {
		ds := Generate(cfg, rand.New(rand.NewSource(seed)))
		mem := sink.NewMemory()
		name, err := WriteDataset(ctx, mem, cfg.Key(), ds)
		require.NoError(t, err)
		return mem.Bytes(name)
	}

	require.Equal(t, write(42), write(42))
	require.NotEqual(t, write(42), write(99))
}
