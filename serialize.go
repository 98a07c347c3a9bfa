package blobgen

import (
	"bufio"
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/squarcia/blobgen/sink"
)

// FormatCoord renders a coordinate for the text corpus: rounded half-to-even
// to 4 decimal places, plain decimal notation, no forced trailing zeros.
//
// The result is idempotent: parsing it back and formatting again yields the
// same bytes, which is what makes corpora byte-reproducible across runs.
func FormatCoord(v float64) string {
	rounded := math.RoundToEven(v*1e4) / 1e4
	if rounded == 0 {
		rounded = 0 // normalize negative zero
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

// WriteDataset serializes ds through s under the key's corpus name and
// returns the name written.
//
// Format: one line per point in Dataset order, coordinates separated by a
// single comma, each line terminated by a single newline. Labels are not
// persisted. A failed write is fatal to the run; partial output is left
// behind for the operator to inspect.
func WriteDataset(ctx context.Context, s sink.Sink, key Key, ds *Dataset) (string, error) {
	name := key.DataName()

	wc, err := s.Create(ctx, name)
	if err != nil {
		return "", fmt.Errorf("create corpus %s: %w", name, err)
	}

	// bufio errors are sticky; checking Flush covers the whole write loop.
	bw := bufio.NewWriter(wc)
	for _, p := range ds.Points {
		for j, v := range p {
			if j > 0 {
				bw.WriteByte(',')
			}
			bw.WriteString(FormatCoord(v))
		}
		bw.WriteByte('\n')
	}

	if err := bw.Flush(); err != nil {
		wc.Close()
		return "", fmt.Errorf("write corpus %s: %w", name, err)
	}
	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("close corpus %s: %w", name, err)
	}
	return name, nil
}
