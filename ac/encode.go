package ac

import (
	"github.com/pkg/errors"
)

// An Encoding is a message coded into chunks, together with the table needed to decode it.
type Encoding struct {
	Table  *Table
	Chunks []Chunk
	Ratio  float64
}

// Encode builds the interval table of input and codes input into chunks.
// ErrEmptyInput is returned if input is empty.
func (c *Coder) Encode(input []byte) (*Encoding, error) {
	t, err := NewTable(input)
	if err != nil {
		return nil, errors.Wrap(err, "")
	}
	for _, e := range t.Entries() {
		c.logf("interval %d: (%v %v)", e.Symbol, e.Lower, e.Upper)
	}

	chunks, err := c.EncodeChunks(input, t)
	if err != nil {
		return nil, errors.Wrap(err, "")
	}
	enc := &Encoding{Table: t, Chunks: chunks, Ratio: Ratio(chunks, len(input))}
	c.logf("%d bytes in %d chunks, ratio %f", len(input), len(chunks), enc.Ratio)
	return enc, nil
}

// EncodeChunks codes input into chunks, in input order.
// A LookupError is returned if input contains a symbol that is not in t.
func (c *Coder) EncodeChunks(input []byte, t *Table) ([]Chunk, error) {
	chunks := []Chunk{}
	for offset := 0; offset < len(input); {
		chunk, err := c.EncodeChunk(input, offset, t)
		if err != nil {
			return nil, errors.Wrap(err, "")
		}
		if chunk.Count == 0 {
			return nil, errors.Wrapf(ErrNoProgress, "offset %d", offset)
		}
		c.logf("chunk %d: offset %d, %d symbols, value %v", len(chunks), offset, chunk.Count, chunk.Value)
		chunks = append(chunks, chunk)
		offset += int(chunk.Count)
	}
	return chunks, nil
}

// EncodeChunk codes the symbols of input starting at offset into a single chunk.
//
// The interval [0,1) is narrowed symbol by symbol until it is no wider than Epsilon,
// or until the chunk value would no longer decode to the symbols consumed.
// The symbol that exhausts the precision is left for the next chunk.
// A zero Chunk is returned when offset is at the end of input.
func (c *Coder) EncodeChunk(input []byte, offset int, t *Table) (Chunk, error) {
	src := input[offset:]

	// candidates[i] is the chunk value that codes src[:i+1].
	candidates := make([]float64, 0, 64)
	var low, high float64 = 0, 1
	for i, s := range src {
		iv, ok := t.Lookup(s)
		if !ok {
			return Chunk{}, errors.WithStack(&LookupError{Symbol: s, Offset: offset + i})
		}

		width := high - low
		high = low + float64(width*iv.Upper)
		low = low + float64(width*iv.Lower)
		c.logf("delta %v = %v - %v -> %d", width, high, low, s)
		if high-low <= Epsilon {
			break
		}
		candidates = append(candidates, low+Epsilon)
	}

	for n := len(candidates); n > 0; n-- {
		value := candidates[n-1]
		if decodesTo(value, src[:n], t) {
			return Chunk{Value: value, Count: uint64(n)}, nil
		}
		c.logf("value %v does not decode to %d symbols", value, n)
	}
	return Chunk{}, nil
}

// decodesTo reports whether decoding value yields exactly want.
func decodesTo(value float64, want []byte, t *Table) bool {
	for _, w := range want {
		s, iv, ok := t.locate(value)
		if !ok || s != w {
			return false
		}
		value = rescale(value, iv)
	}
	return true
}
