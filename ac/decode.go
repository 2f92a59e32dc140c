package ac

import (
	"github.com/pkg/errors"
)

// Decode reconstructs the message coded in chunks.
// The result is raw bytes and is not necessarily valid text.
// A DecodeError is returned if chunks and t do not belong together.
func (c *Coder) Decode(chunks []Chunk, t *Table) ([]byte, error) {
	var out []byte
	for i, chunk := range chunks {
		b, err := c.DecodeChunk(chunk, t)
		if err != nil {
			return nil, errors.Wrapf(err, "chunk %d", i)
		}
		out = append(out, b...)
	}
	return out, nil
}

// DecodeChunk reconstructs the chunk.Count symbols coded in chunk.Value.
func (c *Coder) DecodeChunk(chunk Chunk, t *Table) ([]byte, error) {
	var out []byte
	value := chunk.Value
	for i := uint64(0); i < chunk.Count; i++ {
		s, iv, ok := t.locate(value)
		if !ok {
			return nil, errors.WithStack(&DecodeError{Index: int(i), Value: value})
		}
		c.logf("%v < %v < %v -> %d", iv.Lower, value, iv.Upper, s)
		out = append(out, s)
		value = rescale(value, iv)
	}
	return out, nil
}

// rescale maps value from iv back onto [0,1).
func rescale(value float64, iv Interval) float64 {
	return (value - iv.Lower) / (iv.Upper - iv.Lower)
}
