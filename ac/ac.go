// Package ac implements arithmetic coding over a static byte alphabet using float64 intervals.
//
// A message is represented by numbers inside nested sub-intervals of [0,1).
// Since a float64 can only tell apart so many nested intervals, the input is split into chunks,
// each of which is coded as a single value together with the number of symbols it carries.
package ac

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

const (
	// Epsilon is the float64 machine epsilon, the gap between 1 and the next larger float64.
	// Coding stops narrowing a chunk once its interval is no wider than Epsilon.
	Epsilon = 0x1p-52

	// Contraction scales every probability increment, so that the cumulative bound of the last symbol stays strictly below 1.
	Contraction = 1 - Epsilon

	// ValueSize is the number of bytes one encoded chunk value occupies.
	ValueSize = 8
)

// ErrEmptyInput is returned when a table is requested for zero bytes of input.
var ErrEmptyInput = errors.New("empty input")

// ErrNoProgress is returned when the range encoder consumes no symbols of a non-empty input.
// It means the table cannot represent the input within float64 precision.
var ErrNoProgress = errors.New("range encoder made no progress")

// A LookupError is returned when a symbol to be encoded has no interval in the table.
type LookupError struct {
	Symbol byte
	Offset int // position of Symbol in the input
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("symbol %d at offset %d has no interval", e.Symbol, e.Offset)
}

// A DecodeError is returned when a working value lies in no interval of the table.
type DecodeError struct {
	Index int // position within the chunk
	Value float64
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("value %v at index %d lies in no interval", e.Value, e.Index)
}

// A Chunk is the coded form of a run of consecutive symbols.
type Chunk struct {
	Value float64
	Count uint64
}

// Ratio returns the size of chunks relative to n bytes of input.
func Ratio(chunks []Chunk, n int) float64 {
	if n == 0 {
		return math.Inf(1)
	}
	return float64(len(chunks)*ValueSize) / float64(n)
}

// A Coder encodes and decodes messages.
// The zero value is ready to use.
type Coder struct {
	// Logf, if not nil, receives a trace of the coding steps.
	Logf func(format string, v ...interface{})
}

func (c *Coder) logf(format string, v ...interface{}) {
	if c.Logf == nil {
		return
	}
	c.Logf(format, v...)
}

var std = &Coder{}

// Encode builds the interval table of input and codes input into chunks.
func Encode(input []byte) (*Encoding, error) {
	return std.Encode(input)
}

// EncodeChunks codes input into chunks with a table built elsewhere.
func EncodeChunks(input []byte, t *Table) ([]Chunk, error) {
	return std.EncodeChunks(input, t)
}

// EncodeChunk codes the longest run of symbols starting at input[offset] that fits in a float64.
func EncodeChunk(input []byte, offset int, t *Table) (Chunk, error) {
	return std.EncodeChunk(input, offset, t)
}

// Decode reconstructs the message coded in chunks.
func Decode(chunks []Chunk, t *Table) ([]byte, error) {
	return std.Decode(chunks, t)
}

// DecodeChunk reconstructs the symbols coded in a single chunk.
func DecodeChunk(chunk Chunk, t *Table) ([]byte, error) {
	return std.DecodeChunk(chunk, t)
}
