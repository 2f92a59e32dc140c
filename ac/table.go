package ac

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
)

// A Histogram counts the occurrences of each byte value in an input.
type Histogram struct {
	counts [256]uint64
	total  uint64
}

// Count returns the histogram of input.
func Count(input []byte) *Histogram {
	h := &Histogram{}
	for _, s := range input {
		h.counts[s]++
	}
	h.total = uint64(len(input))
	return h
}

// Add records n more occurrences of s.
func (h *Histogram) Add(s byte, n uint64) {
	h.counts[s] += n
	h.total += n
}

// Frequency returns the number of occurrences of s.
func (h *Histogram) Frequency(s byte) uint64 {
	return h.counts[s]
}

// Total returns the number of symbols counted.
func (h *Histogram) Total() uint64 {
	return h.total
}

// Symbols returns the symbols that occur at least once, in ascending order.
func (h *Histogram) Symbols() []byte {
	syms := make([]byte, 0, 256)
	for s, n := range h.counts {
		if n > 0 {
			syms = append(syms, byte(s))
		}
	}
	return syms
}

// Table converts the counts into cumulative probability intervals.
//
// Symbols are laid out in ascending order starting at 0.
// Each interval begins exactly where the previous one ends,
// and the last one ends at Contraction.
func (h *Histogram) Table() (*Table, error) {
	if h.total == 0 {
		return nil, errors.WithStack(ErrEmptyInput)
	}
	syms := h.Symbols()
	t := &Table{symbols: syms}
	total := float64(h.total)
	var acc float64
	for i, s := range syms {
		lower := acc
		// Explicit float64 conversions prevent fused multiply-adds, keeping tables bit-identical across architectures.
		acc = acc + float64(float64(h.counts[s])/total*Contraction)
		if i == len(syms)-1 {
			acc = Contraction
		}
		t.intervals[s] = Interval{Lower: lower, Upper: acc}
		t.present[s] = true
	}
	return t, nil
}

// NewTable builds the interval table of input.
func NewTable(input []byte) (*Table, error) {
	return Count(input).Table()
}

// An Interval is the cumulative probability range [Lower, Upper) of a symbol.
type Interval struct {
	Lower float64
	Upper float64
}

// Width returns Upper - Lower.
func (iv Interval) Width() float64 {
	return iv.Upper - iv.Lower
}

// contains reports whether v lies strictly inside iv.
func (iv Interval) contains(v float64) bool {
	return iv.Lower < v && v < iv.Upper
}

// An Entry is a symbol together with its interval.
type Entry struct {
	Symbol byte
	Interval
}

// A Table maps the symbols of an input to their intervals.
// A Table is immutable once built.
type Table struct {
	intervals [256]Interval
	present   [256]bool
	symbols   []byte // ascending
}

// Lookup returns the interval of s, and whether s is in the table.
func (t *Table) Lookup(s byte) (Interval, bool) {
	return t.intervals[s], t.present[s]
}

// Len returns the number of symbols in the table.
func (t *Table) Len() int {
	return len(t.symbols)
}

// Entries returns a copy of the table in ascending symbol order.
func (t *Table) Entries() []Entry {
	entries := make([]Entry, 0, len(t.symbols))
	for _, s := range t.symbols {
		entries = append(entries, Entry{Symbol: s, Interval: t.intervals[s]})
	}
	return entries
}

// locate returns the first symbol, in ascending order, whose interval strictly contains v.
func (t *Table) locate(v float64) (byte, Interval, bool) {
	for _, s := range t.symbols {
		if t.intervals[s].contains(v) {
			return s, t.intervals[s], true
		}
	}
	return 0, Interval{}, false
}

// String returns the table in the form {97: (0, 0.5), 98: (0.5, 1)}.
func (t *Table) String() string {
	buf := bytes.NewBuffer(nil)
	buf.WriteByte('{')
	for i, e := range t.Entries() {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(buf, "%d: (%v, %v)", e.Symbol, e.Lower, e.Upper)
	}
	buf.WriteByte('}')
	return buf.String()
}
