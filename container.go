package arith

import (
	"bufio"
	"encoding/binary"
	"io"
	"io/ioutil"
	"math"

	"github.com/fumin/arith/ac"
	"github.com/pkg/errors"
)

// magic starts every container.
const magic = "FAC1"

// ErrFormat is returned when a container is malformed.
var ErrFormat = errors.New("malformed container")

// WriteContainer writes the histogram and chunks of a message to w.
//
// The layout is the magic "FAC1", the number of distinct symbols,
// a (symbol byte, uvarint frequency) pair per symbol in ascending order,
// the number of chunks, and a (little endian float64 value, uvarint count) pair per chunk.
func WriteContainer(w io.Writer, h *ac.Histogram, chunks []ac.Chunk) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, binary.MaxVarintLen64)
	putUvarint := func(x uint64) error {
		n := binary.PutUvarint(buf, x)
		if _, err := bw.Write(buf[:n]); err != nil {
			return errors.Wrap(err, "")
		}
		return nil
	}

	if _, err := bw.WriteString(magic); err != nil {
		return errors.Wrap(err, "")
	}
	syms := h.Symbols()
	if err := putUvarint(uint64(len(syms))); err != nil {
		return err
	}
	for _, s := range syms {
		if err := bw.WriteByte(s); err != nil {
			return errors.Wrap(err, "")
		}
		if err := putUvarint(h.Frequency(s)); err != nil {
			return err
		}
	}

	if err := putUvarint(uint64(len(chunks))); err != nil {
		return err
	}
	for _, c := range chunks {
		binary.LittleEndian.PutUint64(buf, math.Float64bits(c.Value))
		if _, err := bw.Write(buf[:8]); err != nil {
			return errors.Wrap(err, "")
		}
		if err := putUvarint(c.Count); err != nil {
			return err
		}
	}

	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "")
	}
	return nil
}

// ReadContainer reads a container written by WriteContainer.
// ErrFormat is returned if the container is malformed.
func ReadContainer(r io.Reader) (*ac.Histogram, []ac.Chunk, error) {
	br := bufio.NewReader(r)
	malformed := func(err error) error {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return errors.Wrapf(ErrFormat, "%v", err)
	}

	head := make([]byte, len(magic))
	if _, err := io.ReadFull(br, head); err != nil {
		return nil, nil, malformed(err)
	}
	if string(head) != magic {
		return nil, nil, errors.Wrapf(ErrFormat, "magic %q", head)
	}

	numSyms, err := binary.ReadUvarint(br)
	if err != nil {
		return nil, nil, malformed(err)
	}
	if numSyms > 256 {
		return nil, nil, errors.Wrapf(ErrFormat, "%d symbols", numSyms)
	}
	h := &ac.Histogram{}
	var prev byte
	for i := uint64(0); i < numSyms; i++ {
		s, err := br.ReadByte()
		if err != nil {
			return nil, nil, malformed(err)
		}
		if i > 0 && s <= prev {
			return nil, nil, errors.Wrapf(ErrFormat, "symbol %d after %d", s, prev)
		}
		prev = s
		f, err := binary.ReadUvarint(br)
		if err != nil {
			return nil, nil, malformed(err)
		}
		if f == 0 || h.Total()+f < h.Total() {
			return nil, nil, errors.Wrapf(ErrFormat, "symbol %d frequency %d", s, f)
		}
		h.Add(s, f)
	}

	numChunks, err := binary.ReadUvarint(br)
	if err != nil {
		return nil, nil, malformed(err)
	}
	if numChunks > h.Total() {
		return nil, nil, errors.Wrapf(ErrFormat, "%d chunks for %d symbols", numChunks, h.Total())
	}
	chunks := []ac.Chunk{}
	var sum uint64
	bits := make([]byte, 8)
	for i := uint64(0); i < numChunks; i++ {
		if _, err := io.ReadFull(br, bits); err != nil {
			return nil, nil, malformed(err)
		}
		count, err := binary.ReadUvarint(br)
		if err != nil {
			return nil, nil, malformed(err)
		}
		if count == 0 || count > h.Total()-sum {
			return nil, nil, errors.Wrapf(ErrFormat, "chunk %d count %d", i, count)
		}
		sum += count
		chunks = append(chunks, ac.Chunk{Value: math.Float64frombits(binary.LittleEndian.Uint64(bits)), Count: count})
	}
	if sum != h.Total() {
		return nil, nil, errors.Wrapf(ErrFormat, "chunks hold %d symbols, histogram %d", sum, h.Total())
	}
	return h, chunks, nil
}

// Compress encodes the file name and writes the container to w.
// An empty file produces a container with no symbols.
func (c *Coder) Compress(w io.Writer, name string) error {
	data, err := ioutil.ReadFile(name)
	if err != nil {
		return errors.Wrap(err, "")
	}

	h := ac.Count(data)
	var chunks []ac.Chunk
	if len(data) > 0 {
		t, err := h.Table()
		if err != nil {
			return errors.Wrap(err, "")
		}
		chunks, err = c.core().EncodeChunks(data, t)
		if err != nil {
			return errors.Wrap(err, "")
		}
	}

	if err := WriteContainer(w, h, chunks); err != nil {
		return errors.Wrap(err, "")
	}
	return nil
}

// Decompress reads a container from r and writes the decoded bytes to w.
func (c *Coder) Decompress(w io.Writer, r io.Reader) error {
	h, chunks, err := ReadContainer(r)
	if err != nil {
		return errors.Wrap(err, "")
	}
	if h.Total() == 0 {
		return nil
	}

	t, err := h.Table()
	if err != nil {
		return errors.Wrap(err, "")
	}
	data, err := c.core().Decode(chunks, t)
	if err != nil {
		return errors.Wrap(err, "")
	}
	if _, err := w.Write(data); err != nil {
		return errors.Wrap(err, "")
	}
	return nil
}

// Compress encodes the file name and writes the container to w.
func Compress(w io.Writer, name string) error {
	c := &Coder{}
	return c.Compress(w, name)
}

// Decompress reads a container from r and writes the decoded bytes to w.
func Decompress(w io.Writer, r io.Reader) error {
	c := &Coder{}
	return c.Decompress(w, r)
}
