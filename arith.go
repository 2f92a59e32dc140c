// Package arith compresses data with the float64 arithmetic coder of package ac.
//
// Below is an example of compressing Lincoln's Gettysburg address:
//    go run compress/main.go gettysburg.txt > gettys.fac
//    cat gettys.fac | go run decompress/main.go > gettys.dfac
//    diff gettysburg.txt gettys.dfac
//
// The interval table and chunks of a short text can be shown with:
//    go run inspect/main.go -table "hello world"
package arith

import (
	"github.com/fumin/arith/ac"
	"github.com/pkg/errors"
)

// A Result holds every stage of coding an input.
type Result struct {
	Input  []byte
	Table  *ac.Table
	Chunks []ac.Chunk
	Ratio  float64

	// Output is Input encoded and then decoded again.
	Output []byte
}

// A Coder compresses and analyzes inputs.
// The zero value is ready to use.
type Coder struct {
	// Logf, if not nil, receives a trace of the coding steps.
	Logf func(format string, v ...interface{})
}

// Analyze builds the table of input, encodes input with it and decodes the chunks back.
func (c *Coder) Analyze(input []byte) (*Result, error) {
	coder := c.core()
	enc, err := coder.Encode(input)
	if err != nil {
		return nil, errors.Wrap(err, "")
	}
	output, err := coder.Decode(enc.Chunks, enc.Table)
	if err != nil {
		return nil, errors.Wrap(err, "")
	}

	res := &Result{}
	res.Input = append([]byte(nil), input...)
	res.Table = enc.Table
	res.Chunks = enc.Chunks
	res.Ratio = enc.Ratio
	res.Output = output
	return res, nil
}

func (c *Coder) core() *ac.Coder {
	return &ac.Coder{Logf: c.Logf}
}

// Analyze builds the table of input, encodes input with it and decodes the chunks back.
func Analyze(input []byte) (*Result, error) {
	c := &Coder{}
	return c.Analyze(input)
}
