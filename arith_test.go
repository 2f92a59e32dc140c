package arith

import (
	"bytes"
	"io/ioutil"
	"testing"

	"github.com/fumin/arith/ac"
	"github.com/pkg/errors"
)

func TestAnalyze(t *testing.T) {
	gettys, err := ioutil.ReadFile("gettysburg.txt")
	if err != nil {
		t.Fatalf("%v", err)
	}
	for _, input := range [][]byte{[]byte("ab"), []byte("hello world"), gettys} {
		res, err := Analyze(input)
		if err != nil {
			t.Fatalf("%+v", err)
		}
		if !bytes.Equal(res.Output, input) {
			t.Errorf("%q != %q", res.Output, input)
		}
		if !bytes.Equal(res.Input, input) {
			t.Errorf("%q != %q", res.Input, input)
		}
		if res.Ratio != ac.Ratio(res.Chunks, len(input)) {
			t.Errorf("%f", res.Ratio)
		}
		if res.Table.Len() != len(ac.Count(input).Symbols()) {
			t.Errorf("%v", res.Table)
		}
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	_, err := Analyze(nil)
	if errors.Cause(err) != ac.ErrEmptyInput {
		t.Fatalf("%+v", err)
	}
}

func TestCoderLogf(t *testing.T) {
	n := 0
	c := &Coder{Logf: func(format string, v ...interface{}) { n++ }}
	if _, err := c.Analyze([]byte("ab")); err != nil {
		t.Fatalf("%+v", err)
	}
	if n == 0 {
		t.Errorf("no trace")
	}
}
