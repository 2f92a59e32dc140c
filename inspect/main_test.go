package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fumin/arith/config"
)

func TestRun(t *testing.T) {
	cfg := config.Configuration{}
	cfg.Inspect.Table = true

	buf := bytes.NewBuffer(nil)
	if err := run(buf, cfg, "ab"); err != nil {
		t.Fatalf("%+v", err)
	}
	out := buf.String()
	for _, want := range []string{"original string: ab\n", "table: {97: (0, ", "chunk 0: 2 symbols", "uncompressed string: ab\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("%q not in %q", want, out)
		}
	}
}

func TestRunNoTable(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := run(buf, config.Configuration{}, "hello world"); err != nil {
		t.Fatalf("%+v", err)
	}
	if strings.Contains(buf.String(), "table:") {
		t.Errorf("%s", buf.String())
	}
	if !strings.Contains(buf.String(), "uncompressed string: hello world\n") {
		t.Errorf("%s", buf.String())
	}
}
