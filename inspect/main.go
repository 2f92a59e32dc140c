// Command inspect shows how a text is split into intervals and chunks.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/fumin/arith"
	"github.com/fumin/arith/config"
	"github.com/pkg/errors"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] text...\n", os.Args[0])
		flag.PrintDefaults()
	}
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	cfg, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("%+v", err)
	}
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(os.Stdout, cfg, strings.Join(flag.Args(), " ")); err != nil {
		log.Fatalf("%+v", err)
	}
}

func run(w io.Writer, cfg config.Configuration, text string) error {
	c := &arith.Coder{}
	if cfg.Log.Trace {
		c.Logf = log.Printf
	}
	res, err := c.Analyze([]byte(text))
	if err != nil {
		return errors.Wrap(err, "")
	}

	fmt.Fprintf(w, "original string: %s\n", res.Input)
	if cfg.Inspect.Table {
		fmt.Fprintf(w, "table: %v\n", res.Table)
	}
	for i, chunk := range res.Chunks {
		fmt.Fprintf(w, "chunk %d: %d symbols, value %v\n", i, chunk.Count, chunk.Value)
	}
	fmt.Fprintf(w, "ratio: %f\n", res.Ratio)
	// Decoded bytes are not guaranteed to be valid UTF-8.
	fmt.Fprintf(w, "uncompressed string: %s\n", strings.ToValidUTF8(string(res.Output), "�"))
	if cfg.Log.Verbose {
		log.Printf("%d bytes in %d chunks", len(res.Input), len(res.Chunks))
	}
	return nil
}
