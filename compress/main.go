package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fumin/arith"
	"github.com/fumin/arith/config"
	"github.com/pkg/errors"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] filename\n", os.Args[0])
		flag.PrintDefaults()
	}
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	cfg, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("%+v", err)
	}
	name := flag.Arg(0)
	if name == "" {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(cfg, name); err != nil {
		log.Fatalf("%+v", err)
	}
}

func run(cfg config.Configuration, name string) error {
	c := &arith.Coder{}
	if cfg.Log.Trace {
		c.Logf = log.Printf
	}
	counter := &countingWriter{w: os.Stdout}
	if err := c.Compress(counter, name); err != nil {
		return errors.Wrap(err, "")
	}
	if cfg.Log.Verbose {
		info, err := os.Stat(name)
		if err != nil {
			return errors.Wrap(err, "")
		}
		log.Printf("%s: %d bytes -> %d bytes", name, info.Size(), counter.n)
	}
	return nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
