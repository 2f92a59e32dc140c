package main

import (
	"flag"
	"log"
	"os"

	"github.com/fumin/arith"
	"github.com/fumin/arith/config"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	cfg, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("%+v", err)
	}

	c := &arith.Coder{}
	if cfg.Log.Trace {
		c.Logf = log.Printf
	}
	if err := c.Decompress(os.Stdout, os.Stdin); err != nil {
		log.Fatalf("%+v", err)
	}
}
