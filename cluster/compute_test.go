package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

func TestDistanceMatrix(t *testing.T) {
	gettys, err := ioutil.ReadFile("../gettysburg.txt")
	if err != nil {
		t.Fatalf("%v", err)
	}
	dir, err := ioutil.TempDir("", "cluster.TestDistanceMatrix")
	if err != nil {
		t.Fatalf("%v", err)
	}
	defer os.RemoveAll(dir)
	if err := ioutil.WriteFile(filepath.Join(dir, "gettysburg.txt"), gettys, 0644); err != nil {
		t.Fatalf("%v", err)
	}
	if err := ioutil.WriteFile(filepath.Join(dir, "hello.txt"), []byte("hello world"), 0644); err != nil {
		t.Fatalf("%v", err)
	}

	data, err := listFiles(dir)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if len(data) != 2 {
		t.Fatalf("%v", data)
	}
	mat, err := distanceMatrix("arith", data)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if len(mat) != 1 {
		t.Fatalf("%v", mat)
	}
	if mat[0] <= 0 {
		t.Errorf("%f", mat[0])
	}

	if got := formatNames(data); got != `"gettysburg","hello"` {
		t.Errorf("%s", got)
	}
}

func TestUnknownIntelligence(t *testing.T) {
	if _, err := newComplexity("gzip"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestFormatDistances(t *testing.T) {
	if got := formatDistances([]float64{0.5, 1, 0.125}); got != "0.5,1,0.125" {
		t.Errorf("%s", got)
	}
}
