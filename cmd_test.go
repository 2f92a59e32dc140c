package arith

import (
	"bytes"
	"io/ioutil"
	"os"
	"testing"
)

func TestCompress(t *testing.T) {
	const name = "gettysburg.txt"

	// Compress
	f, err := ioutil.TempFile("", "arith.TestCompress.Compress")
	if err != nil {
		t.Fatalf("%v", err)
	}
	defer f.Close()
	defer os.Remove(f.Name())
	if err := Compress(f, name); err != nil {
		t.Fatalf("%+v", err)
	}

	// Decompress
	_, err = f.Seek(0, 0)
	if err != nil {
		t.Fatalf("%v", err)
	}
	df, err := ioutil.TempFile("", "arith.TestCompress.Decompress")
	if err != nil {
		t.Fatalf("%v", err)
	}
	defer df.Close()
	defer os.Remove(df.Name())
	if err := Decompress(df, f); err != nil {
		t.Fatalf("%+v", err)
	}

	// Check if the decompressed result is the same as the original file
	_, err = df.Seek(0, 0)
	if err != nil {
		t.Fatalf("%v", err)
	}
	decom, err := ioutil.ReadAll(df)
	if err != nil {
		t.Fatalf("%v", err)
	}
	gettys, err := ioutil.ReadFile(name)
	if err != nil {
		t.Fatalf("%v", err)
	}
	if !bytes.Equal(gettys, decom) {
		t.Errorf("%v %v", gettys, decom)
	}
}

func TestCompressEmptyFile(t *testing.T) {
	f, err := ioutil.TempFile("", "arith.TestCompressEmptyFile")
	if err != nil {
		t.Fatalf("%v", err)
	}
	f.Close()
	defer os.Remove(f.Name())

	buf := bytes.NewBuffer(nil)
	if err := Compress(buf, f.Name()); err != nil {
		t.Fatalf("%+v", err)
	}
	out := bytes.NewBuffer(nil)
	if err := Decompress(out, buf); err != nil {
		t.Fatalf("%+v", err)
	}
	if out.Len() != 0 {
		t.Errorf("%v", out.Bytes())
	}
}

func TestCompressMissingFile(t *testing.T) {
	if err := Compress(ioutil.Discard, "no-such-file.txt"); err == nil {
		t.Fatalf("expected error")
	}
}
