// Command cluster prints the normalized compression distance between every pair of files in a directory.
package main

import (
	"bytes"
	"flag"
	"io"
	"io/ioutil"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fumin/arith"
	"github.com/pkg/errors"
)

var (
	intelligenceType = flag.String("i", "arith", "intelligence type, arith or targz")
	dataDir          = flag.String("d", "", "data directory")
)

func main() {
	flag.Parse()
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	if err := run(*intelligenceType, *dataDir); err != nil {
		log.Fatalf("%+v", err)
	}
}

func run(intelligence, dir string) error {
	data, err := listFiles(dir)
	if err != nil {
		return errors.Wrap(err, "")
	}
	if len(data) < 2 {
		return errors.Errorf("need at least two files in %q", dir)
	}
	distMat, err := distanceMatrix(intelligence, data)
	if err != nil {
		return errors.Wrap(err, "")
	}

	log.Printf("[%s]", formatNames(data))
	log.Printf("[%s]", formatDistances(distMat))
	return nil
}

func formatNames(data []string) string {
	quoted := make([]string, 0, len(data))
	for _, fpath := range data {
		name := filepath.Base(fpath)
		quoted = append(quoted, strconv.Quote(strings.TrimSuffix(name, filepath.Ext(name))))
	}
	return strings.Join(quoted, ",")
}

func formatDistances(distMat []float64) string {
	fs := make([]string, 0, len(distMat))
	for _, f := range distMat {
		fs = append(fs, strconv.FormatFloat(f, 'f', -1, 64))
	}
	return strings.Join(fs, ",")
}

// A complexityFunc estimates the Kolmogorov complexity of a file by the size of its compressed form.
type complexityFunc func(fpath string) (float64, error)

func newComplexity(intelligence string) (complexityFunc, error) {
	switch intelligence {
	case "arith":
		cacher := make(map[string]float64)
		return func(fpath string) (float64, error) { return complexityArith(cacher, fpath) }, nil
	case "targz":
		return complexityTarGz, nil
	default:
		return nil, errors.Errorf("unknown intelligence %q", intelligence)
	}
}

// distance returns the normalized compression distance (C(xy) - min(C(x), C(y))) / max(C(x), C(y)).
func distance(complexity complexityFunc, x, y string) (float64, error) {
	xy, err := ioutil.TempFile("", "cluster")
	if err != nil {
		return -1, errors.Wrap(err, "")
	}
	defer os.Remove(xy.Name())
	if err := concatFiles(xy, x, y); err != nil {
		return -1, errors.Wrap(err, "")
	}

	kxy, err := complexity(xy.Name())
	if err != nil {
		return -1, errors.Wrap(err, "")
	}
	kx, err := complexity(x)
	if err != nil {
		return -1, errors.Wrap(err, "")
	}
	ky, err := complexity(y)
	if err != nil {
		return -1, errors.Wrap(err, "")
	}

	minxy, maxxy := kx, ky
	if ky < kx {
		minxy, maxxy = ky, kx
	}
	return (kxy - minxy) / maxxy, nil
}

func complexityArith(cacher map[string]float64, fpath string) (float64, error) {
	size, ok := cacher[fpath]
	if ok {
		return size, nil
	}

	buf := bytes.NewBuffer(nil)
	if err := arith.Compress(buf, fpath); err != nil {
		return -1, errors.Wrap(err, fpath)
	}
	size = float64(buf.Len())

	cacher[fpath] = size
	return size, nil
}

func complexityTarGz(fpath string) (float64, error) {
	dst, err := ioutil.TempFile("", "cluster.tgz")
	if err != nil {
		return -1, errors.Wrap(err, "")
	}
	dst.Close()
	defer os.Remove(dst.Name())
	if err := exec.Command("tar", "zcf", dst.Name(), fpath).Run(); err != nil {
		return -1, errors.Wrap(err, "")
	}
	info, err := os.Stat(dst.Name())
	if err != nil {
		return -1, errors.Wrap(err, "")
	}
	return float64(info.Size()), nil
}

func concatFiles(tmpf *os.File, fs ...string) error {
	for _, fpath := range fs {
		err := func(fpath string) error {
			f, err := os.Open(fpath)
			if err != nil {
				return errors.Wrap(err, "")
			}
			defer f.Close()
			if _, err := io.Copy(tmpf, f); err != nil {
				return errors.Wrap(err, "")
			}
			return nil
		}(fpath)
		if err != nil {
			return errors.Wrap(err, "")
		}
	}
	if err := tmpf.Close(); err != nil {
		return errors.Wrap(err, "")
	}
	return nil
}

func distanceMatrix(intelligence string, data []string) ([]float64, error) {
	complexity, err := newComplexity(intelligence)
	if err != nil {
		return nil, errors.Wrap(err, "")
	}

	n := len(data)
	mat := make([]float64, 0, n*(n-1)/2)
	for i, dx := range data[:n-1] {
		for _, dy := range data[i+1:] {
			dist, err := distance(complexity, dx, dy)
			if err != nil {
				return nil, errors.Wrap(err, "")
			}
			mat = append(mat, dist)
			log.Printf("%q-%q: %f", dx, dy, dist)
		}
	}
	return mat, nil
}

func listFiles(dir string) ([]string, error) {
	files, err := ioutil.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, "")
	}
	data := make([]string, 0, len(files))
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data = append(data, filepath.Join(dir, f.Name()))
	}
	return data, nil
}
