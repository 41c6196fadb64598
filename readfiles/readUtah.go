package readfiles

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/carlonluca/isogeometric-analysis/bezier"
	"github.com/carlonluca/isogeometric-analysis/utils"
)

/*
ReadUtah reads bicubic Bezier patches in the indexed format of the Utah
teapot data sets:

	<number of patches>
	<16 comma separated 1-based vertex indices>    one line per patch
	<number of vertices>
	<x, y, z>                                       one line per vertex
*/
func ReadUtah(filename string, verbose bool) (S []*bezier.Surface, err error) {
	var (
		file *os.File
	)
	if verbose {
		fmt.Printf("Reading Utah patch file named: %s\n", filename)
	}
	if file, err = os.Open(filename); err != nil {
		err = fmt.Errorf("unable to open file %s: %w", filename, err)
		return
	}
	defer file.Close()
	if S, err = ReadUtahFrom(file); err != nil {
		err = fmt.Errorf("%s: %w", filename, err)
		return
	}
	if verbose {
		fmt.Printf("Read %d patches\n", len(S))
	}
	return
}

func ReadUtahFrom(r io.Reader) (S []*bezier.Surface, err error) {
	var (
		reader   = bufio.NewReader(r)
		Np, Nv   int
		patches  [][16]int
		vertices [][3]float64
	)
	if Np, err = readCount(reader, "patch"); err != nil {
		return
	}
	// Counts come from the file, storage grows with the lines actually read
	for n := 0; n < Np; n++ {
		var patch [16]int
		if err = readPatch(reader, &patch); err != nil {
			err = fmt.Errorf("patch %d: %w", n, err)
			return
		}
		patches = append(patches, patch)
	}
	if Nv, err = readCount(reader, "vertex"); err != nil {
		return
	}
	for n := 0; n < Nv; n++ {
		var v [3]float64
		if err = readVertex(reader, &v); err != nil {
			err = fmt.Errorf("vertex %d: %w", n, err)
			return
		}
		vertices = append(vertices, v)
	}
	return bezier.FromIndexedPatches(patches, vertices)
}

func getLine(reader *bufio.Reader) (line string, err error) {
	line, err = reader.ReadString('\n')
	if err == io.EOF && len(line) != 0 {
		err = nil
	}
	if err != nil {
		if err == io.EOF {
			err = fmt.Errorf("early end of file: %w", utils.ErrInvalidGeometry)
		}
		return
	}
	line = strings.TrimSpace(line)
	return
}

func readCount(reader *bufio.Reader, what string) (n int, err error) {
	var (
		line string
	)
	if line, err = getLine(reader); err != nil {
		return
	}
	if n, err = strconv.Atoi(line); err != nil || n < 0 {
		err = fmt.Errorf("unable to read %s count from line: [%s]: %w", what, line, utils.ErrInvalidGeometry)
	}
	return
}

// fields splits a comma separated line into exactly n trimmed values.
func fields(reader *bufio.Reader, n int) (f []string, err error) {
	var (
		line string
	)
	if line, err = getLine(reader); err != nil {
		return
	}
	if f = strings.Split(line, ","); len(f) != n {
		err = fmt.Errorf("read %d values, expected %d, line: %s: %w", len(f), n, line, utils.ErrInvalidGeometry)
		return
	}
	for i := range f {
		f[i] = strings.TrimSpace(f[i])
	}
	return
}

func readPatch(reader *bufio.Reader, patch *[16]int) (err error) {
	var (
		f []string
	)
	if f, err = fields(reader, 16); err != nil {
		return
	}
	for i, s := range f {
		if patch[i], err = strconv.Atoi(s); err != nil {
			return fmt.Errorf("index [%s]: %w", s, utils.ErrInvalidGeometry)
		}
	}
	return
}

func readVertex(reader *bufio.Reader, v *[3]float64) (err error) {
	var (
		f []string
	)
	if f, err = fields(reader, 3); err != nil {
		return
	}
	for i, s := range f {
		if v[i], err = strconv.ParseFloat(s, 64); err != nil {
			return fmt.Errorf("coordinate [%s]: %w", s, utils.ErrInvalidGeometry)
		}
	}
	return
}
