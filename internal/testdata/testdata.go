/*
Package testdata locates test corpora for width measuring.

Corpus files live in directory "corpus". Every text file comes with a
companion file of the same base name and suffix ".wcswidth", holding the
result of wcswidth(3) for each line of the text file, as reported by
GNU libc 2.36 in locale C.UTF-8.
*/
package testdata

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// CorpusPath returns the path of a corpus file.
func CorpusPath(file string) string {
	_, pkgfile, _, ok := runtime.Caller(0)
	if !ok {
		panic("no debug info")
	}
	return filepath.Join(filepath.Dir(pkgfile), "corpus", file)
}

// Sample is a line of a corpus together with its reference width.
type Sample struct {
	LineNo int
	Text   string
	Width  int
}

// Corpus reads the text lines of a corpus file and pairs them with their
// reference widths.
func Corpus(file string) ([]Sample, error) {
	lines, err := readLines(CorpusPath(file))
	if err != nil {
		return nil, err
	}
	base := strings.TrimSuffix(file, filepath.Ext(file))
	widths, err := readLines(CorpusPath(base + ".wcswidth"))
	if err != nil {
		return nil, err
	}
	if len(lines) != len(widths) {
		return nil, fmt.Errorf("corpus %s has %d lines, but %d reference widths",
			file, len(lines), len(widths))
	}
	samples := make([]Sample, len(lines))
	for i, line := range lines {
		w, err := strconv.Atoi(strings.TrimSpace(widths[i]))
		if err != nil {
			return nil, fmt.Errorf("corpus %s, line %d: %w", file, i+1, err)
		}
		samples[i] = Sample{LineNo: i + 1, Text: line, Width: w}
	}
	return samples, nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
