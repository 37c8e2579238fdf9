package library

import (
	"bufio"
	"os"
	"testing"
	"testing/fstest"
)

// libraryFSFromFile builds a MapFS with one empty file per line of path
func libraryFSFromFile(t *testing.T, path string) (fstest.MapFS, []string) {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("couldn't open file: %v", err)
	}
	defer f.Close()

	testfs := fstest.MapFS{}
	names := []string{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		p := scanner.Text()
		if p == "" {
			continue
		}
		testfs[p] = &fstest.MapFile{}
		names = append(names, p)
	}

	if err := scanner.Err(); err != nil {
		t.Fatal(err)
	}

	return testfs, names
}
