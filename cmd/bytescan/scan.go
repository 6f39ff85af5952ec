package main

import (
	"io"
	"io/ioutil"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tommy351/bytecursor-go"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of scanning a single input.
type Result struct {
	File  string `json:"file"`
	Count int64  `json:"count"`
	Size  int64  `json:"size"`
}

// scanAll scans every path concurrently. Results come back in argument
// order regardless of which scan finishes first. Without paths it scans
// stdin, as does the path "-".
func scanAll(paths []string, target byte) ([]*Result, error) {
	if len(paths) == 0 {
		result, err := scanReader("-", os.Stdin, target)

		if err != nil {
			return nil, err
		}

		return []*Result{result}, nil
	}

	results := make([]*Result, len(paths))

	var eg errgroup.Group

	for i, path := range paths {
		i, path := i, path

		eg.Go(func() error {
			result, err := scanFile(path, target)

			if err != nil {
				return err
			}

			results[i] = result
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func scanFile(path string, target byte) (*Result, error) {
	if path == "-" {
		return scanReader("-", os.Stdin, target)
	}

	if streamMode {
		file, err := os.Open(path)

		if err != nil {
			return nil, err
		}

		defer file.Close()

		return scanReader(path, file, target)
	}

	start := time.Now()
	buf, err := ioutil.ReadFile(path)

	if err != nil {
		return nil, err
	}

	result := &Result{
		File:  path,
		Count: int64(bytecursor.New(buf).Count(target)),
		Size:  int64(len(buf)),
	}

	logrus.WithFields(logrus.Fields{
		"file":     result.File,
		"size":     result.Size,
		"count":    result.Count,
		"duration": time.Since(start),
	}).Debug("scanned file")

	return result, nil
}

func scanReader(name string, r io.Reader, target byte) (*Result, error) {
	start := time.Now()
	counting := &countingReader{r: r}
	count, err := bytecursor.NewWindow(counting).Count(target)

	if err != nil {
		return nil, err
	}

	result := &Result{
		File:  name,
		Count: count,
		Size:  counting.n,
	}

	logrus.WithFields(logrus.Fields{
		"file":     result.File,
		"size":     result.Size,
		"count":    result.Count,
		"duration": time.Since(start),
	}).Debug("scanned stream")

	return result, nil
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
