package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const heightPlaceholder = "{height}"

func endIfErr(e error) {
	if e != nil {
		eLog := log.New(os.Stderr, "", 0)
		eLog.Fatalln("Error:", e)
	}
}

type job struct {
	name    string
	height  int
	output  string
	preview string
}

// planJobs expands the requested heights into one job each. A single height
// uses the paths as given; several heights need {height} in the paths and
// get a _<height> suffix on the font name.
func planJobs(name string, heights []int, output, previewPath string) ([]job, error) {
	if len(heights) == 0 {
		return nil, errors.New("at least one height is required")
	}

	seen := make(map[int]bool)
	for _, h := range heights {
		if h <= 0 {
			return nil, fmt.Errorf("height must be positive, got %d", h)
		}
		if seen[h] {
			return nil, fmt.Errorf("height %d given twice", h)
		}
		seen[h] = true
	}

	if len(heights) == 1 {
		return []job{{
			name:    name,
			height:  heights[0],
			output:  expandHeight(output, heights[0]),
			preview: expandHeight(previewPath, heights[0]),
		}}, nil
	}

	if !strings.Contains(output, heightPlaceholder) {
		return nil, fmt.Errorf("output %q must contain %s when converting several heights", output, heightPlaceholder)
	}
	if previewPath != "" && !strings.Contains(previewPath, heightPlaceholder) {
		return nil, fmt.Errorf("preview %q must contain %s when converting several heights", previewPath, heightPlaceholder)
	}

	jobs := make([]job, 0, len(heights))
	for _, h := range heights {
		jobs = append(jobs, job{
			name:    name + "_" + strconv.Itoa(h),
			height:  h,
			output:  expandHeight(output, h),
			preview: expandHeight(previewPath, h),
		})
	}

	return jobs, nil
}

func expandHeight(path string, height int) string {
	return strings.ReplaceAll(path, heightPlaceholder, strconv.Itoa(height))
}

// wordSpacing returns the configured spacing, or a quarter of the height
// (at least one pixel) when it is negative.
func wordSpacing(configured, height int) int {
	if configured >= 0 {
		return configured
	}
	if height/4 < 1 {
		return 1
	}
	return height / 4
}

type artifact struct {
	path string
	data []byte
}

// writeArtifacts writes every artifact to a temporary file next to its
// destination and renames them into place once all of them were written.
// On failure the temporary files are removed and no destination is touched.
func writeArtifacts(artifacts []artifact) error {
	temps := make([]string, 0, len(artifacts))
	cleanup := func() {
		for _, t := range temps {
			os.Remove(t)
		}
	}

	for _, a := range artifacts {
		fd, err := os.CreateTemp(filepath.Dir(a.path), "."+filepath.Base(a.path)+".*")
		if err != nil {
			cleanup()
			return err
		}
		temps = append(temps, fd.Name())

		_, err = fd.Write(a.data)
		if err == nil {
			err = fd.Chmod(0644)
		}
		if cerr := fd.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			cleanup()
			return fmt.Errorf("writing %s: %w", a.path, err)
		}
	}

	for i, a := range artifacts {
		if err := os.Rename(temps[i], a.path); err != nil {
			cleanup()
			return err
		}
	}

	return nil
}
