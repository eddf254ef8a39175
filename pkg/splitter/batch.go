package splitter

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"imgsplit/internal/models"
)

// Task is one batch work item: a source image and the output directory
// its slices go to (mirroring the input tree in recursive mode).
type Task struct {
	// Index is the position in the sorted input order
	Index int

	// Path is the source image path
	Path string

	// OutputDir is where this image's slices are written
	OutputDir string
}

// CollectTasks lists the images under inputDir in sorted order. With
// recursive set, subdirectories are walked and their relative paths
// are preserved under outputDir; otherwise only the top level is read.
func CollectTasks(inputDir, outputDir string, recursive bool) ([]Task, error) {
	var tasks []Task

	if recursive {
		err := filepath.WalkDir(inputDir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !IsInputImage(path) {
				return nil
			}
			rel, err := filepath.Rel(inputDir, filepath.Dir(path))
			if err != nil {
				return err
			}
			dir := outputDir
			if rel != "." {
				dir = filepath.Join(outputDir, rel)
			}
			tasks = append(tasks, Task{Path: path, OutputDir: dir})
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk input directory: %w", err)
		}
	} else {
		entries, err := os.ReadDir(inputDir)
		if err != nil {
			return nil, fmt.Errorf("failed to read input directory: %w", err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			path := filepath.Join(inputDir, entry.Name())
			if IsInputImage(path) {
				tasks = append(tasks, Task{Path: path, OutputDir: outputDir})
			}
		}
	}

	// WalkDir and ReadDir both yield lexical order already; sorting by
	// path keeps the input order contract explicit.
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].Path < tasks[j].Path })
	for i := range tasks {
		tasks[i].Index = i
	}

	return tasks, nil
}

// RunBatch processes tasks on a pool of workers. Each image's full
// pipeline run is independent, so tasks are dispatched freely; results
// are buffered by input index and reported in input order once the
// pool drains. A failed image is logged and skipped, never aborting
// the batch.
func (s *Splitter) RunBatch(tasks []Task, workers int) models.Tally {
	if workers > len(tasks) {
		workers = len(tasks)
	}
	if workers < 1 {
		workers = 1
	}

	results := make([]*models.ImageResult, len(tasks))
	taskChan := make(chan Task)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range taskChan {
				res := s.SplitFile(task.Path, task.OutputDir)
				res.Index = task.Index
				results[task.Index] = res
			}
		}()
	}

	for _, task := range tasks {
		taskChan <- task
	}
	close(taskChan)
	wg.Wait()

	var tally models.Tally
	for _, res := range results {
		fmt.Printf("Processing: %s\n", filepath.Base(res.Path))
		for _, line := range res.Lines {
			fmt.Println(line)
		}
		if res.Err != nil {
			fmt.Printf("  Skipped: %v\n", res.Err)
			tally.Failed++
			continue
		}
		tally.Succeeded++
		tally.Slices += res.Slices
	}

	return tally
}
