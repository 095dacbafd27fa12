package vdpgfx

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

func (c *Converter) findImages(ctx context.Context, base string) (<-chan string, <-chan error, error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		errc <- filepath.Walk(base, func(file string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			// Ignore any hidden files or directories, otherwise we end up fighting with things like Spotlight, etc.
			if info.Name()[0] == '.' && file != base {
				if info.Mode().IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			// Ignore anything that isn't a normal file
			if !info.Mode().IsRegular() || !isImage(file) {
				return nil
			}

			select {
			case out <- file:
			case <-ctx.Done():
				return errors.New("walk cancelled")
			}

			return nil
		})
	}()
	return out, errc, nil
}

func (c *Converter) imageWorker(ctx context.Context, base, dst string, opts Options, in <-chan string) (<-chan error, error) {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for file := range in {
			dir := ""
			if dst != "" {
				rel, err := filepath.Rel(base, filepath.Dir(file))
				if err != nil {
					errc <- err
					return
				}
				dir = filepath.Join(dst, rel)
				if err := os.MkdirAll(dir, 0755); err != nil {
					errc <- err
					return
				}
			}

			if err := c.WriteFile(file, dir, opts); err != nil {
				errc <- err
				return
			}

			select {
			case <-ctx.Done():
				return
			default:
			}
		}
	}()
	return errc, nil
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// Batch converts every image found under path using up to workers
// conversions at once. Results are written alongside each image, or into the
// same relative location under dst if it is not empty. The first error stops
// the batch.
func (c *Converter) Batch(path, dst string, opts Options, workers int) error {
	if err := opts.validate(); err != nil {
		return err
	}

	base, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	var errcList []<-chan error

	files, errc, err := c.findImages(ctx, base)
	if err != nil {
		return err
	}
	errcList = append(errcList, errc)

	if workers < 1 {
		workers = 1
	}
	for i := 0; i < workers; i++ {
		errc, err := c.imageWorker(ctx, base, dst, opts, files)
		if err != nil {
			return err
		}
		errcList = append(errcList, errc)
	}

	return waitForPipeline(errcList...)
}
