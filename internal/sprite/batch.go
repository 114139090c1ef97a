package sprite

import (
	"context"
	"runtime"
	"sync"
)

// GenerateBatch generates count sprites from the same mask. Sprite i uses
// seed opts.Seed+i, so a batch is reproducible and its first sprite equals
// Generate(mask, width, opts). Sprites are generated concurrently on up to
// one worker per CPU; the result keeps seed order.
//
// If ctx is cancelled before all sprites are generated, GenerateBatch
// returns ctx.Err().
func GenerateBatch(ctx context.Context, mask []MaskCell, width int, opts Options, count int) ([]*Sprite, error) {
	if err := checkDimensions(len(mask), width); err != nil {
		return nil, err
	}
	if count <= 0 {
		return nil, nil
	}

	workers := runtime.NumCPU()
	if workers > count {
		workers = count
	}
	Logger().Debug("generating batch", "count", count, "workers", workers, "seed", opts.Seed)

	out := make([]*Sprite, count)
	errs := make([]error, count)
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				o := opts
				o.Seed = opts.Seed + uint64(i)
				out[i], errs[i] = Generate(mask, width, o)
			}
		}()
	}

	sent := 0
feed:
	for sent < count && ctx.Err() == nil {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- sent:
			sent++
		}
	}
	close(jobs)
	wg.Wait()

	if sent < count {
		return nil, ctx.Err()
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
