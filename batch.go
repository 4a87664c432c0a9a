package ediguide

import (
	"context"
	"runtime"

	"golang.org/x/sync/semaphore"

	"github.com/edienergy/ediguide/desc"
)

// BatchJob is one unit of work for DecodeBatch: a candidate description set
// and the raw input to decode against it (see Decode for why descriptions is
// a slice).
type BatchJob struct {
	Descriptions []desc.Interchange
	Input        string
}

// DecodeBatch decodes every job concurrently, bounded by opts.MaxParallelism
// permits on a weighted semaphore — the same pattern the teacher compiler
// uses to cap the fan-out of its own per-file compilation tasks. Results are
// returned in the same order as jobs; ctx cancellation stops scheduling
// further jobs and causes their Result to carry ctx.Err().
func DecodeBatch(ctx context.Context, jobs []BatchJob, opts DecodeOptions) []Result {
	if len(jobs) == 0 {
		return nil
	}

	par := opts.MaxParallelism
	if par <= 0 {
		par = runtime.GOMAXPROCS(-1)
		if cpus := runtime.NumCPU(); par > cpus {
			par = cpus
		}
	}

	sem := semaphore.NewWeighted(int64(par))
	results := make([]Result, len(jobs))
	log := (&Decoder{opts: opts}).logger()

	done := make(chan int, len(jobs))
	for i, job := range jobs {
		i, job := i, job
		if err := sem.Acquire(ctx, 1); err != nil {
			results[i] = Result{Err: err}
			done <- i
			continue
		}
		go func() {
			defer sem.Release(1)
			defer func() { done <- i }()

			d, err := newDecoder(job.Descriptions)
			if err != nil {
				results[i] = Result{Err: err}
				return
			}
			d.opts = opts

			interchange, err := d.decode(job.Input)
			results[i] = Result{Interchange: interchange, Err: err}
		}()
	}

	for range jobs {
		idx := <-done
		log.Debug("batch job finished", "index", idx, "error", results[idx].Err)
	}

	return results
}
