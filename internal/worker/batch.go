package worker

import (
	"context"

	"github.com/ndubovik/keyscan/internal/model"
)

// Tagger analyzes one URL and produces a keyword report.
type Tagger interface {
	TagURL(ctx context.Context, url string) (*model.Report, error)
}

// TagJob tags a single URL.
type TagJob struct {
	URL    string
	Tagger Tagger
}

// Execute runs the tag job.
func (j *TagJob) Execute(ctx context.Context) Result {
	report, err := j.Tagger.TagURL(ctx, j.URL)
	return &TagResult{URL: j.URL, Report: report, Error: err}
}

// TagResult is the outcome of tagging one URL.
type TagResult struct {
	URL    string
	Report *model.Report
	Error  error
}

// Err returns the job error, if any.
func (r *TagResult) Err() error {
	return r.Error
}

// Batch tags multiple URLs concurrently through a worker pool.
type Batch struct {
	tagger      Tagger
	concurrency int
}

// NewBatch creates a batch processor.
func NewBatch(tagger Tagger, concurrency int) *Batch {
	return &Batch{tagger: tagger, concurrency: concurrency}
}

// Process tags all URLs and returns one result per URL, in completion
// order.
func (b *Batch) Process(ctx context.Context, urls []string) []*TagResult {
	if len(urls) == 0 {
		return []*TagResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			pool.Shutdown()
		case <-done:
		}
	}()

	for _, url := range urls {
		pool.Submit(&TagJob{URL: url, Tagger: b.tagger})
	}

	results := pool.Wait()
	close(done)

	out := make([]*TagResult, 0, len(results))
	for _, r := range results {
		if tr, ok := r.(*TagResult); ok {
			out = append(out, tr)
		}
	}
	return out
}
