// Package ingest implements the bulk-create engine: it submits a batch of
// documents as independent requests under a bounded concurrency cap,
// validating each against a local schema first, and collects one result per
// item without letting any single failure abort the batch.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/openchami/nodectl/internal/client"
	"github.com/openchami/nodectl/internal/schema"
)

// DefaultConcurrency caps how many items may be in flight at once unless
// the caller overrides it.
const DefaultConcurrency = 20

// Sender issues one classified request per document. *client.Sender
// satisfies it; tests substitute their own.
type Sender interface {
	Do(ctx context.Context, method, objectType, id string, body interface{}) (*client.Response, error)
}

// Options configures an Engine.
type Options struct {
	// ObjectType names the API collection the batch is created under.
	ObjectType string
	// SchemaDir holds one JSON Schema file per object type. Empty disables
	// validation; items go straight to the network.
	SchemaDir string
	// Concurrency bounds in-flight items. Zero or negative selects
	// DefaultConcurrency.
	Concurrency int
}

// Engine runs batches of create requests.
type Engine struct {
	sender      Sender
	objectType  string
	schemaDir   string
	concurrency int
}

// NewEngine creates an engine. A missing sender or empty object type is a
// configuration fault: nothing can be dispatched without them.
func NewEngine(sender Sender, opts Options) (*Engine, error) {
	if sender == nil {
		return nil, errors.New("ingest: sender is required")
	}
	if opts.ObjectType == "" {
		return nil, errors.New("ingest: object type is required")
	}
	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &Engine{
		sender:      sender,
		objectType:  opts.ObjectType,
		schemaDir:   opts.SchemaDir,
		concurrency: concurrency,
	}, nil
}

// Run submits every document in batch and returns one ItemResult per
// document, indexed by its position in the batch. Items are processed by a
// worker pool of at most the configured concurrency; a worker slot is the
// permit for both validation and the network call. Run returns only after
// all items have a result and never short-circuits: a bad payload in one
// item must not block its siblings.
func (e *Engine) Run(ctx context.Context, batch []Document) []ItemResult {
	results := make([]ItemResult, len(batch))
	if len(batch) == 0 {
		return results
	}

	workers := e.concurrency
	if workers > len(batch) {
		workers = len(batch)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = e.processItem(ctx, idx, batch[idx])
			}
		}()
	}

	for idx := range batch {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	return results
}

// processItem validates and sends a single item. All per-item faults are
// converted into the result here; nothing escapes to the caller.
func (e *Engine) processItem(ctx context.Context, idx int, doc Document) ItemResult {
	res := ItemResult{Index: idx, Document: doc}

	if err := schema.Validate(e.schemaDir, e.objectType, doc); err != nil {
		var ve *schema.ValidationError
		if errors.As(err, &ve) {
			res.Status = StatusRejected
		} else {
			// Missing schema file or an unreadable one.
			res.Status = StatusFailed
		}
		res.Err = err
		return res
	}

	resp, err := e.sender.Do(ctx, http.MethodPost, e.objectType, "", doc)
	if err != nil {
		if rejErr, ok := client.GetRejectedError(err); ok {
			res.Status = StatusRejected
			res.HTTPStatus = rejErr.StatusCode
			res.Body = rejErr.Body
		} else if httpErr, ok := client.GetHTTPError(err); ok {
			res.Status = StatusFailed
			res.HTTPStatus = httpErr.StatusCode
			res.Body = httpErr.Body
		} else {
			res.Status = StatusFailed
		}
		res.Err = err
		log.Debug().Int("item", idx).Err(err).Msg("Item not created")
		return res
	}

	res.Status = StatusSucceeded
	res.HTTPStatus = resp.StatusCode
	res.Response = resp.Body
	return res
}

// Summarize counts results per status for reporting.
func Summarize(results []ItemResult) (succeeded, rejected, failed int) {
	for _, r := range results {
		switch r.Status {
		case StatusSucceeded:
			succeeded++
		case StatusRejected:
			rejected++
		case StatusFailed:
			failed++
		}
	}
	return
}

// String renders the failure side of a result for diagnostics.
func (r ItemResult) String() string {
	switch r.Status {
	case StatusSucceeded:
		return fmt.Sprintf("item %d: created", r.Index)
	case StatusRejected:
		if r.HTTPStatus != 0 {
			return fmt.Sprintf("item %d: rejected with HTTP %d: %s", r.Index, r.HTTPStatus, r.Body)
		}
		return fmt.Sprintf("item %d: rejected: %v", r.Index, r.Err)
	default:
		return fmt.Sprintf("item %d: failed: %v", r.Index, r.Err)
	}
}
