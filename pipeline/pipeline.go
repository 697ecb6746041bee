// Package pipeline orchestrates show extraction: it resolves catalog names,
// loads and parses source documents, runs the field extractor and assembles
// records, then submits them to a record store.
package pipeline

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/edjs/spectacle"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of documents processed at once when
// Pipeline.Concurrency is not set.
const DefaultConcurrency = 4

// Pipeline runs the per-document stages over a list of display names.
type Pipeline struct {
	Catalog   spectacle.CatalogResolver
	Loader    spectacle.Loader
	Extractor spectacle.FieldExtractor

	// Concurrency bounds the documents processed at once.
	Concurrency int

	// LoadTimeout bounds loading and extracting one document. Zero means
	// no per-document bound.
	LoadTimeout time.Duration
}

// Stage names the step at which a document failed.
type Stage string

// Pipeline stages.
const (
	StageCatalog  Stage = "catalog"
	StageLoad     Stage = "load"
	StageExtract  Stage = "extract"
	StageAssemble Stage = "assemble"
)

// Failure reports one document that produced no record.
type Failure struct {
	DisplayName string
	Stage       Stage
	Err         error
}

// Error implements the error interface.
func (f Failure) Error() string {
	return fmt.Sprintf("%s: %s: %v", f.DisplayName, f.Stage, f.Err)
}

// Unwrap returns the underlying error.
func (f Failure) Unwrap() error {
	return f.Err
}

// Result holds the outcome of a run. Records and Failures each keep the
// order of the input names.
type Result struct {
	Records  []*spectacle.ShowRecord
	Failures []Failure
}

// ProgressEvent reports progress during a run.
type ProgressEvent struct {
	Type        ProgressType
	Completed   int
	Total       int
	DisplayName string
	Error       error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting run progress.
type ProgressFunc func(event ProgressEvent)

// docResult holds the outcome of processing a single name.
type docResult struct {
	position int
	name     string
	record   *spectacle.ShowRecord
	failure  *Failure
}

// Run processes every name and returns the records produced alongside the
// failures. A failing document never stops the others; only cancellation
// of ctx aborts the run, in which case its error is returned.
func (p *Pipeline) Run(ctx context.Context, names []string, progress ProgressFunc) (*Result, error) {
	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	resultCh := make(chan docResult, len(names))

	var completed atomic.Int64
	total := len(names)

	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, name := range names {
			g.Go(func() error {
				resultCh <- p.process(gctx, i, name)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	results := make([]docResult, len(names))
	for result := range resultCh {
		completed.Add(1)
		results[result.position] = result

		if progress == nil {
			continue
		}
		event := ProgressEvent{
			Type:        ProgressCompleted,
			Completed:   int(completed.Load()),
			Total:       total,
			DisplayName: result.name,
		}
		if result.failure != nil {
			event.Type = ProgressFailed
			event.Error = result.failure
		}
		progress(event)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out Result
	for _, result := range results {
		if result.failure != nil {
			out.Failures = append(out.Failures, *result.failure)
			continue
		}
		out.Records = append(out.Records, result.record)
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	return &out, nil
}

// process runs the stages for a single name.
func (p *Pipeline) process(ctx context.Context, position int, name string) docResult {
	result := docResult{
		position: position,
		name:     name,
	}
	fail := func(stage Stage, err error) docResult {
		result.failure = &Failure{DisplayName: name, Stage: stage, Err: err}
		return result
	}

	path, err := p.Catalog.Resolve(name)
	if err != nil {
		return fail(StageCatalog, err)
	}

	if p.LoadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.LoadTimeout)
		defer cancel()
	}

	doc, err := p.Loader.Load(ctx, path)
	if err != nil {
		return fail(StageLoad, err)
	}

	fields, err := p.Extractor.Extract(ctx, doc)
	if err != nil {
		return fail(StageExtract, err)
	}

	record, err := spectacle.Assemble(name, path, fields)
	if err != nil {
		return fail(StageAssemble, err)
	}

	result.record = record
	return result
}
