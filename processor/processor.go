// Package processor implements the report post-processing hook: filter a
// run report and store it for the host that produced it.
package processor

import (
	"context"
	"errors"
	"fmt"

	"github.com/crmarques/heckler-report/faults"
	"github.com/crmarques/heckler-report/report"
	"github.com/crmarques/heckler-report/repository"
	"github.com/go-logr/logr"
)

const (
	failureMessage = "Unable to write report"

	// debugVerbosity maps to the debug level of the configured backend.
	debugVerbosity = 1
)

// Metrics receives one call per run.
type Metrics interface {
	RecordSuccess(kept int, dropped int)
	RecordFailure()
}

type Dependencies struct {
	Store   repository.ReportStore
	Logger  logr.Logger
	Metrics Metrics
}

type Processor struct {
	store   repository.ReportStore
	logger  logr.Logger
	metrics Metrics
}

func New(deps Dependencies) (*Processor, error) {
	if deps.Store == nil {
		return nil, faults.NewTypedError(faults.InternalError, "report store is required", nil)
	}
	logger := deps.Logger
	if logger.GetSink() == nil {
		logger = logr.Discard()
	}
	return &Processor{store: deps.Store, logger: logger, metrics: deps.Metrics}, nil
}

// Run filters r and saves it under host. Failures are logged as critical
// and returned as typed errors.
func (p *Processor) Run(ctx context.Context, host string, r *report.Report) (string, error) {
	if r == nil {
		err := faults.NewTypedError(faults.ValidationError, "report must not be nil", nil)
		p.fail(host, err)
		return "", err
	}

	result := report.Filter(r)
	p.logger.V(debugVerbosity).Info("filtered resource statuses",
		"host", host,
		"kept", result.Kept,
		"dropped", result.Dropped,
	)

	path, err := p.store.Save(ctx, host, result.Report)
	if err != nil {
		p.fail(host, err)
		return "", err
	}

	p.logger.Info("report written", "host", host, "path", path)
	if p.metrics != nil {
		p.metrics.RecordSuccess(result.Kept, result.Dropped)
	}
	return path, nil
}

// Process is the hook entry point: it returns the written path, or an
// empty string when the report could not be written.
func (p *Processor) Process(ctx context.Context, host string, r *report.Report) (path string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			p.fail(host, faults.NewTypedError(faults.InternalError, "report processing panicked", panicError(recovered)))
			path = ""
		}
	}()

	path, err := p.Run(ctx, host, r)
	if err != nil {
		return ""
	}
	return path
}

// fail logs the critical diagnostic. Write failures carry the destination
// path in the error message.
func (p *Processor) fail(host string, err error) {
	p.logger.Error(err, failureMessage,
		"severity", "critical",
		"host", host,
		"category", string(faults.CategoryOf(err)),
	)
	if p.metrics != nil {
		p.metrics.RecordFailure()
	}
}

func panicError(value any) error {
	if err, ok := value.(error); ok {
		return err
	}
	return errors.New(fmt.Sprint(value))
}
