package common

import (
	"context"
	"io"

	"github.com/crmarques/heckler-report/config"
	"github.com/crmarques/heckler-report/report"
	"github.com/crmarques/heckler-report/repository"
	"github.com/go-logr/logr"
)

type ReportProcessor interface {
	Run(ctx context.Context, host string, r *report.Report) (string, error)
	Process(ctx context.Context, host string, r *report.Report) string
}

// Runtime is what a bootstrapped command works with.
type Runtime struct {
	Config    config.Config
	Logger    logr.Logger
	Processor ReportProcessor
	Store     repository.ReportStore
	// Flush runs once the command finished; it may be nil.
	Flush func()
}

type Bootstrapper func(ctx context.Context, selection config.Selection, logOutput io.Writer) (Runtime, error)

type CommandDependencies struct {
	Bootstrap Bootstrapper
}

func RequireBootstrap(deps CommandDependencies) (Bootstrapper, error) {
	if deps.Bootstrap == nil {
		return nil, ValidationError("report runtime is not configured", nil)
	}
	return deps.Bootstrap, nil
}

func RequireProcessor(runtime Runtime) (ReportProcessor, error) {
	if runtime.Processor == nil {
		return nil, ValidationError("report processor is not configured", nil)
	}
	return runtime.Processor, nil
}

func RequireStore(runtime Runtime) (repository.ReportStore, error) {
	if runtime.Store == nil {
		return nil, ValidationError("report store is not configured", nil)
	}
	return runtime.Store, nil
}
