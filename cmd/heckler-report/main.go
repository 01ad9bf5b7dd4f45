package main

import (
	"context"
	"io"
	"os"

	"github.com/crmarques/heckler-report/config"
	"github.com/crmarques/heckler-report/core"
	"github.com/crmarques/heckler-report/internal/cli"
)

func main() {
	deps := cli.Dependencies{Bootstrap: bootstrap}
	if err := cli.Execute(deps); err != nil {
		os.Exit(cli.ExitCodeForError(err))
	}
}

func bootstrap(ctx context.Context, selection config.Selection, logOutput io.Writer) (cli.Runtime, error) {
	reportContext, err := core.NewReportContext(ctx, core.BootstrapConfig{
		Selection: selection,
		LogOutput: logOutput,
	})
	if err != nil {
		return cli.Runtime{}, err
	}

	return cli.Runtime{
		Config:    reportContext.Config,
		Logger:    reportContext.Logger,
		Processor: reportContext.Processor,
		Store:     reportContext.Store,
		Flush:     reportContext.FlushMetrics,
	}, nil
}
