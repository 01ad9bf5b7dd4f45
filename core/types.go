package core

import (
	"io"

	"github.com/crmarques/heckler-report/config"
	"github.com/crmarques/heckler-report/internal/metrics"
	"github.com/crmarques/heckler-report/processor"
	"github.com/crmarques/heckler-report/repository"
	"github.com/go-logr/logr"
)

type ReportContext struct {
	Config    config.Config
	Logger    logr.Logger
	Store     repository.ReportStore
	Processor *processor.Processor
	Metrics   *metrics.Recorder
}

type BootstrapConfig struct {
	Selection config.Selection
	// LogOutput receives log entries. Nil means stderr.
	LogOutput io.Writer
	// Configs replaces the file config service.
	Configs config.Service
}
