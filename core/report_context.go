package core

import (
	"context"
	"os"

	"github.com/crmarques/heckler-report/config"
	"github.com/crmarques/heckler-report/internal/logging"
	"github.com/crmarques/heckler-report/internal/metrics"
	configfile "github.com/crmarques/heckler-report/internal/providers/config/file"
	"github.com/crmarques/heckler-report/internal/providers/repository/fsstore"
	gitverifier "github.com/crmarques/heckler-report/internal/providers/vcs/git"
	"github.com/crmarques/heckler-report/processor"
)

func NewConfigService() config.Service {
	return configfile.NewFileConfigService()
}

// NewReportContext loads the configuration and wires the store, the
// optional commit verifier, metrics and the processor around it.
func NewReportContext(ctx context.Context, opts BootstrapConfig) (ReportContext, error) {
	configs := opts.Configs
	if configs == nil {
		configs = NewConfigService()
	}

	cfg, err := configs.Load(ctx, opts.Selection)
	if err != nil {
		return ReportContext{}, err
	}

	logOutput := opts.LogOutput
	if logOutput == nil {
		logOutput = os.Stderr
	}
	logger, err := logging.New(logging.Options{Level: cfg.Logging.Level, Format: cfg.Logging.Format}, logOutput)
	if err != nil {
		return ReportContext{}, configValidationError("invalid logging configuration", err)
	}

	var storeOpts []fsstore.Option
	if baseDir := cfg.CodeRepositoryBaseDir(); baseDir != "" {
		storeOpts = append(storeOpts, fsstore.WithVersionVerifier(gitverifier.NewCommitVerifier(baseDir)))
	}
	store := fsstore.NewLocalReportRepository(cfg.ReportDir, storeOpts...)

	recorder := metrics.NewRecorder()
	reportProcessor, err := processor.New(processor.Dependencies{
		Store:   store,
		Logger:  logger,
		Metrics: recorder,
	})
	if err != nil {
		return ReportContext{}, err
	}

	logger.V(logging.DebugVerbosity).Info("report context ready",
		"report_dir", cfg.ReportDir,
		"code_repository", cfg.CodeRepositoryBaseDir(),
		"metrics_textfile", cfg.Metrics.Textfile,
	)

	return ReportContext{
		Config:    cfg,
		Logger:    logger,
		Store:     store,
		Processor: reportProcessor,
		Metrics:   recorder,
	}, nil
}

// FlushMetrics exports the recorder to the configured textfile. Failures
// are logged and otherwise ignored.
func (c ReportContext) FlushMetrics() {
	if c.Metrics == nil || c.Config.Metrics.Textfile == "" {
		return
	}
	if err := c.Metrics.WriteTextfile(c.Config.Metrics.Textfile); err != nil {
		c.Logger.Error(err, "failed to write metrics textfile", "path", c.Config.Metrics.Textfile)
	}
}
