// Package config provides a dependency injection container for wiring together
// all the components of the application following hexagonal architecture principles.
package config

import (
	"display-acceptance/internal/application/catalog"
	"display-acceptance/internal/domain/port"
	"display-acceptance/internal/domain/service"
	"display-acceptance/internal/infrastructure/adapter/process"
	"display-acceptance/internal/infrastructure/adapter/suite"
	"display-acceptance/internal/infrastructure/adapter/ui"
	"display-acceptance/internal/infrastructure/logging"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Container holds all application dependencies wired together.
// It provides a single point of access to all services and ports,
// following the dependency injection pattern for clean architecture.
//
// The wiring order is:
// 1. Create infrastructure adapters (logger, console, launcher, comment stream)
// 2. Create the domain prompt service
// 3. Create the application step catalog
// 4. Create the godog suite runner
type Container struct {
	config        *Config
	logger        *zap.Logger
	console       port.Console
	launcher      port.AppLauncher
	diagnostics   io.Writer
	closers       []io.Closer
	promptService *service.PromptService
	catalog       *catalog.Catalog
	runner        *suite.Runner
}

// ContainerOption replaces one of the default adapters. Tests use these to
// script operator input and capture output.
type ContainerOption func(*containerOverrides)

type containerOverrides struct {
	console      port.Console
	launcher     port.AppLauncher
	diagnostics  io.Writer
	reportOutput io.Writer
	logOutput    io.Writer
}

// WithConsole replaces the terminal console.
func WithConsole(c port.Console) ContainerOption {
	return func(o *containerOverrides) { o.console = c }
}

// WithLauncher replaces the process launcher.
func WithLauncher(l port.AppLauncher) ContainerOption {
	return func(o *containerOverrides) { o.launcher = l }
}

// WithDiagnostics replaces the operator comment stream, ignoring CommentLog.
func WithDiagnostics(w io.Writer) ContainerOption {
	return func(o *containerOverrides) { o.diagnostics = w }
}

// WithReportOutput sets where the godog report is written.
func WithReportOutput(w io.Writer) ContainerOption {
	return func(o *containerOverrides) { o.reportOutput = w }
}

// WithLogOutput sets where harness logs are written. Defaults to stderr.
func WithLogOutput(w io.Writer) ContainerOption {
	return func(o *containerOverrides) { o.logOutput = w }
}

// NewContainer creates a new DI container and wires all dependencies.
// The caller must Close the container to release the comment log.
func NewContainer(cfg *Config, opts ...ContainerOption) (*Container, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	var o containerOverrides
	for _, opt := range opts {
		opt(&o)
	}

	c := &Container{config: cfg}

	// Step 1: Create infrastructure adapters
	logOutput := o.logOutput
	if logOutput == nil {
		logOutput = os.Stderr
	}
	c.logger = logging.New(cfg.LogLevel, logOutput)

	c.console = o.console
	if c.console == nil {
		c.console = newConsole(cfg.InputMode)
	}

	c.launcher = o.launcher
	if c.launcher == nil {
		c.launcher = process.NewExecLauncher(c.logger.Named("launcher"))
	}

	diagnostics, err := c.openDiagnostics(o.diagnostics)
	if err != nil {
		return nil, err
	}
	c.diagnostics = diagnostics

	// Step 2: Create domain service
	c.promptService, err = service.NewPromptService(c.console)
	if err != nil {
		return nil, err
	}

	// Step 3: Create application catalog
	c.catalog, err = catalog.New(c.promptService, c.launcher,
		catalog.WithDisplayApp(cfg.DisplayApp),
		catalog.WithDiagnostics(c.diagnostics),
	)
	if err != nil {
		return nil, err
	}

	// Step 4: Create suite runner
	c.runner, err = suite.NewRunner(c.catalog, c.diagnostics, c.logger.Named("suite"), suite.Options{
		Paths:         cfg.FeaturePaths,
		Format:        cfg.Format,
		Tags:          cfg.Tags,
		Strict:        cfg.Strict,
		StopOnFailure: cfg.StopOnFailure,
		NoColors:      cfg.NoColors,
		Output:        o.reportOutput,
	})
	if err != nil {
		return nil, err
	}

	return c, nil
}

func newConsole(mode string) port.Console {
	if mode == InputModeInteractive {
		return ui.NewInteractiveAdapter()
	}
	return ui.NewCLIAdapter()
}

// openDiagnostics picks the stream operator comments are written to.
func (c *Container) openDiagnostics(override io.Writer) (io.Writer, error) {
	if override != nil {
		return override, nil
	}
	if c.config.CommentLog == "" {
		return os.Stderr, nil
	}

	f, err := os.OpenFile(c.config.CommentLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "open comment log %s", c.config.CommentLog)
	}
	c.closers = append(c.closers, f)
	return f, nil
}

// Close releases files opened by the container and flushes the logger.
func (c *Container) Close() error {
	var errs error
	for _, cl := range c.closers {
		errs = errors.CombineErrors(errs, cl.Close())
	}
	c.closers = nil
	_ = c.logger.Sync()
	return errs
}

// Config returns the application configuration.
func (c *Container) Config() *Config {
	return c.config
}

// Logger returns the harness logger.
func (c *Container) Logger() *zap.Logger {
	return c.logger
}

// Console returns the operator console port implementation.
func (c *Container) Console() port.Console {
	return c.console
}

// Launcher returns the application launcher port implementation.
func (c *Container) Launcher() port.AppLauncher {
	return c.launcher
}

// PromptService returns the domain prompt service.
func (c *Container) PromptService() *service.PromptService {
	return c.promptService
}

// Catalog returns the step catalog.
func (c *Container) Catalog() *catalog.Catalog {
	return c.catalog
}

// Runner returns the godog suite runner.
func (c *Container) Runner() *suite.Runner {
	return c.runner
}
