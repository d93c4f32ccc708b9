// Package suite runs the display feature files with godog and feeds the
// running step into the prompt protocol.
package suite

import (
	"context"
	"display-acceptance/internal/domain/entity"
	"display-acceptance/internal/domain/port"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/cucumber/godog"
	"go.uber.org/zap"
)

// Godog exit statuses.
const (
	ExitPassed      = 0
	ExitFailed      = 1
	ExitOptionError = 2
)

// StepCatalog registers step bindings. *catalog.Catalog satisfies it.
type StepCatalog interface {
	Register(r port.StepRegistrar)
}

// Options controls a suite run.
type Options struct {
	Name          string
	Paths         []string
	Format        string
	Tags          string
	Strict        bool
	StopOnFailure bool
	NoColors      bool

	// Output receives the formatter report. Defaults to stdout.
	Output io.Writer

	// Features are parsed in addition to Paths. Used to run inline feature text.
	Features []godog.Feature
}

// Runner wires the step catalog into a godog test suite.
type Runner struct {
	catalog     StepCatalog
	diagnostics io.Writer
	logger      *zap.Logger
	opts        Options
}

// NewRunner creates a Runner. Operator comments of every step are written to
// diagnostics; a nil logger disables logging.
func NewRunner(catalog StepCatalog, diagnostics io.Writer, logger *zap.Logger, opts Options) (*Runner, error) {
	if catalog == nil {
		return nil, errors.New("step catalog cannot be nil")
	}
	if diagnostics == nil {
		diagnostics = os.Stderr
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Name == "" {
		opts.Name = "display"
	}
	if opts.Format == "" {
		opts.Format = "pretty"
	}
	return &Runner{
		catalog:     catalog,
		diagnostics: diagnostics,
		logger:      logger,
		opts:        opts,
	}, nil
}

// InitializeScenario registers the catalog and the step hooks on sc.
func (r *Runner) InitializeScenario(sc *godog.ScenarioContext) {
	r.catalog.Register(sc)

	sc.StepContext().Before(r.beforeStep)
	sc.StepContext().After(r.afterStep)
}

// beforeStep exposes the running step to the handlers through ctx.
func (r *Runner) beforeStep(ctx context.Context, st *godog.Step) (context.Context, error) {
	return port.WithStepContext(ctx, port.NewStepContext(st.Text, r.diagnostics)), nil
}

func (r *Runner) afterStep(ctx context.Context, st *godog.Step, status godog.StepResultStatus, err error) (context.Context, error) {
	switch {
	case errors.Is(err, entity.ErrOperatorAbort):
		fields := []zap.Field{zap.String("step", st.Text)}
		if details := errors.GetAllDetails(err); len(details) > 0 {
			fields = append(fields, zap.Strings("comment", details))
		}
		r.logger.Warn("Step aborted by operator", fields...)
	case err != nil:
		r.logger.Error("Step failed", zap.String("step", st.Text), zap.Error(err))
	default:
		r.logger.Debug("Step finished", zap.String("step", st.Text), zap.String("status", status.String()))
	}
	return ctx, nil
}

// Run executes the suite and returns godog's exit status. The call blocks for
// as long as the operator takes to answer every prompt.
func (r *Runner) Run(ctx context.Context) int {
	ts := godog.TestSuite{
		Name:                r.opts.Name,
		ScenarioInitializer: r.InitializeScenario,
		Options: &godog.Options{
			Format:          r.opts.Format,
			Paths:           r.opts.Paths,
			Tags:            r.opts.Tags,
			Strict:          r.opts.Strict,
			StopOnFailure:   r.opts.StopOnFailure,
			NoColors:        r.opts.NoColors,
			Output:          r.opts.Output,
			FeatureContents: r.opts.Features,
			DefaultContext:  ctx,
		},
	}

	r.logger.Info("Starting manual display test run",
		zap.Strings("paths", r.opts.Paths),
		zap.String("tags", r.opts.Tags),
		zap.Int("inline_features", len(r.opts.Features)),
	)
	status := ts.Run()
	r.logger.Info("Manual display test run finished", zap.Int("status", status))
	return status
}
