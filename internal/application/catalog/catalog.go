// Package catalog binds the natural-language steps of the display feature
// files to operator instructions.
//
// Every binding formats an instruction from its placeholders and hands it to
// the prompt protocol. Two bindings also start the display settings
// application before the operator continues.
package catalog

import (
	"context"
	"display-acceptance/internal/domain/entity"
	"display-acceptance/internal/domain/port"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
)

// DefaultDisplayApp is the display settings application started for the operator.
const DefaultDisplayApp = "xfce4-display-settings"

// launchNotice is shown before the display settings application is started.
const launchNotice = "I will start the display settings for you!"

var (
	// ErrPrompterRequired is returned when no prompter is supplied.
	ErrPrompterRequired = errors.New("prompter is required")

	// ErrLauncherRequired is returned when no application launcher is supplied.
	ErrLauncherRequired = errors.New("app launcher is required")
)

// Prompter shows one instruction to the operator and waits for the answer.
// *service.PromptService satisfies it.
type Prompter interface {
	Prompt(ctx context.Context, sc port.StepContext, label string) error
}

// Binding ties a trigger pattern to a handler for one step role.
type Binding struct {
	Role        entity.StepRole
	Pattern     entity.StepPattern
	Params      any // zero value of the placeholder struct, nil when there are none
	Summary     string
	LaunchesApp bool
	Handler     interface{}
}

// Catalog is the table of display step bindings.
type Catalog struct {
	prompter    Prompter
	launcher    port.AppLauncher
	app         string
	diagnostics io.Writer
	bindings    []Binding
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithDisplayApp overrides the application started by the launch steps.
func WithDisplayApp(app string) Option {
	return func(c *Catalog) {
		if app != "" {
			c.app = app
		}
	}
}

// WithDiagnostics sets the stream used for operator comments when a handler
// runs outside a runner-provided step context.
func WithDiagnostics(w io.Writer) Option {
	return func(c *Catalog) {
		if w != nil {
			c.diagnostics = w
		}
	}
}

// New creates the catalog and builds its binding table.
func New(prompter Prompter, launcher port.AppLauncher, opts ...Option) (*Catalog, error) {
	if prompter == nil {
		return nil, ErrPrompterRequired
	}
	if launcher == nil {
		return nil, ErrLauncherRequired
	}

	c := &Catalog{
		prompter:    prompter,
		launcher:    launcher,
		app:         DefaultDisplayApp,
		diagnostics: io.Discard,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.bindings = c.table()
	return c, nil
}

// DisplayApp returns the application the launch steps start.
func (c *Catalog) DisplayApp() string {
	return c.app
}

// Bindings returns a copy of the binding table in registration order.
func (c *Catalog) Bindings() []Binding {
	out := make([]Binding, len(c.bindings))
	copy(out, c.bindings)
	return out
}

// Register adds every binding to r under its role.
func (c *Catalog) Register(r port.StepRegistrar) {
	for _, b := range c.bindings {
		expr := b.Pattern.Regexp()
		switch b.Role {
		case entity.Given:
			r.Given(expr, b.Handler)
		case entity.When:
			r.When(expr, b.Handler)
		case entity.Then:
			r.Then(expr, b.Handler)
		}
	}
}

func (c *Catalog) table() []Binding {
	bind := func(role entity.StepRole, phrase string, params any, summary string, handler interface{}) Binding {
		return Binding{
			Role:    role,
			Pattern: entity.MustParseStepPattern(phrase),
			Params:  params,
			Summary: summary,
			Handler: handler,
		}
	}

	launching := func(b Binding) Binding {
		b.LaunchesApp = true
		return b
	}

	return []Binding{
		bind(entity.Given, "no external monitors are attached", nil,
			"operator disconnects every external monitor", c.noExternalMonitors),
		launching(bind(entity.Given, "all profiles are deleted", nil,
			"starts the display settings and has the operator remove all profiles", c.allProfilesDeleted)),
		bind(entity.When, "the {monitor} monitor is connected (via {connector})", MonitorConnection{},
			"operator plugs a monitor into a connector", c.monitorConnected),
		bind(entity.When, "the {monitor} monitor is {state}", MonitorState{},
			"operator brings a monitor into a state", c.monitorInState),
		launching(bind(entity.When, "the display dialog is opened", nil,
			"starts the display settings", c.displayDialogOpened)),
		bind(entity.When, "no profile exists", nil,
			"operator checks the profile list is empty", c.noProfileExists),
		bind(entity.When, "the monitors get arranged: {arrangement:text}", Arrangement{},
			"operator arranges the monitors", c.monitorsArranged),
		bind(entity.When, "the configuration is applied", nil,
			"operator applies the configuration", c.configurationApplied),
		bind(entity.When, `the new profile "{profile_name}" is saved`, Profile{},
			"operator saves a new profile", c.profileSaved),
		bind(entity.When, `"Configure new displays when connected" is set to enabled`, nil,
			"operator enables automatic configuration of new displays", c.autoConfigureEnabled),
		bind(entity.Given, "the {dialog_type} dialog is closed", Dialog{},
			"operator closes a dialog", c.dialogClosed),
		bind(entity.When, "the {dialog_type} dialog is closed", Dialog{},
			"operator closes a dialog", c.dialogClosed),
		bind(entity.Then, "the monitors are arranged: {arrangement:text}", Arrangement{},
			"operator verifies the monitor arrangement", c.arrangementVerified),
	}
}

// prompt runs the prompt protocol for the step carried by ctx.
func (c *Catalog) prompt(ctx context.Context, label string) error {
	sc, ok := port.StepContextFromContext(ctx)
	if !ok {
		sc = port.NewStepContext("", c.diagnostics)
	}
	return c.prompter.Prompt(ctx, sc, label)
}

func (c *Catalog) noExternalMonitors(ctx context.Context) error {
	return c.prompt(ctx, "Please disconnect all external monitors")
}

func (c *Catalog) allProfilesDeleted(ctx context.Context) error {
	if err := c.prompt(ctx, launchNotice); err != nil {
		return err
	}
	c.launcher.Launch(c.app)
	return c.prompt(ctx, "Please remove all profiles")
}

func (c *Catalog) monitorConnected(ctx context.Context, monitor, connector string) error {
	return c.prompt(ctx, fmt.Sprintf("Please connect the %s monitor VIA %s", monitor, connector))
}

func (c *Catalog) monitorInState(ctx context.Context, monitor, state string) error {
	return c.prompt(ctx, fmt.Sprintf("Please assure that %s monitor is %s", monitor, state))
}

func (c *Catalog) displayDialogOpened(ctx context.Context) error {
	if err := c.prompt(ctx, launchNotice); err != nil {
		return err
	}
	c.launcher.Launch(c.app)
	return nil
}

func (c *Catalog) noProfileExists(ctx context.Context) error {
	return c.prompt(ctx, "Please check if there is no profile")
}

func (c *Catalog) monitorsArranged(ctx context.Context, arrangement string) error {
	return c.prompt(ctx, "Please arrange the monitors like this: "+arrangement)
}

func (c *Catalog) configurationApplied(ctx context.Context) error {
	return c.prompt(ctx, "Please apply the configuration")
}

func (c *Catalog) profileSaved(ctx context.Context, profileName string) error {
	return c.prompt(ctx, "Please create a new profile: "+profileName)
}

func (c *Catalog) autoConfigureEnabled(ctx context.Context) error {
	return c.prompt(ctx, `Please assure "Configure new displays when connected" to be enabled`)
}

func (c *Catalog) dialogClosed(ctx context.Context, dialogType string) error {
	return c.prompt(ctx, fmt.Sprintf("Please close the %s dialog", dialogType))
}

func (c *Catalog) arrangementVerified(ctx context.Context, arrangement string) error {
	return c.prompt(ctx, "Please verify the arrangement: "+arrangement)
}
