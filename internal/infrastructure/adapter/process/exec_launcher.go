// Package process starts external applications for the operator.
package process

import (
	"display-acceptance/internal/domain/port"
	"os/exec"

	"go.uber.org/zap"
)

// ExecLauncher implements the AppLauncher port by starting a detached OS process.
type ExecLauncher struct {
	logger  *zap.Logger
	command func(name string) starter
}

// starter is the part of *exec.Cmd the launcher needs.
type starter interface {
	Start() error
	Wait() error
}

var _ port.AppLauncher = (*ExecLauncher)(nil)

// NewExecLauncher creates an ExecLauncher. A nil logger disables logging.
func NewExecLauncher(logger *zap.Logger) *ExecLauncher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExecLauncher{
		logger: logger,
		command: func(name string) starter {
			return exec.Command(name)
		},
	}
}

// Launch starts app without arguments and returns immediately. A failure to
// start is logged and otherwise ignored. The process is reaped in the
// background so it does not linger as a zombie; its exit is only logged.
func (l *ExecLauncher) Launch(app string) {
	cmd := l.command(app)
	if err := cmd.Start(); err != nil {
		l.logger.Warn("Failed to start application", zap.String("app", app), zap.Error(err))
		return
	}
	l.logger.Debug("Started application", zap.String("app", app))

	go func() {
		if err := cmd.Wait(); err != nil {
			l.logger.Debug("Application exited", zap.String("app", app), zap.Error(err))
			return
		}
		l.logger.Debug("Application exited", zap.String("app", app))
	}()
}
