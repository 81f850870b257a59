package bundler

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"github.com/erraggy/swagsplit/oaserrors"
	"github.com/erraggy/swagsplit/parser"
)

// DefaultCommand is the bundler tool run by CLI.
const DefaultCommand = "swagger-cli"

// CLI runs an external bundling tool as "<command> bundle <root> -r".
type CLI struct {
	command []string
	timeout time.Duration
	logger  parser.Logger
}

// NewCLI returns a CLI bundler running DefaultCommand with no timeout.
func NewCLI(opts ...CLIOption) *CLI {
	c := &CLI{command: []string{DefaultCommand}, logger: parser.NopLogger{}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CommandLine returns the command line run for rootPath.
func (c *CLI) CommandLine(rootPath string) []string {
	args := append([]string{}, c.command...)
	return append(args, "bundle", rootPath, "-r")
}

// Bundle runs the tool and waits for it to exit. Non-empty standard error is
// returned as the outcome's diagnostic; otherwise standard output must hold
// the bundle.
func (c *CLI) Bundle(ctx context.Context, rootPath string) (Outcome, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	argv := c.CommandLine(rootPath)
	line := strings.Join(argv, " ")
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // G204: the bundler command is operator configuration
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	c.logger.Debug("running bundler", "command", line)
	start := time.Now()
	runErr := cmd.Run()
	c.logger.Debug("bundler exited", "elapsed", time.Since(start), "stdout_bytes", stdout.Len(), "stderr_bytes", stderr.Len())

	if ctxErr := ctx.Err(); ctxErr != nil {
		if errors.Is(ctxErr, context.DeadlineExceeded) && c.timeout > 0 {
			return Outcome{}, &oaserrors.BundlerError{
				Command:  line,
				ExitCode: -1,
				TimedOut: true,
				Message:  "no result after " + c.timeout.String(),
				Cause:    ctxErr,
			}
		}
		return Outcome{}, ctxErr
	}

	if diag := strings.TrimSpace(stderr.String()); diag != "" {
		return Outcome{Diagnostic: diag}, nil
	}
	if runErr != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return Outcome{}, &oaserrors.BundlerError{Command: line, ExitCode: exitCode, Cause: runErr}
	}
	if len(bytes.TrimSpace(stdout.Bytes())) == 0 {
		return Outcome{}, &oaserrors.BundlerError{Command: line, Message: "no bundle on standard output"}
	}
	return Outcome{Bundle: stdout.Bytes()}, nil
}

var _ Service = (*CLI)(nil)
