package bundler

import (
	"strings"
	"time"

	"github.com/erraggy/swagsplit/parser"
)

// CLIOption configures a CLI bundler.
type CLIOption func(*CLI)

// WithCommand sets the bundler tool. The value is split on whitespace, so
// "npx swagger-cli" runs npx with swagger-cli as its first argument. Blank
// values keep the default.
func WithCommand(command string) CLIOption {
	return func(c *CLI) {
		if fields := strings.Fields(command); len(fields) > 0 {
			c.command = fields
		}
	}
}

// WithTimeout bounds each invocation. Zero or negative disables the bound.
func WithTimeout(d time.Duration) CLIOption {
	return func(c *CLI) {
		c.timeout = d
	}
}

// WithCLILogger sets the logger for invocation details.
func WithCLILogger(l parser.Logger) CLIOption {
	return func(c *CLI) {
		c.logger = parser.LoggerOrNop(l)
	}
}

// NativeOption configures a Native bundler.
type NativeOption func(*Native)

// WithMaxRefDepth bounds how many references may be expanded inside one
// another. Non-positive values keep MaxRefDepth.
func WithMaxRefDepth(depth int) NativeOption {
	return func(n *Native) {
		if depth > 0 {
			n.maxDepth = depth
		}
	}
}

// WithNativeLogger sets the logger for per-file detail.
func WithNativeLogger(l parser.Logger) NativeOption {
	return func(n *Native) {
		n.logger = parser.LoggerOrNop(l)
	}
}

// WithIndent sets the indentation of the produced bundle. An empty indent
// produces compact JSON. The default is two spaces.
func WithIndent(indent string) NativeOption {
	return func(n *Native) {
		n.indent = indent
	}
}
