package suite

import (
	"io"
	"log/slog"

	"regexfa/internal/logging"
)

// Context carries the state shared by the statements of one or more scripts.
type Context struct {
	Env    *Environment
	Report *Report
	Out    io.Writer    // receives show output; nil discards it
	Logger *slog.Logger // nil logs nothing
}

func NewContext(out io.Writer, logger *slog.Logger) *Context {
	return &Context{
		Env:    NewEnvironment(),
		Report: &Report{},
		Out:    out,
		Logger: logger,
	}
}

func (c *Context) out() io.Writer {
	if c.Out == nil {
		return io.Discard
	}
	return c.Out
}

func (c *Context) logger() *slog.Logger {
	if c.Logger == nil {
		return logging.NewNop()
	}
	return c.Logger
}
