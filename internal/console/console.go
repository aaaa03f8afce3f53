// Package console implements a line-oriented command interpreter
// that drives a [strq.Queue]. Each line names a command followed by
// its whitespace-separated arguments, such as "it apple 3".
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"deedles.dev/strq"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	// ErrUnknownCommand is returned for a line whose first word is not a
	// known command.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrBadArgs is returned when a command's arguments or a setting's
	// value cannot be used.
	ErrBadArgs = errors.New("bad arguments")

	// ErrInsertFailed is returned when a non-nil queue refuses an insert.
	ErrInsertFailed = errors.New("insert failed")

	// ErrRemoveFailed is returned when rh is given an expected value but
	// there was nothing to remove.
	ErrRemoveFailed = errors.New("remove failed")

	// ErrMismatch is returned when rh removes a value other than the
	// expected one.
	ErrMismatch = errors.New("removed value mismatch")

	// ErrFailed is returned by Run if any command failed.
	ErrFailed = errors.New("commands failed")
)

// Config holds the settings of a Console. Verbose and Length can also
// be changed at runtime with the option command.
type Config struct {
	// Verbose controls how much is printed. At 1 or above, the queue is
	// shown after every command that changes it.
	Verbose int

	// Length is the size of the buffer that removed values are copied
	// into, including the terminating NUL byte.
	Length int

	LogLevel logrus.Level
}

// DefaultConfig returns the settings used when none are given.
func DefaultConfig() Config {
	return Config{
		Verbose:  1,
		Length:   1024,
		LogLevel: logrus.InfoLevel,
	}
}

// Validate reports an error wrapping [ErrBadArgs] if cfg holds a
// setting that the option command would also reject.
func (cfg Config) Validate() error {
	if cfg.Verbose < 0 {
		return errors.Wrapf(ErrBadArgs, "invalid verbose %d", cfg.Verbose)
	}
	if cfg.Length < 0 {
		return errors.Wrapf(ErrBadArgs, "invalid length %d", cfg.Length)
	}
	return nil
}

// Console interprets commands against a single queue. The queue
// starts out nil, so most scripts begin with "new".
type Console struct {
	cfg    Config
	logger *logrus.Logger
	out    io.Writer

	q        *strq.Queue
	cmds     map[string]command
	failures int
	quit     bool
}

// New returns a Console that writes command output to out and
// reports problems to logger, whose level is set to cfg.LogLevel. cfg
// must be valid; see [Config.Validate].
func New(cfg Config, logger *logrus.Logger, out io.Writer) *Console {
	logger.SetLevel(cfg.LogLevel)
	return &Console{
		cfg:    cfg,
		logger: logger,
		out:    out,
		cmds:   commands(),
	}
}

// Queue returns the queue that the Console is currently operating on.
// It is nil before the first new command and after free.
func (c *Console) Queue() *strq.Queue {
	return c.q
}

// Failures returns the number of commands that have failed so far.
func (c *Console) Failures() int {
	return c.failures
}

// Run reads and executes commands from r until it is exhausted, the
// quit command is read, or ctx is canceled. Whatever queue remains is
// freed before Run returns. A failing command does not stop Run, but
// Run returns an error wrapping [ErrFailed] if any command failed.
//
// If ctx is canceled while Run is waiting for input, Run returns
// without waiting for the pending read to finish.
func (c *Console) Run(ctx context.Context, r io.Reader) error {
	defer c.release()

	stop := make(chan struct{})
	defer close(stop)
	lines, errc := scanLines(r, stop)

	var line int
	for !c.quit {
		if err := ctx.Err(); err != nil {
			return err
		}

		var text string
		select {
		case <-ctx.Done():
			return ctx.Err()

		case v, ok := <-lines:
			if !ok {
				if err := <-errc; err != nil {
					return errors.Wrap(err, "read commands")
				}
				return c.result()
			}
			text = v
		}
		line++

		err := c.Exec(text)
		if err != nil {
			c.failures++
			c.logger.WithError(err).WithField("line", line).Error("command failed")
		}
	}

	return c.result()
}

// scanLines reads lines from r in a new goroutine. The lines channel
// is closed at the end of the input, after the scanner's error has
// been sent on errc. Closing stop abandons the remaining input.
func scanLines(r io.Reader, stop <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)

	go func() {
		defer close(lines)

		s := bufio.NewScanner(r)
		for s.Scan() {
			select {
			case <-stop:
				return
			case lines <- s.Text():
			}
		}
		errc <- s.Err()
	}()

	return lines, errc
}

func (c *Console) result() error {
	if c.failures > 0 {
		return errors.Wrapf(ErrFailed, "%d of them", c.failures)
	}
	return nil
}

// Exec executes a single command line. Blank lines and lines starting
// with '#' are ignored.
func (c *Console) Exec(line string) error {
	args := strings.Fields(line)
	if len(args) == 0 || strings.HasPrefix(args[0], "#") {
		return nil
	}

	cmd, ok := c.cmds[args[0]]
	if !ok {
		return errors.Wrapf(ErrUnknownCommand, "%q", args[0])
	}

	c.logger.WithField("args", args).Debug("exec")
	if err := cmd.run(c, args[1:]); err != nil {
		return errors.WithMessage(err, args[0])
	}

	if cmd.changes && c.cfg.Verbose > 0 {
		c.show()
	}
	return nil
}

func (c *Console) release() {
	if c.q == nil {
		return
	}

	c.logger.Debug("freeing queue")
	c.q.Free()
	c.q = nil
}

func (c *Console) show() {
	fmt.Fprintf(c.out, "q = %v\n", c.q)
}

// warnNil logs a warning if the queue is nil. The operation is still
// carried out, as a nil queue is a valid target for every command.
func (c *Console) warnNil(op string) {
	if c.q == nil {
		c.logger.WithField("op", op).Warn("calling operation on null queue")
	}
}
