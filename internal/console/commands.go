package console

import (
	"fmt"
	"slices"
	"strconv"

	"deedles.dev/strq"
	"github.com/pkg/errors"
)

type command struct {
	usage string
	help  string

	// changes is set for commands that can modify the queue.
	changes bool

	run func(c *Console, args []string) error
}

func commands() map[string]command {
	return map[string]command{
		"new": {
			help:    "Create new queue",
			changes: true,
			run:     (*Console).cmdNew,
		},
		"free": {
			help:    "Delete queue",
			changes: true,
			run:     (*Console).cmdFree,
		},
		"ih": {
			usage:   "str [n]",
			help:    "Insert string str at head of queue n times (default: n == 1)",
			changes: true,
			run: func(c *Console, args []string) error {
				return c.insert("insert head", (*strq.Queue).InsertHead, args)
			},
		},
		"it": {
			usage:   "str [n]",
			help:    "Insert string str at tail of queue n times (default: n == 1)",
			changes: true,
			run: func(c *Console, args []string) error {
				return c.insert("insert tail", (*strq.Queue).InsertTail, args)
			},
		},
		"rh": {
			usage:   "[str]",
			help:    "Remove from head of queue. Optionally compare to expected value str",
			changes: true,
			run:     (*Console).cmdRemoveHead,
		},
		"rhq": {
			help:    "Remove from head of queue without reporting value",
			changes: true,
			run:     (*Console).cmdRemoveHeadQuiet,
		},
		"size": {
			usage: "[n]",
			help:  "Compute queue size n times (default: n == 1)",
			run:   (*Console).cmdSize,
		},
		"reverse": {
			help:    "Reverse queue",
			changes: true,
			run:     (*Console).cmdReverse,
		},
		"sort": {
			help:    "Sort queue in ascending order",
			changes: true,
			run:     (*Console).cmdSort,
		},
		"show": {
			help: "Show queue contents",
			run: func(c *Console, args []string) error {
				if err := noArgs(args); err != nil {
					return err
				}
				c.show()
				return nil
			},
		},
		"option": {
			usage: "[name val]",
			help:  "Display or set options (verbose, length)",
			run:   (*Console).cmdOption,
		},
		"help": {
			help: "Show documentation",
			run:  (*Console).cmdHelp,
		},
		"quit": {
			help: "Exit program",
			run: func(c *Console, args []string) error {
				c.quit = true
				return nil
			},
		},
	}
}

func noArgs(args []string) error {
	if len(args) != 0 {
		return errors.Wrapf(ErrBadArgs, "expected no arguments, got %d", len(args))
	}
	return nil
}

// count parses an optional repetition count at args[i].
func count(args []string, i int) (int, error) {
	if len(args) <= i {
		return 1, nil
	}
	if len(args) > i+1 {
		return 0, errors.Wrapf(ErrBadArgs, "expected at most %d arguments, got %d", i+1, len(args))
	}

	n, err := strconv.Atoi(args[i])
	if err != nil || n < 1 {
		return 0, errors.Wrapf(ErrBadArgs, "invalid count %q", args[i])
	}
	return n, nil
}

func (c *Console) cmdNew(args []string) error {
	if err := noArgs(args); err != nil {
		return err
	}

	if c.q != nil {
		c.q.Free()
	}
	c.q = strq.New()
	return nil
}

func (c *Console) cmdFree(args []string) error {
	if err := noArgs(args); err != nil {
		return err
	}

	c.warnNil("free")
	c.q.Free()
	c.q = nil
	return nil
}

func (c *Console) insert(op string, insert func(*strq.Queue, string) bool, args []string) error {
	if len(args) == 0 {
		return errors.Wrap(ErrBadArgs, "missing string argument")
	}
	n, err := count(args, 1)
	if err != nil {
		return err
	}

	// A nil queue refuses every insert, which is the expected outcome
	// and not a failure of the command.
	c.warnNil(op)
	for i := range n {
		if !insert(c.q, args[0]) && c.q != nil {
			return errors.Wrapf(ErrInsertFailed, "after %d of %d", i, n)
		}
	}
	return nil
}

func (c *Console) cmdRemoveHead(args []string) error {
	if len(args) > 1 {
		return errors.Wrapf(ErrBadArgs, "expected at most 1 argument, got %d", len(args))
	}

	c.warnNil("remove head")
	buf := make([]byte, c.cfg.Length)
	n, ok := c.q.RemoveHead(buf)
	if !ok {
		if len(args) == 1 {
			return errors.Wrapf(ErrRemoveFailed, "expected %q", args[0])
		}
		c.logger.Warn("remove head on empty queue")
		return nil
	}

	got := string(buf[:n])
	fmt.Fprintf(c.out, "Removed %s from queue\n", got)
	if len(args) == 1 && got != args[0] {
		return errors.Wrapf(ErrMismatch, "removed %q, expected %q", got, args[0])
	}
	return nil
}

func (c *Console) cmdRemoveHeadQuiet(args []string) error {
	if err := noArgs(args); err != nil {
		return err
	}

	c.warnNil("remove head")
	if _, ok := c.q.RemoveHead(nil); !ok {
		c.logger.Warn("remove head on empty queue")
		return nil
	}
	fmt.Fprintln(c.out, "Removed element from queue")
	return nil
}

func (c *Console) cmdSize(args []string) error {
	n, err := count(args, 0)
	if err != nil {
		return err
	}

	c.warnNil("size")
	var size int
	for range n {
		size = c.q.Size()
	}
	fmt.Fprintf(c.out, "Queue size = %d\n", size)
	return nil
}

func (c *Console) cmdReverse(args []string) error {
	if err := noArgs(args); err != nil {
		return err
	}

	c.warnNil("reverse")
	c.q.Reverse()
	return nil
}

func (c *Console) cmdSort(args []string) error {
	if err := noArgs(args); err != nil {
		return err
	}

	c.warnNil("sort")
	c.q.Sort()
	return nil
}

func (c *Console) cmdOption(args []string) error {
	switch len(args) {
	case 0:
		fmt.Fprintf(c.out, "\tverbose\t%d\n", c.cfg.Verbose)
		fmt.Fprintf(c.out, "\tlength\t%d\n", c.cfg.Length)
		return nil
	case 2:
	default:
		return errors.Wrapf(ErrBadArgs, "expected name and value, got %d arguments", len(args))
	}

	val, err := strconv.Atoi(args[1])
	if err != nil || val < 0 {
		return errors.Wrapf(ErrBadArgs, "invalid value %q", args[1])
	}

	switch args[0] {
	case "verbose":
		c.cfg.Verbose = val
	case "length":
		c.cfg.Length = val
	default:
		return errors.Wrapf(ErrBadArgs, "unknown option %q", args[0])
	}
	return nil
}

func (c *Console) cmdHelp(args []string) error {
	if err := noArgs(args); err != nil {
		return err
	}

	names := make([]string, 0, len(c.cmds))
	for name := range c.cmds {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		cmd := c.cmds[name]
		fmt.Fprintf(c.out, "\t%s %s\t| %s\n", name, cmd.usage, cmd.help)
	}
	return nil
}
