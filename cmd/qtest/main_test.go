package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"deedles.dev/strq/internal/console"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestCommand(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	var out bytes.Buffer
	cmd := command(logger)
	cmd.SetArgs([]string{"-v", "0", "--length", "3"})
	cmd.SetIn(strings.NewReader("new\nih a\nih b\nih c\nreverse\nrh a\nrh b\nrh c\nit long\nrh lo\n"))
	cmd.SetOut(&out)

	require.NoError(t, cmd.ExecuteContext(t.Context()))
	require.Equal(t,
		"Removed a from queue\nRemoved b from queue\nRemoved c from queue\nRemoved lo from queue\n",
		out.String(),
	)
	require.Equal(t, logrus.InfoLevel, logger.GetLevel())
}

func TestCommandFailure(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cmd := command(logger)
	cmd.SetArgs([]string{"--log-level", "debug"})
	cmd.SetIn(strings.NewReader("new\nrh missing\n"))
	cmd.SetOut(io.Discard)

	require.Error(t, cmd.ExecuteContext(t.Context()))
	require.Equal(t, logrus.DebugLevel, logger.GetLevel())
}

func TestCommandBadLevel(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cmd := command(logger)
	cmd.SetArgs([]string{"--log-level", "loud"})
	cmd.SetIn(strings.NewReader(""))
	require.Error(t, cmd.ExecuteContext(t.Context()))
}

func TestCommandBadLength(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cmd := command(logger)
	cmd.SetArgs([]string{"--length", "-1"})
	cmd.SetIn(strings.NewReader("new\nit a\nrh a\n"))
	cmd.SetOut(io.Discard)

	err := cmd.ExecuteContext(t.Context())
	require.ErrorIs(t, err, console.ErrBadArgs)
}
