package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/brdgme/markup/internal/cli"
	mkerrors "github.com/brdgme/markup/pkg/errors"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // Standard shell convention for SIGINT
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

func run(ctx context.Context) error {
	c := cli.New(os.Stderr, cli.LogInfo)
	return c.RootCommand().ExecuteContext(ctx)
}

// exitCode is 2 for bad input and 1 for everything else.
func exitCode(err error) int {
	switch {
	case mkerrors.IsSyntax(err),
		mkerrors.Is(err, mkerrors.ErrCodeInvalidTemplate),
		mkerrors.Is(err, mkerrors.ErrCodeInvalidPlayers),
		mkerrors.Is(err, mkerrors.ErrCodeInvalidFormat),
		mkerrors.Is(err, mkerrors.ErrCodeInvalidConfig):
		return 2
	}
	return 1
}
