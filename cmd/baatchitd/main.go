package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/matheus3301/baatchit/internal/daemon"
	"github.com/matheus3301/baatchit/internal/lock"
	"github.com/matheus3301/baatchit/internal/logging"
	"github.com/matheus3301/baatchit/internal/session"
	"go.uber.org/fx"
)

func main() {
	sessionFlag := flag.String("session", "", "session name (overrides config default)")
	flag.Parse()

	sessionName, err := session.Resolve(*sessionFlag)
	if err == nil {
		err = session.ValidateName(sessionName)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	app := fx.New(
		daemon.Module(daemon.Params{SessionName: sessionName}),
		fx.WithLogger(logging.FxLogger),
	)
	if err := app.Err(); err != nil {
		var held *lock.HeldError
		if errors.As(err, &held) {
			fmt.Fprintf(os.Stderr, "error: session %q is already served by PID %d\n", sessionName, held.PID)
		} else {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}

	app.Run()
}
