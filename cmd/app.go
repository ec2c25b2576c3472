package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"usersapp/api/repl"
	"usersapp/config"
	"usersapp/pkg/logger"

	"go.uber.org/zap"
)

// App the wired application
type App struct {
	config  *config.Config
	loop    *repl.Loop
	session *repl.Session
}

// Run runs the REPL until quit or end of input.
func (a *App) Run(ctx context.Context) error {
	logger.Info("Starting application",
		zap.String("app", a.config.App.Name),
		zap.String("version", a.config.App.Version))

	if err := a.loop.Run(ctx); err != nil {
		logger.Error("REPL stopped", zap.Error(err))
		return err
	}

	logger.Info("Application stopped", zap.Stringer("state", a.session.State()))
	return nil
}

// State current REPL state (used for testing)
func (a *App) State() repl.State {
	return a.session.State()
}

// exitOnSignal ends the process on SIGINT/SIGTERM. A pending prompt is a
// blocking read that no context can interrupt, so exiting is the only way out.
func exitOnSignal() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		logger.Info("Shutting down", zap.String("signal", sig.String()))
		_ = logger.Sync()
		os.Exit(exitCode(sig))
	}()
}

// exitCode follows the shell convention of 128 plus the signal number.
func exitCode(sig os.Signal) int {
	if s, ok := sig.(syscall.Signal); ok {
		return 128 + int(s)
	}
	return 1
}
