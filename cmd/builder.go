package cmd

import (
	"io"
	"os"

	"usersapp/api/repl"
	apiuser "usersapp/api/user"
	userapp "usersapp/application/user"
	"usersapp/config"
	"usersapp/domain/shared"
	"usersapp/infrastructure/persistence/memory"
	"usersapp/pkg/logger"
	"usersapp/pkg/message"
	"usersapp/pkg/prompt"

	"go.uber.org/zap"
)

// AppBuilder builds an App with customizable components
type AppBuilder struct {
	cfg         *config.Config
	in          io.Reader
	out         io.Writer
	controllers []repl.ActionRegister
}

// NewBuilder creates a new AppBuilder reading stdin and writing stdout
func NewBuilder(cfg *config.Config) *AppBuilder {
	return &AppBuilder{
		cfg: cfg,
		in:  os.Stdin,
		out: os.Stdout,
	}
}

// WithInput replaces the reader answers come from
func (b *AppBuilder) WithInput(r io.Reader) *AppBuilder {
	b.in = r
	return b
}

// WithOutput replaces the writer prompts and messages go to
func (b *AppBuilder) WithOutput(w io.Writer) *AppBuilder {
	b.out = w
	return b
}

// WithController serves actions from c. Once any controller is given, the
// default user controller is not registered.
func (b *AppBuilder) WithController(c repl.ActionRegister) *AppBuilder {
	b.controllers = append(b.controllers, c)
	return b
}

// Build creates the App instance. The store, prompter and console are
// created once here and shared by every action for the life of the App.
func (b *AppBuilder) Build() (*App, error) {
	logger.Debug("Building application",
		zap.String("app", b.cfg.App.Name),
		zap.String("version", b.cfg.App.Version),
		zap.String("env", b.cfg.App.Env))

	console := message.NewConsole(b.out, message.WithColor(b.cfg.UI.Color))
	prompter := prompt.NewLinePrompter(b.in, b.out)
	session := repl.NewSession()

	bus := shared.NewEventBus()
	if err := userapp.SubscribeLogging(bus, userapp.NewLoggingEventHandler()); err != nil {
		return nil, err
	}

	repo := memory.NewUserRepository()
	store := userapp.NewStore(repo, console, prompter, bus)

	controllers := b.controllers
	if len(controllers) == 0 {
		controllers = []repl.ActionRegister{apiuser.NewController(store, prompter, session)}
	}
	router := repl.NewRouter(controllers...)

	loop := repl.NewLoop(router, prompter, console, session,
		repl.WithTitle(b.cfg.App.Name),
		repl.WithPrompt(b.cfg.UI.Prompt),
	)

	return &App{
		config:  b.cfg,
		loop:    loop,
		session: session,
	}, nil
}
