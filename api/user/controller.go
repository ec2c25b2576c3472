package user

import (
	"context"

	"usersapp/api/repl"
	userapp "usersapp/application/user"
	"usersapp/pkg/prompt"
)

// Controller User controller: collects the fields each action needs and
// hands them to the store.
type Controller struct {
	store    *userapp.Store
	prompter prompt.Prompter
	session  *repl.Session
}

// NewController Create user controller
func NewController(store *userapp.Store, prompter prompt.Prompter, session *repl.Session) *Controller {
	return &Controller{
		store:    store,
		prompter: prompter,
		session:  session,
	}
}

// RegisterActions Register user actions
func (c *Controller) RegisterActions(r *repl.Router) {
	r.Handle(repl.ActionList, c.List)
	r.Handle(repl.ActionAdd, c.Add)
	r.Handle(repl.ActionRemove, c.Remove)
	r.Handle(repl.ActionEdit, c.Edit)
}

// List Show all users
func (c *Controller) List(ctx context.Context) error {
	return c.store.ShowAll(ctx)
}

// Add Ask for name and age, then add the user
func (c *Controller) Add(ctx context.Context) error {
	c.session.Transition(repl.StateCollectingAddFields)
	answers, err := c.prompter.Prompt(ctx,
		prompt.Field{Name: "name", Type: prompt.Input, Message: "Enter name"},
		prompt.Field{Name: "age", Type: prompt.Number, Message: "Enter age"},
	)
	if err != nil {
		return err
	}

	return c.store.Add(ctx, userapp.Candidate{Name: answers["name"], Age: answers["age"]})
}

// Remove Ask for a name and remove the first user with it
func (c *Controller) Remove(ctx context.Context) error {
	c.session.Transition(repl.StateCollectingRemoveName)
	answers, err := c.prompter.Prompt(ctx,
		prompt.Field{Name: "name", Type: prompt.Input, Message: "Enter name"},
	)
	if err != nil {
		return err
	}

	return c.store.Remove(ctx, answers.String("name"))
}

// Edit Ask which user to edit; the store asks for the new values
func (c *Controller) Edit(ctx context.Context) error {
	c.session.Transition(repl.StateCollectingEditName)
	answers, err := c.prompter.Prompt(ctx,
		prompt.Field{Name: "name", Type: prompt.Input, Message: "Enter user name to edit:"},
	)
	if err != nil {
		return err
	}

	c.session.Transition(repl.StateCollectingEditFields)
	return c.store.Edit(ctx, answers.String("name"))
}

var _ repl.ActionRegister = (*Controller)(nil)
