package commands

import (
	"context"
)

// QuitHandlerFactory creates handlers that end the session.
type QuitHandlerFactory struct{}

func NewQuitHandlerFactory() *QuitHandlerFactory {
	return &QuitHandlerFactory{}
}

func (f *QuitHandlerFactory) ValidateConfig(config map[string]string) error {
	return nil
}

func (f *QuitHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		cmdCtx.Quit = true
		return nil
	}, nil
}
