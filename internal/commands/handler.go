package commands

import (
	"context"
	"fmt"
	"maps"
	"strings"

	"github.com/pixil98/go-crawler/internal/game"
)

// CommandContext carries the state a command runs against.
type CommandContext struct {
	World  *game.World
	Player game.EntityId

	// Config is the invoked command's config.
	Config map[string]string

	// Quit is set by the quit command.
	Quit bool
}

// Actor returns the player entity, or nil when the world has none.
func (c *CommandContext) Actor() *game.Entity {
	if c.World == nil {
		return nil
	}
	return c.World.Entity(c.Player)
}

// Room returns the room the player stands in, or nil.
func (c *CommandContext) Room() *game.Room {
	a := c.Actor()
	if a == nil {
		return nil
	}
	return c.World.Room(a.Room)
}

// CommandFunc is the signature for compiled command functions.
type CommandFunc func(ctx context.Context, cmdCtx *CommandContext) error

// HandlerFactory creates CommandFuncs from command configurations.
type HandlerFactory interface {
	// ValidateConfig validates that the config contains required fields.
	ValidateConfig(config map[string]string) error
	// Create creates a CommandFunc.
	Create() (CommandFunc, error)
}

// Publisher delivers output to the player.
type Publisher interface {
	Publish(data []byte) error
}

type compiledCommand struct {
	cmd     *Command
	cmdFunc CommandFunc
}

type Handler struct {
	commands  map[string]*Command
	factories map[string]HandlerFactory
	compiled  map[string]*compiledCommand
}

// NewHandler creates a handler with the built-in factories registered and
// every command compiled.
func NewHandler(cmds map[string]*Command, pub Publisher) (*Handler, error) {
	h := &Handler{
		commands:  cmds,
		factories: make(map[string]HandlerFactory),
		compiled:  make(map[string]*compiledCommand),
	}

	builtins := map[string]HandlerFactory{
		"move":        NewMoveHandlerFactory(pub),
		"temperature": NewTemperatureHandlerFactory(pub),
		"look":        NewLookHandlerFactory(pub),
		"help":        NewHelpHandlerFactory(cmds, pub),
		"quit":        NewQuitHandlerFactory(),
	}
	for name, f := range builtins {
		if err := h.RegisterFactory(name, f); err != nil {
			return nil, err
		}
	}

	if err := h.CompileAll(); err != nil {
		return nil, err
	}
	return h, nil
}

// RegisterFactory registers a handler factory by name.
// The name must match the Handler field of a Command.
func (h *Handler) RegisterFactory(name string, factory HandlerFactory) error {
	if name == "" {
		return fmt.Errorf("handler name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("handler factory cannot be nil")
	}
	if _, exists := h.factories[name]; exists {
		return fmt.Errorf("handler factory %q already registered", name)
	}
	h.factories[name] = factory
	return nil
}

// CompileAll compiles every command.
// Call this after all handler factories have been registered.
func (h *Handler) CompileAll() error {
	for id, cmd := range h.commands {
		if err := h.compile(id, cmd); err != nil {
			return fmt.Errorf("compiling command %q: %w", id, err)
		}
	}
	return nil
}

func (h *Handler) compile(id string, cmd *Command) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	factory, ok := h.factories[cmd.Handler]
	if !ok {
		return fmt.Errorf("unknown handler %q", cmd.Handler)
	}

	if err := factory.ValidateConfig(cmd.Config); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}

	cmdFunc, err := factory.Create()
	if err != nil {
		return fmt.Errorf("creating handler: %w", err)
	}

	h.compiled[id] = &compiledCommand{
		cmd:     cmd,
		cmdFunc: cmdFunc,
	}
	return nil
}

// Exec runs the named command. Unknown names give a UserError.
func (h *Handler) Exec(ctx context.Context, cmdCtx *CommandContext, cmdName string) error {
	compiled, ok := h.compiled[strings.ToLower(cmdName)]
	if !ok {
		return errUnrecognized
	}

	cmdCtx.Config = maps.Clone(compiled.cmd.Config)
	return compiled.cmdFunc(ctx, cmdCtx)
}
