package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pixil98/go-crawler/internal/commands"
	"github.com/pixil98/go-crawler/internal/scene"
)

const (
	prompt   = "Enter a command: "
	farewell = "Goodbye!"
)

// Session runs the command loop for a single player against a scene.
type Session struct {
	id      string
	in      io.Reader
	out     io.Writer
	handler *commands.Handler
	scene   *scene.Scene
}

func NewSession(in io.Reader, out io.Writer, handler *commands.Handler, s *scene.Scene, opts ...SessionOpt) *Session {
	sess := &Session{
		id:      uuid.NewString(),
		in:      in,
		out:     out,
		handler: handler,
		scene:   s,
	}

	for _, opt := range opts {
		opt(sess)
	}

	return sess
}

// Id returns the id the session logs under.
func (s *Session) Id() string {
	return s.id
}

// Start plays the session to the end and logs a failure before returning it.
func (s *Session) Start(ctx context.Context) error {
	slog.InfoContext(ctx, "session started", "session", s.id, "has_player", s.scene.HasPlayer())

	if err := s.Play(ctx); err != nil {
		slog.ErrorContext(ctx, "session ended", "session", s.id, "error", err)
		return err
	}

	slog.InfoContext(ctx, "session ended", "session", s.id)
	return nil
}

// Play reads one command per whitespace-delimited token until the player
// quits or input runs out, then says goodbye. User errors are shown and
// the loop carries on. Any other error ends the session.
func (s *Session) Play(ctx context.Context) error {
	tokens := make(chan string)
	readErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)

	go func() {
		defer close(tokens)
		scanner := bufio.NewScanner(s.in)
		scanner.Split(bufio.ScanWords)
		for scanner.Scan() {
			select {
			case tokens <- scanner.Text():
			case <-done:
				return
			}
		}
		readErr <- scanner.Err()
	}()

	cmdCtx := &commands.CommandContext{
		World:  s.scene.World,
		Player: s.scene.Player,
	}

	for !cmdCtx.Quit {
		if err := s.write(prompt); err != nil {
			return err
		}

		var token string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case t, ok := <-tokens:
			if !ok {
				select {
				case err := <-readErr:
					if err != nil {
						return fmt.Errorf("reading input: %w", err)
					}
				default:
				}
				return s.writeLine("\n" + farewell)
			}
			token = t
		}

		slog.DebugContext(ctx, "executing command", "session", s.id, "command", token)

		err := s.handler.Exec(ctx, cmdCtx, token)
		if err != nil {
			var userErr *commands.UserError
			if !errors.As(err, &userErr) {
				return fmt.Errorf("command execution failed: %w", err)
			}
			if err := s.writeLine(userErr.Message); err != nil {
				return err
			}
		}
	}

	return s.writeLine(farewell)
}

func (s *Session) write(msg string) error {
	_, err := io.WriteString(s.out, msg)
	return err
}

func (s *Session) writeLine(msg string) error {
	return s.write(msg + "\n")
}
