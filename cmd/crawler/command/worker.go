package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/pixil98/go-crawler/internal/commands"
	"github.com/pixil98/go-crawler/internal/game"
	"github.com/pixil98/go-crawler/internal/scene"
	"github.com/pixil98/go-crawler/internal/session"
	"github.com/pixil98/go-service/service"
)

const (
	msgSceneMissing    = "Error! File not found. Please make sure the file is in the correct location and try again."
	msgSceneUnreadable = "Error! Unable to read the world file: %v"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	return buildWorkers(context.Background(), cfg, os.Stdin, os.Stdout)
}

func buildWorkers(ctx context.Context, cfg *Config, in io.Reader, out io.Writer) (service.WorkerList, error) {
	sess, err := buildSession(ctx, cfg, in, out)
	if err != nil {
		return nil, err
	}

	return service.WorkerList{
		"session": sess,
	}, nil
}

// buildSession loads the scene and wires a session to in and out. A scene
// that fails to load is reported to the player and play goes on with
// whatever was built.
func buildSession(ctx context.Context, cfg *Config, in io.Reader, out io.Writer) (*session.Session, error) {
	id := uuid.NewString()

	var opts []game.WorldOpt
	if cfg.Seed != 0 {
		opts = append(opts, game.WithSeed(cfg.Seed))
	}

	s, err := scene.Load(ctx, cfg.Scene(), opts...)
	if err != nil {
		slog.WarnContext(ctx, "loading scene", "session", id, "path", cfg.Scene(), "error", err)
		if err := reportLoadError(out, err); err != nil {
			return nil, err
		}
	}

	h, err := commands.NewHandler(commands.DefaultCommands(), session.NewWriterPublisher(out))
	if err != nil {
		return nil, fmt.Errorf("creating command handler: %w", err)
	}

	return session.NewSession(in, out, h, s, session.WithId(id)), nil
}

func reportLoadError(out io.Writer, err error) error {
	msg := fmt.Sprintf(msgSceneUnreadable, err)
	if errors.Is(err, fs.ErrNotExist) {
		msg = msgSceneMissing
	}
	_, werr := fmt.Fprintln(out, msg)
	return werr
}

// RunDefault plays a session with the zero Config, for runs started
// without a config file.
func RunDefault(ctx context.Context, in io.Reader, out io.Writer) error {
	workers, err := buildWorkers(ctx, &Config{}, in, out)
	if err != nil {
		return err
	}

	for name, w := range workers {
		if err := w.Start(ctx); err != nil {
			return fmt.Errorf("running %s: %w", name, err)
		}
	}
	return nil
}
