package main

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/pixil98/go-crawler/cmd/crawler/command"
	"github.com/pixil98/go-service/service"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	ctx := context.Background()

	// go-service requires a config file; without one play with the defaults.
	if !hasConfigFlag(os.Args[1:]) {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelWarn,
		})))

		if err := command.RunDefault(ctx, os.Stdin, os.Stdout); err != nil {
			logger.WithError(err).Fatal("running application")
		}
		return
	}

	app, err := service.NewApp(&command.Config{}, command.BuildWorkers)
	if err != nil {
		logger.WithError(err).Fatal("creating application")
	}

	err = app.Run(ctx)
	if err != nil {
		logger.WithError(err).Fatal("running application")
	}
}

func hasConfigFlag(args []string) bool {
	for _, a := range args {
		if !strings.HasPrefix(a, "-") {
			continue
		}
		name := strings.TrimLeft(a, "-")
		if name == "config" || strings.HasPrefix(name, "config=") {
			return true
		}
	}
	return false
}
