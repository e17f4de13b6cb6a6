package scene

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pixil98/go-crawler/internal/game"
)

type decodeFunc func(io.Reader, RecordHandler) error

// decoderFor picks a decoder from the file extension. XML is the default.
func decoderFor(path string) decodeFunc {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return decodeYAML
	case ".json":
		return decodeJSON
	default:
		return decodeXML
	}
}

// Load builds a scene from the file at path. The returned scene is never
// nil: on error it holds whatever was built before the failure, which may
// be an empty world without a player.
func Load(ctx context.Context, path string, opts ...game.WorldOpt) (*Scene, error) {
	b := NewBuilder(ctx, opts...)

	file, err := os.Open(path)
	if err != nil {
		return b.Scene(), fmt.Errorf("opening scene: %w", err)
	}

	// Ignoring close error - file is read-only, error is not actionable
	defer func() { _ = file.Close() }()

	decode := decoderFor(path)
	if err := decode(file, b); err != nil {
		return b.Scene(), fmt.Errorf("loading scene %s: %w", filepath.Base(path), err)
	}

	s := b.Scene()
	slog.InfoContext(ctx, "scene loaded", "path", path, "rooms", s.World.RoomCount(), "entities", len(s.World.Entities()))
	return s, nil
}

// LoadReader builds a scene from an XML document.
func LoadReader(ctx context.Context, r io.Reader, opts ...game.WorldOpt) (*Scene, error) {
	b := NewBuilder(ctx, opts...)
	if err := decodeXML(r, b); err != nil {
		return b.Scene(), err
	}
	return b.Scene(), nil
}
