package render

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	g "maragu.dev/gomponents"

	"github.com/chiranperera/inner-most/pkg/logger"
)

// Export writes the site as static files into dir:
//
//	index.html
//	profiles/index.html
//	static/tokens.css
//	robots.txt
//	manifest.json
//
// Exported profile cards are not clickable since there is no server to count
// activations.
func Export(ctx context.Context, dir string, pages *Pages, log *slog.Logger) ([]string, error) {
	log = log.With(logger.Scope("export"))

	manifest, err := pages.Manifest()
	if err != nil {
		return nil, err
	}

	files := []struct {
		path string
		node g.Node
		data []byte
	}{
		{path: "index.html", node: pages.Landing(nil, nil)},
		{path: filepath.Join("profiles", "index.html"), node: pages.Profiles(nil, nil)},
		{path: filepath.Join("static", "tokens.css"), data: pages.TokensCSS()},
		{path: "robots.txt", data: pages.RobotsTxt()},
		{path: "manifest.json", data: manifest},
	}

	written := make([]string, 0, len(files))
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return written, fmt.Errorf("export interrupted: %w", err)
		}

		data := f.data
		if f.node != nil {
			var buf bytes.Buffer
			if err := f.node.Render(&buf); err != nil {
				return written, fmt.Errorf("render %s: %w", f.path, err)
			}
			data = buf.Bytes()
		}

		target := filepath.Join(dir, f.path)
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return written, fmt.Errorf("create directory for %s: %w", f.path, err)
		}
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", f.path, err)
		}

		log.Debug("file written", slog.String("path", target), slog.Int("bytes", len(data)))
		written = append(written, target)
	}

	log.Info("site exported", slog.String("dir", dir), slog.Int("files", len(written)))
	return written, nil
}
