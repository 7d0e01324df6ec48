// Command lynch-catalog resolves the playlist sections of a catalog and writes
// the expanded dataset as YAML, so the app can start from a pre-resolved file.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/ytget/lynch-universe/internal/catalog"
	"github.com/ytget/lynch-universe/internal/logging"
	"github.com/ytget/lynch-universe/internal/platform"
)

func main() {
	var (
		in      = flag.String("in", "", "Catalog YAML to expand (default: built-in catalog)")
		out     = flag.String("out", "", "Output file (default: stdout)")
		timeout = flag.Duration("timeout", platform.DefaultParseTimeout, "Timeout per playlist")
		verbose = flag.Bool("verbose", false, "Verbose logging")
	)
	flag.Parse()

	// Configure logging; stdout may carry the catalog
	level := "info"
	if *verbose {
		level = "debug"
	}
	logging.Logger = logging.New(os.Stderr, level, "text")
	slog.SetDefault(logging.Logger)

	cat, err := loadCatalog(*in)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	resolver := platform.NewPlaylistResolver()
	resolver.SetTimeout(*timeout)

	start := time.Now()
	added := cat.Expand(context.Background(), resolver)
	slog.Info("Expansion complete", "added", added, "duration", time.Since(start))

	data, err := cat.Marshal()
	if err != nil {
		log.Fatalf("Failed to encode catalog: %v", err)
	}

	if *out == "" {
		if _, err := os.Stdout.Write(data); err != nil {
			log.Fatalf("Failed to write catalog: %v", err)
		}
		return
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatalf("Failed to write catalog: %v", err)
	}
	slog.Info("Catalog written", "path", *out)
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.LoadDefault()
	}
	return catalog.Load(path)
}
