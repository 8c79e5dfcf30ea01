package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/Raunakgup/auto-metadata-gen/internal/core/ports/driving"
	"github.com/Raunakgup/auto-metadata-gen/internal/logger"
)

var watchCmd = &cobra.Command{
	Use:   "watch [directory]",
	Short: "Watch a directory and process new documents",
	Long: `Watches a directory for new or rewritten PDF, DOCX, and TXT
files and generates a metadata report for each. Runs until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

// watchedExtensions are the file types processed by watch mode.
var watchedExtensions = map[string]struct{}{
	".txt":  {},
	".docx": {},
	".pdf":  {},
}

func runWatch(cmd *cobra.Command, args []string) error {
	if metadataService == nil {
		return errors.New("metadata service not configured")
	}

	dir := args[0]
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("cannot watch %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", dir)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd.Printf("Watching %s (ctrl-c to stop)...\n", dir)

	for {
		select {
		case <-ctx.Done():
			cmd.Println("Stopped.")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if !isWatchedFile(event.Name) {
				continue
			}
			processWatched(ctx, cmd, event.Name)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		}
	}
}

// isWatchedFile filters out directories, hidden files, and unsupported
// extensions.
func isWatchedFile(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") {
		return false
	}
	if info, err := os.Stat(path); err != nil || info.IsDir() {
		return false
	}
	_, ok := watchedExtensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

// processWatched generates a report for one file. Failures are
// reported and the watch continues.
func processWatched(ctx context.Context, cmd *cobra.Command, path string) {
	cmd.Printf("Processing %s...\n", path)

	meta, err := metadataService.Generate(ctx, path, driving.GenerateOptions{})
	if err != nil {
		cmd.Printf("  failed: %v\n", err)
		return
	}

	cmd.Printf("  title:    %s\n", meta.Title)
	cmd.Printf("  language: %s\n", meta.Language)
	cmd.Printf("  words:    %d (%.2f min)\n", meta.WordCount, meta.ReadingTimeMin)
	if len(meta.Keywords) > 0 {
		cmd.Printf("  keywords: %s\n", strings.Join(meta.Keywords, ", "))
	}
}
