package main

import (
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"editlens.dev/editlens/words"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var wordsFlags struct {
	output   string
	wordList string
	top      int
	watch    bool
}

var wordsCmd = &cobra.Command{
	Use:   "words [dir]",
	Short: "Count the words used in the identifiers and text of a source tree",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		if err := runWords(cmd.OutOrStdout(), dir); err != nil {
			return err
		}
		if !wordsFlags.watch {
			return nil
		}
		return watchWords(cmd.OutOrStdout(), dir)
	},
}

func init() {
	wordsCmd.Flags().StringVarP(&wordsFlags.output, "output", "o", "", "write frequencies to a CSV file")
	wordsCmd.Flags().StringVar(&wordsFlags.wordList, "word-list", "", "write the plain word list to a file")
	wordsCmd.Flags().IntVar(&wordsFlags.top, "top", 20, "number of words to print")
	wordsCmd.Flags().BoolVar(&wordsFlags.watch, "watch", false, "re-scan and re-export whenever the tree changes")
}

func runWords(out io.Writer, dir string) error {
	stats, err := words.Scan(dir)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "files processed: %d\n", stats.Files())
	fmt.Fprintf(out, "total words:     %d\n", stats.Total())
	fmt.Fprintf(out, "distinct words:  %d\n", stats.Distinct())
	for i, e := range stats.Top(wordsFlags.top) {
		fmt.Fprintf(out, "%3d. %-20s %6d (%6.2f%%)\n", i+1, e.Word, e.Count, stats.Percent(e.Count))
	}

	if wordsFlags.output != "" {
		if err := writeExport(wordsFlags.output, stats.WriteCSV); err != nil {
			return err
		}
	}
	if wordsFlags.wordList != "" {
		if err := writeExport(wordsFlags.wordList, stats.WriteWordList); err != nil {
			return err
		}
	}
	return nil
}

func writeExport(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %v", path, err)
	}
	defer f.Close()
	if err := write(f); err != nil {
		return fmt.Errorf("writing %s: %v", path, err)
	}
	return nil
}

// watchWords re-runs the scan whenever something below dir changes on
// disk, until interrupted with Ctrl-C.
func watchWords(out io.Writer, dir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %v", err)
	}
	defer watcher.Close()
	if err := watchDir(watcher, dir); err != nil {
		return fmt.Errorf("starting watch: %v", err)
	}
	log.Printf("Watching %s, press Ctrl-C to stop", dir)

	sigint := make(chan os.Signal, 1)
	signal.Notify(sigint, os.Interrupt)

	for {
		select {
		case event := <-watcher.Events:
			// Absolutely no need to react to chmod.
			if event.Has(fsnotify.Chmod) {
				continue
			}

			// Update watch list should directories be added or removed.
			switch stat, err := os.Stat(event.Name); {
			case os.IsNotExist(err) && (event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)):
				if slices.Contains(watcher.WatchList(), event.Name) {
					watcher.Remove(event.Name)
				}
			case err == nil && event.Has(fsnotify.Create) && stat.IsDir():
				if err := watchDir(watcher, event.Name); err != nil {
					return fmt.Errorf("adding watch: %v", err)
				}
			case err != nil && !os.IsNotExist(err):
				return fmt.Errorf("watching %s: %v", dir, err)
			}

			start := time.Now()
			if err := runWords(out, dir); err != nil {
				log.Printf("failed to update word counts: %v", err)
				continue
			}
			log.Printf("Word counts updated (%v)", time.Since(start))
		case err := <-watcher.Errors:
			return fmt.Errorf("watching: %v", err)
		case <-sigint:
			fmt.Print("\r") // remove Ctrl-C output characters
			log.Printf("Received Ctrl-C, shutting down")
			return nil
		}
	}
}

func watchDir(watcher *fsnotify.Watcher, dir string) error {
	walkfn := func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// Skip hidden directories.
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			if err := watcher.Add(path); err != nil {
				return err
			}
		}
		return nil
	}
	return filepath.WalkDir(dir, walkfn)
}
