package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"go.uber.org/zap"

	"github.com/LucidFrost/asteroids-sub000/config"
	"github.com/LucidFrost/asteroids-sub000/scores"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func usage(fs *flag.FlagSet) {
	fmt.Fprintln(fs.Output(), "Usage: scores [flags] <command>")
	fmt.Fprintln(fs.Output(), "")
	fmt.Fprintln(fs.Output(), "Commands:")
	fmt.Fprintln(fs.Output(), "  list [n]        show the best n scores (default 10, 0 for all)")
	fmt.Fprintln(fs.Output(), "  append <score>  record a score with the current time")
	fmt.Fprintln(fs.Output(), "  clear           remove every score")
	fmt.Fprintln(fs.Output(), "")
	fs.PrintDefaults()
}

func run(args []string) error {
	fs := flag.NewFlagSet("scores", flag.ContinueOnError)
	cfgPath := fs.String("config", "config/asteroids.toml", "settings file")
	file := fs.String("file", "", "score file (overrides the config)")
	fs.Usage = func() { usage(fs) }
	if err := fs.Parse(args); err != nil {
		return err
	}

	settings, err := config.Load(*cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log, err := config.NewLogger(settings.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	path := settings.Scores.Path
	if *file != "" {
		path = *file
	}
	store := scores.NewStore(path)

	if fs.NArg() == 0 {
		usage(fs)
		return fmt.Errorf("missing command")
	}
	switch cmd := fs.Arg(0); cmd {
	case "list":
		n := 10
		if fs.NArg() > 1 {
			if n, err = strconv.Atoi(fs.Arg(1)); err != nil {
				return fmt.Errorf("list count %q: %w", fs.Arg(1), err)
			}
		}
		if n == 0 {
			n = -1
		}
		return list(store, n)
	case "append":
		if fs.NArg() < 2 {
			return fmt.Errorf("append: missing score")
		}
		score, err := strconv.Atoi(fs.Arg(1))
		if err != nil {
			return fmt.Errorf("append score %q: %w", fs.Arg(1), err)
		}
		if err := store.Append(score, time.Now()); err != nil {
			return err
		}
		log.Info("score appended", zap.String("file", path), zap.Int("score", score))
		return nil
	case "clear":
		if err := store.Clear(); err != nil {
			return err
		}
		log.Info("scores cleared", zap.String("file", path))
		return nil
	default:
		usage(fs)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func list(store *scores.Store, n int) error {
	entries, err := store.ReadAll()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("no scores yet")
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "#\tSCORE\tDATE\t")
	for i, e := range scores.Top(entries, n) {
		fmt.Fprintf(w, "%d\t%d\t%s\t\n", i+1, e.Score, e.Time.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}
