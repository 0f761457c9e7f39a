package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"

	"github.com/vktec/leafseed"
	"github.com/vktec/leafseed/cpu"
	"github.com/vktec/leafseed/internal/config"
)

const delimiter = "----------------"

func formatCSV(results []leafseed.Result) error {
	if _, err := fmt.Println("Seed,Matched Trees"); err != nil {
		return err
	}
	for _, result := range results {
		if _, err := fmt.Print(result.Seed, ",", result.Matched, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func formatJSON(results []leafseed.Result) error {
	if results == nil {
		results = []leafseed.Result{}
	}
	return json.NewEncoder(os.Stdout).Encode(results)
}

func printSeed(result leafseed.Result) {
	fmt.Println(delimiter)
	fmt.Println("Seed:", result.Seed)
	fmt.Println(delimiter)
}

func printProgress(p leafseed.Progress) {
	fmt.Printf("%v%% at second %d\n", float32(p.Percent), int64(p.Elapsed.Seconds()))
}

type int32Value struct{ p *int32 }

func (v int32Value) String() string {
	if v.p == nil {
		return "0"
	}
	return fmt.Sprint(*v.p)
}

func (v int32Value) Set(s string) error {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return err
	}
	*v.p = int32(n)
	return nil
}

func main() {
	cfg := config.DefaultConfig()

	configPath := flag.String("config", "", "JSON config `file`")
	verbose := flag.Bool("v", false, "Log debug output")
	show := flag.Bool("show", false, "Print the signature table and exit")
	flag.IntVar(&cfg.Workers, "j", cfg.Workers, "Number of concurrent workers (0 = all CPUs)")
	flag.Var(int32Value{&cfg.From}, "from", "First `seed` to check")
	flag.Var(int32Value{&cfg.To}, "to", "Last `seed` to check")
	flag.Var(int32Value{&cfg.ChunkX}, "chunk-x", "Block X of the chunk's minimum corner")
	flag.Var(int32Value{&cfg.ChunkZ}, "chunk-z", "Block Z of the chunk's minimum corner")
	flag.IntVar(&cfg.Step, "step", cfg.Step, "Decoration step of the tree feature")
	flag.IntVar(&cfg.Index, "index", cfg.Index, "Index of the tree feature within its step")
	flag.IntVar(&cfg.MaxAttempts, "attempts", cfg.MaxAttempts, "Placement attempts checked per seed")
	flag.IntVar(&cfg.Remaining, "remaining", cfg.Remaining, "Report seeds once this many trees are left unmatched")
	flag.Int64Var(&cfg.ProgressInterval, "progress", cfg.ProgressInterval, "Seeds between progress lines")
	flag.StringVar(&cfg.Table, "table", cfg.Table, "Signature table `file` (default: built-in)")
	flag.StringVar(&cfg.TableURL, "table-url", cfg.TableURL, "Fetch the signature table from a go-getter `url`")
	flag.StringVar(&cfg.Format, "f", cfg.Format, "Output `format` (valid options: csv, json, human)")

	flag.CommandLine.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [-j count] [-f format] [-from seed] [-to seed] [-table file]\n\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
		fmt.Fprintln(os.Stderr)
	}
	flag.Parse()

	if flag.NArg() > 0 {
		flag.CommandLine.Usage()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *configPath != "" {
		fromFile, err := config.Load(*configPath)
		if err != nil {
			log.Error("load config", "error", err)
			os.Exit(1)
		}
		explicit := make(map[string]bool)
		flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
		config.Merge(cfg, fromFile, explicit)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	table, err := loadTable(ctx, cfg)
	if err != nil {
		log.Error("load signature table", "error", err)
		os.Exit(1)
	}

	if *show && cfg.Format == "human" {
		for _, sig := range table {
			sig.Print()
			fmt.Println()
		}
		return
	}
	if *show {
		if err := leafseed.FormatTable(os.Stdout, table); err != nil {
			log.Error("print table", "error", err)
			os.Exit(1)
		}
		return
	}

	searcher, err := cpu.NewSearcher(cfg.Workers, table, cfg.Params(), log)
	if err != nil {
		log.Error("create searcher", "error", err)
		os.Exit(1)
	}
	searcher.ProgressInterval = cfg.ProgressInterval
	if cfg.Format == "human" {
		searcher.Progress = printProgress
		searcher.Found = printSeed
	}

	log.Info("searching",
		"from", cfg.From,
		"to", cfg.To,
		"trees", len(table),
		"chunkX", cfg.ChunkX,
		"chunkZ", cfg.ChunkZ,
		"offset", cpu.DecoratorOffset(cfg.Index, cfg.Step),
	)
	results, searchErr := searcher.Search(ctx, cfg.From, cfg.To)
	if searchErr != nil && !errors.Is(searchErr, context.Canceled) {
		log.Error("search", "error", searchErr)
		os.Exit(1)
	}

	switch cfg.Format {
	case "csv":
		err = formatCSV(results)
	case "json":
		err = formatJSON(results)
	}
	if err != nil {
		log.Error("write results", "error", err)
		os.Exit(1)
	}
	if searchErr != nil {
		log.Info("search interrupted, results are partial", "results", len(results))
		os.Exit(1)
	}
}

func loadTable(ctx context.Context, cfg *config.Config) ([]leafseed.Signature, error) {
	switch {
	case cfg.TableURL != "":
		return leafseed.FetchTable(ctx, cfg.TableURL)
	case cfg.Table != "":
		return leafseed.LoadTable(cfg.Table)
	default:
		return leafseed.DefaultTable, nil
	}
}
