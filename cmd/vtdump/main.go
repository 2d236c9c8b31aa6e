package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/adrg/xdg"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/raphamorim/rio-sub001/cmd"
	"github.com/raphamorim/rio-sub001/internal/logger"
	"github.com/raphamorim/rio-sub001/internal/trace"
	"github.com/raphamorim/rio-sub001/pkg/vt"
)

const (
	appName   = "vtdump"
	chunkSize = 4096
)

var (
	Version     = "0.1.0"
	CommitSha   = "unknown"
	FullVersion = Version + "-" + CommitSha
)

var appDir = filepath.Join(xdg.StateHome, appName)

func init() {
	// Initialize logging
	logLevel := os.Getenv("VTDUMP_LOG")
	if logLevel == "" {
		logLevel = "info"
	}

	logFilePath := filepath.Join(appDir, appName+".log")
	logger.InitLogger(logFilePath, logLevel)

	// Initialize crash reporting
	crashFilePath := filepath.Join(appDir, "crash")
	if f, err := os.Create(crashFilePath); err == nil {
		_ = debug.SetCrashOutput(f, debug.CrashOptions{})
	}
}

// AppConfig holds the flag values shared across commands.
type AppConfig struct {
	format      string
	counts      bool
	noColor     bool
	maxBytes    int64
	inputFile   string
	configPath  string
	showVersion bool

	cols int
	rows int
}

// openInput resolves the input source: a positional file argument wins
// over --input-file, and "-" or nothing means stdin.
func openInput(config *AppConfig, args []string) (io.ReadCloser, error) {
	path := config.inputFile
	if len(args) > 0 {
		path = args[0]
	}

	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input file: %w", err)
	}
	return file, nil
}

// limitInput applies the byte budget resolved from flags and config.
func limitInput(r io.Reader, maxBytes int64) io.Reader {
	if maxBytes > 0 {
		return io.LimitReader(r, maxBytes)
	}
	return r
}

// readInput slurps the whole (possibly limited) input for the commands
// that need it in one piece. The limit sits directly on the source so
// no read-ahead consumes stdin past the budget.
func readInput(config *AppConfig, args []string, maxBytes int64) ([]byte, error) {
	in, err := openInput(config, args)
	if err != nil {
		return nil, err
	}
	defer in.Close() // nolint: errcheck

	data, err := io.ReadAll(limitInput(in, maxBytes))
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return data, nil
}

// resolveColor decides whether output gets ANSI colors. The flag wins,
// then the config mode, then a terminal check.
func resolveColor(mode string, noColorFlag bool) bool {
	if noColorFlag {
		return false
	}
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
}

// runTrace streams events from the input to stdout in the selected
// format, optionally followed by aggregate counters.
func runTrace(config *AppConfig, args []string) error {
	if config.showVersion {
		fmt.Printf("%s version: %s\n", appName, FullVersion)
		return nil
	}

	cfg, err := LoadConfigFromFile(configPath(config))
	if err != nil {
		return err
	}

	format := cfg.Core.Format
	if config.format != "" {
		format = config.format
	}

	out := bufio.NewWriterSize(os.Stdout, chunkSize)
	defer out.Flush() // nolint: errcheck

	var write func(trace.Event) error
	switch format {
	case "text":
		formatter := trace.NewTextFormatter(out, resolveColor(cfg.Core.Color, config.noColor))
		write = formatter.Write
	case "json":
		formatter := trace.NewJSONFormatter(out)
		write = formatter.Write
	default:
		return fmt.Errorf("unknown format %q (want text or json)", format)
	}

	var stats *trace.Stats
	if config.counts {
		stats = trace.NewStats()
	}

	var writeErr error
	recorder := trace.NewStreaming(func(ev trace.Event) {
		if err := write(ev); err != nil && writeErr == nil {
			writeErr = err
		}
		if stats != nil {
			stats.Add(ev)
		}
	})

	in, err := openInput(config, args)
	if err != nil {
		return err
	}
	defer in.Close() // nolint: errcheck

	reader := limitInput(in, resolveMaxBytes(cfg, config))
	parser := vt.NewParser()
	buf := make([]byte, chunkSize)
	total := 0
	for {
		n, err := reader.Read(buf)
		if n > 0 {
			total += n
			parser.Advance(recorder, buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
	}
	if writeErr != nil {
		return fmt.Errorf("writing output: %w", writeErr)
	}

	slog.Info("trace finished", "bytes", total)

	if stats != nil {
		if _, err := fmt.Fprintln(out); err != nil {
			return err
		}
		_, err := stats.WriteTo(out)
		return err
	}
	return nil
}

func main() {
	config := &AppConfig{}

	rootCmd := &cobra.Command{
		Use:   appName + " [file]",
		Short: "Inspect the control sequences inside terminal output",
		Long: color.New(color.FgHiMagenta).Sprintf(
			"Inspect the control sequences inside terminal output. %s",
			color.New(color.FgBlue).Sprintf("(%s)", FullVersion),
		),
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runTrace(config, args)
		},
	}

	rootCmd.Flags().StringVarP(&config.format, "format", "f", "", "Event output format: text or json")
	rootCmd.Flags().BoolVar(&config.counts, "counts", false, "Append sequence counters after the event stream")
	rootCmd.Flags().BoolVarP(&config.showVersion, "version", "v", false, "Print version and exit")
	rootCmd.PersistentFlags().BoolVar(&config.noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().Int64Var(&config.maxBytes, "max-bytes", 0, "Stop after this many input bytes (0 means no limit)")
	rootCmd.PersistentFlags().StringVarP(&config.inputFile, "input-file", "i", "", "Read input from file instead of stdin")
	rootCmd.PersistentFlags().StringVar(&config.configPath, "config", "", "Path to config file")

	rootCmd.AddCommand(
		newStripCmd(config),
		newSpansCmd(config),
		newStatsCmd(config),
		newViewCmd(config),
	)

	rootCmd.SetHelpTemplate(cmd.HelpTemplate)
	rootCmd.SetUsageFunc(func(c *cobra.Command) error {
		return cmd.ColorUsageFunc(c.OutOrStderr(), c)
	})

	if err := rootCmd.Execute(); err != nil {
		slog.Error("Error executing command", "error", err)
		os.Exit(1)
	}
}
