package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/raphamorim/rio-sub001/internal/grid"
	"github.com/raphamorim/rio-sub001/internal/trace"
	"github.com/raphamorim/rio-sub001/internal/viewer"
	"github.com/raphamorim/rio-sub001/pkg/ansistrip"
	"github.com/raphamorim/rio-sub001/pkg/clipboard"
	"github.com/raphamorim/rio-sub001/pkg/vt"
)

func newStripCmd(config *AppConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "strip [file]",
		Short: "Print the input with all control sequences removed",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			cfg, err := LoadConfigFromFile(configPath(config))
			if err != nil {
				return err
			}

			data, err := readInput(config, args, resolveMaxBytes(cfg, config))
			if err != nil {
				return err
			}

			out := bufio.NewWriterSize(os.Stdout, chunkSize)
			defer out.Flush() // nolint: errcheck

			_, err = out.WriteString(ansistrip.Strip(string(data)))
			return err
		},
	}
}

func newSpansCmd(config *AppConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "spans [file]",
		Short: "Print the plain text and its styled spans as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			cfg, err := LoadConfigFromFile(configPath(config))
			if err != nil {
				return err
			}

			data, err := readInput(config, args, resolveMaxBytes(cfg, config))
			if err != nil {
				return err
			}

			result, err := ansistrip.Parse(string(data))
			if err != nil {
				return err
			}

			out := bufio.NewWriterSize(os.Stdout, chunkSize)
			defer out.Flush() // nolint: errcheck

			encoder := json.NewEncoder(out)
			encoder.SetIndent("", "  ")
			return encoder.Encode(result)
		},
	}
}

func newStatsCmd(config *AppConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "stats [file]",
		Short: "Print event and sequence counters for the input",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			cfg, err := LoadConfigFromFile(configPath(config))
			if err != nil {
				return err
			}

			in, err := openInput(config, args)
			if err != nil {
				return err
			}
			defer in.Close() // nolint: errcheck

			stats := trace.NewStats()
			recorder := trace.NewStreaming(stats.Add)
			parser := vt.NewParser()

			reader := limitInput(in, resolveMaxBytes(cfg, config))
			buf := make([]byte, chunkSize)
			for {
				n, err := reader.Read(buf)
				if n > 0 {
					parser.Advance(recorder, buf[:n])
				}
				if err == io.EOF {
					break
				}
				if err != nil {
					return fmt.Errorf("reading input: %w", err)
				}
			}

			out := bufio.NewWriterSize(os.Stdout, chunkSize)
			defer out.Flush() // nolint: errcheck

			_, err = stats.WriteTo(out)
			return err
		},
	}
}

func newViewCmd(config *AppConfig) *cobra.Command {
	viewCmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Replay the input into a screen model and display it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			cfg, err := LoadConfigFromFile(configPath(config))
			if err != nil {
				return err
			}

			data, err := readInput(config, args, resolveMaxBytes(cfg, config))
			if err != nil {
				return err
			}

			cols, rows := viewSize(cfg, config)
			g := grid.New(cols, rows)
			g.SetClipboard(clipboard.New())
			slog.Info("clipboard targets", "available", clipboard.Available())

			parser := vt.NewParser()
			parser.Advance(g, data)

			return viewer.New(g).Show()
		},
	}

	viewCmd.Flags().IntVar(&config.cols, "cols", 0, "Grid width (defaults to the terminal width)")
	viewCmd.Flags().IntVar(&config.rows, "rows", 0, "Grid height (defaults to the terminal height)")
	return viewCmd
}

// viewSize resolves the grid dimensions: flags, then config file, then
// the live terminal, then a classic 80x24.
func viewSize(cfg *Config, config *AppConfig) (cols, rows int) {
	cols, rows = config.cols, config.rows
	if cols <= 0 {
		cols = cfg.View.Cols
	}
	if rows <= 0 {
		rows = cfg.View.Rows
	}
	if cols > 0 && rows > 0 {
		return cols, rows
	}

	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		if cols <= 0 {
			cols = w
		}
		if rows <= 0 {
			rows = h
		}
	}
	if cols <= 0 {
		cols = 80
	}
	if rows <= 0 {
		rows = 24
	}
	return cols, rows
}
