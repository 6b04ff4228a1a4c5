package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"caret"
	"caret/internal/export"
)

var renderCmd = &cobra.Command{
	Use:   "render [flags] <report.toml>...",
	Short: "Render diagnostic reports described in TOML files",
	Long:  `Render one or more TOML report descriptions to text, JSON or msgpack. Multiple reports render in parallel; output keeps the argument order`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().String("format", "text", "output format (text|json|msgpack)")
	renderCmd.Flags().Int("jobs", 0, "max parallel renders (0=auto)")
	renderCmd.Flags().Bool("stderr", false, "write output to stderr instead of stdout")
}

func runRender(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	toStderr, err := cmd.Flags().GetBool("stderr")
	if err != nil {
		return fmt.Errorf("failed to get stderr flag: %w", err)
	}
	colorMode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	verbose, err := cmd.Root().PersistentFlags().GetBool("verbose")
	if err != nil {
		return fmt.Errorf("failed to get verbose flag: %w", err)
	}

	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})

	sink := os.Stdout
	if toStderr {
		sink = os.Stderr
	}
	useColor := false
	switch colorMode {
	case "on":
		useColor = true
	case "off":
	case "auto":
		useColor = format == "text" && isTerminal(sink)
	default:
		return fmt.Errorf("unknown color mode %q", colorMode)
	}

	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	results := make([]string, len(args))
	g, _ := errgroup.WithContext(cmd.Context())
	g.SetLimit(jobs)
	for i, path := range args {
		g.Go(func() error {
			logger.Debug("rendering report", "path", path, "format", format)
			rep, err := loadReport(path, useColor)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			out, err := encode(rep, format)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, r := range results {
		if _, err := io.WriteString(sink, r); err != nil {
			return err
		}
	}
	return nil
}

func encode(rep *caret.Report, format string) (string, error) {
	switch format {
	case "text":
		return rep.Render()
	case "json":
		doc, err := rep.Snapshot()
		if err != nil {
			return "", err
		}
		var buf bytes.Buffer
		if err := export.JSON(&buf, doc); err != nil {
			return "", err
		}
		return buf.String(), nil
	case "msgpack":
		doc, err := rep.Snapshot()
		if err != nil {
			return "", err
		}
		var buf bytes.Buffer
		if err := export.Msgpack(&buf, doc); err != nil {
			return "", err
		}
		return buf.String(), nil
	default:
		return "", fmt.Errorf("unknown format %q", format)
	}
}
