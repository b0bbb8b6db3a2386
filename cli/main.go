package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/aledsdavies/rescode/cli/internal/config"
	"github.com/aledsdavies/rescode/runtime/parser"
)

// version is set at build time with -ldflags "-X main.version=v1.2.3".
var version = "v0.1.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	a := &app{cfg: cfg, in: os.Stdin, out: os.Stdout, errOut: os.Stderr}
	rootCmd := newRootCmd(a)

	if err := rootCmd.Execute(); err != nil {
		FormatError(os.Stderr, err, ShouldUseColor(a.noColor, cfg, os.Stderr))
		os.Exit(1)
	}
}

// app carries the settings and streams shared by every command.
type app struct {
	cfg    config.Config
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	// persistent flags
	noColor bool
	debug   bool
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "rescode",
		Short:         "Resistor color code encoder, decoder and trainer",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&a.debug, "debug", a.cfg.Debug, "Enable debug output")

	rootCmd.SetIn(a.in)
	rootCmd.SetOut(a.out)
	rootCmd.SetErr(a.errOut)

	rootCmd.AddCommand(
		newEncodeCmd(a),
		newDecodeCmd(a),
		newQuizCmd(a),
		newReviewCmd(a),
		newChartCmd(a),
		newVerifyCmd(a),
	)
	return rootCmd
}

func (a *app) useColor() bool {
	return ShouldUseColor(a.noColor, a.cfg, a.out)
}

func (a *app) language() language.Tag {
	return a.cfg.Language()
}

// logger writes debug output to stderr without time or level attributes.
func (a *app) logger() *slog.Logger {
	logLevel := slog.LevelInfo
	if a.debug {
		logLevel = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{
		Level: logLevel,
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			if attr.Key == slog.TimeKey || attr.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return attr
		},
	}))
}

// parserOpts wires the CLI logger into the value parser and enables phase
// tracing under --debug.
func (a *app) parserOpts(logger *slog.Logger) []parser.ParserOpt {
	opts := []parser.ParserOpt{parser.WithLogger(logger)}
	if a.debug {
		opts = append(opts, parser.WithDebugPaths())
	}
	return opts
}
