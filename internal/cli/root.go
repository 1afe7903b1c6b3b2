// Package cli implements the mdtable command.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/bjaus/mdtable"
	"github.com/bjaus/mdtable/internal/config"
	"github.com/bjaus/mdtable/internal/logger"
)

// ErrWarnings is returned in strict mode when validation produced warnings.
var ErrWarnings = errors.New("table has validation warnings")

type flags struct {
	configPath string
	input      string
	delimiter  string
	kind       string
	width      string
	noCaption  bool
	strict     bool
	output     string
	preview    bool
	logLevel   string
}

// NewRootCmd builds the mdtable command tree.
func NewRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "mdtable [file]",
		Short: "Render tabular data as a GitHub-Flavored Markdown table",
		Long: `mdtable reads a table from a file or standard input and writes it as a
GitHub-Flavored Markdown pipe table with padded, aligned columns.

The first row is the header. If the last row has text in its first cell
only, that text is also written as a caption line directly below the table.`,
		Example: `  mdtable people.csv
  cat data.json | mdtable -i json
  mdtable -d ';' -o table.md export.csv`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return run(cmd, f, path)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&f.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/mdtable/config.yaml)")
	fs.StringVarP(&f.input, "input", "i", "", "input format: csv, tsv, json, jsonl, yaml (default from file extension, else csv)")
	fs.StringVarP(&f.delimiter, "delimiter", "d", ",", `CSV field delimiter, a single character or "tab"`)
	fs.StringVarP(&f.kind, "kind", "k", string(mdtable.GFM), "table kind")
	fs.StringVar(&f.width, "width", config.WidthCodepoint, "cell width mode: codepoint or east-asian")
	fs.BoolVar(&f.noCaption, "no-caption", false, "do not write a caption line after a trailing caption row")
	fs.BoolVar(&f.strict, "strict", false, "fail when the table has validation warnings")
	fs.StringVarP(&f.output, "output", "o", "", "write the table to a file instead of standard output")
	fs.BoolVar(&f.preview, "preview", false, "render the table for the terminal instead of printing Markdown")
	fs.StringVar(&f.logLevel, "log-level", "info", "log level: debug, info, warn, error")

	cmd.AddCommand(newFormatsCmd())
	return cmd
}

// resolveConfig loads the config file and applies flags the user set
// explicitly on top of it.
func resolveConfig(fs *pflag.FlagSet, f flags) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return cfg, err
	}
	if fs.Changed("input") {
		cfg.Input = f.input
	}
	if fs.Changed("delimiter") {
		cfg.Delimiter = f.delimiter
	}
	if fs.Changed("kind") {
		cfg.Kind = f.kind
	}
	if fs.Changed("width") {
		cfg.Width = f.width
	}
	if fs.Changed("no-caption") {
		cfg.Caption = !f.noCaption
	}
	if fs.Changed("strict") {
		cfg.Strict = f.strict
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	return cfg, nil
}

func run(cmd *cobra.Command, f flags, path string) error {
	cfg, err := resolveConfig(cmd.Flags(), f)
	if err != nil {
		return err
	}
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	log := logger.Setup(cmd.ErrOrStderr(), level)
	ctx := logger.WithLogger(cmd.Context(), log)

	kind, err := mdtable.ParseKind(cfg.Kind)
	if err != nil {
		return err
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}

	data, err := readTable(ctx, cmd.InOrStdin(), path, cfg)
	if err != nil {
		return err
	}

	res := mdtable.Format(kind, data, opts...)
	logWarnings(log, res.Warnings)
	if cfg.Strict && len(res.Warnings) > 0 {
		return fmt.Errorf("%w: %d warning(s)", ErrWarnings, len(res.Warnings))
	}

	out := res.Output
	if out != "" && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	if f.preview {
		rendered, err := renderPreview(cmd.OutOrStdout(), out)
		if err != nil {
			return err
		}
		out = rendered
	}
	return writeOutput(cmd.OutOrStdout(), f.output, out)
}

func readTable(ctx context.Context, stdin io.Reader, path string, cfg config.Config) (mdtable.TableData, error) {
	log := logger.FromContext(ctx)
	format, err := cfg.InputFormat(path)
	if err != nil {
		return nil, err
	}
	delim, err := cfg.DelimiterRune()
	if err != nil {
		return nil, err
	}

	r := stdin
	name := "<stdin>"
	if path != "" && path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		r = file
		name = path
	}

	data, err := mdtable.Read(r, format, mdtable.WithDelimiter(delim))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	log.V(1).Info("read table", "source", name, "format", format.String(), "rows", len(data))
	return data, nil
}

func logWarnings(log *logr.Logger, warnings mdtable.Log) {
	for _, w := range warnings {
		log.Info("table warning", "code", string(w.Code), "row", w.Row, "column", w.Column, "detail", w.Message)
	}
}

func writeOutput(stdout io.Writer, path, out string) error {
	if path == "" || path == "-" {
		_, err := io.WriteString(stdout, out)
		return err
	}
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List supported table kinds and input formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			kinds := make([]string, 0, len(mdtable.Kinds()))
			for _, k := range mdtable.Kinds() {
				kinds = append(kinds, k.String())
			}
			inputs := make([]string, 0, len(mdtable.InputFormats()))
			for _, f := range mdtable.InputFormats() {
				inputs = append(inputs, f.String())
			}
			_, err := fmt.Fprintf(w, "kinds: %s\ninputs: %s\n", strings.Join(kinds, ", "), strings.Join(inputs, ", "))
			return err
		},
	}
}

// Execute runs the root command with the process arguments.
func Execute() error {
	return NewRootCmd().ExecuteContext(context.Background())
}

// Main runs mdtable and returns the process exit code.
func Main() int {
	code := 0
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "mdtable:", err)
		code = 1
	}
	if err := logger.Sync(); err != nil {
		fmt.Fprintf(os.Stderr, "WARNING: failed to sync logger: %v\n", err)
	}
	return code
}
