package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"fieldcut/internal/config"
	"fieldcut/internal/cutter"
	"fieldcut/internal/fieldspec"
	"fieldcut/internal/linesource"
	"fieldcut/internal/logging"
	"fieldcut/internal/output"
)

var errNoFields = errors.New("you must specify a list of fields with -f")

type cutFlags struct {
	fields        string
	delimiter     string
	encoding      string
	output        string
	onlyDelimited bool
}

func (f *cutFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.fields, "fields", "f", "", "Fields to print, e.g. 1-3,5 or 4-")
	cmd.Flags().StringVarP(&f.delimiter, "delimiter", "d", "", `Field delimiter, matched literally (default "\t")`)
	cmd.Flags().BoolVarP(&f.onlyDelimited, "only-delimited", "s", false, "Do not print lines that contain no delimiter")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Write results to a file instead of stdout")
	cmd.Flags().StringVar(&f.encoding, "encoding", "", "Input encoding (default utf-8)")
}

// cutSettings is the merge of configuration and explicitly set flags.
type cutSettings struct {
	fields        string
	delimiter     string
	encoding      string
	output        string
	onlyDelimited bool
}

func resolveCutSettings(cmd *cobra.Command, cfg *config.Config, f *cutFlags) cutSettings {
	s := cutSettings{
		fields:        cfg.Cut.Fields,
		delimiter:     cfg.Cut.Delimiter,
		encoding:      cfg.Cut.Encoding,
		onlyDelimited: cfg.Cut.OnlyDelimited,
		output:        strings.TrimSpace(f.output),
	}
	flags := cmd.Flags()
	if flags.Changed("fields") {
		s.fields = f.fields
	}
	if flags.Changed("delimiter") {
		s.delimiter = f.delimiter
	}
	if flags.Changed("encoding") {
		s.encoding = f.encoding
	}
	if flags.Changed("only-delimited") {
		s.onlyDelimited = f.onlyDelimited
	}
	return s
}

func runCut(cmd *cobra.Command, ctx *commandContext, f *cutFlags, args []string) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	settings := resolveCutSettings(cmd, cfg, f)

	if settings.fields == "" {
		return errNoFields
	}
	spec, err := fieldspec.Parse(settings.fields)
	if err != nil {
		return fmt.Errorf("fields: %w", err)
	}

	logger, err := ctx.newLogger(cmd)
	if err != nil {
		return err
	}

	c, err := cutter.New(spec, cutter.Options{
		Delimiter:     settings.delimiter,
		OnlyDelimited: settings.onlyDelimited,
	}, logger)
	if err != nil {
		return err
	}

	input := linesource.StdinName
	if len(args) == 1 {
		input = args[0]
	}
	if err := checkDistinctPaths(input, settings.output); err != nil {
		return err
	}

	stdin := cmd.InOrStdin()
	if input == linesource.StdinName && isTerminal(stdin) {
		logger.Debug("reading from terminal; end input with Ctrl-D")
	}

	src, err := linesource.Open(input, stdin, settings.encoding)
	if err != nil {
		return err
	}
	defer src.Close()

	sink, err := output.Open(settings.output, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	logger.Debug("cut started",
		logging.String(logging.FieldInput, src.Name()),
		logging.String(logging.FieldOutput, sink.Name()),
		logging.String("spec", spec.String()),
		logging.String("encoding", src.Encoding()),
		logging.Bool("only_delimited", settings.onlyDelimited),
	)

	stats, runErr := c.Run(cmd.Context(), src.Lines(), sink)
	if closeErr := sink.Close(); runErr == nil {
		runErr = closeErr
	}
	if runErr != nil {
		return runErr
	}

	logger.Info("cut complete",
		logging.String(logging.FieldInput, src.Name()),
		logging.Int("lines", stats.Lines),
		logging.Int("written", stats.Written),
		logging.Int("decode_errors", stats.DecodeErrors),
	)
	return nil
}

// checkDistinctPaths refuses to truncate the file being read.
func checkDistinctPaths(input, out string) error {
	if input == linesource.StdinName || out == "" || out == "-" {
		return nil
	}
	in, err := filepath.Abs(input)
	if err != nil {
		return fmt.Errorf("resolve input path: %w", err)
	}
	dst, err := filepath.Abs(out)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}
	if in == dst {
		return fmt.Errorf("output %s would overwrite the input", out)
	}
	return nil
}
