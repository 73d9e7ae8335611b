package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"fieldcut/internal/fieldspec"
	"fieldcut/internal/resolver"
)

// maxExplainCount bounds --count so resolution stays a small allocation.
const maxExplainCount = 1_000_000

type explainPart struct {
	Position int            `json:"position"`
	Part     string         `json:"part"`
	Kind     fieldspec.Kind `json:"kind"`
	Fields   []int          `json:"fields,omitempty"`
}

type explainReport struct {
	Spec    string        `json:"spec"`
	Count   *int          `json:"count,omitempty"`
	Parts   []explainPart `json:"parts"`
	Fields  []int         `json:"fields"`
	Indexes []int         `json:"indexes"`
}

func newExplainCommand(ctx *commandContext) *cobra.Command {
	var fieldsFlag string
	var count int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "explain",
		Short: "Show how a field specification is parsed and resolved",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := fieldsFlag
			if !cmd.Flags().Changed("fields") {
				cfg, err := ctx.ensureConfig()
				if err != nil {
					return err
				}
				raw = cfg.Cut.Fields
			}
			if raw == "" {
				return errNoFields
			}
			spec, err := fieldspec.Parse(raw)
			if err != nil {
				return fmt.Errorf("fields: %w", err)
			}
			if cmd.Flags().Changed("count") && (count < 0 || count > maxExplainCount) {
				return fmt.Errorf("--count must be between 0 and %d, got %d", maxExplainCount, count)
			}

			report := buildExplainReport(spec, count, cmd.Flags().Changed("count"))
			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), report)
			}
			fmt.Fprint(cmd.OutOrStdout(), renderExplain(report, shouldColorize(cmd.OutOrStdout())))
			return nil
		},
	}

	cmd.Flags().StringVarP(&fieldsFlag, "fields", "f", "", "Field specification to explain")
	cmd.Flags().IntVarP(&count, "count", "n", 0, "Resolve against a line with this many fields")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func buildExplainReport(spec fieldspec.Specification, count int, resolve bool) explainReport {
	report := explainReport{
		Spec:  spec.String(),
		Parts: make([]explainPart, 0, len(spec)),
	}
	for i, d := range spec {
		part := explainPart{Position: i + 1, Part: d.String(), Kind: d.Kind()}
		if resolve {
			part.Fields = resolver.Fields(fieldspec.Specification{d}, count)
		}
		report.Parts = append(report.Parts, part)
	}
	if resolve {
		report.Count = &count
		report.Fields = nonNil(resolver.Fields(spec, count))
		report.Indexes = nonNil(resolver.Indexes(spec, count))
	}
	return report
}

func renderExplain(report explainReport, colorize bool) string {
	var b strings.Builder
	title := "Specification " + report.Spec
	if colorize {
		title = text.Colors{text.FgBlue, text.Bold}.Sprint(title)
	}
	b.WriteString(title)
	b.WriteByte('\n')
	b.WriteString(explainTable(report, colorize))
	b.WriteByte('\n')
	if report.Count != nil {
		fmt.Fprintf(&b, "Fields for a %d-field line: %s\n", *report.Count, joinInts(report.Fields, "(none)"))
		fmt.Fprintf(&b, "Indexes (0-based): %s\n", joinInts(report.Indexes, "(none)"))
	}
	return b.String()
}

func kindLabel(kind fieldspec.Kind) string {
	switch kind {
	case fieldspec.KindSingle:
		return "single"
	case fieldspec.KindOpenRange:
		return "open range"
	case fieldspec.KindClosedRange:
		return "closed range"
	default:
		return string(kind)
	}
}

func joinInts(values []int, empty string) string {
	if len(values) == 0 {
		return empty
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func nonNil(values []int) []int {
	if values == nil {
		return []int{}
	}
	return values
}
