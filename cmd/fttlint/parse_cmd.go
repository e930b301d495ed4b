package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthurdick/familytree-text/diag"
	"github.com/arthurdick/familytree-text/exportjson"
	"github.com/arthurdick/familytree-text/internal/source"
)

func newParseCmd(format, logLevel *string) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file.ftt|->",
		Short: "Parse and validate an FTT document, printing diagnostics. Use - to read from stdin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := setupLogger(*logLevel)
			if err != nil {
				return err
			}

			_, result, registry, err := parseDoc(cmd.Context(), args[0], cmd.InOrStdin(), logger)
			if err != nil {
				return err
			}

			if err := printDiagnostics(cmd, *format, result, registry); err != nil {
				return err
			}
			if result.HasErrors() {
				return fmt.Errorf("%s: validation failed", args[0])
			}
			return nil
		},
	}
}

// printDiagnostics renders result in the requested format. registry may be
// nil (e.g. when diagnostics are printed before a source was read); text
// output falls back to [diag.Result.String] in that case.
func printDiagnostics(cmd *cobra.Command, format string, result diag.Result, registry *source.Registry) error {
	switch format {
	case "text":
		if registry == nil || result.OK() {
			fmt.Fprintln(cmd.OutOrStdout(), result.String())
			return nil
		}
		renderer := diag.NewRenderer(diag.WithSourceProvider(registry), diag.WithExcerpts(true))
		fmt.Fprintln(cmd.OutOrStdout(), renderer.FormatResult(result))
		return nil
	case "json":
		data, err := exportjson.MarshalDiagnostics(result, exportjson.WithIndent("  "))
		if err != nil {
			return fmt.Errorf("marshal diagnostics: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	default:
		return fmt.Errorf("unknown format %q (want text|json)", format)
	}
}
