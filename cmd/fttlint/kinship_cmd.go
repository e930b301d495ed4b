package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthurdick/familytree-text/exportjson"
	"github.com/arthurdick/familytree-text/kinship"
	"github.com/arthurdick/familytree-text/kinshiptext"
	"github.com/arthurdick/familytree-text/record"
)

func newKinshipCmd(format, logLevel *string) *cobra.Command {
	return &cobra.Command{
		Use:   "kinship <file.ftt|-> <idA> <idB>",
		Short: "Parse, validate, post-process, and calculate the relationship between two records",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, idA, idB := args[0], args[1], args[2]

			logger, err := setupLogger(*logLevel)
			if err != nil {
				return err
			}

			graph, result, registry, err := loadGraph(cmd.Context(), path, cmd.InOrStdin(), logger)
			if err != nil {
				return err
			}
			if result.HasErrors() {
				_ = printDiagnostics(cmd, *format, result, registry)
				return fmt.Errorf("%s: validation failed", path)
			}

			recA, ok := graph.Record(idA)
			if !ok {
				return fmt.Errorf("record %q not found in %s", idA, path)
			}
			if _, ok := graph.Record(idB); !ok {
				return fmt.Errorf("record %q not found in %s", idB, path)
			}

			engine := kinship.NewEngine(cmd.Context(), graph)
			rels := engine.Calculate(cmd.Context(), idA, idB)

			return printRelationships(cmd, *format, rels, recA, idA, idB)
		},
	}
}

func printRelationships(cmd *cobra.Command, format string, rels []kinship.Relationship, recA *record.Record, idA, idB string) error {
	switch format {
	case "text":
		gender := genderOf(recA)
		for _, rel := range rels {
			term := kinshiptext.Describe(rel, gender, idA, idB)
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", term.Term, term.Detail)
		}
		return nil
	case "json":
		data, err := exportjson.MarshalRelationships(rels, exportjson.WithIndent("  "))
		if err != nil {
			return fmt.Errorf("marshal relationships: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	default:
		return fmt.Errorf("unknown format %q (want text|json)", format)
	}
}

// genderOf reads a record's SEX field (M/F, case-insensitive) into a
// kinshiptext.Gender, defaulting to Unknown when absent or unrecognized.
func genderOf(rec *record.Record) kinshiptext.Gender {
	f, ok := rec.Field("SEX")
	if !ok {
		return kinshiptext.Unknown
	}
	switch strings.ToUpper(f.Raw()) {
	case "M":
		return kinshiptext.Male
	case "F":
		return kinshiptext.Female
	default:
		return kinshiptext.Unknown
	}
}
