package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/arthurdick/familytree-text/diag"
	"github.com/arthurdick/familytree-text/internal/source"
	"github.com/arthurdick/familytree-text/location"
	"github.com/arthurdick/familytree-text/parse"
	"github.com/arthurdick/familytree-text/postprocess"
	"github.com/arthurdick/familytree-text/record"
	"github.com/arthurdick/familytree-text/validate"
)

// parseDoc runs parse -> validate over the file at path. Passing "-" reads
// the document from stdin instead, tagging it with a fresh inline SourceID
// since there is no file path to canonicalize.
//
// The returned *source.Registry carries the raw content parseDoc read, keyed
// under the document's SourceID, so a [diag.Renderer] can show a source
// excerpt alongside each diagnostic via [diag.WithSourceProvider].
func parseDoc(ctx context.Context, path string, stdin io.Reader, logger *slog.Logger) (*record.Document, diag.Result, *source.Registry, error) {
	var content []byte
	var src location.SourceID

	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, diag.Result{}, nil, fmt.Errorf("read stdin: %w", err)
		}
		content = data
		src = location.NewInlineSourceID()
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, diag.Result{}, nil, fmt.Errorf("read %s: %w", path, err)
		}
		resolved, err := location.SourceIDFromPath(path)
		if err != nil {
			return nil, diag.Result{}, nil, fmt.Errorf("resolve source for %s: %w", path, err)
		}
		content = data
		src = resolved
	}

	registry := source.NewRegistry()
	if err := registry.Register(src, content); err != nil {
		return nil, diag.Result{}, nil, fmt.Errorf("register source %s: %w", src, err)
	}

	doc, parseResult := parse.Parse(ctx, src, content, parse.WithLogger(logger))
	validateResult := validate.Check(ctx, doc, validate.WithLogger(logger))

	merged := diag.NewCollectorUnlimited()
	merged.Merge(parseResult)
	merged.Merge(validateResult)

	return doc, merged.Result(), registry, nil
}

// loadGraph runs parse -> validate -> postprocess over the file at path,
// returning the frozen graph, every diagnostic collected along the way, and
// the source registry backing excerpt rendering for those diagnostics.
func loadGraph(ctx context.Context, path string, stdin io.Reader, logger *slog.Logger) (*record.RecordGraph, diag.Result, *source.Registry, error) {
	doc, result, registry, err := parseDoc(ctx, path, stdin, logger)
	if err != nil {
		return nil, diag.Result{}, nil, err
	}

	graph, ppResult := postprocess.Run(ctx, doc, postprocess.WithLogger(logger))

	merged := diag.NewCollectorUnlimited()
	merged.Merge(result)
	merged.Merge(ppResult)

	return graph, merged.Result(), registry, nil
}
