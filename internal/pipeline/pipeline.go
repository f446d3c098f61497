// Package pipeline orchestrates one generation run: load, pack, summarize,
// describe, name, synthesize.
package pipeline

import (
	"context"

	"github.com/google/uuid"

	"docmcp/internal/config"
	"docmcp/internal/docs"
	"docmcp/internal/errors"
	"docmcp/internal/logging"
	"docmcp/internal/metadata"
	"docmcp/internal/naming"
	"docmcp/internal/packer"
	"docmcp/internal/summarize"
)

// Options control one generation run.
type Options struct {
	// RootDir is the directory whose documents form the corpus.
	RootDir string
	// ProjectNameOverride bypasses the summarizer-suggested name when it
	// canonicalizes to a non-empty identifier. An override that
	// canonicalizes to empty is discarded in favor of the summarizer's
	// suggestion; the discard is logged at warn level.
	ProjectNameOverride string
	// DumpCorpusPath, when set, writes a gzip snapshot of the packed
	// payload for offline reproduction of the summarization request.
	DumpCorpusPath string
}

// Run is the outcome of a generation run.
type Run struct {
	ID       string
	Metadata *metadata.McpToolMetadata
	Stats    docs.LoadStats
}

// Pipeline wires the collaborators for generation runs. Each Execute call
// operates on its own document collection; there is no shared mutable state
// across runs and no retry anywhere.
type Pipeline struct {
	cfg    *config.Config
	client *summarize.Client
	packer *packer.Packer
	logger *logging.Logger
}

// New creates a Pipeline around an explicitly constructed summarize client.
func New(cfg *config.Config, client *summarize.Client, p *packer.Packer, logger *logging.Logger) *Pipeline {
	return &Pipeline{
		cfg:    cfg,
		client: client,
		packer: p,
		logger: logger,
	}
}

// Execute performs one generation run. An empty corpus is a precondition
// violation reported as NO_DOCUMENTS before any external call is made.
func (p *Pipeline) Execute(ctx context.Context, opts Options) (*Run, error) {
	run := &Run{ID: uuid.NewString()}

	loader := docs.NewLoader(opts.RootDir, p.cfg.Scan.Extensions, p.cfg.Scan.Exclude, p.logger)
	documents, stats, err := loader.Load()
	if err != nil {
		return nil, errors.New(errors.InternalError, "Failed to scan root directory", err)
	}
	run.Stats = stats

	if len(documents) == 0 {
		return nil, errors.New(errors.NoDocuments,
			"No documents found under "+opts.RootDir, nil)
	}

	p.logger.Info("Loaded corpus", map[string]any{
		"run":     run.ID,
		"loaded":  stats.Loaded,
		"skipped": stats.Skipped,
	})

	if opts.DumpCorpusPath != "" {
		packed := p.packer.Pack(documents)
		if err := packer.WriteSnapshot(opts.DumpCorpusPath, packed); err != nil {
			return nil, errors.New(errors.InternalError, "Failed to write corpus snapshot", err)
		}
		p.logger.Info("Wrote corpus snapshot", map[string]any{
			"path": opts.DumpCorpusPath,
			"used": packed.UsedCount,
		})
	}

	result, err := p.client.Summarize(ctx, documents)
	if err != nil {
		return nil, err
	}

	// Descriptions are fetched one document at a time so a single failing
	// call degrades to its fallback without aborting sibling calls.
	for i := range documents {
		if documents[i].Description == "" {
			documents[i].Description = p.client.Describe(ctx, documents[i])
		}
	}

	projectName := p.resolveProjectName(opts.ProjectNameOverride, result.ProjectName)

	meta, err := metadata.Synthesize(projectName, result, documents, opts.RootDir)
	if err != nil {
		return nil, err
	}

	run.Metadata = meta
	p.logger.Info("Synthesized metadata", map[string]any{
		"run":      run.ID,
		"toolName": meta.ToolName,
		"paths":    len(meta.AvailablePaths),
	})
	return run, nil
}

// resolveProjectName applies the override rule: an override wins only when
// it canonicalizes to something usable.
func (p *Pipeline) resolveProjectName(override, suggested string) string {
	if override == "" {
		return suggested
	}
	if naming.Canonicalize(override) == "" {
		p.logger.Warn("Project name override canonicalizes to empty; using suggested name", map[string]any{
			"override":  override,
			"suggested": suggested,
		})
		return suggested
	}
	return override
}
