package main

import (
	"fmt"

	"docmcp/internal/config"
	"docmcp/internal/errors"
	"docmcp/internal/packer"
	"docmcp/internal/pipeline"
	"docmcp/internal/scaffold"
	"docmcp/internal/summarize"

	"github.com/spf13/cobra"
)

var (
	generateRoot       string
	generateOut        string
	generateName       string
	generateModel      string
	generateDumpCorpus string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an MCP documentation server bundle",
	Long: `Scans the root directory for documents, summarizes them through the
Anthropic API, and writes a metadata bundle (metadata.json + server.toml)
that 'docmcp serve' can expose over MCP stdio.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateRoot, "root", ".", "Directory containing the documents")
	generateCmd.Flags().StringVar(&generateOut, "out", "", "Output directory for the bundle (default: config outDir)")
	generateCmd.Flags().StringVar(&generateName, "name", "", "Project name override (skips the suggested name when usable)")
	generateCmd.Flags().StringVar(&generateModel, "model", "", "Summarization model (default: config model)")
	generateCmd.Flags().StringVar(&generateDumpCorpus, "dump-corpus", "", "Write a gzip snapshot of the packed corpus to this path")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	cfg, err := config.LoadConfig(generateRoot)
	if err != nil {
		return errors.New(errors.ConfigInvalid, "Failed to load configuration", err)
	}
	if err := cfg.Validate(); err != nil {
		return errors.New(errors.ConfigInvalid, "Invalid configuration", err)
	}
	if generateModel != "" {
		cfg.Summarizer.Model = generateModel
	}

	outDir := generateOut
	if outDir == "" {
		outDir = cfg.OutDir
	}

	completer := summarize.NewAnthropicCompleter(
		cfg.ResolveAPIKey(), cfg.Summarizer.Model, cfg.Summarizer.MaxTokens)
	pk := packer.NewPacker(cfg.Summarizer.TokenCeiling)
	client := summarize.NewClient(completer, pk, logger)

	p := pipeline.New(cfg, client, pk, logger)
	run, err := p.Execute(cmd.Context(), pipeline.Options{
		RootDir:             generateRoot,
		ProjectNameOverride: generateName,
		DumpCorpusPath:      generateDumpCorpus,
	})
	if err != nil {
		return err
	}

	if err := scaffold.Emit(outDir, run.ID, run.Metadata); err != nil {
		return errors.New(errors.InternalError, "Failed to write server bundle", err)
	}

	fmt.Printf("Generated %s with %d documents.\n", run.Metadata.ToolName, len(run.Metadata.AvailablePaths))
	fmt.Printf("Bundle written to: %s\n\n", outDir)
	fmt.Print(scaffold.ClientConfigSnippet(run.Metadata, outDir))

	return nil
}
