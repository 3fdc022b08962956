// Package container centralizes the creation and wiring of every
// extraction-pipeline dependency, the way the rest of this codebase's
// commands wire up a categorizer and a parser registry.
package container

import (
	"context"
	"fmt"
	"time"

	"ledgerlens/extractcore/internal/bankid"
	"ledgerlens/extractcore/internal/batch"
	"ledgerlens/extractcore/internal/config"
	"ledgerlens/extractcore/internal/llmtier"
	"ledgerlens/extractcore/internal/logging"
	"ledgerlens/extractcore/internal/orchestrator"
	"ledgerlens/extractcore/internal/pdfaccess"
	"ledgerlens/extractcore/internal/tabletier"
	"ledgerlens/extractcore/internal/wordtier"
)

// Container holds every wired dependency the extraction CLI needs and
// exposes them through getter methods, immutable once built.
type Container struct {
	logger     logging.Logger
	config     *config.Config
	opener     pdfaccess.Opener
	aiClient   llmtier.AIClient
	identifier *bankid.Identifier
	tableTier  *tabletier.Extractor
	wordTier   *wordtier.Extractor
	llmTier    *llmtier.Extractor
	pipeline   *orchestrator.Pipeline
	aggregator *batch.Aggregator
}

// NewContainer creates and wires all extraction-pipeline dependencies.
// AI-backed components (bank-logo vision, Tier-3 LLM extraction) are only
// constructed when cfg.AI.Enabled and an API key is present; the pipeline
// still runs without them, falling back to Tier-1/Tier-2 only.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)

	opener := pdfaccess.NewPopplerOpener(cfg.Poppler.PdftotextPath, cfg.Poppler.PdftoppmPath, "", logger)

	var aiClient llmtier.AIClient
	if cfg.AI.Enabled && cfg.AI.APIKey != "" {
		client, err := llmtier.NewGeminiClient(ctx, cfg.AI.APIKey, cfg.AI.Model)
		if err != nil {
			return nil, fmt.Errorf("container: create gemini client: %w", err)
		}
		aiClient = client
		logger.Info("tier-3 LLM extraction enabled", logging.Field{Key: "model", Value: cfg.AI.Model})
	} else {
		logger.Info("tier-3 LLM extraction disabled")
	}

	identifier := bankid.NewIdentifier(aiClient, logger, cfg.Extraction.VisionDPI)
	tableTier := tabletier.NewExtractor(logger)
	wordTier := wordtier.NewExtractor(logger)

	var llmTier *llmtier.Extractor
	if aiClient != nil {
		llmTier = llmtier.NewExtractor(aiClient, logger, llmtier.Options{
			ScannedPageCharThreshold: cfg.Extraction.ScannedPageCharThreshold,
			VisionDPI:                cfg.Extraction.VisionDPI,
			WorkerPoolSize:           cfg.Extraction.WorkerPoolSize,
			ChatTimeout:              time.Duration(cfg.AI.ChatTimeoutSeconds) * time.Second,
			VisionTimeout:            time.Duration(cfg.AI.VisionTimeoutSeconds) * time.Second,
			MaxBatchRetries:          cfg.AI.MaxBatchRetries,
		})
	}

	pipeline := orchestrator.NewPipeline(identifier, tableTier, wordTier, llmTier, logger, orchestrator.Options{
		MinViableTransactions:    cfg.Extraction.MinViableTransactions,
		ScannedPageCharThreshold: cfg.Extraction.ScannedPageCharThreshold,
		BalanceChainTolerance:    cfg.Extraction.BalanceChainTolerance,
	})

	aggregator := batch.NewAggregator(logger)

	logger.Info("container initialized successfully",
		logging.Field{Key: "ai_enabled", Value: aiClient != nil},
		logging.Field{Key: "worker_pool_size", Value: cfg.Extraction.WorkerPoolSize})

	return &Container{
		logger:     logger,
		config:     cfg,
		opener:     opener,
		aiClient:   aiClient,
		identifier: identifier,
		tableTier:  tableTier,
		wordTier:   wordTier,
		llmTier:    llmTier,
		pipeline:   pipeline,
		aggregator: aggregator,
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger { return c.logger }

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config { return c.config }

// GetOpener returns the PDF access opener backing every extraction.
func (c *Container) GetOpener() pdfaccess.Opener { return c.opener }

// GetPipeline returns the fully wired orchestrator pipeline.
func (c *Container) GetPipeline() *orchestrator.Pipeline { return c.pipeline }

// GetAggregator returns the batch file-grouping and roll-up helper.
func (c *Container) GetAggregator() *batch.Aggregator { return c.aggregator }

// Close performs cleanup of container resources.
func (c *Container) Close() error {
	c.logger.Info("container closed")
	return nil
}
