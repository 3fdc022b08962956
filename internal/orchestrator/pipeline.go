// Package orchestrator wires the extraction core's six components into
// the single control flow described in the system overview: identify the
// bank, cascade C -> D -> E with short-circuiting, then run the
// Normalizer & Validator unconditionally over whatever tier produced a
// result.
package orchestrator

import (
	"context"

	"ledgerlens/extractcore/internal/bankid"
	"ledgerlens/extractcore/internal/llmtier"
	"ledgerlens/extractcore/internal/logging"
	"ledgerlens/extractcore/internal/models"
	"ledgerlens/extractcore/internal/normalize"
	"ledgerlens/extractcore/internal/pdfaccess"
	"ledgerlens/extractcore/internal/tabletier"
	"ledgerlens/extractcore/internal/wordtier"
	"ledgerlens/extractcore/internal/xerrors"
)

// DefaultCurrency is the fallback ISO code stamped onto transactions no
// tier could otherwise attach a currency to (the table and LLM tiers
// never discover one; only Tier-2's segmentation does).
const DefaultCurrency = "SGD"

// Options bundles the tunables that shape tier selection and validation,
// sourced from config.Config.Extraction at wiring time.
type Options struct {
	MinViableTransactions    int
	ScannedPageCharThreshold int
	BalanceChainTolerance    float64
}

// Pipeline holds one constructed instance of every component the control
// flow in §2 needs.
type Pipeline struct {
	Identifier *bankid.Identifier
	TableTier  *tabletier.Extractor
	WordTier   *wordtier.Extractor
	LLMTier    *llmtier.Extractor
	Logger     logging.Logger
	Options    Options
}

// NewPipeline builds a Pipeline from its already-constructed components.
func NewPipeline(identifier *bankid.Identifier, tableTier *tabletier.Extractor, wordTier *wordtier.Extractor, llmTier *llmtier.Extractor, logger logging.Logger, opts Options) *Pipeline {
	if opts.MinViableTransactions <= 0 {
		opts.MinViableTransactions = wordtier.MinViableTransactions
	}
	return &Pipeline{
		Identifier: identifier,
		TableTier:  tableTier,
		WordTier:   wordTier,
		LLMTier:    llmTier,
		Logger:     logger,
		Options:    opts,
	}
}

// Run executes the full control flow of §2 against an already-open
// document and returns the final ExtractionResult. source is a
// human-readable identifier (file path or "stream") used only for error
// context.
func (p *Pipeline) Run(ctx context.Context, source string, doc pdfaccess.Access, hint *models.BankLayout) (models.ExtractionResult, error) {
	count, err := doc.PageCount()
	if err != nil || count == 0 {
		return models.ExtractionResult{}, xerrors.NewPdfUnreadable(source, "zero readable pages", err)
	}

	layout, err := p.Identifier.Identify(ctx, doc, hint)
	if err != nil {
		p.Logger.WithError(err).Warn("bank identification cascade errored, continuing as unknown")
	}
	bank := layout.Bank

	var transactions []models.Transaction
	var accountInfo *models.AccountInfo
	var method models.ExtractionMethod
	var diagnostics []*xerrors.BatchError
	tiersAttempted := []string{"table"}

	transactions, accountInfo, err = p.TableTier.Extract(doc, bank)
	if err != nil {
		return models.ExtractionResult{}, err
	}
	method = models.MethodTable

	if len(transactions) == 0 {
		tiersAttempted = append(tiersAttempted, "words")
		wordTxns, werr := p.WordTier.Extract(doc, bank)
		if werr != nil {
			return models.ExtractionResult{}, werr
		}
		transactions = wordTxns
		method = models.MethodWords
	}

	if len(transactions) < p.Options.MinViableTransactions && p.LLMTier != nil {
		tiersAttempted = append(tiersAttempted, "llm")
		llmTxns, diags, lerr := p.LLMTier.Extract(ctx, doc, bank)
		diagnostics = diags
		if lerr != nil {
			return models.ExtractionResult{}, lerr
		}
		if len(llmTxns) > 0 {
			transactions = llmTxns
			method = models.MethodLLM
			if scanned, serr := pdfaccess.IsScanned(doc, p.Options.ScannedPageCharThreshold); serr == nil && scanned {
				method = models.MethodLLMOCR
			}
		}
	}

	if len(transactions) < p.Options.MinViableTransactions {
		return models.ExtractionResult{}, xerrors.NewExtractionFailed(tiersAttempted, len(transactions), nil)
	}

	if accountInfo == nil {
		accountInfo = &models.AccountInfo{Bank: bank}
	}

	fallbackCurrency := accountInfo.Currency
	if fallbackCurrency == "" {
		fallbackCurrency = DefaultCurrency
	}
	for i := range transactions {
		if transactions[i].Currency == "" {
			transactions[i].Currency = fallbackCurrency
		}
	}

	normalize.Enrich(transactions)

	chain := normalize.ValidateBalanceChain(transactions, p.Options.BalanceChainTolerance)
	accuracy := normalize.ScoreAccuracy(transactions, chain)
	metrics := normalize.ComputeMetrics(transactions)

	seenCurrency := map[string]bool{}
	var currencies []string
	for _, tx := range transactions {
		if tx.Currency == "" || seenCurrency[tx.Currency] {
			continue
		}
		seenCurrency[tx.Currency] = true
		currencies = append(currencies, tx.Currency)
	}

	if len(diagnostics) > 0 {
		p.Logger.WithField("failed_batches", len(diagnostics)).Warn("tier-3 completed with partial batch failures")
	}

	return models.ExtractionResult{
		Bank:             bank,
		AccountInfo:      *accountInfo,
		Transactions:     transactions,
		Metrics:          metrics,
		Accuracy:         accuracy,
		BalanceChain:     chain,
		ExtractionMethod: method,
		PagesProcessed:   count,
		Currencies:       currencies,
	}, nil
}
