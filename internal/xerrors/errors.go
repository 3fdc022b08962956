// Package xerrors defines the extraction core's error taxonomy (§7):
// three sentinel conditions the pipeline can surface to its caller, each
// wrapped with enough context to explain itself without string matching.
package xerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors. Use errors.Is against these, never string comparison.
var (
	// ErrPdfUnreadable means the container is encrypted without the
	// correct key or structurally corrupt.
	ErrPdfUnreadable = errors.New("pdf unreadable")

	// ErrExtractionFailed means all three tiers produced fewer than the
	// minimum viable transaction count.
	ErrExtractionFailed = errors.New("extraction failed")

	// ErrExtractionCancelled means a suspension point (vision or chat
	// model call) was cancelled or exceeded its deadline.
	ErrExtractionCancelled = errors.New("extraction cancelled")
)

// PdfUnreadableError wraps ErrPdfUnreadable with the offending path.
type PdfUnreadableError struct {
	Path   string
	Reason string
	Err    error
}

func (e *PdfUnreadableError) Error() string {
	return fmt.Sprintf("pdf unreadable: %s: %s", e.Path, e.Reason)
}

func (e *PdfUnreadableError) Unwrap() error {
	if e.Err != nil {
		return errors.Join(ErrPdfUnreadable, e.Err)
	}
	return ErrPdfUnreadable
}

// NewPdfUnreadable builds a PdfUnreadableError.
func NewPdfUnreadable(path, reason string, cause error) error {
	return &PdfUnreadableError{Path: path, Reason: reason, Err: cause}
}

// ExtractionFailedError wraps ErrExtractionFailed with tier diagnostics.
type ExtractionFailedError struct {
	TiersAttempted   []string
	TransactionCount int
	Err              error
}

func (e *ExtractionFailedError) Error() string {
	return fmt.Sprintf("extraction failed after tiers %v: only %d transactions recovered",
		e.TiersAttempted, e.TransactionCount)
}

func (e *ExtractionFailedError) Unwrap() error {
	if e.Err != nil {
		return errors.Join(ErrExtractionFailed, e.Err)
	}
	return ErrExtractionFailed
}

// NewExtractionFailed builds an ExtractionFailedError.
func NewExtractionFailed(tiersAttempted []string, transactionCount int, cause error) error {
	return &ExtractionFailedError{TiersAttempted: tiersAttempted, TransactionCount: transactionCount, Err: cause}
}

// ExtractionCancelledError wraps ErrExtractionCancelled with the stage that
// was interrupted.
type ExtractionCancelledError struct {
	Stage string
	Err   error
}

func (e *ExtractionCancelledError) Error() string {
	return fmt.Sprintf("extraction cancelled during %s", e.Stage)
}

func (e *ExtractionCancelledError) Unwrap() error {
	if e.Err != nil {
		return errors.Join(ErrExtractionCancelled, e.Err)
	}
	return ErrExtractionCancelled
}

// NewExtractionCancelled builds an ExtractionCancelledError.
func NewExtractionCancelled(stage string, cause error) error {
	return &ExtractionCancelledError{Stage: stage, Err: cause}
}

// BatchError is a non-fatal per-batch diagnostic surfaced during Tier-3
// processing (§7 item 3). It is never returned as the pipeline's terminal
// error; the orchestrator collects these and continues with remaining
// batches.
type BatchError struct {
	BatchIndex int
	Reason     string
	Err        error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("batch %d failed: %s: %v", e.BatchIndex, e.Reason, e.Err)
}

func (e *BatchError) Unwrap() error {
	return e.Err
}
