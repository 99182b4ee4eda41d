package common

import (
	"context"
	"fmt"
	"os"

	"careerpro/internal/ai"
	"careerpro/internal/errors"
	"careerpro/internal/resume"
	"careerpro/internal/session"
	"careerpro/internal/storage"
)

// EnrichOperationFunc is a generic function signature for any enrichment
// operation with context and token usage.
type EnrichOperationFunc[Output any] func(context.Context, *resume.Document) (Output, *ai.TokenUsage, error)

// RunEnrichment encapsulates the common logic for one-shot enrichment
// commands: reserve the target, run the operation against the ticket's
// document snapshot, merge the result, persist. A failed operation releases
// the target and leaves both the session and the stored snapshot untouched.
func RunEnrichment[Output any](
	ctx context.Context,
	logger *errors.Logger,
	sess *session.Session,
	store storage.Store,
	begin func() (session.Ticket, error),
	operation EnrichOperationFunc[Output],
	apply func(session.Ticket, Output) error,
) error {
	ticket, err := begin()
	if err != nil {
		return err
	}

	result, tokenUsage, err := operation(ctx, ticket.Doc)
	if err != nil {
		sess.Fail(ticket)
		return err
	}

	// Report token usage
	if tokenUsage != nil {
		if logger != nil {
			logger.Info("AI token usage", "input_tokens", tokenUsage.InputTokens, "output_tokens", tokenUsage.OutputTokens, "total_tokens", tokenUsage.TotalTokens)
		} else {
			fmt.Fprintf(os.Stderr, "AI token usage: input=%d, output=%d, total=%d\n", tokenUsage.InputTokens, tokenUsage.OutputTokens, tokenUsage.TotalTokens)
		}
	}

	if err := apply(ticket, result); err != nil {
		return err
	}

	return store.Save(sess.Snapshot())
}
