package llm

import "context"

// purposeKey tags a context with what a mentor request is for. The tag is
// recorded in the diagnostics store and in retry logs.
type purposeKey struct{}

// Unlabelled is reported for requests sent without a purpose.
const Unlabelled = "unlabelled"

// WithPurpose labels ctx. An empty purpose leaves ctx as it is.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	if purpose == "" {
		return ctx
	}
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the label set by WithPurpose, or Unlabelled.
func PurposeFrom(ctx context.Context) string {
	if p, _ := ctx.Value(purposeKey{}).(string); p != "" {
		return p
	}
	return Unlabelled
}
