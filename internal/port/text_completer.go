package port

import "context"

// TextCompleter abstracts the external text-understanding service. Complete
// sends a single prompt and returns the raw textual reply. Implementations
// make at most one network call per invocation and perform no retries.
type TextCompleter interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
