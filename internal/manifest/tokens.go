package manifest

import (
	"fmt"

	tiktoken "github.com/pkoukk/tiktoken-go"
)

// CountTokens estimates how many tokens text costs for the given model.
// The encoding tables are fetched on first use, so this can fail offline.
func CountTokens(text, model string) (int, error) {
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		return 0, fmt.Errorf("getting encoding for model %q: %w", model, err)
	}
	return len(enc.Encode(text, nil, nil)), nil
}
