package manifest

import "testing"

func TestCountTokens_UnknownModel(t *testing.T) {
	if _, err := CountTokens("> Business Description: x\n\n", "no-such-model"); err == nil {
		t.Fatal("expected error for unknown model, got nil")
	}
}
