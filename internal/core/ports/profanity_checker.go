package ports

import (
	"context"
)

// ProfanityChecker validates customer-facing names against an external
// profanity screening service.
type ProfanityChecker interface {
	// ContainsProfanity reports whether the given text contains profanity.
	ContainsProfanity(ctx context.Context, text string) (bool, error)
}
