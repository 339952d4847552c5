// README: Classifier contract for turning free text into a structured intent.
package ai

import (
	"context"
	"time"
)

// Classifier turns a free-text user message into one Intent variant.
// now is the request time and is used to resolve relative expressions
// like "明天" into absolute reminder times. It must be computed fresh
// per call, never once at process start.
//
// Classification is probabilistic; implementations are black boxes and
// callers must only rely on the decoded Intent schema, never on exact
// output for a given message.
type Classifier interface {
	Classify(ctx context.Context, message string, now time.Time) (*Intent, error)
}
