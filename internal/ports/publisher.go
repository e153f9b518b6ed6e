package ports

import "context"

// Publisher pushes a saved-stat notification to a topic. Optional; the
// update protocol works without one.
type Publisher interface {
	PublishRaw(ctx context.Context, arn string, payload []byte) error
}
