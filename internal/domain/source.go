package domain

import "context"

// ContentSource defines the interface (port) for fetching reference
// prose about a subject/topic pair. attempt widens the search query as
// it grows; broader drops the subject qualifier entirely.
//
// Implementations are expected to absorb their own failures: the
// Wikipedia adapter resolves every failure path to synthetic filler
// text and never returns an error. A substituted source may still
// fail, in which case the orchestrator treats the attempt as having
// produced no usable content.
type ContentSource interface {
	Fetch(ctx context.Context, subject, topic string, attempt int, broader bool) (string, error)
}
