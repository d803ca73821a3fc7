package types

import "context"

// Enumerator lists the icons currently on the desktop, in the desktop's
// native index order.
type Enumerator interface {
	EnumerateIcons(ctx context.Context) ([]IconRecord, error)
}

// ScreenInfo reports the desktop resolution and scaling.
type ScreenInfo interface {
	ScreenGeometry(ctx context.Context) (ScreenGeometry, error)
}

// Repositioner commits a new position for one icon. A returned error marks
// that single placement as failed; callers continue with the rest.
type Repositioner interface {
	SetPosition(ctx context.Context, slotIndex, x, y int) error
}

// LexiconLoader loads the game title lexicon. An empty lexicon is a valid
// result.
type LexiconLoader interface {
	LoadGameTitles(ctx context.Context) (Lexicon, error)
}
