package gate

import (
	"context"
	"fmt"

	"github.com/abhisek/mindarena/internal/store"
)

// Mode is the top-level experience.
type Mode int

const (
	ModeLoading Mode = iota
	ModeNativeOnboarding
	ModeNativeHub
	ModeWebFallback
)

func (m Mode) String() string {
	switch m {
	case ModeLoading:
		return "loading"
	case ModeNativeOnboarding:
		return "native-onboarding"
	case ModeNativeHub:
		return "native-hub"
	case ModeWebFallback:
		return "web-fallback"
	default:
		return "unknown"
	}
}

// Resolve computes the mode once the probe has finished.
func Resolve(d Decision, onboarded bool) Mode {
	switch {
	case d.Open:
		return ModeWebFallback
	case onboarded:
		return ModeNativeHub
	default:
		return ModeNativeOnboarding
	}
}

// Persisted boot flags.
const (
	KeyIsBlock     = "isBlock"
	KeyIsRequested = "isRequested"
)

// Flags are the boot-time flags kept between launches. IsBlock mirrors the
// last decision (true means native); IsRequested records that a probe has
// completed at least once.
type Flags struct {
	IsBlock     bool
	IsRequested bool
}

// DefaultFlags returns the flags of a fresh install.
func DefaultFlags() Flags {
	return Flags{IsBlock: true}
}

// FlagsFor returns the flags recording d.
func FlagsFor(d Decision) Flags {
	return Flags{IsBlock: !d.Open, IsRequested: true}
}

// LoadFlags reads the boot flags, defaulting missing keys.
func LoadFlags(ctx context.Context, kv store.KV) (Flags, error) {
	f := DefaultFlags()
	if _, err := kv.Get(ctx, KeyIsBlock, &f.IsBlock); err != nil {
		return DefaultFlags(), fmt.Errorf("load %s: %w", KeyIsBlock, err)
	}
	if _, err := kv.Get(ctx, KeyIsRequested, &f.IsRequested); err != nil {
		return DefaultFlags(), fmt.Errorf("load %s: %w", KeyIsRequested, err)
	}
	return f, nil
}

// SaveFlags writes both boot flags in one statement.
func SaveFlags(ctx context.Context, kv store.KV, f Flags) error {
	return kv.SetMany(ctx, map[string]any{
		KeyIsBlock:     f.IsBlock,
		KeyIsRequested: f.IsRequested,
	})
}
