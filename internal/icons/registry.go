package icons

import (
	"fmt"

	"github.com/vk/gridlabelgo/internal/svgutil"
)

// Slot identifies which icon area of the label a token is resolved for.
type Slot string

const (
	// SlotTop is the top-view icon slot.
	SlotTop Slot = "top"
	// SlotSide is the side-view icon slot.
	SlotSide Slot = "side"
)

// Producer generates one icon fragment. Producers are pure and
// parameterless; the same producer always yields the same fragment.
type Producer interface {
	Fragment() svgutil.Fragment
}

// ProducerFunc adapts a plain function to the Producer interface.
type ProducerFunc func() svgutil.Fragment

// Fragment implements Producer.
func (f ProducerFunc) Fragment() svgutil.Fragment {
	return f()
}

// Registry holds the token-to-producer mappings for both icon slots.
// It is populated once at startup and read-only afterwards, so it is
// safe to share across all records of a batch.
type Registry struct {
	top  map[string]Producer
	side map[string]Producer
}

// NewRegistry returns a registry populated with the built-in fastener
// icon producers.
func NewRegistry() *Registry {
	r := &Registry{
		top:  make(map[string]Producer),
		side: make(map[string]Producer),
	}
	registerBuiltins(r)
	return r
}

// Register binds a producer to one or more tokens in the given slot's
// registry. Registering a token twice is a programmer error and panics,
// matching how duplicate handler registration is treated elsewhere.
func (r *Registry) Register(slot Slot, producer Producer, tokens ...string) {
	m := r.slotMap(slot)
	for _, token := range tokens {
		if _, exists := m[token]; exists {
			panic(fmt.Sprintf("icon producer for %q already registered in %s registry", token, slot))
		}
		m[token] = producer
	}
}

// Tokens returns the registered tokens for a slot. Intended for
// diagnostics and tests.
func (r *Registry) Tokens(slot Slot) []string {
	m := r.slotMap(slot)
	tokens := make([]string, 0, len(m))
	for token := range m {
		tokens = append(tokens, token)
	}
	return tokens
}

func (r *Registry) slotMap(slot Slot) map[string]Producer {
	switch slot {
	case SlotTop:
		return r.top
	case SlotSide:
		return r.side
	default:
		panic(fmt.Sprintf("unknown icon slot: %q", slot))
	}
}
