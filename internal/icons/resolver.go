package icons

import (
	"fmt"

	"github.com/vk/gridlabelgo/internal/svgutil"
)

// UnknownTokenError reports a non-empty symbol token with no registry
// entry. It is fatal for the record that carries the token.
type UnknownTokenError struct {
	Slot  Slot
	Token string
}

// Error implements the error interface.
func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf("no %s icon registered for symbol %q", e.Slot, e.Token)
}

// Resolve maps a symbol token to its icon fragment. An empty token is
// valid and resolves to an empty fragment (no icon in that slot). A
// non-empty token without a registry entry returns *UnknownTokenError.
func (r *Registry) Resolve(slot Slot, token string) (svgutil.Fragment, error) {
	if token == "" {
		return "", nil
	}
	producer, ok := r.slotMap(slot)[token]
	if !ok {
		return "", &UnknownTokenError{Slot: slot, Token: token}
	}
	return producer.Fragment(), nil
}
