package models

import "errors"

// ErrShareVersionConflict is shared by every layer that replaces grant sets:
// the store returns it when the compare-and-set on share_version fails, the
// HTTP adapter returns it for a 409 on the shares endpoint, and the vault
// core passes it through unchanged.
var ErrShareVersionConflict = errors.New("share list was changed concurrently, reload and retry")
