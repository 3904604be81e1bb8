package domain

import "errors"

// ErrListingNotFound is returned when an editor is opened for a listing ID
// that is not present in the user's loaded listings.
var ErrListingNotFound = errors.New("listing not found")
