package citation

import "errors"

// ErrLookup is returned by resolvers when metadata cannot be fetched.
var ErrLookup = errors.New("citation lookup failed")
