package repository

import "errors"

// ErrStorageUnavailable is wrapped by every read or write failure of the
// review store.
var ErrStorageUnavailable = errors.New("review storage unavailable")
