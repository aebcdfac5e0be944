package services

import "errors"

var ErrListingNotFound = errors.New("listing not found")
