package models

import "errors"

// ErrInvalidStatus indicates text that is not one of the known statuses
var ErrInvalidStatus = errors.New("invalid todo status")
