package firstfit

import "errors"

var (
	ErrInvalidCapacity = errors.New("firstfit: invalid capacity")
	ErrInvalidTenant   = errors.New("firstfit: invalid tenant")
	ErrCorrupt         = errors.New("firstfit: corrupt segment sequence")
)
