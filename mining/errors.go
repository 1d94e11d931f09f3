package mining

import (
	"github.com/projectdiscovery/utils/errkit"
)

var (
	// ErrEmptyDataset is returned when no transaction was loaded, support is undefined
	ErrEmptyDataset = errkit.New("no transactions to mine, support is undefined for an empty dataset")
	// ErrInvalidThreshold is returned when minimum support is outside (0, 1]
	ErrInvalidThreshold = errkit.New("minimum support must be in the range (0, 1]")
	// ErrUnknownCounter is returned for an unregistered counting strategy
	ErrUnknownCounter = errkit.New("unknown support counter")
)
