package domain

import (
	"errors"

	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

var (
	// ErrInvalidFormat malformed time or date string
	ErrInvalidFormat = types.ErrInvalidFormat

	// ErrInvalidConfiguration non-positive slot duration, opening >= closing,
	// break outside business hours and similar configuration defects
	ErrInvalidConfiguration = errors.New("domain: invalid configuration")

	// ErrInvalidClosure closure record violates its invariants
	ErrInvalidClosure = errors.New("domain: invalid closure")
)
