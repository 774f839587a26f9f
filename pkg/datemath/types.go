package datemath

import (
	"errors"
	"time"
)

// DeadlineHour is the local hour every resolved date is pinned to.
const DeadlineHour = 17

// ISODateLayout is the date-only layout used for storage and transport.
const ISODateLayout = "2006-01-02"

// Confidence tells callers how unambiguous a resolution was.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// ParsedDate holds the result of resolving a natural-language date phrase.
type ParsedDate struct {
	Date          time.Time  `json:"date"`
	Confidence    Confidence `json:"confidence"`
	OriginalInput string     `json:"original_input"`
}

// ErrInvalidISODate is returned by ParseLocalISODate for anything that is not a real YYYY-MM-DD date.
var ErrInvalidISODate = errors.New("invalid ISO date, expected YYYY-MM-DD")
