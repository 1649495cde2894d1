package flights

import (
	"strings"

	"aerobook/internal/shared/apperrors"
)

type FareClass string

const (
	FareEconomy  FareClass = "ECONOMY"
	FareBusiness FareClass = "BUSINESS"
	FareFirst    FareClass = "FIRST"
)

// ParseFareClass normalizes user input to a fare class. Blank or
// unrecognized values fall back to ECONOMY; the permissive parse lives
// only at this boundary, everything downstream works with the closed
// enum.
func ParseFareClass(s string) FareClass {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(FareBusiness):
		return FareBusiness
	case string(FareFirst):
		return FareFirst
	default:
		return FareEconomy
	}
}

// PriceForClass returns the per-class override price when set, otherwise
// a multiple of the base price: economy x1, business x2, first x3.
func PriceForClass(f *Flight, class FareClass) float64 {
	switch class {
	case FareBusiness:
		if f.BusinessPrice != nil {
			return *f.BusinessPrice
		}
		return f.BasePrice * 2
	case FareFirst:
		if f.FirstClassPrice != nil {
			return *f.FirstClassPrice
		}
		return f.BasePrice * 3
	default:
		if f.EconomyPrice != nil {
			return *f.EconomyPrice
		}
		return f.BasePrice
	}
}

// AvailableSeatsForClass returns the raw counter for a class.
func AvailableSeatsForClass(f *Flight, class FareClass) int {
	switch class {
	case FareBusiness:
		return f.BusinessSeats
	case FareFirst:
		return f.FirstClassSeats
	default:
		return f.EconomySeats
	}
}

// HasEnoughSeats reports whether the class counter covers count seats.
func HasEnoughSeats(f *Flight, class FareClass, count int) bool {
	return AvailableSeatsForClass(f, class) >= count
}

// AdjustSeats mutates the class counter by -count (consumption) or
// +count when restore is set (cancellation). The result is floored at 0
// so a double release can never drive a counter negative.
func AdjustSeats(f *Flight, class FareClass, count int, restore bool) {
	delta := -count
	if restore {
		delta = count
	}

	apply := func(current int) int {
		next := current + delta
		if next < 0 {
			return 0
		}
		return next
	}

	switch class {
	case FareBusiness:
		f.BusinessSeats = apply(f.BusinessSeats)
	case FareFirst:
		f.FirstClassSeats = apply(f.FirstClassSeats)
	default:
		f.EconomySeats = apply(f.EconomySeats)
	}
}

// RequireAvailability returns an InsufficientSeatsError carrying the
// required and available counts when the class cannot cover count seats.
func RequireAvailability(f *Flight, class FareClass, count int) error {
	available := AvailableSeatsForClass(f, class)
	if available < count {
		return &apperrors.InsufficientSeatsError{
			FareClass: string(class),
			Required:  count,
			Available: available,
		}
	}
	return nil
}
