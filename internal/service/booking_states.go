package service

import "rentacar/internal/db"

// allowedTransitions is the booking status graph. New bookings start
// active; cancelled and returned are terminal and allow no further moves.
// A no-op transition (from == to) is not allowed either, so cancelling an
// already-cancelled booking is rejected.
var allowedTransitions = map[db.BookingStatus][]db.BookingStatus{
	db.BookingStatusActive:    {db.BookingStatusCancelled, db.BookingStatusReturned},
	db.BookingStatusCancelled: {},
	db.BookingStatusReturned:  {},
}

func CanTransition(from, to db.BookingStatus) bool {
	allowed, ok := allowedTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

func IsTerminal(s db.BookingStatus) bool {
	allowed, ok := allowedTransitions[s]
	return ok && len(allowed) == 0
}

// ParseBookingStatus validates a client-supplied status value.
func ParseBookingStatus(raw string) (db.BookingStatus, bool) {
	s := db.BookingStatus(raw)
	_, ok := allowedTransitions[s]
	return s, ok
}
