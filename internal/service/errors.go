package service

import "errors"

var (
	ErrCarNotFound     = errors.New("car not found")
	ErrCarNotInStack   = errors.New("car is not in the swipe stack")
	ErrNotTopCard      = errors.New("only the top card can be dragged")
	ErrInvalidDecision = errors.New("decision must be like or pass")
	ErrInvalidGesture  = errors.New("invalid gesture")
	ErrListingNotFound = errors.New("listing not shown in the viewport")
	ErrInvalidCar      = errors.New("invalid car")
	ErrInvalidBounds   = errors.New("invalid bounds")
	ErrUnauthenticated = errors.New("not logged in")
)
