package services

import "errors"

// ErrRestaurantNotFound is returned when no restaurant has the requested id.
// Controllers translate it into a 404 response.
var ErrRestaurantNotFound = errors.New("restaurant not found")

// ErrPizzaNotFound is returned when no pizza has the requested id.
// Controllers translate it into a 404 response.
var ErrPizzaNotFound = errors.New("pizza not found")
