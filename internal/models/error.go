package models

// Response messages. Clients match on these strings, so keep them stable.
const (
	MsgRestaurantNotFound       = "Restaurant not found"
	MsgRestaurantDetailNotFound = "Restaurant not found!"
	MsgPizzaNotFound            = "Pizza not found"
	MsgPizzaOrRestaurantMissing = "Pizza or Restaurant not found"

	// Validation messages for restaurant pizza creation
	MsgPriceInvalid        = "validation errors"
	MsgPizzaIDInvalid      = "Pizza ID is required and must be an integer"
	MsgRestaurantIDInvalid = "Restaurant ID is required and must be an integer"
)

// ErrorResponse is the body of a failure carrying a single message
type ErrorResponse struct {
	Error string `json:"error" example:"Pizza not found"`
}

// RestaurantErrorResponse is the body of a failed restaurant detail lookup
type RestaurantErrorResponse struct {
	Error string `json:"Error" example:"Restaurant not found!"`
}

// ValidationErrorResponse is the body of a failure carrying several messages
type ValidationErrorResponse struct {
	Errors []string `json:"errors" example:"validation errors"`
}

// NewErrorResponse creates a single message error body
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// NewValidationErrorResponse creates an error body listing every message
func NewValidationErrorResponse(messages ...string) ValidationErrorResponse {
	return ValidationErrorResponse{Errors: messages}
}
