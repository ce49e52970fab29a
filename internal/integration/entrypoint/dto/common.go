// Package dto defines data transfer objects for API requests and responses.
package dto

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// CountResponse reports how many items a bulk operation affected.
type CountResponse struct {
	Count int `json:"count"`
}
