package model

import "fmt"

/*
	response_errors.go: external error codes returned inside the response
	envelope. 4xxxxx are caller mistakes, 5xxxxx are server faults; the
	first three digits double as the HTTP status the handler sends.
*/

type ResponseError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

const (
	ResponseErrorCodeBadRequest     = 400000
	ResponseErrorCodeValidation     = 422000
	ResponseErrorCodeDuplicateEmail = 400001
	ResponseErrorCodeNotFound       = 404000
	ResponseErrorCodeInternal       = 500000
)

func NewResponseErrorBadRequest() ResponseError {
	return ResponseError{
		Code:    ResponseErrorCodeBadRequest,
		Message: "bad request",
	}
}

func NewResponseErrorValidation(err error) ResponseError {
	return ResponseError{
		Code:    ResponseErrorCodeValidation,
		Message: fmt.Sprintf("validation failed: %v", err),
	}
}

func NewResponseErrorDuplicateEmail(email string) ResponseError {
	return ResponseError{
		Code:    ResponseErrorCodeDuplicateEmail,
		Message: fmt.Sprintf("candidate with email %s already exists", email),
	}
}

func NewResponseErrorNotFound(entity string) ResponseError {
	return ResponseError{
		Code:    ResponseErrorCodeNotFound,
		Message: entity + " not found",
	}
}

func NewResponseErrorInternal() ResponseError {
	return ResponseError{
		Code:    ResponseErrorCodeInternal,
		Message: "internal server error",
	}
}

// HTTPStatus derives the HTTP status from the leading digits of the code.
func (e ResponseError) HTTPStatus() int {
	return e.Code / 1000
}
