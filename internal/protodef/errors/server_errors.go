package errors

import "encoding/json"

// ServerError internal service errors and abnormal results.
type ServerError struct {
	Code    int    `json:"code"`
	Summary string `json:"summary"`
}

func (e *ServerError) Error() string {
	buf, _ := json.Marshal(e)
	return string(buf)
}

// Internal error codes, 5 digits.
const (
	// 1xxxx: server internal or database access errors.
	ServerErrorCandidateNotFound = 10001
	ServerErrorJobNotFound       = 10002
	ServerErrorInterviewNotFound = 10003
	ServerErrorUserNotFound      = 10004
	ServerErrorDuplicateEmail    = 10005
	ServerErrorMongoOpFail       = 11000
	// 2xxxx: external service errors.
	ServerErrorMailSendFail = 20001
)

// IsNotFound reports whether err carries one of the entity not-found codes.
func IsNotFound(err error) bool {
	serverErr, ok := err.(*ServerError)
	if !ok {
		return false
	}
	switch serverErr.Code {
	case ServerErrorCandidateNotFound, ServerErrorJobNotFound,
		ServerErrorInterviewNotFound, ServerErrorUserNotFound:
		return true
	}
	return false
}
