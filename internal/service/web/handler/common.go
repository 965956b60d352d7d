package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/qiniu/x/xlog"

	"github.com/solutions/recruit-cube/internal/protodef/errors"
	"github.com/solutions/recruit-cube/internal/protodef/model"
)

// requestContext pulls the per-request logger and id set by the router.
func requestContext(c *gin.Context) (*xlog.Logger, string) {
	xl := c.MustGet(model.XLogKey).(*xlog.Logger)
	return xl, c.Request.Header.Get(model.RequestIDHeader)
}

// sendServiceError maps internal error codes onto the external error
// taxonomy and the matching HTTP status.
func sendServiceError(c *gin.Context, requestID string, err error) {
	serverErr, ok := err.(*errors.ServerError)
	if !ok {
		responseErr := model.NewResponseErrorInternal()
		model.NewFailResponse(responseErr).WithRequestID(requestID).SendStatus(c, responseErr.HTTPStatus())
		return
	}
	var responseErr model.ResponseError
	switch serverErr.Code {
	case errors.ServerErrorCandidateNotFound:
		responseErr = model.NewResponseErrorNotFound("candidate")
	case errors.ServerErrorJobNotFound:
		responseErr = model.NewResponseErrorNotFound("job")
	case errors.ServerErrorInterviewNotFound:
		responseErr = model.NewResponseErrorNotFound("interview")
	case errors.ServerErrorUserNotFound:
		responseErr = model.NewResponseErrorNotFound("user")
	case errors.ServerErrorDuplicateEmail:
		responseErr = model.NewResponseErrorDuplicateEmail("")
		responseErr.Message = serverErr.Summary
	default:
		responseErr = model.NewResponseErrorInternal()
	}
	model.NewFailResponse(responseErr).WithRequestID(requestID).SendStatus(c, responseErr.HTTPStatus())
}
