package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/qiniu/x/xlog"

	"github.com/solutions/recruit-cube/internal/common/utils"
	"github.com/solutions/recruit-cube/internal/protodef/model"
	"github.com/solutions/recruit-cube/internal/service/db"
)

type AnalysisApiHandler struct {
	Analysis AnalysisInterface
}

type AnalysisInterface interface {
	OpenJobsWithCandidates(xl *xlog.Logger) ([]model.AnalysisJobResponse, error)
}

func NewAnalysisApiHandler(conf *utils.Config) *AnalysisApiHandler {
	h := new(AnalysisApiHandler)
	analysisService, err := db.NewAnalysisService(conf, nil)
	if err != nil {
		panic(err)
	}
	h.Analysis = analysisService
	return h
}

// GetAnalysisData feeds the scoring flow with every open job and its
// applicants.
func (h *AnalysisApiHandler) GetAnalysisData(c *gin.Context) {
	xl, requestID := requestContext(c)
	rows, err := h.Analysis.OpenJobsWithCandidates(xl)
	if err != nil {
		sendServiceError(c, requestID, err)
		return
	}
	model.NewSuccessResponse(rows).WithRequestID(requestID).Send(c)
}
