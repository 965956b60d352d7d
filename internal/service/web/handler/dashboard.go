package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/qiniu/x/xlog"

	"github.com/solutions/recruit-cube/internal/common/utils"
	"github.com/solutions/recruit-cube/internal/protodef/model"
	"github.com/solutions/recruit-cube/internal/service/db"
)

type DashboardApiHandler struct {
	Dashboard DashboardInterface
}

type DashboardInterface interface {
	ComputeSummaryStats(xl *xlog.Logger, rangeName string, now time.Time) (*model.SummaryStatsResponse, error)
	JobsByDepartment(xl *xlog.Logger, rangeName string, now time.Time) ([]model.DepartmentCountResponse, error)
	HiringFunnel(xl *xlog.Logger, rangeName string, now time.Time) ([]model.FunnelStageResponse, error)
	RecentApplications(xl *xlog.Logger, rangeName string, now time.Time) ([]model.RecentApplicationResponse, error)
	UpcomingInterviews(xl *xlog.Logger, days, limit int, now time.Time) ([]model.UpcomingInterviewResponse, error)
	RecentActivity(xl *xlog.Logger, limit int) ([]model.ActivityResponse, error)
	ApplicationTrend(xl *xlog.Logger, rangeName string, now time.Time) ([]model.TrendPointResponse, error)
}

func NewDashboardApiHandler(conf *utils.Config) *DashboardApiHandler {
	h := new(DashboardApiHandler)
	dashboardService, err := db.NewDashboardService(conf, nil)
	if err != nil {
		panic(err)
	}
	h.Dashboard = dashboardService
	return h
}

// timeRange reads the shared time range query arg, defaulting to month.
// Both time_range and timeRange spellings are accepted.
func timeRange(c *gin.Context) string {
	if v := c.Query("time_range"); v != "" {
		return v
	}
	return c.DefaultQuery("timeRange", db.RangeMonth)
}

func (h *DashboardApiHandler) GetStats(c *gin.Context) {
	xl, requestID := requestContext(c)
	stats, err := h.Dashboard.ComputeSummaryStats(xl, timeRange(c), time.Now())
	if err != nil {
		sendServiceError(c, requestID, err)
		return
	}
	model.NewSuccessResponse(stats).WithRequestID(requestID).Send(c)
}

func (h *DashboardApiHandler) GetJobsByDepartment(c *gin.Context) {
	xl, requestID := requestContext(c)
	rows, err := h.Dashboard.JobsByDepartment(xl, timeRange(c), time.Now())
	if err != nil {
		sendServiceError(c, requestID, err)
		return
	}
	model.NewSuccessResponse(rows).WithRequestID(requestID).Send(c)
}

func (h *DashboardApiHandler) GetHiringFunnel(c *gin.Context) {
	xl, requestID := requestContext(c)
	funnel, err := h.Dashboard.HiringFunnel(xl, timeRange(c), time.Now())
	if err != nil {
		sendServiceError(c, requestID, err)
		return
	}
	model.NewSuccessResponse(funnel).WithRequestID(requestID).Send(c)
}

func (h *DashboardApiHandler) GetRecentApplications(c *gin.Context) {
	xl, requestID := requestContext(c)
	rows, err := h.Dashboard.RecentApplications(xl, timeRange(c), time.Now())
	if err != nil {
		sendServiceError(c, requestID, err)
		return
	}
	model.NewSuccessResponse(rows).WithRequestID(requestID).Send(c)
}

func (h *DashboardApiHandler) GetUpcomingInterviews(c *gin.Context) {
	xl, requestID := requestContext(c)
	days, _ := strconv.Atoi(c.DefaultQuery("days", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	rows, err := h.Dashboard.UpcomingInterviews(xl, days, limit, time.Now())
	if err != nil {
		sendServiceError(c, requestID, err)
		return
	}
	model.NewSuccessResponse(rows).WithRequestID(requestID).Send(c)
}

func (h *DashboardApiHandler) GetRecentActivity(c *gin.Context) {
	xl, requestID := requestContext(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	feed, err := h.Dashboard.RecentActivity(xl, limit)
	if err != nil {
		sendServiceError(c, requestID, err)
		return
	}
	model.NewSuccessResponse(feed).WithRequestID(requestID).Send(c)
}

func (h *DashboardApiHandler) GetApplicationTrend(c *gin.Context) {
	xl, requestID := requestContext(c)
	points, err := h.Dashboard.ApplicationTrend(xl, timeRange(c), time.Now())
	if err != nil {
		sendServiceError(c, requestID, err)
		return
	}
	model.NewSuccessResponse(points).WithRequestID(requestID).Send(c)
}
