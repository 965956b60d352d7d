package web

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/qiniu/x/xlog"

	"github.com/solutions/recruit-cube/internal/common/utils"
	"github.com/solutions/recruit-cube/internal/protodef/model"
	"github.com/solutions/recruit-cube/internal/service/web/handler"
	"github.com/solutions/recruit-cube/internal/service/web/middleware"
)

// NewRouter returns the gin router with every API route attached.
func NewRouter(config *utils.Config) (*gin.Engine, error) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware(config.AllowOrigins))

	candidateApiHandler := handler.NewCandidateApiHandler(config)
	jobApiHandler := handler.NewJobApiHandler(config)
	interviewApiHandler := handler.NewInterviewApiHandler(config)
	userApiHandler := handler.NewUserApiHandler(config)
	dashboardApiHandler := handler.NewDashboardApiHandler(config)
	analysisApiHandler := handler.NewAnalysisApiHandler(config)

	router.GET("/health", addRequestID, returnOK)

	v1 := router.Group("/api/v1", addRequestID)
	{
		candidates := v1.Group("/candidates")
		{
			candidates.GET("", middleware.FetchPageInfo, candidateApiHandler.ListCandidates)
			candidates.POST("", candidateApiHandler.CreateCandidate)
			candidates.GET("/:candidateId", candidateApiHandler.GetCandidate)
			candidates.PUT("/:candidateId", candidateApiHandler.UpdateCandidate)
			candidates.PATCH("/:candidateId/status", candidateApiHandler.UpdateCandidateStatus)
			candidates.DELETE("/:candidateId", candidateApiHandler.DeleteCandidate)
			candidates.GET("/:candidateId/interviews", middleware.FetchPageInfo, interviewApiHandler.ListCandidateInterviews)
		}

		jobs := v1.Group("/jobs")
		{
			jobs.GET("", middleware.FetchPageInfo, jobApiHandler.ListJobs)
			jobs.POST("", jobApiHandler.CreateJob)
			jobs.GET("/:jobId", jobApiHandler.GetJob)
			jobs.PUT("/:jobId", jobApiHandler.UpdateJob)
			jobs.PATCH("/:jobId/status", jobApiHandler.UpdateJobStatus)
			jobs.DELETE("/:jobId", jobApiHandler.DeleteJob)
			jobs.GET("/:jobId/candidates", middleware.FetchPageInfo, candidateApiHandler.ListJobCandidates)
		}

		interviews := v1.Group("/interviews")
		{
			interviews.GET("", middleware.FetchPageInfo, interviewApiHandler.ListInterviews)
			interviews.POST("", interviewApiHandler.CreateInterview)
			interviews.GET("/:interviewId", interviewApiHandler.GetInterview)
			interviews.PUT("/:interviewId", interviewApiHandler.UpdateInterview)
			interviews.PATCH("/:interviewId/status", interviewApiHandler.UpdateInterviewStatus)
			interviews.POST("/:interviewId/result", interviewApiHandler.SubmitInterviewResult)
			interviews.DELETE("/:interviewId", interviewApiHandler.DeleteInterview)
		}

		users := v1.Group("/users")
		{
			users.GET("", middleware.FetchPageInfo, userApiHandler.ListUsers)
			users.POST("", userApiHandler.CreateUser)
			users.GET("/:userId", userApiHandler.GetUser)
			users.PUT("/:userId", userApiHandler.UpdateUser)
			users.DELETE("/:userId", userApiHandler.DeleteUser)
		}

		dashboard := v1.Group("/dashboard")
		{
			dashboard.GET("", returnOK)
			dashboard.GET("/stats", dashboardApiHandler.GetStats)
			dashboard.GET("/jobs-by-department", dashboardApiHandler.GetJobsByDepartment)
			dashboard.GET("/hiring-funnel", dashboardApiHandler.GetHiringFunnel)
			dashboard.GET("/recent-applications", dashboardApiHandler.GetRecentApplications)
			dashboard.GET("/upcoming-interviews", dashboardApiHandler.GetUpcomingInterviews)
			dashboard.GET("/recent-activity", dashboardApiHandler.GetRecentActivity)
			dashboard.GET("/application-trend", dashboardApiHandler.GetApplicationTrend)
		}

		v1.GET("/departments/:department/jobs", middleware.FetchPageInfo, jobApiHandler.ListDepartmentJobs)

		v1.GET("/analysis/data", analysisApiHandler.GetAnalysisData)
	}

	router.NoRoute(addRequestID, returnNotFound)

	return router, nil
}

func addRequestID(c *gin.Context) {
	requestID := ""
	if requestID = c.Request.Header.Get(model.RequestIDHeader); requestID == "" {
		requestID = utils.NewReqID()
		c.Request.Header.Set(model.RequestIDHeader, requestID)
	}
	xl := xlog.New(requestID)
	xl.Debugf("request: %s %s", c.Request.Method, c.Request.URL.Path)
	c.Set(model.XLogKey, xl)
	c.Set(model.RequestStartKey, time.Now())
}

func returnOK(c *gin.Context) {
	requestID := c.Request.Header.Get(model.RequestIDHeader)
	model.NewSuccessResponse(gin.H{"status": "ok"}).WithRequestID(requestID).Send(c)
}

func returnNotFound(c *gin.Context) {
	xl := c.MustGet(model.XLogKey).(*xlog.Logger)
	xl.Debugf("%s %s: not found", c.Request.Method, c.Request.URL.Path)
	responseErr := model.NewResponseErrorNotFound("route")
	resp := model.NewFailResponse(responseErr)
	resp.SendStatus(c, http.StatusNotFound)
}

func corsMiddleware(allowOrigins []string) gin.HandlerFunc {
	conf := cors.DefaultConfig()
	if len(allowOrigins) == 0 {
		conf.AllowAllOrigins = true
	} else {
		conf.AllowOrigins = allowOrigins
	}
	conf.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}
	conf.AllowHeaders = []string{"Origin", "Content-Type", "Content-Length", "Accept", "Authorization", model.RequestIDHeader}
	conf.AllowCredentials = len(allowOrigins) > 0
	conf.MaxAge = 12 * time.Hour
	return cors.New(conf)
}
