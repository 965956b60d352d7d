package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/qiniu/x/xlog"
	"gopkg.in/mgo.v2/bson"

	"github.com/solutions/recruit-cube/internal/protodef/errors"
	"github.com/solutions/recruit-cube/internal/protodef/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestContext(method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	var reader *bytes.Reader
	if body != nil {
		buf, _ := json.Marshal(body)
		reader = bytes.NewReader(buf)
	} else {
		reader = bytes.NewReader(nil)
	}
	c.Request = httptest.NewRequest(method, path, reader)
	c.Request.Header.Set("Content-Type", "application/json")
	c.Request.Header.Set(model.RequestIDHeader, "test-req-id")
	c.Set(model.XLogKey, xlog.New("test"))
	return c, recorder
}

func decodeResponse(t *testing.T, recorder *httptest.ResponseRecorder) model.Response {
	t.Helper()
	var resp model.Response
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

type fakeCandidateService struct {
	created    *model.CandidateDo
	statusSet  string
	deletedID  string
	getErr     error
	createErr  error
	candidates []model.CandidateDo
}

func (f *fakeCandidateService) ListCandidates(xl *xlog.Logger, args model.ListQueryArgs, jobID string, skip, limit int) ([]model.CandidateDo, error) {
	return f.candidates, nil
}

func (f *fakeCandidateService) GetCandidateByID(xl *xlog.Logger, id string) (*model.CandidateDo, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return &model.CandidateDo{ID: id, Name: "Jordan Lee"}, nil
}

func (f *fakeCandidateService) CreateCandidate(xl *xlog.Logger, candidate *model.CandidateDo) (*model.CandidateDo, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	candidate.ID = "cand123"
	f.created = candidate
	return candidate, nil
}

func (f *fakeCandidateService) UpdateCandidate(xl *xlog.Logger, id string, fields bson.M) (*model.CandidateDo, error) {
	return &model.CandidateDo{ID: id}, nil
}

func (f *fakeCandidateService) UpdateCandidateStatus(xl *xlog.Logger, id string, status string, extra bson.M) (*model.CandidateDo, error) {
	f.statusSet = status
	return &model.CandidateDo{ID: id, Status: model.NormalizeCandidateStatus(status)}, nil
}

func (f *fakeCandidateService) DeleteCandidate(xl *xlog.Logger, id string) error {
	f.deletedID = id
	return nil
}

func TestCreateCandidateCreated(t *testing.T) {
	fake := &fakeCandidateService{}
	h := &CandidateApiHandler{Candidate: fake}

	c, recorder := newTestContext("POST", "/api/v1/candidates", map[string]interface{}{
		"name":     "Jordan Lee",
		"email":    "jordan@example.com",
		"position": "Backend Engineer",
	})
	h.CreateCandidate(c)

	if recorder.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", recorder.Code, recorder.Body.String())
	}
	if fake.created == nil || fake.created.Email != "jordan@example.com" {
		t.Errorf("service not called with body: %+v", fake.created)
	}
	resp := decodeResponse(t, recorder)
	if resp.RequestID != "test-req-id" {
		t.Errorf("requestId not echoed: %q", resp.RequestID)
	}
}

func TestCreateCandidateValidationFailure(t *testing.T) {
	h := &CandidateApiHandler{Candidate: &fakeCandidateService{}}
	c, recorder := newTestContext("POST", "/api/v1/candidates", map[string]interface{}{
		"name":  "No Position",
		"email": "бад",
	})
	h.CreateCandidate(c)
	if recorder.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", recorder.Code)
	}
}

func TestCreateCandidateDuplicateEmail(t *testing.T) {
	fake := &fakeCandidateService{createErr: &errors.ServerError{
		Code:    errors.ServerErrorDuplicateEmail,
		Summary: "candidate email already exists",
	}}
	h := &CandidateApiHandler{Candidate: fake}
	c, recorder := newTestContext("POST", "/api/v1/candidates", map[string]interface{}{
		"name":     "Jordan Lee",
		"email":    "jordan@example.com",
		"position": "Backend Engineer",
	})
	h.CreateCandidate(c)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", recorder.Code)
	}
	resp := decodeResponse(t, recorder)
	if resp.Code != model.ResponseErrorCodeDuplicateEmail {
		t.Errorf("code = %d, want %d", resp.Code, model.ResponseErrorCodeDuplicateEmail)
	}
}

func TestGetCandidateNotFound(t *testing.T) {
	fake := &fakeCandidateService{getErr: &errors.ServerError{
		Code:    errors.ServerErrorCandidateNotFound,
		Summary: "candidate not found",
	}}
	h := &CandidateApiHandler{Candidate: fake}
	c, recorder := newTestContext("GET", "/api/v1/candidates/nope", nil)
	c.Params = gin.Params{{Key: "candidateId", Value: "nope"}}
	h.GetCandidate(c)
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", recorder.Code)
	}
}

func TestDeleteCandidateNoContent(t *testing.T) {
	fake := &fakeCandidateService{}
	h := &CandidateApiHandler{Candidate: fake}
	c, recorder := newTestContext("DELETE", "/api/v1/candidates/cand1", nil)
	c.Params = gin.Params{{Key: "candidateId", Value: "cand1"}}
	h.DeleteCandidate(c)
	if recorder.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", recorder.Code)
	}
	if fake.deletedID != "cand1" {
		t.Errorf("deleted id = %q", fake.deletedID)
	}
}

func TestUpdateCandidateStatusMissingBody(t *testing.T) {
	h := &CandidateApiHandler{Candidate: &fakeCandidateService{}}
	c, recorder := newTestContext("PATCH", "/api/v1/candidates/cand1/status", map[string]interface{}{})
	c.Params = gin.Params{{Key: "candidateId", Value: "cand1"}}
	h.UpdateCandidateStatus(c)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", recorder.Code)
	}
}

type fakeInterviewService struct {
	result    *model.InterviewResultDo
	createErr error
}

func (f *fakeInterviewService) ListInterviews(xl *xlog.Logger, status, candidateID, jobID string, skip, limit int) ([]model.InterviewResponse, error) {
	return []model.InterviewResponse{}, nil
}

func (f *fakeInterviewService) GetInterviewByID(xl *xlog.Logger, id string) (*model.InterviewDo, error) {
	return &model.InterviewDo{ID: id}, nil
}

func (f *fakeInterviewService) CreateInterview(xl *xlog.Logger, interview *model.InterviewDo) (*model.InterviewDo, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	interview.ID = "int123"
	interview.Status = model.InterviewStatusScheduled
	return interview, nil
}

func (f *fakeInterviewService) UpdateInterview(xl *xlog.Logger, id string, fields bson.M) (*model.InterviewDo, error) {
	return &model.InterviewDo{ID: id}, nil
}

func (f *fakeInterviewService) UpdateInterviewStatus(xl *xlog.Logger, id string, status string) (*model.InterviewDo, error) {
	return &model.InterviewDo{ID: id, Status: model.NormalizeInterviewStatus(status)}, nil
}

func (f *fakeInterviewService) SubmitResult(xl *xlog.Logger, id string, result *model.InterviewResultDo) (*model.InterviewDo, error) {
	f.result = result
	return &model.InterviewDo{ID: id, Status: model.InterviewStatusCompleted, RawResult: result}, nil
}

func (f *fakeInterviewService) DeleteInterview(xl *xlog.Logger, id string) error {
	return nil
}

func TestCreateInterviewCandidateMissing(t *testing.T) {
	fake := &fakeInterviewService{createErr: &errors.ServerError{
		Code:    errors.ServerErrorCandidateNotFound,
		Summary: "candidate not found",
	}}
	h := &InterviewApiHandler{Interview: fake}
	c, recorder := newTestContext("POST", "/api/v1/interviews", map[string]interface{}{
		"candidateId":   "ghost",
		"jobId":         "job1",
		"scheduledDate": time.Now().Add(48 * time.Hour).Format(time.RFC3339),
	})
	h.CreateInterview(c)
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404, body %s", recorder.Code, recorder.Body.String())
	}
}

func TestSubmitInterviewResult(t *testing.T) {
	fake := &fakeInterviewService{}
	h := &InterviewApiHandler{Interview: fake}
	c, recorder := newTestContext("POST", "/api/v1/interviews/int1/result", map[string]interface{}{
		"rating":               4.5,
		"strengths":            []string{"communication"},
		"hiringRecommendation": true,
	})
	c.Params = gin.Params{{Key: "interviewId", Value: "int1"}}
	h.SubmitInterviewResult(c)
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", recorder.Code, recorder.Body.String())
	}
	if fake.result == nil || !fake.result.HiringRecommendation || fake.result.Rating != 4.5 {
		t.Errorf("result not passed through: %+v", fake.result)
	}
}

func TestSubmitInterviewResultOutOfRange(t *testing.T) {
	h := &InterviewApiHandler{Interview: &fakeInterviewService{}}
	c, recorder := newTestContext("POST", "/api/v1/interviews/int1/result", map[string]interface{}{
		"rating": 11,
	})
	c.Params = gin.Params{{Key: "interviewId", Value: "int1"}}
	h.SubmitInterviewResult(c)
	if recorder.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", recorder.Code)
	}
}

type fakeDashboardService struct {
	rangeSeen string
}

func (f *fakeDashboardService) ComputeSummaryStats(xl *xlog.Logger, rangeName string, now time.Time) (*model.SummaryStatsResponse, error) {
	f.rangeSeen = rangeName
	return &model.SummaryStatsResponse{ActiveJobs: 3, ActiveJobsChange: 2}, nil
}

func (f *fakeDashboardService) JobsByDepartment(xl *xlog.Logger, rangeName string, now time.Time) ([]model.DepartmentCountResponse, error) {
	return []model.DepartmentCountResponse{{Department: "Engineering", Count: 2}}, nil
}

func (f *fakeDashboardService) HiringFunnel(xl *xlog.Logger, rangeName string, now time.Time) ([]model.FunnelStageResponse, error) {
	return nil, nil
}

func (f *fakeDashboardService) RecentApplications(xl *xlog.Logger, rangeName string, now time.Time) ([]model.RecentApplicationResponse, error) {
	return nil, nil
}

func (f *fakeDashboardService) UpcomingInterviews(xl *xlog.Logger, days, limit int, now time.Time) ([]model.UpcomingInterviewResponse, error) {
	return nil, nil
}

func (f *fakeDashboardService) RecentActivity(xl *xlog.Logger, limit int) ([]model.ActivityResponse, error) {
	return nil, nil
}

func (f *fakeDashboardService) ApplicationTrend(xl *xlog.Logger, rangeName string, now time.Time) ([]model.TrendPointResponse, error) {
	return nil, nil
}

func TestGetStatsDefaultsToMonth(t *testing.T) {
	fake := &fakeDashboardService{}
	h := &DashboardApiHandler{Dashboard: fake}
	c, recorder := newTestContext("GET", "/api/v1/dashboard/stats", nil)
	h.GetStats(c)
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d", recorder.Code)
	}
	if fake.rangeSeen != "month" {
		t.Errorf("range = %q, want month", fake.rangeSeen)
	}
}

func TestGetStatsPassesRange(t *testing.T) {
	fake := &fakeDashboardService{}
	h := &DashboardApiHandler{Dashboard: fake}
	c, recorder := newTestContext("GET", "/api/v1/dashboard/stats?timeRange=quarter", nil)
	h.GetStats(c)
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d", recorder.Code)
	}
	if fake.rangeSeen != "quarter" {
		t.Errorf("range = %q, want quarter", fake.rangeSeen)
	}
}
