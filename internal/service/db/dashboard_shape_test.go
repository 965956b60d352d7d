package db

import (
	"reflect"
	"testing"
	"time"

	"github.com/solutions/recruit-cube/internal/protodef/model"
)

func TestFillFunnel(t *testing.T) {
	got := FillFunnel(map[string]int{
		"new":   4,
		"hired": 1,
	})
	want := []model.FunnelStageResponse{
		{Stage: "New", Count: 4},
		{Stage: "Screening", Count: 0},
		{Stage: "Interview", Count: 0},
		{Stage: "Offer", Count: 0},
		{Stage: "Hired", Count: 1},
		{Stage: "Rejected", Count: 0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FillFunnel: got %v, want %v", got, want)
	}
}

func TestMergeActivities(t *testing.T) {
	at := func(h int) time.Time { return time.Date(2026, time.September, 1, h, 0, 0, 0, time.UTC) }
	candidates := []model.ActivityResponse{
		{ID: "candidate_a", Timestamp: at(9)},
		{ID: "candidate_b", Timestamp: at(7)},
	}
	interviews := []model.ActivityResponse{
		{ID: "interview_a", Timestamp: at(10)},
	}
	jobs := []model.ActivityResponse{
		{ID: "job_a", Timestamp: at(8)},
	}

	got := MergeActivities(3, candidates, interviews, jobs)
	if len(got) != 3 {
		t.Fatalf("expected 3 activities, got %d", len(got))
	}
	wantOrder := []string{"interview_a", "candidate_a", "job_a"}
	for i, want := range wantOrder {
		if got[i].ID != want {
			t.Errorf("position %d: got %s, want %s", i, got[i].ID, want)
		}
	}
}

func TestBuildTrend(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2026, time.September, d, 12, 0, 0, 0, time.UTC) }
	counts := NewTrendCounts(RangeWeek,
		[]time.Time{day(1), day(1), day(2)},
		[]time.Time{day(2), day(3)},
		[]time.Time{day(1)},
	)
	got := BuildTrend(counts)
	want := []model.TrendPointResponse{
		{Date: "2026-09-01", Applications: 2, Interviews: 0, Offers: 1},
		{Date: "2026-09-02", Applications: 1, Interviews: 1, Offers: 0},
		{Date: "2026-09-03", Applications: 0, Interviews: 1, Offers: 0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BuildTrend: got %v, want %v", got, want)
	}
}

func TestEnrichInterviews(t *testing.T) {
	interviews := []model.InterviewDo{
		{ID: "i1", CandidateID: "c1", JobID: "j1"},
		{ID: "i2", CandidateID: "missing", JobID: "gone"},
	}
	candidates := []model.CandidateDo{{ID: "c1", Name: "Jordan Lee"}}
	jobs := []model.JobDo{{ID: "j1", Title: "Backend Engineer"}}

	got := EnrichInterviews(interviews, candidates, jobs)
	if got[0].CandidateName != "Jordan Lee" || got[0].JobTitle != "Backend Engineer" {
		t.Errorf("joined row wrong: %+v", got[0])
	}
	if got[1].CandidateName != "Unknown Candidate" || got[1].JobTitle != "Unknown Position" {
		t.Errorf("fallback row wrong: %+v", got[1])
	}
	if got[0].ID != "i1" {
		t.Errorf("id not carried: %+v", got[0])
	}
}
