package form

import (
	"testing"
	"time"
)

func TestCandidateCreateFormValidate(t *testing.T) {
	ok := CandidateCreateForm{
		Name:     "Jordan Lee",
		Email:    "jordan@example.com",
		Position: "Backend Engineer",
		Status:   "New",
	}
	if err := ok.Validate(); err != nil {
		t.Errorf("valid form rejected: %v", err)
	}

	bad := CandidateCreateForm{Name: "x", Email: "not-an-email", Position: "y"}
	if err := bad.Validate(); err == nil {
		t.Error("invalid email accepted")
	}

	badStatus := ok
	badStatus.Status = "limbo"
	if err := badStatus.Validate(); err == nil {
		t.Error("unknown status accepted")
	}
}

func TestJobCreateFormValidate(t *testing.T) {
	ok := JobCreateForm{Title: "SRE", Department: "Infra", Status: "OPEN", SalaryMin: 100, SalaryMax: 200}
	if err := ok.Validate(); err != nil {
		t.Errorf("valid form rejected: %v", err)
	}

	missing := JobCreateForm{Department: "Infra"}
	if err := missing.Validate(); err == nil {
		t.Error("missing title accepted")
	}

	inverted := JobCreateForm{Title: "SRE", Department: "Infra", SalaryMin: 200, SalaryMax: 100}
	if err := inverted.Validate(); err == nil {
		t.Error("salaryMax below salaryMin accepted")
	}
}

func TestInterviewCreateFormValidate(t *testing.T) {
	ok := InterviewCreateForm{
		CandidateID:   "cand1",
		JobID:         "job1",
		ScheduledDate: time.Now().Add(24 * time.Hour),
		Type:          "video",
	}
	if err := ok.Validate(); err != nil {
		t.Errorf("valid form rejected: %v", err)
	}

	missing := InterviewCreateForm{JobID: "job1", ScheduledDate: time.Now()}
	if err := missing.Validate(); err == nil {
		t.Error("missing candidateId accepted")
	}
}

func TestInterviewResultFormValidate(t *testing.T) {
	if err := (InterviewResultForm{Rating: 4.5}).Validate(); err != nil {
		t.Errorf("valid result rejected: %v", err)
	}
	if err := (InterviewResultForm{Rating: 9}).Validate(); err == nil {
		t.Error("rating above 5 accepted")
	}
}

func TestUpdateFormStatusPointer(t *testing.T) {
	legacy := "Hired"
	f := CandidateUpdateForm{Status: &legacy}
	if err := f.Validate(); err != nil {
		t.Errorf("legacy casing rejected: %v", err)
	}

	bogus := "limbo"
	f = CandidateUpdateForm{Status: &bogus}
	if err := f.Validate(); err == nil {
		t.Error("unknown status accepted")
	}
}
