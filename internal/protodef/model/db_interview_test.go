package model

import (
	"reflect"
	"testing"
)

func TestInterviewResult(t *testing.T) {
	cases := []struct {
		name string
		raw  interface{}
		want *InterviewResultDo
	}{
		{name: "missing", raw: nil, want: nil},
		{name: "legacy string", raw: "passed", want: nil},
		{name: "object without rating", raw: map[string]interface{}{"notes": "ok"}, want: nil},
		{name: "non numeric rating", raw: map[string]interface{}{"rating": "good"}, want: nil},
		{
			name: "well formed",
			raw: map[string]interface{}{
				"rating":               4.5,
				"strengths":            []string{"go", "sql"},
				"notes":                "solid",
				"hiringRecommendation": true,
			},
			want: &InterviewResultDo{
				Rating:               4.5,
				Strengths:            []string{"go", "sql"},
				Notes:                "solid",
				HiringRecommendation: true,
			},
		},
	}
	for _, c := range cases {
		do := InterviewDo{RawResult: c.raw}
		got := do.Result()
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("%s: got %+v, want %+v", c.name, got, c.want)
		}
	}
}

func TestStatusNormalization(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"OPEN", "open"},
		{"Open", "open"},
		{" open ", "open"},
		{"New", "new"},
		{"Rescheduled", "rescheduled"},
	}
	for _, c := range cases {
		if got := NormalizeJobStatus(c.in); got != c.want {
			t.Errorf("NormalizeJobStatus(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeInterviewType(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Video", "video"},
		{"ONSITE", "onsite"},
		{" technical ", "technical"},
		{"", ""},
	}
	for _, c := range cases {
		if got := NormalizeInterviewType(c.in); got != c.want {
			t.Errorf("NormalizeInterviewType(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestStatusVariants(t *testing.T) {
	got := CandidateStatusVariants("New")
	want := []string{"new", "NEW", "New"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CandidateStatusVariants: got %v, want %v", got, want)
	}
}
