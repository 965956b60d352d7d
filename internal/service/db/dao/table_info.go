package dao

const (
	UserCollection      = "users"
	JobCollection       = "jobs"
	CandidateCollection = "candidates"
	InterviewCollection = "interviews"
)
