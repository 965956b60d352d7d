package db

import (
	"reflect"
	"testing"

	"gopkg.in/mgo.v2/bson"
)

func TestJobCounterDeltas(t *testing.T) {
	cases := []struct {
		name       string
		applicants int
		interviews int
		want       bson.M
	}{
		// A candidate created with a jobId bumps applicants by one.
		{"candidate create", 1, 0, bson.M{"applicants": 1}},
		// Deleting an interview takes interviews down by exactly one.
		{"interview delete", 0, -1, bson.M{"interviews": -1}},
		// Deleting a candidate with two interviews rolls back both counters.
		{"candidate delete with interviews", -1, -2, bson.M{"applicants": -1, "interviews": -2}},
		{"candidate delete without interviews", -1, 0, bson.M{"applicants": -1}},
		{"no deltas", 0, 0, nil},
	}
	for _, c := range cases {
		got := jobCounterDeltas(c.applicants, c.interviews)
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("%s: jobCounterDeltas(%d, %d) = %v, want %v", c.name, c.applicants, c.interviews, got, c.want)
		}
	}
}
