package db

import (
	"github.com/qiniu/x/xlog"
	"gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"

	errors2 "github.com/solutions/recruit-cube/internal/protodef/errors"
)

// JobCounterRow one job's stored counter values.
type JobCounterRow struct {
	ID         string `bson:"_id"`
	Applicants int    `bson:"applicants"`
	Interviews int    `bson:"interviews"`
}

// jobCounterDeltas builds the field-to-delta document for a job's
// applicants and interviews counters. Zero deltas are omitted; both
// zero yields nil.
func jobCounterDeltas(applicants, interviews int) bson.M {
	deltas := bson.M{}
	if applicants != 0 {
		deltas["applicants"] = applicants
	}
	if interviews != 0 {
		deltas["interviews"] = interviews
	}
	if len(deltas) == 0 {
		return nil
	}
	return deltas
}

// incJobCounters applies counter deltas to one job, then floors any
// touched counter a concurrent decrement drove negative.
func incJobCounters(xl *xlog.Logger, jobColl *mgo.Collection, id string, applicants, interviews int) error {
	deltas := jobCounterDeltas(applicants, interviews)
	if deltas == nil {
		return nil
	}
	err := jobColl.Update(bson.M{"_id": id}, bson.M{"$inc": deltas})
	if err == mgo.ErrNotFound {
		return &errors2.ServerError{Code: errors2.ServerErrorJobNotFound, Summary: "job not found"}
	}
	if err != nil {
		xl.Errorf("failed to apply counter deltas %v to job %s, error %v", deltas, id, err)
		return err
	}
	for field := range deltas {
		err := jobColl.Update(bson.M{"_id": id, field: bson.M{"$lt": 0}}, bson.M{"$set": bson.M{field: 0}})
		if err != nil && err != mgo.ErrNotFound {
			xl.Errorf("failed to floor %s of job %s, error %v", field, id, err)
		}
	}
	return nil
}
