package task

import (
	"time"

	"github.com/qiniu/x/log"
	"gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"

	"github.com/solutions/recruit-cube/internal/common/utils"
	"github.com/solutions/recruit-cube/internal/service/db"
	"github.com/solutions/recruit-cube/internal/service/db/dao"
)

// ReconcileTask recomputes the denormalized applicants and interviews
// counters of every job from the source collections. The request path
// keeps the counters with $inc; this task repairs any drift left behind
// by failed writes or cascaded deletes.
type ReconcileTask struct {
	mongoClient   *mgo.Session
	jobService    *db.JobService
	candidateColl *mgo.Collection
	interviewColl *mgo.Collection
}

func NewReconcileTask(mongoURI string, database string) (*ReconcileTask, error) {
	jobService, err := db.NewJobService(utils.MongoConfig{URI: mongoURI, Database: database}, nil)
	if err != nil {
		return nil, err
	}
	mongoClient, err := mgo.Dial(mongoURI)
	if err != nil {
		log.Errorf("failed to create mongo client, error %v", err)
		return nil, err
	}
	d := mongoClient.DB(database)
	return &ReconcileTask{
		mongoClient:   mongoClient,
		jobService:    jobService,
		candidateColl: d.C(dao.CandidateCollection),
		interviewColl: d.C(dao.InterviewCollection),
	}, nil
}

// TaskForReconcileJobCounters runs from the scheduler. It walks every
// job and overwrites drifted counters with fresh counts.
func (t *ReconcileTask) TaskForReconcileJobCounters() {
	log.Infof("taskForReconcileJobCounters run at %s", time.Now().String())

	jobs, err := t.jobService.JobCounters(nil)
	if err != nil {
		log.Errorf("TaskForReconcileJobCounters list jobs, error: %v", err)
		return
	}
	repaired := 0
	for _, job := range jobs {
		applicants, err := t.candidateColl.Find(bson.M{"jobId": job.ID}).Count()
		if err != nil {
			log.Errorf("TaskForReconcileJobCounters count candidates of job %s, error: %v", job.ID, err)
			continue
		}
		interviews, err := t.interviewColl.Find(bson.M{"jobId": job.ID}).Count()
		if err != nil {
			log.Errorf("TaskForReconcileJobCounters count interviews of job %s, error: %v", job.ID, err)
			continue
		}
		if applicants == job.Applicants && interviews == job.Interviews {
			continue
		}
		if err := t.jobService.RecountJobCounters(nil, job.ID, applicants, interviews); err != nil {
			log.Errorf("TaskForReconcileJobCounters repair job %s, error: %v", job.ID, err)
			continue
		}
		log.Infof("TaskForReconcileJobCounters repaired job %s, applicants %d->%d, interviews %d->%d",
			job.ID, job.Applicants, applicants, job.Interviews, interviews)
		repaired++
	}
	if repaired > 0 {
		log.Infof("taskForReconcileJobCounters repaired %d jobs", repaired)
	}
}
