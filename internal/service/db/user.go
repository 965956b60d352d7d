package db

import (
	"time"

	"github.com/qiniu/x/xlog"
	"gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"

	"github.com/solutions/recruit-cube/internal/common/utils"
	errors2 "github.com/solutions/recruit-cube/internal/protodef/errors"
	"github.com/solutions/recruit-cube/internal/protodef/model"
	"github.com/solutions/recruit-cube/internal/service/db/dao"
)

type UserService struct {
	mongoClient *mgo.Session
	userColl    *mgo.Collection
	xl          *xlog.Logger
}

func NewUserService(conf utils.MongoConfig, xl *xlog.Logger) (*UserService, error) {
	if xl == nil {
		xl = xlog.New("recruit-cube-user")
	}
	mongoClient, err := mgo.Dial(conf.URI)
	if err != nil {
		xl.Errorf("failed to create mongo client, error %v", err)
		return nil, err
	}
	userColl := mongoClient.DB(conf.Database).C(dao.UserCollection)
	return &UserService{
		mongoClient: mongoClient,
		userColl:    userColl,
		xl:          xl,
	}, nil
}

func (s *UserService) ListUsers(xl *xlog.Logger, skip, limit int) ([]model.UserDo, error) {
	if xl == nil {
		xl = s.xl
	}
	users := make([]model.UserDo, 0)
	err := s.userColl.Find(bson.M{}).Sort("-createdAt").Skip(skip).Limit(limit).All(&users)
	if err != nil {
		xl.Errorf("failed to list users, error %v", err)
		return nil, err
	}
	return users, nil
}

func (s *UserService) GetUserByID(xl *xlog.Logger, id string) (*model.UserDo, error) {
	if xl == nil {
		xl = s.xl
	}
	user := new(model.UserDo)
	err := s.userColl.Find(bson.M{"_id": id}).One(user)
	if err == mgo.ErrNotFound {
		return nil, &errors2.ServerError{Code: errors2.ServerErrorUserNotFound, Summary: "user not found"}
	}
	if err != nil {
		xl.Errorf("failed to get user %s, error %v", id, err)
		return nil, err
	}
	return user, nil
}

func (s *UserService) CreateUser(xl *xlog.Logger, user *model.UserDo) (*model.UserDo, error) {
	if xl == nil {
		xl = s.xl
	}
	applyUserDefaults(user, time.Now())
	if err := s.userColl.Insert(user); err != nil {
		xl.Errorf("failed to insert user %s, error %v", user.Email, err)
		return nil, err
	}
	xl.Infof("created user %s with role %s", user.ID, user.Role)
	return user, nil
}

// applyUserDefaults fills the generated id, the default role and the
// timestamps on a new user.
func applyUserDefaults(user *model.UserDo, now time.Time) {
	if user.ID == "" {
		user.ID = utils.GenerateID()
	}
	if user.Role == "" {
		user.Role = model.UserRoleUser
	}
	user.CreatedAt = now
	user.UpdatedAt = now
}

func (s *UserService) UpdateUser(xl *xlog.Logger, id string, fields bson.M) (*model.UserDo, error) {
	if xl == nil {
		xl = s.xl
	}
	if len(fields) > 0 {
		fields["updatedAt"] = time.Now()
		err := s.userColl.Update(bson.M{"_id": id}, bson.M{"$set": fields})
		if err == mgo.ErrNotFound {
			return nil, &errors2.ServerError{Code: errors2.ServerErrorUserNotFound, Summary: "user not found"}
		}
		if err != nil {
			xl.Errorf("failed to update user %s, error %v", id, err)
			return nil, err
		}
	}
	return s.GetUserByID(xl, id)
}

func (s *UserService) DeleteUser(xl *xlog.Logger, id string) error {
	if xl == nil {
		xl = s.xl
	}
	err := s.userColl.Remove(bson.M{"_id": id})
	if err == mgo.ErrNotFound {
		return &errors2.ServerError{Code: errors2.ServerErrorUserNotFound, Summary: "user not found"}
	}
	if err != nil {
		xl.Errorf("failed to delete user %s, error %v", id, err)
	}
	return err
}
