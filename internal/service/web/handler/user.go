package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/qiniu/x/xlog"
	"gopkg.in/mgo.v2/bson"

	"github.com/solutions/recruit-cube/internal/common/utils"
	"github.com/solutions/recruit-cube/internal/protodef/model"
	"github.com/solutions/recruit-cube/internal/service/db"
	"github.com/solutions/recruit-cube/internal/service/web/middleware"
)

type UserApiHandler struct {
	User UserInterface
}

type UserInterface interface {
	ListUsers(xl *xlog.Logger, skip, limit int) ([]model.UserDo, error)
	GetUserByID(xl *xlog.Logger, id string) (*model.UserDo, error)
	CreateUser(xl *xlog.Logger, user *model.UserDo) (*model.UserDo, error)
	UpdateUser(xl *xlog.Logger, id string, fields bson.M) (*model.UserDo, error)
	DeleteUser(xl *xlog.Logger, id string) error
}

func NewUserApiHandler(conf *utils.Config) *UserApiHandler {
	h := new(UserApiHandler)
	userService, err := db.NewUserService(*conf.Mongo, nil)
	if err != nil {
		panic(err)
	}
	h.User = userService
	return h
}

// UserArgs create/update body for users.
type UserArgs struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Phone     string `json:"phone"`
	Active    *bool  `json:"active"`
	AvatarURL string `json:"avatarUrl"`
}

func (h *UserApiHandler) ListUsers(c *gin.Context) {
	xl, requestID := requestContext(c)
	skip, limit := middleware.PageInfo(c)
	users, err := h.User.ListUsers(xl, skip, limit)
	if err != nil {
		sendServiceError(c, requestID, err)
		return
	}
	model.NewSuccessResponse(users).WithRequestID(requestID).Send(c)
}

func (h *UserApiHandler) GetUser(c *gin.Context) {
	xl, requestID := requestContext(c)
	user, err := h.User.GetUserByID(xl, c.Param("userId"))
	if err != nil {
		sendServiceError(c, requestID, err)
		return
	}
	model.NewSuccessResponse(user).WithRequestID(requestID).Send(c)
}

func (h *UserApiHandler) CreateUser(c *gin.Context) {
	xl, requestID := requestContext(c)
	args := UserArgs{}
	if err := c.ShouldBindJSON(&args); err != nil || args.Email == "" || args.Name == "" {
		xl.Infof("bad user body, error %v", err)
		responseErr := model.NewResponseErrorBadRequest()
		model.NewFailResponse(responseErr).WithRequestID(requestID).SendStatus(c, responseErr.HTTPStatus())
		return
	}
	user := &model.UserDo{
		Email:     args.Email,
		Name:      args.Name,
		Role:      args.Role,
		Phone:     args.Phone,
		Active:    args.Active == nil || *args.Active,
		AvatarURL: args.AvatarURL,
	}
	created, err := h.User.CreateUser(xl, user)
	if err != nil {
		sendServiceError(c, requestID, err)
		return
	}
	model.NewSuccessResponse(created).WithRequestID(requestID).SendStatus(c, http.StatusCreated)
}

func (h *UserApiHandler) UpdateUser(c *gin.Context) {
	xl, requestID := requestContext(c)
	args := UserArgs{}
	if err := c.ShouldBindJSON(&args); err != nil {
		xl.Infof("bad user body, error %v", err)
		responseErr := model.NewResponseErrorBadRequest()
		model.NewFailResponse(responseErr).WithRequestID(requestID).SendStatus(c, responseErr.HTTPStatus())
		return
	}
	fields := bson.M{}
	if args.Email != "" {
		fields["email"] = args.Email
	}
	if args.Name != "" {
		fields["name"] = args.Name
	}
	if args.Role != "" {
		fields["role"] = args.Role
	}
	if args.Phone != "" {
		fields["phone"] = args.Phone
	}
	if args.Active != nil {
		fields["active"] = *args.Active
	}
	if args.AvatarURL != "" {
		fields["avatarUrl"] = args.AvatarURL
	}
	updated, err := h.User.UpdateUser(xl, c.Param("userId"), fields)
	if err != nil {
		sendServiceError(c, requestID, err)
		return
	}
	model.NewSuccessResponse(updated).WithRequestID(requestID).Send(c)
}

func (h *UserApiHandler) DeleteUser(c *gin.Context) {
	xl, requestID := requestContext(c)
	if err := h.User.DeleteUser(xl, c.Param("userId")); err != nil {
		sendServiceError(c, requestID, err)
		return
	}
	model.NewSuccessResponse(nil).WithRequestID(requestID).SendStatus(c, http.StatusNoContent)
}
