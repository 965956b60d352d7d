package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/qiniu/x/xlog"

	"github.com/solutions/recruit-cube/internal/common/utils"
	"github.com/solutions/recruit-cube/internal/protodef/model"
)

// FetchPageInfo parses pagination query args into skip and limit values
// on the context. Direct skip/limit args win over pageNum/pageSize, and
// bad values fall back to the defaults.
func FetchPageInfo(c *gin.Context) {
	xl := c.MustGet(model.XLogKey).(*xlog.Logger)
	if skipArg, limitArg := c.Query("skip"), c.Query("limit"); skipArg != "" || limitArg != "" {
		skip, err := strconv.Atoi(skipArg)
		if err != nil || skip < 0 {
			skip = 0
		}
		limit, err := strconv.Atoi(limitArg)
		if err != nil || limit < 1 {
			limit = model.DefaultPageLimit
		}
		c.Set(model.SkipContextKey, skip)
		c.Set(model.LimitContextKey, utils.ClampLimit(limit, model.MaxPageLimit))
		return
	}
	pageNumArg := c.DefaultQuery("pageNum", "1")
	pageSizeArg := c.DefaultQuery("pageSize", strconv.Itoa(model.DefaultPageLimit))
	pageNum, err := strconv.Atoi(pageNumArg)
	if err != nil || pageNum < 1 {
		xl.Infof("FetchPageInfo.pageNum transfer int err, use default value %v", err)
		pageNum = 1
	}
	pageSize, err := strconv.Atoi(pageSizeArg)
	if err != nil {
		xl.Infof("FetchPageInfo.pageSize transfer int err, use default value %v", err)
		pageSize = model.DefaultPageLimit
	}
	pageSize = utils.ClampLimit(pageSize, model.MaxPageLimit)
	c.Set(model.SkipContextKey, (pageNum-1)*pageSize)
	c.Set(model.LimitContextKey, pageSize)
}

// PageInfo reads the values FetchPageInfo stored.
func PageInfo(c *gin.Context) (skip, limit int) {
	skip = c.GetInt(model.SkipContextKey)
	limit = c.GetInt(model.LimitContextKey)
	if limit == 0 {
		limit = model.DefaultPageLimit
	}
	return skip, limit
}
