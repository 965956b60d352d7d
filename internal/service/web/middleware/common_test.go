package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/qiniu/x/xlog"

	"github.com/solutions/recruit-cube/internal/protodef/model"
)

func pageContext(t *testing.T, query string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req, err := http.NewRequest(http.MethodGet, "/api/v1/candidates?"+query, nil)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	c.Request = req
	c.Set(model.XLogKey, xlog.New("test"))
	return c
}

func TestFetchPageInfoDefaults(t *testing.T) {
	c := pageContext(t, "")
	FetchPageInfo(c)
	skip, limit := PageInfo(c)
	if skip != 0 || limit != model.DefaultPageLimit {
		t.Fatalf("got skip=%d limit=%d", skip, limit)
	}
}

func TestFetchPageInfoPageArgs(t *testing.T) {
	c := pageContext(t, "pageNum=3&pageSize=20")
	FetchPageInfo(c)
	skip, limit := PageInfo(c)
	if skip != 40 || limit != 20 {
		t.Fatalf("got skip=%d limit=%d", skip, limit)
	}
}

func TestFetchPageInfoDirectArgs(t *testing.T) {
	c := pageContext(t, "skip=15&limit=5")
	FetchPageInfo(c)
	skip, limit := PageInfo(c)
	if skip != 15 || limit != 5 {
		t.Fatalf("got skip=%d limit=%d", skip, limit)
	}
}

func TestFetchPageInfoDirectArgsWinOverPageArgs(t *testing.T) {
	c := pageContext(t, "skip=10&limit=5&pageNum=9&pageSize=50")
	FetchPageInfo(c)
	skip, limit := PageInfo(c)
	if skip != 10 || limit != 5 {
		t.Fatalf("got skip=%d limit=%d", skip, limit)
	}
}

func TestFetchPageInfoClampsLimit(t *testing.T) {
	c := pageContext(t, "skip=0&limit=9999")
	FetchPageInfo(c)
	_, limit := PageInfo(c)
	if limit != model.MaxPageLimit {
		t.Fatalf("got limit=%d, want %d", limit, model.MaxPageLimit)
	}
}

func TestFetchPageInfoBadValues(t *testing.T) {
	c := pageContext(t, "skip=-4&limit=abc")
	FetchPageInfo(c)
	skip, limit := PageInfo(c)
	if skip != 0 || limit != model.DefaultPageLimit {
		t.Fatalf("got skip=%d limit=%d", skip, limit)
	}
}
