package form

import (
	"github.com/qiniu/x/xlog"
)

var defaultLogger = xlog.New("Form Validate")
