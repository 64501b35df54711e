package log

import (
	"fmt"

	"github.com/oqtopus-team/oqtopus-qae/core"
	"go.uber.org/zap"
)

// LogVersion is the single place the resolved version is logged.
func LogVersion() {
	zap.L().Info(fmt.Sprintf("qae version:%s/source:%s", core.Version, core.VersionSource))
}
