package env

import (
	"os"

	"github.com/openspades/website/internal/core"
)

const DevVar = "OPENSPADES_DEV"

func DetectMode() core.Mode {
	if os.Getenv(DevVar) == "1" {
		return core.ModeDev
	}
	return core.ModeProd
}
