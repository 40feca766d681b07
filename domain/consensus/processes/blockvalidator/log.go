package blockvalidator

import (
	"github.com/kaspanet/kaspadns/infrastructure/logger"
)

var log = logger.RegisterSubSystem("BDAG")
