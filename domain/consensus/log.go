package consensus

import (
	"github.com/kaspanet/kaspadns/infrastructure/logger"
)

var log = logger.RegisterSubSystem("BDAG")
