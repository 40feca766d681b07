package ldb

import "github.com/kaspanet/kaspadns/infrastructure/logger"

var log = logger.RegisterSubSystem("KSDB")
