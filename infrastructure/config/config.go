package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/btcsuite/btcutil"
	"github.com/kaspanet/kaspadns/infrastructure/logger"
	"github.com/pkg/errors"
)

const (
	defaultLogLevel     = "info"
	defaultLogDirname   = "logs"
	defaultDataDirname  = "data"
	defaultErrLogSuffix = "_err.log"
	defaultLogSuffix    = ".log"
)

// DefaultAppDir is the default home directory for kaspadns tools
var DefaultAppDir = btcutil.AppDataDir("kaspadns", false)

// AppFlags holds the flags shared by the command line tools: where to keep
// data and logs, and how much to log.
type AppFlags struct {
	AppDir   string `long:"appdir" short:"b" description:"Directory to store data and logs"`
	LogDir   string `long:"logdir" description:"Directory to log output"`
	LogLevel string `long:"loglevel" short:"d" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems"`
}

// DefaultAppFlags returns the AppFlags every tool starts from before
// parsing its command line
func DefaultAppFlags() AppFlags {
	return AppFlags{
		AppDir:   DefaultAppDir,
		LogLevel: defaultLogLevel,
	}
}

// ResolveAppFlags cleans the configured directories. The log directory
// defaults to a "logs" directory under the app directory.
func (appFlags *AppFlags) ResolveAppFlags() error {
	if appFlags.AppDir == "" {
		appFlags.AppDir = DefaultAppDir
	}
	appFlags.AppDir = cleanAndExpandPath(appFlags.AppDir)

	if appFlags.LogDir == "" {
		appFlags.LogDir = filepath.Join(appFlags.AppDir, defaultLogDirname)
	}
	appFlags.LogDir = cleanAndExpandPath(appFlags.LogDir)

	if appFlags.LogLevel == "" {
		appFlags.LogLevel = defaultLogLevel
	}
	isPerSubsystem := strings.ContainsAny(appFlags.LogLevel, ",=")
	if !isPerSubsystem && !logger.ValidLogLevel(appFlags.LogLevel) {
		return errors.Errorf("the specified log level [%s] is invalid", appFlags.LogLevel)
	}
	return nil
}

// DataDir returns the directory in which the network named netName keeps
// its database
func (appFlags *AppFlags) DataDir(netName string) string {
	return filepath.Join(appFlags.AppDir, defaultDataDirname, netName)
}

// InitLog starts logging to rotating files in the log directory, named
// after appName, and applies the configured log levels
func (appFlags *AppFlags) InitLog(appName string) error {
	err := os.MkdirAll(appFlags.LogDir, 0700)
	if err != nil {
		return errors.Wrapf(err, "couldn't create log directory %s", appFlags.LogDir)
	}

	logFile := filepath.Join(appFlags.LogDir, appName+defaultLogSuffix)
	errLogFile := filepath.Join(appFlags.LogDir, appName+defaultErrLogSuffix)
	logger.InitLog(logFile, errLogFile)

	return logger.ParseAndSetLogLevels(appFlags.LogLevel)
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// Expand initial ~ to OS specific home directory.
	if strings.HasPrefix(path, "~") {
		homeDir := filepath.Dir(DefaultAppDir)
		path = strings.Replace(path, "~", homeDir, 1)
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but they variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}
