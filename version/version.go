package version

import (
	"fmt"
	"strings"
	"sync"
)

const (
	appMajor uint = 0
	appMinor uint = 1
	appPatch uint = 0
)

// buildMetadataCharacters are the characters allowed in appBuild
const buildMetadataCharacters = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-"

// appBuild may be set at link time:
// -ldflags "-X github.com/kaspanet/kaspadns/version.appBuild=foo"
var appBuild string

var (
	version     string
	versionOnce sync.Once
)

// Version returns the semantic version of kaspadns binaries, with the build
// metadata appended when it is well formed
func Version() string {
	versionOnce.Do(func() {
		version = formatVersion(appBuild)
	})
	return version
}

func formatVersion(build string) string {
	core := fmt.Sprintf("%d.%d.%d", appMajor, appMinor, appPatch)
	if build == "" || !isValidBuildMetadata(build) {
		return core
	}
	return core + "-" + build
}

func isValidBuildMetadata(build string) bool {
	for _, r := range build {
		if !strings.ContainsRune(buildMetadataCharacters, r) {
			return false
		}
	}
	return true
}
