package core

import "runtime/debug"

// Version is resolved once per command by SetVersion.
var Version string

// VersionSource tells where Version came from: ldflags, conf, module or none.
var VersionSource string

const NoVersion = "no_version_info"

const (
	VersionSourceBuildFlag = "ldflags"
	VersionSourceConf      = "conf"
	VersionSourceModule    = "module"
	VersionSourceNone      = "none"
)

var readBuildInfo = debug.ReadBuildInfo

// SetVersion prefers the -ldflags version, then --version, then the module
// version stamped by `go install`.
func SetVersion(c *Conf, versionByBuildFlag string) {
	Version, VersionSource = resolveVersion(c.Version, versionByBuildFlag)
}

func resolveVersion(confVersion, versionByBuildFlag string) (string, string) {
	if versionByBuildFlag != "" {
		return versionByBuildFlag, VersionSourceBuildFlag
	}
	if confVersion != "" {
		return confVersion, VersionSourceConf
	}
	if info, ok := readBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version, VersionSourceModule
	}
	return NoVersion, VersionSourceNone
}
