package specfold

import "fmt"

// version is stamped in at release time via -ldflags; builds from
// source report "dev".
var version = "dev"

// Version reports the build's release version.
func Version() string {
	return version
}

// UserAgent identifies specfold on outbound requests, such as remote
// reference fetches.
func UserAgent() string {
	return fmt.Sprintf("specfold/%s", version)
}
