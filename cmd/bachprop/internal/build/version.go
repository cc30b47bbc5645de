// Package build carries the version metadata stamped into release
// binaries. Development builds report the zero values below; release
// builds overwrite them at link time:
//
//	go build -ldflags "\
//	  -X github.com/kimberly-brown/bach-propagation/cmd/bachprop/internal/build.Version=v1.0.0 \
//	  -X github.com/kimberly-brown/bach-propagation/cmd/bachprop/internal/build.Commit=$(git rev-parse --short HEAD) \
//	  -X github.com/kimberly-brown/bach-propagation/cmd/bachprop/internal/build.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package build

import (
	"fmt"
	"runtime"
)

// Overwritten by -ldflags -X on release builds.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// String formats the stamped metadata as a one-line version report.
func String() string {
	return fmt.Sprintf("bachprop %s (%s) built %s %s/%s",
		Version, Commit, Date, runtime.GOOS, runtime.GOARCH)
}
