// Package buildinfo identifies the running build in the window title
// and log lines. The fields are stamped at build time, for example:
//
//	go build -ldflags "-X plasma/internal/buildinfo.Version=v0.2.0 \
//	  -X plasma/internal/buildinfo.Commit=$(git rev-parse --short HEAD)"
package buildinfo

var (
	Version = "dev"
	Commit  = "unknown"
)

// Short returns the release version when one was stamped, otherwise the
// commit hash, otherwise "dev".
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}
