// Package buildinfo reports the version of the seekctl and seeksim binaries.
//
// Release builds stamp the package variables:
//
//	go build -ldflags "-X github.com/agenticseek/seekctl/internal/infra/buildinfo.Version=v1.2.0"
//
// Binaries built without stamping fall back to the VCS metadata the Go
// toolchain embeds, so plain go-install builds still report a commit.
package buildinfo
