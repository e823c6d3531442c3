// Package version provides build and version information for the platform
// stack service.
package version

// AppName identifies the service in status responses and log lines.
const AppName = "kubernetes-platform-stack"

// Version is the current release version of the service.
// This can be overridden at build time using:
//
//	go build -ldflags "-X github.com/vietcgi/kubernetes-platform-stack/pkg/version.Version=x.y.z"
var Version = "1.0.0"
