package version

// Version is overridden at build time with
// -ldflags "-X fastakit/internal/version.Version=...".
var Version = "dev"
