package version

// Version is the release tag, overridable at build time via
// -ldflags "-X ggscaf/internal/version.Version=...".
var Version = "0.3.0"
