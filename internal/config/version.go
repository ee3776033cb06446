package config

// Version is the application version, overridable at build time via
// -ldflags "-X github.com/rentdesk/rentdesk/internal/config.Version=...".
var Version = "1.0.0-dev"
