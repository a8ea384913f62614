package version

// Version is overridden at build time with
// -ldflags "-X github.com/birmacher/ai-agent/version.Version=..."
var Version = "0.1.0"
