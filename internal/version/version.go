package version

// Version is overridden at build time with
// -ldflags "-X github.com/taaza-dairy/taaza-cli/internal/version.Version=v1.2.3".
var Version = "dev"

func UserAgent() string {
	return "tz/" + Version
}
