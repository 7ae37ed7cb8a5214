package domain

import "fmt"

type CredentialStrategy string

const (
	CredentialHeader         CredentialStrategy = "header"
	CredentialCookieFallback CredentialStrategy = "cookie_fallback"
	CredentialDeviceTagged   CredentialStrategy = "device_tagged"
)

func ParseCredentialStrategy(raw string) (CredentialStrategy, error) {
	strategy := CredentialStrategy(raw)
	switch strategy {
	case CredentialHeader, CredentialCookieFallback, CredentialDeviceTagged:
		return strategy, nil
	case "":
		return CredentialHeader, nil
	default:
		return "", fmt.Errorf("unsupported credential strategy %q", raw)
	}
}

const (
	CredentialKey       = "taaza/authToken"
	LegacyCredentialKey = "taaza/token"
	DeviceIDKey         = "taaza/deviceId"

	AuthCookieName = "authToken"
)
