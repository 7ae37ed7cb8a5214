package domain

import "strings"

const (
	PageLogin        = "login"
	PageVerifyOTP    = "verify-otp"
	PageRegistration = "register"
	PageLanding      = "index"
	PageOnboarding   = "onboarding"
)

func DefaultPublicPages() []string {
	return []string{PageLogin, PageVerifyOTP, PageRegistration, PageLanding, PageOnboarding}
}

type PageClassifier struct {
	public map[string]struct{}
}

func NewPageClassifier(publicPages []string) PageClassifier {
	if len(publicPages) == 0 {
		publicPages = DefaultPublicPages()
	}

	public := make(map[string]struct{}, len(publicPages))
	for _, page := range publicPages {
		name := PageName(page)
		if name == "" {
			continue
		}
		public[name] = struct{}{}
	}

	return PageClassifier{public: public}
}

// RequiresAuth reports whether the page is outside the public allow-list.
func (c PageClassifier) RequiresAuth(page string) bool {
	_, ok := c.public[PageName(page)]
	return !ok
}

// PageName reduces a location to its last path segment, dropping any query,
// fragment and ".html" suffix.
func PageName(location string) string {
	name := strings.TrimSpace(location)
	if idx := strings.IndexAny(name, "?#"); idx >= 0 {
		name = name[:idx]
	}
	name = strings.TrimRight(name, "/")
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}
	name = strings.TrimSuffix(name, ".html")
	return strings.ToLower(name)
}
