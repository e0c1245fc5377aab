package pagefeed

import (
	"net/url"
	"strings"
)

// ResolveLink makes href absolute against the origin of pageURL.
// Absolute links are kept as-is, links starting with "/" are prefixed
// with scheme://host, and any other link is prefixed with scheme://host/.
// A blank href resolves to "".
func ResolveLink(href, pageURL string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	if isAbsolute(href) {
		return href
	}

	origin := pageOrigin(pageURL)
	if strings.HasPrefix(href, "/") {
		return origin + href
	}
	return origin + "/" + href
}

func isAbsolute(href string) bool {
	u, err := url.Parse(href)
	if err != nil {
		lower := strings.ToLower(href)
		return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
	}
	return u.IsAbs()
}

// pageOrigin returns scheme://host for a page URL. The port is kept.
func pageOrigin(pageURL string) string {
	u, err := url.Parse(strings.TrimSpace(pageURL))
	if err != nil || u.Host == "" {
		return strings.TrimRight(pageURL, "/")
	}
	scheme := u.Scheme
	if scheme == "" {
		scheme = "https"
	}
	return scheme + "://" + u.Host
}
