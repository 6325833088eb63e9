package share

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// DefaultText is shared when the caller gives none.
const DefaultText = "支持臺北市立大學募款計畫，一起點亮教育的未來！"

type Platform string

const (
	Facebook Platform = "facebook"
	Twitter  Platform = "twitter"
	Line     Platform = "line"
)

// Platforms lists the supported networks in display order.
func Platforms() []Platform {
	return []Platform{Facebook, Twitter, Line}
}

// Links maps each platform to its share URL.
type Links map[Platform]string

// URL returns the share dialog URL of p for pageURL. An empty text is
// replaced with DefaultText.
func URL(p Platform, pageURL, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		text = DefaultText
	}
	u, t := escape(pageURL), escape(text)

	switch p {
	case Facebook:
		return "https://www.facebook.com/sharer/sharer.php?u=" + u + "&quote=" + t, nil
	case Twitter:
		return "https://twitter.com/intent/tweet?url=" + u + "&text=" + t, nil
	case Line:
		return "https://social-plugins.line.me/lineit/share?url=" + u + "&text=" + t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPlatform, p)
	}
}

// All returns the share URLs of every platform.
func All(pageURL, text string) Links {
	links := make(Links, 3)
	for _, p := range Platforms() {
		links[p], _ = URL(p, pageURL, text)
	}
	return links
}

// ProjectURL points the public site at a project, preselecting amount when it
// is positive. Query parameters already on base are kept.
func ProjectURL(base, projectID string, amount int64) (string, error) {
	if strings.TrimSpace(projectID) == "" {
		return "", ErrInvalidProjectID
	}
	u, err := url.Parse(strings.TrimSpace(base))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidBaseURL, base)
	}
	if u.Path == "" {
		u.Path = "/"
	}

	q := u.Query()
	q.Set("project", projectID)
	if amount > 0 {
		q.Set("amount", strconv.FormatInt(amount, 10))
	}
	u.RawQuery = q.Encode()
	u.Fragment, u.RawFragment = "", ""
	return u.String(), nil
}

// escape is url.QueryEscape with spaces as %20 instead of +. It escapes more
// than encodeURIComponent does (!'()*~ included); every platform decodes both.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
