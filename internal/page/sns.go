package page

import "strings"

// IconPrefix selects a built-in platform icon when used in Item.Icon,
// e.g. "sns:instagram".
const IconPrefix = "sns:"

// snsIcons maps platform keys to bundled static icon assets.
var snsIcons = map[string]string{
	"instagram": "/static/icons/instagram.svg",
	"youtube":   "/static/icons/youtube.svg",
	"tiktok":    "/static/icons/tiktok.svg",
	"x":         "/static/icons/x.svg",
	"threads":   "/static/icons/threads.svg",
	"naverclip": "/static/icons/naverclip.svg",
	"facebook":  "/static/icons/facebook.svg",
	"homepage":  "/static/icons/homepage.svg",
	"email":     "/static/icons/email.svg",
	"phone":     "/static/icons/phone.svg",
}

// SNSPlatforms lists the platform keys with a bundled preset icon, for the
// editor's icon picker.
func SNSPlatforms() []string {
	return []string{
		"instagram", "youtube", "tiktok", "x", "threads",
		"naverclip", "facebook", "homepage", "email", "phone",
	}
}

// IconURL resolves an item icon to a servable URL. "sns:<platform>" keys map
// to bundled preset icons, http(s) values are uploaded or external images,
// anything else yields no icon.
func IconURL(icon string) string {
	if key, ok := strings.CutPrefix(icon, IconPrefix); ok {
		return snsIcons[key]
	}

	if strings.HasPrefix(icon, "http://") || strings.HasPrefix(icon, "https://") ||
		strings.HasPrefix(icon, "/uploads/") {
		return icon
	}

	return ""
}
