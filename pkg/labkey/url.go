package labkey

import (
	"strings"
)

// buildURL composes the absolute URL for an API action from the server
// base URL, controller name, container path, and action name. Every
// segment is normalized to carry no leading slash and exactly one
// trailing slash; the action stays bare. The trailing "?" matches the
// form the server conventionally receives.
func buildURL(baseURL, controller, containerPath, action string) string {
	return normalizeSegment(baseURL) + normalizeSegment(controller) + normalizeSegment(containerPath) + action + "?"
}

// normalizeSegment strips leading slashes and ensures exactly one
// trailing slash. Interior slashes (nested container paths) are kept.
func normalizeSegment(s string) string {
	s = strings.TrimLeft(s, "/")
	s = strings.TrimRight(s, "/")
	return s + "/"
}
