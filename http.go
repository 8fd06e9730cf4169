package radweb

import "github.com/rohanthewiz/radweb/consts"

// isRequestMethod returns true if the given string is one of the nine
// recognized HTTP methods.
func isRequestMethod(method string) bool {
	switch method {
	case consts.MethodGet, consts.MethodHead, consts.MethodPost, consts.MethodPut,
		consts.MethodDelete, consts.MethodConnect, consts.MethodOptions,
		consts.MethodTrace, consts.MethodPatch:
		return true
	default:
		return false
	}
}

// splitRequestTarget splits a request-line target into its path and raw
// query string, at the first "?". A target with no "?" has no query.
func splitRequestTarget(target string) (path, query string) {
	for i := 0; i < len(target); i++ {
		if target[i] == '?' {
			return target[:i], target[i+1:]
		}
	}
	return target, ""
}
