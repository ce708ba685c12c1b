// Package authz holds the role allow-list check used by every guarded
// route. It is a pure predicate: the caller's role either appears in the
// allow-list or the action is denied. There is no role hierarchy — an
// admin is not implicitly an instructor, so allow-lists must enumerate
// every role they accept.
package authz

// IsPermitted reports whether role may perform an action restricted to
// allowed. An empty role (unauthenticated caller) is always denied.
func IsPermitted(role string, allowed ...string) bool {
	if role == "" {
		return false
	}
	for _, candidate := range allowed {
		if role == candidate {
			return true
		}
	}
	return false
}
