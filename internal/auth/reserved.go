package auth

// reservedNames are leading path segments of fixed site sections. A user
// registered under one of these would shadow a section page (e.g. a user
// named "admin" would own /admin/...), so registration rejects them and the
// route gate treats them as section names, never as account owners.
var reservedNames = map[string]struct{}{
	"admin":           {},
	"seller":          {},
	"dashboard":       {},
	"profile":         {},
	"orders":          {},
	"addresses":       {},
	"subscriptions":   {},
	"payment-methods": {},
	"wallet":          {},
	"notifications":   {},
	"support":         {},
	"settings":        {},
	"login":           {},
	"register":        {},
	"logout":          {},
	"api":             {},
}

// ReservedUsername reports whether name (after normalization) collides with
// a fixed site section.
func ReservedUsername(name string) bool {
	_, ok := reservedNames[NormalizeUsername(name)]
	return ok
}
