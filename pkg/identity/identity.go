// Package identity resolves author identities. The author email is the
// stable key; display names are noisy (capitalization, initials, full vs
// short forms) and are collapsed to one canonical string per email.
package identity

// Resolver maps author emails to a canonical display name.
// Record overwrites, so with newest-first commit input the name on the
// oldest recorded commit wins. One string per email across all output rows.
type Resolver struct {
	names map[string]string
}

// NewResolver creates an empty Resolver.
func NewResolver() *Resolver {
	return &Resolver{names: make(map[string]string)}
}

// Record registers a display name for an email. Empty emails are ignored.
func (r *Resolver) Record(name, email string) {
	if email == "" {
		return
	}

	r.names[email] = name
}

// Name returns the canonical display name for an email,
// or the email itself when the email was never recorded.
func (r *Resolver) Name(email string) string {
	if name, ok := r.names[email]; ok && name != "" {
		return name
	}

	return email
}

// Len returns the number of distinct emails recorded.
func (r *Resolver) Len() int {
	return len(r.names)
}
