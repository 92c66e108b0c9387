// Package sites resolves a page hostname to a known job-site identifier.
// Site identifiers key the hand-verified selector tables in the taxonomy;
// an unrecognized host yields the empty identifier and the site-specific
// strategy stays silent.
package sites

import "strings"

// Context carries the statically known identity of the hosting site.
type Context struct {
	ID   string
	Host string
}

// Known reports whether the site was recognized.
func (c Context) Known() bool {
	return c.ID != ""
}

var hostPatterns = []struct {
	id      string
	pattern string
}{
	{"linkedin", "linkedin.com"},
	{"greenhouse", "greenhouse.io"},
	{"lever", "lever.co"},
	{"workday", "myworkdayjobs.com"},
	{"workday", "workday.com"},
	{"indeed", "indeed.com"},
}

// Resolve maps a hostname to a site context. Matching is suffix-based so
// subdomains (boards.greenhouse.io, jobs.lever.co) resolve correctly.
func Resolve(host string) Context {
	h := strings.ToLower(strings.TrimSpace(host))
	h = strings.TrimPrefix(h, "www.")
	for _, p := range hostPatterns {
		if h == p.pattern || strings.HasSuffix(h, "."+p.pattern) {
			return Context{ID: p.id, Host: h}
		}
	}
	return Context{Host: h}
}
