package catalog

import "strings"

// Resolve maps a free-text exercise name (typed by a user, or emitted by
// the AI plan generator, which may drift from catalog spelling) to the
// best matching entry. When nothing reasonable matches it returns the
// catalog's default entry, never an error — workout logging must not be
// blocked by an unknown name.
//
// Resolution is deterministic for a fixed catalog: workout logs snapshot
// the result and are never recomputed, so the same input must resolve the
// same way across process restarts.
func (c *Catalog) Resolve(name string) Entry {
	if e, ok := c.Lookup(name); ok {
		return e
	}
	return c.def
}

// Lookup is like Resolve but reports whether a real catalog match was
// found instead of falling back to the default entry.
//
// Matching tiers, in order: exact case-insensitive name match, then
// normalized-token match (punctuation and plurals ignored), then substring
// containment in either direction. Catalog order breaks ties, which keeps
// the result stable.
func (c *Catalog) Lookup(name string) (Entry, bool) {
	q := strings.TrimSpace(name)
	if q == "" {
		return Entry{}, false
	}

	for _, e := range c.entries {
		if strings.EqualFold(e.Name, q) {
			return e, true
		}
	}

	norm := normalize(q)
	if norm == "" {
		return Entry{}, false
	}
	if i, ok := c.byName[norm]; ok {
		return c.entries[i], true
	}

	for _, e := range c.entries {
		n := normalize(e.Name)
		if strings.Contains(norm, n) || strings.Contains(n, norm) {
			return e, true
		}
	}

	return Entry{}, false
}

// normalize lowercases, strips punctuation, collapses whitespace, and
// singularizes tokens so that e.g. "Barbell Squats!" and "barbell squat"
// compare equal.
func normalize(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}
	tokens := strings.Fields(b.String())
	for i, t := range tokens {
		tokens[i] = singular(t)
	}
	return strings.Join(tokens, " ")
}

// singular strips a trailing plural "s" (but not "ss", so "press" stays
// intact). Crude, but applied to both sides of every comparison it only
// needs to be consistent, not linguistically correct.
func singular(token string) string {
	if len(token) > 3 && strings.HasSuffix(token, "s") && !strings.HasSuffix(token, "ss") {
		return token[:len(token)-1]
	}
	return token
}
