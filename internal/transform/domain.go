package transform

import "fmt"

// Domain is a closed set of named values plus an optional synonym table
// mapping alternate raw spellings to a canonical member. Synonym tables
// exist because the same upstream concept is spelled inconsistently across
// distribution cycles (e.g. "GOOD" in one cycle, "G" in another).
type Domain struct {
	name      string
	canonical map[string]struct{}
	synonyms  map[string]string
}

// NewDomain creates a domain. name appears in diagnostics; synonyms may be
// nil. Synonym targets must themselves be members; NewDomain panics
// otherwise, since domains are package-level declarations and a bad table is
// a programming error.
func NewDomain(name string, members []string, synonyms map[string]string) *Domain {
	d := &Domain{
		name:      name,
		canonical: make(map[string]struct{}, len(members)),
		synonyms:  synonyms,
	}
	for _, m := range members {
		d.canonical[m] = struct{}{}
	}
	for syn, target := range synonyms {
		if _, ok := d.canonical[target]; !ok {
			panic(fmt.Sprintf("domain %s: synonym %q targets non-member %q", name, syn, target))
		}
	}
	return d
}

// Name returns the domain's diagnostic name.
func (d *Domain) Name() string { return d.name }

// Resolve maps a raw spelling to its canonical member: exact match first,
// then the synonym table, else an UnknownValueError carrying the raw text.
func (d *Domain) Resolve(raw string) (string, error) {
	if _, ok := d.canonical[raw]; ok {
		return raw, nil
	}
	if target, ok := d.synonyms[raw]; ok {
		return target, nil
	}
	return "", &UnknownValueError{Domain: d.name, Raw: raw}
}
