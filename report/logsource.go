package report

import (
	"regexp"
	"strings"
)

// CatalogSourcePrefix marks log sources that name a catalog resource rather
// than a generic message source such as "Puppet".
const CatalogSourcePrefix = "/Stage"

var (
	propertyTailPattern      = regexp.MustCompile(`/[a-z][a-z0-9_]*$`)
	resourceReferencePattern = regexp.MustCompile(`[^/]+\[[^\[\]]+\]$`)
)

// SourceSet holds the resource references that have log activity.
type SourceSet map[string]struct{}

func (s SourceSet) Add(reference string) {
	s[reference] = struct{}{}
}

func (s SourceSet) Has(reference string) bool {
	_, ok := s[reference]
	return ok
}

func (s SourceSet) Len() int {
	return len(s)
}

// StripPropertyTail removes one trailing property segment, mapping a
// property-level source back to its owning resource:
// "/Stage[main]/Foo/Bar[baz]/ensure" becomes "/Stage[main]/Foo/Bar[baz]".
func StripPropertyTail(source string) string {
	loc := propertyTailPattern.FindStringIndex(source)
	if loc == nil {
		return source
	}
	return source[:loc[0]]
}

// ResourceReference extracts the trailing Type[title] token of source.
func ResourceReference(source string) (string, bool) {
	reference := resourceReferencePattern.FindString(source)
	if reference == "" {
		return "", false
	}
	return reference, true
}

// LogSources collects the resource references named by catalog log sources.
// Sources outside the catalog, or without a trailing reference, are skipped.
func LogSources(logs []Log) SourceSet {
	sources := SourceSet{}
	for _, log := range logs {
		if !strings.HasPrefix(log.Source, CatalogSourcePrefix) {
			continue
		}
		reference, ok := ResourceReference(StripPropertyTail(log.Source))
		if !ok {
			continue
		}
		sources.Add(reference)
	}
	return sources
}
