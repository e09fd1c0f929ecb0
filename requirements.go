package svcimage

import "github.com/closedworld/svcimage-go/meta"

// requirement is one availability condition extracted from a candidate's
// metadata. Every referenced name must resolve for the requirement to hold; a
// candidate carries zero or more requirements and all must hold.
type requirement struct {
	typeNames []string
}

// extractRequirements reads the candidate's requirement list. The primary
// annotation takes precedence; the grouping annotation's nested list is
// consulted only when the primary is absent. Extraction is not a pure read:
// each entry's condition evaluator type, when resolvable, is initialized at
// build time here, whether or not the requirement later holds.
func (f *Feature) extractRequirements(md meta.Metadata) []requirement {
	entries := md.AnnotationsByName(meta.AnnRequires)
	if len(entries) == 0 {
		if group, ok := md.Annotation(meta.AnnRequirements); ok {
			entries = group.Annotations(meta.MemberValue)
		}
	}

	reqs := make([]requirement, 0, len(entries))
	for _, entry := range entries {
		types := entry.Strings(meta.MemberTypes)
		components := entry.Strings(meta.MemberComponents)

		names := make([]string, 0, len(types)+len(components))
		names = append(names, types...)
		names = append(names, components...)

		if cond, ok := entry.TypeName(meta.MemberCondition); ok {
			if t, ok := f.img.TypeByName(cond); ok {
				f.img.InitializeAtBuildTime(t)
			}
		}

		reqs = append(reqs, requirement{typeNames: names})
	}
	return reqs
}

// requirementHolds checks the requirement's names in order and stops at the
// first that does not resolve.
func (f *Feature) requirementHolds(r requirement) (ok bool, missing string) {
	for _, name := range r.typeNames {
		if _, found := f.img.TypeByName(name); !found {
			return false, name
		}
	}
	return true, ""
}
