package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMapAnnotation_Strings verifies string-list reads, including mismatched
// member shapes reading as absent.
func TestMapAnnotation_Strings(t *testing.T) {
	t.Parallel()

	a := MapAnnotation{
		MemberTypes:     []string{"A", "B"},
		MemberCondition: "Eval",
	}

	assert.Equal(t, []string{"A", "B"}, a.Strings(MemberTypes))
	assert.Nil(t, a.Strings(MemberComponents))
	assert.Nil(t, a.Strings(MemberCondition))
}

// TestMapAnnotation_Annotations verifies nested annotation reads.
func TestMapAnnotation_Annotations(t *testing.T) {
	t.Parallel()

	nested := []Annotation{MapAnnotation{MemberTypes: []string{"A"}}}
	a := MapAnnotation{MemberValue: nested}

	assert.Equal(t, nested, a.Annotations(MemberValue))
	assert.Nil(t, a.Annotations("missing"))
	assert.Nil(t, MapAnnotation{MemberValue: "wrong shape"}.Annotations(MemberValue))
}

// TestMapAnnotation_TypeName verifies type-valued reads; empty and
// mismatched members read as absent.
func TestMapAnnotation_TypeName(t *testing.T) {
	t.Parallel()

	a := MapAnnotation{
		MemberCondition: "Eval",
		"empty":         "",
		MemberTypes:     []string{"A"},
	}

	name, ok := a.TypeName(MemberCondition)
	require.True(t, ok)
	assert.Equal(t, "Eval", name)

	_, ok = a.TypeName("empty")
	assert.False(t, ok)
	_, ok = a.TypeName(MemberTypes)
	assert.False(t, ok)
	_, ok = a.TypeName("missing")
	assert.False(t, ok)
}

// TestMapMetadata_AnnotationsByName verifies repeatable annotation reads.
func TestMapMetadata_AnnotationsByName(t *testing.T) {
	t.Parallel()

	values := []Annotation{MapAnnotation{}, MapAnnotation{}}
	md := MapMetadata{AnnRequires: values}

	assert.Equal(t, values, md.AnnotationsByName(AnnRequires))
	assert.Nil(t, md.AnnotationsByName(AnnRequirements))
}

// TestMapMetadata_Annotation verifies single-value reads collapse to the
// first value.
func TestMapMetadata_Annotation(t *testing.T) {
	t.Parallel()

	first := MapAnnotation{MemberTypes: []string{"A"}}
	md := MapMetadata{AnnRequirements: {first, MapAnnotation{}}}

	got, ok := md.Annotation(AnnRequirements)
	require.True(t, ok)
	assert.Equal(t, Annotation(first), got)

	_, ok = md.Annotation(AnnRequires)
	assert.False(t, ok)
	_, ok = MapMetadata{AnnRequires: {}}.Annotation(AnnRequires)
	assert.False(t, ok)
}

// TestStaticDefinition verifies the fixed-metadata Definition wrapper.
func TestStaticDefinition(t *testing.T) {
	t.Parallel()

	md := MapMetadata{}
	def := StaticDefinition(md)
	assert.Equal(t, Metadata(md), def.Metadata())
}
