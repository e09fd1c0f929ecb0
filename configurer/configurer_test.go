package configurer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeType struct{ name string }

func (t *fakeType) Name() string { return t.name }

// TestStatic_PreservesOrder verifies discovery order follows argument order.
func TestStatic_PreservesOrder(t *testing.T) {
	t.Parallel()

	a := Discovered{Type: &fakeType{name: "A"}}
	b := Discovered{Type: &fakeType{name: "B"}}

	got, err := Static(a, b).Load()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Type.Name())
	assert.Equal(t, "B", got[1].Type.Name())
}

// TestStatic_CopiesSnapshot verifies neither the argument slice nor a
// returned slice can mutate later loads.
func TestStatic_CopiesSnapshot(t *testing.T) {
	t.Parallel()

	args := []Discovered{{Type: &fakeType{name: "A"}}}
	loader := Static(args...)

	args[0] = Discovered{Type: &fakeType{name: "mutated"}}
	first, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, "A", first[0].Type.Name())

	first[0] = Discovered{Type: &fakeType{name: "mutated"}}
	second, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, "A", second[0].Type.Name())
}

// TestLoaderFunc verifies the function adapter.
func TestLoaderFunc(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("discovery broken")
	_, err := LoaderFunc(func() ([]Discovered, error) { return nil, wantErr }).Load()
	assert.ErrorIs(t, err, wantErr)
}

// TestFunc verifies the configurer function adapter.
func TestFunc(t *testing.T) {
	t.Parallel()

	ran := false
	err := Func(func(Context) error {
		ran = true
		return nil
	}).ConfigureReflection(nil)
	require.NoError(t, err)
	assert.True(t, ran)
}
