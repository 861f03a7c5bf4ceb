package registry

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/vk/sentproc/internal/plugin"
)

func upper() plugin.Plugin { return plugin.Func(strings.ToUpper) }
func lower() plugin.Plugin { return plugin.Func(strings.ToLower) }

// countingPlugin is pointer-typed so instances can be compared by identity.
type countingPlugin struct{ calls int }

func (c *countingPlugin) Process(line string) string {
	c.calls++
	return line
}

func TestRegister_ReturnsInstance(t *testing.T) {
	r := New()
	built := 0

	p, err := r.Register("count", func() plugin.Plugin {
		built++
		return &countingPlugin{}
	})
	require.NoError(t, err)
	require.NotNil(t, p)

	resolved, err := r.Resolve("count")
	require.NoError(t, err)
	assert.Same(t, p.(*countingPlugin), resolved.(*countingPlugin))
	assert.Equal(t, 1, built)

	resolved.Process("abc")
	assert.Equal(t, 1, p.(*countingPlugin).calls)
}

func TestRegister_NameConflict(t *testing.T) {
	r := New()
	_, err := r.Register("case", upper)
	require.NoError(t, err)

	factoryCalled := false
	_, err = r.Register("case", func() plugin.Plugin {
		factoryCalled = true
		return lower()
	})

	require.ErrorIs(t, err, ErrNameConflict)
	var conflict *ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, "case", conflict.Name)
	assert.False(t, factoryCalled, "factory must not run when the name is taken")

	p, err := r.Resolve("case")
	require.NoError(t, err)
	assert.Equal(t, "ABC", p.Process("abc"), "original registration must stay intact")
	assert.Equal(t, 1, r.Len())
}

func TestRegister_InvalidNames(t *testing.T) {
	r := New()
	for _, name := range []string{"", "_helper", "has space", "dot.name"} {
		_, err := r.Register(name, upper)
		assert.ErrorIs(t, err, ErrInvalidName, "name %q", name)
	}
	assert.Zero(t, r.Len())
}

func TestRegister_NilFactory(t *testing.T) {
	r := New()
	_, err := r.Register("nil_factory", nil)
	require.Error(t, err)

	_, err = r.Register("nil_plugin", func() plugin.Plugin { return nil })
	require.Error(t, err)
	assert.Zero(t, r.Len())
}

func TestRegister_AfterSeal(t *testing.T) {
	r := New()
	r.Seal()
	_, err := r.Register("late", upper)
	require.ErrorIs(t, err, ErrSealed)
}

func TestResolve_Unknown(t *testing.T) {
	r := New()
	_, err := r.Resolve("missing")

	require.ErrorIs(t, err, ErrUnknownPlugin)
	var unknown *UnknownPluginError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "missing", unknown.Name)
}

func TestNamesAndDescribe(t *testing.T) {
	r := New()
	r.MustRegister("b", upper)
	r.MustRegister("a", func() plugin.Plugin { return plugin.Described(lower(), "lowercases text") })

	assert.Equal(t, []string{"a", "b"}, r.Names())

	desc, err := r.Describe("a")
	require.NoError(t, err)
	assert.Equal(t, "lowercases text", desc)

	desc, err = r.Describe("b")
	require.NoError(t, err)
	assert.Empty(t, desc)

	_, err = r.Describe("c")
	assert.ErrorIs(t, err, ErrUnknownPlugin)
}

func TestMustRegister_Panics(t *testing.T) {
	r := New()
	r.MustRegister("x", upper)
	assert.Panics(t, func() { r.MustRegister("x", upper) })
}

type moduleFunc func(r *Registry) error

func (f moduleFunc) Register(r *Registry) error { return f(r) }

func TestDiscover_SealsRegistry(t *testing.T) {
	r := New()
	mods := Modules{
		moduleFunc(func(r *Registry) error { _, err := r.Register("upper", upper); return err }),
		moduleFunc(func(r *Registry) error { _, err := r.Register("lower", lower); return err }),
	}

	require.NoError(t, r.Discover(context.Background(), mods))

	assert.True(t, r.Sealed())
	assert.Equal(t, []string{"lower", "upper"}, r.Names())
	assert.ErrorIs(t, r.Discover(context.Background(), mods), ErrSealed)
}

func TestDiscover_StopsOnConflict(t *testing.T) {
	r := New()
	secondRan := false
	mods := Modules{
		moduleFunc(func(r *Registry) error { _, err := r.Register("dup", upper); return err }),
		moduleFunc(func(r *Registry) error { _, err := r.Register("dup", lower); return err }),
		moduleFunc(func(r *Registry) error { secondRan = true; return nil }),
	}

	err := r.Discover(context.Background(), mods)

	require.ErrorIs(t, err, ErrNameConflict)
	assert.Contains(t, err.Error(), "built-in modules")
	assert.False(t, secondRan, "discovery must stop at the first conflict")
	assert.False(t, r.Sealed())
}

func TestRegister_ConflictProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		names := rapid.SliceOfNDistinct(
			rapid.StringMatching(`[a-z][a-z0-9_]{0,12}`), 1, 20, rapid.ID[string],
		).Draw(t, "names")
		r := New()
		for _, name := range names {
			r.MustRegister(name, upper)
		}

		dup := rapid.SampledFrom(names).Draw(t, "dup")
		_, err := r.Register(dup, lower)

		if !errors.Is(err, ErrNameConflict) {
			t.Fatalf("expected name conflict for %q, got %v", dup, err)
		}
		if r.Len() != len(names) {
			t.Fatalf("registry size changed after failed registration: %d != %d", r.Len(), len(names))
		}
		p, err := r.Resolve(dup)
		if err != nil {
			t.Fatalf("resolve %q: %v", dup, err)
		}
		if got := p.Process("abc"); got != "ABC" {
			t.Fatalf("original plugin replaced: got %q", got)
		}
	})
}
