package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lockcmp/internal/core/domain"
	"go.trai.ch/zerr"
)

// mkpkg builds a package from a "name@version" ref and name-only dependency
// matchers.
func mkpkg(ref string, deps ...string) domain.Package {
	name, version := splitRef(ref)
	p := domain.Package{
		Name:    domain.NewInternedString(name),
		Version: version,
	}
	for _, d := range deps {
		dn, dv := splitRef(d)
		p.Dependencies = append(p.Dependencies, domain.Dependency{
			Name:    domain.NewInternedString(dn),
			Version: dv,
		})
	}
	return p
}

func splitRef(ref string) (name, version string) {
	for i := 0; i < len(ref); i++ {
		if ref[i] == '@' {
			return ref[:i], ref[i+1:]
		}
	}
	return ref, ""
}

func mklockfile(packages ...domain.Package) *domain.Lockfile {
	return &domain.Lockfile{Source: "test.lock", Packages: packages}
}

func TestBuildUniverse_Unrooted(t *testing.T) {
	lf := mklockfile(
		mkpkg("app@0.1.0", "serde", "log"),
		mkpkg("serde@1.0.197"),
		mkpkg("log@0.4.20"),
	)

	u, err := domain.BuildUniverse(lf, domain.NewSpec("test.lock"), domain.PhaseNameOnly, nil)
	require.NoError(t, err)

	assert.Equal(t, 3, u.Len())
	assert.Equal(t, []string{"app", "log", "serde"}, u.Names())
}

func TestBuildUniverse_UnrootedExclusion(t *testing.T) {
	lf := mklockfile(
		mkpkg("app@0.1.0", "serde"),
		mkpkg("serde@1.0.197"),
	)
	spec := domain.NewSpec("test.lock")
	spec.Exclude("serde")

	u, err := domain.BuildUniverse(lf, spec, domain.PhaseNameOnly, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"app"}, u.Names())
}

func TestBuildUniverse_RootScoping(t *testing.T) {
	// app -> serde -> serde_derive; log is unreachable from app's tree.
	lf := mklockfile(
		mkpkg("app@0.1.0", "serde"),
		mkpkg("serde@1.0.197", "serde_derive"),
		mkpkg("serde_derive@1.0.197"),
		mkpkg("log@0.4.20"),
	)
	spec := domain.NewSpec("test.lock")
	spec.RootName = "app"

	u, err := domain.BuildUniverse(lf, spec, domain.PhaseNameOnly, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"app", "serde", "serde_derive"}, u.Names())
}

func TestBuildUniverse_RootPathTracking(t *testing.T) {
	lf := mklockfile(
		mkpkg("app@0.1.0", "serde"),
		mkpkg("serde@1.0.197", "serde_derive"),
		mkpkg("serde_derive@1.0.197"),
	)
	spec := domain.NewSpec("test.lock")
	spec.RootName = "app"

	u, err := domain.BuildUniverse(lf, spec, domain.PhaseNameOnly, nil)
	require.NoError(t, err)

	b, ok := u.Lookup("serde_derive")
	require.True(t, ok)
	assert.Equal(t, "app@0.1.0 -> serde@1.0.197 -> serde_derive@1.0.197", domain.PathString(b.Path))

	root, ok := u.Lookup("app")
	require.True(t, ok)
	assert.Equal(t, "app@0.1.0", domain.PathString(root.Path))
}

func TestBuildUniverse_RootByHash(t *testing.T) {
	checksummed := mkpkg("app@0.1.0", "serde")
	checksummed.Checksum = "deadbeef"
	pinned := mkpkg("vendored@0.2.0")
	pinned.Source = "git+https://github.com/example/vendored#abc123"

	lf := mklockfile(checksummed, mkpkg("serde@1.0.197"), pinned)

	t.Run("checksum selects the root", func(t *testing.T) {
		spec := domain.NewSpec("test.lock")
		spec.RootHash = "deadbeef"

		u, err := domain.BuildUniverse(lf, spec, domain.PhaseNameOnly, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"app", "serde"}, u.Names())
	})

	t.Run("pinned source revision selects the root", func(t *testing.T) {
		spec := domain.NewSpec("test.lock")
		spec.RootHash = "abc123"

		u, err := domain.BuildUniverse(lf, spec, domain.PhaseNameOnly, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"vendored"}, u.Names())
	})

	t.Run("name and hash must both match the same package", func(t *testing.T) {
		spec := domain.NewSpec("test.lock")
		spec.RootName = "vendored"
		spec.RootHash = "deadbeef" // belongs to app, not vendored

		_, err := domain.BuildUniverse(lf, spec, domain.PhaseNameOnly, nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrRootNotFound))
	})
}

func TestBuildUniverse_RootNotFound(t *testing.T) {
	lf := mklockfile(mkpkg("app@0.1.0"))
	spec := domain.NewSpec("test.lock")
	spec.RootName = "missing"

	u, err := domain.BuildUniverse(lf, spec, domain.PhaseNameOnly, nil)
	require.Error(t, err)
	assert.Nil(t, u)
	assert.True(t, errors.Is(err, domain.ErrRootNotFound))
	assert.Contains(t, err.Error(), "root package not found")
}

func TestBuildUniverse_ExclusionPrunesBranch(t *testing.T) {
	// onlyviab is reachable only through b; shared is also reachable via c.
	lf := mklockfile(
		mkpkg("app@0.1.0", "b", "c"),
		mkpkg("b@1.0.0", "onlyviab", "shared"),
		mkpkg("c@1.0.0", "shared"),
		mkpkg("onlyviab@1.0.0"),
		mkpkg("shared@1.0.0"),
	)
	spec := domain.NewSpec("test.lock")
	spec.RootName = "app"
	spec.Exclude("b")

	u, err := domain.BuildUniverse(lf, spec, domain.PhaseNameOnly, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"app", "c", "shared"}, u.Names(),
		"excluded name and its exclusive dependents must not appear; shared stays reachable via c")
}

func TestBuildUniverse_UnresolvableEdgesSkipped(t *testing.T) {
	// winapi is referenced but absent from the lockfile, as happens with
	// platform-specific dependencies.
	lf := mklockfile(
		mkpkg("app@0.1.0", "winapi", "log"),
		mkpkg("log@0.4.20"),
	)
	spec := domain.NewSpec("test.lock")
	spec.RootName = "app"

	u, err := domain.BuildUniverse(lf, spec, domain.PhaseNameOnly, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"app", "log"}, u.Names())
}

func TestBuildUniverse_PhasePolicies(t *testing.T) {
	// Two versions of rand, both reachable from app.
	conflicted := mklockfile(
		mkpkg("app@0.1.0", "b", "c"),
		mkpkg("b@1.0.0", "rand@0.7.3"),
		mkpkg("c@1.0.0", "rand@0.8.5"),
		mkpkg("rand@0.7.3"),
		mkpkg("rand@0.8.5"),
	)

	t.Run("name-only phase keeps the first occurrence", func(t *testing.T) {
		spec := domain.NewSpec("test.lock")
		spec.RootName = "app"

		u, err := domain.BuildUniverse(conflicted, spec, domain.PhaseNameOnly, nil)
		require.NoError(t, err)

		b, ok := u.Lookup("rand")
		require.True(t, ok)
		assert.Equal(t, "0.7.3", b.Package.Version)
	})

	t.Run("name-and-version phase rejects the conflict", func(t *testing.T) {
		spec := domain.NewSpec("test.lock")
		spec.RootName = "app"

		_, err := domain.BuildUniverse(conflicted, spec, domain.PhaseNameAndVersion, nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrVersionConflict))

		var zErr *zerr.Error
		require.True(t, errors.As(err, &zErr))
		meta := zErr.Metadata()
		assert.Equal(t, "rand", meta["package"])
		assert.Equal(t, "0.7.3", meta["first_version"])
		assert.Equal(t, "0.8.5", meta["second_version"])
		assert.Contains(t, meta["path"], "rand@0.8.5")
	})

	t.Run("same version repeated is a no-op in the strict phase", func(t *testing.T) {
		lf := mklockfile(
			mkpkg("app@0.1.0", "b", "c"),
			mkpkg("b@1.0.0", "log"),
			mkpkg("c@1.0.0", "log"),
			mkpkg("log@0.4.20"),
		)
		spec := domain.NewSpec("test.lock")
		spec.RootName = "app"

		u, err := domain.BuildUniverse(lf, spec, domain.PhaseNameAndVersion, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"app", "b", "c", "log"}, u.Names())
	})
}

func TestBuildUniverse_DiscoveryCallback(t *testing.T) {
	lf := mklockfile(
		mkpkg("app@0.1.0", "serde"),
		mkpkg("serde@1.0.197"),
	)

	t.Run("rooted walk announces everything but the seed", func(t *testing.T) {
		spec := domain.NewSpec("test.lock")
		spec.RootName = "app"

		var seen []string
		u, err := domain.BuildUniverse(lf, spec, domain.PhaseNameOnly, func(p *domain.Package) {
			seen = append(seen, p.Ref())
		})
		require.NoError(t, err)

		assert.Equal(t, []string{"serde@1.0.197"}, seen,
			"callback fires once per new binding in discovery order; the root is implied")
		assert.Equal(t, u.Len(), len(seen)+1)
	})

	t.Run("unrooted build announces every package", func(t *testing.T) {
		var seen []string
		u, err := domain.BuildUniverse(lf, domain.NewSpec("test.lock"), domain.PhaseNameOnly, func(p *domain.Package) {
			seen = append(seen, p.Ref())
		})
		require.NoError(t, err)

		assert.Equal(t, []string{"app@0.1.0", "serde@1.0.197"}, seen)
		assert.Equal(t, u.Len(), len(seen))
	})
}

func TestBuildUniverse_Deterministic(t *testing.T) {
	lf := mklockfile(
		mkpkg("app@0.1.0", "serde", "log"),
		mkpkg("serde@1.0.197", "log"),
		mkpkg("log@0.4.20"),
	)
	spec := domain.NewSpec("test.lock")
	spec.RootName = "app"

	first, err := domain.BuildUniverse(lf, spec, domain.PhaseNameAndVersion, nil)
	require.NoError(t, err)
	second, err := domain.BuildUniverse(lf, spec, domain.PhaseNameAndVersion, nil)
	require.NoError(t, err)

	assert.Equal(t, first.Names(), second.Names())
	for _, name := range first.Names() {
		a, _ := first.Lookup(name)
		b, _ := second.Lookup(name)
		assert.Equal(t, domain.PathString(a.Path), domain.PathString(b.Path))
	}
}

func TestUniverseIntersect(t *testing.T) {
	lfA := mklockfile(mkpkg("a@1.0.0"), mkpkg("b@1.0.0"), mkpkg("onlya@1.0.0"))
	lfB := mklockfile(mkpkg("b@2.0.0"), mkpkg("a@1.0.0"), mkpkg("onlyb@1.0.0"))

	ua, err := domain.BuildUniverse(lfA, domain.NewSpec("a.lock"), domain.PhaseNameOnly, nil)
	require.NoError(t, err)
	ub, err := domain.BuildUniverse(lfB, domain.NewSpec("b.lock"), domain.PhaseNameOnly, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, ua.Intersect(ub))
	assert.Equal(t, []string{"a", "b"}, ub.Intersect(ua))
}
