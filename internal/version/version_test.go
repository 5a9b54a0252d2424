package version_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/watchdog/internal/version"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("should treat v-prefixed and bare forms as equal", func(t *testing.T) {
		t.Parallel()

		// given
		prefixed := "v1.2.3"
		bare := "1.2.3"

		// when
		a, errA := version.Parse(prefixed)
		b, errB := version.Parse(bare)

		// then
		require.NoError(t, errA)
		require.NoError(t, errB)
		assert.True(t, a.Equal(b))
	})

	t.Run("should accept a pre-release suffix", func(t *testing.T) {
		t.Parallel()

		// when
		v, err := version.Parse("1.2.3-rc1")

		// then
		require.NoError(t, err)
		assert.Equal(t, "rc1", v.Prerelease())
	})

	t.Run("should fail on non-version input", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := version.Parse("latest")

		// then
		require.ErrorIs(t, err, version.ErrUnparseable)
	})
}

func TestParseStrict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		raw   string
		valid bool
	}{
		{name: "should accept a bare triple", raw: "2.3.4", valid: true},
		{name: "should accept a v-prefixed triple", raw: "v2.3.4", valid: true},
		{name: "should reject a pre-release suffix", raw: "2.3.4-beta", valid: false},
		{name: "should reject a named tag", raw: "latest", valid: false},
		{name: "should reject a two-segment version", raw: "2.3", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// when
			_, err := version.ParseStrict(tt.raw)

			// then
			assert.Equal(t, tt.valid, err == nil)
			assert.Equal(t, tt.valid, version.IsStrictTriple(tt.raw))
		})
	}
}

func TestLatest(t *testing.T) {
	t.Parallel()

	t.Run("should pick the numerically greatest candidate", func(t *testing.T) {
		t.Parallel()

		// given
		candidates := []string{"1.0.0", "1.2.0", "1.1.0"}

		// when
		latest, ok := version.Latest(candidates)

		// then
		assert.True(t, ok)
		assert.Equal(t, "1.2.0", latest)
	})

	t.Run("should compare segments numerically, not textually", func(t *testing.T) {
		t.Parallel()

		// given
		candidates := []string{"1.9.0", "1.10.0"}

		// when
		latest, ok := version.Latest(candidates)

		// then
		assert.True(t, ok)
		assert.Equal(t, "1.10.0", latest)
	})

	t.Run("should be absent for an empty candidate set", func(t *testing.T) {
		t.Parallel()

		// when
		latest, ok := version.Latest(nil)

		// then
		assert.False(t, ok)
		assert.Empty(t, latest)
	})

	t.Run("should rank a pre-release below the final release", func(t *testing.T) {
		t.Parallel()

		// given
		candidates := []string{"1.2.3-rc1", "1.2.3"}

		// when
		latest, ok := version.Latest(candidates)

		// then
		assert.True(t, ok)
		assert.Equal(t, "1.2.3", latest)
	})

	t.Run("should exclude unparseable candidates from selection", func(t *testing.T) {
		t.Parallel()

		// given
		candidates := []string{"latest", "1.0.0", "stable"}

		// when
		latest, ok := version.Latest(candidates)

		// then
		assert.True(t, ok)
		assert.Equal(t, "1.0.0", latest)
	})

	t.Run("should fall back to lexicographic max when nothing parses", func(t *testing.T) {
		t.Parallel()

		// given
		candidates := []string{"alpha", "zeta", "beta"}

		// when
		latest, ok := version.Latest(candidates)

		// then
		assert.True(t, ok)
		assert.Equal(t, "zeta", latest)
	})

	t.Run("should normalize a v-prefixed winner", func(t *testing.T) {
		t.Parallel()

		// given
		candidates := []string{"v1.0.0", "v1.1.0"}

		// when
		latest, ok := version.Latest(candidates)

		// then
		assert.True(t, ok)
		assert.Equal(t, "1.1.0", latest)
	})
}

func TestIsNewer(t *testing.T) {
	t.Parallel()

	t.Run("should detect a newer candidate", func(t *testing.T) {
		t.Parallel()

		// when
		newer, err := version.IsNewer("1.0.0", "1.2.0")

		// then
		require.NoError(t, err)
		assert.True(t, newer)
	})

	t.Run("should treat textually different but equal versions as not newer", func(t *testing.T) {
		t.Parallel()

		// when
		newer, err := version.IsNewer("v1.2.3", "1.2.3")

		// then
		require.NoError(t, err)
		assert.False(t, newer)
	})

	t.Run("should treat the final release as newer than its pre-release", func(t *testing.T) {
		t.Parallel()

		// when
		newer, err := version.IsNewer("1.2.3-rc1", "1.2.3")

		// then
		require.NoError(t, err)
		assert.True(t, newer)
	})

	t.Run("should error when the current version is unparseable", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := version.IsNewer("not-a-version", "1.0.0")

		// then
		require.ErrorIs(t, err, version.ErrUnparseable)
	})
}
