package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/watchdog/domain"
	"github.com/rios0rios0/watchdog/internal/planner"
	"github.com/rios0rios0/watchdog/test/entitybuilders"
)

func TestDecide(t *testing.T) {
	t.Parallel()

	t.Run("should flag an update when a newer candidate exists", func(t *testing.T) {
		t.Parallel()

		// given
		marker := entitybuilders.NewMarkerBuilder().WithCurrent("1.0.0").BuildMarker()
		candidates := []string{"1.0.0", "1.2.0", "1.1.0"}

		// when
		decision := planner.New().Decide(marker, candidates)

		// then
		assert.Equal(t, domain.OutcomeUpdateAvailable, decision.Result)
		assert.Equal(t, "1.2.0", decision.Latest)
	})

	t.Run("should report up-to-date when pinned at the latest", func(t *testing.T) {
		t.Parallel()

		// given
		marker := entitybuilders.NewMarkerBuilder().WithCurrent("1.2.0").BuildMarker()

		// when
		decision := planner.New().Decide(marker, []string{"1.0.0", "1.2.0"})

		// then
		assert.Equal(t, domain.OutcomeUpToDate, decision.Result)
	})

	t.Run("should treat a v-prefixed pin as equal to the bare latest", func(t *testing.T) {
		t.Parallel()

		// given
		marker := entitybuilders.NewMarkerBuilder().WithCurrent("v1.2.0").BuildMarker()

		// when
		decision := planner.New().Decide(marker, []string{"1.2.0"})

		// then
		assert.Equal(t, domain.OutcomeUpToDate, decision.Result)
	})

	t.Run("should flag a pre-release pin as updatable to the final release", func(t *testing.T) {
		t.Parallel()

		// given
		marker := entitybuilders.NewMarkerBuilder().WithCurrent("1.2.3-rc1").BuildMarker()

		// when
		decision := planner.New().Decide(marker, []string{"1.2.3-rc1", "1.2.3"})

		// then
		assert.Equal(t, domain.OutcomeUpdateAvailable, decision.Result)
		assert.Equal(t, "1.2.3", decision.Latest)
	})

	t.Run("should report unknown with no candidates", func(t *testing.T) {
		t.Parallel()

		// given
		marker := entitybuilders.NewMarkerBuilder().BuildMarker()

		// when
		decision := planner.New().Decide(marker, nil)

		// then
		assert.Equal(t, domain.OutcomeUnknown, decision.Result)
		assert.Empty(t, decision.Latest)
	})

	t.Run("should report unknown when the pin is unparseable", func(t *testing.T) {
		t.Parallel()

		// given
		marker := entitybuilders.NewMarkerBuilder().WithCurrent("latest").BuildMarker()

		// when
		decision := planner.New().Decide(marker, []string{"1.0.0"})

		// then
		assert.Equal(t, domain.OutcomeUnknown, decision.Result)
	})

	t.Run("should report unknown when only the lexicographic fallback resolved", func(t *testing.T) {
		t.Parallel()

		// given
		marker := entitybuilders.NewMarkerBuilder().WithCurrent("1.0.0").BuildMarker()

		// when
		decision := planner.New().Decide(marker, []string{"nightly", "stable"})

		// then
		assert.Equal(t, domain.OutcomeUnknown, decision.Result)
		assert.Equal(t, "stable", decision.Latest)
	})
}
