package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/watchdog/domain"
)

// MarkerBuilder helps create test version markers with a fluent interface.
type MarkerBuilder struct {
	*testkit.BaseBuilder
	line    int
	field   string
	current string
}

// NewMarkerBuilder creates a new marker builder with sensible defaults.
func NewMarkerBuilder() *MarkerBuilder {
	return &MarkerBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		line:        1,
		field:       "addonChartVersion",
		current:     "1.0.0",
	}
}

// WithLine sets the 1-based line number.
func (b *MarkerBuilder) WithLine(line int) *MarkerBuilder {
	b.line = line
	return b
}

// WithField sets the field name.
func (b *MarkerBuilder) WithField(field string) *MarkerBuilder {
	b.field = field
	return b
}

// WithCurrent sets the pinned version.
func (b *MarkerBuilder) WithCurrent(version string) *MarkerBuilder {
	b.current = version
	return b
}

// Build creates the marker (satisfies testkit.Builder interface).
func (b *MarkerBuilder) Build() interface{} {
	return b.BuildMarker()
}

// BuildMarker creates the marker with a concrete return type.
func (b *MarkerBuilder) BuildMarker() domain.VersionMarker {
	return domain.VersionMarker{
		Line:    b.line,
		Field:   b.field,
		Current: b.current,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *MarkerBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.line = 1
	b.field = "addonChartVersion"
	b.current = "1.0.0"
	return b
}

// Clone creates a deep copy of the MarkerBuilder.
func (b *MarkerBuilder) Clone() testkit.Builder {
	return &MarkerBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		line:        b.line,
		field:       b.field,
		current:     b.current,
	}
}
