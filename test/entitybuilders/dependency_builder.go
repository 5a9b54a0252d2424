package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/watchdog/config"
)

// DependencyBuilder helps create test dependency configs with a fluent interface.
type DependencyBuilder struct {
	*testkit.BaseBuilder
	name     string
	file     string
	repoType string
	repoURL  string
	token    string
}

// NewDependencyBuilder creates a new dependency builder with sensible defaults.
func NewDependencyBuilder() *DependencyBuilder {
	return &DependencyBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		name:        "test-dependency",
		file:        "appset.yaml",
		repoType:    "rss",
		repoURL:     "https://example.com/releases.rss",
	}
}

// WithName sets the dependency name.
func (b *DependencyBuilder) WithName(name string) *DependencyBuilder {
	b.name = name
	return b
}

// WithFile sets the manifest file path.
func (b *DependencyBuilder) WithFile(file string) *DependencyBuilder {
	b.file = file
	return b
}

// WithRepository sets the repository type and URL.
func (b *DependencyBuilder) WithRepository(repoType, url string) *DependencyBuilder {
	b.repoType = repoType
	b.repoURL = url
	return b
}

// WithToken sets the registry credential.
func (b *DependencyBuilder) WithToken(token string) *DependencyBuilder {
	b.token = token
	return b
}

// Build creates the dependency config (satisfies testkit.Builder interface).
func (b *DependencyBuilder) Build() interface{} {
	return b.BuildDependency()
}

// BuildDependency creates the dependency config with a concrete return type.
func (b *DependencyBuilder) BuildDependency() config.DependencyConfig {
	return config.DependencyConfig{
		Name:   b.name,
		Source: config.SourceConfig{File: b.file},
		Repository: config.RepositoryConfig{
			Type:  b.repoType,
			URL:   b.repoURL,
			Token: b.token,
		},
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *DependencyBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "test-dependency"
	b.file = "appset.yaml"
	b.repoType = "rss"
	b.repoURL = "https://example.com/releases.rss"
	b.token = ""
	return b
}

// Clone creates a deep copy of the DependencyBuilder.
func (b *DependencyBuilder) Clone() testkit.Builder {
	return &DependencyBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:        b.name,
		file:        b.file,
		repoType:    b.repoType,
		repoURL:     b.repoURL,
		token:       b.token,
	}
}
