package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elioetibr/yaml-events/internal/golden"
	"github.com/elioetibr/yaml-events/pkg/options"
)

func TestNestedMappingMatchesGoldenEventStream(t *testing.T) {
	p := ParseString("a:\n  b: 1\n  c: 2\nd: 3\n", options.Default())
	got := collectEvents(t, p)

	diff, err := golden.Compare("testdata/nested_mapping.golden", got, false)
	require.NoError(t, err)
	assert.Empty(t, diff, "event stream diverged from golden file:\n%s", diff)
}
