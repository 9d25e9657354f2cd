package selftest

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestTokenizerExamples(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascas.cli")
	defer teardown()
	//
	results := RunTokenizer(TokenizerCases)
	for _, r := range results {
		assert.True(t, r.Passed, "%q: expected %s, got %s (%v)", r.Input, r.Expected, r.Got, r.Err)
	}
	passed, failed := Count(results)
	assert.Equal(t, len(TokenizerCases), passed)
	assert.Equal(t, 0, failed)
}

func TestSimplifierExamples(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascas.cli")
	defer teardown()
	//
	results := RunSimplifier(SimplifierCases)
	for _, r := range results {
		assert.True(t, r.Passed, "%q: expected %s, got %s (%v)", r.Input, r.Expected, r.Got, r.Err)
	}
	passed, failed := Count(results)
	assert.Equal(t, len(SimplifierCases), passed)
	assert.Equal(t, 0, failed)
}

func TestFailingExamples(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascas.cli")
	defer teardown()
	//
	results := RunSimplifier([]SimplifierCase{
		{"1 + 1", "2"},
		{"1 +", "1"},
		{"2 * 1", "2"},
	})
	passed, failed := Count(results)
	assert.Equal(t, 1, passed)
	assert.Equal(t, 2, failed)
	assert.Equal(t, "(+ 1 1)", results[0].Got)
	assert.Error(t, results[1].Err)
	//
	results = RunTokenizer([]TokenizerCase{{"1 $", nil}})
	assert.False(t, results[0].Passed)
	assert.Error(t, results[0].Err)
}
