package main

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlasling/phondist"
)

const sampleAtlas = "Locality,AREA,lat,lon,bread,cat\n" +
	"idx,area,lat,lon,1,2\n" +
	"Borgo,A,45.1,7.2,pane/pàn,gatto\n" +
	"Valle,A,45.3,7.5,pan,gàtto\n" +
	"Piano,B,44.9,7.0,,gat\n"

func atlasFixture(t *testing.T) *Atlas {
	t.Helper()
	a, err := ReadAtlas(strings.NewReader(sampleAtlas))
	require.NoError(t, err)
	return a
}

func TestReadAtlas(t *testing.T) {
	a := atlasFixture(t)

	assert.Equal(t, []string{"bread", "cat"}, a.Concepts)
	assert.Equal(t, []string{"Borgo", "Valle", "Piano"}, a.Localities)
	assert.Equal(t, "pan", a.Cells[1][0])

	// Empty cells drop out of the column.
	assert.Equal(t, []string{"pane/pàn", "pan"}, a.Column(0))
	assert.Len(t, a.Column(1), 3)
}

func TestReadAtlasRejectsShortHeader(t *testing.T) {
	_, err := ReadAtlas(strings.NewReader("a,b,c\n"))
	assert.Error(t, err)
}

func TestSummarize(t *testing.T) {
	s := Summarize([]float64{4, 1, 3, 2})
	assert.Equal(t, 4, s.Count)
	assert.InDelta(t, 2.5, s.Mean, 1e-12)
	assert.InDelta(t, 2.5, s.Median, 1e-12)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 4.0, s.Max)
	assert.InDelta(t, math.Sqrt(1.25), s.StdDev, 1e-12)

	odd := Summarize([]float64{3, 1, 2})
	assert.InDelta(t, 2.0, odd.Median, 1e-12)

	assert.Equal(t, Stats{}, Summarize(nil))
}

func TestBenchConcept(t *testing.T) {
	cmp, err := phondist.New()
	require.NoError(t, err)

	res, err := benchConcept(cmp, "bread", []string{"pane/pàn", "pan", "pana"}, true)
	require.NoError(t, err)

	assert.Equal(t, "bread", res.Concept)
	assert.Equal(t, 3, res.Timing.Count)
	assert.Greater(t, res.MeanSim, 0.0)
	assert.LessOrEqual(t, res.MeanSim, 1.0)
	assert.Greater(t, res.MeanBaseline, 0.0)

	// No cells, no comparisons.
	empty, err := benchConcept(cmp, "void", nil, false)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Timing.Count)
	assert.Equal(t, 0.0, empty.MeanSim)
}
