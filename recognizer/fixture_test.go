package recognizer

import (
	"embed"
	"log"
	"strconv"
	"strings"
	"testing"

	"github.com/JoshVarga/svgparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// This file parses the svg fixtures and outputs contours. This is not a full
// (or even correct) svg parser. It parses the SVG, finds whatever the first
// polyline is, and converts its points into a contour chain. If anything goes
// wrong, it panics.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	// Find the first polyline
	polylines := rootEl.FindAll("polyline")
	if len(polylines) == 0 {
		log.Fatalf("No polylines found in fixture %q", name)
	}
	if len(polylines) > 1 {
		log.Fatalf("More than one polyline found in fixture %q", name)
	}
	polylineEl := polylines[0]

	pointString := polylineEl.Attributes["points"]
	pointStrings := strings.Split(pointString, " ")
	points := make([]Point, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		if pointString == "" {
			continue
		}

		coordStrings := strings.Split(pointString, ",")
		if len(coordStrings) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseInt(coordStrings[0], 10, 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coordStrings[0], err)
		}
		y, err := strconv.ParseInt(coordStrings[1], 10, 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coordStrings[1], err)
		}
		points = append(points, Pt(x, y))
	}
	return points
}

// A digital line of slope 1/2 is one fuzzy segment at budget 1: every point
// is absorbed and the strip hugs the slanted axis.
func TestFixtureStaircase(t *testing.T) {
	pts := LoadFixture("staircase")
	require.Len(t, pts, 8)

	r := NewRecognizer(BigIntArith{}, 1, 1)
	r.Init(NewContour(pts), 0)
	for r.ExtendFront() {
	}

	assert.Equal(t, len(pts), r.Size())
	assert.InDelta(t, 0.4472135955, r.Primitive().Width(), 1e-9)
	assert.True(t, r.IsValid())
}

// The sawtooth oscillates with amplitude 2: a budget of 2 absorbs one full
// tooth (width 4/√5) and rejects the point that would close the second.
func TestFixtureSawtooth(t *testing.T) {
	pts := LoadFixture("sawtooth")
	require.Len(t, pts, 7)

	r := NewRecognizer(BigIntArith{}, 2, 1)
	r.Init(NewContour(pts), 0)
	for r.ExtendFront() {
	}

	assert.Equal(t, 4, r.Size())
	assert.Equal(t, pts[:4], r.Points())
	assert.InDelta(t, 1.7888543820, r.Primitive().Width(), 1e-9)
	assert.True(t, r.IsValid())
}
