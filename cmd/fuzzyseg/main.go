package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/nzfeng/fuzzyseg"
)

// Demo of fuzzy segment recognition. Input on stdin should be newline
// separated integer points in the form "x y", in contour order. The contour
// is decomposed into maximal fuzzy segments for the given thickness budget,
// and each segment's bounding strip is printed. With --draw, the longest
// segment is rendered in the terminal (iTerm only).

var (
	widthNum = kingpin.Flag("width-num", "Thickness budget numerator.").Default("2").Int64()
	widthDen = kingpin.Flag("width-den", "Thickness budget denominator.").Default("1").Int64()
	draw     = kingpin.Flag("draw", "Render the longest segment in the terminal (iTerm only).").Bool()
	scale    = kingpin.Flag("scale", "Pixels per contour unit when drawing.").Default("20").Float64()
)

func main() {
	kingpin.Parse()

	points := readContour(os.Stdin)
	if len(points) == 0 {
		log.Fatal("no points on stdin")
	}

	segments, err := fuzzyseg.Decompose(points, *widthNum, *widthDen)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Read %d points, %d maximal segments at budget %d/%d\n",
		len(points), len(segments), *widthNum, *widthDen)
	for _, seg := range segments {
		fmt.Printf("  [%d..%d] %s\n", seg.Start, seg.End, seg.Strip)
	}

	if *draw {
		drawLongest(points, segments)
	}
}

func drawLongest(points []fuzzyseg.Point, segments []fuzzyseg.Segment) {
	longest := segments[0]
	for _, seg := range segments[1:] {
		if seg.End-seg.Start > longest.End-longest.Start {
			longest = seg
		}
	}

	// Re-run the recognizer over the chosen span to get a drawable instance
	r := fuzzyseg.NewRecognizer(fuzzyseg.BigIntArith{}, *widthNum, *widthDen)
	r.Init(fuzzyseg.NewContour(points[longest.Start:longest.End+1]), 0)
	for r.ExtendFront() {
	}
	fmt.Println(r)
	r.DbgDraw(*scale)
}

func readContour(in *os.File) []fuzzyseg.Point {
	points := []fuzzyseg.Point{}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		points = append(points, parsePoint(line))
	}
	return points
}

func parsePoint(line string) fuzzyseg.Point {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		log.Fatalf("invalid point line %q", line)
	}
	x, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		log.Fatalf("invalid x value %q: %v", parts[0], err)
	}
	y, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		log.Fatalf("invalid y value %q: %v", parts[1], err)
	}
	return fuzzyseg.Pt(x, y)
}
