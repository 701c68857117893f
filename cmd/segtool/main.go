package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/seg2"
	"github.com/osuushi/seg2/dbg"
)

// Reads segments from stdin, one per line in the form "x1 y1 x2 y2", and
// reports every pairwise intersection. With --out, also renders the segments
// and their intersection points to a PNG.
var (
	out   = kingpin.Flag("out", "Write a rendered PNG to this path.").String()
	cat   = kingpin.Flag("cat", "Preview the PNG inline (iTerm2 terminals).").Bool()
	scale = kingpin.Flag("scale", "Pixels per geometry unit when rendering.").Default("20").Float64()
)

func main() {
	kingpin.Parse()

	segments, err := readSegments(os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("Read %d segments\n", len(segments))

	scene := seg2.Scene{Segments: segments}
	for i, a := range segments {
		for _, b := range segments[i+1:] {
			p, hit := a.Intersects(b)
			verdict := aurora.Red("miss")
			if hit {
				verdict = aurora.Green("hit")
				scene.AddMarker(p)
			}
			fmt.Printf("%s x %s: %s at (%g, %g)\n",
				dbg.Name(a), dbg.Name(b), verdict, p.X, p.Y)
		}
	}

	if *out == "" {
		return
	}
	if err := scene.SavePNG(*out, *scale); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *cat {
		seg2.Cat(*out)
	}
}

func readSegments(in *os.File) ([]seg2.Segment, error) {
	var segments []seg2.Segment
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		s, err := parseSegment(line)
		if err != nil {
			return nil, err
		}
		segments = append(segments, s)
	}
	return segments, scanner.Err()
}

func parseSegment(line string) (seg2.Segment, error) {
	parts := strings.Fields(line)
	if len(parts) != 4 {
		return seg2.Segment{}, errors.Errorf("expected \"x1 y1 x2 y2\", got %q", line)
	}
	coords := make([]float64, 4)
	for i, part := range parts {
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return seg2.Segment{}, errors.Wrapf(err, "bad coordinate %q", part)
		}
		coords[i] = v
	}
	return seg2.New(coords[0], coords[1], coords[2], coords[3]), nil
}
