package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/mpolson64/clutteredenv"
)

// Demo of the arrangement builder. Input on stdin should be newline
// separated vertices in the form "x y", with each obstacle separated by an
// extra newline. Coordinates must lie in the unit square, obstacles must be
// convex and must not overlap. None of these requirements are validated.
var (
	pngPath = kingpin.Flag("png", "Write a PNG rendering of the arrangement to this path.").String()
	scale   = kingpin.Flag("scale", "Pixels per unit for PNG output.").Default("512").Float64()
	verbose = kingpin.Flag("verbose", "Print every free-space face.").Short('v').Bool()
)

func main() {
	kingpin.Parse()

	obstacles := readObstacles(os.Stdin)
	arr, err := clutteredenv.Construct(obstacles...)
	if err != nil {
		log.Fatalf("construct failed: %v", err)
	}

	edgeCount := 0
	edges := arr.Graph.Edges()
	for edges.Next() {
		edgeCount++
	}
	fmt.Printf("Read %d obstacles\n", len(obstacles))
	fmt.Printf("Arrangement: %s points, %s edges, %s free faces\n",
		aurora.Cyan(strconv.Itoa(len(arr.Points))),
		aurora.Cyan(strconv.Itoa(edgeCount)),
		aurora.Green(strconv.Itoa(len(arr.Faces))),
	)

	if *verbose {
		for _, face := range arr.Faces {
			fmt.Println(face)
		}
	}

	if *pngPath != "" {
		if err := arr.WritePNG(*pngPath, *scale); err != nil {
			log.Fatalf("could not write %q: %v", *pngPath, err)
		}
	}
}

func readObstacles(in *os.File) []*clutteredenv.Obstacle {
	obstacles := []*clutteredenv.Obstacle{}
	scanner := bufio.NewScanner(in)
	vertices := []*clutteredenv.Point{}

	flush := func() {
		if len(vertices) == 0 {
			return
		}
		obstacle, err := clutteredenv.NewObstacle(vertices)
		if err != nil {
			log.Fatalf("bad obstacle: %v", err)
		}
		obstacles = append(obstacles, obstacle)
		vertices = []*clutteredenv.Point{}
	}

	for scanner.Scan() {
		line := scanner.Text()

		// An empty line ends the current obstacle.
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}

		vertex := parseVertex(line)
		vertices = append(vertices, &vertex)
	}
	flush()
	return obstacles
}

func parseVertex(line string) clutteredenv.Point {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		log.Fatalf("invalid vertex line %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		log.Fatalf("invalid x value %q: %v", parts[0], err)
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		log.Fatalf("invalid y value %q: %v", parts[1], err)
	}
	return clutteredenv.Point{X: x, Y: y}
}
