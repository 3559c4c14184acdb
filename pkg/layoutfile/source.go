package layoutfile

import (
	"math"
	"math/rand/v2"
	"strconv"

	"github.com/matzehuels/termgrid/pkg/element/plot"
)

// Data sources.
const (
	SourceSine     = "sine"
	SourceCosine   = "cosine"
	SourceSquare   = "square"
	SourceSawtooth = "sawtooth"
	SourceWalk     = "walk"
)

// Sources returns the names accepted by the source key.
func Sources() []string {
	return []string{SourceSine, SourceCosine, SourceSquare, SourceSawtooth, SourceWalk}
}

// phaseStep is how far periodic sources advance per frame, in radians.
const phaseStep = 0.15

// Generate samples n points of a source over two periods. Periodic sources
// shift by a fixed phase per frame; the random walk scrolls by one sample per
// frame and is reproducible for a given seed.
func Generate(source string, n, frame int, seed uint64) []plot.Point {
	if source == SourceWalk {
		return walk(n, frame, seed)
	}
	pts := make([]plot.Point, n)
	phase := float64(frame) * phaseStep
	for i := range pts {
		x := 4 * math.Pi * float64(i) / float64(max(n-1, 1))
		pts[i] = plot.Point{X: x, Y: periodic(source, x+phase)}
	}
	return pts
}

func periodic(source string, t float64) float64 {
	switch source {
	case SourceCosine:
		return math.Cos(t)
	case SourceSquare:
		if math.Sin(t) >= 0 {
			return 1
		}
		return -1
	case SourceSawtooth:
		frac := t/(2*math.Pi) - math.Floor(t/(2*math.Pi))
		return 2*frac - 1
	default:
		return math.Sin(t)
	}
}

// walk returns samples frame..frame+n-1 of a seeded random walk.
func walk(n, frame int, seed uint64) []plot.Point {
	rng := rand.New(rand.NewPCG(seed, 0x5eed))
	y := 0.0
	for range frame {
		y += rng.NormFloat64()
	}
	pts := make([]plot.Point, n)
	for i := range pts {
		y += rng.NormFloat64()
		pts[i] = plot.Point{X: float64(frame + i), Y: y}
	}
	return pts
}

// bars turns samples into bar magnitudes. Missing labels are numbered.
func bars(points []plot.Point, labels []string) []plot.Bar {
	out := make([]plot.Bar, len(points))
	for i, pt := range points {
		label := strconv.Itoa(i + 1)
		if i < len(labels) {
			label = labels[i]
		}
		out[i] = plot.Bar{Label: label, Value: math.Abs(pt.Y)}
	}
	return out
}
