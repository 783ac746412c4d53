// Command kintsugi-snapshot renders one fracture to a PNG: the mended vessel
// with its gold veins by default, or the scattered shards partway through the
// break when -scatter is set.
package main

import (
	"flag"
	"log"
	"math/rand"

	"github.com/fogleman/gg"

	"github.com/mendedgold/kintsugi"
)

var (
	sizeFlag      = flag.Int("size", 800, "output image size in pixels")
	intensityFlag = flag.Float64("intensity", 0.7, "break intensity in [0, 1]")
	seedFlag      = flag.Int64("seed", 0, "random seed; 0 draws a fresh break every run")
	scatterFlag   = flag.Float64("scatter", 0, "seconds of scatter motion before rendering")
	outFlag       = flag.String("o", "kintsugi.png", "output file")
)

func main() {
	flag.Parse()

	var rng *rand.Rand
	if *seedFlag != 0 {
		rng = rand.New(rand.NewSource(*seedFlag))
	}

	size := float64(*sizeFlag)
	v := kintsugi.Vessel{
		Center: kintsugi.Pt(size/2, size/2),
		Radius: 0.42 * size,
	}
	f := kintsugi.NewFracturer(v, rng)
	fx := f.CreateFracture(v.Center, *intensityFlag, nil)

	scattered := *scatterFlag > 0
	if scattered {
		s := kintsugi.Scatter{Vessel: v}
		for t := 0.0; t < *scatterFlag; t += 1.0 / 60 {
			s.Step(fx.Fragments, 1.0/60)
		}
	}

	ctx := gg.NewContext(*sizeFlag, *sizeFlag)
	ctx.SetRGB(0.12, 0.11, 0.10)
	ctx.Clear()

	drawFragments(ctx, fx, f.Rand)
	if !scattered {
		drawGold(ctx, fx)
	}

	if err := ctx.SavePNG(*outFlag); err != nil {
		log.Fatalf("saving %s: %v", *outFlag, err)
	}
}

func drawFragments(ctx *gg.Context, fx *kintsugi.Fracture, rng *rand.Rand) {
	var buf []kintsugi.Point
	for _, fr := range fx.Fragments {
		buf = fr.WorldVertices(buf[:0])
		if len(buf) < 3 {
			continue
		}
		ctx.MoveTo(buf[0].Splat())
		for _, p := range buf[1:] {
			ctx.LineTo(p.Splat())
		}
		ctx.ClosePath()

		shade := 0.86 + 0.06*rng.Float64()
		ctx.SetRGB(shade, shade*0.97, shade*0.90)
		ctx.FillPreserve()
		ctx.SetRGB(0.25, 0.23, 0.21)
		ctx.SetLineWidth(1.2)
		ctx.Stroke()
	}
}

func drawGold(ctx *gg.Context, fx *kintsugi.Fracture) {
	for _, p := range fx.Paths {
		if len(p.Points) < 2 {
			continue
		}
		ctx.MoveTo(p.Points[0].Splat())
		for _, pt := range p.Points[1:] {
			ctx.LineTo(pt.Splat())
		}
		ctx.SetRGB(0.83, 0.67, 0.22)
		ctx.SetLineWidth(p.Thickness * 1.3)
		ctx.Stroke()
	}
	for _, pool := range fx.Pools {
		ctx.DrawCircle(pool.Center.X, pool.Center.Y, pool.Radius)
		ctx.SetRGB(0.90, 0.74, 0.28)
		ctx.Fill()
	}
}
