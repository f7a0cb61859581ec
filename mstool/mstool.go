// mstool applies quadric edge collapse decimation to a single obj file, for
// batch use from asset pipeline scripts.
//
// Example usage:
//
// mstool -i /path/to/input.obj -o /path/to/output.obj -ratio 0.25
// mstool -i in.obj -o out.obj -target_faces 5000 -time_limit 10
//
// On success a two line machine parsable summary of the before/after counts
// is printed to stdout. Failures exit with a distinct code per stage:
// 2 usage, 3 load, 4 simplify, 5 save.

package main

import (
	"flag"
	"fmt"
	"github.com/fatih/color"
	"github.com/nat-n/meshsimp"
	"os"
)

func main() {
	input_path := flag.String("i", "", "input obj file")
	output_path := flag.String("o", "", "output obj file")

	ratio := flag.Float64("ratio", 0.5, "target face ratio (0..1]")
	target_faces := flag.Int("target_faces", -1,
		"absolute target face count, overrides ratio when positive")
	max_collapses := flag.Int("max_collapses", -1,
		"cap on edge collapses, derived from the target when not positive")
	time_limit := flag.Float64("time_limit", -1,
		"time limit in seconds, not positive disables")
	progress_interval := flag.Int("progress_interval", 20000,
		"collapses between progress lines on stderr")
	normalize := flag.Float64("normalize", 0,
		"scale and center so the largest bounding box dimension equals this value, 0 disables")

	flag.Parse()

	if len(*input_path) == 0 || len(*output_path) == 0 {
		fmt.Fprintln(os.Stderr, "Error: input and output paths are required")
		flag.PrintDefaults()
		os.Exit(2)
	}

	red := color.New(color.FgRed).SprintFunc()

	mw, err := meshsimp.ReadOBJFile(*input_path)
	if err != nil {
		fmt.Fprintln(os.Stderr, red("Load error: "+err.Error()))
		os.Exit(3)
	}

	rep, err := mw.Simplify(meshsimp.Options{
		Ratio:            *ratio,
		TargetFaces:      *target_faces,
		MaxCollapses:     *max_collapses,
		TimeLimit:        *time_limit,
		ProgressInterval: *progress_interval,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, red("Simplify error: "+err.Error()))
		os.Exit(4)
	}

	if *normalize > 0 {
		mw.ScaleAndCenter(*normalize)
	}

	if err = mw.WriteOBJFile(*output_path); err != nil {
		fmt.Fprintln(os.Stderr, red("Save error: "+err.Error()))
		os.Exit(5)
	}

	fmt.Printf("faces: %d -> %d\n", rep.FacesBefore, rep.FacesAfter)
	fmt.Printf("verts: %d -> %d\n", rep.VertsBefore, rep.VertsAfter)
}
