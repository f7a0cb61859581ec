package main

import (
	"errors"
	"fmt"
	"github.com/nat-n/meshsimp"
	"github.com/nat-n/piper"
	"strconv"
)

/* Commands:
 * load
 * save
 * simplify
 * normalize
 * info
 */

func load(data interface{}, flags map[string]piper.Flag, args []string) (result interface{}, err error) {
	if _, verbose := flags["verbose"]; verbose {
		fmt.Println("Loading mesh")
	}
	input_path := args[0]
	mw, err := meshsimp.ReadOBJFile(input_path)
	if err != nil {
		return
	}
	result = interface{}(mw)
	return
}

func save(data interface{}, flags map[string]piper.Flag, args []string) (result interface{}, err error) {
	if _, verbose := flags["verbose"]; verbose {
		fmt.Println("Saving mesh to file")
	}
	mw, ok := data.(*meshsimp.MeshWrapper)
	if !ok {
		err = errors.New("No mesh loaded")
		return
	}
	output_path := args[0]
	err = mw.WriteOBJFile(output_path)
	if err != nil {
		return
	}
	result = data
	return
}

func simplify(data interface{}, flags map[string]piper.Flag, args []string) (result interface{}, err error) {
	if _, verbose := flags["verbose"]; verbose {
		fmt.Println("Simplifying mesh")
	}
	mw, ok := data.(*meshsimp.MeshWrapper)
	if !ok {
		err = errors.New("No mesh loaded")
		return
	}
	ratio, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		err = errors.New("Could not parse target ratio from: " + args[0])
		return
	}

	rep, err := mw.Simplify(meshsimp.Options{Ratio: ratio})
	if err != nil {
		return
	}
	if _, verbose := flags["verbose"]; verbose {
		fmt.Println("Reduced faces from", rep.FacesBefore, "to", rep.FacesAfter)
	}
	result = interface{}(mw)
	return
}

func normalize(data interface{}, flags map[string]piper.Flag, args []string) (result interface{}, err error) {
	if _, verbose := flags["verbose"]; verbose {
		fmt.Println("Centering and Scaling")
	}
	mw, ok := data.(*meshsimp.MeshWrapper)
	if !ok {
		err = errors.New("No mesh loaded")
		return
	}
	bb_max_dimension, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return
	}
	mw.ScaleAndCenter(bb_max_dimension)
	result = interface{}(mw)
	return
}

func info(data interface{}, flags map[string]piper.Flag, args []string) (result interface{}, err error) {
	mw, ok := data.(*meshsimp.MeshWrapper)
	if !ok {
		err = errors.New("No mesh loaded")
		return
	}
	s := mw.Stats()
	fmt.Println("faces:", s.Faces)
	fmt.Println("verts:", s.Verts)
	fmt.Println("bounding box:", s.Width, "x", s.Height, "x", s.Depth)
	result = data
	return
}

func main() {
	cli := piper.CLIApp{
		Name:        "meshsimp",
		Description: "decimates triangle meshes with quadric error metrics",
	}

	cli.RegisterFlag(piper.Flag{
		Name:        "verbose",
		Symbol:      "v",
		Description: "Verbose mode",
	})

	cli.RegisterCommand(piper.Command{
		Name:        "load",
		Description: "load a triangle mesh from an obj file",
		Args:        []string{"obj file"},
		Task:        load,
	})

	cli.RegisterCommand(piper.Command{
		Name:        "save",
		Description: "save the mesh as an obj file",
		Args:        []string{"obj file"},
		Task:        save,
	})

	cli.RegisterCommand(piper.Command{
		Name: "simplify",
		Description: ("apply quadric edge collapse simplification until the " +
			"face count is reduced to the given ratio of the original"),
		Args: []string{"target ratio"},
		Task: simplify,
	})

	cli.RegisterCommand(piper.Command{
		Name: "normalize",
		Description: ("transforms the mesh so that its bounding box is " +
			"centered on the origin, and the extent of its largest dimension " +
			"is equal to the provided value"),
		Args: []string{"max bounding box dimension"},
		Task: normalize,
	})

	cli.RegisterCommand(piper.Command{
		Name:        "info",
		Description: "print face, vertex and bounding box statistics",
		Task:        info,
	})

	err := cli.Run()

	if err != nil {
		fmt.Println(err)
		cli.PrintHelp()
	}
}
