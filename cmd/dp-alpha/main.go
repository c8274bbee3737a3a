// Command dp-alpha shows a chessboard test pattern on the first
// connected display to verify the pipeline's alpha blending. When the
// compositor applies the selected alpha convention correctly, the
// half-transparent tiles blend into the opaque ones and no board is
// visible.
package main

import (
	"bufio"
	"fmt"
	"os"

	dpalpha "github.com/onotole/zynqmp-dp-alpha"
)

func main() {
	if len(os.Args) != 2 {
		usage()
	}

	var alpha dpalpha.AlphaMode
	switch os.Args[1] {
	case "p":
		alpha = dpalpha.PremultipliedAlpha
	case "s":
		alpha = dpalpha.StraightAlpha
	default:
		usage()
	}

	if err := run(alpha); err != nil {
		fmt.Fprintln(os.Stderr, "Error: "+err.Error())
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("Usage: dp-alpha p|s")
	fmt.Println("\tp: use premultiplied alpha, s: use straight alpha")
	os.Exit(1)
}

func run(alpha dpalpha.AlphaMode) error {
	output, err := dpalpha.Open(dpalpha.DefaultDevice)
	if err != nil {
		return err
	}
	defer output.Close()

	surface, err := output.CreateSurface()
	if err != nil {
		return err
	}
	defer surface.Close()

	surface.FillChessboard(alpha)

	if err = output.Bind(surface.FramebufferID()); err != nil {
		return err
	}

	fmt.Printf("If you see a chessboard pattern, %s alpha blending mode is incorrect.\n", alpha)

	// Keep the configuration on screen until the user answers.
	_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
	return nil
}
