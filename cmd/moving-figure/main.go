package main

import (
	"os"
	"runtime"

	"gltut/internal/app"
	"gltut/internal/scene"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	os.Exit(app.Main("moving-figure", os.Args[1:], scene.MovingFigure))
}
