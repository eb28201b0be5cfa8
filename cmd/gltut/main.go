// Command gltut draws any of the built-in tutorial scenes.
//
//	gltut -list
//	gltut -scene moving-triangles -hud -animation delta
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
	os.Exit(app.Main("gltut", os.Args[1:], scene.MovingFigure))
}
