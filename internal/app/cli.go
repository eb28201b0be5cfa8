package app

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"gltut/internal/config"
	"gltut/internal/scene"
)

// Exit codes
const (
	ExitOK      = 0
	ExitFailure = -1
)

// CLI parses arguments and runs a scene. Fields are swappable for tests.
type CLI struct {
	Name   string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Run    func(config.Settings, scene.Description) error
}

// Main runs the program with os streams and returns the process exit code
func Main(name string, args []string, defaultScene string) int {
	cli := &CLI{Name: name, Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr, Run: Run}
	return cli.Main(args, defaultScene)
}

// Main parses args, loads configuration and runs the chosen scene
func (c *CLI) Main(args []string, defaultScene string) int {
	flags := flag.NewFlagSet(c.Name, flag.ContinueOnError)
	flags.SetOutput(c.Stderr)

	sceneName := flags.String("scene", defaultScene, "scene to draw")
	configPath := flags.String("config", "", "TOML settings file")
	list := flags.Bool("list", false, "list scenes and exit")

	defaults := config.Default()
	width := flags.Int("width", defaults.Width, "window width")
	height := flags.Int("height", defaults.Height, "window height")
	fpsLimit := flags.Int("fps", defaults.FPSLimit, "frame cap, 0 for vsync only")
	animation := flags.String("animation", defaults.Animation, `"fixed" per-frame step or "delta" wall-clock step`)
	showHUD := flags.Bool("hud", defaults.ShowHUD, "show the text overlay")
	logFPS := flags.Bool("log-fps", defaults.LogFPS, "log the frame rate every second")
	shaderDir := flags.String("shaders", defaults.ShaderDir, "load shaders from this directory instead of the embedded set")
	wait := flags.Bool("wait", defaults.WaitOnError, "wait for Enter after a startup error")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK
		}
		return ExitFailure
	}

	if *list {
		for _, name := range scene.Names() {
			fmt.Fprintln(c.Stdout, name)
		}
		return ExitOK
	}

	settings, err := config.Load(*configPath)
	// flags given on the command line win over the file
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			settings.Width = *width
		case "height":
			settings.Height = *height
		case "fps":
			settings.FPSLimit = *fpsLimit
		case "animation":
			settings.Animation = *animation
		case "hud":
			settings.ShowHUD = *showHUD
		case "log-fps":
			settings.LogFPS = *logFPS
		case "shaders":
			settings.ShaderDir = *shaderDir
		case "wait":
			settings.WaitOnError = *wait
		}
	})
	if err == nil {
		err = settings.Normalize()
	}
	if err != nil {
		return c.fail(err, settings.WaitOnError)
	}

	desc, err := scene.Lookup(*sceneName)
	if err != nil {
		return c.fail(err, settings.WaitOnError)
	}

	config.SetFPSLimit(settings.FPSLimit)
	if err := c.Run(settings, desc); err != nil {
		return c.fail(err, settings.WaitOnError)
	}
	return ExitOK
}

// fail reports a startup error and optionally waits for Enter so the message
// stays visible in a console window that closes on exit
func (c *CLI) fail(err error, wait bool) int {
	fmt.Fprintf(c.Stderr, "%s: %v\n", c.Name, err)
	if wait && c.Stdin != nil {
		fmt.Fprintln(c.Stderr, "Press Enter to exit.")
		_, _ = bufio.NewReader(c.Stdin).ReadString('\n')
	}
	return ExitFailure
}
