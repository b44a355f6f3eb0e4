// Command raytracer renders the kernel's demonstration programs to image
// files.
//
// Usage:
//
//	raytracer [-w width] [-h height] [-e ext] [-o out] <command> [flags]
//
// Commands:
//
//	arch   plot a projectile's trajectory
//	clock  plot the twelve hour marks of a clock face
//
// The global flags are accepted before or after the command name. Their
// defaults come from RAYTRACER_WIDTH, RAYTRACER_HEIGHT, RAYTRACER_EXT,
// RAYTRACER_OUT and RAYTRACER_LOG_LEVEL.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/phanxgames/raytracer"
	"github.com/phanxgames/raytracer/internal/config"
)

// command is a subcommand. setup registers its flags on fs and returns the
// function that paints a canvas once fs has been parsed.
type command struct {
	name  string
	about string
	setup func(fs *flag.FlagSet) func(c *raytracer.Canvas) error
}

var commands = []command{
	{name: "arch", about: "Creates a trajectory", setup: archCommand},
	{name: "clock", about: "Plots the hour marks of a clock face", setup: clockCommand},
}

func findCommand(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

// bindGlobalFlags registers the canvas and output flags on fs, writing
// into cfg.
func bindGlobalFlags(fs *flag.FlagSet, cfg *config.Config) {
	fs.IntVar(&cfg.Width, "w", cfg.Width, "The width of the canvas")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "The width of the canvas")
	fs.IntVar(&cfg.Height, "h", cfg.Height, "The height of the canvas")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "The height of the canvas")
	fs.StringVar(&cfg.Ext, "e", cfg.Ext, "The file extension to save (ppm, png, jpeg, bmp, tiff)")
	fs.StringVar(&cfg.Ext, "ext", cfg.Ext, "The file extension to save (ppm, png, jpeg, bmp, tiff)")
	fs.StringVar(&cfg.Out, "o", cfg.Out, "The output file name without extension")
	fs.StringVar(&cfg.Out, "out", cfg.Out, "The output file name without extension")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
}

// parse parses the subcommand's arguments, global flags included, and
// returns its painter.
func (cmd command) parse(cfg *config.Config, args []string, handling flag.ErrorHandling) (func(c *raytracer.Canvas) error, error) {
	fs := flag.NewFlagSet(cmd.name, handling)
	bindGlobalFlags(fs, cfg)
	run := cmd.setup(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%s: unexpected arguments %v", cmd.name, fs.Args())
	}
	return run, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	global := flag.NewFlagSet("raytracer", flag.ExitOnError)
	bindGlobalFlags(global, cfg)
	global.Usage = func() { usage(global) }
	_ = global.Parse(os.Args[1:])

	if global.NArg() < 1 {
		usage(global)
		os.Exit(2)
	}
	name, args := global.Arg(0), global.Args()[1:]

	cmd, ok := findCommand(name)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command %q\n", name)
		usage(global)
		os.Exit(2)
	}
	run, err := cmd.parse(cfg, args, flag.ExitOnError)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(2)
	}
	level, _ := config.ParseLevel(cfg.LogLevel)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	canvas := raytracer.NewCanvas(cfg.Width, cfg.Height)
	slog.Debug("canvas allocated", "width", cfg.Width, "height", cfg.Height)

	if err := run(canvas); err != nil {
		slog.Error("run command", "command", name, "error", err)
		os.Exit(1)
	}

	path := raytracer.OutputPath(cfg.Out, cfg.Ext)
	if err := raytracer.Save(path, canvas); err != nil {
		slog.Error("save image", "path", path, "error", err)
		os.Exit(1)
	}
	slog.Info("image saved", "path", path, "width", cfg.Width, "height", cfg.Height)
}

func usage(fs *flag.FlagSet) {
	out := fs.Output()
	fmt.Fprintln(out, "Usage: raytracer [options] <command> [options] [flags]")
	fmt.Fprintln(out, "\nOptions:")
	fs.PrintDefaults()
	fmt.Fprintln(out, "\nCommands:")
	for _, c := range commands {
		fmt.Fprintf(out, "  %-8s %s\n", c.name, c.about)
	}
}
