// Command simulator runs the sprout demo screens in a desktop window, or
// headless to take snapshots.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hubastard/sprout/engine/core"
	glbackend "github.com/hubastard/sprout/engine/gfx/gl"
	"github.com/hubastard/sprout/engine/platform"
	"github.com/hubastard/sprout/engine/themes"
)

type flags struct {
	config  string
	demo    string
	theme   string
	layout  string
	logFile string
	scale   uint32
	driver  bool
	vsync   bool
}

// load reads the config file and lays the flags that were set over it.
func (f *flags) load(cmd *cobra.Command) (Config, error) {
	cfg, err := loadConfig(f.config)
	if err != nil {
		return cfg, err
	}
	set := cmd.Flags().Changed
	if set("demo") {
		cfg.Demo = f.demo
	}
	if set("theme") {
		cfg.Theme = f.theme
	}
	if set("layout") {
		cfg.Layout = f.layout
	}
	if set("log-file") {
		cfg.LogFile = f.logFile
	}
	if set("scale") {
		cfg.Display.Scale = f.scale
	}
	if set("driver") {
		cfg.Driver = f.driver
	}
	if set("vsync") {
		cfg.VSync = f.vsync
	}
	return cfg, cfg.validate()
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	root := &cobra.Command{
		Use:           "simulator",
		Short:         "Run sprout UI screens on the desktop",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&f.config, "config", "simulator.toml", "TOML config file")
	pf.StringVar(&f.demo, "demo", "widgets", "demo screen: "+strings.Join(demoNames(), "|"))
	pf.StringVar(&f.theme, "theme", "dark", "theme: "+strings.Join(themes.Names(), "|"))
	pf.StringVar(&f.layout, "layout", "qwerty", "on-screen keyboard layout")
	pf.StringVar(&f.logFile, "log-file", "", "write logs to a rotating file")
	pf.BoolVar(&f.driver, "driver", false, "draw through the display driver adapter")

	root.AddCommand(newRunCmd(f), newShotCmd(f), newThemesCmd())
	return root
}

func newRunCmd(f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open a window with the demo screen",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := f.load(cmd)
			if err != nil {
				return err
			}
			defer setupLogging(cfg.LogFile)()

			s, err := newScreen(cfg)
			if err != nil {
				return err
			}
			scale := max(cfg.Display.Scale, 1)
			ecfg := core.Config{
				Title:      "sprout - " + cfg.Demo,
				Width:      cfg.Display.Width * int(scale),
				Height:     cfg.Display.Height * int(scale),
				VSync:      cfg.VSync,
				ClearColor: [4]float32{0.08, 0.08, 0.08, 1},
			}
			log.Printf("simulator: demo=%s theme=%s %dx%d", cfg.Demo, cfg.Theme, cfg.Display.Width, cfg.Display.Height)

			var win *platform.GLFWWindow
			newWindow := func(c core.Config) (core.Window, error) {
				w, err := platform.NewGLFWWindow(c, nil)
				if err != nil {
					return nil, err
				}
				win = w
				return w, nil
			}
			newRenderer := func(w core.Window, c core.Config) (core.Renderer, error) {
				return glbackend.NewRendererGL(w, c)
			}
			err = core.Run(newApp(s, cfg.Display.Scale, ecfg.Title), ecfg, newWindow, newRenderer)
			if win != nil {
				win.Destroy()
			}
			return err
		},
	}
	cmd.Flags().Uint32Var(&f.scale, "scale", 3, "pixel scale, 0 to fit the window")
	cmd.Flags().BoolVar(&f.vsync, "vsync", true, "sync to the monitor refresh")
	return cmd
}

func newShotCmd(f *flags) *cobra.Command {
	var (
		out    string
		frames int
		taps   []string
	)
	cmd := &cobra.Command{
		Use:   "shot",
		Short: "Render frames headless and save a PNG",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := f.load(cmd)
			if err != nil {
				return err
			}
			defer setupLogging(cfg.LogFile)()

			s, err := newScreen(cfg)
			if err != nil {
				return err
			}
			m, err := shoot(s, taps, frames)
			if err != nil {
				return err
			}
			if err := writePNG(m, out); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "shot.png", "output PNG")
	cmd.Flags().IntVar(&frames, "frames", 2, "frames to run")
	cmd.Flags().StringArrayVar(&taps, "click", nil, "tap at x,y (repeatable, one tap per two frames)")
	return cmd
}

func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the built-in themes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, n := range themes.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
