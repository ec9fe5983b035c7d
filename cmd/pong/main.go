// Command pong plays the two-player paddle game in a desktop window, or runs
// it headless with wandering paddles.
//
// Player 1 uses W/S, player 2 the arrow keys. Q or Esc quits.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/plus3/pong/config"
	"github.com/plus3/pong/display"
	"github.com/plus3/pong/ecs"
	"github.com/plus3/pong/ecs/debugui"
	debugui_ebiten "github.com/plus3/pong/ecs/debugui/ebiten"
	"github.com/plus3/pong/pong"
	"github.com/plus3/pong/spectate"
)

type flags struct {
	configPath  string
	writeConfig string
	headless    bool
	ascii       bool
	ticks       int
	seed        uint64
	spectate    string
	debug       bool
	mute        bool
	scale       int
}

func main() {
	var f flags
	flag.StringVar(&f.configPath, "config", "", "Path to a TOML config file.")
	flag.StringVar(&f.writeConfig, "write-config", "", "Write the effective config to this path and exit.")
	flag.BoolVar(&f.headless, "headless", false, "Run without a window, with wandering paddles.")
	flag.BoolVar(&f.ascii, "ascii", false, "In headless mode, print every frame as text.")
	flag.IntVar(&f.ticks, "ticks", 0, "In headless mode, stop after this many ticks (0 runs until interrupted).")
	flag.Uint64Var(&f.seed, "seed", 0, "Fixed serve seed (0 draws entropy from the paddles).")
	flag.StringVar(&f.spectate, "spectate", "", "Serve spectator websockets on this address, e.g. :8080.")
	flag.BoolVar(&f.debug, "debug", false, "Show the debug overlay.")
	flag.BoolVar(&f.mute, "mute", false, "Skip tones instead of pausing for them.")
	flag.IntVar(&f.scale, "scale", 0, "Window pixels per court pixel.")
	flag.Parse()

	cfg, err := config.Load(f.configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	applyFlags(cfg, f)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	if f.writeConfig != "" {
		if err := cfg.Save(f.writeConfig); err != nil {
			log.Fatalf("Failed to write config: %v", err)
		}
		log.Printf("Wrote config to %s", f.writeConfig)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if f.headless {
		runHeadless(ctx, cfg, f)
		return
	}
	if err := runWindowed(ctx, cfg); err != nil {
		log.Fatalf("pong: %v", err)
	}
}

// applyFlags copies the flags given on the command line over the config.
func applyFlags(cfg *config.Config, f flags) {
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "seed":
			cfg.Seed = f.seed
		case "spectate":
			cfg.Spectate = f.spectate
		case "debug":
			cfg.Debug = f.debug
		case "mute":
			cfg.Mute = f.mute
		case "scale":
			cfg.Scale = f.scale
		}
	})
}

func newOptions(ctx context.Context, cfg *config.Config, logger *log.Logger) (pong.Options, pong.Renderers) {
	opts := cfg.Options()
	opts.Logger = logger
	opts.Buzzer = pong.SleepBuzzer{}
	if cfg.Mute {
		opts.Buzzer = pong.MuteBuzzer{}
	}

	var renderers pong.Renderers
	if cfg.Spectate != "" {
		hub := spectate.NewHub(logger)
		renderers = append(renderers, hub)
		go func() {
			if err := spectate.ListenAndServe(ctx, cfg.Spectate, hub); err != nil {
				logger.Printf("[WS] spectator server stopped: %v", err)
			}
		}()
	}
	return opts, renderers
}

func runWindowed(ctx context.Context, cfg *config.Config) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	logger := log.New(os.Stderr, "", log.LstdFlags)
	court := cfg.Court()
	game := display.NewGame(court)

	opts, renderers := newOptions(ctx, cfg, logger)
	opts.Input = game.Keyboard
	if cfg.Seed == 0 {
		opts.Entropy = game.Keyboard
	}
	opts.Renderer = append(pong.Renderers{game.Screen}, renderers...)

	var machine *pong.Machine
	if cfg.Debug {
		monitor := debugui.NewMonitor(120)
		opts.Systems = []ecs.System{
			debugui.Watch[pong.State](monitor),
			&debugui.StatsSystem{
				Monitor: monitor,
				Stats:   func() *ecs.SchedulerStats { return machine.Stats() },
			},
		}
		game.Overlay = debugui_ebiten.NewOverlay("pong", court.Width*cfg.Scale, court.Height*cfg.Scale, monitor)
	}
	machine = pong.NewMachine(opts)

	done := make(chan struct{})
	go func() {
		defer close(done)
		machine.Run(ctx)
	}()

	err := display.Run(game, "pong", cfg.Scale)
	cancel()
	<-done
	return err
}

func runHeadless(ctx context.Context, cfg *config.Config, f flags) {
	logger := log.New(os.Stderr, "", log.LstdFlags)
	court := cfg.Court()

	opts, renderers := newOptions(ctx, cfg, logger)
	wander := pong.NewWanderInput(cfg.Seed, court, 2)
	opts.Input = wander
	if cfg.Seed == 0 {
		opts.Entropy = wander
	}
	if f.ascii {
		frame := display.NewFrame(court.Width, court.Height)
		renderers = append(renderers, pong.RenderFunc(func(s pong.Snapshot) {
			display.Rasterize(frame, court, s)
			fmt.Printf("\033[H\033[2J%s%d - %d\n", frame, s.Score1, s.Score2)
		}))
	}
	opts.Renderer = renderers
	machine := pong.NewMachine(opts)

	if f.ticks <= 0 {
		machine.Run(ctx)
	} else {
		for i := 0; i < f.ticks && ctx.Err() == nil; i++ {
			machine.Tick()
		}
	}

	state := machine.State()
	logger.Printf("[GAME] final score %d - %d after %d ticks, %d paddle hits",
		state.Score.Of(pong.Player1), state.Score.Of(pong.Player2), state.Tick, state.Counters.PaddleHits)
}
