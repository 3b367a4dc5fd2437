package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"runtime/debug"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tannenbaum/audio"
	"github.com/lixenwraith/tannenbaum/engine"
	"github.com/lixenwraith/tannenbaum/gesture"
	"github.com/lixenwraith/tannenbaum/render"
	"github.com/lixenwraith/tannenbaum/scene"
	"github.com/lixenwraith/tannenbaum/track"
)

const framePeriod = 33 * time.Millisecond // ~30 FPS

// envConfig carries TB_* environment overrides; flags take precedence
type envConfig struct {
	Listen string `env:"TB_LISTEN" envDefault:"127.0.0.1:9464"`
	Seed   int64  `env:"TB_SEED" envDefault:"0"`
	Demo   bool   `env:"TB_DEMO"`
	Debug  bool   `env:"TB_DEBUG"`
}

func main() {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		fmt.Fprintf(os.Stderr, "bad environment: %v\n", err)
		os.Exit(1)
	}

	listenFlag := flag.String("listen", ec.Listen, "UDP address the hand tracker streams landmark frames to")
	seedFlag := flag.Int64("seed", ec.Seed, "Layout random seed (0 = time-based)")
	demoFlag := flag.Bool("demo", ec.Demo, "Run the canned gesture choreography instead of a tracker")
	debugFlag := flag.Bool("debug", ec.Debug, "Write debug logs to logs/")
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: restore the terminal before the stack trace hits
	// stderr, or the output is unreadable in raw mode
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nTANNENBAUM CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	// Audio is optional; the scene runs mute if the speaker is busy
	chime, err := audio.New()
	if err != nil {
		log.Printf("audio init failed, continuing silent: %v", err)
	}

	// Gesture source: canned demo loop, or the tracker's UDP stream.
	// A failed bind leaves the source nil and the scene gesture-inert
	// in TREE mode; keyboard control still works
	var source gesture.Source
	var listener *track.Listener
	if *demoFlag {
		source = track.DemoLoop(45)
	} else {
		cfg := track.DefaultConfig()
		cfg.Address = *listenFlag
		if l, err := track.Listen(cfg); err != nil {
			log.Printf("tracker listen failed on %s, gestures disabled: %v", *listenFlag, err)
		} else {
			source = l
			listener = l
		}
	}

	renderer := render.New(screen)

	ecfg := engine.DefaultConfig()
	ecfg.Seed = seed
	ecfg.Source = source
	ecfg.Sink = renderer
	ecfg.OnReady = func() { log.Print("scene ready") }
	ecfg.OnMode = func(from, to scene.Mode) {
		log.Printf("mode %s -> %s", from, to)
		chime.ModeChime(to)
	}
	eng := engine.New(ecfg)

	var teardown sync.Once
	cleanup := func() {
		teardown.Do(func() {
			if err := eng.Close(); err != nil {
				log.Printf("engine close: %v", err)
			}
			if listener != nil {
				if n := listener.Dropped(); n > 0 {
					log.Printf("tracker: %d undecodable datagrams dropped this session", n)
				}
			}
			chime.Close()
			screen.Fini()
		})
	}
	defer cleanup()

	run(screen, eng, renderer)
}

// run drives the frame loop until quit. One iteration per display
// refresh: drain input, drain pending photo uploads, then tick (which
// samples gestures, advances the scene and submits the frame)
func run(screen tcell.Screen, eng *engine.Engine, renderer *render.Renderer) {
	photoCh := make(chan image.Image, 4)
	eventCh := startInputReader(screen)

	ticker := time.NewTicker(framePeriod)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-eventCh:
			if !ok {
				return
			}
			if !handleEvent(ev, screen, eng, renderer, photoCh) {
				return
			}

		case <-ticker.C:
			// Photo insertion completes before this frame's tick
			// observes the collection
		drainPhotos:
			for {
				select {
				case img := <-photoCh:
					eng.AddPhoto(img)
				default:
					break drainPhotos
				}
			}
			eng.Tick()
		}
	}
}

func handleEvent(ev tcell.Event, screen tcell.Screen, eng *engine.Engine, renderer *render.Renderer, photoCh chan image.Image) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case '1':
				eng.Request(scene.ModeTree)
			case '2':
				eng.Request(scene.ModeScatter)
			case '3':
				eng.Request(scene.ModeFocus)
			case 'u':
				go pickPhoto(photoCh)
			case 'h':
				renderer.ToggleHUD()
			}
		}

	case *tcell.EventResize:
		w, h := screen.Size()
		renderer.Resize(w, h)
	}
	return true
}

// startInputReader pumps terminal events into a channel so the frame
// loop can drain them without blocking
func startInputReader(screen tcell.Screen) chan tcell.Event {
	ch := make(chan tcell.Event, 64)
	go pumpEvents(screen.PollEvent, ch)
	return ch
}

// pumpEvents forwards events until poll returns nil. The send blocks
// when the channel fills so no keystroke is ever lost; the frame loop
// drains the channel every iteration
func pumpEvents(poll func() tcell.Event, ch chan<- tcell.Event) {
	for {
		ev := poll()
		if ev == nil {
			close(ch)
			return
		}
		ch <- ev
	}
}
