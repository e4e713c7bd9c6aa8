package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/runecast/audio"
	"github.com/lixenwraith/runecast/config"
	"github.com/lixenwraith/runecast/constants"
	"github.com/lixenwraith/runecast/core"
	"github.com/lixenwraith/runecast/economy"
	"github.com/lixenwraith/runecast/engine"
	"github.com/lixenwraith/runecast/history"
	"github.com/lixenwraith/runecast/input"
	"github.com/lixenwraith/runecast/render"
	"github.com/lixenwraith/runecast/render/renderers"
	"github.com/lixenwraith/runecast/spell"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a casting session",
	Long: `Start a casting session.

Keys:
  1-9        select spell
  drag       trace the guide with the left mouse button
  p, space   pause
  m          mute
  q, Esc     quit`,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers game flags on both the root and play commands
func addPlayFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Bool(config.KeyNoAudio, false, "disable sound")
	f.String(config.KeyKeymap, "", "TOML keymap overrides")
	f.Duration(config.KeyCastBudget, 0, "time allowed per gesture (default 5s)")
	f.Uint64(config.KeySeed, 0, "effects RNG seed (default 1)")
}

// bindPlayFlags binds the flags of whichever command is running
func bindPlayFlags(cmd *cobra.Command) {
	for _, key := range []string{config.KeyNoAudio, config.KeyKeymap, config.KeyCastBudget, config.KeySeed} {
		if fl := cmd.Flags().Lookup(key); fl != nil && fl.Changed {
			v.Set(key, fl.Value.String())
		}
	}
}

func runPlay(cmd *cobra.Command, args []string) error {
	bindPlayFlags(cmd)
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("decoding flags: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	catalog, err := loadCatalog(cfg.Catalog)
	if err != nil {
		return err
	}

	keys := input.DefaultKeyTable()
	if cfg.Keymap != "" {
		data, err := os.ReadFile(cfg.Keymap)
		if err != nil {
			return fmt.Errorf("reading keymap: %w", err)
		}
		override, err := input.LoadKeyConfig(data)
		if err != nil {
			return err
		}
		keys = input.MergeKeyTable(keys, override)
	}

	var sink engine.ResultSink
	if cfg.HistoryDB != "" {
		store, err := history.Open(cfg.HistoryDB)
		if err != nil {
			return err
		}
		defer store.Close()
		sink = store
	}

	ledger := economy.NewLedger(cfg.Essence)

	stats, err := runGame(gameDeps{
		catalog:  catalog,
		keys:     keys,
		ledger:   ledger,
		sink:     sink,
		settings: cfg.Settings(),
		noAudio:  cfg.NoAudio,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderSummary(stats, ledger.Snapshot()))
	return nil
}

func loadCatalog(path string) (*spell.Catalog, error) {
	if path == "" {
		return spell.Builtin()
	}
	return spell.LoadCatalog(path)
}

type gameDeps struct {
	catalog  *spell.Catalog
	keys     *input.KeyTable
	ledger   *economy.Ledger
	sink     engine.ResultSink
	settings engine.Settings
	noAudio  bool
}

// runGame owns the terminal; the screen is finalized before it returns
func runGame(deps gameDeps) (engine.SessionStats, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return engine.SessionStats{}, fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return engine.SessionStats{}, fmt.Errorf("initializing screen: %w", err)
	}
	core.SetCrashScreen(screen)
	defer screen.Fini()

	// Panic Recovery: restore terminal before printing the trace
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	screen.EnableMouse(tcell.MouseDragEvents)
	screen.HideCursor()

	sound := audio.NewSoundManager()
	if !deps.noAudio {
		if err := sound.Initialize(); err != nil {
			log.Printf("audio init failed: %v (continuing without audio)", err)
		} else {
			defer sound.Cleanup()
		}
	}

	width, height := screen.Size()
	gameCtx := engine.NewGameContext(engine.GameConfig{
		Settings: deps.settings,
		Catalog:  deps.catalog,
		Economy:  deps.ledger,
		Sink:     deps.sink,
		Sound:    sound,
		Width:    width,
		Height:   height,
	})
	defer gameCtx.Shutdown()

	orchestrator := render.NewRenderOrchestrator(screen, width, height)
	renderers.RegisterAll(orchestrator, gameCtx)

	machine := input.NewMachine(func(x, y int) bool {
		return gameCtx.Surface.Contains(x, y)
	})
	machine.SetKeyTable(deps.keys)

	eventChan := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()
	lastFrame := time.Now()

	for {
		select {
		case ev := <-eventChan:
			intent := machine.Process(ev)
			if intent == nil {
				continue
			}
			if quit := dispatch(intent, gameCtx, machine, sound, screen, orchestrator); quit {
				return gameCtx.Stats(), nil
			}

		case <-gameCtx.Countdown.C():
			gameCtx.TickCountdown()

		case now := <-frameTicker.C:
			dt := now.Sub(lastFrame)
			lastFrame = now
			gameCtx.Update(dt)
			orchestrator.RenderFrame(render.NewRenderContextFromGame(gameCtx, dt))
		}
	}
}

// dispatch applies one intent; returns true on quit
func dispatch(in *input.Intent, gameCtx *engine.GameContext, machine *input.Machine,
	sound *audio.SoundManager, screen tcell.Screen, orchestrator *render.RenderOrchestrator) bool {
	switch in.Type {
	case input.IntentQuit:
		return true

	case input.IntentResize:
		screen.Sync()
		w, h := screen.Size()
		gameCtx.Resize(w, h)
		orchestrator.Resize(w, h)

	case input.IntentPause:
		gameCtx.TogglePause()

	case input.IntentToggleMute:
		log.Printf("mute: %t", sound.ToggleMute())

	case input.IntentSelectSpell:
		if err := gameCtx.SelectSlot(in.Slot); err != nil {
			log.Printf("select slot %d: %v", in.Slot, err)
		}

	case input.IntentGestureStart:
		if !gameCtx.PointerDown(in.X, in.Y) {
			// Nothing selected or session busy; drop the drag
			machine.Reset()
		}

	case input.IntentGestureMove:
		gameCtx.PointerMove(in.X, in.Y)

	case input.IntentGestureEnd:
		if r, ok := gameCtx.PointerUp(); ok {
			log.Printf("cast %s: success=%t damage=%d accuracy=%.3f", r.SpellID, r.Success, r.Damage, r.Accuracy)
		}
	}
	return false
}
