package main

import (
	"errors"
	"flag"
	"image"
	"log"

	"github.com/automoto/shadowblade/components"
	"github.com/automoto/shadowblade/config"
	"github.com/automoto/shadowblade/fonts"
	"github.com/automoto/shadowblade/scenes"
	"github.com/automoto/shadowblade/shared/micmeter"
	"github.com/automoto/shadowblade/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene

	// Reloaded balance files, applied between ticks
	balance <-chan *config.Balance
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(balance <-chan *config.Balance) *Game {
	fonts.LoadDefaults()

	g := &Game{
		bounds:  image.Rectangle{},
		balance: balance,
	}

	if config.Debug.SkipMenu {
		mode := components.ModeStory
		if config.Debug.Endless {
			mode = components.ModeEndless
		}
		g.scene = scenes.NewWorldScene(g, mode)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	select {
	case b := <-g.balance:
		b.Apply()
		log.Printf("Balance reloaded")
	default:
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.StringVar(&config.Debug.BalancePath, "balance", "", "YAML file overriding balance values, reloaded on change")
	flag.BoolVar(&config.Debug.SkipMenu, "skip-menu", false, "start a run directly")
	flag.BoolVar(&config.Debug.Endless, "endless", false, "with -skip-menu, start in endless mode")
	flag.BoolVar(&config.Debug.DrawHitbox, "debug", false, "outline collision boxes and log run events")
	flag.Parse()
	config.Debug.LogEvents = config.Debug.DrawHitbox

	balance := make(chan *config.Balance, 1)
	if path := config.Debug.BalancePath; path != "" {
		b, err := config.LoadBalance(path)
		if err != nil {
			log.Fatalf("Failed to load balance file: %v", err)
		}
		b.Apply()
		watchBalance(path, balance)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Shadowblade")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	systems.EnableAudio()

	meter, err := micmeter.NewExecMeter()
	switch {
	case errors.Is(err, micmeter.ErrNoBackend):
		log.Printf("Warning: No microphone backend, scream to continue is disabled")
	case err != nil:
		log.Printf("Warning: Could not open microphone: %v", err)
	default:
		scenes.SetMicrophone(meter)
	}

	if err := ebiten.RunGame(NewGame(balance)); err != nil {
		log.Fatal(err)
	}
}

// watchBalance reloads path on every save and hands valid files to the game
// loop. Invalid edits are logged and skipped.
func watchBalance(path string, out chan *config.Balance) {
	w, err := config.WatchBalance(path)
	if err != nil {
		log.Printf("Warning: Could not watch balance file: %v", err)
		return
	}
	go func() {
		for {
			select {
			case name := <-w.Events:
				b, err := config.LoadBalance(name)
				if err != nil {
					log.Printf("Warning: Ignoring balance change: %v", err)
					continue
				}
				select {
				case out <- b:
				default:
					// The game has not applied the previous reload yet; keep the newest.
					select {
					case <-out:
					default:
					}
					out <- b
				}
			case err := <-w.Errors:
				log.Printf("Warning: Balance watcher: %v", err)
			}
		}
	}()
}
