package main

import (
	"fmt"
	"image"
	"log"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lukaszgryglicki/tesseract4d/internal/tesseract4d"
)

const (
	screenWidth  = 480
	screenHeight = 480
	objID        = "tesseract"
)

var letterKeys = map[rune]ebiten.Key{
	'A': ebiten.KeyA, 'C': ebiten.KeyC, 'D': ebiten.KeyD, 'F': ebiten.KeyF,
	'Q': ebiten.KeyQ, 'S': ebiten.KeyS, 'V': ebiten.KeyV, 'W': ebiten.KeyW,
	'X': ebiten.KeyX, 'Z': ebiten.KeyZ,
}

type game struct {
	reg   *tesseract4d.Registry
	store *tesseract4d.Store
	mesh  *tesseract4d.Mesh

	yaw, pitch float64
	camDirty   bool
	cam        *tesseract4d.Camera

	drawn     uint64
	img       *image.RGBA
	fbImg     *ebiten.Image
	showPanel bool
	lastErr   error
}

func newGame() (*game, error) {
	g := &game{
		reg:       tesseract4d.NewRegistry(),
		mesh:      tesseract4d.NewMesh(objID),
		yaw:       30 * math.Pi / 180,
		pitch:     20 * math.Pi / 180,
		camDirty:  true,
		img:       image.NewRGBA(image.Rect(0, 0, screenWidth, screenHeight)),
		showPanel: true,
	}
	s, err := g.reg.Register(objID, g.mesh)
	if err != nil {
		return nil, err
	}
	g.store = s
	return g, nil
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.showPanel = !g.showPanel
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit0) {
		g.lastErr = g.store.Reset()
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.yaw -= 0.03
		g.camDirty = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.yaw += 0.03
		g.camDirty = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.pitch += 0.03
		g.camDirty = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.pitch -= 0.03
		g.camDirty = true
	}
	changed, err := tesseract4d.HandleKeys(g.store, func(r rune) bool {
		k, ok := letterKeys[r]
		return ok && ebiten.IsKeyPressed(k)
	})
	if changed || err != nil {
		g.lastErr = err
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.camDirty {
		g.cam = tesseract4d.NewCamera(screenWidth, screenHeight, tesseract4d.CamDistance, 2*tesseract4d.FOV, g.yaw, g.pitch)
		g.camDirty = false
		g.drawn = 0
	}
	if v := g.mesh.Version(); v != g.drawn || g.fbImg == nil {
		snap := g.mesh.Snapshot()
		tesseract4d.RenderWireframe(g.img, snap, g.cam)
		if g.fbImg == nil {
			g.fbImg = ebiten.NewImage(screenWidth, screenHeight)
		}
		g.fbImg.WritePixels(g.img.Pix)
		g.drawn = snap.Version
	}
	screen.DrawImage(g.fbImg, nil)

	if g.showPanel {
		if rows, ok := tesseract4d.Panel(g.reg, objID); ok {
			text := tesseract4d.FormatPanel("Tesseract 4D Controls", rows)
			if g.lastErr != nil {
				text += fmt.Sprintf("\nerror: %v\n", g.lastErr)
			}
			ebitenutil.DebugPrint(screen, text+"\n"+tesseract4d.HelpText())
		}
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	tesseract4d.Debug = os.Getenv("DEBUG") != ""
	g, err := newGame()
	if err != nil {
		log.Fatal(err)
	}
	ebiten.SetWindowTitle("Tesseract 4D")
	ebiten.SetWindowSize(screenWidth*2, screenHeight*2)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
