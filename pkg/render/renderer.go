// pkg/render/renderer.go
package render

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-breakpoint-defense/internal/component"
	"go-breakpoint-defense/internal/config"
	"go-breakpoint-defense/internal/entity"
	"go-breakpoint-defense/pkg/route"
)

const pathWidth = 34

var (
	whiteOnce     sync.Once
	whiteSubImage *ebiten.Image
)

func whitePixel() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSubImage
}

// Renderer рисует маршрут, слоты и сущности симуляции.
type Renderer struct {
	Viewport
	route    *route.Route
	slots    []route.Vec
	palette  Palette
	fontFace font.Face
	mapImage *ebiten.Image // предрендеренная карта
}

func NewRenderer(r *route.Route, slots []route.Vec, vp Viewport, palette Palette, face font.Face) *Renderer {
	rr := &Renderer{
		Viewport: vp,
		route:    r,
		slots:    slots,
		palette:  palette,
		fontFace: face,
	}
	rr.RenderMapImage()
	return rr
}

// RenderMapImage перерисовывает статичный фон: дорогу и слоты.
func (r *Renderer) RenderMapImage() {
	if r.mapImage == nil {
		r.mapImage = ebiten.NewImage(r.Width, r.Height)
	}
	r.mapImage.Fill(r.palette.Background)

	prevX, prevY := r.ToScreen(r.route.Spawn)
	vector.DrawFilledCircle(r.mapImage, prevX, prevY, pathWidth/2, r.palette.Path, true)
	for _, wp := range r.route.Waypoints {
		x, y := r.ToScreen(wp)
		vector.StrokeLine(r.mapImage, prevX, prevY, x, y, pathWidth, r.palette.Path, true)
		vector.DrawFilledCircle(r.mapImage, x, y, pathWidth/2, r.palette.Path, true)
		prevX, prevY = x, y
	}

	for i, slot := range r.slots {
		x, y := r.ToScreen(slot)
		vector.StrokeCircle(r.mapImage, x, y, config.SlotRadius, r.palette.StrokeWidth, r.palette.Slot, true)
		if r.fontFace != nil {
			text.Draw(r.mapImage, fmt.Sprint(i+1), r.fontFace, int(x)-4, int(y)+4, r.palette.Slot)
		}
	}
}

// Draw выводит кадр. selectedSlot < 0: без подсветки.
func (r *Renderer) Draw(screen *ebiten.Image, ecs *entity.ECS, selectedSlot int) {
	screen.DrawImage(r.mapImage, nil)

	if selectedSlot >= 0 && selectedSlot < len(r.slots) {
		x, y := r.ToScreen(r.slots[selectedSlot])
		vector.StrokeCircle(screen, x, y, config.SlotRadius+4, r.palette.StrokeWidth*1.5, r.palette.Stroke, true)
	}

	r.drawTowers(screen, ecs)
	r.drawEnemies(screen, ecs)
	r.drawProjectiles(screen, ecs)
}

func (r *Renderer) drawTowers(screen *ebiten.Image, ecs *entity.ECS) {
	for _, id := range entity.SortedIDs(ecs.Towers) {
		pos, ok := ecs.Positions[id]
		rend, ok2 := ecs.Renderables[id]
		if !ok || !ok2 {
			continue
		}
		x, y := r.ToScreen(pos.Vec())
		vector.DrawFilledCircle(screen, x, y, rend.Radius, rend.Color, true)
		vector.StrokeCircle(screen, x, y, rend.Radius, r.palette.StrokeWidth, DarkenColor(rend.Color), true)

		// уровень: точки под башней
		level := ecs.Towers[id].Level
		left := x - float32(level-1)*4
		for l := 0; l < level; l++ {
			vector.DrawFilledCircle(screen, left+float32(l)*8, y+rend.Radius+6, 2.5, r.palette.Stroke, true)
		}
	}
}

func (r *Renderer) drawEnemies(screen *ebiten.Image, ecs *entity.ECS) {
	for _, id := range entity.SortedIDs(ecs.Enemies) {
		enemy := ecs.Enemies[id]
		pos, ok := ecs.Positions[id]
		rend, ok2 := ecs.Renderables[id]
		if !ok || !ok2 {
			continue
		}
		x, y := r.ToScreen(pos.Vec())

		// шаг анимации: лёгкое покачивание
		bob := float32(0)
		if anim, ok := ecs.Animations[id]; ok && anim.State != component.AnimIdle {
			bob = float32(math.Sin(float64(anim.Frame)*math.Pi/4)) * 2
		}
		y += bob

		vector.DrawFilledCircle(screen, x, y, rend.Radius, rend.Color, true)
		vector.StrokeCircle(screen, x, y, rend.Radius, 1, DarkenColor(rend.Color), true)
		if anim, ok := ecs.Animations[id]; ok {
			r.drawHeading(screen, x, y, rend.Radius, anim.State)
		}

		if enemy.MaxLife > 0 && enemy.Life < enemy.MaxLife {
			w := rend.Radius * 2
			frac := float32(enemy.Life) / float32(enemy.MaxLife)
			top := y - rend.Radius - 7
			vector.DrawFilledRect(screen, x-w/2, top, w, 3, DarkenColor(r.palette.HealthBar), false)
			vector.DrawFilledRect(screen, x-w/2, top, w*frac, 3, r.palette.HealthBar, false)
		}
	}
}

func (r *Renderer) drawHeading(screen *ebiten.Image, x, y, radius float32, state component.AnimState) {
	var dx, dy float32
	switch state {
	case component.AnimWalkLeft:
		dx = -1
	case component.AnimWalkRight:
		dx = 1
	case component.AnimWalkUp:
		dy = -1
	case component.AnimWalkDown:
		dy = 1
	default:
		return
	}
	tip := radius * 0.8
	FillPolygon(screen, r.palette.Stroke,
		[2]float32{x + dx*tip, y + dy*tip},
		[2]float32{x + dx*tip*0.4 - dy*tip*0.35, y + dy*tip*0.4 + dx*tip*0.35},
		[2]float32{x + dx*tip*0.4 + dy*tip*0.35, y + dy*tip*0.4 - dx*tip*0.35},
	)
}

func (r *Renderer) drawProjectiles(screen *ebiten.Image, ecs *entity.ECS) {
	for _, id := range entity.SortedIDs(ecs.Projectiles) {
		p := ecs.Projectiles[id]
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		x, y := r.ToScreen(pos.Vec())
		clr := r.palette.Projectile
		radius := float32(config.ProjectileRadius)
		if p.Frame > 0 {
			// заряд у цели разгорается к кадру удара
			t := float64(p.Frame) / config.ShotImpactFrame
			clr = LerpColor(r.palette.Projectile, r.palette.Impact, t)
			radius += float32(p.Frame)
		}
		vector.DrawFilledCircle(screen, x, y, radius, clr, true)
	}
}

// FillPolygon заливает выпуклый многоугольник.
func FillPolygon(dst *ebiten.Image, clr color.Color, pts ...[2]float32) {
	if len(pts) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(pts[0][0], pts[0][1])
	for _, p := range pts[1:] {
		path.LineTo(p[0], p[1])
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	cr, cg, cb, ca := clr.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(cr) / 0xffff
		vs[i].ColorG = float32(cg) / 0xffff
		vs[i].ColorB = float32(cb) / 0xffff
		vs[i].ColorA = float32(ca) / 0xffff
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	op.FillRule = ebiten.EvenOdd
	dst.DrawTriangles(vs, is, whitePixel(), op)
}
