package farm

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-farm/internal/core"
)

// Field layout on screen.
const (
	cellW      = 8
	cellH      = 3
	gridX      = 1
	gridY      = 2
	panelMinW  = 26
	footerRows = 2
)

var instructionLines = []string{
	"Arrows/WASD  move the cursor",
	"Enter/Space  interact with the cell",
	"Tab          seed menu, 1-9 pick a seed",
	"Q            plant the selected seed",
	"E / R        water / fertilize",
	"I / C        inventory / crafting",
	"X            trash item (in inventory)",
	"Esc          close a panel",
	"P            pause, Ctrl+R restart",
	"",
	"Water and fertilize trees to grow them",
	"faster. Sunlight helps too.",
}

func (g *Game) requiredSize() (int, int) {
	return gridX + g.field.Width()*cellW + 2 + panelMinW, gridY + g.field.Height()*cellH + footerRows
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if w, h := g.requiredSize(); dst.Width() < w || dst.Height() < h {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", w, h))
		return
	}

	g.field.Each(func(c *Cell) { g.renderCell(dst, c) })
	g.renderPanel(dst)
	if msg := g.messages.Text(); msg != "" {
		dst.DrawTextColored(gridX, dst.Height()-1, msg, core.ColorBrightYellow)
	}

	switch {
	case g.gameOver:
		g.renderOverlay(dst, fmt.Sprintf("Game Over! Final Score: %d", g.stats.Current()), g.endReason+". Press Ctrl+R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	case g.messages.InstructionsVisible():
		g.renderList(dst, "How to play", instructionLines, -1)
	case g.overlay == OverlaySeeds:
		g.renderSeeds(dst)
	case g.overlay == OverlayInventory:
		g.renderInventory(dst)
	case g.overlay == OverlayCraft:
		g.renderCraft(dst)
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s | Score: %d  Total: %d  High: %d", g.Title(), g.stats.Current(), g.stats.Total(), g.stats.High())
	if g.mode == ModeSeason && g.cfg.Season.Length > 0 {
		left := max(0, g.cfg.Season.Length-g.elapsed)
		hud += fmt.Sprintf("  Season: %d:%02d", int(left)/60, int(left)%60)
	}
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

func (g *Game) renderCell(dst *core.Screen, c *Cell) {
	x := gridX + c.X*cellW
	y := gridY + c.Y*cellH
	food := c.Food()

	border := core.ColorGray
	switch {
	case food != nil && food.Flashing():
		border = core.ColorBrightWhite
	case c.IsRipe():
		border = food.Crop().Color
	case food != nil:
		border = core.ColorYellow
	}
	if g.player.Target() == c {
		border = core.ColorBrightMagenta
	}
	if c.X == g.cursor.X && c.Y == g.cursor.Y {
		border = core.ColorBrightCyan
	}
	dst.DrawBoxColored(core.NewRect(x, y, cellW, cellH), border)

	if p := g.player.Position(); p.X == c.X && p.Y == c.Y {
		dst.SetColored(x+1, y+1, '@', core.ColorBrightWhite)
	}
	switch {
	case food != nil:
		glyph := food.Crop().Glyph
		if st, ok := food.Stage(); ok && st.Glyph != "" {
			glyph = firstRune(st.Glyph, glyph)
		}
		dst.SetColored(x+2, y+1, glyph, food.Crop().Color)
		if food.IsRipe() {
			dst.DrawTextColored(x+4, y+1, "rdy", core.ColorBrightGreen)
		} else {
			dst.DrawText(x+4, y+1, fmt.Sprintf("%2.0f%%", food.Progress()*100))
		}
	case c.Item != "":
		glyph := '*'
		if it, ok := g.catalog.Get(c.Item); ok {
			glyph = firstRune(it.Glyph, glyph)
		}
		dst.SetColored(x+3, y+1, glyph, core.ColorMagenta)
	}
}

// renderPanel draws the selected cell, farmer and vitals to the right.
func (g *Game) renderPanel(dst *core.Screen) {
	px := gridX + g.field.Width()*cellW + 2
	barW := max(8, min(20, dst.Width()-px-12))
	y := gridY
	line := func(text string, c core.Color) {
		dst.DrawTextColored(px, y, text, c)
		y++
	}
	bar := func(label string, ratio float64, c core.Color) {
		dst.DrawText(px, y, label)
		dst.DrawBar(px+10, y, barW, ratio, c)
		y++
	}

	cell := g.SelectedCell()
	line(fmt.Sprintf("Cell (%d,%d)", cell.X+1, cell.Y+1), core.ColorBrightCyan)
	line(cell.StatusDescription(), core.ColorDefault)
	if food := cell.Food(); food != nil {
		line(food.Description(), food.Crop().Color)
		if rem := food.Remaining(); rem >= 0 && food.IsGrowing() {
			line(fmt.Sprintf("Growing: %.1fs", rem), core.ColorDefault)
		}
		if n, ok := food.Nurturer(); ok {
			bar("Moisture", n.Moisture(), core.ColorBlue)
			bar("Nutrients", n.Nutrients(), core.ColorOrange)
			if st, ok := food.Stage(); ok {
				line("Stage: "+st.Name, core.ColorGreen)
			}
		}
	}
	y++

	p := g.player
	status := "Farmer: " + StateName(p.State())
	if p.Task() != TaskNone {
		status += " (" + p.Task().String() + ")"
	}
	line(status, core.ColorDefault)
	if st := p.State(); st == StatePlant || st == StatePickup {
		bar("Working", p.ActionProgress(), core.ColorCyan)
	}
	if g.vitals.Enabled() {
		hp, cal, water := g.vitals.Ratios()
		bar("Health", hp, core.ColorRed)
		bar("Calories", cal, core.ColorYellow)
		bar("Water", water, core.ColorBlue)
	}
	y++

	if seed, ok := g.SelectedSeed(); ok {
		line(fmt.Sprintf("Seed: [%d] %s", g.seedIndex+1, seed.Name), seed.Color)
	}
	if g.sun != nil {
		bar("Sun", g.sun.Daylight(), core.ColorBrightYellow)
	}
	line(fmt.Sprintf("Bag: %d/%d", g.inv.Len(), g.inv.Capacity()), core.ColorDefault)
}

func (g *Game) renderSeeds(dst *core.Screen) {
	crops := g.nursery.Crops()
	lines := make([]string, len(crops))
	for i, c := range crops {
		lines[i] = fmt.Sprintf("%d. %-6s %3d pts  %s", i+1, c.Name, c.Points, c.Kind)
	}
	g.renderList(dst, "Choose a seed", lines, g.seedIndex)
}

func (g *Game) renderInventory(dst *core.Screen) {
	names := g.InventoryNames()
	counts := g.inv.Counts()
	lines := make([]string, 0, len(names)+2)
	for _, n := range names {
		lines = append(lines, fmt.Sprintf("%-10s x%d", n, counts[n]))
	}
	if len(lines) == 0 {
		lines = append(lines, "(empty)")
	}
	lines = append(lines, "", fmt.Sprintf("%d/%d slots", g.inv.Len(), g.inv.Capacity()))
	if name, ok := g.trash.Pending(); ok {
		lines = append(lines, fmt.Sprintf("Delete %s? Enter/Esc (%.0fs)", name, g.trash.Remaining()))
	} else if len(names) > 0 {
		if it, ok := g.catalog.Get(names[g.listIndex]); ok && it.Description != "" {
			lines = append(lines, it.Description)
		}
	}
	g.renderList(dst, "Inventory", lines, g.listIndex)
}

func (g *Game) renderCraft(dst *core.Screen) {
	var lines []string
	for _, bp := range g.crafter.Recipes() {
		mark := " "
		if g.crafter.CanCraft(bp) {
			mark = "+"
		}
		lines = append(lines, fmt.Sprintf("%s %-9s %s", mark, bp.Name, strings.Join(g.crafter.Status(bp), ", ")))
	}
	if len(lines) == 0 {
		lines = append(lines, "(no recipes)")
	}
	g.renderList(dst, "Crafting", lines, g.listIndex)
}

// renderList draws a centered box with a title and lines. The selected
// line is highlighted; pass -1 for none.
func (g *Game) renderList(dst *core.Screen, title string, lines []string, selected int) {
	boxW := len([]rune(title)) + 4
	for _, l := range lines {
		boxW = max(boxW, len([]rune(l))+6)
	}
	boxW = min(boxW, dst.Width())
	boxH := min(len(lines)+4, dst.Height())
	r := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(r, ' ')
	dst.DrawBox(r)
	dst.DrawTextColored(r.X+2, r.Y+1, title, core.ColorBrightWhite)
	for i, l := range lines {
		yy := r.Y + 2 + i
		if yy >= r.Bottom()-1 {
			break
		}
		if i == selected {
			dst.DrawTextColored(r.X+1, yy, "> "+l, core.ColorBrightCyan)
			continue
		}
		dst.DrawText(r.X+3, yy, l)
	}
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := max(len(line1), len(line2))
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
