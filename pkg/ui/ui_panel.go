package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// UIWidget is an interface for all UI widgets
type UIWidget interface {
	Update()
	Draw(screen *ebiten.Image)
	GetHeight() float64
}

// SliderWrapper wraps Slider to implement UIWidget
type SliderWrapper struct {
	*Slider
}

func (s *SliderWrapper) GetHeight() float64 {
	return s.H + 25 // Slider height + label space
}

// CheckboxWrapper wraps Checkbox to implement UIWidget
type CheckboxWrapper struct {
	*Checkbox
}

func (c *CheckboxWrapper) GetHeight() float64 {
	return c.Size + 20
}

// ButtonWrapper wraps Button to implement UIWidget
type ButtonWrapper struct {
	*Button
}

func (b *ButtonWrapper) GetHeight() float64 {
	return b.Height + 10
}

// UIPanel stacks widgets under section headers in a scrollable box.
type UIPanel struct {
	Title         string
	X, Y          float64
	Width, Height float64
	Widgets       []UIWidget
	Labels        []string // drawn above the widget, empty for buttons
	ScrollOffset  float64

	// Styling
	BGColor     color.RGBA
	BorderColor color.RGBA

	sections []PanelSection
}

// PanelSection groups the widgets [StartIndex, EndIndex) under a title.
type PanelSection struct {
	Title      string
	StartIndex int
	EndIndex   int
}

func NewUIPanel(title string, x, y, width, height float64) *UIPanel {
	return &UIPanel{
		Title:       title,
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		BGColor:     color.RGBA{R: 40, G: 40, B: 45, A: 230},
		BorderColor: color.RGBA{R: 100, G: 100, B: 110, A: 255},
	}
}

func (p *UIPanel) AddSection(title string) {
	p.sections = append(p.sections, PanelSection{
		Title:      title,
		StartIndex: len(p.Widgets),
		EndIndex:   len(p.Widgets),
	})
}

// EndSection closes the current section
func (p *UIPanel) EndSection() {
	if len(p.sections) > 0 {
		p.sections[len(p.sections)-1].EndIndex = len(p.Widgets)
	}
}

func (p *UIPanel) AddSlider(label string, min, max, value float64) *Slider {
	yOffset := p.nextYOffset()
	slider := NewSlider(p.X+10, p.Y+yOffset+20, p.Width-20, label, min, max, value)
	p.add(&SliderWrapper{slider}, label)
	return slider
}

func (p *UIPanel) AddCheckbox(label string, value bool) *Checkbox {
	yOffset := p.nextYOffset()
	checkbox := NewCheckbox(p.X+10, p.Y+yOffset+20, label, value)
	p.add(&CheckboxWrapper{checkbox}, label)
	return checkbox
}

func (p *UIPanel) AddButton(label string, onClick func()) *Button {
	yOffset := p.nextYOffset()
	button := NewButton(p.X+10, p.Y+yOffset+20, p.Width-20, 22, label, onClick)
	p.add(&ButtonWrapper{button}, "")
	return button
}

func (p *UIPanel) add(w UIWidget, label string) {
	p.Widgets = append(p.Widgets, w)
	p.Labels = append(p.Labels, label)
}

// Contains reports whether the cursor (x, y) is over the panel. Clicks there
// belong to the widgets, not to the world.
func (p *UIPanel) Contains(x, y int) bool {
	return within(x, y, p.X, p.Y, p.Width, p.Height)
}

func (p *UIPanel) nextYOffset() float64 {
	offset := float64(len(p.sections)) * 25
	for _, widget := range p.Widgets {
		offset += widget.GetHeight()
	}
	return offset
}

func (p *UIPanel) totalHeight() float64 {
	return 30 + p.nextYOffset()
}

// Update handles the wheel and then every widget.
func (p *UIPanel) Update() {
	mx, my := ebiten.CursorPosition()
	if _, dy := ebiten.Wheel(); dy != 0 && p.Contains(mx, my) {
		p.ScrollOffset -= dy * 20

		maxScroll := p.totalHeight() - p.Height + 40
		if maxScroll < 0 {
			maxScroll = 0
		}
		if p.ScrollOffset < 0 {
			p.ScrollOffset = 0
		}
		if p.ScrollOffset > maxScroll {
			p.ScrollOffset = maxScroll
		}
	}

	for _, widget := range p.Widgets {
		widget.Update()
	}
}

func (p *UIPanel) Draw(screen *ebiten.Image) {
	vector.FillRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		p.BGColor, true)
	vector.StrokeRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		2, p.BorderColor, true)
	ebitenutil.DebugPrintAt(screen, p.Title, int(p.X+10), int(p.Y+5))

	currentY := p.Y + 30 - p.ScrollOffset
	for _, section := range p.sections {
		if p.visible(currentY, 25) {
			vector.FillRect(screen,
				float32(p.X+5), float32(currentY),
				float32(p.Width-10), 20,
				color.RGBA{R: 60, G: 60, B: 70, A: 255}, true)
			ebitenutil.DebugPrintAt(screen, section.Title, int(p.X+10), int(currentY+2))
		}
		currentY += 25

		for i := section.StartIndex; i < section.EndIndex && i < len(p.Widgets); i++ {
			widget := p.Widgets[i]
			if p.visible(currentY, 30) {
				offset := 0.0
				if label := p.Labels[i]; label != "" {
					ebitenutil.DebugPrintAt(screen, label, int(p.X+10), int(currentY))
					offset = 18
				}
				moveWidget(widget, currentY+offset)
				widget.Draw(screen)
			}
			currentY += widget.GetHeight()
		}
	}
}

func (p *UIPanel) visible(y, margin float64) bool {
	return y >= p.Y-margin && y <= p.Y+p.Height
}

// moveWidget places the widget at y after scrolling.
func moveWidget(widget UIWidget, y float64) {
	switch w := widget.(type) {
	case *SliderWrapper:
		w.Y = y
	case *CheckboxWrapper:
		w.Y = y
	case *ButtonWrapper:
		w.Y = y
	}
}
