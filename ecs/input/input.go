package input

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/letterfall/ecs"
	"github.com/milk9111/letterfall/ecs/component"
)

// InputSystem turns ebiten input into world events and pointer state. Typed
// characters become key events, Ctrl/Cmd+V becomes a paste event and the
// cursor or first touch drives the pointer.
type InputSystem struct {
	chars   []rune
	touches []ebiten.TouchID
	touch   ebiten.TouchID
	touched bool
}

func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	modifier := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)

	i.chars = ebiten.AppendInputChars(i.chars[:0])
	if !modifier {
		for _, r := range i.chars {
			w.Events().Push(ecs.Event{Type: ecs.EventKey, Data: ecs.KeyEvent{Key: string(r)}})
		}
	}

	if modifier && inpututil.IsKeyJustPressed(ebiten.KeyV) {
		text, err := readClipboard()
		if err != nil {
			log.Printf("input: clipboard: %v", err)
		} else if text != "" {
			w.Events().Push(ecs.Event{Type: ecs.EventPaste, Data: ecs.PasteEvent{Text: text}})
		}
	}

	i.updatePointer(w)
}

func (i *InputSystem) updatePointer(w *ecs.World) {
	ratio := 1.0
	if e, ok := w.First(component.ViewportComponent.Kind()); ok {
		if vp, ok := ecs.Get(w, e, component.ViewportComponent.Kind()); ok && vp.PixelRatio > 0 {
			ratio = vp.PixelRatio
		}
	}

	cx, cy := ebiten.CursorPosition()
	hasPos := true
	down := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	pressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	released := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)

	if !i.touched {
		i.touches = inpututil.AppendJustPressedTouchIDs(i.touches[:0])
		if len(i.touches) > 0 {
			i.touch = i.touches[0]
			i.touched = true
			pressed = true
		}
	}
	if i.touched {
		if inpututil.IsTouchJustReleased(i.touch) {
			i.touched = false
			released = true
			// a lifted touch has no position
			hasPos = false
		} else {
			cx, cy = ebiten.TouchPosition(i.touch)
			down = true
		}
	}

	ecs.ForEach(w, component.PointerInputComponent.Kind(), func(_ ecs.Entity, in *component.PointerInput) {
		if hasPos {
			in.X = float64(cx) / ratio
			in.Y = float64(cy) / ratio
		}
		in.Down = down
		in.Pressed = in.Pressed || pressed
		in.Released = in.Released || released
	})
}
