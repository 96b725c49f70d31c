package anchor

// PopupSide selects which side of the anchor point a popup opens toward.
type PopupSide int

const (
	PopupRight PopupSide = iota
	PopupLeft
)

// Popup is a window anchored to an owning window (or to another popup).
// Popups live in the screen's child list like any window, but the z-order
// fix-up keeps each popup strictly above its owner.
type Popup struct {
	Window
	owner        Windowed
	anchorPos    Vector2i
	anchorHeight int
	side         PopupSide
}

// NewPopup creates a popup under parent (normally the screen), anchored to
// owner. Owner may itself be a popup.
func NewPopup(parent Widget, owner Windowed) *Popup {
	p := &Popup{owner: owner, anchorHeight: 30, side: PopupRight}
	p.InitWidget(p, parent)
	return p
}

// Owner returns the window this popup is anchored to, or nil.
func (p *Popup) Owner() Windowed {
	return p.owner
}

// AnchorPos returns the anchor point, relative to the owner.
func (p *Popup) AnchorPos() Vector2i { return p.anchorPos }

// SetAnchorPos sets the anchor point, relative to the owner.
func (p *Popup) SetAnchorPos(pos Vector2i) { p.anchorPos = pos }

// AnchorHeight returns the vertical offset between anchor and popup top.
func (p *Popup) AnchorHeight() int { return p.anchorHeight }

// SetAnchorHeight sets the vertical offset between anchor and popup top.
func (p *Popup) SetAnchorHeight(h int) { p.anchorHeight = h }

// Side returns which side of the anchor the popup opens toward.
func (p *Popup) Side() PopupSide { return p.side }

// SetSide sets which side of the anchor the popup opens toward.
func (p *Popup) SetSide(side PopupSide) { p.side = side }

// RefreshPlacement repositions the popup next to its anchor point. Called
// from PerformLayout and whenever the owner moves.
func (p *Popup) RefreshPlacement() {
	if p.owner == nil {
		return
	}
	pos := p.owner.Position().Add(p.anchorPos).Sub(Vector2i{0, p.anchorHeight})
	if p.side == PopupLeft {
		pos.X -= p.Size().X
	}
	p.SetPosition(pos)
}

// PerformLayout lays out children then snaps the popup to its anchor.
func (p *Popup) PerformLayout(r Renderer) {
	p.Window.PerformLayout(r)
	p.RefreshPlacement()
}
