package anchor

// Renderer is the immediate-mode vector renderer capability the screen draws
// through. Rendering itself is out of scope for the dispatch core; the core
// only brackets frames, applies the tooltip fade alpha, and hands widgets a
// surface to draw on.
type Renderer interface {
	// BeginFrame starts a frame at the given logical size and DPI scale.
	BeginFrame(logical Vector2i, pixelRatio float32)

	// EndFrame flushes the frame.
	EndFrame()

	// SetGlobalAlpha scales the opacity of subsequent draw calls,
	// used for the tooltip fade-in.
	SetGlobalAlpha(alpha float32)

	// DrawTooltip renders tooltip text anchored below a widget.
	DrawTooltip(anchor Vector2i, text string, theme *Theme)
}
