package config

const (
	WindowWidth  = 1024
	WindowHeight = 768
	WindowTitle  = "Backdrop - Esc/Q: Quit"

	DefaultVariant = "trails"
	DefaultTPS     = 60

	// Pointer coordinates beyond this are clamped before reaching the scene.
	PointerLimit = 1e6

	// Interaction
	PointerRadius = 150
	PointerPull   = 0.0001
	MaxSpeed      = 3.0

	// Shapes are only wrapped once they leave the viewport by this much.
	ShapeMargin = 100
)
