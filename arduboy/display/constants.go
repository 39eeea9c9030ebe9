package display

// Screen geometry of the device OLED
const (
	// Width is the display width in pixels
	Width = 128
	// Height is the display height in pixels
	Height = 64
	// PageHeight is the number of pixel rows packed into one buffer byte
	PageHeight = 8
	// BufferSize is the size in bytes of a packed 1-bit frame
	BufferSize = Width * Height / PageHeight
)

// DefaultPixelScale is the default scaling factor for device pixels in
// windows and PNG snapshots
const DefaultPixelScale = 4

// Frame pacing constants
const (
	// DefaultFrameRate is the frame rate used until SetFrameRate is called
	DefaultFrameRate = 60
)

// Grayscale sample values used by image dumps
const (
	// GrayscaleWhite is the sample written for a lit pixel
	GrayscaleWhite = 255
	// GrayscaleBlack is the sample written for an unlit pixel
	GrayscaleBlack = 0
	// PGMMaxValue is the max value declared in PGM headers
	PGMMaxValue = 255
	// FullAlpha is the alpha value for fully opaque pixels
	FullAlpha = 255
)

// Default colours for rendered snapshots and windows
const (
	// DefaultInk is the colour of lit pixels
	DefaultInk = "#ffffff"
	// DefaultPaper is the colour of unlit pixels
	DefaultPaper = "#000000"
)

// Test pattern constants
const (
	// TestPatternCount is the number of available test patterns
	TestPatternCount = 4
	// TestPatternTileSize is the size of tiles for checkerboard and diagonal patterns
	TestPatternTileSize = 8
	// TestPatternStripeWidth is the width of stripes in the stripe pattern
	TestPatternStripeWidth = 4
	// TestPatternAnimationFrames is the number of frames between test pattern animations
	TestPatternAnimationFrames = 30
	// TestPatternStripeSpeed is the animation speed for stripe patterns
	TestPatternStripeSpeed = 2
	// TestPatternDiagonalSpeed is the animation speed for diagonal patterns
	TestPatternDiagonalSpeed = 4
)
