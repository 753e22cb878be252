package constant

// Device layout in terminal cells
const (
	// ScreenCols/ScreenRows give the LCD inner region; row 0 is the status bar
	ScreenCols = 64
	ScreenRows = 20

	// DeviceMarginX pads the body left and right of the LCD frame
	DeviceMarginX = 4

	// ControlRows is the height of the D-pad and button area under the screen
	ControlRows = 9

	// DeviceCols/DeviceRows are the full body including border
	DeviceCols = ScreenCols + 2 + 2*DeviceMarginX
	DeviceRows = 1 + 1 + (ScreenRows + 2) + 1 + ControlRows + 1
)

// App viewport sizes inside the LCD
const (
	// SnakeCellCols is how many columns one grid cell takes; one row per cell keeps cells square
	SnakeCellCols = 2

	// AsteroidsCanvasCols/Rows size the braille canvas, 2x4 dots per cell
	AsteroidsCanvasCols = 48
	AsteroidsCanvasRows = 18
)

// KeychainPixelsPerCol/Row convert spring pixels into terminal cells
const (
	KeychainPixelsPerCol = 8.0
	KeychainPixelsPerRow = 16.0
)
