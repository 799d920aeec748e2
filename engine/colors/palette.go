package colors

// Basic colours at full channel intensity.
var (
	Black   = New565(0, 0, 0)
	White   = New565(31, 63, 31)
	Red     = New565(31, 0, 0)
	Green   = New565(0, 63, 0)
	Blue    = New565(0, 0, 31)
	Yellow  = New565(31, 63, 0)
	Cyan    = New565(0, 63, 31)
	Magenta = New565(31, 0, 31)
)

// CSS named colours used by the themes.
var (
	Gray          = RGB(0x80, 0x80, 0x80)
	DarkGray      = RGB(0xA9, 0xA9, 0xA9)
	DimGray       = RGB(0x69, 0x69, 0x69)
	Gainsboro     = RGB(0xDC, 0xDC, 0xDC)
	DarkCyan      = RGB(0x00, 0x8B, 0x8B)
	NavajoWhite   = RGB(0xFF, 0xDE, 0xAD)
	DarkOrange    = RGB(0xFF, 0x8C, 0x00)
	PeachPuff     = RGB(0xFF, 0xDA, 0xB9)
	LightPink     = RGB(0xFF, 0xB6, 0xC1)
	HotPink       = RGB(0xFF, 0x69, 0xB4)
	DeepPink      = RGB(0xFF, 0x14, 0x93)
	MidnightBlue  = RGB(0x19, 0x19, 0x70)
	LightBlue     = RGB(0xAD, 0xD8, 0xE6)
	PaleVioletRed = RGB(0xDB, 0x70, 0x93)
	SteelBlue     = RGB(0x46, 0x82, 0xB4)
	LimeGreen     = RGB(0x32, 0xCD, 0x32)
	DarkGreen     = RGB(0x00, 0x64, 0x00)
	Lime          = RGB(0x00, 0xFF, 0x00)
	LightGray     = RGB(0xD3, 0xD3, 0xD3)
	BlueViolet    = RGB(0x8A, 0x2B, 0xE2)
	WebGreen      = RGB(0x00, 0x80, 0x00)
)
