package common

// Window defaults. The play area follows the window, so these only seed the
// first layout.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
	Title         = "letterfall"
)
