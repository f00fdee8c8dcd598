// ABOUTME: Unmodified cursor keys in their three-byte CSI and SS3 forms
// ABOUTME: Application cursor mode (DECCKM) switches arrows and Home/End from ESC [ to ESC O

package key

// parseLegacy decodes ESC [ X and ESC O X, plus the CSI-only backtab.
// Tilde forms and modified keys belong to ParseCSIKey.
func parseLegacy(data string) (Key, bool) {
	if len(data) != 3 || data[0] != 0x1b {
		return Key{}, false
	}
	intro, final := data[1], data[2]
	if intro != '[' && intro != 'O' {
		return Key{}, false
	}
	if final == 'Z' && intro == '[' {
		return Key{Type: KeyBackTab, Shift: true}, true
	}
	if t, ok := letterKeys[final]; ok {
		return Key{Type: t}, true
	}
	return Key{}, false
}
