package gui

import "fyne.io/fyne/v2"

// A honeycomb cell with the letters "Ab"
const iconSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 256 256">
<polygon points="128,12 228,70 228,186 128,244 28,186 28,70" fill="#f5b700" stroke="#3d2b00" stroke-width="12"/>
<text x="128" y="162" font-family="sans-serif" font-size="104" font-weight="bold" text-anchor="middle" fill="#3d2b00">Ab</text>
</svg>`

// GetAppIcon returns the application icon as a Fyne resource
func GetAppIcon() fyne.Resource {
	return &fyne.StaticResource{
		StaticName:    "spellbee.svg",
		StaticContent: []byte(iconSVG),
	}
}
