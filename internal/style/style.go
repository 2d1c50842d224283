package style

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	output               = termenv.DefaultOutput()
	foregroundHex        = termenv.ConvertToRGB(output.ForegroundColor()).Hex()
	lighterForegroundHex = adjustColor(foregroundHex, 1.7)
	darkerForegroundHex  = adjustColor(foregroundHex, 0.1)
	altForeground        = lipgloss.AdaptiveColor{
		Light: lighterForegroundHex,
		Dark:  darkerForegroundHex,
	}
)

var (
	Footer = lipgloss.NewStyle().Foreground(altForeground)

	ItemLabel = lipgloss.NewStyle().Bold(true)

	Toast = lipgloss.NewStyle().Foreground(altForeground).Italic(true)
)

// adjustColor takes a hex color and multiplies its luminance by the given factor
func adjustColor(hex string, factor float64) string {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return "#" + hex
	}

	r, errR := strconv.ParseUint(hex[0:2], 16, 8)
	g, errG := strconv.ParseUint(hex[2:4], 16, 8)
	b, errB := strconv.ParseUint(hex[4:6], 16, 8)
	if errR != nil || errG != nil || errB != nil {
		return "#" + hex
	}

	adjust := func(c uint64) uint64 {
		adjusted := math.Round(float64(c) * factor)
		return uint64(math.Max(0, math.Min(255, adjusted)))
	}

	return fmt.Sprintf("#%02x%02x%02x", adjust(r), adjust(g), adjust(b))
}
