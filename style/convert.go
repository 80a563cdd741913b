package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/npillmayer/tyse/core/dimen"
)

// TODO use standard palette
//
// https://pkg.go.dev/github.com/AntoineAugusti/colors#StringToHexColor
//
func (p Property) Color() color.Color {
	if p.IsEmpty() || p.IsVarRef() {
		return nil
	}
	switch p {
	case "red":
		return color.RGBA{0xff, 0, 0, 0xff}
	case "green":
		return color.RGBA{0, 0xff, 0, 0xff}
	case "blue":
		return color.RGBA{0, 0, 0xff, 0xff}
	case "white":
		return color.RGBA{0xff, 0xff, 0xff, 0xff}
	case "gray", "grey":
		return color.RGBA{0x80, 0x80, 0x80, 0xff}
	}
	return color.Black
}

// Dimension converts a dimension-valued property ("12pt", "6bp", "1.5pt")
// to a dimension value. Hosts measuring text or boxes will want concrete
// units; the styling engine itself never does arithmetic on properties.
//
// Variable references, keywords and unknown units do not convert; the
// ok-flag will be false.
func (p Property) Dimension() (dimen.DU, bool) {
	if p.IsEmpty() || p.IsVarRef() {
		return 0, false
	}
	s := strings.TrimSpace(string(p))
	var unit dimen.DU
	switch {
	case strings.HasSuffix(s, "pt"):
		unit = dimen.PT
	case strings.HasSuffix(s, "bp"):
		unit = dimen.BP
	default:
		return 0, false
	}
	n, err := strconv.ParseFloat(s[:len(s)-2], 64)
	if err != nil {
		return 0, false
	}
	return dimen.DU(n * float64(unit)), true
}
