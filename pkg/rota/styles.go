package rota

import (
	"github.com/gdamore/tcell/v2"
)

type Styles struct {
	HeaderTextColor tcell.Color
	ListTextColor   tcell.Color
	StatusTextColor tcell.Color
	ErrorTextColor  tcell.Color
}

var Style = Styles{
	HeaderTextColor: tcell.ColorWhiteSmoke,
	ListTextColor:   tcell.ColorWhite,
	StatusTextColor: tcell.ColorSlateGray,
	ErrorTextColor:  tcell.ColorRed,
}
