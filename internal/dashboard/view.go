package dashboard

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownView is returned for a view the coordinator cannot show.
var ErrUnknownView = errors.New("dashboard: unknown view")

// View is one of the mutually exclusive presentations of the working set.
type View int

const (
	Grid View = iota
	Chart
	Bubble
)

var viewNames = [...]string{
	Grid:   "grid",
	Chart:  "chart",
	Bubble: "bubble",
}

// Views lists every view in tab order.
func Views() []View { return []View{Grid, Chart, Bubble} }

func (v View) String() string {
	if v < 0 || int(v) >= len(viewNames) {
		return fmt.Sprintf("view(%d)", int(v))
	}
	return viewNames[v]
}

// Title is the tab caption.
func (v View) Title() string {
	s := v.String()
	if !v.valid() {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (v View) valid() bool { return v >= Grid && v <= Bubble }

// ParseView maps a view name to a View.
func ParseView(s string) (View, error) {
	for i, name := range viewNames {
		if strings.EqualFold(s, name) {
			return View(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownView, s)
}
