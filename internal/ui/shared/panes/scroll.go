package panes

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
)

// ScrollIndicator describes a viewport's position for a border title:
// empty when everything fits, "Top", "Bot", or a percentage in between.
func ScrollIndicator(vp viewport.Model) string {
	if vp.TotalLineCount() <= vp.Height {
		return ""
	}
	switch {
	case vp.AtTop():
		return "Top"
	case vp.AtBottom():
		return "Bot"
	default:
		return fmt.Sprintf("%d%%", int(vp.ScrollPercent()*100))
	}
}
