package tui

import (
	"github.com/MKhiriev/go-shop-front/models"
)

type supportModel struct {
	entries  []models.FAQEntry
	idx      int
	expanded map[int]bool
}

func newSupportModel() supportModel {
	return supportModel{expanded: make(map[int]bool)}
}

func (m supportModel) View() string {
	out := titleStyle.Render("Support / FAQ") + "\n\n"

	for i, e := range m.entries {
		out += cursorFor(i == m.idx) + e.Question + "\n"
		if m.expanded[i] {
			out += "    " + e.Answer + "\n"
		}
	}

	out += "\n" + helpStyle.Render("enter toggle answer  q quit")
	return out
}
