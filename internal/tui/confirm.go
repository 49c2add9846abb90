package tui

type confirmAction int

const (
	confirmNone confirmAction = iota
	confirmDeleteProduct
	confirmResetAll
)

type confirmModel struct {
	message string
}

func (m confirmModel) View() string {
	content := m.message + "\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
