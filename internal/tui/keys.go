package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	quit    key.Binding

	goHome       key.Binding
	goProducts   key.Binding
	goCategories key.Binding
	goCart       key.Binding
	goOrders     key.Binding
	goSupport    key.Binding
	goProfile    key.Binding
	goAdmin      key.Binding

	search    key.Binding
	filter    key.Binding
	sort      key.Binding
	stockOnly key.Binding
	addToCart key.Binding

	plus     key.Binding
	minus    key.Binding
	remove   key.Binding
	checkout key.Binding

	copy      key.Binding
	newItem   key.Binding
	edit      key.Binding
	delete    key.Binding
	logout    key.Binding
	reset     key.Binding
	switchTab key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),

	goHome:       key.NewBinding(key.WithKeys("1")),
	goProducts:   key.NewBinding(key.WithKeys("2")),
	goCategories: key.NewBinding(key.WithKeys("3")),
	goCart:       key.NewBinding(key.WithKeys("4")),
	goOrders:     key.NewBinding(key.WithKeys("5")),
	goSupport:    key.NewBinding(key.WithKeys("6")),
	goProfile:    key.NewBinding(key.WithKeys("7")),
	goAdmin:      key.NewBinding(key.WithKeys("8")),

	search:    key.NewBinding(key.WithKeys("/")),
	filter:    key.NewBinding(key.WithKeys("f")),
	sort:      key.NewBinding(key.WithKeys("s")),
	stockOnly: key.NewBinding(key.WithKeys("o")),
	addToCart: key.NewBinding(key.WithKeys("a")),

	plus:     key.NewBinding(key.WithKeys("+", "=")),
	minus:    key.NewBinding(key.WithKeys("-")),
	remove:   key.NewBinding(key.WithKeys("x")),
	checkout: key.NewBinding(key.WithKeys("c")),

	copy:      key.NewBinding(key.WithKeys("c")),
	newItem:   key.NewBinding(key.WithKeys("n")),
	edit:      key.NewBinding(key.WithKeys("e")),
	delete:    key.NewBinding(key.WithKeys("d")),
	logout:    key.NewBinding(key.WithKeys("ctrl+l")),
	reset:     key.NewBinding(key.WithKeys("ctrl+r")),
	switchTab: key.NewBinding(key.WithKeys("ctrl+t")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n")),
}
