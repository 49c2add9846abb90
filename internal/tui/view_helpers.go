package tui

import "fmt"

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func cursorFor(selected bool) string {
	if selected {
		return "> "
	}
	return "  "
}

func stockLabel(stock int) string {
	if stock <= 0 {
		return "out of stock"
	}
	return fmt.Sprintf("%d in stock", stock)
}

func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}
