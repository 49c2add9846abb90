package tui

import "github.com/MKhiriev/go-shop-front/internal/nav"

type notificationMsg struct {
	level nav.Level
	text  string
}

type clearNotificationMsg struct{}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
