package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
)

const menuTitle = "Fitts"

// TrayApp is the part of desktop.App the tray menu needs.
type TrayApp interface {
	SetSystemTrayMenu(menu *fyne.Menu)
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnPreferences func()
	OnRestart     func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app         TrayApp
	statusItem  *fyne.MenuItem
	callbacks   Callbacks
	statusLabel string
	restarts    int
}

// New creates a tray manager with the provided callbacks and installs its menu.
func New(app TrayApp, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Status: starting...", nil)
	manager.statusItem.Disabled = true
	manager.refreshMenu()

	return manager
}

// SetStatus updates the status label.
func (manager *Manager) SetStatus(status string) {
	manager.statusLabel = status
	manager.refreshStatus()
}

// SetRestarts records how many sessions were discarded.
func (manager *Manager) SetRestarts(restarts int) {
	manager.restarts = restarts
	manager.refreshStatus()
}

// Menu returns the menu currently installed in the tray.
func (manager *Manager) Menu() *fyne.Menu {
	return manager.buildMenu()
}

func (manager *Manager) refreshStatus() {
	status := manager.statusLabel
	if manager.restarts > 0 {
		status = fmt.Sprintf("%s (%d restarts)", status, manager.restarts)
	}
	manager.statusItem.Label = fmt.Sprintf("Status: %s", status)
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.buildMenu())
	}
}

func (manager *Manager) buildMenu() *fyne.Menu {
	return fyne.NewMenu(menuTitle,
		manager.statusItem,
		fyne.NewMenuItem("Show experiment", func() {
			if manager.callbacks.OnShow != nil {
				manager.callbacks.OnShow()
			}
		}),
		fyne.NewMenuItem("Preferences", func() {
			if manager.callbacks.OnPreferences != nil {
				manager.callbacks.OnPreferences()
			}
		}),
		fyne.NewMenuItem("Restart", func() {
			if manager.callbacks.OnRestart != nil {
				manager.callbacks.OnRestart()
			}
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	)
}
