package main

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/spf13/cobra"

	fittsapp "github.com/paul0314/fitts-experiment/internal/app"
	"github.com/paul0314/fitts-experiment/internal/core/model"
	"github.com/paul0314/fitts-experiment/internal/platform"
	"github.com/paul0314/fitts-experiment/internal/storage"
	"github.com/paul0314/fitts-experiment/internal/ui/fitts"
	"github.com/paul0314/fitts-experiment/internal/ui/preferences"
	"github.com/paul0314/fitts-experiment/internal/ui/tray"
	"github.com/paul0314/fitts-experiment/resources"
)

func runGUI(cmd *cobra.Command, opts *options) error {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		if err := platform.Activate(appName); err != nil {
			log.Printf("%v", err)
		}
		return nil
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID("com.fitts.experiment")
	fyneApp.SetIcon(resources.MustIcon(resources.AppIcon))

	window := fyneApp.NewWindow("Fitts's law experiment")
	window.Resize(fyne.NewSize(1280, 720))
	window.SetMaster()
	showWindow := func() {
		window.Show()
		window.RequestFocus()
	}

	stored, err := opts.load(cmd)
	if err != nil {
		log.Printf("load settings: %v", err)
	}
	launcher := fittsapp.NewLauncher(
		seededLoader(stored, func() (model.Config, error) { return opts.load(cmd) }),
		func(seed model.Config) *fitts.View { return fitts.NewView(window, seed) },
		log.Default(),
	)

	prefsWindow := preferences.New(fyneApp, stored, func(config model.Config) error {
		configPath, err := opts.path()
		if err != nil {
			return err
		}
		if err := storage.SaveFile(configPath, config); err != nil {
			return err
		}
		log.Printf("saved defaults to %s", configPath)
		return nil
	})

	if desktopApp, ok := fyneApp.(desktop.App); ok {
		desktopApp.SetSystemTrayIcon(resources.MustIcon(resources.TrayIcon))
		trayManager := tray.New(desktopApp, tray.Callbacks{
			OnShow: showWindow,
			OnPreferences: func() {
				if config, err := opts.load(cmd); err == nil {
					prefsWindow.UpdateConfig(config)
				}
				prefsWindow.Show()
			},
			OnRestart: launcher.Restart,
			OnQuit:    fyneApp.Quit,
		})
		launcher.OnLaunch(func(session *fittsapp.Session) {
			trayManager.SetStatus("session " + session.ID[:8])
			trayManager.SetRestarts(launcher.Restarts())
		})
	} else {
		log.Printf("system tray unsupported on this platform")
	}

	guard.Serve(func() {
		fyne.Do(showWindow)
	})

	launcher.Launch()
	window.ShowAndRun()
	return nil
}
