package main

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/upgradescout/internal"
	"github.com/rios0rios0/upgradescout/internal/infrastructure/controllers"
)

func injectApp() (*controllers.ScanController, *internal.AppInternal) {
	container := dig.New()

	// Register all providers
	if err := internal.RegisterProviders(container); err != nil {
		panic(err)
	}

	// Invoke to get the root controller and the AppInternal
	var scanController *controllers.ScanController
	var appInternal *internal.AppInternal
	if err := container.Invoke(func(sc *controllers.ScanController, ai *internal.AppInternal) {
		scanController = sc
		appInternal = ai
	}); err != nil {
		panic(err)
	}

	return scanController, appInternal
}
