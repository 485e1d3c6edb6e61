package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	flag "github.com/spf13/pflag"

	"github.com/hfget/hf-model-downloader/internal/config"
	"github.com/hfget/hf-model-downloader/internal/download"
	"github.com/hfget/hf-model-downloader/internal/platform"
	"github.com/hfget/hf-model-downloader/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.hfget.hf-model-downloader"
	AppName = "HF Model Downloader"

	WindowWidth  = 1000
	WindowHeight = 420
)

func main() {
	initialURL := flag.String("url", "", "pre-fill the URL field with a model file URL")
	flag.Parse()

	// A bare positional argument works too
	urlArg := *initialURL
	if urlArg == "" && flag.NArg() > 0 {
		urlArg = flag.Arg(0)
	}

	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	downloadsDir := settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(downloadsDir); err != nil {
		log.Printf("failed to ensure downloads dir: %v", err)
	}

	downloadSvc := download.NewService(downloadsDir, settings.GetConnections())

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, downloadSvc, urlArg)

	// Show and run
	myWindow.ShowAndRun()
}
