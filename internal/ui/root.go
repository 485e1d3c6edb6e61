package ui

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"

	"github.com/hfget/hf-model-downloader/internal/config"
	"github.com/hfget/hf-model-downloader/internal/download"
	"github.com/hfget/hf-model-downloader/internal/model"
	"github.com/hfget/hf-model-downloader/internal/platform"
)

// RootUI represents the main UI structure
type RootUI struct {
	window fyne.Window

	urlEntry         *widget.Entry
	dirEntry         *widget.Entry
	connectionsEntry *widget.Entry
	actionBtn        *widget.Button
	logList          *widget.List
	logLines         binding.StringList

	downloadSvc  download.Downloader
	settings     *config.Settings
	localization *Localization

	// Tool directory the user must place aria2c into
	toolDir     string
	toolWatcher *platform.ToolWatcher

	// Notification panel under the form
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
}

// NewRootUI creates and initializes the main UI. When initialURL is non-empty
// the URL field is pre-filled with it.
func NewRootUI(window fyne.Window, app fyne.App, downloadSvc download.Downloader, initialURL string) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		logLines:     binding.NewStringList(),
		downloadSvc:  downloadSvc,
		settings:     settings,
		localization: localization,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	// Output lines and job state changes arrive on background goroutines; both
	// paths marshal onto the UI thread before touching the log.
	ui.downloadSvc.SetLineCallback(ui.onOutputLine)
	ui.downloadSvc.SetUpdateCallback(ui.onJobUpdate)

	ui.setupUI(initialURL)
	ui.setupToolWatcher()

	// Closing the window while a job runs must not leave an orphaned child
	window.SetCloseIntercept(func() {
		if ui.downloadSvc.IsRunning() {
			if err := ui.downloadSvc.Stop(); err != nil {
				log.Printf("Stop on close failed: %v", err)
			}
		}
		if ui.toolWatcher != nil {
			_ = ui.toolWatcher.Close()
		}
		window.Close()
	})

	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI(initialURL string) {
	ui.createMenu()

	// URL entry with live parse preview
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.urlEntry.OnChanged = ui.onURLChanged
	ui.urlEntry.OnSubmitted = func(string) { ui.onActionClick() }

	// Download directory entry, persisted as the user edits it
	ui.dirEntry = widget.NewEntry()
	ui.dirEntry.SetText(ui.settings.GetDownloadDirectory())
	ui.dirEntry.OnChanged = func(dir string) {
		if dir == "" {
			return
		}
		ui.settings.SetDownloadDirectory(dir)
		ui.downloadSvc.SetDownloadDirectory(dir)
	}

	// Connection count entry, digits 1-9 only
	ui.connectionsEntry = widget.NewEntry()
	ui.connectionsEntry.SetText(strconv.Itoa(ui.settings.GetConnections()))
	ui.connectionsEntry.Validator = validateConnectionsInput
	ui.connectionsEntry.OnChanged = func(value string) {
		n, err := strconv.Atoi(value)
		if err != nil || n < config.MinConnections || n > config.MaxConnections {
			return
		}
		ui.settings.SetConnections(n)
		ui.downloadSvc.SetConnections(n)
	}

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.actionBtn = widget.NewButton(ui.localization.GetText(KeyStart), ui.onActionClick)
	ui.actionBtn.Importance = widget.HighImportance

	urlRow := container.NewBorder(nil, nil, ui.formLabel(KeyURL), settingsBtn, ui.urlEntry)
	dirRow := container.NewBorder(nil, nil, ui.formLabel(KeyDirectory), nil, ui.dirEntry)
	connectionsRow := container.NewBorder(nil, nil, ui.formLabel(KeyConnections), nil, ui.connectionsEntry)

	// Notification panel under the form (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Wrapping = fyne.TextWrapWord
	ui.notificationContainer = container.NewPadded(ui.notificationLabel)
	ui.notificationContainer.Hide()

	topPanel := container.NewVBox(urlRow, dirRow, connectionsRow, ui.notificationContainer)

	// Read-only, append-only log view
	ui.logList = widget.NewListWithData(
		ui.logLines,
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		func(item binding.DataItem, obj fyne.CanvasObject) {
			if str, ok := item.(binding.String); ok {
				if label, ok := obj.(*widget.Label); ok {
					value, _ := str.Get()
					label.SetText(value)
				}
			}
		},
	)

	content := container.NewBorder(
		topPanel,     // top
		ui.actionBtn, // bottom
		nil,          // left
		nil,          // right
		ui.logList,   // center
	)

	ui.window.SetContent(content)

	if initialURL != "" {
		ui.urlEntry.SetText(initialURL)
	}

	log.Printf("UI setup completed")
}

// formLabel creates a fixed-width form row label
func (ui *RootUI) formLabel(key string) fyne.CanvasObject {
	label := widget.NewLabel(ui.localization.GetText(key))
	return container.NewGridWrap(fyne.NewSize(LabelColumnWidth, label.MinSize().Height), label)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	if ui.downloadSvc.IsRunning() {
		ui.actionBtn.SetText(ui.localization.GetText(KeyStop))
	} else {
		ui.actionBtn.SetText(ui.localization.GetText(KeyStart))
	}
}

// setupToolWatcher checks for the aria2c binary and keeps watching the tool
// directory so the dependency notice tracks the binary's presence.
func (ui *RootUI) setupToolWatcher() {
	dir, err := platform.ToolDir()
	if err != nil {
		log.Printf("Failed to resolve tool directory: %v", err)
		ui.showNotification(err.Error())
		return
	}
	ui.toolDir = dir

	if _, err := platform.LocateAria2In(dir); err != nil {
		ui.showNotification(fmt.Sprintf(ui.localization.GetText(KeyMissingTool), dir))
	}

	watcher, err := platform.NewToolWatcher(dir, func(present bool) {
		if present {
			log.Printf("aria2c appeared in %s", dir)
			ui.hideNotification()
		} else {
			log.Printf("aria2c removed from %s", dir)
			ui.showNotification(fmt.Sprintf(ui.localization.GetText(KeyMissingTool), dir))
		}
	})
	if err != nil {
		log.Printf("Failed to start tool watcher: %v", err)
		return
	}
	ui.toolWatcher = watcher
}

// onURLChanged parses the URL as the user types and shows the model metadata
// in the log area. The preview never runs while a download is in flight.
func (ui *RootUI) onURLChanged(value string) {
	if ui.downloadSvc.IsRunning() {
		return
	}

	value = strings.TrimSpace(value)
	if value == "" {
		_ = ui.logLines.Set(nil)
		return
	}

	files, err := platform.ParseModelURL(value)
	if err != nil {
		_ = ui.logLines.Set([]string{ui.localization.GetText(KeyInvalidPreview)})
		return
	}

	var lines []string
	for _, mf := range files {
		lines = append(lines,
			fmt.Sprintf("%s: %s", ui.localization.GetText(KeyPreviewURL), mf.DownloadURL),
			fmt.Sprintf("%s: %s", ui.localization.GetText(KeyPreviewAuthor), mf.Author),
			fmt.Sprintf("%s: %s", ui.localization.GetText(KeyPreviewRepo), mf.Repo),
			fmt.Sprintf("%s: %s", ui.localization.GetText(KeyPreviewName), mf.Name),
			fmt.Sprintf("%s: %s", ui.localization.GetText(KeyPreviewExtension), mf.Extension),
			PreviewSeparator,
		)
	}
	_ = ui.logLines.Set(lines)
}

// onActionClick starts a download when idle and stops the running one otherwise
func (ui *RootUI) onActionClick() {
	if ui.downloadSvc.IsRunning() {
		ui.onStopClick()
		return
	}
	ui.onStartClick()
}

// onStartClick handles the START button
func (ui *RootUI) onStartClick() {
	urlText := strings.TrimSpace(ui.urlEntry.Text)
	if urlText == "" {
		ui.showNotification(ui.localization.GetText(KeyPleaseEnterURL))
		return
	}

	// Fresh log for the new job
	_ = ui.logLines.Set(nil)
	ui.hideNotification()

	job, err := ui.downloadSvc.Start(urlText)
	if err != nil {
		ui.showStartError(err)
		return
	}

	log.Printf("Started job %s for %s", job.ID, job.GetDisplayTitle())
	ui.setRunningState(true)
	ui.appendLogLine(ui.localization.GetText(KeyDownloadStarted))
}

// showStartError maps a Start failure to a user-visible message. The app
// stays idle and responsive after every branch.
func (ui *RootUI) showStartError(err error) {
	switch {
	case errors.Is(err, download.ErrEmptyURL):
		ui.showNotification(ui.localization.GetText(KeyPleaseEnterURL))
	case errors.Is(err, download.ErrInvalidURL):
		ui.showNotification(ui.localization.GetText(KeyInvalidURL) + ": " + err.Error())
	case errors.Is(err, download.ErrJobActive):
		ui.showNotification(ui.localization.GetText(KeyAlreadyRunning))
	case errors.Is(err, platform.ErrToolMissing):
		ui.showNotification(fmt.Sprintf(ui.localization.GetText(KeyMissingTool), ui.toolDir))
	default:
		ui.showNotification(ui.localization.GetText(KeySpawnFailed) + ": " + err.Error())
	}
	log.Printf("Start rejected: %v", err)
}

// onStopClick handles the STOP button
func (ui *RootUI) onStopClick() {
	if err := ui.downloadSvc.Stop(); err != nil {
		log.Printf("Stop failed: %v", err)
		return
	}
	// Button stays disabled until the exit status arrives
	ui.actionBtn.Disable()
}

// setRunningState toggles the form between Idle and Running
func (ui *RootUI) setRunningState(running bool) {
	if running {
		ui.actionBtn.SetText(ui.localization.GetText(KeyStop))
		ui.urlEntry.Disable()
		ui.dirEntry.Disable()
		ui.connectionsEntry.Disable()
	} else {
		ui.actionBtn.SetText(ui.localization.GetText(KeyStart))
		ui.actionBtn.Enable()
		ui.urlEntry.Enable()
		ui.dirEntry.Enable()
		ui.connectionsEntry.Enable()
	}
}

// onOutputLine handles one captured output line from the download service
func (ui *RootUI) onOutputLine(line string) {
	fyne.Do(func() {
		ui.appendLogLine(line)
	})
}

// appendLogLine appends a line to the log view and keeps it scrolled to the
// end. Once the cap is reached the oldest lines are dropped so late output and
// the terminal summary always land in the log.
func (ui *RootUI) appendLogLine(line string) {
	if ui.logLines.Length() >= MaxLogLines {
		lines, _ := ui.logLines.Get()
		lines = append(lines[len(lines)-MaxLogLines+1:], line)
		_ = ui.logLines.Set(lines)
	} else {
		_ = ui.logLines.Append(line)
	}
	ui.logList.ScrollToBottom()
}

// onJobUpdate handles job state changes from the download service
func (ui *RootUI) onJobUpdate(job *model.DownloadJob) {
	fyne.Do(func() {
		log.Printf("Job update: id=%s status=%s exit=%d", job.ID, job.Status, job.ExitCode)

		if !job.Status.IsFinished() {
			return
		}

		ui.setRunningState(false)

		if job.Status == model.JobStatusCompleted && ui.settings.GetAutoRevealOnComplete() {
			if err := platform.OpenDirInManager(job.OutputDir()); err != nil {
				log.Printf("Failed to reveal output directory: %v", err)
				ui.showNotification(ui.localization.GetText(KeyErrorOpeningDir) + ": " + err.Error())
			}
		}
	})
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		// Propagate saved settings to the service and the form
		dir := ui.settings.GetDownloadDirectory()
		connections := ui.settings.GetConnections()
		ui.downloadSvc.SetDownloadDirectory(dir)
		ui.downloadSvc.SetConnections(connections)
		ui.dirEntry.SetText(dir)
		ui.connectionsEntry.SetText(strconv.Itoa(connections))

		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()

		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeySettingsSaved)), ui.window.Canvas())
	})
}

// showNotification displays a message in the notification panel under the form
func (ui *RootUI) showNotification(message string) {
	fyne.Do(func() {
		ui.notificationLabel.SetText(message)
		ui.notificationContainer.Show()
		ui.notificationContainer.Refresh()
	})
}

// hideNotification hides the notification panel
func (ui *RootUI) hideNotification() {
	fyne.Do(func() {
		ui.notificationContainer.Hide()
	})
}

// validateConnectionsInput accepts an empty field or a single digit 1-9
func validateConnectionsInput(value string) error {
	if value == "" {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("connections must be a number")
	}
	if n < config.MinConnections || n > config.MaxConnections {
		return fmt.Errorf("connections must be between %d and %d", config.MinConnections, config.MaxConnections)
	}
	return nil
}
