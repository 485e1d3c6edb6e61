package config

import (
	"fyne.io/fyne/v2"

	"github.com/hfget/hf-model-downloader/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDownloadDir        = "download_directory"
	KeyConnections        = "connections"
	KeyLanguage           = "app_language"
	KeyAutoRevealComplete = "auto_reveal_on_complete"
)

// Default values
const (
	DefaultConnections        = 2
	MinConnections            = 1
	MaxConnections            = 9
	DefaultLanguage           = "system"
	DefaultAutoRevealComplete = false
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDownloadDirectory returns the configured download directory
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		// Use system default Downloads directory
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = "/tmp/downloads"
		}
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetConnections returns the aria2c connection count (sessions)
func (s *Settings) GetConnections() int {
	value := s.app.Preferences().Int(KeyConnections)
	if value <= 0 {
		s.SetConnections(DefaultConnections)
		return DefaultConnections
	}
	if value > MaxConnections {
		return MaxConnections
	}
	return value
}

// SetConnections sets the aria2c connection count, clamped to 1..9
func (s *Settings) SetConnections(count int) {
	if count < MinConnections {
		count = MinConnections
	}
	if count > MaxConnections {
		count = MaxConnections
	}
	s.app.Preferences().SetInt(KeyConnections, count)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetAutoRevealOnComplete returns whether to reveal the output directory after
// a successful download
func (s *Settings) GetAutoRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealComplete, DefaultAutoRevealComplete)
}

// SetAutoRevealOnComplete sets whether to reveal the output directory after a
// successful download
func (s *Settings) SetAutoRevealOnComplete(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealComplete, autoReveal)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"pl":     "Polski",
	}
}
