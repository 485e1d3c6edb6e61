package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyStart            = "start"
	KeyStop             = "stop"
	KeyURL              = "url"
	KeyDirectory        = "directory"
	KeyConnections      = "connections"
	KeyLog              = "log"
	KeyEnterURL         = "enter_url"
	KeySettings         = "settings"
	KeyFile             = "file"
	KeyLanguage         = "language"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeyBrowse           = "browse"
	KeyAutoReveal       = "auto_reveal"
	KeyPleaseEnterURL   = "please_enter_url"
	KeyInvalidURL       = "invalid_url"
	KeyInvalidPreview   = "invalid_preview"
	KeyAlreadyRunning   = "already_running"
	KeyMissingTool      = "missing_tool"
	KeyDownloadStarted  = "download_started"
	KeySpawnFailed      = "spawn_failed"
	KeySettingsSaved    = "settings_saved"
	KeyErrorOpeningDir  = "error_opening_dir"
	KeyPreviewURL       = "preview_url"
	KeyPreviewAuthor    = "preview_author"
	KeyPreviewRepo      = "preview_repo"
	KeyPreviewName      = "preview_name"
	KeyPreviewExtension = "preview_extension"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"pl": "Polski",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "HF Model Downloader",
		KeyStart:            "START",
		KeyStop:             "STOP",
		KeyURL:              "URL:",
		KeyDirectory:        "DIR:",
		KeyConnections:      "Connections (1-9):",
		KeyLog:              "Log:",
		KeyEnterURL:         "Paste a Hugging Face model file URL (https://huggingface.co/...)",
		KeySettings:         "Settings",
		KeyFile:             "File",
		KeyLanguage:         "Language",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeyBrowse:           "Browse",
		KeyAutoReveal:       "Open folder when finished",
		KeyPleaseEnterURL:   "Please enter a URL",
		KeyInvalidURL:       "Invalid URL",
		KeyInvalidPreview:   "Invalid URL or unable to parse model information.",
		KeyAlreadyRunning:   "A download is already running",
		KeyMissingTool:      "aria2c is not found in the application directory.\nPlace the aria2c executable in:\n%s",
		KeyDownloadStarted:  "Download started in the background...",
		KeySpawnFailed:      "Failed to start aria2c",
		KeySettingsSaved:    "Settings saved successfully!",
		KeyErrorOpeningDir:  "Error opening folder",
		KeyPreviewURL:       "Download URL",
		KeyPreviewAuthor:    "Author",
		KeyPreviewRepo:      "Model Repo",
		KeyPreviewName:      "Model Name",
		KeyPreviewExtension: "Model Extension",
	}

	// Polish texts
	l.texts["pl"] = map[string]string{
		KeyAppTitle:         "HF Model Downloader",
		KeyStart:            "START",
		KeyStop:             "STOP",
		KeyURL:              "URL:",
		KeyDirectory:        "Katalog:",
		KeyConnections:      "Sesje (1-9):",
		KeyLog:              "Log:",
		KeyEnterURL:         "Wklej adres pliku modelu Hugging Face (https://huggingface.co/...)",
		KeySettings:         "Ustawienia",
		KeyFile:             "Plik",
		KeyLanguage:         "Język",
		KeySave:             "Zapisz",
		KeyCancel:           "Anuluj",
		KeyBrowse:           "Przeglądaj",
		KeyAutoReveal:       "Otwórz folder po zakończeniu",
		KeyPleaseEnterURL:   "Wprowadź adres URL",
		KeyInvalidURL:       "Nieprawidłowy adres URL",
		KeyInvalidPreview:   "Nieprawidłowy adres URL lub brak informacji o modelu.",
		KeyAlreadyRunning:   "Pobieranie już trwa",
		KeyMissingTool:      "Nie znaleziono aria2c w katalogu aplikacji.\nUmieść plik wykonywalny aria2c w:\n%s",
		KeyDownloadStarted:  "Pobieranie uruchomione w tle...",
		KeySpawnFailed:      "Nie udało się uruchomić aria2c",
		KeySettingsSaved:    "Ustawienia zapisane!",
		KeyErrorOpeningDir:  "Błąd otwierania folderu",
		KeyPreviewURL:       "Adres pobierania",
		KeyPreviewAuthor:    "Autor",
		KeyPreviewRepo:      "Repozytorium",
		KeyPreviewName:      "Nazwa modelu",
		KeyPreviewExtension: "Rozszerzenie",
	}
}
