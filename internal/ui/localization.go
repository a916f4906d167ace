package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyNewTab             = "new_tab"
	KeyGo                 = "go"
	KeyEnterURL           = "enter_url"
	KeyReady              = "ready"
	KeyBackPressed        = "back_pressed"
	KeyForwardPressed     = "forward_pressed"
	KeyPageRefreshed      = "page_refreshed"
	KeyBookmarks          = "bookmarks"
	KeyDownloads          = "downloads"
	KeyHistory            = "history"
	KeyAddCurrentPage     = "add_current_page"
	KeyBookmarkAdded      = "bookmark_added"
	KeyBookmarkAddedMsg   = "bookmark_added_msg"
	KeyClearHistory       = "clear_history"
	KeyClearHistoryMsg    = "clear_history_msg"
	KeyDownloadPath       = "download_path"
	KeyChange             = "change"
	KeyOpenDownloadFolder = "open_download_folder"
	KeyErrorOpeningFolder = "error_opening_folder"
	KeySelectTheme        = "select_theme"
	KeyClose              = "close"
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
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "CactusBrowser",
		KeyNewTab:             "New Tab",
		KeyGo:                 "Go",
		KeyEnterURL:           "Enter URL or search term",
		KeyReady:              "Ready",
		KeyBackPressed:        "Back button pressed",
		KeyForwardPressed:     "Forward button pressed",
		KeyPageRefreshed:      "Page refreshed",
		KeyBookmarks:          "Bookmarks",
		KeyDownloads:          "Downloads",
		KeyHistory:            "History",
		KeyAddCurrentPage:     "Add Current Page",
		KeyBookmarkAdded:      "Bookmark Added",
		KeyBookmarkAddedMsg:   "Added '%s' to bookmarks",
		KeyClearHistory:       "Clear History",
		KeyClearHistoryMsg:    "Are you sure you want to clear all history?",
		KeyDownloadPath:       "Download Path:",
		KeyChange:             "Change",
		KeyOpenDownloadFolder: "Open Download Folder",
		KeyErrorOpeningFolder: "Error opening folder",
		KeySelectTheme:        "Select Theme",
		KeyClose:              "Close",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "CactusBrowser",
		KeyNewTab:             "Новая вкладка",
		KeyGo:                 "Перейти",
		KeyEnterURL:           "Введите URL или поисковый запрос",
		KeyReady:              "Готово",
		KeyBackPressed:        "Нажата кнопка \"Назад\"",
		KeyForwardPressed:     "Нажата кнопка \"Вперёд\"",
		KeyPageRefreshed:      "Страница обновлена",
		KeyBookmarks:          "Закладки",
		KeyDownloads:          "Загрузки",
		KeyHistory:            "История",
		KeyAddCurrentPage:     "Добавить текущую страницу",
		KeyBookmarkAdded:      "Закладка добавлена",
		KeyBookmarkAddedMsg:   "'%s' добавлено в закладки",
		KeyClearHistory:       "Очистить историю",
		KeyClearHistoryMsg:    "Вы уверены, что хотите очистить всю историю?",
		KeyDownloadPath:       "Папка загрузки:",
		KeyChange:             "Изменить",
		KeyOpenDownloadFolder: "Открыть папку загрузок",
		KeyErrorOpeningFolder: "Ошибка открытия папки",
		KeySelectTheme:        "Выбор темы",
		KeyClose:              "Закрыть",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "CactusBrowser",
		KeyNewTab:             "Nova Aba",
		KeyGo:                 "Ir",
		KeyEnterURL:           "Digite URL ou termo de busca",
		KeyReady:              "Pronto",
		KeyBackPressed:        "Botão voltar pressionado",
		KeyForwardPressed:     "Botão avançar pressionado",
		KeyPageRefreshed:      "Página atualizada",
		KeyBookmarks:          "Favoritos",
		KeyDownloads:          "Downloads",
		KeyHistory:            "Histórico",
		KeyAddCurrentPage:     "Adicionar Página Atual",
		KeyBookmarkAdded:      "Favorito Adicionado",
		KeyBookmarkAddedMsg:   "'%s' adicionado aos favoritos",
		KeyClearHistory:       "Limpar Histórico",
		KeyClearHistoryMsg:    "Tem certeza de que deseja limpar todo o histórico?",
		KeyDownloadPath:       "Pasta de Download:",
		KeyChange:             "Alterar",
		KeyOpenDownloadFolder: "Abrir Pasta de Download",
		KeyErrorOpeningFolder: "Erro ao abrir pasta",
		KeySelectTheme:        "Selecionar Tema",
		KeyClose:              "Fechar",
	}
}
