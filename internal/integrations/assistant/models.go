package assistant

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Source источник, на который ссылается ответ ассистента
type Source struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// Result результат поиска через ассистента
type Result struct {
	Text    string   `json:"text"`
	Sources []Source `json:"sources"`
}
