package version

import "fmt"

// Заполняются при сборке через -ldflags.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// String возвращает строку с информацией о сборке для логов и health check.
func String() string {
	return fmt.Sprintf("version=%s commit=%s date=%s", version, commit, date)
}

// Info возвращает компоненты информации о сборке по отдельности.
func Info() (v, c, d string) { return version, commit, date }
