package vtsclient

import (
	"os"
	"path/filepath"
	"strings"
)

// readToken — читает сохранённый токен из файла. Отсутствие файла — не
// ошибка, просто «сохранённого токена нет».
func readToken(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

// writeToken — сохраняет токен (перезаписывая старый).
func writeToken(path, token string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(token), 0o600)
}
