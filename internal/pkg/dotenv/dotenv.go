package dotenv

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Load подхватывает .env, если он есть рядом с бинарником.
// Отсутствие файла не ошибка: в контейнере переменные приходят из окружения.
func Load() error {
	if err := godotenv.Load(); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading .env: %w", err)
	}
	return nil
}
