package ports

import "context"

// KVStore — долговременное строковое хранилище ключ-значение.
// Требования к реализации: потокобезопасность; переживает перезапуск процесса
// (кроме памяти, используемой в тестах); отсутствие ключа — не ошибка.
type KVStore interface {
	// Get — (value, true, nil) при наличии ключа, ("", false, nil) при отсутствии.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set — записать/перезаписать значение.
	Set(ctx context.Context, key, value string) error

	// Remove — удалить ключ; удаление отсутствующего ключа не ошибка.
	Remove(ctx context.Context, key string) error
}
