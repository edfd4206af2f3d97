package ports

import "context"

// Logger — логгер слоёв приложения. Из ctx берутся request_id, источник и trace.
// Ошибки хранилища и PokeAPI в избранном только логируются, поэтому Warnf/Errorf
// здесь единственный канал сообщить о сбое.
type Logger interface {
	Infof(ctx context.Context, format string, args ...any)
	Warnf(ctx context.Context, format string, args ...any)
	Errorf(ctx context.Context, format string, args ...any)
}
