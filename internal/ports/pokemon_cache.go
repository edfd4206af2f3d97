package ports

import (
	"context"

	"github.com/Gunvolt24/pokedex/internal/domain"
)

// PokemonCache — кэш полных карточек из удалённого сервиса.
// Требования к реализации: потокобезопасность; доступ по ключу не хуже O(1); возврат копий.
type PokemonCache interface {
	// Get — (card, true) при попадании, (nil, false) при промахе/истечении.
	Get(ctx context.Context, key string) (*domain.PokemonDetail, bool)

	// Set — сохранить карточку под именем и под id.
	Set(ctx context.Context, p *domain.PokemonDetail) error
}
