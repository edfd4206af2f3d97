package validate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Gunvolt24/pokedex/internal/domain"
	"github.com/Gunvolt24/pokedex/internal/ports"
)

// Проверка, что PokemonValidator удовлетворяет интерфейсу PokemonValidator.
var _ ports.PokemonValidator = (*PokemonValidator)(nil)

// ErrInvalidPokemon — базовая (sentinel error) ошибка валидации удалённых записей и снимков.
var ErrInvalidPokemon = errors.New("pokemon validation failed")

// PokemonValidator — проверка записей PokeAPI на границе, до попадания во внутреннюю логику.
type PokemonValidator struct{}

// NewPokemonValidator — конструктор PokemonValidator.
// Возвращает ErrInvalidPokemon (с обёрнутой причиной) при любой проблеме.
func NewPokemonValidator() *PokemonValidator { return &PokemonValidator{} }

// Validate — проверяет карточку /pokemon.
func (v *PokemonValidator) Validate(_ context.Context, p *domain.PokemonDetail) error {
	if p == nil {
		return fmt.Errorf("%w: карточка не может быть nil", ErrInvalidPokemon)
	}
	if err := v.validateIdentity(p.ID, p.Name); err != nil {
		return err
	}
	return v.validateTypes(p.Types)
}

// ValidateSnapshot — проверяет снимок избранного.
func (v *PokemonValidator) ValidateSnapshot(_ context.Context, s *domain.Snapshot) error {
	if s == nil {
		return fmt.Errorf("%w: снимок не может быть nil", ErrInvalidPokemon)
	}
	if err := v.validateIdentity(s.ID, s.Name); err != nil {
		return err
	}
	return v.validateTypes(s.Types)
}

func (v *PokemonValidator) validateIdentity(id int, name string) error {
	if id <= 0 {
		return fmt.Errorf("%w: id должен быть положительным", ErrInvalidPokemon)
	}
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name обязателен", ErrInvalidPokemon)
	}
	return nil
}

// Валидация тегов категорий
func (v *PokemonValidator) validateTypes(types []domain.TypeSlot) error {
	for i := range types {
		if types[i].Type.Name == "" {
			return fmt.Errorf("%w: types[%d].type.name обязателен", ErrInvalidPokemon, i)
		}
	}
	return nil
}
