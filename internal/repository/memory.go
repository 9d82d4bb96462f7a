// Package repository содержит хранилище учётных записей и каталога игр в памяти процесса.
package repository

import (
	"errors"
	"fmt"

	"github.com/mmeshcher/gamestore/internal/model"
)

var (
	// ErrAccountExists возвращается при попытке создать учётную запись с уже занятым идентификатором.
	ErrAccountExists = errors.New("account already exists")
	// ErrAccountNotFound возвращается, если учётная запись не найдена.
	ErrAccountNotFound = errors.New("account not found")
	// ErrGameExists возвращается при попытке добавить игру с названием, которое уже есть в каталоге.
	ErrGameExists = errors.New("game already exists")
	// ErrGameNotFound возвращается, если игры нет в каталоге.
	ErrGameNotFound = errors.New("game not found")
)

// MemoryRepository хранит учётные записи и каталог в срезах в порядке добавления.
// Поиск выполняется линейным просмотром.
type MemoryRepository struct {
	accounts []*model.Account
	games    []*model.Game
}

// NewMemoryRepository создаёт пустое хранилище.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Close освобождает содержимое хранилища.
func (r *MemoryRepository) Close() error {
	r.accounts = nil
	r.games = nil
	return nil
}

// CreateAccount добавляет учётную запись, если её идентификатор ещё не занят.
func (r *MemoryRepository) CreateAccount(a *model.Account) error {
	if _, err := r.GetAccountByID(a.ID); err == nil {
		return fmt.Errorf("%w: %s", ErrAccountExists, a.ID)
	}
	r.accounts = append(r.accounts, a)
	return nil
}

// GetAccountByID возвращает первую учётную запись с указанным идентификатором.
func (r *MemoryRepository) GetAccountByID(id string) (*model.Account, error) {
	for _, a := range r.accounts {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, ErrAccountNotFound
}

// GetAccountByUsername возвращает первую учётную запись с указанным именем пользователя.
func (r *MemoryRepository) GetAccountByUsername(username string) (*model.Account, error) {
	for _, a := range r.accounts {
		if a.Username == username {
			return a, nil
		}
	}
	return nil, ErrAccountNotFound
}

// ListAccounts возвращает учётные записи в порядке создания.
func (r *MemoryRepository) ListAccounts() []*model.Account {
	out := make([]*model.Account, len(r.accounts))
	copy(out, r.accounts)
	return out
}

// DeleteAccount удаляет учётную запись с указанным идентификатором.
func (r *MemoryRepository) DeleteAccount(id string) error {
	for i, a := range r.accounts {
		if a.ID == id {
			r.accounts = append(r.accounts[:i], r.accounts[i+1:]...)
			return nil
		}
	}
	return ErrAccountNotFound
}

// CreateGame добавляет игру в каталог. Названия в каталоге уникальны.
func (r *MemoryRepository) CreateGame(g *model.Game) error {
	if _, err := r.GetGame(g.Title); err == nil {
		return fmt.Errorf("%w: %s", ErrGameExists, g.Title)
	}
	r.games = append(r.games, g)
	return nil
}

// GetGame возвращает игру по точному совпадению названия.
func (r *MemoryRepository) GetGame(title string) (*model.Game, error) {
	for _, g := range r.games {
		if g.Title == title {
			return g, nil
		}
	}
	return nil, ErrGameNotFound
}

// ListGames возвращает копию каталога в порядке добавления.
func (r *MemoryRepository) ListGames() []model.Game {
	out := make([]model.Game, 0, len(r.games))
	for _, g := range r.games {
		out = append(out, *g)
	}
	return out
}

// DeleteGame удаляет игру из каталога.
func (r *MemoryRepository) DeleteGame(title string) error {
	for i, g := range r.games {
		if g.Title == title {
			r.games = append(r.games[:i], r.games[i+1:]...)
			return nil
		}
	}
	return ErrGameNotFound
}
