package service

import (
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mmeshcher/gamestore/internal/model"
)

// Games возвращает снимок каталога в порядке добавления.
func (s *Service) Games() []model.Game {
	return s.repo.ListGames()
}

// Game возвращает копию позиции каталога по названию.
func (s *Service) Game(title string) (model.Game, error) {
	g, err := s.repo.GetGame(title)
	if err != nil {
		return model.Game{}, err
	}
	return *g, nil
}

// AddGame добавляет игру в каталог. Название не может быть пустым.
func (s *Service) AddGame(actor *model.Account, title string, price decimal.Decimal, stock int) (*model.Game, error) {
	if !actor.IsAdmin() {
		return nil, ErrAdminRequired
	}
	if strings.TrimSpace(title) == "" {
		return nil, ErrInvalidTitle
	}
	if price.IsNegative() {
		return nil, ErrInvalidPrice
	}
	if stock < 0 {
		return nil, ErrInvalidStock
	}

	g := &model.Game{Title: title, Price: price, Stock: stock}
	if err := s.repo.CreateGame(g); err != nil {
		return nil, err
	}

	s.logger.Info("game added",
		zap.String("actor", actor.ID),
		zap.String("title", title),
		zap.String("price", price.StringFixed(2)),
		zap.Int("stock", stock),
	)
	return g, nil
}

// RemoveGame удаляет игру из каталога.
func (s *Service) RemoveGame(actor *model.Account, title string) error {
	if !actor.IsAdmin() {
		return ErrAdminRequired
	}
	if err := s.repo.DeleteGame(title); err != nil {
		return err
	}
	s.logger.Info("game removed", zap.String("actor", actor.ID), zap.String("title", title))
	return nil
}

// ChangePrice устанавливает новую цену игры.
func (s *Service) ChangePrice(actor *model.Account, title string, price decimal.Decimal) error {
	if !actor.IsAdmin() {
		return ErrAdminRequired
	}
	if price.IsNegative() {
		return ErrInvalidPrice
	}
	g, err := s.repo.GetGame(title)
	if err != nil {
		return err
	}

	old := g.Price
	g.Price = price
	s.logger.Info("price changed",
		zap.String("actor", actor.ID),
		zap.String("title", title),
		zap.String("old", old.StringFixed(2)),
		zap.String("new", price.StringFixed(2)),
	)
	return nil
}

// ChangeStock устанавливает новое количество копий игры на складе.
func (s *Service) ChangeStock(actor *model.Account, title string, stock int) error {
	if !actor.IsAdmin() {
		return ErrAdminRequired
	}
	if stock < 0 {
		return ErrInvalidStock
	}
	g, err := s.repo.GetGame(title)
	if err != nil {
		return err
	}

	old := g.Stock
	g.Stock = stock
	s.logger.Info("stock changed",
		zap.String("actor", actor.ID),
		zap.String("title", title),
		zap.Int("old", old),
		zap.Int("new", stock),
	)
	return nil
}
