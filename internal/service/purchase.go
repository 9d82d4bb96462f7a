package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mmeshcher/gamestore/internal/model"
	"github.com/mmeshcher/gamestore/internal/repository"
)

// PurchaseGame продаёт одну копию игры покупателю.
// При любой ошибке склад и баланс остаются без изменений.
func (s *Service) PurchaseGame(a *model.Account, title string) (*model.Purchase, error) {
	g, err := s.reserve(a, title)
	if err != nil {
		return nil, err
	}

	if err := s.charge(a, g); err != nil {
		return nil, err
	}
	p := s.newPurchase(g, model.PurchaseKindBought, "")
	a.AddPurchase(p)

	s.logger.Info("purchase",
		zap.String("account", a.ID),
		zap.String("title", g.Title),
		zap.String("price", g.Price.StringFixed(2)),
		zap.Int("stock", g.Stock),
	)
	return &p, nil
}

// GiftGame покупает игру за счёт отправителя и добавляет её в библиотеку получателя.
// Запись о подарке попадает в историю обоих.
func (s *Service) GiftGame(sender *model.Account, recipientID, title string) (*model.Purchase, error) {
	if recipientID == sender.ID {
		return nil, ErrSelfGift
	}
	recipient, err := s.repo.GetAccountByID(recipientID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrRecipientNotFound, recipientID)
		}
		return nil, err
	}

	g, err := s.reserve(sender, title)
	if err != nil {
		return nil, err
	}

	if err := s.charge(sender, g); err != nil {
		return nil, err
	}
	sent := s.newPurchase(g, model.PurchaseKindGiftSent, recipient.ID)
	received := s.newPurchase(g, model.PurchaseKindGiftReceived, sender.ID)
	received.ID = sent.ID
	sender.AddPurchase(sent)
	recipient.AddPurchase(received)

	s.logger.Info("gift",
		zap.String("sender", sender.ID),
		zap.String("recipient", recipient.ID),
		zap.String("title", g.Title),
		zap.String("price", g.Price.StringFixed(2)),
		zap.Int("stock", g.Stock),
	)
	return &sent, nil
}

// reserve проверяет наличие игры и достаточность баланса, ничего не меняя.
func (s *Service) reserve(a *model.Account, title string) (*model.Game, error) {
	g, err := s.repo.GetGame(title)
	if err != nil {
		return nil, err
	}
	if !g.InStock() {
		return nil, ErrOutOfStock
	}
	if a.Balance().LessThan(g.Price) {
		return nil, ErrInsufficientBalance
	}
	return g, nil
}

func (s *Service) charge(a *model.Account, g *model.Game) error {
	// Бесплатные игры не проходят через Withdraw: нулевая сумма там запрещена.
	if g.Price.IsPositive() {
		if err := a.Withdraw(g.Price); err != nil {
			return fmt.Errorf("charge %s: %w", a.ID, err)
		}
	}
	g.Stock--
	return nil
}

func (s *Service) newPurchase(g *model.Game, kind model.PurchaseKind, counterparty string) model.Purchase {
	return model.Purchase{
		ID:           uuid.New(),
		Title:        g.Title,
		Price:        g.Price,
		Kind:         kind,
		Counterparty: counterparty,
		PurchasedAt:  s.now(),
	}
}
