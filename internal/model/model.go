// Package model содержит доменные сущности игрового магазина.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Role описывает уровень полномочий учётной записи.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Game описывает позицию каталога магазина.
type Game struct {
	Title string
	Price decimal.Decimal
	Stock int
}

// InStock сообщает, есть ли у игры хотя бы одна копия на складе.
func (g *Game) InStock() bool {
	return g.Stock > 0
}

// PurchaseKind описывает происхождение записи в истории покупок.
type PurchaseKind string

const (
	PurchaseKindBought       PurchaseKind = "PURCHASE"
	PurchaseKindGiftSent     PurchaseKind = "GIFT_SENT"
	PurchaseKindGiftReceived PurchaseKind = "GIFT_RECEIVED"
)

// Purchase описывает одну запись истории покупок учётной записи.
type Purchase struct {
	ID    uuid.UUID
	Title string
	Price decimal.Decimal
	Kind  PurchaseKind
	// Counterparty содержит идентификатор второй стороны подарка.
	Counterparty string
	PurchasedAt  time.Time
}

// Owned сообщает, попадает ли игра из записи в библиотеку владельца.
func (p Purchase) Owned() bool {
	return p.Kind != PurchaseKindGiftSent
}
