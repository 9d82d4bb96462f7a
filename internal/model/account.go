package model

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidAmount возвращается, если сумма операции не положительна.
	ErrInvalidAmount = errors.New("amount must be positive")
	// ErrInsufficientFunds возвращается при попытке снять больше, чем есть на балансе.
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// Account представляет зарегистрированного покупателя или администратора магазина.
type Account struct {
	ID        string
	FirstName string
	LastName  string
	Username  string
	Role      Role
	CreatedAt time.Time

	password  string
	balance   decimal.Decimal
	purchases []Purchase
}

// NewAccount создаёт учётную запись с нулевым балансом и пустой историей покупок.
func NewAccount(id, firstName, lastName, username, password string, role Role) *Account {
	return &Account{
		ID:        id,
		FirstName: firstName,
		LastName:  lastName,
		Username:  username,
		Role:      role,
		CreatedAt: time.Now(),
		password:  password,
		balance:   decimal.Zero,
	}
}

// IsAdmin сообщает, может ли учётная запись управлять каталогом.
func (a *Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// FullName возвращает имя и фамилию владельца.
func (a *Account) FullName() string {
	return a.FirstName + " " + a.LastName
}

// Balance возвращает текущий баланс.
func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

// Deposit зачисляет положительную сумму на баланс.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	a.balance = a.balance.Add(amount)
	return nil
}

// Withdraw списывает сумму с баланса, не допуская отрицательного остатка.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(a.balance) {
		return ErrInsufficientFunds
	}
	a.balance = a.balance.Sub(amount)
	return nil
}

// CheckPassword сравнивает пароль с сохранённым.
func (a *Account) CheckPassword(candidate string) bool {
	return a.password == candidate
}

// ResetPassword заменяет пароль учётной записи.
func (a *Account) ResetPassword(password string) {
	a.password = password
}

// AddPurchase добавляет запись в конец истории покупок.
func (a *Account) AddPurchase(p Purchase) {
	a.purchases = append(a.purchases, p)
}

// Purchases возвращает копию истории покупок в порядке добавления.
func (a *Account) Purchases() []Purchase {
	out := make([]Purchase, len(a.purchases))
	copy(out, a.purchases)
	return out
}

// Library возвращает названия игр, которыми владеет учётная запись, без повторов.
func (a *Account) Library() []string {
	seen := make(map[string]struct{}, len(a.purchases))
	titles := make([]string, 0, len(a.purchases))
	for _, p := range a.purchases {
		if !p.Owned() {
			continue
		}
		if _, ok := seen[p.Title]; ok {
			continue
		}
		seen[p.Title] = struct{}{}
		titles = append(titles, p.Title)
	}
	return titles
}
