// Package service реализует бизнес-логику игрового магазина.
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mmeshcher/gamestore/internal/model"
	"github.com/mmeshcher/gamestore/internal/repository"
)

var (
	// ErrInvalidCredentials возвращается, если имя пользователя или пароль не подошли.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrAdminRequired возвращается, если операцию пытается выполнить не администратор.
	ErrAdminRequired = errors.New("admin role required")
	// ErrOutOfStock возвращается, если игры нет на складе.
	ErrOutOfStock = errors.New("game is out of stock")
	// ErrInsufficientBalance возвращается, если баланса не хватает на покупку.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrSelfGift возвращается при попытке подарить игру самому себе.
	ErrSelfGift = errors.New("cannot gift a game to yourself")
	// ErrRecipientNotFound возвращается, если получатель подарка не зарегистрирован.
	ErrRecipientNotFound = errors.New("recipient not found")
	// ErrInvalidPrice возвращается для отрицательной цены игры.
	ErrInvalidPrice = errors.New("price must not be negative")
	// ErrInvalidStock возвращается для отрицательного количества копий.
	ErrInvalidStock = errors.New("stock must not be negative")
	// ErrInvalidTitle возвращается, если название игры пустое.
	ErrInvalidTitle = errors.New("game title must not be blank")
)

// Repository описывает контракт доступа к данным, используемый сервисом.
type Repository interface {
	Close() error
	CreateAccount(a *model.Account) error
	GetAccountByID(id string) (*model.Account, error)
	GetAccountByUsername(username string) (*model.Account, error)
	ListAccounts() []*model.Account
	DeleteAccount(id string) error
	CreateGame(g *model.Game) error
	GetGame(title string) (*model.Game, error)
	ListGames() []model.Game
	DeleteGame(title string) error
}

// Service владеет учётными записями и каталогом и является единственным местом их изменения.
type Service struct {
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewService создаёт сервис поверх репозитория. События пишутся в logger.
func NewService(repo Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// Close закрывает ресурсы сервиса.
func (s *Service) Close() error {
	if s.repo != nil {
		return s.repo.Close()
	}
	return nil
}

// CreateAccount регистрирует покупателя или администратора.
// Если идентификатор занят, коллекция не меняется и возвращается repository.ErrAccountExists.
func (s *Service) CreateAccount(id, firstName, lastName, username, password string, role model.Role) (*model.Account, error) {
	a := model.NewAccount(id, firstName, lastName, username, password, role)
	a.CreatedAt = s.now()

	if err := s.repo.CreateAccount(a); err != nil {
		if errors.Is(err, repository.ErrAccountExists) {
			s.logger.Info("duplicate account id", zap.String("account", id))
		}
		return nil, err
	}

	s.logger.Info("account created",
		zap.String("account", a.ID),
		zap.String("username", a.Username),
		zap.String("role", string(a.Role)),
	)
	return a, nil
}

// AccountByID возвращает учётную запись по идентификатору.
func (s *Service) AccountByID(id string) (*model.Account, error) {
	return s.repo.GetAccountByID(id)
}

// AccountByUsername возвращает учётную запись по имени пользователя.
func (s *Service) AccountByUsername(username string) (*model.Account, error) {
	return s.repo.GetAccountByUsername(username)
}

// Accounts возвращает зарегистрированные учётные записи, администраторов только по запросу.
func (s *Service) Accounts(includeAdmins bool) []*model.Account {
	all := s.repo.ListAccounts()
	if includeAdmins {
		return all
	}
	out := make([]*model.Account, 0, len(all))
	for _, a := range all {
		if !a.IsAdmin() {
			out = append(out, a)
		}
	}
	return out
}

// Login возвращает первую учётную запись, у которой совпали и имя пользователя, и пароль.
func (s *Service) Login(username, password string) (*model.Account, error) {
	for _, a := range s.repo.ListAccounts() {
		if a.Username == username && a.CheckPassword(password) {
			s.logger.Info("login", zap.String("account", a.ID), zap.String("role", string(a.Role)))
			return a, nil
		}
	}
	s.logger.Info("login failed", zap.String("username", username))
	return nil, ErrInvalidCredentials
}

// Logout фиксирует завершение сеанса.
func (s *Service) Logout(a *model.Account) {
	s.logger.Info("logout", zap.String("account", a.ID))
}

// DeleteAccount удаляет учётную запись после повторного ввода её учётных данных.
func (s *Service) DeleteAccount(a *model.Account, username, password string) error {
	if a.Username != username || !a.CheckPassword(password) {
		return ErrInvalidCredentials
	}
	if err := s.repo.DeleteAccount(a.ID); err != nil {
		return fmt.Errorf("delete account %s: %w", a.ID, err)
	}
	s.logger.Info("account deleted", zap.String("account", a.ID), zap.String("username", a.Username))
	return nil
}

// ChangePassword меняет пароль, если текущий пароль введён верно.
func (s *Service) ChangePassword(a *model.Account, current, next string) error {
	if !a.CheckPassword(current) {
		return ErrInvalidCredentials
	}
	a.ResetPassword(next)
	s.logger.Info("password changed", zap.String("account", a.ID))
	return nil
}

// Deposit пополняет баланс учётной записи.
func (s *Service) Deposit(a *model.Account, amount decimal.Decimal) error {
	if err := a.Deposit(amount); err != nil {
		return err
	}
	s.logger.Info("deposit",
		zap.String("account", a.ID),
		zap.String("amount", amount.StringFixed(2)),
		zap.String("balance", a.Balance().StringFixed(2)),
	)
	return nil
}

// Withdraw списывает средства с указанной учётной записи по распоряжению администратора.
func (s *Service) Withdraw(actor *model.Account, accountID string, amount decimal.Decimal) (*model.Account, error) {
	if !actor.IsAdmin() {
		return nil, ErrAdminRequired
	}
	a, err := s.repo.GetAccountByID(accountID)
	if err != nil {
		return nil, err
	}
	if err := a.Withdraw(amount); err != nil {
		return nil, err
	}
	s.logger.Info("withdrawal",
		zap.String("actor", actor.ID),
		zap.String("account", a.ID),
		zap.String("amount", amount.StringFixed(2)),
		zap.String("balance", a.Balance().StringFixed(2)),
	)
	return a, nil
}
