package console

import (
	"context"
	"errors"
	"io"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mmeshcher/gamestore/internal/model"
	"github.com/mmeshcher/gamestore/internal/repository"
	"github.com/mmeshcher/gamestore/internal/service"
)

// Service определяет контракт магазина, используемый сеансом.
type Service interface {
	CreateAccount(id, firstName, lastName, username, password string, role model.Role) (*model.Account, error)
	AccountByID(id string) (*model.Account, error)
	Accounts(includeAdmins bool) []*model.Account
	Login(username, password string) (*model.Account, error)
	Logout(a *model.Account)
	DeleteAccount(a *model.Account, username, password string) error
	ChangePassword(a *model.Account, current, next string) error
	Deposit(a *model.Account, amount decimal.Decimal) error
	Withdraw(actor *model.Account, accountID string, amount decimal.Decimal) (*model.Account, error)
	Games() []model.Game
	Game(title string) (model.Game, error)
	AddGame(actor *model.Account, title string, price decimal.Decimal, stock int) (*model.Game, error)
	RemoveGame(actor *model.Account, title string) error
	ChangePrice(actor *model.Account, title string, price decimal.Decimal) error
	ChangeStock(actor *model.Account, title string, stock int) error
	PurchaseGame(a *model.Account, title string) (*model.Purchase, error)
	GiftGame(sender *model.Account, recipientID, title string) (*model.Purchase, error)
}

// State описывает уровень меню, в котором находится сеанс.
type State int

const (
	StateUnauthenticated State = iota
	StateUserSession
	StateAdminSession
	StateExit
)

func (s State) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateUserSession:
		return "user"
	case StateAdminSession:
		return "admin"
	case StateExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Session ведёт диалог с пользователем: меню магазина, покупателя и администратора.
type Session struct {
	svc     Service
	con     *Console
	logger  *zap.Logger
	state   State
	account *model.Account
}

// NewSession создаёт сеанс в состоянии StateUnauthenticated.
func NewSession(svc Service, in Input, out io.Writer, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		svc:    svc,
		con:    NewConsole(in, out),
		logger: logger,
		state:  StateUnauthenticated,
	}
}

// State возвращает текущее состояние сеанса.
func (s *Session) State() State {
	return s.state
}

// Account возвращает учётную запись, под которой выполнен вход, или nil.
func (s *Session) Account() *model.Account {
	return s.account
}

// Run обрабатывает меню до выбора EXIT, конца ввода или отмены ctx.
// Ошибка возвращается только при сбое чтения ввода.
func (s *Session) Run(ctx context.Context) error {
	s.logger.Info("session started")

	for s.state != StateExit {
		var err error
		switch s.state {
		case StateUnauthenticated:
			err = s.storeStep(ctx)
		case StateUserSession:
			err = s.userStep(ctx)
		case StateAdminSession:
			err = s.adminStep(ctx)
		}
		if err == nil {
			continue
		}

		if errors.Is(err, ErrInputClosed) || ctx.Err() != nil {
			s.logger.Info("input ended", zap.Error(err))
			s.con.Println()
			s.exit()
			return nil
		}
		s.logger.Error("read input", zap.Error(err))
		s.exit()
		return err
	}

	return nil
}

func (s *Session) enter(a *model.Account) {
	s.account = a
	switch a.Role {
	case model.RoleAdmin:
		s.state = StateAdminSession
	default:
		s.state = StateUserSession
	}
}

func (s *Session) logout() {
	if s.account != nil {
		s.svc.Logout(s.account)
	}
	s.account = nil
	s.state = StateUnauthenticated
}

func (s *Session) exit() {
	if s.account != nil {
		s.logout()
	}
	s.state = StateExit
	s.logger.Info("exit")
	s.con.Println("Goodbye :)")
}

// report сообщает пользователю о нарушении правил магазина. Сеанс продолжается.
func (s *Session) report(err error) {
	switch {
	case errors.Is(err, repository.ErrGameNotFound):
		s.con.Println("Game not found.")
	case errors.Is(err, repository.ErrGameExists):
		s.con.Println("A game with this title already exists.")
	case errors.Is(err, repository.ErrAccountExists):
		s.con.Println("An account with this ID already exists.")
	case errors.Is(err, service.ErrRecipientNotFound):
		s.con.Println("Invalid client ID.")
	case errors.Is(err, repository.ErrAccountNotFound):
		s.con.Println("Account not found.")
	case errors.Is(err, service.ErrOutOfStock):
		s.con.Println("Game is out of stock.")
	case errors.Is(err, service.ErrInsufficientBalance), errors.Is(err, model.ErrInsufficientFunds):
		s.con.Println("Insufficient balance.")
	case errors.Is(err, service.ErrSelfGift):
		s.con.Println("You cannot gift a game to yourself.")
	case errors.Is(err, service.ErrInvalidCredentials):
		s.con.Println("Incorrect username or password.")
	case errors.Is(err, service.ErrAdminRequired):
		s.con.Println("This action requires an admin account.")
	case errors.Is(err, model.ErrInvalidAmount):
		s.con.Println("Amount must be positive.")
	case errors.Is(err, service.ErrInvalidPrice), errors.Is(err, service.ErrInvalidStock):
		s.con.Println("Value must not be negative.")
	case errors.Is(err, service.ErrInvalidTitle):
		s.con.Println("Game title must not be empty.")
	default:
		s.logger.Error("operation failed", zap.Error(err))
		s.con.Printf("Operation failed: %v\n", err)
	}
}
