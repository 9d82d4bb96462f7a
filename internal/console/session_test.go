package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/mmeshcher/gamestore/internal/model"
	"github.com/mmeshcher/gamestore/internal/repository"
	"github.com/mmeshcher/gamestore/internal/service"
)

type scriptedInput struct {
	lines []string
	err   error
}

func (in *scriptedInput) ReadLine(ctx context.Context) (string, error) {
	if len(in.lines) == 0 {
		if in.err != nil {
			return "", in.err
		}
		return "", ErrInputClosed
	}
	line := in.lines[0]
	in.lines = in.lines[1:]
	return line, nil
}

type fixture struct {
	svc  *service.Service
	out  *bytes.Buffer
	logs *observer.ObservedLogs
}

// newFixture: admin "1" (admin/admin), alice "2" с балансом 15.00, bob "3" с балансом 5.00, Chess за 10.00 в одном экземпляре.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	core, logs := observer.New(zapcore.InfoLevel)
	svc := service.NewService(repository.NewMemoryRepository(), zap.New(core))

	admin, err := svc.CreateAccount("1", "Store", "Admin", "admin", "admin", model.RoleAdmin)
	require.NoError(t, err)
	alice, err := svc.CreateAccount("2", "Alice", "Walker", "alice", "alice", model.RoleUser)
	require.NoError(t, err)
	require.NoError(t, svc.Deposit(alice, decimal.RequireFromString("15.00")))
	bob, err := svc.CreateAccount("3", "Bob", "Stone", "bob", "bob", model.RoleUser)
	require.NoError(t, err)
	require.NoError(t, svc.Deposit(bob, decimal.RequireFromString("5.00")))
	_, err = svc.AddGame(admin, "Chess", decimal.RequireFromString("10.00"), 1)
	require.NoError(t, err)

	return &fixture{svc: svc, out: &bytes.Buffer{}, logs: logs}
}

func (f *fixture) run(t *testing.T, lines ...string) *Session {
	t.Helper()

	s := NewSession(f.svc, &scriptedInput{lines: lines}, f.out, zap.NewNop())
	require.NoError(t, s.Run(context.Background()))
	return s
}

func (f *fixture) account(t *testing.T, id string) *model.Account {
	t.Helper()

	a, err := f.svc.AccountByID(id)
	require.NoError(t, err)
	return a
}

func TestRun_InvalidSelectionReprompts(t *testing.T) {
	f := newFixture(t)

	s := f.run(t, "abc", "9", "", "3")

	out := f.out.String()
	assert.Equal(t, 3, strings.Count(out, "Invalid selection. Please try again."))
	assert.Equal(t, 4, strings.Count(out, "1 - REGISTER"))
	assert.Contains(t, out, "Goodbye :)")
	assert.Equal(t, StateExit, s.State())
}

func TestRun_UserPurchaseFlow(t *testing.T) {
	f := newFixture(t)

	s := f.run(t,
		"2", "alice", "alice",
		"2", "Chess",
		"7",
		"3",
		"2", "Chess",
		"10",
		"3",
	)

	out := f.out.String()
	assert.Contains(t, out, "Welcome Alice!")
	assert.Contains(t, out, "1 - VIEW_STORE")
	assert.Contains(t, out, "Game 'Chess' purchased successfully.")
	assert.Contains(t, out, "Current Balance for alice: $5.00")
	assert.Contains(t, out, "Your Library:\nTitle: Chess")
	assert.Contains(t, out, "Game is out of stock.")
	assert.Contains(t, out, "Logged out.")

	alice := f.account(t, "2")
	assert.Equal(t, "5.00", alice.Balance().StringFixed(2))
	assert.Equal(t, 0, f.svc.Games()[0].Stock)
	assert.Nil(t, s.Account())
	assert.Equal(t, 1, f.logs.FilterMessage("logout").Len())
}

func TestRun_InvalidLogin(t *testing.T) {
	f := newFixture(t)

	s := f.run(t, "2", "alice", "nope", "3")

	assert.Contains(t, f.out.String(), "Invalid username or password.")
	assert.NotContains(t, f.out.String(), "Welcome")
	assert.Equal(t, StateExit, s.State())
}

func TestRun_RoleSelectsMenu(t *testing.T) {
	tests := []struct {
		name     string
		username string
		want     State
		menuItem string
	}{
		{name: "user", username: "bob", want: StateUserSession, menuItem: "9 - DELETE_ACCOUNT"},
		{name: "admin", username: "admin", want: StateAdminSession, menuItem: "7 - WITHDRAW_FUNDS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			s := NewSession(f.svc, &scriptedInput{lines: []string{"2", tt.username, tt.username}}, f.out, nil)

			require.NoError(t, s.storeStep(context.Background()))
			assert.Equal(t, tt.want, s.State())
			assert.Equal(t, tt.username, s.Account().Username)

			_ = s.Run(context.Background())
			assert.Contains(t, f.out.String(), tt.menuItem)
		})
	}
}

func TestRun_Register(t *testing.T) {
	f := newFixture(t)

	f.run(t,
		"1", "2", "X", "Y", "xy", "pw", "n",
		"1", "4", "Dan", "Brown", "dan", "pw", "y",
		"3",
	)

	out := f.out.String()
	assert.Contains(t, out, "User ID 2 already exists.")
	assert.Contains(t, out, "Account Created! ID: 4, Name: Dan Brown")

	assert.Len(t, f.svc.Accounts(true), 4)
	assert.Equal(t, "alice", f.account(t, "2").Username)
	assert.True(t, f.account(t, "4").IsAdmin())
}

func TestRun_AdminCatalogFlow(t *testing.T) {
	f := newFixture(t)

	f.run(t,
		"2", "admin", "admin",
		"3", "Go", "abc", "2.50", "x", "4",
		"3", "Go", "1", "1",
		"6", "Go", "3.00", "y",
		"5", "Go", "7", "n",
		"4", "Go", "n",
		"4", "Nope",
		"2",
		"9",
	)

	out := f.out.String()
	assert.Contains(t, out, "Invalid number. Please try again.")
	assert.Contains(t, out, "Game Go added to the inventory.")
	assert.Contains(t, out, "A game with this title already exists.")
	assert.Contains(t, out, "Game 'Go' price updated to $3.00.")
	assert.Contains(t, out, "Change cancelled.")
	assert.Contains(t, out, "Deletion cancelled.")
	assert.Contains(t, out, "Game not found.")
	assert.Contains(t, out, "2: Name: Alice Walker (Username: alice) Role: USER Balance: $15.00")

	g, err := f.svc.Game("Go")
	require.NoError(t, err)
	assert.Equal(t, "3.00", g.Price.StringFixed(2))
	assert.Equal(t, 4, g.Stock)
	assert.Equal(t, 1, f.logs.FilterMessage("logout").Len())
}

func TestRun_AdminRemoveAndStock(t *testing.T) {
	f := newFixture(t)

	f.run(t,
		"2", "admin", "admin",
		"5", "Chess", "-1", "6", "y",
		"4", "Chess", "y",
		"1",
		"9",
	)

	out := f.out.String()
	assert.Contains(t, out, "Value must not be negative. Please try again.")
	assert.Contains(t, out, "Game 'Chess' stock updated to 6.")
	assert.Contains(t, out, "The game 'Chess' has been successfully deleted.")
	assert.Contains(t, out, "OOPS...No games yet :(")
	assert.Empty(t, f.svc.Games())
}

func TestRun_AdminWithdrawFunds(t *testing.T) {
	f := newFixture(t)

	f.run(t,
		"2", "admin", "admin",
		"7", "42",
		"7", "2", "100",
		"7", "2", "6.5",
		"9",
	)

	out := f.out.String()
	assert.Contains(t, out, "Client with ID 42 not found.")
	assert.Contains(t, out, "Insufficient balance.")
	assert.Contains(t, out, "After Withdrawal: alice balance $8.50")
	assert.Equal(t, "8.50", f.account(t, "2").Balance().StringFixed(2))
	assert.Equal(t, 1, f.logs.FilterMessage("withdrawal").Len())
}

func TestRun_DeleteAccountWrongPassword(t *testing.T) {
	f := newFixture(t)

	f.run(t,
		"2", "bob", "bob",
		"9", "bob", "wrong", "y",
		"9", "bob", "bob", "n",
		"11",
	)

	out := f.out.String()
	assert.Contains(t, out, "Incorrect username or password.")
	assert.Equal(t, 2, strings.Count(out, "Account deletion failed."))
	f.account(t, "3")
}

func TestRun_DeleteAccount(t *testing.T) {
	f := newFixture(t)

	s := f.run(t,
		"2", "bob", "bob",
		"9", "bob", "bob", "y",
		"2", "bob", "bob",
		"3",
	)

	out := f.out.String()
	assert.Contains(t, out, "Account for bob deleted.\nLogging out...")
	assert.Contains(t, out, "Invalid username or password.")
	assert.Equal(t, StateExit, s.State())

	_, err := f.svc.AccountByID("3")
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
	assert.Equal(t, 1, f.logs.FilterMessage("account deleted").Len())
}

func TestRun_SendGift(t *testing.T) {
	f := newFixture(t)

	f.run(t,
		"2", "alice", "alice",
		"5", "2",
		"5", "42",
		"5", "3", "Chess",
		"4",
		"11",
	)

	out := f.out.String()
	assert.Contains(t, out, "You cannot gift a game to yourself.")
	assert.Contains(t, out, "Invalid client ID.")
	assert.Contains(t, out, "Game 'Chess' gifted successfully to bob.")
	assert.Contains(t, out, "Chess $10.00 (gift to 3)")
	assert.NotContains(t, out, "2: Alice Walker (Username: alice)")
	assert.Contains(t, out, "3: Bob Stone (Username: bob)")

	assert.Equal(t, []string{"Chess"}, f.account(t, "3").Library())
	assert.Equal(t, "5.00", f.account(t, "2").Balance().StringFixed(2))
	assert.Equal(t, "5.00", f.account(t, "3").Balance().StringFixed(2))
}

func TestRun_DepositAndChangePassword(t *testing.T) {
	f := newFixture(t)

	f.run(t,
		"2", "bob", "bob",
		"6", "ten", "0",
		"6", "20",
		"8", "nope", "secret",
		"8", "bob", "secret",
		"10",
		"2", "bob", "secret",
		"3",
		"11",
	)

	out := f.out.String()
	assert.Contains(t, out, "Invalid number. Please try again.")
	assert.Contains(t, out, "Amount must be positive.")
	assert.Contains(t, out, "Deposit of $20.00 successful. New balance: $25.00")
	assert.Contains(t, out, "Incorrect username or password.")
	assert.Contains(t, out, "Password updated.")
	assert.Contains(t, out, "You have no games in your library.")
	assert.Equal(t, 2, strings.Count(out, "Welcome Bob!"))
}

func TestRun_DepositRejectsExponentAndHugeAmounts(t *testing.T) {
	f := newFixture(t)

	f.run(t,
		"2", "bob", "bob",
		"6", "1e10000000", "1E-2", "10000000000000", "1.25",
		"11",
	)

	out := f.out.String()
	assert.Equal(t, 2, strings.Count(out, "Invalid number. Please try again."))
	assert.Contains(t, out, "Amount is too large. Please try again.")
	assert.Contains(t, out, "Deposit of $1.25 successful. New balance: $6.25")
	assert.Equal(t, "6.25", f.account(t, "3").Balance().StringFixed(2))
}

func TestRun_AdminBlankTitle(t *testing.T) {
	f := newFixture(t)

	f.run(t,
		"2", "admin", "admin",
		"3", "", "1", "1",
		"4", "",
		"9",
	)

	out := f.out.String()
	assert.Contains(t, out, "Game title must not be empty.")
	assert.Contains(t, out, "Game not found.")
	assert.Len(t, f.svc.Games(), 1)
}

func TestRun_EndOfInputLogsOut(t *testing.T) {
	f := newFixture(t)

	s := NewSession(f.svc, &scriptedInput{lines: []string{"2", "alice", "alice"}}, f.out, nil)
	require.NoError(t, s.Run(context.Background()))

	assert.Equal(t, StateExit, s.State())
	assert.Nil(t, s.Account())
	assert.Contains(t, f.out.String(), "Goodbye :)")
	assert.Equal(t, 1, f.logs.FilterMessage("logout").Len())
}

func TestRun_ContextCanceled(t *testing.T) {
	f := newFixture(t)

	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewSession(f.svc, NewLineReader(pr), f.out, nil)
	require.NoError(t, s.Run(ctx))
	assert.Equal(t, StateExit, s.State())
}

func TestRun_InputErrorIsReturned(t *testing.T) {
	f := newFixture(t)
	broken := errors.New("tty gone")

	s := NewSession(f.svc, &scriptedInput{err: broken}, f.out, nil)
	err := s.Run(context.Background())

	require.ErrorIs(t, err, broken)
	assert.Equal(t, StateExit, s.State())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "unauthenticated", StateUnauthenticated.String())
	assert.Equal(t, "admin", StateAdminSession.String())
	assert.Equal(t, "unknown", State(42).String())
}
