package console

import (
	"context"
	"errors"

	"github.com/mmeshcher/gamestore/internal/repository"
)

func (s *Session) adminStep(ctx context.Context) error {
	n, err := s.con.Choose(ctx, adminMenu)
	if err != nil {
		return err
	}

	switch AdminAction(n) {
	case AdminViewStore:
		s.viewStore()
	case AdminViewUsers:
		s.viewUsers()
	case AdminAddGame:
		return s.addGame(ctx)
	case AdminRemoveGame:
		return s.removeGame(ctx)
	case AdminChangeStock:
		return s.changeStock(ctx)
	case AdminChangePrice:
		return s.changePrice(ctx)
	case AdminWithdrawFunds:
		return s.withdrawFunds(ctx)
	case AdminLogout:
		s.logout()
		s.con.Println("Logged out.")
	case AdminExit:
		s.exit()
	}
	return nil
}

func (s *Session) viewUsers() {
	s.con.Println("All Registered Users:")
	for _, a := range s.svc.Accounts(true) {
		s.con.Printf("%s: Name: %s (Username: %s) Role: %s Balance: %s\n",
			a.ID, a.FullName(), a.Username, a.Role, money(a.Balance()))
	}
}

func (s *Session) addGame(ctx context.Context) error {
	title, err := s.con.Prompt(ctx, "Enter game title: ")
	if err != nil {
		return err
	}
	price, err := s.con.PromptPrice(ctx, "Enter game price: ")
	if err != nil {
		return err
	}
	stock, err := s.con.PromptStock(ctx, "Enter game stock: ")
	if err != nil {
		return err
	}

	if _, err := s.svc.AddGame(s.account, title, price, stock); err != nil {
		s.report(err)
		return nil
	}
	s.con.Printf("Game %s added to the inventory.\n", title)
	return nil
}

// selectGame показывает каталог и запрашивает название существующей игры.
// found == false означает, что игра не найдена и сообщение уже выведено.
func (s *Session) selectGame(ctx context.Context, label string) (title string, found bool, err error) {
	s.viewStore()
	title, err = s.con.Prompt(ctx, label)
	if err != nil {
		return "", false, err
	}
	if _, err := s.svc.Game(title); err != nil {
		s.report(err)
		return "", false, nil
	}
	return title, true, nil
}

func (s *Session) removeGame(ctx context.Context) error {
	title, found, err := s.selectGame(ctx, "Enter the title of the game to remove: ")
	if err != nil || !found {
		return err
	}

	ok, err := s.con.Confirm(ctx, "Are you sure you want to delete the game '"+title+"'?")
	if err != nil {
		return err
	}
	if !ok {
		s.con.Println("Deletion cancelled.")
		return nil
	}

	if err := s.svc.RemoveGame(s.account, title); err != nil {
		s.report(err)
		return nil
	}
	s.con.Printf("The game '%s' has been successfully deleted.\n", title)
	return nil
}

func (s *Session) changeStock(ctx context.Context) error {
	title, found, err := s.selectGame(ctx, "Enter the title of the game to change the stock: ")
	if err != nil || !found {
		return err
	}
	stock, err := s.con.PromptStock(ctx, "Enter the new stock: ")
	if err != nil {
		return err
	}

	ok, err := s.con.Confirm(ctx, "Apply the new stock?")
	if err != nil {
		return err
	}
	if !ok {
		s.con.Println("Change cancelled.")
		return nil
	}

	if err := s.svc.ChangeStock(s.account, title, stock); err != nil {
		s.report(err)
		return nil
	}
	s.con.Printf("Game '%s' stock updated to %d.\n", title, stock)
	return nil
}

func (s *Session) changePrice(ctx context.Context) error {
	title, found, err := s.selectGame(ctx, "Enter the title of the game to change the price: ")
	if err != nil || !found {
		return err
	}
	price, err := s.con.PromptPrice(ctx, "Enter the new price: ")
	if err != nil {
		return err
	}

	ok, err := s.con.Confirm(ctx, "Apply the new price?")
	if err != nil {
		return err
	}
	if !ok {
		s.con.Println("Change cancelled.")
		return nil
	}

	if err := s.svc.ChangePrice(s.account, title, price); err != nil {
		s.report(err)
		return nil
	}
	s.con.Printf("Game '%s' price updated to %s.\n", title, money(price))
	return nil
}

func (s *Session) withdrawFunds(ctx context.Context) error {
	s.con.Println("Accounts:")
	for _, a := range s.svc.Accounts(false) {
		s.con.Printf("%s: %s (Username: %s) Balance: %s\n", a.ID, a.FullName(), a.Username, money(a.Balance()))
	}

	id, err := s.con.Prompt(ctx, "Please Insert User ID: ")
	if err != nil {
		return err
	}
	if _, err := s.svc.AccountByID(id); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			s.con.Printf("Client with ID %s not found.\n", id)
			return nil
		}
		s.report(err)
		return nil
	}

	amount, err := s.con.PromptAmount(ctx, "Please Insert Amount to Withdraw: ")
	if err != nil {
		return err
	}

	a, err := s.svc.Withdraw(s.account, id, amount)
	if err != nil {
		s.report(err)
		return nil
	}
	s.con.Printf("After Withdrawal: %s balance %s\n", a.Username, money(a.Balance()))
	return nil
}
