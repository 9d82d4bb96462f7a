package console

import (
	"context"

	"github.com/mmeshcher/gamestore/internal/model"
	"github.com/mmeshcher/gamestore/internal/service"
)

const historyTimeLayout = "02-01-2006 15:04"

func (s *Session) userStep(ctx context.Context) error {
	n, err := s.con.Choose(ctx, userMenu)
	if err != nil {
		return err
	}

	switch UserAction(n) {
	case UserViewStore:
		s.viewStore()
	case UserBuyGame:
		return s.buyGame(ctx)
	case UserViewLibrary:
		s.viewLibrary()
	case UserPurchaseHistory:
		s.purchaseHistory()
	case UserSendGift:
		return s.sendGift(ctx)
	case UserDeposit:
		return s.deposit(ctx)
	case UserCheckBalance:
		s.con.Printf("Current Balance for %s: %s\n", s.account.Username, money(s.account.Balance()))
	case UserChangePassword:
		return s.changePassword(ctx)
	case UserDeleteAccount:
		return s.deleteAccount(ctx)
	case UserLogout:
		s.logout()
		s.con.Println("Logged out.")
	case UserExit:
		s.exit()
	}
	return nil
}

func (s *Session) viewStore() {
	games := s.svc.Games()
	if len(games) == 0 {
		s.con.Println("OOPS...No games yet :(")
		return
	}
	for _, g := range games {
		s.con.Printf("Title: %s | Price: %s | Stock: %d\n", g.Title, money(g.Price), g.Stock)
	}
}

func (s *Session) buyGame(ctx context.Context) error {
	s.viewStore()
	title, err := s.con.Prompt(ctx, "Enter the title of the game to purchase: ")
	if err != nil {
		return err
	}

	if _, err := s.svc.PurchaseGame(s.account, title); err != nil {
		s.report(err)
		return nil
	}
	s.con.Printf("Game '%s' purchased successfully.\n", title)
	return nil
}

func (s *Session) viewLibrary() {
	titles := s.account.Library()
	if len(titles) == 0 {
		s.con.Println("You have no games in your library.")
		return
	}
	s.con.Println("Your Library:")
	for _, t := range titles {
		s.con.Printf("Title: %s\n", t)
	}
}

func (s *Session) purchaseHistory() {
	s.con.Printf("Purchase History for %s:\n", s.account.Username)
	purchases := s.account.Purchases()
	if len(purchases) == 0 {
		s.con.Println("No purchases yet.")
		return
	}
	for _, p := range purchases {
		line := p.PurchasedAt.Format(historyTimeLayout) + " " + p.Title + " " + money(p.Price)
		switch p.Kind {
		case model.PurchaseKindGiftSent:
			line += " (gift to " + p.Counterparty + ")"
		case model.PurchaseKindGiftReceived:
			line += " (gift from " + p.Counterparty + ")"
		}
		s.con.Printf("Game - %s\n", line)
	}
}

func (s *Session) sendGift(ctx context.Context) error {
	s.con.Println("Accounts:")
	for _, a := range s.svc.Accounts(false) {
		if a.ID == s.account.ID {
			continue
		}
		s.con.Printf("%s: %s (Username: %s)\n", a.ID, a.FullName(), a.Username)
	}

	recipientID, err := s.con.Prompt(ctx, "Please Insert User ID To Gift To: ")
	if err != nil {
		return err
	}
	if recipientID == s.account.ID {
		s.report(service.ErrSelfGift)
		return nil
	}
	recipient, err := s.svc.AccountByID(recipientID)
	if err != nil {
		s.report(service.ErrRecipientNotFound)
		return nil
	}

	s.viewStore()
	title, err := s.con.Prompt(ctx, "Enter the title of the game to gift: ")
	if err != nil {
		return err
	}

	if _, err := s.svc.GiftGame(s.account, recipient.ID, title); err != nil {
		s.report(err)
		return nil
	}
	s.con.Printf("Game '%s' gifted successfully to %s.\n", title, recipient.Username)
	return nil
}

func (s *Session) deposit(ctx context.Context) error {
	amount, err := s.con.PromptAmount(ctx, "Enter amount to deposit: ")
	if err != nil {
		return err
	}
	if err := s.svc.Deposit(s.account, amount); err != nil {
		s.report(err)
		return nil
	}
	s.con.Printf("Deposit of %s successful. New balance: %s\n", money(amount), money(s.account.Balance()))
	return nil
}

func (s *Session) changePassword(ctx context.Context) error {
	current, err := s.con.Prompt(ctx, "Current password: ")
	if err != nil {
		return err
	}
	next, err := s.con.Prompt(ctx, "New password: ")
	if err != nil {
		return err
	}
	if err := s.svc.ChangePassword(s.account, current, next); err != nil {
		s.report(err)
		return nil
	}
	s.con.Println("Password updated.")
	return nil
}

func (s *Session) deleteAccount(ctx context.Context) error {
	username, err := s.con.Prompt(ctx, "Enter username: ")
	if err != nil {
		return err
	}
	password, err := s.con.Prompt(ctx, "Enter password: ")
	if err != nil {
		return err
	}
	ok, err := s.con.Confirm(ctx, "Are you sure you want to delete the account?")
	if err != nil {
		return err
	}
	if !ok {
		s.con.Println("Deletion cancelled. Account deletion failed.")
		return nil
	}

	if err := s.svc.DeleteAccount(s.account, username, password); err != nil {
		s.report(err)
		s.con.Println("Account deletion failed.")
		return nil
	}

	s.con.Printf("Account for %s deleted.\n", s.account.Username)
	s.con.Println("Logging out...")
	s.account = nil
	s.state = StateUnauthenticated
	return nil
}
