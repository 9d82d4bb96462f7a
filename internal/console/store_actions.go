package console

import (
	"context"
	"errors"

	"github.com/mmeshcher/gamestore/internal/model"
	"github.com/mmeshcher/gamestore/internal/repository"
	"github.com/mmeshcher/gamestore/internal/service"
)

func (s *Session) storeStep(ctx context.Context) error {
	n, err := s.con.Choose(ctx, storeMenu)
	if err != nil {
		return err
	}

	switch StoreAction(n) {
	case StoreRegister:
		return s.register(ctx)
	case StoreLogin:
		return s.login(ctx)
	case StoreExit:
		s.exit()
	}
	return nil
}

func (s *Session) register(ctx context.Context) error {
	fields := []string{"User ID: ", "First Name: ", "Last Name: ", "Username: ", "Password: "}
	values := make([]string, len(fields))
	for i, label := range fields {
		v, err := s.con.Prompt(ctx, label)
		if err != nil {
			return err
		}
		values[i] = v
	}

	isAdmin, err := s.con.Confirm(ctx, "Is the user an admin?")
	if err != nil {
		return err
	}
	role := model.RoleUser
	if isAdmin {
		role = model.RoleAdmin
	}

	a, err := s.svc.CreateAccount(values[0], values[1], values[2], values[3], values[4], role)
	if err != nil {
		if errors.Is(err, repository.ErrAccountExists) {
			s.con.Printf("User ID %s already exists.\n", values[0])
			return nil
		}
		s.report(err)
		return nil
	}

	s.con.Printf("Account Created! ID: %s, Name: %s\n", a.ID, a.FullName())
	return nil
}

func (s *Session) login(ctx context.Context) error {
	username, err := s.con.Prompt(ctx, "Username: ")
	if err != nil {
		return err
	}
	password, err := s.con.Prompt(ctx, "Password: ")
	if err != nil {
		return err
	}

	a, err := s.svc.Login(username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			s.con.Println("Invalid username or password.")
			return nil
		}
		s.report(err)
		return nil
	}

	s.con.Printf("Welcome %s!\n", a.FirstName)
	s.enter(a)
	return nil
}
