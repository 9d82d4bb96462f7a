// Package seed загружает стартовые учётные записи и каталог из YAML-документа.
package seed

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/mmeshcher/gamestore/internal/model"
)

//go:embed demo.yaml
var demo []byte

// ErrNoAdmin возвращается, если документ содержит игры, но в нём нет администратора, от имени которого их добавить.
var ErrNoAdmin = errors.New("seed games require an admin account")

// Account описывает стартовую учётную запись.
type Account struct {
	ID        string `yaml:"id"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Username  string `yaml:"username"`
	Password  string `yaml:"password"`
	Admin     bool   `yaml:"admin"`
	Balance   string `yaml:"balance"`
}

// Game описывает стартовую позицию каталога.
type Game struct {
	Title string `yaml:"title"`
	Price string `yaml:"price"`
	Stock int    `yaml:"stock"`
}

// Data содержит разобранный документ.
type Data struct {
	Accounts []Account `yaml:"accounts"`
	Games    []Game    `yaml:"games"`
}

// Store описывает операции магазина, которыми пользуется наполнение.
type Store interface {
	CreateAccount(id, firstName, lastName, username, password string, role model.Role) (*model.Account, error)
	Deposit(a *model.Account, amount decimal.Decimal) error
	AddGame(actor *model.Account, title string, price decimal.Decimal, stock int) (*model.Game, error)
}

// Demo возвращает встроенный демонстрационный набор.
func Demo() (*Data, error) {
	return Parse(demo)
}

// Load читает документ из файла. Пустой путь означает встроенный набор.
func Load(path string) (*Data, error) {
	if path == "" {
		return Demo()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(raw)
}

// Parse разбирает YAML-документ.
func Parse(raw []byte) (*Data, error) {
	var d Data
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	return &d, nil
}

// Apply создаёт учётные записи, пополняет их балансы и добавляет игры от имени первого администратора.
func Apply(store Store, d *Data) error {
	var admin *model.Account

	for _, sa := range d.Accounts {
		role := model.RoleUser
		if sa.Admin {
			role = model.RoleAdmin
		}

		a, err := store.CreateAccount(sa.ID, sa.FirstName, sa.LastName, sa.Username, sa.Password, role)
		if err != nil {
			return fmt.Errorf("seed account %s: %w", sa.ID, err)
		}

		if sa.Balance != "" {
			balance, err := decimal.NewFromString(sa.Balance)
			if err != nil {
				return fmt.Errorf("seed account %s balance: %w", sa.ID, err)
			}
			if balance.IsPositive() {
				if err := store.Deposit(a, balance); err != nil {
					return fmt.Errorf("seed account %s balance: %w", sa.ID, err)
				}
			}
		}

		if admin == nil && a.IsAdmin() {
			admin = a
		}
	}

	if len(d.Games) > 0 && admin == nil {
		return ErrNoAdmin
	}

	for _, sg := range d.Games {
		price, err := decimal.NewFromString(sg.Price)
		if err != nil {
			return fmt.Errorf("seed game %q price: %w", sg.Title, err)
		}
		if _, err := store.AddGame(admin, sg.Title, price, sg.Stock); err != nil {
			return fmt.Errorf("seed game %q: %w", sg.Title, err)
		}
	}

	return nil
}
