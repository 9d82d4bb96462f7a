package console

type menu []string

// StoreAction перечисляет пункты меню для неавторизованного пользователя.
type StoreAction int

const (
	StoreRegister StoreAction = iota + 1
	StoreLogin
	StoreExit
)

var storeMenu = menu{"REGISTER", "LOGIN", "EXIT"}

// UserAction перечисляет пункты меню покупателя.
type UserAction int

const (
	UserViewStore UserAction = iota + 1
	UserBuyGame
	UserViewLibrary
	UserPurchaseHistory
	UserSendGift
	UserDeposit
	UserCheckBalance
	UserChangePassword
	UserDeleteAccount
	UserLogout
	UserExit
)

var userMenu = menu{
	"VIEW_STORE",
	"BUY_GAME",
	"VIEW_LIBRARY",
	"PURCHASE_HISTORY",
	"SEND_GIFT",
	"DEPOSIT",
	"CHECK_BALANCE",
	"CHANGE_PASSWORD",
	"DELETE_ACCOUNT",
	"USER_LOGOUT",
	"EXIT",
}

// AdminAction перечисляет пункты меню администратора.
type AdminAction int

const (
	AdminViewStore AdminAction = iota + 1
	AdminViewUsers
	AdminAddGame
	AdminRemoveGame
	AdminChangeStock
	AdminChangePrice
	AdminWithdrawFunds
	AdminLogout
	AdminExit
)

var adminMenu = menu{
	"VIEW_STORE",
	"VIEW_USERS",
	"ADD_GAME",
	"REMOVE_GAME",
	"CHANGE_STOCK",
	"CHANGE_PRICE",
	"WITHDRAW_FUNDS",
	"USER_LOGOUT",
	"EXIT",
}
