package session

// Action is one entry of a role menu.
type Action int

const (
	UnknownAction Action = iota

	SignUp
	Login
	AdminLogin

	OrderFood
	ViewCart
	Checkout

	AddItem
	ViewMenu
	ChooseDeliveryPerson
	ViewOrders

	ToggleStatus
	CompleteDelivery
	AcceptOrder

	ViewAllUsers
	DeleteAccount
	Logout

	Exit
)

func getActionStrings() map[Action]string {
	return map[Action]string{
		UnknownAction:        "Unknown",
		SignUp:               "Sign Up",
		Login:                "Login",
		AdminLogin:           "Admin Login",
		OrderFood:            "Order Food",
		ViewCart:             "View Cart",
		Checkout:             "Checkout",
		AddItem:              "Add Item",
		ViewMenu:             "View Menu",
		ChooseDeliveryPerson: "Choose Delivery Person",
		ViewOrders:           "View Orders",
		ToggleStatus:         "Set Online/Offline",
		CompleteDelivery:     "Mark Delivery Completed",
		AcceptOrder:          "Accept Order",
		ViewAllUsers:         "View All Users",
		DeleteAccount:        "Delete Account",
		Logout:               "Logout",
		Exit:                 "Exit",
	}
}

// String is the label shown in the numbered menu.
func (a Action) String() string {
	if str, ok := getActionStrings()[a]; ok {
		return str
	}
	return "Unknown"
}

// menus lists each state's actions in display order.
func menus() map[State][]Action {
	return map[State][]Action{
		Unauthenticated: {SignUp, Login, AdminLogin, Exit},
		CustomerSession: {OrderFood, ViewCart, Checkout, Exit},
		MerchantSession: {AddItem, ViewMenu, ChooseDeliveryPerson, ViewOrders, Exit},
		DeliverySession: {ToggleStatus, CompleteDelivery, AcceptOrder, Exit},
		AdminSession:    {ViewAllUsers, DeleteAccount, Logout},
	}
}
