package domain

// ClientRepository описывает хранилище клиентов в порядке добавления.
type ClientRepository interface {
	// List возвращает копию всех клиентов в исходном порядке.
	List() ([]Client, error)
	// Get возвращает клиента или ErrClientNotFound.
	Get(id string) (Client, error)
	// Create добавляет клиента в конец коллекции; ErrAlreadyExists при повторе ID.
	Create(client Client) error
	// Delete удаляет клиента или возвращает ErrClientNotFound.
	Delete(id string) error
}

// OrderRepository описывает требования к хранилищу заказов.
type OrderRepository interface {
	List() ([]Order, error)
	// Get возвращает заказ по идентификатору или ErrOrderNotFound, если его нет.
	Get(id string) (Order, error)
	Create(order Order) error
	// Save применяет обновления к заказу с учётом optimistic locking.
	Save(order Order) error
}

// MenuRepository хранит упорядоченные категории вместе с позициями.
type MenuRepository interface {
	// Categories возвращает глубокую копию меню.
	Categories() ([]MenuCategory, error)
	// Category возвращает категорию или ErrMenuCategoryNotFound.
	Category(id string) (MenuCategory, error)
	// AddCategory добавляет категорию в конец меню.
	AddCategory(category MenuCategory) error
	// Item находит позицию в любой категории или возвращает ErrMenuItemNotFound.
	Item(id string) (MenuItem, error)
	// AddItem добавляет позицию в конец категории item.CategoryID.
	AddItem(item MenuItem) error
	// ReplaceItem заменяет позицию на месте; при смене CategoryID переносит её в конец новой категории.
	ReplaceItem(item MenuItem) error
	// DeleteItem удаляет позицию из категории; пустой categoryID означает поиск по всем категориям.
	DeleteItem(itemID, categoryID string) (MenuItem, error)
}

// UserRepository описывает хранилище пользователей админки.
type UserRepository interface {
	List() ([]User, error)
	Get(id string) (User, error)
	Create(user User) error
	Delete(id string) error
}

// RestaurantRepository хранит профиль ресторана, настройки и учётную запись оператора.
type RestaurantRepository interface {
	Profile() (RestaurantProfile, error)
	SaveProfile(profile RestaurantProfile) error
	Settings() (Settings, error)
	SaveSettings(settings Settings) error
	Account() (AccountProfile, error)
	SaveAccount(account AccountProfile) error
}
