package dashboard

import (
	"errors"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/rms/internal/domain"
	"github.com/vladislavdragonenkov/rms/internal/query"
)

// ListMenu возвращает отфильтрованное меню и размеры всего меню.
func (s *Service) ListMenu(q string) ([]domain.MenuCategory, query.MenuStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	categories, err := s.store.Menu.Categories()
	if err != nil {
		return nil, query.MenuStats{}, err
	}
	return query.FilterMenu(categories, q), query.SummarizeMenu(categories), nil
}

// AddMenuCategory добавляет пустую категорию с уникальным именем.
func (s *Service) AddMenuCategory(name string) (category domain.MenuCategory, notification domain.Notification, err error) {
	start := time.Now()
	defer func() { s.observe("add_menu_category", start, resultOf(Outcome{Applied: err == nil}, err)) }()

	name = strings.TrimSpace(name)
	if name == "" {
		return domain.MenuCategory{}, domain.Notification{}, validationError(domain.ErrNameRequired)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	category = domain.MenuCategory{ID: s.newID(), Name: name}
	if err := s.store.Menu.AddCategory(category); err != nil {
		if errors.Is(err, domain.ErrCategoryNameTaken) {
			return domain.MenuCategory{}, domain.Notification{}, validationError(err)
		}
		return domain.MenuCategory{}, domain.Notification{}, err
	}
	s.refreshMenu()

	notification, err = s.notify(domain.NotificationMenuCategoryAdded, domain.EntityMenu, category.ID,
		fmt.Sprintf("Category %s has been added", category.Name))
	return category, notification, err
}

// AddMenuItem валидирует форму и добавляет позицию в конец выбранной категории.
func (s *Service) AddMenuItem(req domain.NewMenuItemRequest) (item domain.MenuItem, notification domain.Notification, err error) {
	start := time.Now()
	defer func() { s.observe("add_menu_item", start, resultOf(Outcome{Applied: err == nil}, err)) }()

	item, err = req.Parse()
	if err != nil {
		return domain.MenuItem{}, domain.Notification{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureCategory(item.CategoryID); err != nil {
		return domain.MenuItem{}, domain.Notification{}, err
	}

	item.ID = s.newID()
	if err := s.store.Menu.AddItem(item); err != nil {
		s.logger.WithError(err).WithField("category_id", item.CategoryID).Error("add menu item failed")
		return domain.MenuItem{}, domain.Notification{}, err
	}
	s.refreshMenu()

	s.logger.WithFields(log.Fields{
		"item_id":     item.ID,
		"category_id": item.CategoryID,
		"price":       item.Price.StringFixed(2),
	}).Info("menu item added")

	notification, err = s.notify(domain.NotificationMenuItemAdded, domain.EntityMenu, item.ID,
		fmt.Sprintf("%s has been added to the menu", item.Name))
	return item, notification, err
}

// UpdateMenuItem заменяет позицию на месте. Смена CategoryID переносит позицию.
// Пустой CategoryID оставляет позицию в текущей категории.
// Неизвестный ID позиции — тихий no-op; неизвестная категория — ошибка валидации.
func (s *Service) UpdateMenuItem(item domain.MenuItem) (outcome Outcome, err error) {
	start := time.Now()
	defer func() { s.observe("update_menu_item", start, resultOf(outcome, err)) }()

	item.Name = strings.TrimSpace(item.Name)
	item.Description = strings.TrimSpace(item.Description)
	item.CategoryID = strings.TrimSpace(item.CategoryID)

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.store.Menu.Item(item.ID)
	if errors.Is(err, domain.ErrMenuItemNotFound) {
		return Outcome{}, nil
	}
	if err != nil {
		return Outcome{}, err
	}
	if item.CategoryID == "" {
		item.CategoryID = current.CategoryID
	}
	if err := item.Validate(); err != nil {
		return Outcome{}, err
	}
	if current.CategoryID != item.CategoryID {
		if err := s.ensureCategory(item.CategoryID); err != nil {
			return Outcome{}, err
		}
	}

	if err := s.store.Menu.ReplaceItem(item); err != nil {
		return Outcome{}, err
	}

	return s.applied(domain.NotificationMenuItemUpdated, domain.EntityMenu, item.ID,
		fmt.Sprintf("%s has been updated", item.Name))
}

// DeleteMenuItem удаляет позицию из категории; пустой categoryID ищет во всём меню.
func (s *Service) DeleteMenuItem(id, categoryID string) (outcome Outcome, err error) {
	start := time.Now()
	defer func() { s.observe("delete_menu_item", start, resultOf(outcome, err)) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed, err := s.store.Menu.DeleteItem(id, categoryID)
	if errors.Is(err, domain.ErrMenuItemNotFound) {
		return Outcome{}, nil
	}
	if err != nil {
		return Outcome{}, err
	}
	s.refreshMenu()

	return s.applied(domain.NotificationMenuItemDeleted, domain.EntityMenu, id,
		fmt.Sprintf("%s has been removed from the menu", removed.Name))
}

func (s *Service) ensureCategory(id string) error {
	_, err := s.store.Menu.Category(id)
	if errors.Is(err, domain.ErrMenuCategoryNotFound) {
		return validationError(fmt.Errorf("%w: %q", domain.ErrCategoryUnknown, id))
	}
	return err
}

func (s *Service) refreshMenu() {
	categories, err := s.store.Menu.Categories()
	if err != nil {
		return
	}
	stats := query.SummarizeMenu(categories)
	s.setEntities("menu_categories", stats.Categories)
	s.setEntities("menu_items", stats.Items)
}
