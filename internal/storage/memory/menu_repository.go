package memory

import (
	"sync"

	"github.com/vladislavdragonenkov/rms/internal/domain"
)

// menuRepositoryInMemory хранит категории в порядке добавления, позиции внутри категорий.
type menuRepositoryInMemory struct {
	mu         sync.RWMutex
	categories []domain.MenuCategory
}

// NewMenuRepository создаёт пустое меню.
func NewMenuRepository() domain.MenuRepository {
	return &menuRepositoryInMemory{}
}

func (r *menuRepositoryInMemory) Categories() ([]domain.MenuCategory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.MenuCategory, len(r.categories))
	for i, c := range r.categories {
		result[i] = c.Clone()
	}
	return result, nil
}

func (r *menuRepositoryInMemory) Category(id string) (domain.MenuCategory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pos := r.categoryIndex(id)
	if pos < 0 {
		return domain.MenuCategory{}, domain.ErrMenuCategoryNotFound
	}
	return r.categories[pos].Clone(), nil
}

// AddCategory добавляет категорию; ID и имя (без учёта регистра) должны быть уникальны.
func (r *menuRepositoryInMemory) AddCategory(category domain.MenuCategory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.categories {
		if existing.ID == category.ID {
			return domain.ErrAlreadyExists
		}
		if domain.SameName(existing.Name, category.Name) {
			return domain.ErrCategoryNameTaken
		}
	}
	r.categories = append(r.categories, category.Clone())
	return nil
}

func (r *menuRepositoryInMemory) Item(id string) (domain.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ci, ii := r.itemIndex(id, "")
	if ci < 0 {
		return domain.MenuItem{}, domain.ErrMenuItemNotFound
	}
	return r.categories[ci].Items[ii], nil
}

func (r *menuRepositoryInMemory) AddItem(item domain.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ci, _ := r.itemIndex(item.ID, ""); ci >= 0 {
		return domain.ErrAlreadyExists
	}
	pos := r.categoryIndex(item.CategoryID)
	if pos < 0 {
		return domain.ErrMenuCategoryNotFound
	}
	r.categories[pos].Items = append(r.categories[pos].Items, item)
	return nil
}

func (r *menuRepositoryInMemory) ReplaceItem(item domain.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ci, ii := r.itemIndex(item.ID, "")
	if ci < 0 {
		return domain.ErrMenuItemNotFound
	}
	if r.categories[ci].ID == item.CategoryID {
		r.categories[ci].Items[ii] = item
		return nil
	}

	target := r.categoryIndex(item.CategoryID)
	if target < 0 {
		return domain.ErrMenuCategoryNotFound
	}
	r.categories[ci].Items = removeItem(r.categories[ci].Items, ii)
	r.categories[target].Items = append(r.categories[target].Items, item)
	return nil
}

func (r *menuRepositoryInMemory) DeleteItem(itemID, categoryID string) (domain.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ci, ii := r.itemIndex(itemID, categoryID)
	if ci < 0 {
		return domain.MenuItem{}, domain.ErrMenuItemNotFound
	}
	removed := r.categories[ci].Items[ii]
	r.categories[ci].Items = removeItem(r.categories[ci].Items, ii)
	return removed, nil
}

func (r *menuRepositoryInMemory) categoryIndex(id string) int {
	for i, c := range r.categories {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// itemIndex ищет позицию в категории categoryID или во всех категориях, если он пуст.
func (r *menuRepositoryInMemory) itemIndex(itemID, categoryID string) (int, int) {
	for ci, c := range r.categories {
		if categoryID != "" && c.ID != categoryID {
			continue
		}
		for ii, item := range c.Items {
			if item.ID == itemID {
				return ci, ii
			}
		}
	}
	return -1, -1
}

func removeItem(items []domain.MenuItem, pos int) []domain.MenuItem {
	result := make([]domain.MenuItem, 0, len(items)-1)
	result = append(result, items[:pos]...)
	return append(result, items[pos+1:]...)
}

var _ domain.MenuRepository = (*menuRepositoryInMemory)(nil)
