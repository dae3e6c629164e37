package dashboard_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/rms/internal/domain"
)

func itemCounts(t *testing.T, categories []domain.MenuCategory) map[string]int {
	t.Helper()
	counts := make(map[string]int, len(categories))
	for _, c := range categories {
		counts[c.ID] = len(c.Items)
	}
	return counts
}

func TestListMenu_Salmon(t *testing.T) {
	svc, _ := newService(t)

	categories, stats, err := svc.ListMenu("salmon")
	require.NoError(t, err)
	require.Len(t, categories, 1)
	require.Equal(t, "Main Course", categories[0].Name)
	require.Len(t, categories[0].Items, 1)
	require.Equal(t, "Grilled Salmon", categories[0].Items[0].Name)
	require.Equal(t, 3, stats.Categories)
	require.Equal(t, 5, stats.Items)
}

func TestAddMenuItem_TouchesOnlyTargetCategory(t *testing.T) {
	svc, store := newService(t)

	before, _ := store.Menu.Categories()
	item, notification, err := svc.AddMenuItem(domain.NewMenuItemRequest{
		Name:        "Panna Cotta",
		Description: "Vanilla cream",
		Price:       "7.25",
		CategoryID:  "cat3",
	})
	require.NoError(t, err)
	require.Equal(t, "id-1", item.ID)
	require.Equal(t, domain.NotificationMenuItemAdded, notification.Kind)

	after, _ := store.Menu.Categories()
	want := itemCounts(t, before)
	want["cat3"]++
	require.Equal(t, want, itemCounts(t, after))
	require.Equal(t, before[0], after[0])
	require.Equal(t, before[1], after[1])
	require.Equal(t, "Panna Cotta", after[2].Items[len(after[2].Items)-1].Name)
}

func TestAddMenuItem_ValidationLeavesMenuUntouched(t *testing.T) {
	svc, store := newService(t)
	before, _ := store.Menu.Categories()

	cases := []struct {
		name string
		req  domain.NewMenuItemRequest
		want error
	}{
		{name: "empty name", req: domain.NewMenuItemRequest{Price: "5", CategoryID: "cat1"}, want: domain.ErrNameRequired},
		{name: "bad price", req: domain.NewMenuItemRequest{Name: "Soup", Price: "abc", CategoryID: "cat1"}, want: domain.ErrPriceInvalid},
		{name: "zero price", req: domain.NewMenuItemRequest{Name: "Soup", Price: "0", CategoryID: "cat1"}, want: domain.ErrPriceNotPositive},
		{name: "unknown category", req: domain.NewMenuItemRequest{Name: "Soup", Price: "5", CategoryID: "cat404"}, want: domain.ErrCategoryUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := svc.AddMenuItem(tc.req)
			require.True(t, domain.IsValidation(err), err)
			require.ErrorIs(t, err, tc.want)
		})
	}

	after, _ := store.Menu.Categories()
	require.Equal(t, before, after)
}

func TestAddMenuCategory(t *testing.T) {
	svc, _ := newService(t)

	category, _, err := svc.AddMenuCategory("  Drinks ")
	require.NoError(t, err)
	require.Equal(t, "Drinks", category.Name)

	_, _, err = svc.AddMenuCategory("drinks")
	require.True(t, domain.IsValidation(err))
	require.ErrorIs(t, err, domain.ErrCategoryNameTaken)

	_, _, err = svc.AddMenuCategory(" ")
	require.ErrorIs(t, err, domain.ErrNameRequired)

	categories, stats, err := svc.ListMenu("")
	require.NoError(t, err)
	require.Equal(t, 4, stats.Categories)
	require.Equal(t, "Drinks", categories[3].Name)
}

func TestUpdateMenuItem(t *testing.T) {
	svc, store := newService(t)

	item, err := store.Menu.Item("item4")
	require.NoError(t, err)
	item.Price = decimal.RequireFromString("19.99")

	outcome, err := svc.UpdateMenuItem(item)
	require.NoError(t, err)
	require.True(t, outcome.Applied)

	cat2, _ := store.Menu.Category("cat2")
	require.Equal(t, "item4", cat2.Items[1].ID)
	require.Equal(t, "19.99", cat2.Items[1].Price.StringFixed(2))
}

func TestUpdateMenuItem_BlankCategoryKeepsCurrent(t *testing.T) {
	svc, store := newService(t)

	item, err := store.Menu.Item("item3")
	require.NoError(t, err)
	item.CategoryID = " "
	item.Price = decimal.RequireFromString("21.50")

	outcome, err := svc.UpdateMenuItem(item)
	require.NoError(t, err)
	require.True(t, outcome.Applied)

	updated, err := store.Menu.Item("item3")
	require.NoError(t, err)
	require.Equal(t, "cat2", updated.CategoryID)
	require.Equal(t, "21.50", updated.Price.StringFixed(2))

	cat2, _ := store.Menu.Category("cat2")
	require.Equal(t, "item3", cat2.Items[0].ID)
}

func TestUpdateMenuItem_MovesCategory(t *testing.T) {
	svc, store := newService(t)

	item, _ := store.Menu.Item("item1")
	item.CategoryID = "cat3"
	_, err := svc.UpdateMenuItem(item)
	require.NoError(t, err)

	cat1, _ := store.Menu.Category("cat1")
	cat3, _ := store.Menu.Category("cat3")
	require.Len(t, cat1.Items, 1)
	require.Equal(t, "item1", cat3.Items[1].ID)
}

func TestUpdateMenuItem_Errors(t *testing.T) {
	svc, store := newService(t)

	item, _ := store.Menu.Item("item1")
	item.CategoryID = "cat404"
	_, err := svc.UpdateMenuItem(item)
	require.ErrorIs(t, err, domain.ErrCategoryUnknown)

	item.CategoryID = "cat1"
	item.Price = decimal.NewFromInt(-1)
	_, err = svc.UpdateMenuItem(item)
	require.ErrorIs(t, err, domain.ErrPriceNotPositive)

	ghost := domain.MenuItem{ID: "item404", Name: "Ghost", Price: decimal.NewFromInt(1), CategoryID: "cat1"}
	outcome, err := svc.UpdateMenuItem(ghost)
	require.NoError(t, err)
	require.False(t, outcome.Applied)
}

func TestDeleteMenuItem(t *testing.T) {
	svc, _ := newService(t)

	outcome, err := svc.DeleteMenuItem("item5", "cat1")
	require.NoError(t, err)
	require.False(t, outcome.Applied)

	outcome, err = svc.DeleteMenuItem("item5", "cat3")
	require.NoError(t, err)
	require.True(t, outcome.Applied)
	require.Contains(t, outcome.Notification.Message, "Tiramisu")

	_, stats, err := svc.ListMenu("")
	require.NoError(t, err)
	require.Equal(t, 4, stats.Items)
}
