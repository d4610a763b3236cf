package cart

import (
	"context"
	"testing"
	"time"

	"Savora-Backend/domain"
	"Savora-Backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeCartRepo struct {
	carts map[string]*entities.Cart // keyed by userID + "/" + restaurantID
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: map[string]*entities.Cart{}}
}

func cartKey(userID, restaurantID string) string {
	return userID + "/" + restaurantID
}

func (f *fakeCartRepo) GetCart(_ context.Context, userID, restaurantID string) (*entities.Cart, error) {
	c, ok := f.carts[cartKey(userID, restaurantID)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (f *fakeCartRepo) CreateCart(_ context.Context, c *entities.Cart) error {
	f.carts[cartKey(c.UserID.String(), c.RestaurantID.String())] = c
	return nil
}

func (f *fakeCartRepo) SaveCart(_ context.Context, c *entities.Cart, expectedVersion int) error {
	stored, ok := f.carts[cartKey(c.UserID.String(), c.RestaurantID.String())]
	if !ok || stored.Version != expectedVersion {
		return domain.ErrCartConflict
	}
	c.Version = expectedVersion + 1
	f.carts[cartKey(c.UserID.String(), c.RestaurantID.String())] = c
	return nil
}

func (f *fakeCartRepo) ClearCart(_ context.Context, cartID string, expectedVersion int) error {
	for _, c := range f.carts {
		if c.ID.String() == cartID {
			if c.Version != expectedVersion {
				return domain.ErrCartConflict
			}
			c.Lines = nil
			c.Version = expectedVersion + 1
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeMenuRepo struct {
	items map[string]*entities.MenuItem
}

func (f *fakeMenuRepo) GetRestaurants(context.Context) ([]*entities.Restaurant, error) {
	return nil, nil
}

func (f *fakeMenuRepo) GetRestaurantByID(context.Context, string) (*entities.Restaurant, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeMenuRepo) GetMenuItems(context.Context, string) ([]*entities.MenuItem, error) {
	return nil, nil
}

func (f *fakeMenuRepo) GetMenuItemByID(_ context.Context, id string) (*entities.MenuItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (f *fakeMenuRepo) CreateMenuItem(context.Context, *entities.MenuItem) error { return nil }
func (f *fakeMenuRepo) UpdateMenuItem(context.Context, *entities.MenuItem) error { return nil }

func (f *fakeMenuRepo) GetFullyBookedDates(context.Context, string) ([]time.Time, error) {
	return nil, nil
}

func (f *fakeMenuRepo) IsDateFullyBooked(context.Context, string, time.Time) (bool, error) {
	return false, nil
}

func (f *fakeMenuRepo) MarkDateFullyBooked(context.Context, *entities.FullyBookedDate) error {
	return nil
}

func (f *fakeMenuRepo) UnmarkDateFullyBooked(context.Context, string, time.Time) error {
	return nil
}

func newCartTestService() (*cartService, *fakeCartRepo, *entities.MenuItem, string, string) {
	item := &entities.MenuItem{
		ID:          uuid.New(),
		Name:        "Nasi Goreng",
		Price:       25000.50,
		IsAvailable: true,
	}
	menuRepo := &fakeMenuRepo{items: map[string]*entities.MenuItem{
		item.ID.String(): item,
	}}
	cartRepo := newFakeCartRepo()
	svc := &cartService{
		cartRepository:       cartRepo,
		restaurantRepository: menuRepo,
	}
	return svc, cartRepo, item, uuid.New().String(), uuid.New().String()
}

func TestAddItem_MergesOnRepeatedAdd(t *testing.T) {
	svc, _, item, userID, restaurantID := newCartTestService()
	ctx := context.Background()

	var resp domain.CartResponse
	var err error
	for i := 0; i < 3; i++ {
		resp, err = svc.AddItem(ctx, domain.AddCartItemRequest{
			RestaurantID: restaurantID,
			ProductID:    item.ID.String(),
			Version:      i,
		}, userID)
		require.NoError(t, err)
	}

	require.Len(t, resp.Lines, 1)
	assert.Equal(t, 3, resp.Lines[0].Quantity)
	assert.Equal(t, item.Price, resp.Lines[0].PriceAtPurchase)
	assert.InDelta(t, 3*item.Price, resp.Total, 0.005)
	assert.Equal(t, 3, resp.Version)
}

func TestAddItem_SnapshotsPriceAtAddTime(t *testing.T) {
	svc, repo, item, userID, restaurantID := newCartTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, domain.AddCartItemRequest{
		RestaurantID: restaurantID,
		ProductID:    item.ID.String(),
	}, userID)
	require.NoError(t, err)

	// A later menu price change never touches the stored snapshot.
	item.Price = 99999

	stored := repo.carts[cartKey(userID, restaurantID)]
	assert.Equal(t, 25000.50, stored.Lines[0].PriceAtPurchase)
}

func TestAddItem_RejectsUnavailableItem(t *testing.T) {
	svc, _, item, userID, restaurantID := newCartTestService()
	item.IsAvailable = false

	_, err := svc.AddItem(context.Background(), domain.AddCartItemRequest{
		RestaurantID: restaurantID,
		ProductID:    item.ID.String(),
	}, userID)
	assert.ErrorIs(t, err, domain.ErrMenuItemUnavailable)
}

func TestAddItem_StaleVersionConflicts(t *testing.T) {
	svc, _, item, userID, restaurantID := newCartTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, domain.AddCartItemRequest{
		RestaurantID: restaurantID,
		ProductID:    item.ID.String(),
		Version:      0,
	}, userID)
	require.NoError(t, err)

	// Replaying the original version must fail; the first write bumped it.
	_, err = svc.AddItem(ctx, domain.AddCartItemRequest{
		RestaurantID: restaurantID,
		ProductID:    item.ID.String(),
		Version:      0,
	}, userID)
	assert.ErrorIs(t, err, domain.ErrCartConflict)
}

func TestSetQuantity(t *testing.T) {
	svc, _, item, userID, restaurantID := newCartTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, domain.AddCartItemRequest{
		RestaurantID: restaurantID,
		ProductID:    item.ID.String(),
	}, userID)
	require.NoError(t, err)

	t.Run("updates the line", func(t *testing.T) {
		resp, err := svc.SetQuantity(ctx, domain.SetQuantityRequest{
			RestaurantID: restaurantID,
			ProductID:    item.ID.String(),
			Quantity:     5,
			Version:      1,
		}, userID)
		require.NoError(t, err)
		assert.Equal(t, 5, resp.Lines[0].Quantity)
		assert.InDelta(t, 5*item.Price, resp.Total, 0.005)
	})

	t.Run("rejects quantity below one", func(t *testing.T) {
		_, err := svc.SetQuantity(ctx, domain.SetQuantityRequest{
			RestaurantID: restaurantID,
			ProductID:    item.ID.String(),
			Quantity:     0,
			Version:      2,
		}, userID)
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	})

	t.Run("unknown line", func(t *testing.T) {
		_, err := svc.SetQuantity(ctx, domain.SetQuantityRequest{
			RestaurantID: restaurantID,
			ProductID:    uuid.New().String(),
			Quantity:     2,
			Version:      2,
		}, userID)
		assert.ErrorIs(t, err, domain.ErrCartLineNotFound)
	})
}

func TestRemoveItem(t *testing.T) {
	svc, _, item, userID, restaurantID := newCartTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, domain.AddCartItemRequest{
		RestaurantID: restaurantID,
		ProductID:    item.ID.String(),
	}, userID)
	require.NoError(t, err)

	resp, err := svc.RemoveItem(ctx, domain.RemoveCartItemRequest{
		RestaurantID: restaurantID,
		ProductID:    item.ID.String(),
		Version:      1,
	}, userID)
	require.NoError(t, err)
	assert.Empty(t, resp.Lines)
	assert.Zero(t, resp.Total)
}

func TestGetCart_MissingCartIsEmpty(t *testing.T) {
	svc, _, _, userID, restaurantID := newCartTestService()

	resp, err := svc.GetCart(context.Background(), userID, restaurantID)
	require.NoError(t, err)
	assert.Empty(t, resp.Lines)
	assert.Zero(t, resp.Total)
}

func TestSubscribe_ListenersSeeEveryMutation(t *testing.T) {
	svc, _, item, userID, restaurantID := newCartTestService()
	ctx := context.Background()

	var events []ChangedEvent
	svc.Subscribe(func(e ChangedEvent) { events = append(events, e) })

	_, err := svc.AddItem(ctx, domain.AddCartItemRequest{
		RestaurantID: restaurantID,
		ProductID:    item.ID.String(),
	}, userID)
	require.NoError(t, err)

	_, err = svc.SetQuantity(ctx, domain.SetQuantityRequest{
		RestaurantID: restaurantID,
		ProductID:    item.ID.String(),
		Quantity:     2,
		Version:      1,
	}, userID)
	require.NoError(t, err)

	require.Len(t, events, 2)
	assert.Equal(t, userID, events[0].UserID)
	assert.Equal(t, 1, events[0].ItemCount)
	assert.Equal(t, 2, events[1].ItemCount)
	assert.InDelta(t, 2*item.Price, events[1].Total, 0.005)
}
