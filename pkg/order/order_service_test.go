package order

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

type fakeOrderRepo struct {
	orders map[string]*entities.Order
	wallet *fakeWalletRepo
	carts  *fakeCartStore
}

func (f *fakeOrderRepo) PerformCheckout(_ context.Context, order *entities.Order, walletTx *entities.WalletTransaction, cartID string, cartVersion int) error {
	stored := f.carts.byID(cartID)
	if stored == nil || stored.Version != cartVersion {
		return domain.ErrCartConflict
	}

	f.orders[order.ID.String()] = order
	if walletTx != nil {
		f.wallet.ledger = append(f.wallet.ledger, walletTx)
	}
	stored.Lines = nil
	stored.Version = cartVersion + 1
	return nil
}

func (f *fakeOrderRepo) GetOrderByID(_ context.Context, id string) (*entities.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return order, nil
}

func (f *fakeOrderRepo) ListOrders(_ context.Context, userID string) ([]*entities.Order, error) {
	var out []*entities.Order
	for _, order := range f.orders {
		if order.UserID.String() == userID {
			out = append(out, order)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) UpdateOrderStatus(_ context.Context, order *entities.Order) error {
	f.orders[order.ID.String()] = order
	return nil
}

type fakeCartStore struct {
	carts map[string]*entities.Cart
}

func (f *fakeCartStore) byID(cartID string) *entities.Cart {
	for _, c := range f.carts {
		if c.ID.String() == cartID {
			return c
		}
	}
	return nil
}

func (f *fakeCartStore) GetCart(_ context.Context, userID, restaurantID string) (*entities.Cart, error) {
	c, ok := f.carts[userID+"/"+restaurantID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (f *fakeCartStore) CreateCart(_ context.Context, c *entities.Cart) error {
	f.carts[c.UserID.String()+"/"+c.RestaurantID.String()] = c
	return nil
}

func (f *fakeCartStore) SaveCart(context.Context, *entities.Cart, int) error { return nil }
func (f *fakeCartStore) ClearCart(context.Context, string, int) error        { return nil }

type fakeWalletRepo struct {
	ledger []*entities.WalletTransaction
}

func (f *fakeWalletRepo) GetBalance(context.Context, string) (float64, error) {
	if len(f.ledger) == 0 {
		return 0, nil
	}
	return f.ledger[len(f.ledger)-1].Balance, nil
}

func (f *fakeWalletRepo) CreateTransaction(_ context.Context, tx *entities.WalletTransaction) error {
	f.ledger = append(f.ledger, tx)
	return nil
}

func (f *fakeWalletRepo) GetTransactions(context.Context, string, int, int) ([]*entities.WalletTransaction, int64, error) {
	return f.ledger, int64(len(f.ledger)), nil
}

type stubQR struct{}

func (stubQR) Generate(string) ([]byte, error) { return []byte("png"), nil }

type checkoutFixture struct {
	svc          *orderService
	orders       *fakeOrderRepo
	carts        *fakeCartStore
	wallet       *fakeWalletRepo
	userID       string
	restaurantID string
	cart         *entities.Cart
}

func newCheckoutFixture(t *testing.T, balance float64) *checkoutFixture {
	t.Helper()
	userID := uuid.New()
	restaurantID := uuid.New()

	cart := &entities.Cart{
		ID:           uuid.New(),
		UserID:       userID,
		RestaurantID: restaurantID,
		Version:      2,
		Lines: []*entities.CartLine{
			{ID: uuid.New(), ProductID: uuid.New(), Name: "Sate Ayam", Quantity: 2, PriceAtPurchase: 15000},
			{ID: uuid.New(), ProductID: uuid.New(), Name: "Es Teh", Quantity: 1, PriceAtPurchase: 5000},
		},
	}
	carts := &fakeCartStore{carts: map[string]*entities.Cart{
		userID.String() + "/" + restaurantID.String(): cart,
	}}

	wallet := &fakeWalletRepo{}
	if balance > 0 {
		wallet.ledger = append(wallet.ledger, &entities.WalletTransaction{
			UserID:  userID,
			Amount:  balance,
			Type:    domain.WalletTransactionTopUp,
			Balance: balance,
		})
	}

	orders := &fakeOrderRepo{orders: map[string]*entities.Order{}, wallet: wallet, carts: carts}
	svc := &orderService{
		orderRepository:  orders,
		cartRepository:   carts,
		walletRepository: wallet,
		qr:               stubQR{},
		now:              func() time.Time { return time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local) },
	}
	return &checkoutFixture{
		svc:          svc,
		orders:       orders,
		carts:        carts,
		wallet:       wallet,
		userID:       userID.String(),
		restaurantID: restaurantID.String(),
		cart:         cart,
	}
}

func TestCheckout_WalletDebitAndCartClear(t *testing.T) {
	f := newCheckoutFixture(t, 100000)
	ctx := context.Background()

	resp, err := f.svc.Checkout(ctx, domain.CheckoutRequest{
		RestaurantID:  f.restaurantID,
		PaymentMethod: domain.PaymentMethodWallet,
	}, f.userID)
	require.NoError(t, err)

	assert.Equal(t, domain.OrderStatusOngoing, resp.Status)
	assert.Equal(t, 35000.0, resp.TotalAmount)

	// Wallet: the debit row carries the post-transaction balance.
	require.Len(t, f.wallet.ledger, 2)
	debit := f.wallet.ledger[1]
	assert.Equal(t, -35000.0, debit.Amount)
	assert.Equal(t, 65000.0, debit.Balance)
	assert.Equal(t, domain.WalletTransactionOrderPayment, debit.Type)
	require.NotNil(t, debit.OrderID)
	assert.Equal(t, resp.OrderID, debit.OrderID.String())

	// Cart: cleared and version bumped within the same step.
	assert.Empty(t, f.cart.Lines)
	assert.Equal(t, 3, f.cart.Version)

	// Order: a frozen two-line snapshot.
	order := f.orders.orders[resp.OrderID]
	require.NotNil(t, order)
	assert.Len(t, order.Items, 2)
}

func TestCheckout_InsufficientFunds(t *testing.T) {
	f := newCheckoutFixture(t, 10000)

	_, err := f.svc.Checkout(context.Background(), domain.CheckoutRequest{
		RestaurantID:  f.restaurantID,
		PaymentMethod: domain.PaymentMethodWallet,
	}, f.userID)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	// Nothing committed: no order, no debit, cart untouched.
	assert.Empty(t, f.orders.orders)
	assert.Len(t, f.wallet.ledger, 1)
	assert.Len(t, f.cart.Lines, 2)
}

func TestCheckout_EmptyCart(t *testing.T) {
	f := newCheckoutFixture(t, 100000)
	f.cart.Lines = nil

	_, err := f.svc.Checkout(context.Background(), domain.CheckoutRequest{
		RestaurantID:  f.restaurantID,
		PaymentMethod: domain.PaymentMethodWallet,
	}, f.userID)
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestCheckout_VoucherRequiresCode(t *testing.T) {
	f := newCheckoutFixture(t, 0)

	_, err := f.svc.Checkout(context.Background(), domain.CheckoutRequest{
		RestaurantID:  f.restaurantID,
		PaymentMethod: domain.PaymentMethodVoucher,
	}, f.userID)
	assert.ErrorIs(t, err, domain.ErrVoucherRequired)

	resp, err := f.svc.Checkout(context.Background(), domain.CheckoutRequest{
		RestaurantID:  f.restaurantID,
		PaymentMethod: domain.PaymentMethodVoucher,
		VoucherCode:   "SAVORA10",
	}, f.userID)
	require.NoError(t, err)
	assert.Empty(t, f.wallet.ledger)
	assert.Equal(t, 35000.0, resp.TotalAmount)
}

func TestCheckout_SnapshotImmuneToLaterCartMutation(t *testing.T) {
	f := newCheckoutFixture(t, 100000)

	resp, err := f.svc.Checkout(context.Background(), domain.CheckoutRequest{
		RestaurantID:  f.restaurantID,
		PaymentMethod: domain.PaymentMethodWallet,
	}, f.userID)
	require.NoError(t, err)

	// Refill the cart after checkout; the order keeps its snapshot.
	f.cart.Lines = []*entities.CartLine{
		{ID: uuid.New(), ProductID: uuid.New(), Name: "Bakso", Quantity: 9, PriceAtPurchase: 1},
	}

	order := f.orders.orders[resp.OrderID]
	require.Len(t, order.Items, 2)
	assert.Equal(t, "Sate Ayam", order.Items[0].Name)
	assert.Equal(t, 15000.0, order.Items[0].PriceAtPurchase)
}

func TestUpdateOrderStatus(t *testing.T) {
	f := newCheckoutFixture(t, 100000)
	ctx := context.Background()

	resp, err := f.svc.Checkout(ctx, domain.CheckoutRequest{
		RestaurantID:  f.restaurantID,
		PaymentMethod: domain.PaymentMethodWallet,
	}, f.userID)
	require.NoError(t, err)

	t.Run("ongoing to collected stamps completion", func(t *testing.T) {
		err := f.svc.UpdateOrderStatus(ctx, resp.OrderID, domain.UpdateOrderStatusRequest{
			Status: domain.OrderStatusCollected,
		}, f.userID)
		require.NoError(t, err)

		order := f.orders.orders[resp.OrderID]
		assert.Equal(t, domain.OrderStatusCollected, order.Status)
		require.NotNil(t, order.CompletedAt)
	})

	t.Run("terminal status never moves again", func(t *testing.T) {
		err := f.svc.UpdateOrderStatus(ctx, resp.OrderID, domain.UpdateOrderStatusRequest{
			Status: domain.OrderStatusCancelled,
		}, f.userID)
		assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)
	})

	t.Run("other users cannot touch the order", func(t *testing.T) {
		err := f.svc.UpdateOrderStatus(ctx, resp.OrderID, domain.UpdateOrderStatusRequest{
			Status: domain.OrderStatusCollected,
		}, uuid.New().String())
		assert.ErrorIs(t, err, domain.ErrUnauthorizedOrderAccess)
	})
}

func TestPickupQR(t *testing.T) {
	f := newCheckoutFixture(t, 100000)
	ctx := context.Background()

	resp, err := f.svc.Checkout(ctx, domain.CheckoutRequest{
		RestaurantID:  f.restaurantID,
		PaymentMethod: domain.PaymentMethodWallet,
	}, f.userID)
	require.NoError(t, err)

	png, err := f.svc.PickupQR(ctx, resp.OrderID, f.userID)
	require.NoError(t, err)
	assert.NotEmpty(t, png)

	_, err = f.svc.PickupQR(ctx, uuid.New().String(), f.userID)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}
