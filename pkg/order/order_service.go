package order

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"Savora-Backend/domain"
	"Savora-Backend/entities"
	"Savora-Backend/internal/events"
	"Savora-Backend/pkg/cart"
	"Savora-Backend/pkg/user"
	"Savora-Backend/pkg/wallet"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Mailer delivers the order receipt; a send failure never fails the order.
type Mailer interface {
	SendMail(toEmail string, subject string, body string) error
}

type (
	OrderService interface {
		Checkout(ctx context.Context, req domain.CheckoutRequest, userID string) (domain.CheckoutResponse, error)
		GetOrder(ctx context.Context, orderID string, userID string) (domain.OrderResponse, error)
		ListOrders(ctx context.Context, userID string) ([]domain.OrderResponse, error)
		UpdateOrderStatus(ctx context.Context, orderID string, req domain.UpdateOrderStatusRequest, userID string) error
		PickupQR(ctx context.Context, orderID string, userID string) ([]byte, error)
	}

	orderService struct {
		orderRepository  OrderRepository
		cartRepository   cart.CartRepository
		walletRepository wallet.WalletRepository
		userRepository   user.UserRepository
		publisher        events.Publisher
		mailer           Mailer
		qr               QRGenerator
		now              func() time.Time
	}
)

func NewOrderService(
	orderRepository OrderRepository,
	cartRepository cart.CartRepository,
	walletRepository wallet.WalletRepository,
	userRepository user.UserRepository,
	publisher events.Publisher,
	mailer Mailer,
	qr QRGenerator,
) OrderService {
	return &orderService{
		orderRepository:  orderRepository,
		cartRepository:   cartRepository,
		walletRepository: walletRepository,
		userRepository:   userRepository,
		publisher:        publisher,
		mailer:           mailer,
		qr:               qr,
		now:              time.Now,
	}
}

// Checkout converts the live cart into an immutable order. The item
// snapshot, the wallet debit and the cart clear commit together or not at
// all; a cart mutated underneath the request fails with ErrCartConflict.
func (s *orderService) Checkout(ctx context.Context, req domain.CheckoutRequest, userID string) (domain.CheckoutResponse, error) {
	userCart, err := s.cartRepository.GetCart(ctx, userID, req.RestaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CheckoutResponse{}, domain.ErrEmptyCart
		}
		return domain.CheckoutResponse{}, err
	}
	if len(userCart.Lines) == 0 {
		return domain.CheckoutResponse{}, domain.ErrEmptyCart
	}

	total := 0.0
	for _, line := range userCart.Lines {
		total += float64(line.Quantity) * line.PriceAtPurchase
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.CheckoutResponse{}, domain.ErrParseUUID
	}

	orderID := uuid.New()

	var walletTx *entities.WalletTransaction
	switch req.PaymentMethod {
	case domain.PaymentMethodWallet:
		balance, err := s.walletRepository.GetBalance(ctx, userID)
		if err != nil {
			return domain.CheckoutResponse{}, err
		}
		if total > balance {
			return domain.CheckoutResponse{}, domain.ErrInsufficientFunds
		}
		walletTx = &entities.WalletTransaction{
			ID:          uuid.New(),
			UserID:      userUUID,
			Amount:      -total,
			Type:        domain.WalletTransactionOrderPayment,
			Description: fmt.Sprintf("Paid %.2f for order %s", total, orderID.String()),
			Balance:     balance - total,
			OrderID:     &orderID,
		}
	case domain.PaymentMethodVoucher:
		if req.VoucherCode == "" {
			return domain.CheckoutResponse{}, domain.ErrVoucherRequired
		}
	default:
		return domain.CheckoutResponse{}, domain.ErrInvalidPaymentMethod
	}

	items := make([]*entities.OrderItem, 0, len(userCart.Lines))
	for _, line := range userCart.Lines {
		items = append(items, &entities.OrderItem{
			ID:              uuid.New(),
			OrderID:         orderID,
			ProductID:       line.ProductID,
			Name:            line.Name,
			Quantity:        line.Quantity,
			PriceAtPurchase: line.PriceAtPurchase,
			ImageURL:        line.ImageURL,
		})
	}

	order := &entities.Order{
		ID:            orderID,
		UserID:        userUUID,
		RestaurantID:  userCart.RestaurantID,
		Status:        domain.OrderStatusOngoing,
		TotalAmount:   total,
		PaymentMethod: req.PaymentMethod,
		VoucherCode:   req.VoucherCode,
		Items:         items,
	}

	if err := s.orderRepository.PerformCheckout(ctx, order, walletTx, userCart.ID.String(), userCart.Version); err != nil {
		return domain.CheckoutResponse{}, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, events.Event{
			Type:         events.TypeOrderCreated,
			UserID:       userID,
			RestaurantID: userCart.RestaurantID.String(),
			EntityID:     orderID.String(),
		})
	}
	s.sendReceipt(ctx, userID, order)

	return domain.CheckoutResponse{
		OrderID:     orderID.String(),
		Status:      order.Status,
		TotalAmount: roundTo2(total),
	}, nil
}

func (s *orderService) GetOrder(ctx context.Context, orderID string, userID string) (domain.OrderResponse, error) {
	order, err := s.getOwnedOrder(ctx, orderID, userID)
	if err != nil {
		return domain.OrderResponse{}, err
	}
	return toOrderResponse(order), nil
}

func (s *orderService) ListOrders(ctx context.Context, userID string) ([]domain.OrderResponse, error) {
	orders, err := s.orderRepository.ListOrders(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.OrderResponse, 0, len(orders))
	for _, order := range orders {
		result = append(result, toOrderResponse(order))
	}
	return result, nil
}

// UpdateOrderStatus only moves orders forward: ongoing to collected or
// cancelled. Orders never leave a terminal status and are never deleted.
func (s *orderService) UpdateOrderStatus(ctx context.Context, orderID string, req domain.UpdateOrderStatusRequest, userID string) error {
	order, err := s.getOwnedOrder(ctx, orderID, userID)
	if err != nil {
		return err
	}

	if order.Status != domain.OrderStatusOngoing {
		return domain.ErrInvalidStatusTransition
	}
	if req.Status != domain.OrderStatusCollected && req.Status != domain.OrderStatusCancelled {
		return domain.ErrInvalidStatusTransition
	}

	order.Status = req.Status
	if req.Status == domain.OrderStatusCollected {
		completedAt := s.now()
		order.CompletedAt = &completedAt
	}

	return s.orderRepository.UpdateOrderStatus(ctx, order)
}

func (s *orderService) PickupQR(ctx context.Context, orderID string, userID string) ([]byte, error) {
	order, err := s.getOwnedOrder(ctx, orderID, userID)
	if err != nil {
		return nil, err
	}
	return s.qr.Generate(order.ID.String())
}

func (s *orderService) getOwnedOrder(ctx context.Context, orderID string, userID string) (*entities.Order, error) {
	order, err := s.orderRepository.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	if order.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedOrderAccess
	}
	return order, nil
}

func (s *orderService) sendReceipt(ctx context.Context, userID string, order *entities.Order) {
	if s.mailer == nil || s.userRepository == nil {
		return
	}
	u, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return
	}
	subject := fmt.Sprintf("Order %s confirmed", order.ID.String())
	body := fmt.Sprintf(
		"<p>Your order has been placed. Total: %.2f, paid with %s.</p>",
		roundTo2(order.TotalAmount),
		order.PaymentMethod,
	)
	_ = s.mailer.SendMail(u.Email, subject, body)
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}

func toOrderResponse(order *entities.Order) domain.OrderResponse {
	items := make([]domain.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, domain.OrderItemResponse{
			ProductID:       item.ProductID.String(),
			Name:            item.Name,
			Quantity:        item.Quantity,
			PriceAtPurchase: item.PriceAtPurchase,
			ImageURL:        item.ImageURL,
		})
	}
	return domain.OrderResponse{
		ID:            order.ID.String(),
		RestaurantID:  order.RestaurantID.String(),
		Status:        order.Status,
		TotalAmount:   roundTo2(order.TotalAmount),
		PaymentMethod: order.PaymentMethod,
		Items:         items,
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
		CompletedAt:   order.CompletedAt,
	}
}
