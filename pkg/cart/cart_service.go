package cart

import (
	"context"
	"errors"
	"math"

	"Savora-Backend/domain"
	"Savora-Backend/entities"
	"Savora-Backend/internal/events"
	"Savora-Backend/pkg/restaurant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChangedEvent notifies observers (badge counters and the like) after every
// successful cart mutation.
type ChangedEvent struct {
	UserID       string
	RestaurantID string
	ItemCount    int
	Total        float64
}

type Listener func(ChangedEvent)

type (
	CartService interface {
		GetCart(ctx context.Context, userID, restaurantID string) (domain.CartResponse, error)
		AddItem(ctx context.Context, req domain.AddCartItemRequest, userID string) (domain.CartResponse, error)
		SetQuantity(ctx context.Context, req domain.SetQuantityRequest, userID string) (domain.CartResponse, error)
		RemoveItem(ctx context.Context, req domain.RemoveCartItemRequest, userID string) (domain.CartResponse, error)
		ClearCart(ctx context.Context, userID, restaurantID string, version int) (domain.CartResponse, error)
		Subscribe(listener Listener)
	}

	cartService struct {
		cartRepository       CartRepository
		restaurantRepository restaurant.RestaurantRepository
		publisher            events.Publisher
		listeners            []Listener
	}
)

func NewCartService(cartRepository CartRepository, restaurantRepository restaurant.RestaurantRepository, publisher events.Publisher) CartService {
	return &cartService{
		cartRepository:       cartRepository,
		restaurantRepository: restaurantRepository,
		publisher:            publisher,
	}
}

// Subscribe registers a change listener. Registration happens at wiring
// time, before the service handles requests.
func (s *cartService) Subscribe(listener Listener) {
	s.listeners = append(s.listeners, listener)
}

func (s *cartService) GetCart(ctx context.Context, userID, restaurantID string) (domain.CartResponse, error) {
	cart, err := s.cartRepository.GetCart(ctx, userID, restaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// No cart yet is an empty cart, not an error.
			return domain.CartResponse{RestaurantID: restaurantID, Lines: []domain.CartLineResponse{}}, nil
		}
		return domain.CartResponse{}, err
	}
	return toCartResponse(cart), nil
}

// AddItem merges on add: an existing line for the product gains quantity 1,
// otherwise a new line is appended with the price snapshotted from the menu
// item's current price. Later menu price changes never touch the snapshot.
func (s *cartService) AddItem(ctx context.Context, req domain.AddCartItemRequest, userID string) (domain.CartResponse, error) {
	item, err := s.restaurantRepository.GetMenuItemByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CartResponse{}, domain.ErrMenuItemNotFound
		}
		return domain.CartResponse{}, err
	}
	if !item.IsAvailable {
		return domain.CartResponse{}, domain.ErrMenuItemUnavailable
	}

	cart, err := s.getOrCreateCart(ctx, userID, req.RestaurantID)
	if err != nil {
		return domain.CartResponse{}, err
	}
	if cart.Version != req.Version {
		return domain.CartResponse{}, domain.ErrCartConflict
	}

	merged := false
	for _, line := range cart.Lines {
		if line.ProductID == item.ID {
			line.Quantity++
			merged = true
			break
		}
	}
	if !merged {
		cart.Lines = append(cart.Lines, &entities.CartLine{
			ID:              uuid.New(),
			CartID:          cart.ID,
			ProductID:       item.ID,
			Name:            item.Name,
			Quantity:        1,
			PriceAtPurchase: item.Price,
			ImageURL:        item.ImageURL,
		})
	}

	if err := s.cartRepository.SaveCart(ctx, cart, req.Version); err != nil {
		return domain.CartResponse{}, err
	}

	s.notifyChanged(ctx, cart)
	return toCartResponse(cart), nil
}

func (s *cartService) SetQuantity(ctx context.Context, req domain.SetQuantityRequest, userID string) (domain.CartResponse, error) {
	if req.Quantity < 1 {
		return domain.CartResponse{}, domain.ErrInvalidQuantity
	}

	cart, err := s.cartRepository.GetCart(ctx, userID, req.RestaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CartResponse{}, domain.ErrCartNotFound
		}
		return domain.CartResponse{}, err
	}
	if cart.Version != req.Version {
		return domain.CartResponse{}, domain.ErrCartConflict
	}

	found := false
	for _, line := range cart.Lines {
		if line.ProductID.String() == req.ProductID {
			line.Quantity = req.Quantity
			found = true
			break
		}
	}
	if !found {
		return domain.CartResponse{}, domain.ErrCartLineNotFound
	}

	if err := s.cartRepository.SaveCart(ctx, cart, req.Version); err != nil {
		return domain.CartResponse{}, err
	}

	s.notifyChanged(ctx, cart)
	return toCartResponse(cart), nil
}

func (s *cartService) RemoveItem(ctx context.Context, req domain.RemoveCartItemRequest, userID string) (domain.CartResponse, error) {
	cart, err := s.cartRepository.GetCart(ctx, userID, req.RestaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CartResponse{}, domain.ErrCartNotFound
		}
		return domain.CartResponse{}, err
	}
	if cart.Version != req.Version {
		return domain.CartResponse{}, domain.ErrCartConflict
	}

	kept := make([]*entities.CartLine, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		if line.ProductID.String() != req.ProductID {
			kept = append(kept, line)
		}
	}
	if len(kept) == len(cart.Lines) {
		return domain.CartResponse{}, domain.ErrCartLineNotFound
	}
	cart.Lines = kept

	if err := s.cartRepository.SaveCart(ctx, cart, req.Version); err != nil {
		return domain.CartResponse{}, err
	}

	s.notifyChanged(ctx, cart)
	return toCartResponse(cart), nil
}

func (s *cartService) ClearCart(ctx context.Context, userID, restaurantID string, version int) (domain.CartResponse, error) {
	cart, err := s.cartRepository.GetCart(ctx, userID, restaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CartResponse{}, domain.ErrCartNotFound
		}
		return domain.CartResponse{}, err
	}
	if cart.Version != version {
		return domain.CartResponse{}, domain.ErrCartConflict
	}

	if err := s.cartRepository.ClearCart(ctx, cart.ID.String(), version); err != nil {
		return domain.CartResponse{}, err
	}
	cart.Lines = nil
	cart.Version = version + 1

	s.notifyChanged(ctx, cart)
	return toCartResponse(cart), nil
}

func (s *cartService) getOrCreateCart(ctx context.Context, userID, restaurantID string) (*entities.Cart, error) {
	cart, err := s.cartRepository.GetCart(ctx, userID, restaurantID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	restaurantUUID, err := uuid.Parse(restaurantID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	cart = &entities.Cart{
		ID:           uuid.New(),
		UserID:       userUUID,
		RestaurantID: restaurantUUID,
		Version:      0,
	}
	if err := s.cartRepository.CreateCart(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *cartService) notifyChanged(ctx context.Context, cart *entities.Cart) {
	event := ChangedEvent{
		UserID:       cart.UserID.String(),
		RestaurantID: cart.RestaurantID.String(),
		ItemCount:    itemCount(cart),
		Total:        roundTo2(computeTotal(cart)),
	}
	for _, listener := range s.listeners {
		listener(event)
	}
	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, events.Event{
			Type:         events.TypeCartChanged,
			UserID:       event.UserID,
			RestaurantID: event.RestaurantID,
			EntityID:     cart.ID.String(),
		})
	}
}

// computeTotal always recomputes from the source quantities and snapshot
// prices; the rounded figure is for display only and never fed back in.
func computeTotal(cart *entities.Cart) float64 {
	total := 0.0
	for _, line := range cart.Lines {
		total += float64(line.Quantity) * line.PriceAtPurchase
	}
	return total
}

func itemCount(cart *entities.Cart) int {
	count := 0
	for _, line := range cart.Lines {
		count += line.Quantity
	}
	return count
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}

func toCartResponse(cart *entities.Cart) domain.CartResponse {
	lines := make([]domain.CartLineResponse, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		lines = append(lines, domain.CartLineResponse{
			ProductID:       line.ProductID.String(),
			Name:            line.Name,
			Quantity:        line.Quantity,
			PriceAtPurchase: line.PriceAtPurchase,
			ImageURL:        line.ImageURL,
		})
	}
	return domain.CartResponse{
		ID:           cart.ID.String(),
		RestaurantID: cart.RestaurantID.String(),
		Version:      cart.Version,
		Lines:        lines,
		Total:        roundTo2(computeTotal(cart)),
	}
}
