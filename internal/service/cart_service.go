package service

import (
	"errors"
	"sync"

	"github.com/saifFast/anaya-ecommerce-website/internal/domain"
)

// Common errors returned by the cart service
var (
	ErrInvalidQuantity = errors.New("quantity must be greater than 0")
	ErrNilCustomer     = errors.New("customer is required")
)

// CartService owns the cart-id to cart mapping. Every operation serializes
// on one lock; the working set is a handful of small carts so contention is
// not a concern. Methods return deep copies, never the stored cart, so
// callers can read results without holding the lock.
//
// Any operation on an unknown cart id creates an empty cart under that id
// first (auto-vivification). Carts live for the process lifetime; clearing
// a cart empties its lines but keeps the record.
type CartService struct {
	mu     sync.Mutex
	carts  map[int64]*domain.Cart
	nextID int64
}

// NewCartService creates a cart service holding a single empty cart with id 1
func NewCartService() *CartService {
	s := &CartService{
		carts:  make(map[int64]*domain.Cart),
		nextID: 2,
	}
	s.carts[1] = &domain.Cart{ID: 1, Lines: []domain.CartLine{}}
	return s
}

// getOrCreate returns the cart stored under cartID, creating and storing an
// empty one on first access. This is the auto-vivification branch: reads of
// unknown ids deliberately succeed so clients never handle a missing cart.
// Must be called with mu held.
func (s *CartService) getOrCreate(cartID int64) *domain.Cart {
	if cart, ok := s.carts[cartID]; ok {
		return cart
	}
	cart := &domain.Cart{ID: cartID, Lines: []domain.CartLine{}}
	s.carts[cartID] = cart
	return cart
}

// GetCart returns the cart with the given id, creating it if unknown
func (s *CartService) GetCart(cartID int64) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneCart(s.getOrCreate(cartID))
}

// AddLine appends a new line holding a snapshot of the product. If the cart
// already has a line for the product id the cart is returned unchanged; the
// client is expected to use SetLineQuantity to adjust an existing line.
func (s *CartService) AddLine(cartID int64, product domain.Product, quantity int) (domain.Cart, error) {
	if quantity < 1 {
		return domain.Cart{}, ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.getOrCreate(cartID)
	for _, line := range cart.Lines {
		if line.Product.ID == product.ID {
			return cloneCart(cart), nil
		}
	}

	cart.Lines = append(cart.Lines, domain.CartLine{Product: product, Quantity: quantity})
	return cloneCart(cart), nil
}

// RemoveLine removes the line matching productID; absent lines are a no-op
func (s *CartService) RemoveLine(cartID, productID int64) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.getOrCreate(cartID)
	for i, line := range cart.Lines {
		if line.Product.ID == productID {
			cart.Lines = append(cart.Lines[:i], cart.Lines[i+1:]...)
			break
		}
	}
	return cloneCart(cart)
}

// SetLineQuantity sets the quantity on the line matching productID. A
// quantity of zero or less removes the line instead of storing a
// non-positive value; an absent line is a no-op.
func (s *CartService) SetLineQuantity(cartID, productID int64, quantity int) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.getOrCreate(cartID)
	for i := range cart.Lines {
		if cart.Lines[i].Product.ID != productID {
			continue
		}
		if quantity > 0 {
			cart.Lines[i].Quantity = quantity
		} else {
			cart.Lines = append(cart.Lines[:i], cart.Lines[i+1:]...)
		}
		break
	}
	return cloneCart(cart)
}

// Total returns the sum of price times quantity over all lines. A quantity
// below 1 counts as 1, matching ItemCount.
func (s *CartService) Total(cartID int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total int64
	for _, line := range s.getOrCreate(cartID).Lines {
		total += line.Product.Price * int64(atLeastOne(line.Quantity))
	}
	return total
}

// ItemCount returns the total number of units across all lines
func (s *CartService) ItemCount(cartID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int
	for _, line := range s.getOrCreate(cartID).Lines {
		count += atLeastOne(line.Quantity)
	}
	return count
}

// Clear empties the cart's lines; the cart id and customer binding survive
func (s *CartService) Clear(cartID int64) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.getOrCreate(cartID)
	cart.Lines = []domain.CartLine{}
	return cloneCart(cart)
}

// SetCustomer replaces the cart's customer snapshot wholesale
func (s *CartService) SetCustomer(cartID int64, customer *domain.Customer) (domain.Cart, error) {
	if customer == nil {
		return domain.Cart{}, ErrNilCustomer
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.getOrCreate(cartID)
	c := *customer
	cart.Customer = &c
	return cloneCart(cart), nil
}

// CreateCart allocates the next counter value and stores a new empty cart.
// Ids already taken by auto-vivified carts are skipped so the counter stays
// monotonic and ids are never reused.
func (s *CartService) CreateCart() domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	for {
		id := s.nextID
		s.nextID++
		if _, taken := s.carts[id]; taken {
			continue
		}
		cart := &domain.Cart{ID: id, Lines: []domain.CartLine{}}
		s.carts[id] = cart
		return cloneCart(cart)
	}
}

// ListCarts returns all carts currently held, in unspecified order
func (s *CartService) ListCarts() []domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Cart, 0, len(s.carts))
	for _, cart := range s.carts {
		out = append(out, cloneCart(cart))
	}
	return out
}

func cloneCart(cart *domain.Cart) domain.Cart {
	out := domain.Cart{ID: cart.ID, Lines: make([]domain.CartLine, len(cart.Lines))}
	copy(out.Lines, cart.Lines)
	if cart.Customer != nil {
		c := *cart.Customer
		out.Customer = &c
	}
	return out
}

func atLeastOne(quantity int) int {
	if quantity < 1 {
		return 1
	}
	return quantity
}
