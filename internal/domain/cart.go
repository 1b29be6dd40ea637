package domain

import (
	"time"
)

type CartItem struct {
	ID        uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	CartID    uint64    `json:"-" gorm:"index"`
	ProductID uint64    `json:"productId" gorm:"not null"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	UnitPrice Money     `json:"unitPrice" gorm:"embedded;embeddedPrefix:unit_price_"`
	AddedAt   time.Time `json:"addedAt"`
}

func (i CartItem) Subtotal() Money {
	return i.UnitPrice.MulQty(i.Quantity)
}

// Cart is the per-user, pre-checkout collection of product selections. At most
// one active cart exists per user (enforced by the unique index on UserID).
// Stock and product-active checks are the caller's job; the cart only manages
// its own lines.
type Cart struct {
	ID        uint64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    uint64     `json:"userId" gorm:"uniqueIndex;not null"`
	Items     []CartItem `json:"items" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time  `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updatedAt" gorm:"autoUpdateTime"`
	ExpiresAt time.Time  `json:"expiresAt"`
}

func NewCart(userID uint64, ttl time.Duration) *Cart {
	return &Cart{
		UserID:    userID,
		ExpiresAt: time.Now().Add(ttl),
	}
}

// AddItem appends a new line or merges into an existing one. Repeated adds of
// the same product accumulate quantity; the unit price snapshot is refreshed
// to the latest call's price.
func (c *Cart) AddItem(productID uint64, quantity int, unitPrice Money) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	for idx := range c.Items {
		if c.Items[idx].ProductID == productID {
			c.Items[idx].Quantity += quantity
			c.Items[idx].UnitPrice = unitPrice
			return nil
		}
	}
	c.Items = append(c.Items, CartItem{
		ProductID: productID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		AddedAt:   time.Now(),
	})
	return nil
}

// UpdateItemQuantity sets the quantity of an existing line. Zero means remove;
// zero on an absent product is a no-op.
func (c *Cart) UpdateItemQuantity(productID uint64, quantity int) error {
	if quantity < 0 {
		return ErrInvalidQuantity
	}
	if quantity == 0 {
		c.RemoveItem(productID)
		return nil
	}
	for idx := range c.Items {
		if c.Items[idx].ProductID == productID {
			c.Items[idx].Quantity = quantity
			return nil
		}
	}
	return ErrItemNotFound
}

// RemoveItem drops the line for productID; absent is a no-op, not an error.
func (c *Cart) RemoveItem(productID uint64) {
	for idx := range c.Items {
		if c.Items[idx].ProductID == productID {
			c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() {
	c.Items = nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// TotalAmount sums quantity x unit price across lines. An empty cart totals to
// zero USD. Mixed currencies should not happen under the single-currency-per-cart
// policy but are still rejected.
func (c *Cart) TotalAmount() (Money, error) {
	if len(c.Items) == 0 {
		return ZeroMoney(CurrencyUSD), nil
	}
	total := ZeroMoney(c.Items[0].UnitPrice.Currency)
	for _, item := range c.Items {
		sum, err := total.Add(item.Subtotal())
		if err != nil {
			return Money{}, err
		}
		total = sum
	}
	return total, nil
}

func (c *Cart) TotalItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

func (c *Cart) FindItem(productID uint64) (CartItem, bool) {
	for _, item := range c.Items {
		if item.ProductID == productID {
			return item, true
		}
	}
	return CartItem{}, false
}
