package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func cartMoney(amount string) Money {
	return Money{Amount: decimal.RequireFromString(amount), Currency: CurrencyUSD}
}

func TestCart_AddItem_MergesQuantities(t *testing.T) {
	cart := NewCart(1, time.Hour)

	assert.NoError(t, cart.AddItem(10, 2, cartMoney("5.00")))
	assert.NoError(t, cart.AddItem(10, 3, cartMoney("6.00")))

	assert.Len(t, cart.Items, 1)
	item, ok := cart.FindItem(10)
	assert.True(t, ok)
	assert.Equal(t, 5, item.Quantity)
	// last call's price wins
	assert.True(t, item.UnitPrice.Equal(cartMoney("6.00")))
}

func TestCart_AddItem_RejectsNonPositiveQuantity(t *testing.T) {
	cart := NewCart(1, time.Hour)
	assert.ErrorIs(t, cart.AddItem(10, 0, cartMoney("5.00")), ErrInvalidQuantity)
	assert.ErrorIs(t, cart.AddItem(10, -1, cartMoney("5.00")), ErrInvalidQuantity)
	assert.True(t, cart.IsEmpty())
}

func TestCart_UpdateItemQuantity(t *testing.T) {
	cart := NewCart(1, time.Hour)
	assert.NoError(t, cart.AddItem(10, 2, cartMoney("5.00")))

	assert.NoError(t, cart.UpdateItemQuantity(10, 7))
	item, _ := cart.FindItem(10)
	assert.Equal(t, 7, item.Quantity)

	// zero removes, and is idempotent on an absent product
	assert.NoError(t, cart.UpdateItemQuantity(10, 0))
	_, ok := cart.FindItem(10)
	assert.False(t, ok)
	assert.NoError(t, cart.UpdateItemQuantity(10, 0))

	// a positive update on an absent product is an error
	assert.ErrorIs(t, cart.UpdateItemQuantity(99, 1), ErrItemNotFound)
}

func TestCart_RemoveItem_AbsentIsNoop(t *testing.T) {
	cart := NewCart(1, time.Hour)
	cart.RemoveItem(42)
	assert.True(t, cart.IsEmpty())
}

func TestCart_Totals(t *testing.T) {
	cart := NewCart(1, time.Hour)
	assert.NoError(t, cart.AddItem(1, 2, cartMoney("10.00"))) // productA qty 2 @ $10
	assert.NoError(t, cart.AddItem(2, 1, cartMoney("5.00")))  // productB qty 1 @ $5

	total, err := cart.TotalAmount()
	assert.NoError(t, err)
	assert.True(t, total.Equal(cartMoney("25.00")))
	assert.Equal(t, 3, cart.TotalItemCount())
}

func TestCart_TotalAmount_EmptyIsZeroUSD(t *testing.T) {
	cart := NewCart(1, time.Hour)
	total, err := cart.TotalAmount()
	assert.NoError(t, err)
	assert.Equal(t, CurrencyUSD, total.Currency)
	assert.True(t, total.IsZero())
}

func TestCart_TotalAmount_MixedCurrenciesFail(t *testing.T) {
	cart := NewCart(1, time.Hour)
	assert.NoError(t, cart.AddItem(1, 1, cartMoney("10.00")))
	assert.NoError(t, cart.AddItem(2, 1, Money{Amount: decimal.NewFromInt(3), Currency: CurrencyBHD}))

	_, err := cart.TotalAmount()
	assert.ErrorIs(t, err, ErrCurrencyMismatch)
}

func TestCart_Clear(t *testing.T) {
	cart := NewCart(1, time.Hour)
	assert.NoError(t, cart.AddItem(1, 1, cartMoney("10.00")))
	cart.Clear()
	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 0, cart.TotalItemCount())
}
