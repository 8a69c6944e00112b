package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

// BuyStrategy is how the investor acquires control of a property.
// Keep these values stable; they are the keys used by the API and scenario files.
type BuyStrategy string

const (
	BuyNone        BuyStrategy = "none"
	BuyWholesaling BuyStrategy = "wholesaling"
	BuyPurchase    BuyStrategy = "purchase"
	BuyLease       BuyStrategy = "lease"
	BuySeller      BuyStrategy = "seller"
)

// SellStrategy is how the investor disposes of (or operates) the property.
type SellStrategy string

const (
	SellNone        SellStrategy = "none"
	SellWholesaling SellStrategy = "wholesaling"
	SellFlip        SellStrategy = "sellflip"
	SellRent        SellStrategy = "rent"
	SellLease       SellStrategy = "lease"
	SellSeller      SellStrategy = "seller"
)

var BuyStrategies = []BuyStrategy{BuyWholesaling, BuyPurchase, BuyLease, BuySeller}

var SellStrategies = []SellStrategy{SellWholesaling, SellFlip, SellRent, SellLease, SellSeller}

// ParseBuyStrategy maps a user-facing key onto a BuyStrategy.
// The empty string maps to BuyNone.
func ParseBuyStrategy(s string) (BuyStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return BuyNone, nil
	case "wholesaling", "wholesale":
		return BuyWholesaling, nil
	case "purchase", "cash":
		return BuyPurchase, nil
	case "lease", "leaseoption", "lease-option":
		return BuyLease, nil
	case "seller", "sellerfinance", "seller-finance":
		return BuySeller, nil
	}
	return BuyNone, fmt.Errorf("%w: buy %q", ErrUnknownStrategy, s)
}

// ParseSellStrategy maps a user-facing key onto a SellStrategy.
// "purchase" is accepted for sell/flip because the original toggle used that value.
func ParseSellStrategy(s string) (SellStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return SellNone, nil
	case "wholesaling", "wholesale":
		return SellWholesaling, nil
	case "sellflip", "sell-flip", "flip", "purchase":
		return SellFlip, nil
	case "rent", "rental":
		return SellRent, nil
	case "lease", "leaseoption", "lease-option":
		return SellLease, nil
	case "seller", "sellerfinance", "seller-finance":
		return SellSeller, nil
	}
	return SellNone, fmt.Errorf("%w: sell %q", ErrUnknownStrategy, s)
}

func (b BuyStrategy) Label() string {
	switch b {
	case BuyWholesaling:
		return "Wholesaling"
	case BuyPurchase:
		return "Purchase"
	case BuyLease:
		return "Lease Option"
	case BuySeller:
		return "Seller Finance"
	default:
		return "None"
	}
}

func (s SellStrategy) Label() string {
	switch s {
	case SellWholesaling:
		return "Wholesaling"
	case SellFlip:
		return "Sell/Flip"
	case SellRent:
		return "Rent"
	case SellLease:
		return "Lease Option"
	case SellSeller:
		return "Seller Finance"
	default:
		return "None"
	}
}
