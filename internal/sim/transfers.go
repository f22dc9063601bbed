package sim

import (
	"math"

	"clubsim/internal/domain"
)

// Negotiation statuses
const (
	OfferAccepted = "ACCEPTED"
	OfferRejected = "REJECTED"
	OfferCounter  = "COUNTER_OFFER"
)

// TransferTaxRate is deducted from the seller's receipt.
const TransferTaxRate = 0.05

// NegotiationResult is the selling club's answer to a bid.
type NegotiationResult struct {
	Status       string  `json:"status"`
	Reason       string  `json:"reason,omitempty"`
	CounterPrice float64 `json:"counter_price,omitempty"`
}

// EvaluateOffer runs the selling club's negotiation logic for a bid on one
// of its players. It never mutates either team.
func EvaluateOffer(buyer, seller domain.Team, player domain.Player, offer float64, godMode bool) NegotiationResult {
	if buyer.Budget < offer && !godMode {
		return NegotiationResult{Status: OfferRejected, Reason: "Your budget is insufficient to make this offer."}
	}
	if len(seller.Players) <= domain.MinSquadSize {
		return NegotiationResult{
			Status: OfferRejected,
			Reason: "The club's board refuses to sell any player as the squad has reached the minimum size (15 players).",
		}
	}

	baseValue := player.Value
	askingPrice := math.Floor(baseValue * 1.3)
	minAcceptable := math.Floor(baseValue * 1.1)

	switch {
	case offer < baseValue*0.8:
		return NegotiationResult{Status: OfferRejected, Reason: "The selling club considered the offer too low and has closed negotiations."}
	case offer >= minAcceptable:
		return NegotiationResult{Status: OfferAccepted}
	default:
		counter := math.Floor((askingPrice + offer) / 2)
		if counter <= offer {
			counter = offer + 1
		}
		return NegotiationResult{Status: OfferCounter, CounterPrice: counter}
	}
}

// ExecuteTransfer moves the player from seller to buyer at the agreed price.
// The seller pays a 5% tax on the receipt; in god mode the buyer pays
// nothing. Returns updated copies of both teams.
func ExecuteTransfer(buyer, seller domain.Team, playerID string, agreedPrice float64, godMode bool) (domain.Team, domain.Team, *domain.Player) {
	var moved *domain.Player
	remaining := make([]domain.Player, 0, len(seller.Players))
	for _, p := range seller.Players {
		if p.ID == playerID {
			signed := p
			signed.IsTransferListed = false
			moved = &signed
			continue
		}
		remaining = append(remaining, p)
	}
	if moved == nil {
		return buyer, seller, nil
	}

	sellerReceipt := agreedPrice - agreedPrice*TransferTaxRate

	seller.Players = remaining
	seller.Budget += sellerReceipt

	buyer.Players = append(append([]domain.Player{}, buyer.Players...), *moved)
	if !godMode {
		buyer.Budget -= agreedPrice
	}
	return buyer, seller, moved
}
