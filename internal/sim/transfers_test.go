package sim

import (
	"testing"

	"clubsim/internal/domain"
)

func sellerWithSquad(size int) domain.Team {
	team := domain.Team{ID: "seller", Budget: 20}
	for i := 0; i < size; i++ {
		team.Players = append(team.Players, domain.Player{ID: playerID(i), Rating: 60 + i})
	}
	return team
}

func playerID(i int) string {
	return string(rune('a' + i))
}

func TestEvaluateOfferBudgetCheck(t *testing.T) {
	buyer := domain.Team{ID: "buyer", Budget: 5}
	seller := sellerWithSquad(16)
	player := domain.Player{ID: "x", Value: 10}

	res := EvaluateOffer(buyer, seller, player, 11, false)
	if res.Status != OfferRejected {
		t.Fatalf("status %s, want rejection when offer exceeds budget", res.Status)
	}

	// God mode waives the budget check.
	res = EvaluateOffer(buyer, seller, player, 11, true)
	if res.Status != OfferAccepted {
		t.Fatalf("god mode status %s, want acceptance", res.Status)
	}
}

func TestEvaluateOfferMinimumSquadSize(t *testing.T) {
	buyer := domain.Team{ID: "buyer", Budget: 100}
	seller := sellerWithSquad(domain.MinSquadSize)
	player := seller.Players[0]

	res := EvaluateOffer(buyer, seller, player, 50, false)
	if res.Status != OfferRejected {
		t.Fatalf("status %s, want rejection at minimum squad size", res.Status)
	}
}

func TestEvaluateOfferThresholds(t *testing.T) {
	buyer := domain.Team{ID: "buyer", Budget: 1000}
	seller := sellerWithSquad(16)
	player := domain.Player{ID: "x", Value: 10}

	tests := []struct {
		name   string
		offer  float64
		status string
	}{
		{"insulting lowball", 7, OfferRejected},
		{"just under lowball line", 7.9, OfferRejected},
		{"meets minimum acceptable", 11, OfferAccepted},
		{"well above asking", 20, OfferAccepted},
		{"fair but short", 9, OfferCounter},
	}
	for _, tc := range tests {
		res := EvaluateOffer(buyer, seller, player, tc.offer, false)
		if res.Status != tc.status {
			t.Fatalf("%s: status %s, want %s", tc.name, res.Status, tc.status)
		}
	}
}

func TestEvaluateOfferCounterPrice(t *testing.T) {
	buyer := domain.Team{ID: "buyer", Budget: 1000}
	seller := sellerWithSquad(16)
	player := domain.Player{ID: "x", Value: 10}

	// Asking price floor(13), offer 9: counter floor((13+9)/2) = 11.
	res := EvaluateOffer(buyer, seller, player, 9, false)
	if res.Status != OfferCounter {
		t.Fatalf("status %s, want counter", res.Status)
	}
	if res.CounterPrice != 11 {
		t.Fatalf("counter %.1f, want 11", res.CounterPrice)
	}

	// The counter must always top the offer, even when flooring collapses.
	res = EvaluateOffer(buyer, seller, player, 10.9, false)
	if res.Status != OfferCounter {
		t.Fatalf("status %s, want counter", res.Status)
	}
	if res.CounterPrice <= 10.9 {
		t.Fatalf("counter %.1f not above the offer", res.CounterPrice)
	}
}

func TestExecuteTransferMovesPlayerAndMoney(t *testing.T) {
	buyer := domain.Team{ID: "buyer", Budget: 50}
	seller := sellerWithSquad(16)
	seller.Players[0].IsTransferListed = true
	target := seller.Players[0].ID

	gotBuyer, gotSeller, moved := ExecuteTransfer(buyer, seller, target, 10, false)
	if moved == nil {
		t.Fatal("transfer returned no player")
	}
	if moved.IsTransferListed {
		t.Fatal("transfer listing survived the move")
	}
	if len(gotBuyer.Players) != 1 || len(gotSeller.Players) != 15 {
		t.Fatalf("squad sizes %d/%d, want 1/15", len(gotBuyer.Players), len(gotSeller.Players))
	}
	if gotBuyer.Budget != 40 {
		t.Fatalf("buyer budget %.2f, want 40.00", gotBuyer.Budget)
	}
	// Seller receives the fee minus the 5% tax.
	if gotSeller.Budget != 20+9.5 {
		t.Fatalf("seller budget %.2f, want 29.50", gotSeller.Budget)
	}
}

func TestExecuteTransferGodModeIsFree(t *testing.T) {
	buyer := domain.Team{ID: "buyer", Budget: 5}
	seller := sellerWithSquad(16)
	target := seller.Players[3].ID

	gotBuyer, gotSeller, moved := ExecuteTransfer(buyer, seller, target, 100, true)
	if moved == nil {
		t.Fatal("transfer returned no player")
	}
	if gotBuyer.Budget != 5 {
		t.Fatalf("buyer budget %.2f, want untouched 5.00", gotBuyer.Budget)
	}
	if gotSeller.Budget != 20+95 {
		t.Fatalf("seller budget %.2f, want 115.00", gotSeller.Budget)
	}
}

func TestExecuteTransferUnknownPlayer(t *testing.T) {
	buyer := domain.Team{ID: "buyer", Budget: 50}
	seller := sellerWithSquad(16)

	gotBuyer, gotSeller, moved := ExecuteTransfer(buyer, seller, "missing", 10, false)
	if moved != nil {
		t.Fatalf("moved %v for unknown player id", moved)
	}
	if gotBuyer.Budget != 50 || len(gotSeller.Players) != 16 {
		t.Fatal("teams changed despite missing player")
	}
}
