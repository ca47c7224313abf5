package engine

import "testing"

func TestSeatRelations(t *testing.T) {
	tests := []struct {
		seat, team, partner, next int
	}{
		{1, 1, 3, 2},
		{2, 2, 4, 3},
		{3, 1, 1, 4},
		{4, 2, 2, 1},
	}
	for _, tc := range tests {
		if got := TeamOf(tc.seat); got != tc.team {
			t.Errorf("TeamOf(%d) = %d, want %d", tc.seat, got, tc.team)
		}
		if got := PartnerOf(tc.seat); got != tc.partner {
			t.Errorf("PartnerOf(%d) = %d, want %d", tc.seat, got, tc.partner)
		}
		if got := NextSeat(tc.seat); got != tc.next {
			t.Errorf("NextSeat(%d) = %d, want %d", tc.seat, got, tc.next)
		}
	}
}

func TestActiveSeatOrderSkipsSitout(t *testing.T) {
	g := NewGame(1, DefaultGameRules())
	g.PlayerAt(3).SittingOut = true
	if got := g.nextActiveSeat(2); got != 4 {
		t.Fatalf("nextActiveSeat(2) = %d, want 4", got)
	}
	if got := g.nextActiveSeat(4); got != 1 {
		t.Fatalf("nextActiveSeat(4) = %d, want 1", got)
	}
	if got := g.ActiveSeats(); got != 3 {
		t.Fatalf("ActiveSeats = %d, want 3", got)
	}
}

func TestCurrentTrick(t *testing.T) {
	h := &Hand{}
	if h.CurrentTrick() != nil {
		t.Fatal("no tricks yet")
	}
	h.Tricks = append(h.Tricks, Trick{})
	if h.CurrentTrick() == nil {
		t.Fatal("open trick should be current")
	}
	h.Tricks[0].Winner = 1
	if h.CurrentTrick() != nil {
		t.Fatal("resolved final trick is not current")
	}
}

func TestNewGameDefaults(t *testing.T) {
	g := NewGame(99, DefaultGameRules())
	if g.Phase != PhaseSetup {
		t.Fatalf("phase = %v, want setup", g.Phase)
	}
	for seat := 1; seat <= NumSeats; seat++ {
		p := g.PlayerAt(seat)
		if p == nil || p.Number != seat {
			t.Fatalf("seat %d malformed: %+v", seat, p)
		}
	}
	if g.PlayerAt(1).Team() != 1 || g.PlayerAt(2).Team() != 2 {
		t.Fatal("team assignment wrong")
	}
}
