package mana

import (
	"testing"
)

func TestPoolAddRemove(t *testing.T) {
	var pool Pool
	pool = pool.Add(White, 2)
	pool = pool.Add(Green, 1)

	if pool.Get(White) != 2 {
		t.Errorf("Expected 2 white, got %d", pool.Get(White))
	}
	if pool.Total() != 3 {
		t.Errorf("Expected total 3, got %d", pool.Total())
	}

	pool = pool.Remove(White, 1)
	if pool.Get(White) != 1 {
		t.Errorf("Expected 1 white after remove, got %d", pool.Get(White))
	}
}

func TestPoolRemoveFloorsAtZero(t *testing.T) {
	var pool Pool
	pool = pool.Add(Red, 1)
	pool = pool.Remove(Red, 5)

	if pool.Get(Red) != 0 {
		t.Errorf("Expected red floored at 0, got %d", pool.Get(Red))
	}
}

func TestPoolValueSemantics(t *testing.T) {
	var pool Pool
	pool = pool.Add(Blue, 3)

	_ = pool.Remove(Blue, 2)
	if pool.Get(Blue) != 3 {
		t.Errorf("Remove mutated the receiver: got %d blue", pool.Get(Blue))
	}
}

func TestPoolIgnoresNonPositiveAmounts(t *testing.T) {
	var pool Pool
	pool = pool.Add(Black, -1)
	pool = pool.Add(Black, 0)

	if pool.Total() != 0 {
		t.Errorf("Expected empty pool, got total %d", pool.Total())
	}
}

func TestColorValid(t *testing.T) {
	for _, c := range Colors {
		if !c.Valid() {
			t.Errorf("Expected %s to be valid", c)
		}
	}
	if Color("Z").Valid() {
		t.Error("Expected Z to be invalid")
	}
}
