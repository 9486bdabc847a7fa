package scheduler

import "testing"

type fakeCommand struct {
	cost int
	ok   bool
	runs int
}

func (c *fakeCommand) Cost() int { return c.cost }
func (c *fakeCommand) Run() bool {
	c.runs++
	return c.ok
}

func TestEnergyPerTickGrowsWithSpeed(t *testing.T) {
	base := EnergyPerTick(110)
	fast := EnergyPerTick(120)
	slow := EnergyPerTick(100)
	if fast <= base {
		t.Fatalf("EnergyPerTick(120) = %d, want > EnergyPerTick(110) = %d", fast, base)
	}
	if slow >= base {
		t.Fatalf("EnergyPerTick(100) = %d, want < EnergyPerTick(110) = %d", slow, base)
	}
}

func TestClampSpeedBounds(t *testing.T) {
	if ClampSpeed(-5) != speedMin {
		t.Fatalf("ClampSpeed(-5) = %d, want %d", ClampSpeed(-5), speedMin)
	}
	if ClampSpeed(500) != speedMax {
		t.Fatalf("ClampSpeed(500) = %d, want %d", ClampSpeed(500), speedMax)
	}
}

func TestStepRunsQueuedCommandOnceThresholdReached(t *testing.T) {
	s := New()
	id := ActorID{Kind: KindPlayer, ID: 1}
	s.Register(id, 0)
	cmd := &fakeCommand{cost: 100, ok: true}
	s.Enqueue(id, cmd)

	for i := 0; i < 20 && cmd.runs == 0; i++ {
		s.Step()
	}
	if cmd.runs != 1 {
		t.Fatalf("command ran %d times, want 1", cmd.runs)
	}
	if s.Pending(id) != 0 {
		t.Fatalf("expected queue to be drained, got %d pending", s.Pending(id))
	}
}

func TestStepDoesNotChargeEnergyOnFailedCommand(t *testing.T) {
	s := New()
	id := ActorID{Kind: KindPlayer, ID: 1}
	s.Register(id, 0)
	cmd := &fakeCommand{cost: 100, ok: false}
	s.Enqueue(id, cmd)

	for i := 0; i < 20; i++ {
		s.Step()
	}
	if cmd.runs != 1 {
		t.Fatalf("command ran %d times, want exactly 1 (queue drains even on failure)", cmd.runs)
	}
	if s.Energy(id) < EnergyThreshold {
		t.Fatalf("energy = %d, want >= %d since the failed command must not be charged", s.Energy(id), EnergyThreshold)
	}
}

func TestStepOrdersPlayersBeforeMonstersAtSameID(t *testing.T) {
	s := New()
	player := ActorID{Kind: KindPlayer, ID: 1}
	monster := ActorID{Kind: KindMonster, ID: 1}
	s.Register(monster, 0)
	s.Register(player, 0)

	var order []ActorID
	s.Enqueue(player, &recordingCommand{id: player, order: &order})
	s.Enqueue(monster, &recordingCommand{id: monster, order: &order})

	for i := 0; i < 20 && len(order) < 2; i++ {
		s.Step()
	}
	if len(order) != 2 || order[0] != player || order[1] != monster {
		t.Fatalf("execution order = %v, want [player, monster]", order)
	}
}

type recordingCommand struct {
	id    ActorID
	order *[]ActorID
}

func (c *recordingCommand) Cost() int { return EnergyThreshold }
func (c *recordingCommand) Run() bool {
	*c.order = append(*c.order, c.id)
	return true
}

func TestMaintenanceRunsOncePerStep(t *testing.T) {
	s := New()
	calls := 0
	s.Maintenance = func() { calls++ }
	s.Register(ActorID{Kind: KindPlayer, ID: 1}, 0)

	s.Step()
	s.Step()
	if calls != 2 {
		t.Fatalf("Maintenance ran %d times, want 2", calls)
	}
}

func TestUnregisterDiscardsQueue(t *testing.T) {
	s := New()
	id := ActorID{Kind: KindPlayer, ID: 1}
	s.Register(id, 0)
	s.Enqueue(id, &fakeCommand{cost: 100, ok: true})
	s.Unregister(id)
	s.Register(id, 0)
	if s.Pending(id) != 0 {
		t.Fatalf("expected fresh registration to have no pending commands, got %d", s.Pending(id))
	}
}
