package effect

import (
	"testing"

	"github.com/draconisPW/mangband-core/server/player"
	"github.com/draconisPW/mangband-core/server/projection"
	"github.com/draconisPW/mangband-core/server/rng"
	"github.com/draconisPW/mangband-core/server/status"
	"github.com/draconisPW/mangband-core/server/world"
)

func newTestChunk(h, w int) *world.Chunk {
	c := world.New(world.Pos{X: 0, Y: 0, Depth: 1}, h, w)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c.SetFeat(world.Grid{X: x, Y: y}, world.FeatFloor)
		}
	}
	return c
}

func newTestContext(c *world.Chunk) *Context {
	return &Context{
		Chunk:  c,
		RNG:    rng.New(1),
		Status: status.Table{},
	}
}

func newTestRace() *world.Race {
	return &world.Race{Name: "test kobold", HitDice: 1, HitSides: 8}
}

func spawnMonster(c *world.Chunk, g world.Grid, hp int) int {
	idx := c.NewMonster(world.Monster{Race: newTestRace(), Grid: g, HP: hp, MaxHP: hp})
	_ = c.PlaceMonster(g, idx)
	return idx
}

func TestDispatchBoltDamagesMonsterInLine(t *testing.T) {
	c := newTestChunk(10, 10)
	spawnMonster(c, world.Grid{X: 5, Y: 5}, 30)

	var died bool
	ctx := newTestContext(c)
	ctx.OnMonsterDeath = func(*world.Race, world.Grid) { died = true }

	res := Dispatch(ctx, Params{
		Kind:    KindBolt,
		Dam:     100,
		Element: world.ElemFire,
		Origin:  world.Grid{X: 1, Y: 5},
		Target:  world.Grid{X: 8, Y: 5},
		Flags:   projection.FlagKill,
	})
	if !res.Noticed {
		t.Fatal("expected bolt to be noticed")
	}
	if !died {
		t.Fatal("expected a 100-damage bolt to kill a 30-hp monster")
	}
}

func TestDispatchBallRespectsRadius(t *testing.T) {
	c := newTestChunk(15, 15)
	near := spawnMonster(c, world.Grid{X: 7, Y: 7}, 5)
	far := spawnMonster(c, world.Grid{X: 14, Y: 14}, 5)

	ctx := newTestContext(c)
	Dispatch(ctx, Params{
		Kind:   KindBall,
		Dam:    50,
		Origin: world.Grid{X: 1, Y: 1},
		Target: world.Grid{X: 7, Y: 7},
		Radius: 2,
		Flags:  projection.FlagKill,
	})

	if c.Monsters[near].Race != nil {
		t.Fatal("expected the near monster to be killed by the ball")
	}
	if c.Monsters[far].Race == nil {
		t.Fatal("expected the far monster, outside the radius, to survive")
	}
}

func TestHealHPNoOpAtFullHealth(t *testing.T) {
	c := newTestChunk(5, 5)
	ctx := newTestContext(c)
	p := &player.Player{CHP: 20, MaxHP: 20}

	res := HealHP(ctx, nil, p, 10, 50)
	if res.Noticed {
		t.Fatal("expected HealHP to be a no-op at full health")
	}
}

func TestHealHPUsesLargerOfBaseAndPercent(t *testing.T) {
	c := newTestChunk(5, 5)
	ctx := newTestContext(c)
	p := &player.Player{CHP: 0, MaxHP: 100}

	HealHP(ctx, nil, p, 5, 50)
	if p.CHP != 50 {
		t.Fatalf("CHP = %d, want 50 (50%% of 100 missing beats base 5)", p.CHP)
	}
}

func TestTapUnlifeFailsOnLivingTarget(t *testing.T) {
	c := newTestChunk(5, 5)
	idx := spawnMonster(c, world.Grid{X: 2, Y: 2}, 10)
	ctx := newTestContext(c)

	res := TapUnlife(ctx, &c.Monsters[idx], nil, 20)
	if !res.Failed {
		t.Fatal("expected TapUnlife to fail against a non-undead monster")
	}
}

func TestTapUnlifeGrantsQuarterManaFromUndead(t *testing.T) {
	c := newTestChunk(5, 5)
	race := newTestRace()
	race.Flags |= world.RaceFlagUndead
	idx := c.NewMonster(world.Monster{Race: race, Grid: world.Grid{X: 2, Y: 2}, HP: 40, MaxHP: 40})
	_ = c.PlaceMonster(world.Grid{X: 2, Y: 2}, idx)

	ctx := newTestContext(c)
	caster := &player.Player{CSP: 0, MaxSP: 50}
	res := TapUnlife(ctx, &c.Monsters[idx], caster, 20)
	if !res.Noticed {
		t.Fatal("expected TapUnlife to succeed against undead")
	}
	if caster.CSP != 5 {
		t.Fatalf("caster CSP = %d, want 5 (20/4)", caster.CSP)
	}
}

func TestDestructionWallsAndSparesPitfloor(t *testing.T) {
	c := newTestChunk(11, 11)
	c.SetFeat(world.Grid{X: 6, Y: 5}, world.FeatFloorSafe)
	ctx := newTestContext(c)

	Destruction(ctx, world.Grid{X: 5, Y: 5}, 2)

	if c.Square(world.Grid{X: 6, Y: 5}).Feat != world.FeatFloorSafe {
		t.Fatal("expected pitfloor cell to survive DESTRUCTION")
	}
	if c.Square(world.Grid{X: 5, Y: 6}).Feat != world.FeatGranite {
		t.Fatal("expected non-pitfloor cell within radius to be walled")
	}
}

func TestWipeAreaClearsToFloor(t *testing.T) {
	c := newTestChunk(11, 11)
	c.SetFeat(world.Grid{X: 5, Y: 5}, world.FeatGranite)
	ctx := newTestContext(c)

	WipeArea(ctx, world.Grid{X: 5, Y: 5}, 0)
	if c.Square(world.Grid{X: 5, Y: 5}).Feat != world.FeatFloor {
		t.Fatal("expected WIPE_AREA to clear the centre cell to floor")
	}
}

func TestAlterIsNoOpWhenFeatureAlreadyMatches(t *testing.T) {
	c := newTestChunk(5, 5)
	ctx := newTestContext(c)
	res := Alter(ctx, world.Grid{X: 2, Y: 2}, world.FeatFloor)
	if res.Noticed {
		t.Fatal("expected Alter to be a no-op when the feature already matches")
	}
}

func TestMeleeBlowsFailsWhenNotAdjacent(t *testing.T) {
	c := newTestChunk(10, 10)
	ctx := newTestContext(c)
	res := MeleeBlows(ctx, Params{Origin: world.Grid{X: 1, Y: 1}, Target: world.Grid{X: 8, Y: 8}})
	if !res.Failed {
		t.Fatal("expected MeleeBlows to fail against a non-adjacent target")
	}
}

func TestLashDamageIsFirstBlowPlusHalfOthers(t *testing.T) {
	c := newTestChunk(10, 10)
	spawnMonster(c, world.Grid{X: 5, Y: 5}, 1000)
	ctx := newTestContext(c)

	var gotDam int
	ctx.OnMonsterDeath = func(*world.Race, world.Grid) {}
	res := Dispatch(ctx, Params{
		Kind:   KindLash,
		Origin: world.Grid{X: 1, Y: 5},
		Target: world.Grid{X: 8, Y: 5},
		Flags:  projection.FlagKill | projection.FlagConst,
		Blows: []world.Blow{
			{Dice: 2, Sides: 6, Element: world.ElemFire},
			{Dice: 1, Sides: 4},
		},
	})
	if !res.Noticed {
		t.Fatal("expected lash to connect")
	}
	before := 1000
	after := c.Monsters[1].HP
	gotDam = before - after
	want := 2*6 + (1*4)/2
	if gotDam != want {
		t.Fatalf("lash damage = %d, want %d", gotDam, want)
	}
}
