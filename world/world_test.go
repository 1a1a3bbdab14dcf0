package world

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/featherwake/actor"
	"github.com/milk9111/featherwake/ai"
	"github.com/milk9111/featherwake/asset"
	"github.com/milk9111/featherwake/asset/mock"
	"github.com/milk9111/featherwake/clock"
	"github.com/milk9111/featherwake/config"
	"github.com/milk9111/featherwake/content"
	"github.com/milk9111/featherwake/ecs"
	"github.com/milk9111/featherwake/effect"
	"github.com/milk9111/featherwake/gameerr"
	"github.com/milk9111/featherwake/levels"
	"github.com/milk9111/featherwake/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const frameMS = 16

// clipSource serves square 64px clips for any name. Objects get enough
// frames for every object code.
type clipSource struct {
	missing string
}

func (s clipSource) Clip(name string) (asset.Clip, error) {
	if name == s.missing {
		return asset.Clip{}, errors.New("no such clip")
	}
	n := 4
	if name == "objects" {
		n = 21
	}
	frames := make([]asset.Frame, n)
	for i := range frames {
		frames[i] = asset.Frame{W: 64, H: 64}
	}
	return asset.Clip{Name: name, Frames: frames}, nil
}

type fixedRoller int

func (f fixedRoller) Roll(size int) (int, error) {
	if int(f) > size {
		return size, nil
	}
	return int(f), nil
}

type cell struct{ row, col, code int }

func grid(cells ...cell) levels.Grid {
	g := make(levels.Grid, 6)
	for r := range g {
		g[r] = make([]int, 12)
		for c := range g[r] {
			g[r][c] = levels.Empty
		}
	}
	for _, c := range cells {
		g[c.row][c.col] = c.code
	}
	return g
}

type fixture struct {
	boundary, grass, objects, entities []cell

	cfg     *config.Config
	table   *content.Table
	src     asset.Source
	metrics *metrics.Collector
}

func (f fixture) options(clk clock.Clock) Options {
	if f.entities == nil {
		f.entities = []cell{{1, 1, 394}}
	}
	src := f.src
	if src == nil {
		src = clipSource{}
	}
	return Options{
		Config:  f.cfg,
		Content: f.table,
		Layout: &levels.Layout{
			Boundary: grid(f.boundary...),
			Grass:    grid(f.grass...),
			Objects:  grid(f.objects...),
			Entities: grid(f.entities...),
		},
		Assets:  src,
		Clock:   clk,
		Roller:  fixedRoller(2),
		Metrics: f.metrics,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func build(t *testing.T, f fixture) (*World, *clock.Manual) {
	t.Helper()
	clk := clock.NewManual(0)
	w, err := Build(f.options(clk))
	require.NoError(t, err)
	require.NoError(t, w.CheckInvariants())
	return w, clk
}

// step advances the clock one frame, updates and checks invariants.
func step(t *testing.T, w *World, clk *clock.Manual, in actor.Input) {
	t.Helper()
	clk.Advance(frameMS)
	require.NoError(t, w.Update(in))
	require.NoError(t, w.CheckInvariants())
}

func particlesWithClip(w *World, clip string) int {
	n := 0
	for _, e := range w.Particles() {
		if w.Particle(e).Clip() == clip {
			n++
		}
	}
	return n
}

func TestBuildSetsMembership(t *testing.T) {
	w, _ := build(t, fixture{
		boundary: []cell{{0, 0, 395}},
		grass:    []cell{{3, 3, 0}},
		objects:  []cell{{4, 6, 5}},
		entities: []cell{{1, 1, 394}, {2, 8, 393}, {4, 10, 392}},
	})

	kinds := map[Kind]int{}
	for _, e := range w.Obstacles().Members() {
		kinds[w.Kind(e)]++
	}
	assert.Equal(t, map[Kind]int{KindTile: 3}, kinds)
	assert.Equal(t, 3, w.Grid().Len())

	// grass and enemies are attackable, boundary tiles are invisible
	assert.Equal(t, 3, w.Attackable().Len())
	assert.Equal(t, 1+1+1+2+1, w.Visible().Len())
	assert.Zero(t, w.Attacks().Len())

	species := map[content.Species]int{}
	for _, e := range w.Enemies() {
		species[w.Enemy(e).Species()]++
	}
	assert.Equal(t, map[content.Species]int{content.Squid: 1, content.Raccoon: 1}, species)

	for _, e := range w.Obstacles().Members() {
		tile, ok := w.Tile(e)
		require.True(t, ok)
		if tile.Kind == TileObject {
			assert.Equal(t, 5, tile.Frame)
			assert.Equal(t, 4*64.0-64, tile.Body.Rect.Y, "objects stand one tile higher")
		}
	}

	assert.Equal(t, cp.Vector{X: 96, Y: 96}, w.Player().Center())
}

func TestBuildRejectsBadLayouts(t *testing.T) {
	cases := []struct {
		name string
		f    fixture
	}{
		{"unknown_spawn", fixture{entities: []cell{{1, 1, 394}, {2, 2, 7}}}},
		{"no_player", fixture{entities: []cell{{2, 2, 393}}}},
		{"two_players", fixture{entities: []cell{{1, 1, 394}, {2, 2, 394}}}},
		{"object_out_of_range", fixture{objects: []cell{{3, 3, 21}}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Build(c.f.options(clock.NewManual(0)))
			require.Error(t, err)
			assert.True(t, gameerr.IsConfiguration(err), "%v", err)
		})
	}
}

func TestBuildMissingAssetAborts(t *testing.T) {
	for _, name := range []string{"grass", "squid_attack", "heal", "mural_after", "weapon_axe"} {
		t.Run(name, func(t *testing.T) {
			_, err := Build(fixture{src: clipSource{missing: name}}.options(clock.NewManual(0)))
			require.Error(t, err)
			assert.True(t, gameerr.IsAssetMissing(err), "%v", err)
		})
	}
}

func TestBuildLoadsEachClipOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mock.NewMockSource(ctrl)
	src.EXPECT().Clip(gomock.Not("squid_idle")).DoAndReturn(clipSource{}.Clip).AnyTimes()
	src.EXPECT().Clip("squid_idle").DoAndReturn(clipSource{}.Clip).Times(1)

	_, _ = build(t, fixture{src: src, entities: []cell{{1, 1, 394}, {2, 5, 393}, {3, 5, 393}}})
}

func TestBuildDefaultLevel(t *testing.T) {
	layout, err := levels.LoadDefault()
	require.NoError(t, err)

	w, err := Build(Options{
		Layout: layout,
		Assets: clipSource{},
		Clock:  clock.NewManual(0),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	require.NoError(t, w.CheckInvariants())
	assert.Len(t, w.Enemies(), 7)
	assert.True(t, w.Visible().Contains(w.Mural()))
}

func TestGrassCutSpawnsLeaves(t *testing.T) {
	col := metrics.New()
	w, clk := build(t, fixture{grass: []cell{{1, 2, 0}}, metrics: col})
	grass := w.Attackable().Members()[0]

	// walk into the grass to face it; it blocks the player
	step(t, w, clk, actor.Input{Right: true})
	require.Equal(t, actor.FacingRight, w.Player().Facing())
	assert.Equal(t, 128.0, w.Player().Body.Hitbox.Right())

	step(t, w, clk, actor.Input{Attack: true})

	assert.False(t, w.Alive(grass))
	for _, g := range []*ecs.Group{w.Visible(), w.Obstacles(), w.Attackable(), w.Attacks()} {
		assert.False(t, g.Contains(grass), g.Name())
	}
	assert.False(t, w.Grid().Has(uint64(grass)))

	leaves := w.Particles()
	assert.Len(t, leaves, 4)
	for _, e := range leaves {
		p := w.Particle(e)
		assert.Contains(t, effect.LeafClips, p.Clip())
		assert.Equal(t, cp.Vector{X: 160, Y: 32}, p.Rect.Center())
	}

	// the player can now walk through where the grass stood
	step(t, w, clk, actor.Input{Right: true})
	assert.Greater(t, w.Player().Body.Hitbox.Right(), 128.0)
}

func TestLeafCountRange(t *testing.T) {
	for face := 1; face <= 4; face++ {
		f := fixture{grass: []cell{{1, 2, 0}}}
		opts := f.options(clock.NewManual(0))
		opts.Roller = fixedRoller(face)
		w, err := Build(opts)
		require.NoError(t, err)
		clk := opts.Clock.(*clock.Manual)

		step(t, w, clk, actor.Input{Right: true})
		step(t, w, clk, actor.Input{Attack: true})
		assert.Len(t, w.Particles(), 2+face)
	}
}

func TestEnemyDiesOnceAfterTwoHits(t *testing.T) {
	col := metrics.New()
	w, clk := build(t, fixture{entities: []cell{{1, 1, 394}, {1, 9, 393}}, metrics: col})
	e := w.Enemies()[0]
	en := w.Enemy(e)
	require.Equal(t, 50.0, en.Health.Current)

	w.Spawn(effect.ClipFlame, en.Center(), 30)
	step(t, w, clk, actor.Input{})
	assert.Equal(t, 20.0, en.Health.Current)
	assert.Equal(t, ai.Idle, en.Status())

	// same spawn never lands twice, and a new one inside the window is refused
	w.Spawn(effect.ClipFlame, en.Center(), 30)
	step(t, w, clk, actor.Input{})
	assert.Equal(t, 20.0, en.Health.Current)

	clk.Advance(300)
	step(t, w, clk, actor.Input{})
	w.Spawn(effect.ClipFlame, en.Center(), 30)
	step(t, w, clk, actor.Input{})

	assert.Equal(t, -10.0, en.Health.Current)
	assert.True(t, en.Dead())
	assert.False(t, w.Alive(e))
	assert.Empty(t, w.Enemies())
	for _, g := range []*ecs.Group{w.Visible(), w.Obstacles(), w.Attackable(), w.Attacks()} {
		assert.False(t, g.Contains(e), g.Name())
	}
	assert.Equal(t, 1, particlesWithClip(w, "squid"))

	w.Spawn(effect.ClipFlame, en.Center(), 30)
	step(t, w, clk, actor.Input{})
	assert.Equal(t, 1, particlesWithClip(w, "squid"))
}

func TestWeaponDamagesEachTargetOncePerSwing(t *testing.T) {
	table, err := content.Parse([]byte("species:\n" +
		"  - {name: squid, health: 500, attack_kind: slash, death_effect: squid, attack_radius: 0, notice_radius: 0, invincibility: 100}\n"))
	require.NoError(t, err)
	w, clk := build(t, fixture{table: table, entities: []cell{{1, 1, 394}, {1, 2, 393}}})
	en := w.Enemy(w.Enemies()[0])

	step(t, w, clk, actor.Input{Right: true})
	before := en.Health.Current
	for i := 0; i < 10; i++ {
		step(t, w, clk, actor.Input{Attack: true})
	}
	assert.Equal(t, before-25, en.Health.Current)
}

func TestSwingKeepsItsWeaponAcrossSwitch(t *testing.T) {
	w, clk := build(t, fixture{})
	require.Equal(t, content.Knife, w.Player().Weapon())

	step(t, w, clk, actor.Input{Attack: true})
	swing := w.attack
	require.True(t, w.Alive(swing))

	step(t, w, clk, actor.Input{SwitchWeapon: true})
	require.Equal(t, content.Axe, w.Player().Weapon())
	require.Equal(t, swing, w.attack)

	_, dmg, _, ok := w.attackInfo(swing)
	require.True(t, ok)
	assert.Equal(t, w.Player().DamageWith(content.Knife), dmg)
	assert.NotEqual(t, w.Player().WeaponDamage(), dmg)
}

func TestNewSwingTracksPlayerMove(t *testing.T) {
	w, clk := build(t, fixture{})
	start := w.Player().Center()

	step(t, w, clk, actor.Input{Attack: true, Right: true})
	moved := w.Player().Center()
	require.Greater(t, moved.X, start.X)

	clip, err := w.cache.Get(effect.WeaponClip(content.Knife))
	require.NoError(t, err)
	want := effect.NewWeapon(content.Knife, clip, moved, w.Player().Facing()).Rect
	assert.Equal(t, want, w.Weapon(w.attack).Rect)
}

func TestPlayerDamageGate(t *testing.T) {
	w, clk := build(t, fixture{entities: []cell{{1, 1, 394}, {1, 2, 393}}})

	step(t, w, clk, actor.Input{})
	assert.Equal(t, 30.0, w.Player().Health.Current, "adjacent squid strikes on entering attack")
	assert.Equal(t, 1, particlesWithClip(w, "slash"))

	w.damagePlayer(20, "slash")
	assert.Equal(t, 30.0, w.Player().Health.Current)
	assert.Equal(t, 1, particlesWithClip(w, "slash"))

	clk.Advance(500)
	w.now = clk.Ticks()
	w.Player().Update(actor.Input{}, w.now, w.grid)
	w.damagePlayer(20, "slash")
	assert.Equal(t, 10.0, w.Player().Health.Current)
}

func TestPlayerDefeated(t *testing.T) {
	w, clk := build(t, fixture{entities: []cell{{1, 1, 394}, {1, 2, 392}}})
	step(t, w, clk, actor.Input{})
	assert.True(t, w.Defeated())
	assert.Equal(t, 0.0, w.Player().Health.Current)
	assert.True(t, w.HUD().Defeated)
}

func TestHealThroughInput(t *testing.T) {
	col := metrics.New()
	w, clk := build(t, fixture{metrics: col})

	step(t, w, clk, actor.Input{SwitchSpell: true})
	require.Equal(t, content.Heal, w.Player().Spell())
	energy := w.Player().Energy.Current

	step(t, w, clk, actor.Input{Cast: true})
	assert.Equal(t, 74.0, w.Player().Health.Current)
	assert.InDelta(t, energy-10+0.04, w.Player().Energy.Current, 1e-9)
	assert.Equal(t, 1, particlesWithClip(w, effect.ClipAura))
	assert.Equal(t, 1, particlesWithClip(w, effect.ClipHeal))
}

func TestFlameWithoutEnergy(t *testing.T) {
	w, clk := build(t, fixture{})
	w.Player().Energy.Set(5)

	step(t, w, clk, actor.Input{Cast: true})
	assert.InDelta(t, 5.04, w.Player().Energy.Current, 1e-9)
	assert.Zero(t, particlesWithClip(w, effect.ClipFlame))
	assert.Zero(t, w.Attacks().Len())
}

func TestFlameJoinsAttacks(t *testing.T) {
	w, clk := build(t, fixture{})
	step(t, w, clk, actor.Input{Cast: true})
	assert.Equal(t, effect.FlameBursts, particlesWithClip(w, effect.ClipFlame))
	assert.Equal(t, effect.FlameBursts, w.Attacks().Len())
}

func TestAttackChecksOncePerFrame(t *testing.T) {
	w, clk := build(t, fixture{entities: []cell{{1, 1, 394}, {4, 9, 393}, {4, 10, 393}}})
	w.Spawn(effect.ClipFlame, cp.Vector{X: 600, Y: 300}, 1)
	w.Spawn(effect.ClipFlame, cp.Vector{X: 650, Y: 300}, 1)

	step(t, w, clk, actor.Input{Attack: true})
	assert.Equal(t, 3, w.LastFrame().AttackChecks)

	step(t, w, clk, actor.Input{})
	assert.Equal(t, 3, w.LastFrame().AttackChecks)
}

func TestWeaponLifetime(t *testing.T) {
	w, clk := build(t, fixture{})
	step(t, w, clk, actor.Input{Attack: true})
	wp := w.CurrentAttack()
	require.True(t, wp.Valid())
	assert.True(t, w.Attacks().Contains(wp))

	for i := 0; i < 40; i++ {
		step(t, w, clk, actor.Input{})
	}
	assert.False(t, w.Alive(wp))
	assert.False(t, w.CurrentAttack().Valid())
	assert.Zero(t, w.Attacks().Len())
}

func TestWorldEventFiresOnce(t *testing.T) {
	cfg := config.Default()
	cfg.Event.After = time.Second
	w, clk := build(t, fixture{cfg: cfg})
	first := w.Mural()

	clk.Set(1000 - frameMS - 1)
	step(t, w, clk, actor.Input{})
	assert.False(t, w.EventFired())

	step(t, w, clk, actor.Input{})
	require.True(t, w.EventFired())
	assert.False(t, w.Alive(first))

	mural, ok := w.ScenerySprite(w.Mural())
	require.True(t, ok)
	assert.Equal(t, "mural_after", mural.Clip)
	assert.Equal(t, cp.Vector{X: 2873, Y: 2709}, cp.Vector{X: mural.Rect.X, Y: mural.Rect.Y})

	second := w.Mural()
	clk.Advance(10_000)
	step(t, w, clk, actor.Input{})
	assert.Equal(t, second, w.Mural())
	assert.True(t, w.Alive(second))
}

func TestDrawListOrder(t *testing.T) {
	w, _ := build(t, fixture{
		grass:    []cell{{4, 4, 0}, {0, 4, 0}},
		entities: []cell{{1, 1, 394}},
	})
	dl := w.DrawList()

	assert.Equal(t, cp.Vector{X: 96 - 640, Y: 96 - 360}, dl.Offset)
	assert.Equal(t, "floor", dl.Floor.Clip)
	assert.Equal(t, 640-96.0, dl.Floor.X)

	require.NotEmpty(t, dl.Sprites)
	for i := 1; i < len(dl.Sprites); i++ {
		assert.LessOrEqual(t, dl.Sprites[i-1].depth, dl.Sprites[i].depth)
	}
	var clips []string
	for _, s := range dl.Sprites {
		clips = append(clips, s.Clip)
	}
	assert.Equal(t, []string{"grass", "player_down", "grass", "mural_before"}, clips)

	player := dl.Sprites[1]
	assert.Equal(t, 640-32.0, player.X)
	assert.Equal(t, 360-32.0, player.Y)
}

func TestHUD(t *testing.T) {
	w, clk := build(t, fixture{})
	hud := w.HUD()
	assert.Equal(t, 50.0, hud.Health)
	assert.Equal(t, 100.0, hud.MaxHealth)
	assert.Equal(t, 60.0, hud.MaxEnergy)
	assert.False(t, hud.WeaponSwitched)

	step(t, w, clk, actor.Input{SwitchWeapon: true})
	hud = w.HUD()
	assert.Equal(t, content.Axe, hud.Weapon)
	assert.True(t, hud.WeaponSwitched)
	assert.False(t, hud.SpellSwitched)
}

func TestSetContentAffectsWeaponLookups(t *testing.T) {
	w, _ := build(t, fixture{})
	table, err := content.Parse([]byte("weapons:\n  - {name: knife, cooldown: 100, damage: 90}\n"))
	require.NoError(t, err)

	w.SetContent(table)
	assert.Equal(t, 100.0, w.Player().WeaponDamage())
}

func TestInvariantsHoldOverPlay(t *testing.T) {
	layout, err := levels.LoadDefault()
	require.NoError(t, err)
	clk := clock.NewManual(0)
	w, err := Build(Options{
		Layout: layout,
		Assets: clipSource{},
		Clock:  clk,
		Roller: fixedRoller(3),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	inputs := []actor.Input{
		{Right: true}, {Right: true, Down: true}, {Attack: true}, {Down: true},
		{Cast: true}, {Left: true}, {SwitchSpell: true}, {Up: true, Attack: true},
	}
	for i := 0; i < 2000; i++ {
		step(t, w, clk, inputs[(i/25)%len(inputs)])
	}
}

func TestCheckInvariantsCatchesDanglingMembership(t *testing.T) {
	w, _ := build(t, fixture{})
	ghost := w.reg.Create()
	w.reg.Destroy(ghost)
	w.visible.Add(ghost)

	err := w.CheckInvariants()
	require.Error(t, err)
	assert.True(t, gameerr.IsInvariant(err))
}
