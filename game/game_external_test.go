package game_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"neontanks/game"
	"neontanks/game/mocks"
)

func TestGame_PublishesOncePerTick(t *testing.T) {
	ctrl := gomock.NewController(t)
	renderer := mocks.NewMockRenderer(ctrl)
	hud := mocks.NewMockHUD(ctrl)

	var statuses []game.HUDStatus
	gomock.InOrder(
		renderer.EXPECT().Render(gomock.Any()).Do(func(s game.Snapshot) {
			assert.Equal(t, game.PhaseActive, s.Phase)
			assert.True(t, s.HasPlayer)
		}),
		hud.EXPECT().Update(gomock.Any()).Do(func(st game.HUDStatus) {
			statuses = append(statuses, st)
		}),
	)

	cfg := game.DefaultConfig()
	cfg.Seed = 9
	g, err := game.NewGame(cfg, game.WithRenderer(renderer), game.WithHUD(hud))
	require.NoError(t, err)
	require.NoError(t, g.Start())

	renderer.EXPECT().Render(gomock.Any()).Times(3)
	hud.EXPECT().Update(gomock.Any()).Times(3).Do(func(st game.HUDStatus) {
		statuses = append(statuses, st)
	})
	for i := 1; i <= 3; i++ {
		g.Tick(game.Input{}, game.Frame{Now: time.Duration(i) * 16 * time.Millisecond, Delta: 16 * time.Millisecond})
	}

	require.Len(t, statuses, 4)
	for _, st := range statuses {
		assert.Equal(t, 100, st.HealthPercent)
		assert.Equal(t, game.UnlimitedAmmo, st.Ammo)
	}
}

func TestGame_IdleDoesNotPublish(t *testing.T) {
	ctrl := gomock.NewController(t)
	renderer := mocks.NewMockRenderer(ctrl)
	hud := mocks.NewMockHUD(ctrl)

	g, err := game.NewGame(game.DefaultConfig(), game.WithRenderer(renderer), game.WithHUD(hud))
	require.NoError(t, err)

	g.Tick(game.Input{Fire: true}, game.Frame{Now: time.Second, Delta: time.Second})
}

func TestGame_NotifiesListeners(t *testing.T) {
	ctrl := gomock.NewController(t)
	listener := mocks.NewMockListener(ctrl)

	cfg := game.DefaultConfig()
	cfg.Seed = 3
	g, err := game.NewGame(cfg, game.WithListener(listener))
	require.NoError(t, err)

	var events []game.Event
	listener.EXPECT().HandleEvent(gomock.Any()).AnyTimes().Do(func(ev game.Event) {
		events = append(events, ev)
	})

	require.NoError(t, g.Start())
	g.Tick(game.Input{AimX: 900, AimY: 384, Fire: true}, game.Frame{Now: 16 * time.Millisecond, Delta: 16 * time.Millisecond})

	require.Len(t, events, 2)
	assert.Equal(t, game.EventGameStarted, events[0].Kind)
	assert.Equal(t, game.EventShot, events[1].Kind)
	assert.Equal(t, game.OwnerPlayer, events[1].Owner)
	assert.Equal(t, g.Session(), events[1].Session)
	assert.Equal(t, 542.0, events[1].X)
}
