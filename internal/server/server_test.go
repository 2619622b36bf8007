package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"scifoot/internal/config"
	"scifoot/internal/constants"
	"scifoot/internal/database"
	"scifoot/internal/repository"
	"scifoot/internal/service"

	"connectrpc.com/connect"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/structpb"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "server.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{
		GoalBaseRate:   constants.GoalBaseRate,
		SimSpeed:       constants.SimSpeed,
		SimTick:        constants.SimTick,
		InventorySlots: constants.InventorySlots,
		SimWorkers:     2,
	}
	matchRepo := repository.NewMatchRepository(db, zerolog.Nop())
	teamRepo := repository.NewTeamRecordRepository(db, zerolog.Nop())
	srv := NewMatchServer(
		service.NewCatalogService(zerolog.Nop()),
		service.NewMatchService(cfg, matchRepo, teamRepo, zerolog.Nop()),
		service.NewStandingsService(teamRepo, zerolog.Nop()),
		zerolog.Nop(),
	)

	path, handler := srv.Handler()
	mux := http.NewServeMux()
	mux.Handle(path, handler)
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func call(t *testing.T, ts *httptest.Server, procedure string, body map[string]any) (*structpb.Struct, error) {
	t.Helper()
	msg, err := structpb.NewStruct(body)
	require.NoError(t, err)
	client := connect.NewClient[structpb.Struct, structpb.Struct](ts.Client(), ts.URL+procedure, connect.WithProtoJSON())
	res, err := client.CallUnary(context.Background(), connect.NewRequest(msg))
	if err != nil {
		return nil, err
	}
	return res.Msg, nil
}

func TestListPlayers(t *testing.T) {
	ts := newTestServer(t)
	msg, err := call(t, ts, ListPlayersProcedure, nil)
	require.NoError(t, err)

	players := msg.GetFields()["players"].GetListValue().GetValues()
	require.Len(t, players, 15)
	first := players[0].GetStructValue().GetFields()
	assert.Equal(t, "Roland", first["name"].GetStringValue())
	assert.Equal(t, float64(1), first["id"].GetNumberValue())
	assert.NotNil(t, first["effective"].GetStructValue())
}

func TestListPowerUps(t *testing.T) {
	ts := newTestServer(t)
	msg, err := call(t, ts, ListPowerUpsProcedure, nil)
	require.NoError(t, err)
	assert.Len(t, msg.GetFields()["power_ups"].GetListValue().GetValues(), 15)
}

func TestSimulateQuickMatchAndStandings(t *testing.T) {
	ts := newTestServer(t)
	msg, err := call(t, ts, SimulateQuickMatchProcedure, map[string]any{"seed": "9007199254740993"})
	require.NoError(t, err)

	f := msg.GetFields()
	assert.Equal(t, "9007199254740993", f["seed"].GetStringValue())
	assert.Equal(t, "20:00", f["clock"].GetStringValue())
	assert.NotEmpty(t, f["match_id"].GetStringValue())
	events := f["events"].GetListValue().GetValues()
	assert.NotEmpty(t, events)
	for _, ev := range events {
		assert.NotEmpty(t, ev.GetStructValue().GetFields()["summary"].GetStringValue())
	}

	msg, err = call(t, ts, GetStandingsProcedure, map[string]any{"limit": 10})
	require.NoError(t, err)
	rows := msg.GetFields()["standings"].GetListValue().GetValues()
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, float64(1), row.GetStructValue().GetFields()["played"].GetNumberValue())
	}
}

func TestSimulateBatch(t *testing.T) {
	ts := newTestServer(t)
	msg, err := call(t, ts, SimulateBatchProcedure, map[string]any{
		"matches":     50,
		"home_rating": 80,
		"away_rating": 60,
		"seed":        3,
	})
	require.NoError(t, err)
	f := msg.GetFields()
	total := f["home_wins"].GetNumberValue() + f["draws"].GetNumberValue() + f["away_wins"].GetNumberValue()
	assert.Equal(t, float64(50), total)

	_, err = call(t, ts, SimulateBatchProcedure, map[string]any{"matches": 0})
	require.Error(t, err)
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
}

func TestInvalidSeed(t *testing.T) {
	ts := newTestServer(t)
	_, err := call(t, ts, SimulateQuickMatchProcedure, map[string]any{"seed": "abc"})
	require.Error(t, err)
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
}

func TestMatchArchive(t *testing.T) {
	ts := newTestServer(t)
	msg, err := call(t, ts, SimulateQuickMatchProcedure, map[string]any{"seed": 21})
	require.NoError(t, err)
	id := msg.GetFields()["match_id"].GetStringValue()
	eventCount := len(msg.GetFields()["events"].GetListValue().GetValues())

	msg, err = call(t, ts, ListMatchesProcedure, nil)
	require.NoError(t, err)
	assert.Equal(t, float64(1), msg.GetFields()["total"].GetNumberValue())
	matches := msg.GetFields()["matches"].GetListValue().GetValues()
	require.Len(t, matches, 1)
	assert.Equal(t, id, matches[0].GetStructValue().GetFields()["match_id"].GetStringValue())

	msg, err = call(t, ts, GetMatchProcedure, map[string]any{"match_id": id})
	require.NoError(t, err)
	assert.Equal(t, "21", msg.GetFields()["seed"].GetStringValue())
	assert.Len(t, msg.GetFields()["events"].GetListValue().GetValues(), eventCount)

	_, err = call(t, ts, GetMatchProcedure, map[string]any{"match_id": "missing"})
	require.Error(t, err)
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))

	_, err = call(t, ts, GetMatchProcedure, nil)
	require.Error(t, err)
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
}
