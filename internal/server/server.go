package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"scifoot/internal/domain"
	"scifoot/internal/match"
	"scifoot/internal/service"

	"connectrpc.com/connect"
	"github.com/rs/zerolog"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	MatchServicePath = "/scifoot.v1.MatchService/"

	ListPlayersProcedure        = MatchServicePath + "ListPlayers"
	ListPowerUpsProcedure       = MatchServicePath + "ListPowerUps"
	SimulateQuickMatchProcedure = MatchServicePath + "SimulateQuickMatch"
	SimulateBatchProcedure      = MatchServicePath + "SimulateBatch"
	GetStandingsProcedure       = MatchServicePath + "GetStandings"
	ListMatchesProcedure        = MatchServicePath + "ListMatches"
	GetMatchProcedure           = MatchServicePath + "GetMatch"
)

type (
	request  = connect.Request[structpb.Struct]
	response = connect.Response[structpb.Struct]
)

type MatchServer struct {
	catalogSvc   *service.CatalogService
	matchSvc     *service.MatchService
	standingsSvc *service.StandingsService
	logger       zerolog.Logger
}

func NewMatchServer(catalogSvc *service.CatalogService, matchSvc *service.MatchService, standingsSvc *service.StandingsService, logger zerolog.Logger) *MatchServer {
	return &MatchServer{catalogSvc: catalogSvc, matchSvc: matchSvc, standingsSvc: standingsSvc, logger: logger}
}

// Handler mounts every procedure and returns the path prefix to serve it on.
func (s *MatchServer) Handler(opts ...connect.HandlerOption) (string, http.Handler) {
	mux := http.NewServeMux()
	for path, fn := range map[string]func(context.Context, *request) (*response, error){
		ListPlayersProcedure:        s.ListPlayers,
		ListPowerUpsProcedure:       s.ListPowerUps,
		SimulateQuickMatchProcedure: s.SimulateQuickMatch,
		SimulateBatchProcedure:      s.SimulateBatch,
		GetStandingsProcedure:       s.GetStandings,
		ListMatchesProcedure:        s.ListMatches,
		GetMatchProcedure:           s.GetMatch,
	} {
		mux.Handle(path, connect.NewUnaryHandler(path, fn, opts...))
	}
	return MatchServicePath, mux
}

func (s *MatchServer) ListPlayers(ctx context.Context, req *request) (*response, error) {
	return reply(map[string]any{"players": s.catalogSvc.ListPlayers()})
}

func (s *MatchServer) ListPowerUps(ctx context.Context, req *request) (*response, error) {
	return reply(map[string]any{"power_ups": s.catalogSvc.ListPowerUps()})
}

func (s *MatchServer) SimulateQuickMatch(ctx context.Context, req *request) (*response, error) {
	seed, err := int64Field(req.Msg, "seed")
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	res, err := s.matchSvc.SimulateQuick(ctx, seed)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("quick match failed")
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	events := make([]eventView, len(res.Events))
	for i, ev := range res.Events {
		events[i] = newEventView(ev)
	}
	return reply(struct {
		*service.QuickResult
		Events []eventView `json:"events"`
	}{res, events})
}

func (s *MatchServer) SimulateBatch(ctx context.Context, req *request) (*response, error) {
	seed, err := int64Field(req.Msg, "seed")
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	f := req.Msg.GetFields()
	res, err := s.matchSvc.SimulateBatch(ctx, service.BatchRequest{
		Matches:       int(f["matches"].GetNumberValue()),
		HomeRating:    f["home_rating"].GetNumberValue(),
		AwayRating:    f["away_rating"].GetNumberValue(),
		HomeChemistry: numberOr(f, "home_chemistry", 0.5),
		AwayChemistry: numberOr(f, "away_chemistry", 0.5),
		Seed:          seed,
	})
	if errors.Is(err, service.ErrInvalidBatch) {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	return reply(res)
}

func (s *MatchServer) GetStandings(ctx context.Context, req *request) (*response, error) {
	limit := int(req.Msg.GetFields()["limit"].GetNumberValue())
	table, err := s.standingsSvc.Get(ctx, limit)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	rows := make([]standingView, len(table))
	for i, st := range table {
		rows[i] = standingView{
			TeamID:         st.TeamID,
			Name:           st.Name,
			Played:         st.Played(),
			Wins:           st.Wins,
			Draws:          st.Draws,
			Losses:         st.Losses,
			GoalsFor:       st.GoalsFor,
			GoalsAgainst:   st.GoalsAgainst,
			GoalDifference: st.GoalDifference(),
			Points:         st.Points(),
		}
	}
	return reply(map[string]any{"standings": rows})
}

func (s *MatchServer) ListMatches(ctx context.Context, req *request) (*response, error) {
	limit := int(req.Msg.GetFields()["limit"].GetNumberValue())
	page, err := s.matchSvc.RecentMatches(ctx, limit)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	matches := make([]matchView, len(page.Matches))
	for i := range page.Matches {
		matches[i] = newMatchView(&page.Matches[i])
	}
	return reply(map[string]any{"total": page.Total, "matches": matches})
}

func (s *MatchServer) GetMatch(ctx context.Context, req *request) (*response, error) {
	id := req.Msg.GetFields()["match_id"].GetStringValue()
	if id == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("match_id is required"))
	}

	m, err := s.matchSvc.GetMatch(ctx, id)
	if errors.Is(err, service.ErrMatchNotFound) {
		return nil, connect.NewError(connect.CodeNotFound, err)
	}
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	return reply(newMatchView(m))
}

type matchView struct {
	ID              string          `json:"match_id"`
	HomeTeam        string          `json:"home_team"`
	AwayTeam        string          `json:"away_team"`
	HomeScore       int             `json:"home_score"`
	AwayScore       int             `json:"away_score"`
	DurationSeconds float64         `json:"duration_seconds"`
	Seed            int64           `json:"seed,string"`
	FinishedAt      string          `json:"finished_at"`
	Events          []archivedEvent `json:"events,omitempty"`
}

type archivedEvent struct {
	Seq      int    `json:"seq"`
	Kind     string `json:"kind"`
	Side     string `json:"side"`
	Minute   int    `json:"minute"`
	PlayerID int    `json:"player_id,omitempty"`
	AssistID int    `json:"assist_id,omitempty"`
	Detail   string `json:"detail,omitempty"`
}

func newMatchView(m *domain.MatchRecord) matchView {
	v := matchView{
		ID:              m.ID,
		HomeTeam:        m.HomeTeam,
		AwayTeam:        m.AwayTeam,
		HomeScore:       m.HomeScore,
		AwayScore:       m.AwayScore,
		DurationSeconds: m.DurationSeconds,
		Seed:            m.Seed,
		FinishedAt:      m.FinishedAt.UTC().Format(time.RFC3339),
	}
	for _, ev := range m.Events {
		v.Events = append(v.Events, archivedEvent(ev))
	}
	return v
}

type eventView struct {
	Kind     string  `json:"kind"`
	Side     string  `json:"side"`
	Minute   int     `json:"minute"`
	PlayerID int     `json:"player_id,omitempty"`
	AssistID int     `json:"assist_id,omitempty"`
	Detail   string  `json:"detail,omitempty"`
	Bonus    float64 `json:"bonus,omitempty"`
	Summary  string  `json:"summary"`
}

func newEventView(ev match.Event) eventView {
	return eventView{
		Kind:     ev.Kind.String(),
		Side:     ev.Side.String(),
		Minute:   ev.Minute,
		PlayerID: ev.PlayerID,
		AssistID: ev.AssistID,
		Detail:   ev.Detail,
		Bonus:    ev.Bonus,
		Summary:  ev.Summary(),
	}
}

type standingView struct {
	TeamID         int    `json:"team_id"`
	Name           string `json:"name"`
	Played         int    `json:"played"`
	Wins           int    `json:"wins"`
	Draws          int    `json:"draws"`
	Losses         int    `json:"losses"`
	GoalsFor       int    `json:"goals_for"`
	GoalsAgainst   int    `json:"goals_against"`
	GoalDifference int    `json:"goal_difference"`
	Points         int    `json:"points"`
}

// reply converts v to a Struct through its JSON form.
func reply(v any) (*response, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, fmt.Errorf("failed to encode response: %w", err))
	}
	msg := &structpb.Struct{}
	if err := protojson.Unmarshal(b, msg); err != nil {
		return nil, connect.NewError(connect.CodeInternal, fmt.Errorf("failed to build response: %w", err))
	}
	return connect.NewResponse(msg), nil
}

// int64Field reads an integer sent either as a JSON number or a decimal string.
func int64Field(msg *structpb.Struct, key string) (int64, error) {
	v, ok := msg.GetFields()[key]
	if !ok {
		return 0, nil
	}
	switch k := v.GetKind().(type) {
	case *structpb.Value_NumberValue:
		return int64(k.NumberValue), nil
	case *structpb.Value_StringValue:
		n, err := strconv.ParseInt(k.StringValue, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return n, nil
	case *structpb.Value_NullValue:
		return 0, nil
	}
	return 0, fmt.Errorf("%s: expected a number or a string", key)
}

func numberOr(fields map[string]*structpb.Value, key string, fallback float64) float64 {
	if v, ok := fields[key]; ok {
		if n, ok := v.GetKind().(*structpb.Value_NumberValue); ok {
			return n.NumberValue
		}
	}
	return fallback
}
