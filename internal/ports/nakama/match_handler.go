package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"math/rand"
	"strconv"
	"time"

	"hokm/internal/app"
	"hokm/internal/bot"
	"hokm/internal/config"
	"hokm/internal/domain"
	"hokm/internal/ports"

	"github.com/google/uuid"
	"github.com/heroiclabs/nakama-common/runtime"
)

// MatchState holds the authoritative runtime state for the Nakama match handler.
// Game state itself lives in the state store; this carries the room id, the
// wired services and the bot pacing timers.
type MatchState struct {
	RoomID    string                      `json:"room_id"`
	Tick      int64                       `json:"tick"`
	BetTier   string                      `json:"bet_tier"`
	Presences map[string]runtime.Presence `json:"-"` // UserId -> Presence for targeted messaging
	App       *app.Service                `json:"-"`
	Store     ports.StateStore            `json:"-"`
	Economy   ports.EconomyPort           `json:"-"`
	Bots      map[int]*bot.Agent          `json:"-"` // seat -> agent

	BotsEnabled       bool  `json:"bots_enabled"`
	BotMinDelay       int   `json:"bot_min_delay"`       // min seconds a bot waits before acting
	BotMaxDelay       int   `json:"bot_max_delay"`       // max seconds a bot waits before acting
	BotAutoFillDelay  int   `json:"bot_auto_fill_delay"` // seconds before a solo lobby starts with bots
	BotWaitUntil      int64 `json:"bot_wait_until"`      // tick when the pending bot action fires
	LastSoloHumanTick int64 `json:"last_solo_human_tick"`
}

// matchLabel is the JSON label quick match queries filter on.
type matchLabel struct {
	Open  int    `json:"open"`
	Game  string `json:"game"`
	Phase string `json:"phase"`
}

type chooseTrumpRequest struct {
	Trump string `json:"trump"`
}

type playCardRequest struct {
	Card domain.Card `json:"card"`
}

type kickPlayerRequest struct {
	Seat int `json:"seat"`
}

type gameErrorEvent struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// seatOf returns the seat index held by userID, or -1.
func seatOf(players [domain.NumSeats]domain.Player, userID string) int {
	for seat, p := range players {
		if p.Occupied() && p.ID == userID {
			return seat
		}
	}
	return -1
}

func connectedHumanCount(players [domain.NumSeats]domain.Player) int {
	count := 0
	for _, p := range players {
		if p.Kind == domain.PlayerHuman && p.Connected {
			count++
		}
	}
	return count
}

func openSeatCount(players [domain.NumSeats]domain.Player) int {
	count := 0
	for _, p := range players {
		if p.Kind == domain.PlayerEmpty {
			count++
		}
		if p.Kind == domain.PlayerHuman && !p.Connected {
			count++
		}
	}
	return count
}

// shouldTerminateNoHumans returns true when no connected human remains.
func shouldTerminateNoHumans(players [domain.NumSeats]domain.Player) bool {
	return connectedHumanCount(players) == 0
}

// NewMatch is the factory function registered with Nakama.
func NewMatch(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule) (runtime.Match, error) {
	return &matchHandler{}, nil
}

type matchHandler struct{}

// MatchInit is called when the match is created. It creates the room in
// the state store from the creation params.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	logger.Debug("MatchInit: Initializing match handler.")

	if err := config.LoadGameConfig("data/game_config.json"); err != nil {
		logger.Warn("MatchInit: Could not load game config: %v", err)
	}

	store := NewNakamaStateStore(nk)
	state := &MatchState{
		Tick:      time.Now().Unix(),
		Presences: make(map[string]runtime.Presence),
		Store:     store,
		App:       app.NewService(store, nil),
		Economy:   NewNakamaEconomyAdapter(nk),
		Bots:      make(map[int]*bot.Agent),
	}

	state.RoomID, _ = params["room_id"].(string)
	if state.RoomID == "" {
		state.RoomID = uuid.NewString()
	}
	state.BetTier, _ = params["tier"].(string)

	targetTricks := 0
	if v, ok := params["target_tricks"].(float64); ok {
		targetTricks = int(v)
	}
	if targetTricks <= 0 {
		targetTricks = config.GetTargetTricks()
	}
	trumpMode := domain.TrumpStandard
	if v, ok := params["trump_mode"].(string); ok && v != "" {
		trumpMode = domain.Trump(v)
	}

	room, err := state.App.CreateRoom(ctx, state.RoomID, targetTricks, trumpMode)
	if err != nil {
		logger.Error("MatchInit: Failed to create room %s: %v", state.RoomID, err)
		return nil, 0, ""
	}

	// Bot pacing from the runtime environment, with config fallbacks.
	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	state.BotsEnabled = env["hokm_bots_enabled"] != "false"
	state.BotMinDelay = envIntFrom(env, "hokm_bot_min_delay_sec", 1)
	state.BotMaxDelay = envIntFrom(env, "hokm_bot_max_delay_sec", 3)
	state.BotAutoFillDelay = envIntFrom(env, "hokm_bot_auto_fill_delay_sec", defaultAutoFillDelay())

	labelBytes, err := json.Marshal(matchLabel{
		Open:  domain.NumSeats,
		Game:  "hokm",
		Phase: string(room.Phase),
	})
	if err != nil {
		logger.Error("MatchInit: Failed to marshal label: %v", err)
		return nil, 0, ""
	}

	tickRate := 1
	return state, tickRate, string(labelBytes)
}

func envIntFrom(env map[string]string, key string, fallback int) int {
	raw, ok := env[key]
	if !ok || raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func defaultAutoFillDelay() int {
	if cfg := config.GetGameConfig(); cfg != nil && cfg.BotAutoFillDelaySeconds > 0 {
		return cfg.BotAutoFillDelaySeconds
	}
	return 5
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	snapshot, err := matchState.App.GetState(ctx, matchState.RoomID)
	if err != nil {
		logger.Error("MatchJoinAttempt: Failed to load room %s: %v", matchState.RoomID, err)
		return state, false, "room unavailable"
	}

	// Rejoining identities and reclaimable seats are always admitted.
	if seatOf(snapshot.Players, presence.GetUserId()) >= 0 {
		return state, true, ""
	}
	if openSeatCount(snapshot.Players) == 0 {
		return state, false, "Match full"
	}
	return state, true, ""
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		matchState.Presences[p.GetUserId()] = p

		seat, events, err := matchState.App.JoinRoom(ctx, matchState.RoomID, p.GetUserId(), p.GetUsername())
		if err != nil {
			logger.Warn("MatchJoin: User %s could not be seated: %v", p.GetUserId(), err)
			continue
		}
		logger.Debug("MatchJoin: User %s seated at %d.", p.GetUserId(), seat)
		mh.dispatchEvents(ctx, matchState, dispatcher, logger, events)
	}

	mh.updateLabel(ctx, matchState, dispatcher, logger)
	return matchState
}

// MatchLeave marks leaving humans disconnected so their seats can be
// reclaimed, and terminates the match once no connected human remains.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		delete(matchState.Presences, p.GetUserId())
		if err := matchState.App.MarkDisconnected(ctx, matchState.RoomID, p.GetUserId()); err != nil {
			logger.Warn("MatchLeave: Failed to mark %s disconnected: %v", p.GetUserId(), err)
		}
	}

	snapshot, err := matchState.App.GetState(ctx, matchState.RoomID)
	if err != nil {
		logger.Error("MatchLeave: Failed to load room %s: %v", matchState.RoomID, err)
		return matchState
	}
	if shouldTerminateNoHumans(snapshot.Players) {
		logger.Info("MatchLeave: Terminating match with no humans.")
		return nil
	}

	mh.updateLabel(ctx, matchState, dispatcher, logger)
	return matchState
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}

	matchState.Tick = tick

	for _, msg := range messages {
		switch msg.GetOpCode() {
		case OpStartDeal:
			mh.handleStartDeal(ctx, matchState, dispatcher, logger, msg)
		case OpChooseTrump:
			mh.handleChooseTrump(ctx, matchState, dispatcher, logger, msg)
		case OpPlayCard:
			mh.handlePlayCard(ctx, matchState, dispatcher, logger, msg)
		case OpKickPlayer:
			mh.handleKickPlayer(ctx, matchState, dispatcher, logger, msg)
		default:
			logger.Warn("MatchLoop: Unknown opcode received: %d", msg.GetOpCode())
		}
	}

	if matchState.BotsEnabled {
		mh.processBots(ctx, matchState, dispatcher, logger)
	}

	return matchState
}

// senderSeat resolves the message sender to a seat, or -1 with an error
// already sent back to the client.
func (mh *matchHandler) senderSeat(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) (int, *app.Snapshot) {
	snapshot, err := state.App.GetState(ctx, state.RoomID)
	if err != nil {
		logger.Error("senderSeat: Failed to load room %s: %v", state.RoomID, err)
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 500, "room unavailable")
		return -1, nil
	}
	seat := seatOf(snapshot.Players, msg.GetUserId())
	if seat < 0 {
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 403, "not seated")
		return -1, nil
	}
	return seat, snapshot
}

func (mh *matchHandler) handleStartDeal(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	seat, _ := mh.senderSeat(ctx, state, dispatcher, logger, msg)
	if seat < 0 {
		return
	}

	events, err := state.App.StartDeal(ctx, state.RoomID)
	if err != nil {
		logger.Warn("StartDeal: User %s (seat %d) failed: %v", msg.GetUserId(), seat, err)
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, err.Error())
		return
	}

	state.LastSoloHumanTick = 0
	state.BotWaitUntil = 0
	mh.dispatchEvents(ctx, state, dispatcher, logger, events)
	mh.updateLabel(ctx, state, dispatcher, logger)
	logger.Info("StartDeal: Deal started in room %s by seat %d.", state.RoomID, seat)
}

func (mh *matchHandler) handleChooseTrump(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	seat, snapshot := mh.senderSeat(ctx, state, dispatcher, logger, msg)
	if seat < 0 {
		return
	}

	var request chooseTrumpRequest
	if err := json.Unmarshal(msg.GetData(), &request); err != nil {
		logger.Warn("ChooseTrump: Invalid request from %s: %v", msg.GetUserId(), err)
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, "invalid request")
		return
	}

	if snapshot.Room.Phase != domain.PhaseChoosingHakim {
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, "trump already chosen")
		return
	}
	if seat != snapshot.Room.HakimSeat {
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 403, "only the hakim chooses trump")
		return
	}

	events, err := state.App.SetTrump(ctx, state.RoomID, domain.Trump(request.Trump))
	if err != nil {
		logger.Warn("ChooseTrump: User %s failed: %v", msg.GetUserId(), err)
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, err.Error())
		return
	}
	mh.dispatchEvents(ctx, state, dispatcher, logger, events)
	mh.updateLabel(ctx, state, dispatcher, logger)
}

func (mh *matchHandler) handlePlayCard(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	seat, _ := mh.senderSeat(ctx, state, dispatcher, logger, msg)
	if seat < 0 {
		return
	}

	var request playCardRequest
	if err := json.Unmarshal(msg.GetData(), &request); err != nil {
		logger.Warn("PlayCard: Invalid request from %s: %v", msg.GetUserId(), err)
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, "invalid request")
		return
	}

	outcome, events, err := state.App.PlayCard(ctx, state.RoomID, seat, request.Card)
	if err != nil {
		logger.Warn("PlayCard: User %s (seat %d) failed: %v", msg.GetUserId(), seat, err)
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, err.Error())
		return
	}

	mh.dispatchEvents(ctx, state, dispatcher, logger, events)
	if outcome.Finished {
		mh.settle(ctx, state, logger)
		mh.updateLabel(ctx, state, dispatcher, logger)
	}
}

func (mh *matchHandler) handleKickPlayer(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	seat, _ := mh.senderSeat(ctx, state, dispatcher, logger, msg)
	if seat < 0 {
		return
	}

	var request kickPlayerRequest
	if err := json.Unmarshal(msg.GetData(), &request); err != nil {
		logger.Warn("KickPlayer: Invalid request from %s: %v", msg.GetUserId(), err)
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, "invalid request")
		return
	}
	if request.Seat == seat {
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, "cannot kick yourself")
		return
	}

	events, err := state.App.KickPlayer(ctx, state.RoomID, request.Seat)
	if err != nil {
		logger.Warn("KickPlayer: User %s failed to kick seat %d: %v", msg.GetUserId(), request.Seat, err)
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, err.Error())
		return
	}
	state.Bots[request.Seat] = bot.NewAgent(request.Seat)
	mh.dispatchEvents(ctx, state, dispatcher, logger, events)
	mh.updateLabel(ctx, state, dispatcher, logger)
}

// processBots paces the automatic actions: starting a solo lobby after
// the auto-fill delay, the hakim's trump choice, and bot turns.
func (mh *matchHandler) processBots(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	snapshot, err := state.App.GetState(ctx, state.RoomID)
	if err != nil {
		logger.Error("processBots: Failed to load room %s: %v", state.RoomID, err)
		return
	}

	switch snapshot.Room.Phase {
	case domain.PhaseWaiting:
		// A lone human waits the auto-fill delay, then the deal starts
		// with bots in every empty seat.
		if connectedHumanCount(snapshot.Players) == 1 {
			if state.LastSoloHumanTick == 0 {
				state.LastSoloHumanTick = state.Tick
				logger.Debug("processBots: Solo human detected, starting auto-fill timer.")
				return
			}
			if state.Tick-state.LastSoloHumanTick >= int64(state.BotAutoFillDelay) {
				state.LastSoloHumanTick = 0
				events, err := state.App.StartDeal(ctx, state.RoomID)
				if err != nil {
					logger.Error("processBots: Auto-start failed: %v", err)
					return
				}
				logger.Info("processBots: Auto-started deal with bots in room %s.", state.RoomID)
				mh.dispatchEvents(ctx, state, dispatcher, logger, events)
				mh.updateLabel(ctx, state, dispatcher, logger)
			}
		} else {
			state.LastSoloHumanTick = 0
		}

	case domain.PhaseChoosingHakim:
		hakim := snapshot.Room.HakimSeat
		if hakim < 0 || !bot.IsBot(snapshot.Players[hakim].ID) {
			state.BotWaitUntil = 0
			return
		}
		if !mh.botReady(state, hakim, logger) {
			return
		}
		agent := mh.agentFor(state, hakim)
		trump := agent.ChooseTrump(snapshot.Hands[snapshot.Players[hakim].ID])
		events, err := state.App.SetTrump(ctx, state.RoomID, trump)
		if err != nil {
			logger.Error("processBots: Bot hakim failed to set trump: %v", err)
			return
		}
		logger.Debug("processBots: Bot hakim (seat %d) chose %s.", hakim, trump)
		mh.dispatchEvents(ctx, state, dispatcher, logger, events)
		mh.updateLabel(ctx, state, dispatcher, logger)

	case domain.PhasePlaying:
		turn := snapshot.Room.CurrentTurn
		if !bot.IsBot(snapshot.Players[turn].ID) {
			state.BotWaitUntil = 0
			return
		}
		if !mh.botReady(state, turn, logger) {
			return
		}
		outcome, events, err := state.App.BotPlay(ctx, state.RoomID, turn)
		if err != nil {
			logger.Error("processBots: Bot at seat %d failed to play: %v", turn, err)
			return
		}
		mh.dispatchEvents(ctx, state, dispatcher, logger, events)
		if outcome.Finished {
			mh.settle(ctx, state, logger)
			mh.updateLabel(ctx, state, dispatcher, logger)
		}
	}
}

// botReady arms and checks the per-action delay timer.
func (mh *matchHandler) botReady(state *MatchState, seat int, logger runtime.Logger) bool {
	if state.BotWaitUntil == 0 {
		delay := state.BotMinDelay
		if state.BotMaxDelay > state.BotMinDelay {
			delay += rand.Intn(state.BotMaxDelay - state.BotMinDelay + 1)
		}
		state.BotWaitUntil = state.Tick + int64(delay)
		logger.Debug("processBots: Bot at seat %d will act at tick %d (current %d).", seat, state.BotWaitUntil, state.Tick)
		return false
	}
	if state.Tick < state.BotWaitUntil {
		return false
	}
	state.BotWaitUntil = 0
	return true
}

func (mh *matchHandler) agentFor(state *MatchState, seat int) *bot.Agent {
	if agent, ok := state.Bots[seat]; ok {
		return agent
	}
	agent := bot.NewAgent(seat)
	state.Bots[seat] = agent
	return agent
}

// settle applies wallet changes once a room finishes. Bots hold no
// wallets and are skipped.
func (mh *matchHandler) settle(ctx context.Context, state *MatchState, logger runtime.Logger) {
	if state.Economy == nil {
		return
	}
	snapshot, err := state.App.GetState(ctx, state.RoomID)
	if err != nil {
		logger.Error("settle: Failed to load room %s: %v", state.RoomID, err)
		return
	}

	baseBet := config.GetBaseBet(state.BetTier)
	changes := snapshot.Room.Settlement(snapshot.Players, baseBet)

	updates := make([]ports.WalletUpdate, 0, len(changes))
	for userID, amount := range changes {
		if bot.IsBot(userID) {
			continue
		}
		updates = append(updates, ports.WalletUpdate{
			UserID: userID,
			Amount: amount,
			Metadata: map[string]interface{}{
				"match_id": ctx.Value(runtime.RUNTIME_CTX_MATCH_ID),
				"reason":   "game_settlement",
			},
		})
	}
	if err := state.Economy.UpdateBalances(ctx, updates); err != nil {
		logger.Error("settle: Failed to update balances: %v", err)
	}
}

// dispatchEvents converts state-machine events to wire messages.
// Targeted events reach only connected recipients; targeted events with
// no connected recipient (bots) are dropped rather than broadcast.
func (mh *matchHandler) dispatchEvents(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, events []app.Event) {
	for _, ev := range events {
		opCode, ok := opCodeFor(ev.Kind)
		if !ok {
			logger.Warn("Unknown event kind: %v", ev.Kind)
			continue
		}

		bytes, err := json.Marshal(ev.Payload)
		if err != nil {
			logger.Error("Failed to marshal event %v: %v", ev.Kind, err)
			continue
		}

		var recipients []runtime.Presence
		if len(ev.Recipients) > 0 {
			for _, uid := range ev.Recipients {
				if p, ok := state.Presences[uid]; ok {
					recipients = append(recipients, p)
				}
			}
			if len(recipients) == 0 {
				continue
			}
		}

		dispatcher.BroadcastMessage(opCode, bytes, recipients, nil, true)
	}
}

func opCodeFor(kind app.EventKind) (int64, bool) {
	switch kind {
	case app.EventPlayerJoined:
		return OpPlayerJoined, true
	case app.EventPlayerKicked:
		return OpPlayerKicked, true
	case app.EventDealStarted:
		return OpDealStarted, true
	case app.EventHandDealt:
		return OpHandDealt, true
	case app.EventTrumpSet:
		return OpTrumpSet, true
	case app.EventCardPlayed:
		return OpCardPlayed, true
	case app.EventTrickWon:
		return OpTrickWon, true
	case app.EventGameEnded:
		return OpGameEnded, true
	default:
		return 0, false
	}
}

// sendError sends a gameErrorEvent to a specific user.
func (mh *matchHandler) sendError(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string, code int, message string) {
	bytes, err := json.Marshal(gameErrorEvent{Code: code, Message: message})
	if err != nil {
		logger.Error("Failed to marshal error event: %v", err)
		return
	}

	presence, ok := state.Presences[userID]
	if !ok {
		logger.Warn("Cannot send error to %s: Presence not found", userID)
		return
	}

	dispatcher.BroadcastMessage(OpGameError, bytes, []runtime.Presence{presence}, nil, true)
}

func (mh *matchHandler) updateLabel(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	snapshot, err := state.App.GetState(ctx, state.RoomID)
	if err != nil {
		logger.Error("UpdateLabel: Failed to load room %s: %v", state.RoomID, err)
		return
	}

	labelBytes, err := json.Marshal(matchLabel{
		Open:  openSeatCount(snapshot.Players),
		Game:  "hokm",
		Phase: string(snapshot.Room.Phase),
	})
	if err != nil {
		logger.Error("UpdateLabel: Failed to marshal: %v", err)
		return
	}
	if err := dispatcher.MatchLabelUpdate(string(labelBytes)); err != nil {
		logger.Error("UpdateLabel: Failed to update: %v", err)
	}
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, reason int) interface{} {
	logger.Debug("MatchTerminate: Match terminated for reason %d", reason)
	return state
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}
