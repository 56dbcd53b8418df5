package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"hokm/internal/domain"

	"github.com/google/uuid"
	"github.com/heroiclabs/nakama-common/runtime"
)

// QuickMatchResponse is the payload returned to clients when requesting a lobby-capable match.
type QuickMatchResponse struct {
	MatchID string `json:"match_id"`
	IsNew   bool   `json:"is_new"`
}

// CreateRoomRequest carries explicit settings for a private room.
type CreateRoomRequest struct {
	TargetTricks int    `json:"target_tricks"`
	TrumpMode    string `json:"trump_mode"`
	Tier         string `json:"tier"`
}

// CreateRoomResponse returns the created match and its room id.
type CreateRoomResponse struct {
	MatchID string `json:"match_id"`
	RoomID  string `json:"room_id"`
}

// RegisterRPCs registers Nakama RPC endpoints.
func RegisterRPCs(initializer runtime.Initializer) error {
	if err := initializer.RegisterRpc(RpcQuickMatch, rpcQuickMatch); err != nil {
		return err
	}
	if err := initializer.RegisterRpc(RpcCreateRoom, rpcCreateRoom); err != nil {
		return err
	}
	return initializer.RegisterRpc(RpcVoiceToken, rpcVoiceToken)
}

func rpcQuickMatch(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	// Find any waiting hokm match with an open seat.
	query := fmt.Sprintf("+label.%s:>=1 +label.game:hokm +label.phase:waiting", MatchLabelKey_OpenSeats)

	limit := 10
	authoritative := true
	minSize := 1
	maxSize := 3 // ensure < 4 players

	matches, err := nk.MatchList(ctx, limit, authoritative, "", &minSize, &maxSize, query)
	if err != nil {
		logger.Error("MatchList error: %v", err)
		return "", err
	}

	if len(matches) > 0 {
		resp := QuickMatchResponse{MatchID: matches[0].MatchId, IsNew: false}
		b, _ := json.Marshal(resp)
		return string(b), nil
	}

	// Create new match; seat assignment happens in MatchJoin (server-authoritative).
	matchID, err := nk.MatchCreate(ctx, MatchNameHokm, map[string]interface{}{})
	if err != nil {
		logger.Error("MatchCreate error: %v", err)
		return "", err
	}

	resp := QuickMatchResponse{MatchID: matchID, IsNew: true}
	b, _ := json.Marshal(resp)
	return string(b), nil
}

func rpcCreateRoom(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req CreateRoomRequest
	if payload != "" {
		if err := json.Unmarshal([]byte(payload), &req); err != nil {
			return "", runtime.NewError("Invalid payload", 3) // INVALID_ARGUMENT
		}
	}

	if req.TrumpMode != "" && !domain.Trump(req.TrumpMode).Valid() {
		return "", runtime.NewError("Invalid trump mode", 3)
	}

	roomID := uuid.NewString()
	params := map[string]interface{}{
		"room_id":       roomID,
		"target_tricks": float64(req.TargetTricks),
		"trump_mode":    req.TrumpMode,
		"tier":          req.Tier,
	}

	matchID, err := nk.MatchCreate(ctx, MatchNameHokm, params)
	if err != nil {
		logger.Error("MatchCreate error: %v", err)
		return "", err
	}

	b, _ := json.Marshal(CreateRoomResponse{MatchID: matchID, RoomID: roomID})
	return string(b), nil
}
