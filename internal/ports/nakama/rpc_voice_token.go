package nakama

import (
	"context"
	"database/sql"
	"encoding/json"

	"hokm/internal/app/voice"

	"github.com/heroiclabs/nakama-common/runtime"
)

// VoiceTokenRequest asks for a voice access token.
// Action "join" additionally needs the room whose channel to enter.
type VoiceTokenRequest struct {
	Action string `json:"action"`
	RoomID string `json:"room_id"`
}

// VoiceTokenResponse carries the signed token and, for joins, the channel name.
type VoiceTokenResponse struct {
	Token   string `json:"token"`
	Channel string `json:"channel,omitempty"`
}

func rpcVoiceToken(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
	if userID == "" {
		return "", runtime.NewError("Authentication required", 16) // UNAUTHENTICATED
	}

	var req VoiceTokenRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", runtime.NewError("Invalid payload", 3) // INVALID_ARGUMENT
	}

	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	svc := voice.NewService(env["voice_secret"], env["voice_issuer"], env["voice_domain"])

	channel := ""
	if req.Action == voice.ActionJoin {
		if req.RoomID == "" {
			return "", runtime.NewError("room_id required for join", 3)
		}
		channel = voice.ChannelName(req.RoomID)
	}

	token, err := svc.GenerateToken(userID, req.Action, channel)
	if err != nil {
		logger.Error("Failed to generate voice token for %s: %v", userID, err)
		return "", runtime.NewError("Failed to generate voice token", 13) // INTERNAL
	}

	b, _ := json.Marshal(VoiceTokenResponse{Token: token, Channel: channel})
	return string(b), nil
}
