package nakama

const (
	// RpcQuickMatch is the Nakama RPC id clients call to find or create a lobby-capable match.
	RpcQuickMatch = "quick_match"
	// RpcCreateRoom creates a private room with explicit settings and returns its match id.
	RpcCreateRoom = "create_room"
	// RpcVoiceToken mints an access token for the room's voice channel.
	RpcVoiceToken = "voice_token"

	// MatchNameHokm is the authoritative match handler name registered with Nakama.
	MatchNameHokm = "hokm_match"
)

// Op codes for client messages and server events.
const (
	// Client -> Server
	OpStartDeal   int64 = 1
	OpChooseTrump int64 = 2
	OpPlayCard    int64 = 3
	OpKickPlayer  int64 = 4

	// Server -> Client events
	OpPlayerJoined int64 = 101
	OpPlayerKicked int64 = 102
	OpDealStarted  int64 = 103
	OpHandDealt    int64 = 104 // sent privately
	OpTrumpSet     int64 = 105
	OpCardPlayed   int64 = 106
	OpTrickWon     int64 = 107
	OpGameEnded    int64 = 108
	OpGameError    int64 = 110
)

const (
	// MatchLabelKey_OpenSeats is the label key quick match filters on.
	MatchLabelKey_OpenSeats = "open"
)
