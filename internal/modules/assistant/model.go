// README: Response envelope returned to the chat client, plus canned replies.
package assistant

import "roost/internal/modules/listing"

const (
	TypeRecommendation = "recommendation"
	TypeText           = "text"
	TypeNavigate       = "navigate"
	TypeChat           = "chat"
)

// Envelope is the uniform JSON shape returned for every assistant
// message. Text is always present; Data/Path/Label depend on Type.
type Envelope struct {
	Type  string            `json:"type"`
	Text  string            `json:"text"`
	Data  []listing.Listing `json:"data,omitempty"`
	Path  string            `json:"path,omitempty"`
	Label string            `json:"label,omitempty"`
}

const (
	msgFallback    = "抱歉，我現在有點累，請再說一次好嗎？"
	msgFound       = "沒問題！為您找到符合需求的房源："
	msgNoResults   = "不好意思，目前沒有找到符合條件的房源，要不要換個關鍵字試試？"
	msgReminderErr = "抱歉，設定提醒時發生錯誤，請稍後再試。"
	msgReminderOK  = "好的，已為您設定提醒！"
)

func fallbackEnvelope() Envelope {
	return Envelope{Type: TypeChat, Text: msgFallback}
}
