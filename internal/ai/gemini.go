// README: Gemini-backed classifier implementation.
package ai

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiModel = "gemini-2.5-flash"

// GeminiClassifier implements Classifier using Google's Gemini models.
type GeminiClassifier struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiClassifier initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiClassifier(ctx context.Context, apiKey string) (*GeminiClassifier, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(geminiModel)

	// Force JSON response for structured parsing.
	model.ResponseMIMEType = "application/json"
	model.SetTemperature(0.4)

	return &GeminiClassifier{client: client, model: model}, nil
}

// Close cleans up the Gemini client resources.
func (c *GeminiClassifier) Close() {
	c.client.Close()
}

// Classify sends the user message to Gemini and decodes the reply into
// an Intent. Decode failures come back wrapped in ErrClassification so
// callers can fall back to a canned chat response.
func (c *GeminiClassifier) Classify(ctx context.Context, message string, now time.Time) (*Intent, error) {
	prompt := buildPrompt(message, now)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini generation error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("%w: no response candidates from Gemini", ErrClassification)
	}

	var responseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			responseText.WriteString(string(txt))
		}
	}

	return DecodeIntent(responseText.String())
}

// buildPrompt constructs the instructions for the model. The current
// time is injected per request so relative expressions ("明天", "下週")
// resolve against the moment the user spoke, not process start.
func buildPrompt(message string, now time.Time) string {
	return fmt.Sprintf(`你是一個專業的租屋平台 AI 助手。

使用者傳送的訊息是： %q

現在的日期時間是：%s。
當使用者說「明天」，請根據這個時間推算。

請分析使用者的意圖，並嚴格按照以下 JSON 格式回傳，不要包含任何 markdown 標記：

情況 A：如果使用者想找房（提到地點、價格、房型、租屋等關鍵字）
{
  "type": "search",
  "params": {
    "location": "地點關鍵字 (例如: 斗六, 雲科大, 火車站)",
    "maxPrice": 數字 (如果沒提到則為 null),
    "roomType": "房型 (例如: 套房, 雅房, 整層住家)",
    "amenities": ["Wi-Fi", "電視", "冰箱", "冷氣", "洗衣機", "熱水器", "床", "衣櫃", "沙發", "桌椅", "陽台", "電梯", "車位", "可養寵物", "可開伙"]
  }
}
params 內沒提到的欄位請填 null 或空陣列。

情況 B：如果是打招呼、閒聊或與找房無關
{
  "type": "chat",
  "reply": "你親切的回覆內容 (請用繁體中文，語氣活潑)"
}

情況 C：使用者詢問功能在哪裡、如何操作、或想去某個頁面 (如：找房、預約、收藏、改資料)
{
  "type": "navigate",
  "path": "目標路由路徑",
  "reply": "導引文字內容",
  "label": "頁面名稱"
}
path 與 label 只能從以下路徑對照表選擇：
%s
情況 D：建立提醒事項 (例如：繳房租、繳水電、看房預約)
{
  "type": "create_reminder",
  "params": {
    "title": "提醒的標題 (如: 繳納水電費)",
    "time": "提醒的時間 (如: 20240501T0900)",
    "recurrence": "頻率 (WEEKLY, MONTHLY, 否則 null)",
    "reply": "你確認設定好的親切回覆"
  }
}
`, message, now.Format("2006-01-02 15:04 Monday"), pathTableText())
}

func pathTableText() string {
	labels := make([]string, 0, len(NavigationPaths))
	for label := range NavigationPaths {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	var b strings.Builder
	for _, label := range labels {
		fmt.Fprintf(&b, "- %s: %s\n", label, NavigationPaths[label])
	}
	return b.String()
}
