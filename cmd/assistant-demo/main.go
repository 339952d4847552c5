// README: One-shot classifier demo for prompt tuning.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"roost/internal/ai"
)

func main() {
	message := flag.String("m", "幫我找斗六三千元以下的套房", "message to classify")
	flag.Parse()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY environment variable not set")
	}

	ctx := context.Background()
	classifier, err := ai.NewGeminiClassifier(ctx, apiKey)
	if err != nil {
		log.Fatalf("Failed to initialize classifier: %v", err)
	}
	defer classifier.Close()

	fmt.Printf("User: %s\n", *message)

	intent, err := classifier.Classify(ctx, *message, time.Now())
	if err != nil {
		log.Fatalf("Error classifying: %v", err)
	}

	fmt.Printf("Kind: %s\n", intent.Kind)
	switch intent.Kind {
	case ai.IntentSearch:
		fmt.Printf("Location: %q RoomType: %q Amenities: %v\n",
			intent.Search.Location, intent.Search.RoomType, intent.Search.Amenities)
		if intent.Search.MaxPrice != nil {
			fmt.Printf("MaxPrice: %.0f\n", *intent.Search.MaxPrice)
		}
	case ai.IntentNavigate:
		fmt.Printf("Path: %s Label: %s\nReply: %s\n",
			intent.Navigate.Path, intent.Navigate.Label, intent.Navigate.Reply)
	case ai.IntentCreateReminder:
		fmt.Printf("Title: %s Time: %s Recurrence: %q\nReply: %s\n",
			intent.Reminder.Title, intent.Reminder.Time, intent.Reminder.Recurrence, intent.Reminder.Reply)
	case ai.IntentChat:
		fmt.Printf("Reply: %s\n", intent.Reply)
	}
}
