package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"runtime"

	openai "github.com/sashabaranov/go-openai"

	"github.com/joho/godotenv"

	"github.com/kdotcui/AngelTea/internal/agent"
	"github.com/kdotcui/AngelTea/internal/catalog"
	"github.com/kdotcui/AngelTea/internal/order"
	"github.com/kdotcui/AngelTea/internal/pricing"
)

const (
	inputWAV = "input.wav"
	replyMP3 = "reply.mp3"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: No .env file found, using environment variables")
	}

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Fatal("Missing OPENAI_API_KEY. Run: export OPENAI_API_KEY='sk-...'")
	}

	mustHaveBinary("sox")
	mustHaveBinary(playerBinary())

	chatModel := os.Getenv("OPENAI_CHAT_MODEL")
	if chatModel == "" {
		chatModel = "gpt-4o-mini"
	}

	menu := catalog.AngelTea()
	toppings := pricing.DefaultToppings()
	engine := pricing.NewEngine(menu, toppings)
	orders := order.NewService(menu, engine)
	toolbox := agent.NewToolbox(menu, engine, orders)

	client := openai.NewClient(apiKey)
	voiceAgent := agent.New(client, chatModel, toolbox)
	speech := agent.NewSpeech(
		client,
		os.Getenv("OPENAI_STT_MODEL"),
		os.Getenv("OPENAI_TTS_MODEL"),
		os.Getenv("OPENAI_TTS_VOICE"),
	)

	fmt.Println("\nVoice Ordering Demo (Angel Tea)")
	fmt.Println("Press Enter each round. Speak, then pause ~1s; it will transcribe, answer, and speak back.")
	fmt.Println("Try examples like:")
	fmt.Println("- 'What do you recommend?'")
	fmt.Println("- 'How much is a large Brown Sugar Bubble Tea?'")
	fmt.Println("- 'Two M Angel Milk Tea, 50% sugar, less ice; one L Mango Pomelo Sago Nectar with boba.'")
	fmt.Println()

	ctx := context.Background()
	conversation := agent.NewConversation()
	stdin := bufio.NewReader(os.Stdin)

	for round := 1; ; round++ {
		fmt.Printf("[Round %d] Press Enter to record...", round)
		if _, err := stdin.ReadString('\n'); err != nil {
			fmt.Println("\nBye!")
			return
		}

		if err := recordOnce(); err != nil {
			log.Printf("Recording failed: %v. Check mic permissions.", err)
			continue
		}

		text, err := speech.TranscribeFile(ctx, inputWAV)
		if err != nil {
			log.Printf("Transcription failed: %v", err)
			continue
		}
		if text == "" {
			fmt.Println("You: (empty)")
			continue
		}
		fmt.Println("You:", text)

		answer, updated, err := voiceAgent.Reply(ctx, conversation, text)
		if err != nil {
			log.Printf("Agent failed: %v", err)
			continue
		}
		conversation = updated

		fmt.Println("Agent:", answer)

		if err := speak(ctx, speech, answer); err != nil {
			log.Printf("Playback failed: %v", err)
		}
	}
}

// recordOnce records mono 16kHz WAV from the default mic; sox stops on
// ~1s of silence with a hard cap of 10s.
func recordOnce() error {
	fmt.Println("Recording... speak now; pause ~1s to auto-stop.")
	cmd := exec.Command(
		"sox", "-d", "-c", "1", "-r", "16000", inputWAV,
		"silence", "1", "0.2", "1%", "1", "1.0", "1%",
		"trim", "0", "10",
	)
	return cmd.Run()
}

func speak(ctx context.Context, speech *agent.Speech, text string) error {
	audio, err := speech.Synthesize(ctx, text)
	if err != nil {
		return err
	}
	if err := os.WriteFile(replyMP3, audio, 0o644); err != nil {
		return err
	}
	return exec.Command(playerBinary(), replyMP3).Run()
}

func playerBinary() string {
	if runtime.GOOS == "darwin" {
		return "afplay"
	}
	return "play"
}

func mustHaveBinary(name string) {
	if _, err := exec.LookPath(name); err != nil {
		log.Fatalf("Required binary missing: %s", name)
	}
}
