package main

import (
	"context"
	"log"
	"os"

	openai "github.com/sashabaranov/go-openai"

	"github.com/joho/godotenv"

	"github.com/kdotcui/AngelTea/internal/agent"
	"github.com/kdotcui/AngelTea/internal/catalog"
	"github.com/kdotcui/AngelTea/internal/db"
	"github.com/kdotcui/AngelTea/internal/order"
	"github.com/kdotcui/AngelTea/internal/pricing"
	"github.com/kdotcui/AngelTea/internal/router"
	"github.com/kdotcui/AngelTea/internal/storage"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Fatal("❌ Missing env var: OPENAI_API_KEY")
	}

	chatModel := os.Getenv("OPENAI_CHAT_MODEL")
	if chatModel == "" {
		chatModel = "gpt-4o-mini"
	}

	// ───────────────────────── CATALOG ─────────────────────────
	menu, toppings := buildCatalog()

	// ───────────────────────── STORAGE (OPTIONAL) ─────────────────────────
	var archive agent.Archive
	if storage.Configured() {
		r2, err := storage.NewR2Client(context.Background())
		if err != nil {
			log.Fatal("❌ R2 init failed:", err)
		}
		archive = r2
		log.Println("✅ Voice audio archiving enabled")
	}

	// ───────────────────────── SERVICES ─────────────────────────
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
	voiceHandler := agent.NewHandler(voiceAgent, speech, archive)

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.New(toolbox, voiceHandler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	log.Println("🚀 API running at http://localhost:" + port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

// buildCatalog picks the menu variant (CATALOG=angel|classic) and, for the
// angel variant, prefers rows from Postgres when DATABASE_URL is set.
func buildCatalog() (*catalog.Catalog, pricing.ToppingMenu) {
	if os.Getenv("CATALOG") == "classic" {
		return catalog.ClassicTeaHouse(), pricing.ToppingMenu{}
	}

	if os.Getenv("DATABASE_URL") != "" {
		pool := db.ConnectPostgres()

		items, err := catalog.LoadAngelTeaItems(context.Background(), pool)
		pool.Close()
		if err != nil {
			log.Fatal("❌ Menu load failed:", err)
		}

		if len(items) > 0 {
			log.Printf("✅ Loaded %d menu items from PostgreSQL", len(items))
			return catalog.NewAngelTeaFrom(items), pricing.DefaultToppings()
		}
		log.Println("⚠️  menu_items table is empty, using built-in menu")
	}

	return catalog.AngelTea(), pricing.DefaultToppings()
}
