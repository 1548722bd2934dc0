package main

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/newsguard/newsguard/internal/archive"
	"github.com/newsguard/newsguard/internal/config"
	"github.com/newsguard/newsguard/internal/imagecheck"
	"github.com/newsguard/newsguard/internal/language"
	"github.com/newsguard/newsguard/internal/llm"
	"github.com/newsguard/newsguard/internal/models"
	"github.com/newsguard/newsguard/internal/notifications"
	"github.com/newsguard/newsguard/internal/search"
)

func main() {
	fmt.Println("🔍 NewsGuard - API Connectivity Test")
	fmt.Println("====================================")

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	fmt.Println("\n📡 Testing integrations...")
	fmt.Println(strings.Repeat("-", 40))

	testLLM(ctx, cfg)
	testLanguage(ctx)
	testSearch(ctx, cfg)
	testSightEngine(ctx, cfg)
	testMailer(cfg)
	testArchive(cfg)

	fmt.Println("\n✅ Connectivity test completed!")
	fmt.Println("\n💡 Next steps:")
	fmt.Println("   • Configure missing credentials in .env file")
	fmt.Println("   • Run the server with: go run cmd/server/main.go")
}

func testLLM(ctx context.Context, cfg *config.Config) {
	fmt.Printf("🔸 Testing LLM provider (%s)... ", cfg.LLMProvider)

	provider, err := llm.NewProvider(ctx, cfg)
	if err != nil {
		fmt.Printf("❌ ERROR: %v\n", err)
		return
	}
	defer provider.Close()

	reply, err := provider.Complete(ctx, "You are a connectivity probe. Respond with the single word OK.", "Say OK")
	if err != nil {
		fmt.Printf("❌ ERROR: %v\n", err)
		return
	}

	fmt.Printf("✅ SUCCESS\n")
	fmt.Printf("   📝 Sample: %q\n", firstLine(reply))
}

func testLanguage(ctx context.Context) {
	svc := language.NewService()

	fmt.Printf("🔸 Testing language detection... ")
	info := svc.Info("मुंबईत आज मुसळधार पाऊस झाला आणि अनेक भाग जलमय झाले")
	fmt.Printf("✅ SUCCESS (detected %s)\n", info.Name)

	fmt.Printf("🔸 Testing translation... ")
	sample := "यह एक परीक्षण संदेश है"
	translated := svc.Translate(ctx, sample, "hi", "en")
	if translated == sample {
		fmt.Printf("⚠️  UNAVAILABLE (text came back unchanged)\n")
		return
	}
	fmt.Printf("✅ SUCCESS\n")
	fmt.Printf("   📝 Sample: %q\n", firstLine(translated))
}

func testSearch(ctx context.Context, cfg *config.Config) {
	fmt.Printf("🔸 Testing Google Custom Search... ")

	if !cfg.SearchEnabled() {
		fmt.Printf("⚠️  DISABLED (missing API key or engine ID)\n")
		return
	}

	client, err := search.NewClient(ctx, cfg)
	if err != nil {
		fmt.Printf("❌ ERROR: %v\n", err)
		return
	}

	urls, err := client.Search(ctx, "flood warning river districts")
	if err != nil {
		fmt.Printf("❌ ERROR: %v\n", err)
		return
	}

	fmt.Printf("✅ SUCCESS (%d results)\n", len(urls))
	if len(urls) > 0 {
		fmt.Printf("   📝 Sample: %s\n", urls[0])
	}
}

func testSightEngine(ctx context.Context, cfg *config.Config) {
	fmt.Printf("🔸 Testing SightEngine... ")

	client := imagecheck.NewSightEngineClient(cfg.SightEngineUser, cfg.SightEngineSecret)
	if !client.Enabled() {
		fmt.Printf("⚠️  DISABLED (missing API credentials)\n")
		return
	}

	score, ok := client.Check(ctx, probePNG())
	if !ok {
		fmt.Printf("❌ ERROR (request failed, image analysis will fall back to local checks)\n")
		return
	}

	fmt.Printf("✅ SUCCESS (AI score %.4f)\n", score)
}

func testMailer(cfg *config.Config) {
	fmt.Printf("🔸 Testing contact mailer... ")

	mailer := notifications.NewService(cfg)
	if !mailer.Enabled() {
		fmt.Printf("⚠️  DISABLED (no contact recipient configured)\n")
		return
	}

	// Only verify configuration, nobody wants probe emails in their inbox
	fmt.Printf("✅ CONFIGURED (recipient %s via %s:%d)\n", cfg.ContactRecipient, cfg.SMTPHost, cfg.SMTPPort)
}

func testArchive(cfg *config.Config) {
	fmt.Printf("🔸 Testing analysis archive (%s)... ", cfg.ArchiveBackend)

	svc, err := archive.NewService(cfg)
	if err != nil {
		fmt.Printf("❌ ERROR: %v\n", err)
		return
	}
	if !svc.Enabled() {
		fmt.Printf("⚠️  DISABLED\n")
		return
	}

	record := &models.AnalysisRecord{Kind: "probe", Payload: map[string]string{"status": "ok"}}
	if err := svc.Record(record); err != nil {
		fmt.Printf("❌ ERROR: %v\n", err)
		return
	}

	fmt.Printf("✅ SUCCESS (stored record %s)\n", record.ID)
}

func probePNG() []byte {
	var buf bytes.Buffer
	png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 8, 8)))
	return buf.Bytes()
}

func firstLine(s string) string {
	line := strings.TrimSpace(s)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	if len(line) > 80 {
		line = line[:80] + "..."
	}
	return line
}
