// Command setup provisions the record databases. Run it once against a parent
// page the integration token can write to, then copy the printed ids into the
// service environment.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/fortuna-games/fortuna/internal/domain"
	"github.com/fortuna-games/fortuna/internal/notion"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	parentPageID := flag.String("parent", "", "id of the page the databases are created under")
	titlePrefix := flag.String("title-prefix", "Prize Records", "title prefix for the created databases")
	baseURL := flag.String("base-url", "", "record store base URL (defaults to NOTION_BASE_URL or the public API)")
	flag.Parse()

	if *parentPageID == "" {
		log.Fatal("-parent is required")
	}

	token := os.Getenv("NOTION_API_TOKEN")
	if token == "" {
		log.Fatal("NOTION_API_TOKEN environment variable must be set")
	}

	url := *baseURL
	if url == "" {
		url = os.Getenv("NOTION_BASE_URL")
	}
	if url == "" {
		url = "https://api.notion.com"
	}

	client := notion.NewBootstrapClient(url, token)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	for _, game := range domain.Games {
		title := fmt.Sprintf("%s (%s)", *titlePrefix, game)
		id, err := client.CreateDatabase(ctx, *parentPageID, title)
		if err != nil {
			log.Fatalf("Failed to create %s database: %v", game, err)
		}

		envKey := fmt.Sprintf("NOTION_%s_DATABASE_ID", strings.ToUpper(game.String()))
		fmt.Printf("%s=%s\n", envKey, id)
	}

	fmt.Println("Databases created. Add the ids above to your environment.")
}
