// calauth runs the one-time Google OAuth desktop flow and saves the
// token file that flyercald needs for calendar submission.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/flyercal-app/flyercal/internal/calendar"
	"github.com/flyercal-app/flyercal/internal/common"
)

func main() {
	_ = godotenv.Load()

	cfg := common.LoadConfig()
	if cfg.Calendar.ClientID == "" || cfg.Calendar.ClientSecret == "" {
		log.Fatal("GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET are required")
	}

	oauthCfg := calendar.OAuthConfig(cfg.Calendar.ClientID, cfg.Calendar.ClientSecret)
	authURL := oauthCfg.AuthCodeURL("state-token")

	fmt.Println("Open this URL in your browser, authorize the app, then paste the code below:")
	fmt.Println()
	fmt.Println("  " + authURL)
	fmt.Println()
	fmt.Print("code: ")

	reader := bufio.NewReader(os.Stdin)
	code, err := reader.ReadString('\n')
	if err != nil {
		log.Fatalf("reading code: %v", err)
	}
	code = strings.TrimSpace(code)
	if code == "" {
		log.Fatal("no authorization code provided")
	}

	token, err := calendar.TokenFromWeb(oauthCfg, code)
	if err != nil {
		log.Fatalf("exchanging code: %v", err)
	}
	if err := calendar.SaveToken(cfg.Calendar.TokenFile, token); err != nil {
		log.Fatalf("saving token: %v", err)
	}
	fmt.Printf("token saved to %s\n", cfg.Calendar.TokenFile)
}
