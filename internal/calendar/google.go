package calendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/flyercal-app/flyercal/internal/common"
)

// Client submits event payloads to the Google Calendar API.
type Client struct {
	service *gcal.Service
	logger  *slog.Logger
}

// NewClient builds an authenticated calendar client from a previously
// saved OAuth token. Run the auth flow first if the token file is missing.
func NewClient(ctx context.Context, logger *slog.Logger, clientID, clientSecret, tokenFile string) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}
	config := OAuthConfig(clientID, clientSecret)

	token, err := tokenFromFile(tokenFile)
	if err != nil {
		return nil, fmt.Errorf("could not load token from %s (run calauth first): %w", tokenFile, err)
	}

	httpClient := config.Client(ctx, token)
	service, err := gcal.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: service, logger: logger}, nil
}

// InsertEvent creates the event on the given calendar and returns the
// remote event ID. Failures are mapped onto the submission error taxonomy
// and surfaced upward; nothing is retried here.
func (c *Client) InsertEvent(ctx context.Context, calendarID string, p EventPayload) (string, error) {
	ev := &gcal.Event{
		Summary:     p.Summary,
		Location:    p.Location,
		Description: p.Description,
	}

	if p.AllDay {
		// Google all-day events use an exclusive end date.
		end, err := time.Parse("2006-01-02", p.EndDate)
		if err != nil {
			return "", fmt.Errorf("%w: bad end date %q", common.ErrPayloadInvalid, p.EndDate)
		}
		ev.Start = &gcal.EventDateTime{Date: p.StartDate}
		ev.End = &gcal.EventDateTime{Date: end.AddDate(0, 0, 1).Format("2006-01-02")}
	} else {
		ev.Start = &gcal.EventDateTime{DateTime: p.Start.Format(time.RFC3339), TimeZone: p.TimeZone}
		ev.End = &gcal.EventDateTime{DateTime: p.End.Format(time.RFC3339), TimeZone: p.TimeZone}
	}

	created, err := c.service.Events.Insert(calendarID, ev).Context(ctx).Do()
	if err != nil {
		c.logger.Error("calendar.insert.failed", "calendar_id", calendarID, "error", err)
		return "", mapAPIError(err)
	}

	c.logger.Info("calendar.insert.ok", "calendar_id", calendarID, "event_id", created.Id)
	return created.Id, nil
}

func mapAPIError(err error) error {
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return err
	}
	switch gerr.Code {
	case 401, 403:
		return fmt.Errorf("%w: %v", common.ErrAuthExpired, err)
	case 429:
		return fmt.Errorf("%w: %v", common.ErrRateLimited, err)
	case 400, 422:
		return fmt.Errorf("%w: %v", common.ErrPayloadInvalid, err)
	}
	return err
}

// OAuthConfig returns the OAuth2 config for the desktop auth flow.
func OAuthConfig(clientID, clientSecret string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  "urn:ietf:wg:oauth:2.0:oob",
		Scopes:       []string{gcal.CalendarEventsScope},
		Endpoint:     google.Endpoint,
	}
}

// TokenFromWeb exchanges an authorization code for a token.
func TokenFromWeb(config *oauth2.Config, authCode string) (*oauth2.Token, error) {
	return config.Exchange(context.Background(), authCode)
}

// SaveToken saves a token to a file path.
func SaveToken(path string, token *oauth2.Token) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create token file: %w", err)
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(token)
}

func tokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tok := &oauth2.Token{}
	err = json.NewDecoder(f).Decode(tok)
	return tok, err
}
