package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/sheetsync/sheets-merge/config"
	"github.com/sheetsync/sheets-merge/gdrive"
	"github.com/sheetsync/sheets-merge/gsheets"
)

const (
	DRIVE  = "https://www.googleapis.com/auth/drive"
	SHEETS = "https://www.googleapis.com/auth/spreadsheets"
)

// connect authorises the credentials for Drive and Sheets access and returns the Drive and
// Sheets clients.
func connect(ctx context.Context, conf *config.Config, debug bool) (*gdrive.Service, *gsheets.Service, error) {
	tokens := filepath.Join(conf.Workdir, ".google")

	if debug {
		debugf("credentials:%v  tokens:%v", conf.Credentials, tokens)
	}

	client, err := authorize(ctx, conf.Credentials, tokens, DRIVE, SHEETS)
	if err != nil {
		return nil, nil, fmt.Errorf("authentication/authorization error (%w)", err)
	}

	d, err := drive.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, nil, fmt.Errorf("unable to create new Drive client (%w)", err)
	}

	s, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, nil, fmt.Errorf("unable to create new Sheets client (%w)", err)
	}

	return gdrive.NewService(d), gsheets.NewService(s, conf.ValueInputOption), nil
}

// authorize returns an HTTP client for either a service account key file or an OAuth2 client
// credentials file. OAuth2 tokens are cached in the tokens directory.
func authorize(ctx context.Context, credentials string, tokens string, scopes ...string) (*http.Client, error) {
	b, err := os.ReadFile(credentials)
	if err != nil {
		return nil, err
	}

	if credentialType(b) == "service_account" {
		jwt, err := google.JWTConfigFromJSON(b, scopes...)
		if err != nil {
			return nil, err
		}

		return jwt.Client(ctx), nil
	}

	config, err := google.ConfigFromJSON(b, scopes...)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSuffix(filepath.Base(credentials), filepath.Ext(credentials))
	file := filepath.Join(tokens, fmt.Sprintf("%s.tokens", name))

	token, err := tokenFromFile(file)
	if err != nil {
		if token, err = getTokenFromWeb(ctx, config); err != nil {
			return nil, err
		}

		if err := saveToken(file, token); err != nil {
			return nil, err
		}
	}

	return config.Client(ctx, token), nil
}

func credentialType(b []byte) string {
	credentials := struct {
		Type string `json:"type"`
	}{}

	if err := json.Unmarshal(b, &credentials); err != nil {
		return ""
	}

	return credentials.Type
}

// Requests a token from the web, then returns the retrieved token.
func getTokenFromWeb(ctx context.Context, config *oauth2.Config) (*oauth2.Token, error) {
	url := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)

	fmt.Printf("Go to the following link in your browser then type the authorization code:\n%v\n", url)

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		return nil, fmt.Errorf("unable to read authorization code (%w)", err)
	}

	token, err := config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve token from web (%w)", err)
	}

	return token, nil
}

func tokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	token := oauth2.Token{}
	if err := json.NewDecoder(f).Decode(&token); err != nil {
		return nil, err
	}

	return &token, nil
}

func saveToken(file string, token *oauth2.Token) error {
	infof("saving OAuth2 token to %v", file)

	if err := os.MkdirAll(filepath.Dir(file), 0700); err != nil {
		return err
	}

	f, err := os.OpenFile(file, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("unable to cache OAuth2 token (%w)", err)
	}

	defer f.Close()

	return json.NewEncoder(f).Encode(token)
}
