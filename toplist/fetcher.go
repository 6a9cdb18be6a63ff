package toplist

import (
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"

	"bitbucket.org/taruti/mimemagic"
	"code.cloudfoundry.org/lager"
	"github.com/hashicorp/go-multierror"
)

// PrimaryURL is the NCSC top-100k breached password list.
const PrimaryURL = "https://www.ncsc.gov.uk/static-assets/documents/PwnedPasswordsTop100k.txt"

// FallbackURL is the SecLists top-10k list, tried when the primary is down.
const FallbackURL = "https://raw.githubusercontent.com/danielmiessler/SecLists/master/Passwords/Common-Credentials/10-million-password-list-top-10000.txt"

func DefaultURLs() []string {
	return []string{PrimaryURL, FallbackURL}
}

//go:generate counterfeiter . Client

type Client interface {
	Do(*http.Request) (*http.Response, error)
}

type Fetcher struct {
	client Client
}

// NewFetcher returns a fetcher using the given HTTP client. Passing nil wraps
// http.DefaultClient with bounded, jittered retries.
func NewFetcher(client Client) *Fetcher {
	if client == nil {
		client = NewRetryingClient(http.DefaultClient)
	}

	return &Fetcher{
		client: client,
	}
}

// Fetch downloads a top-passwords list to dest, trying each URL in order and
// stopping at the first success. When every URL fails the returned error
// carries each URL's failure.
func (f *Fetcher) Fetch(logger lager.Logger, urls []string, dest string) error {
	logger = logger.Session("fetch-top-list", lager.Data{"dest": dest})
	logger.Debug("starting")
	defer logger.Debug("done")

	var result error

	for _, url := range urls {
		err := f.fetchOne(logger, url, dest)
		if err == nil {
			return nil
		}

		logger.Error("attempt-failed", err, lager.Data{"url": url})
		result = multierror.Append(result, fmt.Errorf("%s: %w", url, err))
	}

	return result
}

func (f *Fetcher) fetchOne(logger lager.Logger, url, dest string) error {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if err := checkLooksLikeList(body); err != nil {
		return err
	}

	logger.Debug("saving", lager.Data{"bytes": len(body)})

	return ioutil.WriteFile(dest, body, 0644)
}

// checkLooksLikeList rejects payloads that are clearly not a plain-text
// password list, e.g. a captive portal page or an error document served with
// a 200. Magic-byte sniffing identifies binary and markup formats; plain text
// comes back untyped.
func checkLooksLikeList(body []byte) error {
	head := body
	if len(head) > 1024 {
		head = head[:1024]
	}

	mime := mimemagic.Match("", head)
	if mime == "" || mime == "text/plain" {
		return nil
	}

	if strings.HasPrefix(mime, "text/") && !strings.Contains(mime, "html") {
		return nil
	}

	return fmt.Errorf("response does not look like a password list (detected %s)", mime)
}
