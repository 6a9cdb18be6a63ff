package toplist_test

import (
	"bytes"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"os"
	"path"

	"code.cloudfoundry.org/lager"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/passrisk/passrisk/toplist"
)

type fakeClient struct {
	responses map[string]*http.Response
	errs      map[string]error
	requests  []string
}

func (c *fakeClient) Do(req *http.Request) (*http.Response, error) {
	url := req.URL.String()
	c.requests = append(c.requests, url)

	if err, ok := c.errs[url]; ok {
		return nil, err
	}

	if resp, ok := c.responses[url]; ok {
		return resp, nil
	}

	return response(http.StatusNotFound, ""), nil
}

func response(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Status:     fmt.Sprintf("%d %s", status, http.StatusText(status)),
		Body:       ioutil.NopCloser(bytes.NewReader([]byte(body))),
	}
}

var _ = Describe("Fetcher", func() {
	var (
		logger  lager.Logger
		client  *fakeClient
		tempDir string
		dest    string
	)

	BeforeEach(func() {
		logger = lager.NewLogger("fetcher-test")
		client = &fakeClient{
			responses: map[string]*http.Response{},
			errs:      map[string]error{},
		}

		var err error
		tempDir, err = ioutil.TempDir("", "toplist-fetcher")
		Expect(err).NotTo(HaveOccurred())
		dest = path.Join(tempDir, "top.txt")
	})

	AfterEach(func() {
		Expect(os.RemoveAll(tempDir)).To(Succeed())
	})

	It("saves the list from the first URL that succeeds", func() {
		client.responses["http://lists.example.com/top.txt"] = response(200, "123456\nqwerty\n")

		fetcher := toplist.NewFetcher(client)
		err := fetcher.Fetch(logger, []string{"http://lists.example.com/top.txt"}, dest)
		Expect(err).NotTo(HaveOccurred())

		saved, err := ioutil.ReadFile(dest)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(saved)).To(Equal("123456\nqwerty\n"))
	})

	It("falls back to the next URL when the first fails", func() {
		client.errs["http://primary.example.com/top.txt"] = errors.New("connection refused")
		client.responses["http://fallback.example.com/top.txt"] = response(200, "123456\n")

		fetcher := toplist.NewFetcher(client)
		err := fetcher.Fetch(logger, []string{
			"http://primary.example.com/top.txt",
			"http://fallback.example.com/top.txt",
		}, dest)
		Expect(err).NotTo(HaveOccurred())

		Expect(client.requests).To(Equal([]string{
			"http://primary.example.com/top.txt",
			"http://fallback.example.com/top.txt",
		}))
	})

	It("treats a non-200 status as a failed attempt", func() {
		client.responses["http://primary.example.com/top.txt"] = response(500, "oops")
		client.responses["http://fallback.example.com/top.txt"] = response(200, "123456\n")

		fetcher := toplist.NewFetcher(client)
		err := fetcher.Fetch(logger, []string{
			"http://primary.example.com/top.txt",
			"http://fallback.example.com/top.txt",
		}, dest)
		Expect(err).NotTo(HaveOccurred())
	})

	It("reports every URL's failure when all attempts fail", func() {
		client.errs["http://primary.example.com/top.txt"] = errors.New("connection refused")
		client.errs["http://fallback.example.com/top.txt"] = errors.New("no such host")

		fetcher := toplist.NewFetcher(client)
		err := fetcher.Fetch(logger, []string{
			"http://primary.example.com/top.txt",
			"http://fallback.example.com/top.txt",
		}, dest)

		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("primary.example.com"))
		Expect(err.Error()).To(ContainSubstring("fallback.example.com"))

		_, statErr := os.Stat(dest)
		Expect(os.IsNotExist(statErr)).To(BeTrue())
	})

	It("refuses a payload that is markup rather than a list", func() {
		client.responses["http://portal.example.com/top.txt"] = response(200,
			"<!DOCTYPE html>\n<html><body>Please sign in</body></html>\n")

		fetcher := toplist.NewFetcher(client)
		err := fetcher.Fetch(logger, []string{"http://portal.example.com/top.txt"}, dest)

		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("does not look like a password list"))
	})
})

var _ = Describe("RetryingClient", func() {
	It("retries transient failures and returns the eventual response", func() {
		inner := &flakyClient{failures: 2}
		client := toplist.NewRetryingClient(inner)

		req, err := http.NewRequest("GET", "http://lists.example.com/top.txt", nil)
		Expect(err).NotTo(HaveOccurred())

		resp, err := client.Do(req)
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.StatusCode).To(Equal(200))
		Expect(inner.calls).To(Equal(3))
	})

	It("gives up after the retry budget is spent", func() {
		inner := &flakyClient{failures: 10}
		client := toplist.NewRetryingClient(inner)

		req, err := http.NewRequest("GET", "http://lists.example.com/top.txt", nil)
		Expect(err).NotTo(HaveOccurred())

		_, err = client.Do(req)
		Expect(err).To(MatchError("request failed after retry"))
		Expect(inner.calls).To(Equal(4))
	})
})

type flakyClient struct {
	failures int
	calls    int
}

func (c *flakyClient) Do(req *http.Request) (*http.Response, error) {
	c.calls++
	if c.calls <= c.failures {
		return nil, errors.New("transient")
	}

	return response(200, "123456\n"), nil
}
