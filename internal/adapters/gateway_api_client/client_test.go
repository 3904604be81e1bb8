package gateway_api_client

import (
	"context"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"caribcart-client/internal/contextkeys"
	"caribcart-client/internal/core/domain"
)

func testSubmission(id string) domain.ListingSubmission {
	return domain.ListingSubmission{
		ID:             id,
		Title:          "Family Cooking Channel",
		Platform:       "Youtube",
		Username:       "cookswithtrish",
		FollowersCount: 12500,
		EngagementRate: 4.2,
		MonthlyViews:   80000,
		Niche:          "Cooking",
		Price:          5000,
		Description:    "Weekly uploads, engaged audience.",
		Verified:       true,
		Country:        "Trinidad & Tobago",
		AgeRange:       "25-34",
	}
}

func TestFetchPublicListingsBareArray(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/listing/public" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "" {
			t.Error("public read must not carry a bearer token")
		}
		io.WriteString(w, `[{"id":"a","title":"One","price":10},{"id":"b","title":"Two","price":20}]`)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	listings, err := client.FetchPublicListings(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listings) != 2 || listings[0].ID != "a" || listings[1].Title != "Two" {
		t.Fatalf("unexpected listings: %+v", listings)
	}
}

func TestFetchPublicListingsWrappedObject(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"listings":[{"id":"a","title":"One"}]}`)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	listings, err := client.FetchPublicListings(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listings) != 1 || listings[0].ID != "a" {
		t.Fatalf("unexpected listings: %+v", listings)
	}
}

func TestFetchPublicListingsErrorMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		io.WriteString(w, `{"message":"catalogue is rebuilding"}`)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.FetchPublicListings(context.Background())

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected an APIError got %v", err)
	}
	if apiErr.StatusCode != http.StatusServiceUnavailable || apiErr.Message != "catalogue is rebuilding" {
		t.Fatalf("unexpected error: %+v", apiErr)
	}
}

func TestFetchPublicListingsErrorWithoutBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.FetchPublicListings(context.Background())

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected an APIError got %v", err)
	}
	if apiErr.Message != "gateway returned status 502" {
		t.Fatalf("unexpected message: %q", apiErr.Message)
	}
}

func TestFetchUserListingsHeadersAndBalance(t *testing.T) {
	ctx := contextkeys.ContextWithTraceID(context.Background(), "trace-123")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/listing/user" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer jwt-1" {
			t.Errorf("unexpected Authorization header %q", got)
		}
		if got := r.Header.Get("X-Trace-ID"); got != "trace-123" {
			t.Errorf("unexpected X-Trace-ID header %q", got)
		}
		io.WriteString(w, `{"listings":[{"id":"mine"}],"balance":{"earnings":100,"withdrawn":40,"available":60}}`)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	listings, balance, err := client.FetchUserListings(ctx, "jwt-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listings) != 1 || listings[0].ID != "mine" {
		t.Fatalf("unexpected listings: %+v", listings)
	}
	if balance.Available != 60 || balance.Earnings != 100 || balance.Withdrawn != 40 {
		t.Fatalf("unexpected balance: %+v", balance)
	}
}

// readMultipart parses a multipart request into the accountDetails document
// and the uploaded file parts.
func readMultipart(t *testing.T, r *http.Request) (details string, files map[string][]byte) {
	t.Helper()

	mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "multipart/form-data" {
		t.Fatalf("expected a multipart request, got %q (%v)", mediaType, err)
	}

	files = make(map[string][]byte)
	reader := multipart.NewReader(r.Body, params["boundary"])
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("failed to read part: %v", err)
		}
		data, _ := io.ReadAll(part)
		if part.FormName() == "accountDetails" {
			details = string(data)
			continue
		}
		if part.FormName() != "images" {
			t.Fatalf("unexpected part %q", part.FormName())
		}
		files[part.FileName()] = data
	}
	return details, files
}

func TestCreateListingOmitsImagesKey(t *testing.T) {
	var details string
	var files map[string][]byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/listing" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		details, files = readMultipart(t, r)
		io.WriteString(w, `{"message":"listing created"}`)
	}))
	defer server.Close()

	sub := testSubmission("")
	sub.PendingImages = []domain.ListingImage{
		{Name: "a.png", Data: []byte{1, 2}},
		{Name: "b.png", Data: []byte{3}},
	}

	client := NewClient(server.URL)
	msg, err := client.CreateListing(context.Background(), "jwt-1", sub)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg != "listing created" {
		t.Fatalf("unexpected message %q", msg)
	}

	if strings.Contains(details, `"images"`) {
		t.Fatalf("create must omit the images key entirely, got %s", details)
	}
	if strings.Contains(details, `"id"`) {
		t.Fatalf("create must omit the id, got %s", details)
	}
	if len(files) != 2 || string(files["a.png"]) != "\x01\x02" || string(files["b.png"]) != "\x03" {
		t.Fatalf("unexpected uploads: %v", files)
	}
}

func TestUpdateListingSendsStoredURLsOnly(t *testing.T) {
	var details string
	var files map[string][]byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/listing" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		details, files = readMultipart(t, r)
		io.WriteString(w, `{"message":"listing updated"}`)
	}))
	defer server.Close()

	sub := testSubmission("lst-1")
	sub.StoredImages = []string{"https://cdn/a.png"}
	sub.PendingImages = []domain.ListingImage{{Name: "new.png", Data: []byte{9}}}

	client := NewClient(server.URL)
	if _, err := client.UpdateListing(context.Background(), "jwt-1", sub); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(details, `"images":["https://cdn/a.png"]`) {
		t.Fatalf("update must carry the stored URLs, got %s", details)
	}
	if !strings.Contains(details, `"id":"lst-1"`) {
		t.Fatalf("update must carry the listing id, got %s", details)
	}
	if len(files) != 1 || string(files["new.png"]) != "\x09" {
		t.Fatalf("unexpected uploads: %v", files)
	}
}

func TestUpdateListingWithoutStoredImagesSendsEmptyArray(t *testing.T) {
	var details string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		details, _ = readMultipart(t, r)
		io.WriteString(w, `{"message":"listing updated"}`)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if _, err := client.UpdateListing(context.Background(), "jwt-1", testSubmission("lst-1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(details, `"images":[]`) {
		t.Fatalf("update must carry an empty images array, got %s", details)
	}
}

func TestSaveListingRejectsContractViolationBeforeSending(t *testing.T) {
	var called bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	sub := testSubmission("")
	sub.Title = "" // violates the wire contract

	client := NewClient(server.URL)
	if _, err := client.CreateListing(context.Background(), "jwt-1", sub); err == nil {
		t.Fatal("expected a contract validation error")
	}
	if called {
		t.Fatal("an invalid payload must never reach the network")
	}
}

func TestSubmitCredentials(t *testing.T) {
	var body string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/listing/add-credential" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("unexpected Content-Type %q", got)
		}
		raw, _ := io.ReadAll(r.Body)
		body = string(raw)
		io.WriteString(w, `{"message":"credentials received"}`)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	msg, err := client.SubmitCredentials(context.Background(), "jwt-1", "lst-1", []domain.FormField{
		{Type: "email", Name: "Email", Value: "a@b.c"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg != "credentials received" {
		t.Fatalf("unexpected message %q", msg)
	}
	if !strings.Contains(body, `"listingId":"lst-1"`) || !strings.Contains(body, `"value":"a@b.c"`) {
		t.Fatalf("unexpected body %s", body)
	}
}

func TestWithdraw(t *testing.T) {
	var body string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/listing/withdraw" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		raw, _ := io.ReadAll(r.Body)
		body = string(raw)
		io.WriteString(w, `{"message":"withdrawal requested"}`)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	msg, err := client.Withdraw(context.Background(), "jwt-1", []domain.FormField{
		{Type: "text", Name: "Bank Name", Value: "First Citizens"},
	}, 500)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg != "withdrawal requested" {
		t.Fatalf("unexpected message %q", msg)
	}
	if !strings.Contains(body, `"amount":500`) {
		t.Fatalf("unexpected body %s", body)
	}
}

func TestWithdrawRejectsNonPositiveAmount(t *testing.T) {
	var called bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if _, err := client.Withdraw(context.Background(), "jwt-1", []domain.FormField{
		{Name: "Bank Name", Value: "First Citizens"},
	}, 0); err == nil {
		t.Fatal("expected a contract validation error")
	}
	if called {
		t.Fatal("an invalid payload must never reach the network")
	}
}
