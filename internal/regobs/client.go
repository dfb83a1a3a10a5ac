package regobs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"snowreg/internal/region"
)

// Endpoints of the observation service. The test environment accepts
// registrations without publishing them.
const (
	APIProd  = "https://api.regobs.no/v5"
	AuthProd = "https://nveb2c01prod.b2clogin.com/nveb2c01prod.onmicrosoft.com/oauth2/v2.0/token?p=B2C_1_ROPC_Auth"
	APITest  = "https://test-api.regobs.no/v5"
	AuthTest = "https://nveb2c01test.b2clogin.com/nveb2c01test.onmicrosoft.com/oauth2/v2.0/token?p=B2C_1_ROPC_Auth"
)

// Language selects the language of returned registrations.
type Language int

const (
	Norwegian Language = 1
	English   Language = 2
)

const searchPageSize = 50

// SubmissionMetrics counts the write operations a Connection performs.
// A nil implementation disables counting.
type SubmissionMetrics interface {
	RegistrationSubmitted()
	ImageUploaded()
}

// Connection talks to the observation service. Fetching operations
// work unauthenticated; Submit requires Authenticate first.
type Connection struct {
	httpClient *http.Client
	clock      clockwork.Clock
	logger     *slog.Logger
	metrics    SubmissionMetrics

	apiURL  string
	authURL string

	Language Language

	username      string
	password      string
	clientID      string
	appToken      string
	accessToken   string
	expires       time.Time
	guid          string
	authenticated bool
}

// NewConnection builds a Connection against the production or test
// environment.
func NewConnection(prod bool, logger *slog.Logger) *Connection {
	apiURL, authURL := APIProd, AuthProd
	if !prod {
		apiURL, authURL = APITest, AuthTest
	}
	return &Connection{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		clock:      clockwork.NewRealClock(),
		logger:     logger.With("component", "regobs_client"),
		apiURL:     apiURL,
		authURL:    authURL,
		Language:   Norwegian,
	}
}

// WithMetrics attaches counters for submissions and image uploads.
func (c *Connection) WithMetrics(m SubmissionMetrics) *Connection {
	c.metrics = m
	return c
}

// WithClock replaces the clock used for token expiry checks.
func (c *Connection) WithClock(clock clockwork.Clock) *Connection {
	c.clock = clock
	return c
}

// WithHTTPClient replaces the underlying HTTP client.
func (c *Connection) WithHTTPClient(client *http.Client) *Connection {
	c.httpClient = client
	return c
}

// WithBaseURLs overrides the service endpoints. Empty values keep the
// endpoint selected by NewConnection.
func (c *Connection) WithBaseURLs(apiURL, authURL string) *Connection {
	if apiURL != "" {
		c.apiURL = apiURL
	}
	if authURL != "" {
		c.authURL = authURL
	}
	return c
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	// The auth endpoint encodes the lifetime as a JSON string.
	ExpiresIn json.Number `json:"expires_in"`
}

// Authenticate logs in with an account of the service using the
// resource owner password flow. The optional appToken is the legacy
// API token header.
func (c *Connection) Authenticate(ctx context.Context, username, password, clientID, appToken string) error {
	c.username = username
	c.password = password
	c.clientID = clientID
	c.appToken = appToken

	form := url.Values{
		"client_id":  {clientID},
		"scope":      {fmt.Sprintf("openid %s", clientID)},
		"grant_type": {"password"},
		"username":   {username},
		"password":   {password},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.authURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build auth request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch token: %w", err)
	}
	defer func(body io.ReadCloser) {
		_ = body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: token endpoint returned status %d: %s", ErrAPI, resp.StatusCode, string(body))
	}

	var token tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return fmt.Errorf("failed to decode token response: %w", err)
	}
	expiresIn, err := token.ExpiresIn.Int64()
	if err != nil {
		return fmt.Errorf("failed to parse token expiry: %w", err)
	}
	c.accessToken = token.AccessToken
	c.expires = c.clock.Now().Add(time.Duration(expiresIn) * time.Second)

	var page struct {
		Guid string `json:"Guid"`
	}
	if err := c.getJSON(ctx, "/Account/Mypage", &page); err != nil {
		return err
	}
	c.guid = page.Guid
	c.authenticated = true
	c.logger.Info("authenticated", "username", username)
	return nil
}

// Guid returns the account id assigned at authentication.
func (c *Connection) Guid() string {
	return c.guid
}

// Authenticated reports whether Authenticate has succeeded.
func (c *Connection) Authenticated() bool {
	return c.authenticated
}

func (c *Connection) ensureFreshToken(ctx context.Context) error {
	if !c.authenticated {
		return ErrNotAuthenticated
	}
	// Re-authenticate tokens about to lapse, so a slow upload does
	// not run past expiry mid-submission.
	if c.expires.Before(c.clock.Now().Add(60 * time.Second)) {
		c.logger.Debug("access token expiring, re-authenticating")
		return c.Authenticate(ctx, c.username, c.password, c.clientID, c.appToken)
	}
	return nil
}

// Submit uploads the registration's images, posts it, and returns the
// stored registration as the service rendered it.
func (c *Connection) Submit(ctx context.Context, registration *SnowRegistration) (*SnowRegistration, error) {
	if err := c.ensureFreshToken(ctx); err != nil {
		return nil, err
	}
	if !registration.Any() {
		return nil, fmt.Errorf("%w: registration", ErrNoObservation)
	}

	for _, img := range registration.Images() {
		if err := c.uploadImage(ctx, img); err != nil {
			return nil, err
		}
	}

	body, err := json.Marshal(registration)
	if err != nil {
		return nil, fmt.Errorf("failed to encode registration: %w", err)
	}
	var submitted struct {
		RegID int `json:"RegId"`
	}
	if err := c.postJSON(ctx, "/Registration", body, &submitted); err != nil {
		return nil, err
	}
	if c.metrics != nil {
		c.metrics.RegistrationSubmitted()
	}
	c.logger.Info("registration submitted", "reg_id", submitted.RegID)
	return c.Get(ctx, submitted.RegID)
}

func (c *Connection) uploadImage(ctx context.Context, img *Image) error {
	file, err := os.Open(img.FilePath)
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(file)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", img.FilePath)
	if err != nil {
		return fmt.Errorf("failed to build upload: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("failed to read image: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finish upload body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/Attachment/Upload", &buf)
	if err != nil {
		return fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.setAuthHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to upload image: %w", err)
	}
	defer func(body io.ReadCloser) {
		_ = body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: upload returned status %d: %s", ErrAPI, resp.StatusCode, string(body))
	}

	var id string
	if err := json.NewDecoder(resp.Body).Decode(&id); err != nil {
		return fmt.Errorf("failed to decode upload id: %w", err)
	}
	uploadID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("upload id %q is not a uuid: %w", id, err)
	}
	img.uploadID = uploadID.String()
	if c.metrics != nil {
		c.metrics.ImageUploaded()
	}
	c.logger.Debug("image uploaded", "path", img.FilePath, "upload_id", img.uploadID)
	return nil
}

// Get fetches a stored registration by id.
func (c *Connection) Get(ctx context.Context, registrationID int) (*SnowRegistration, error) {
	var reg SnowRegistration
	path := fmt.Sprintf("/Registration/%d/%d", registrationID, c.Language)
	if err := c.getJSON(ctx, path, &reg); err != nil {
		return nil, err
	}
	return &reg, nil
}

// SearchCriteria narrows a Search. Zero-valued fields are ignored.
type SearchCriteria struct {
	ObservationTypes    []ObservationType
	ObserverCompetences []Competence
	Regions             []region.SnowRegion
	FromObsTime         *time.Time
	ToObsTime           *time.Time
	FromChangeTime      *time.Time
	ToChangeTime        *time.Time
	GroupID             *int
	ObserverID          *int
	ObserverNickname    string
	LocationID          *int
	TextSearch          string
}

type searchQuery struct {
	SelectedGeoHazards        []int               `json:"SelectedGeoHazards"`
	SelectedRegistrationTypes []searchRegType     `json:"SelectedRegistrationTypes,omitempty"`
	GroupID                   *int                `json:"GroupId,omitempty"`
	ObserverID                *int                `json:"ObserverId,omitempty"`
	ObserverCompetence        []Competence        `json:"ObserverCompetence,omitempty"`
	ObserverNickname          *string             `json:"ObserverNickName,omitempty"`
	FromObsTime               *string             `json:"FromDtObsTime,omitempty"`
	ToObsTime                 *string             `json:"ToDtObsTime,omitempty"`
	FromChangeTime            *string             `json:"FromDtChangeTime,omitempty"`
	ToChangeTime              *string             `json:"ToDtChangeTime,omitempty"`
	SelectedRegions           []region.SnowRegion `json:"SelectedRegions,omitempty"`
	LocationID                *int                `json:"LocationId,omitempty"`
	TextSearch                *string             `json:"TextSearch,omitempty"`
	Offset                    int                 `json:"Offset"`
	NumberOfRecords           int                 `json:"NumberOfRecords"`
}

type searchRegType struct {
	ID ObservationType `json:"id"`
}

// Search prepares a query for snow registrations. The returned Search
// fetches lazily; use Count for the total and Next to iterate.
func (c *Connection) Search(criteria SearchCriteria) *Search {
	query := searchQuery{
		SelectedGeoHazards: []int{GeoHazardSnow},
		GroupID:            criteria.GroupID,
		ObserverID:         criteria.ObserverID,
		ObserverCompetence: criteria.ObserverCompetences,
		SelectedRegions:    criteria.Regions,
		LocationID:         criteria.LocationID,
	}
	for _, t := range criteria.ObservationTypes {
		query.SelectedRegistrationTypes = append(query.SelectedRegistrationTypes, searchRegType{ID: t})
	}
	if criteria.ObserverNickname != "" {
		nick := criteria.ObserverNickname
		query.ObserverNickname = &nick
	}
	if criteria.TextSearch != "" {
		text := criteria.TextSearch
		query.TextSearch = &text
	}
	setTime := func(dst **string, t *time.Time) {
		if t != nil {
			s := formatTime(*t)
			*dst = &s
		}
	}
	setTime(&query.FromObsTime, criteria.FromObsTime)
	setTime(&query.ToObsTime, criteria.ToObsTime)
	setTime(&query.FromChangeTime, criteria.FromChangeTime)
	setTime(&query.ToChangeTime, criteria.ToChangeTime)

	return &Search{conn: c, query: query}
}

// Search is a lazily fetched result set, pulled from the service one
// page at a time.
type Search struct {
	conn   *Connection
	query  searchQuery
	offset int
	cache  []*SnowRegistration
	done   bool
}

// Count posts the query to the count endpoint and returns the total
// number of matches.
func (s *Search) Count(ctx context.Context) (int, error) {
	body, err := json.Marshal(s.query)
	if err != nil {
		return 0, fmt.Errorf("failed to encode search: %w", err)
	}
	var count struct {
		TotalMatches int `json:"TotalMatches"`
	}
	if err := s.conn.postJSON(ctx, "/Search/Count", body, &count); err != nil {
		return 0, err
	}
	return count.TotalMatches, nil
}

// Next returns the following registration of the result set, or nil
// when the set is exhausted. Transient page fetch failures are
// retried a few times before giving up.
func (s *Search) Next(ctx context.Context) (*SnowRegistration, error) {
	if len(s.cache) == 0 && !s.done {
		if err := s.fetchPage(ctx); err != nil {
			return nil, err
		}
	}
	if len(s.cache) == 0 {
		return nil, nil
	}
	reg := s.cache[0]
	s.cache = s.cache[1:]
	return reg, nil
}

// All drains the remaining result set.
func (s *Search) All(ctx context.Context) ([]*SnowRegistration, error) {
	var out []*SnowRegistration
	for {
		reg, err := s.Next(ctx)
		if err != nil {
			return nil, err
		}
		if reg == nil {
			return out, nil
		}
		out = append(out, reg)
	}
}

const searchRetries = 5

func (s *Search) fetchPage(ctx context.Context) error {
	query := s.query
	query.Offset = s.offset
	query.NumberOfRecords = searchPageSize
	body, err := json.Marshal(query)
	if err != nil {
		return fmt.Errorf("failed to encode search: %w", err)
	}

	var page []*SnowRegistration
	var lastErr error
	for attempt := 1; attempt <= searchRetries; attempt++ {
		page = nil
		lastErr = s.conn.postJSON(ctx, "/Search", body, &page)
		if lastErr == nil {
			break
		}
		if ctx.Err() != nil {
			return lastErr
		}
		s.conn.logger.Warn("search page fetch failed", "attempt", attempt, "error", lastErr)
	}
	if lastErr != nil {
		return lastErr
	}

	s.cache = page
	s.offset += len(page)
	if len(page) == 0 {
		s.done = true
	}
	return nil
}

func (c *Connection) setAuthHeaders(req *http.Request) {
	if c.appToken != "" {
		req.Header.Set("regObs_apptoken", c.appToken)
	}
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}
}

func (c *Connection) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	c.setAuthHeaders(req)
	return c.doJSON(req, out)
}

func (c *Connection) postJSON(ctx context.Context, path string, body []byte, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.setAuthHeaders(req)
	return c.doJSON(req, out)
}

func (c *Connection) doJSON(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(body io.ReadCloser) {
		_ = body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: %s returned status %d: %s", ErrAPI, req.URL.Path, resp.StatusCode, string(body))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
