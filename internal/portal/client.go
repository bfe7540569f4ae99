package portal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultPageSize  = 100
	tokenLifetimeMin = 60
)

// Config represents the configuration for a portal client.
type Config struct {
	// BaseURL is the base URL of the portal instance, e.g.
	// https://example.maps.arcgis.com
	BaseURL string
	// Username and Password authenticate against the portal's token
	// endpoint. Username is case sensitive.
	Username string
	Password string
	// HTTPClient is an optional custom HTTP client.
	HTTPClient *http.Client
	// Timeout is the default request timeout.
	Timeout time.Duration
}

// Client is a REST client for the portal sharing API. It implements Portal.
// It is not safe for concurrent use; the migration tooling is sequential by
// design.
type Client struct {
	config *Config
	client *http.Client

	token       string
	tokenExpiry time.Time
}

var _ Portal = (*Client)(nil)

// NewClient creates a new portal client with the given configuration.
func NewClient(config *Config) (*Client, error) {
	if config == nil || config.BaseURL == "" {
		return nil, errors.New("portal base URL is required")
	}

	client := config.HTTPClient
	if client == nil {
		timeout := config.Timeout
		if timeout == 0 {
			timeout = defaultTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	return &Client{
		config: config,
		client: client,
	}, nil
}

// APIError is an error response from the portal. The portal reports most
// failures inside a JSON envelope with HTTP status 200, so Code is the
// authoritative field.
type APIError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("portal API error (http %d, code %d): %s", e.StatusCode, e.Code, e.Message)
}

type apiError struct {
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details"`
}

type errorEnvelope struct {
	Error *apiError `json:"error"`
}

type tokenResponse struct {
	Token   string `json:"token"`
	Expires int64  `json:"expires"` // epoch milliseconds
}

func (c *Client) restURL(path string) string {
	return strings.TrimSuffix(c.config.BaseURL, "/") + "/sharing/rest" + path
}

// ensureToken fetches a session token if none is held or the held one is
// about to expire.
func (c *Client) ensureToken(ctx context.Context) error {
	if c.token != "" && time.Until(c.tokenExpiry) > time.Minute {
		return nil
	}

	form := url.Values{}
	form.Set("username", c.config.Username)
	form.Set("password", c.config.Password)
	form.Set("referer", c.config.BaseURL)
	form.Set("expiration", strconv.Itoa(tokenLifetimeMin))
	form.Set("f", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.restURL("/generateToken"),
		strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("building token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("requesting token: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading token response: %w", err)
	}
	if err := checkAPIError(resp.StatusCode, body); err != nil {
		return err
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return fmt.Errorf("decoding token response: %w", err)
	}
	if tr.Token == "" {
		return &APIError{StatusCode: resp.StatusCode, Message: "empty token returned"}
	}

	c.token = tr.Token
	c.tokenExpiry = time.UnixMilli(tr.Expires)
	return nil
}

// get performs an authenticated GET and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	if err := c.ensureToken(ctx); err != nil {
		return err
	}
	if params == nil {
		params = url.Values{}
	}
	params.Set("f", "json")
	params.Set("token", c.token)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.restURL(path)+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	return c.do(req, out)
}

// post performs an authenticated form POST and decodes the JSON response
// into out.
func (c *Client) post(ctx context.Context, path string, params url.Values, out any) error {
	if err := c.ensureToken(ctx); err != nil {
		return err
	}
	if params == nil {
		params = url.Values{}
	}
	params.Set("f", "json")
	params.Set("token", c.token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.restURL(path),
		strings.NewReader(params.Encode()))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req, out)
}

// postMultipart performs an authenticated multipart POST with a single file
// part and decodes the JSON response into out.
func (c *Client) postMultipart(ctx context.Context, path string, params url.Values, filename string, data io.Reader, out any) error {
	if err := c.ensureToken(ctx); err != nil {
		return err
	}

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	params.Set("f", "json")
	params.Set("token", c.token)
	for key, values := range params {
		for _, v := range values {
			if err := w.WriteField(key, v); err != nil {
				return fmt.Errorf("writing form field %s: %w", key, err)
			}
		}
	}
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("creating file part: %w", err)
	}
	if _, err := io.Copy(part, data); err != nil {
		return fmt.Errorf("copying file data: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finalizing multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.restURL(path), &body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	if err := checkAPIError(resp.StatusCode, body); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func checkAPIError(statusCode int, body []byte) error {
	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != nil {
		return &APIError{
			StatusCode: statusCode,
			Code:       envelope.Error.Code,
			Message:    envelope.Error.Message,
		}
	}
	if statusCode >= http.StatusBadRequest {
		return &APIError{StatusCode: statusCode, Message: http.StatusText(statusCode)}
	}
	return nil
}

// Properties fetches the deployment properties of the portal.
func (c *Client) Properties(ctx context.Context) (*Properties, error) {
	var props Properties
	if err := c.get(ctx, "/portals/self", nil, &props); err != nil {
		return nil, fmt.Errorf("fetching portal properties: %w", err)
	}
	return &props, nil
}

type userSearchResponse struct {
	Total     int           `json:"total"`
	NextStart int           `json:"nextStart"`
	Results   []*UserRecord `json:"results"`
}

// SearchUsers returns all users matching query. An empty query matches the
// whole organization directory. Results are paged through until exhausted.
func (c *Client) SearchUsers(ctx context.Context, query string) ([]*UserRecord, error) {
	if query == "" {
		query = "*"
	}

	var users []*UserRecord
	start := 1
	for start > 0 {
		params := url.Values{}
		params.Set("q", query)
		params.Set("num", strconv.Itoa(defaultPageSize))
		params.Set("start", strconv.Itoa(start))

		var page userSearchResponse
		if err := c.get(ctx, "/community/users", params, &page); err != nil {
			return nil, fmt.Errorf("searching users: %w", err)
		}
		users = append(users, page.Results...)
		start = page.NextStart
	}
	return users, nil
}

// Me returns the authenticated identity.
func (c *Client) Me(ctx context.Context) (*UserRecord, error) {
	var user UserRecord
	if err := c.get(ctx, "/community/self", nil, &user); err != nil {
		return nil, fmt.Errorf("fetching authenticated user: %w", err)
	}
	return &user, nil
}

// GetUser returns one user by username.
func (c *Client) GetUser(ctx context.Context, username string) (*UserRecord, error) {
	var user UserRecord
	if err := c.get(ctx, "/community/users/"+url.PathEscape(username), nil, &user); err != nil {
		return nil, fmt.Errorf("fetching user %s: %w", username, err)
	}
	return &user, nil
}

type userContentResponse struct {
	Folders []*Folder     `json:"folders"`
	Items   []*ItemRecord `json:"items"`
}

// UserFolders returns the content folders of a user.
func (c *Client) UserFolders(ctx context.Context, username string) ([]*Folder, error) {
	var content userContentResponse
	if err := c.get(ctx, "/content/users/"+url.PathEscape(username), nil, &content); err != nil {
		return nil, fmt.Errorf("fetching folders for %s: %w", username, err)
	}
	return content.Folders, nil
}

// UserItems returns the root-level content items of a user.
func (c *Client) UserItems(ctx context.Context, username string) ([]*ItemRecord, error) {
	var content userContentResponse
	if err := c.get(ctx, "/content/users/"+url.PathEscape(username), nil, &content); err != nil {
		return nil, fmt.Errorf("fetching items for %s: %w", username, err)
	}
	return content.Items, nil
}

type groupSearchResponse struct {
	Total     int            `json:"total"`
	NextStart int            `json:"nextStart"`
	Results   []*GroupRecord `json:"results"`
}

// SearchGroups returns all groups matching query.
func (c *Client) SearchGroups(ctx context.Context, query string) ([]*GroupRecord, error) {
	var groups []*GroupRecord
	start := 1
	for start > 0 {
		params := url.Values{}
		params.Set("q", query)
		params.Set("num", strconv.Itoa(defaultPageSize))
		params.Set("start", strconv.Itoa(start))

		var page groupSearchResponse
		if err := c.get(ctx, "/community/groups", params, &page); err != nil {
			return nil, fmt.Errorf("searching groups: %w", err)
		}
		groups = append(groups, page.Results...)
		start = page.NextStart
	}
	return groups, nil
}

type createGroupResponse struct {
	Success bool         `json:"success"`
	Group   *GroupRecord `json:"group"`
}

// CreateGroup creates a group from a definition and returns the created
// record.
func (c *Client) CreateGroup(ctx context.Context, def *GroupDefinition) (*GroupRecord, error) {
	if def == nil {
		return nil, errors.New("group definition cannot be nil")
	}

	params := url.Values{}
	params.Set("title", def.Title)
	params.Set("description", def.Description)
	params.Set("snippet", def.Snippet)
	params.Set("tags", strings.Join(def.Tags, ","))
	params.Set("phone", def.Phone)
	params.Set("access", string(def.Access))
	params.Set("isInvitationOnly", strconv.FormatBool(def.IsInvitationOnly))

	var resp createGroupResponse
	if err := c.post(ctx, "/community/createGroup", params, &resp); err != nil {
		return nil, fmt.Errorf("creating group %q: %w", def.Title, err)
	}
	if resp.Group == nil {
		return nil, &APIError{Message: fmt.Sprintf("group %q was not created", def.Title)}
	}
	return resp.Group, nil
}

type groupMembersResponse struct {
	Owner  string   `json:"owner"`
	Admins []string `json:"admins"`
	Users  []string `json:"users"`
}

// GroupMembers returns the owner and member usernames of a group.
func (c *Client) GroupMembers(ctx context.Context, groupID string) (*GroupMembership, error) {
	var resp groupMembersResponse
	if err := c.get(ctx, "/community/groups/"+url.PathEscape(groupID)+"/users", nil, &resp); err != nil {
		return nil, fmt.Errorf("fetching members of group %s: %w", groupID, err)
	}
	return &GroupMembership{Owner: resp.Owner, Users: resp.Users}, nil
}

type successResponse struct {
	Success bool `json:"success"`
}

// ReassignGroup transfers ownership of a group to another user.
func (c *Client) ReassignGroup(ctx context.Context, groupID, owner string) error {
	params := url.Values{}
	params.Set("targetUsername", owner)

	var resp successResponse
	if err := c.post(ctx, "/community/groups/"+url.PathEscape(groupID)+"/reassign", params, &resp); err != nil {
		return fmt.Errorf("reassigning group %s to %s: %w", groupID, owner, err)
	}
	if !resp.Success {
		return &APIError{Message: fmt.Sprintf("reassigning group %s was rejected", groupID)}
	}
	return nil
}

// AddGroupMembers adds users to a group in one bulk call.
func (c *Client) AddGroupMembers(ctx context.Context, groupID string, users []string) error {
	params := url.Values{}
	params.Set("users", strings.Join(users, ","))

	var resp successResponse
	if err := c.post(ctx, "/community/groups/"+url.PathEscape(groupID)+"/addUsers", params, &resp); err != nil {
		return fmt.Errorf("adding members to group %s: %w", groupID, err)
	}
	return nil
}

type itemSearchResponse struct {
	Total     int           `json:"total"`
	NextStart int           `json:"nextStart"`
	Results   []*ItemRecord `json:"results"`
}

// SearchItems returns items matching query, optionally restricted to one
// item type.
func (c *Client) SearchItems(ctx context.Context, query, itemType string) ([]*ItemRecord, error) {
	var items []*ItemRecord
	start := 1
	for start > 0 {
		params := url.Values{}
		params.Set("q", query)
		if itemType != "" {
			params.Set("types", itemType)
		}
		params.Set("num", strconv.Itoa(defaultPageSize))
		params.Set("start", strconv.Itoa(start))

		var page itemSearchResponse
		if err := c.get(ctx, "/search", params, &page); err != nil {
			return nil, fmt.Errorf("searching items: %w", err)
		}
		items = append(items, page.Results...)
		start = page.NextStart
	}
	return items, nil
}

type addItemResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// AddItem uploads a new content item owned by the authenticated user,
// optionally into a named folder.
func (c *Client) AddItem(ctx context.Context, def *ItemDefinition, folder string, data io.Reader) (*ItemRecord, error) {
	if def == nil {
		return nil, errors.New("item definition cannot be nil")
	}

	params := url.Values{}
	params.Set("title", def.Title)
	params.Set("type", def.Type)
	params.Set("tags", strings.Join(def.Tags, ","))

	path := "/content/users/" + url.PathEscape(c.config.Username)
	if folder != "" {
		path += "/" + url.PathEscape(folder)
	}
	path += "/addItem"

	var resp addItemResponse
	if data != nil {
		if err := c.postMultipart(ctx, path, params, def.Title, data, &resp); err != nil {
			return nil, fmt.Errorf("adding item %q: %w", def.Title, err)
		}
	} else {
		if err := c.post(ctx, path, params, &resp); err != nil {
			return nil, fmt.Errorf("adding item %q: %w", def.Title, err)
		}
	}
	if !resp.Success {
		return nil, &APIError{Message: fmt.Sprintf("item %q was not created", def.Title)}
	}

	return &ItemRecord{
		ID:    resp.ID,
		Title: def.Title,
		Type:  def.Type,
		Owner: c.config.Username,
		Tags:  def.Tags,
	}, nil
}

type publishResponse struct {
	Services []*ItemRecord `json:"services"`
}

// PublishItem publishes an uploaded file item (zipped shapefile or CSV) as a
// feature layer owned by the authenticated user.
func (c *Client) PublishItem(ctx context.Context, itemID string, opts *PublishOptions) (*ItemRecord, error) {
	params := url.Values{}
	params.Set("itemID", itemID)
	if opts != nil {
		encoded, err := json.Marshal(opts)
		if err != nil {
			return nil, fmt.Errorf("encoding publish options: %w", err)
		}
		params.Set("publishParameters", string(encoded))
	}

	var resp publishResponse
	path := "/content/users/" + url.PathEscape(c.config.Username) + "/publish"
	if err := c.post(ctx, path, params, &resp); err != nil {
		return nil, fmt.Errorf("publishing item %s: %w", itemID, err)
	}
	if len(resp.Services) == 0 {
		return nil, &APIError{Message: fmt.Sprintf("publishing item %s produced no services", itemID)}
	}
	return resp.Services[0], nil
}

// MoveItem moves an item owned by the authenticated user into a folder.
func (c *Client) MoveItem(ctx context.Context, itemID, folder string) error {
	params := url.Values{}
	params.Set("folder", folder)

	var resp successResponse
	path := "/content/users/" + url.PathEscape(c.config.Username) + "/items/" + url.PathEscape(itemID) + "/move"
	if err := c.post(ctx, path, params, &resp); err != nil {
		return fmt.Errorf("moving item %s: %w", itemID, err)
	}
	if !resp.Success {
		return &APIError{Message: fmt.Sprintf("moving item %s was rejected", itemID)}
	}
	return nil
}

// DeleteItem deletes an item owned by the authenticated user.
func (c *Client) DeleteItem(ctx context.Context, itemID string) error {
	var resp successResponse
	path := "/content/users/" + url.PathEscape(c.config.Username) + "/items/" + url.PathEscape(itemID) + "/delete"
	if err := c.post(ctx, path, nil, &resp); err != nil {
		return fmt.Errorf("deleting item %s: %w", itemID, err)
	}
	if !resp.Success {
		return &APIError{Message: fmt.Sprintf("deleting item %s was rejected", itemID)}
	}
	return nil
}

type createFolderResponse struct {
	Success bool    `json:"success"`
	Folder  *Folder `json:"folder"`
}

// CreateFolder creates a content folder for a user. Creating a folder that
// already exists is reported as a failure by the portal; callers that want
// create-if-absent semantics should ignore that error.
func (c *Client) CreateFolder(ctx context.Context, username, name string) (*Folder, error) {
	params := url.Values{}
	params.Set("title", name)

	var resp createFolderResponse
	path := "/content/users/" + url.PathEscape(username) + "/createFolder"
	if err := c.post(ctx, path, params, &resp); err != nil {
		return nil, fmt.Errorf("creating folder %q: %w", name, err)
	}
	if resp.Folder == nil {
		return nil, &APIError{Message: fmt.Sprintf("folder %q was not created", name)}
	}
	return resp.Folder, nil
}
