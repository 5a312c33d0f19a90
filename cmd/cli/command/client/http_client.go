package client

// http_client.go handles HTTP client functionality for the animehub CLI.

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// Auth request/response structures
type RegisterRequest struct {
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID        string  `json:"id"`
	Email     *string `json:"email,omitempty"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	IsAdmin   bool    `json:"is_admin"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type LoginResponse struct {
	Token TokenResponse `json:"token"`
	User  UserResponse  `json:"user"`
}

// Catalogue response structures
type TagResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type AnimePostResponse struct {
	ID            int64         `json:"id"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	Year          *int          `json:"year,omitempty"`
	Type          string        `json:"type"`
	Studio        *string       `json:"studio,omitempty"`
	Status        string        `json:"status"`
	ViewCount     int64         `json:"view_count"`
	Author        UserResponse  `json:"author"`
	Tags          []TagResponse `json:"tags"`
	AverageRating float64       `json:"average_rating"`
	ReviewCount   int64         `json:"review_count"`
	CreatedAt     *time.Time    `json:"created_at,omitempty"`
}

// Message response structures
type MessageResponse struct {
	ID         int64     `json:"id"`
	SenderID   string    `json:"sender_id"`
	ReceiverID string    `json:"receiver_id"`
	Content    string    `json:"content"`
	IsRead     bool      `json:"is_read"`
	CreatedAt  time.Time `json:"created_at"`
}

type ConversationResponse struct {
	OtherUser   UserResponse    `json:"other_user"`
	LastMessage MessageResponse `json:"last_message"`
	UnreadCount int64           `json:"unread_count"`
}

// constructor for HTTP client
func NewHTTPClient(apiURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: apiURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SetToken attaches a bearer token to subsequent requests.
func (c *HTTPClient) SetToken(token string) {
	c.token = token
}

func (c *HTTPClient) Register(request *RegisterRequest) (*UserResponse, error) {
	jsonData, err := json.Marshal(request)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(c.baseURL+"/api/auth/register", "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("registration failed with status: %s", resp.Status)
	}

	var result UserResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) Login(request *LoginRequest) (*LoginResponse, error) {
	jsonData, err := json.Marshal(request)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(c.baseURL+"/api/auth/login", "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("login failed with status: %s", resp.Status)
	}

	var result LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

// get performs an authenticated GET and decodes the response into out.
func (c *HTTPClient) get(path string, out any) error {
	req, err := http.NewRequest("GET", c.baseURL+path, nil)
	if err != nil {
		return err
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("request failed with status: %s", resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// post performs an authenticated bodyless POST and decodes into out when
// out is non-nil.
func (c *HTTPClient) post(path string, out any) error {
	req, err := http.NewRequest("POST", c.baseURL+path, nil)
	if err != nil {
		return err
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("request failed with status: %s", resp.Status)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *HTTPClient) ListAnime() ([]AnimePostResponse, error) {
	var posts []AnimePostResponse
	if err := c.get("/api/anime", &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *HTTPClient) ListPendingAnime() ([]AnimePostResponse, error) {
	var posts []AnimePostResponse
	if err := c.get("/api/admin/anime/pending", &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *HTTPClient) ApproveAnime(id int64) (*AnimePostResponse, error) {
	var post AnimePostResponse
	if err := c.post(fmt.Sprintf("/api/admin/anime/%d/approve", id), &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *HTTPClient) RejectAnime(id int64) (*AnimePostResponse, error) {
	var post AnimePostResponse
	if err := c.post(fmt.Sprintf("/api/admin/anime/%d/reject", id), &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *HTTPClient) ListConversations() ([]ConversationResponse, error) {
	var conversations []ConversationResponse
	if err := c.get("/api/messages/conversations", &conversations); err != nil {
		return nil, err
	}
	return conversations, nil
}
