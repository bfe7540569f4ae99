package portal

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func tokenHandler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST token request, got %s", r.Method)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("Failed to parse token form: %v", err)
		}
		if r.PostForm.Get("username") == "" || r.PostForm.Get("password") == "" {
			t.Error("Expected username and password in token request")
		}
		json.NewEncoder(w).Encode(map[string]any{
			"token":   "tok123",
			"expires": 4102444800000,
		})
	}
}

func newTestClient(t *testing.T, mux *http.ServeMux) (*Client, *httptest.Server) {
	mux.HandleFunc("/sharing/rest/generateToken", tokenHandler(t))
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client, err := NewClient(&Config{
		BaseURL:  server.URL,
		Username: "admin",
		Password: "secret",
	})
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	return client, server
}

func TestNewClientRequiresBaseURL(t *testing.T) {
	if _, err := NewClient(nil); err == nil {
		t.Error("Expected error for nil config")
	}
	if _, err := NewClient(&Config{}); err == nil {
		t.Error("Expected error for missing base URL")
	}
}

func TestProperties(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/sharing/rest/portals/self", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("token") != "tok123" {
			t.Errorf("Expected token on request, got %q", r.URL.Query().Get("token"))
		}
		if r.URL.Query().Get("f") != "json" {
			t.Error("Expected f=json on request")
		}
		json.NewEncoder(w).Encode(Properties{ID: "org1", Name: "Example", PortalMode: ModeMultiTenant})
	})
	client, _ := newTestClient(t, mux)

	props, err := client.Properties(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if props.ID != "org1" || props.PortalMode != ModeMultiTenant {
		t.Errorf("Unexpected properties: %+v", props)
	}
	if !props.HasOrgID() {
		t.Error("Expected HasOrgID to be true")
	}
}

func TestSearchGroupsPagination(t *testing.T) {
	mux := http.NewServeMux()
	calls := 0
	mux.HandleFunc("/sharing/rest/community/groups", func(w http.ResponseWriter, r *http.Request) {
		calls++
		switch r.URL.Query().Get("start") {
		case "1":
			json.NewEncoder(w).Encode(map[string]any{
				"total":     3,
				"nextStart": 3,
				"results":   []GroupRecord{{ID: "g1"}, {ID: "g2"}},
			})
		case "3":
			json.NewEncoder(w).Encode(map[string]any{
				"total":     3,
				"nextStart": -1,
				"results":   []GroupRecord{{ID: "g3"}},
			})
		default:
			t.Errorf("Unexpected start parameter %q", r.URL.Query().Get("start"))
		}
	})
	client, _ := newTestClient(t, mux)

	groups, err := client.SearchGroups(context.Background(), "!owner:esri_* & !Basemaps")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(groups) != 3 {
		t.Errorf("Expected 3 groups, got %d", len(groups))
	}
	if calls != 2 {
		t.Errorf("Expected 2 pages, got %d", calls)
	}
}

func TestCreateGroup(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/sharing/rest/community/createGroup", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatalf("Failed to parse form: %v", err)
		}
		if r.PostForm.Get("title") != "Analysts" {
			t.Errorf("Expected title Analysts, got %q", r.PostForm.Get("title"))
		}
		if r.PostForm.Get("access") != "public" {
			t.Errorf("Expected access public, got %q", r.PostForm.Get("access"))
		}
		if r.PostForm.Get("tags") != "gis,analysis" {
			t.Errorf("Expected joined tags, got %q", r.PostForm.Get("tags"))
		}
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"group":   GroupRecord{ID: "new1", Title: "Analysts", Access: AccessPublic},
		})
	})
	client, _ := newTestClient(t, mux)

	created, err := client.CreateGroup(context.Background(), &GroupDefinition{
		Title:  "Analysts",
		Tags:   []string{"gis", "analysis"},
		Access: AccessPublic,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if created.ID != "new1" {
		t.Errorf("Expected created id new1, got %q", created.ID)
	}
}

func TestGroupMembers(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/sharing/rest/community/groups/g1/users", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"owner":  "alice",
			"admins": []string{"alice"},
			"users":  []string{"bob", "carol"},
		})
	})
	client, _ := newTestClient(t, mux)

	members, err := client.GroupMembers(context.Background(), "g1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if members.Owner != "alice" {
		t.Errorf("Expected owner alice, got %q", members.Owner)
	}
	if len(members.Users) != 2 {
		t.Errorf("Expected 2 users, got %d", len(members.Users))
	}
}

func TestAPIErrorEnvelope(t *testing.T) {
	// the portal reports failures inside a 200 response
	mux := http.NewServeMux()
	mux.HandleFunc("/sharing/rest/community/self", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"code":    498,
				"message": "Invalid token.",
			},
		})
	})
	client, _ := newTestClient(t, mux)

	_, err := client.Me(context.Background())
	if err == nil {
		t.Fatal("Expected an error")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected APIError, got %T", err)
	}
	if apiErr.Code != 498 {
		t.Errorf("Expected code 498, got %d", apiErr.Code)
	}
}

func TestBadCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"code":    400,
				"message": "Unable to generate token.",
			},
		})
	}))
	defer server.Close()

	client, err := NewClient(&Config{BaseURL: server.URL, Username: "admin", Password: "wrong"})
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	_, err = client.Properties(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected APIError from token endpoint, got %v", err)
	}
}
