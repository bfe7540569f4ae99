// Package portal defines the surface of the hosted GIS content-management
// platform that the migration core depends on. Remote objects are normalized
// into the typed records below at this boundary; nothing above it touches a
// raw API response.
package portal

import (
	"context"
	"io"
)

// Mode describes the deployment topology of a portal instance.
type Mode string

const (
	// ModeSingleTenant is a self-hosted, single-organization deployment.
	ModeSingleTenant Mode = "singletenant"
	// ModeMultiTenant is a cloud-hosted deployment where many organizations
	// share one portal.
	ModeMultiTenant Mode = "multitenant"
)

// AccessLevel is the visibility scope of a group. Its meaning differs across
// deployment topologies: a single-tenant portal has no "org" scope.
type AccessLevel string

const (
	AccessPrivate AccessLevel = "private"
	AccessOrg     AccessLevel = "org"
	AccessPublic  AccessLevel = "public"
)

// Properties are the deployment properties of a portal instance.
type Properties struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PortalMode Mode   `json:"portalMode"`
	IsPortal   bool   `json:"isPortal"`
}

// HasOrgID reports whether the portal is bound to an organization.
func (p *Properties) HasOrgID() bool {
	return p != nil && p.ID != ""
}

// UserRecord is a normalized remote user.
type UserRecord struct {
	ID          string        `json:"id"`
	Username    string        `json:"username"`
	FullName    string        `json:"fullName"`
	Email       string        `json:"email"`
	Description string        `json:"description"`
	Thumbnail   string        `json:"thumbnail"`
	RoleID      string        `json:"roleId"`
	Provider    string        `json:"provider"`
	IDPUsername string        `json:"idpUsername"`
	Level       string        `json:"level"`
	UserType    string        `json:"userType"`
	OrgID       string        `json:"orgId"`
	FavGroupID  string        `json:"favGroupId"`
	Groups      []GroupRecord `json:"groups,omitempty"`
}

// GroupRecord is a normalized remote group.
type GroupRecord struct {
	ID               string      `json:"id"`
	Title            string      `json:"title"`
	Description      string      `json:"description"`
	Tags             []string    `json:"tags"`
	Snippet          string      `json:"snippet"`
	Phone            string      `json:"phone"`
	Access           AccessLevel `json:"access"`
	IsInvitationOnly bool        `json:"isInvitationOnly"`
	Owner            string      `json:"owner"`
}

// GroupDefinition is the payload for creating a group.
type GroupDefinition struct {
	Title            string      `json:"title" validate:"required"`
	Description      string      `json:"description"`
	Tags             []string    `json:"tags"`
	Snippet          string      `json:"snippet"`
	Phone            string      `json:"phone"`
	Access           AccessLevel `json:"access" validate:"required,oneof=private org public"`
	IsInvitationOnly bool        `json:"isInvitationOnly"`
}

// GroupMembership is the current ownership and member list of a group.
type GroupMembership struct {
	Owner string   `json:"owner"`
	Users []string `json:"users"`
}

// Folder is a content folder belonging to a user.
type Folder struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Username string `json:"username"`
}

// ItemRecord is a normalized content item.
type ItemRecord struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Type     string   `json:"type"`
	Owner    string   `json:"owner"`
	Tags     []string `json:"tags"`
	URL      string   `json:"url"`
	Created  int64    `json:"created"`
	Modified int64    `json:"modified"`
}

// ItemDefinition is the payload for creating or looking up an item.
type ItemDefinition struct {
	Title string   `json:"title" validate:"required"`
	Type  string   `json:"type"`
	Tags  []string `json:"tags"`
}

// PublishOptions control how an uploaded file is published as a layer.
type PublishOptions struct {
	Name          string            `json:"name,omitempty"`
	AddressFields map[string]string `json:"addressFields,omitempty"`
}

// Portal is the remote platform API the migration core calls. The search
// result ordering is whatever the remote service returns; it is not
// guaranteed stable between calls.
type Portal interface {
	Properties(ctx context.Context) (*Properties, error)

	SearchUsers(ctx context.Context, query string) ([]*UserRecord, error)
	Me(ctx context.Context) (*UserRecord, error)
	GetUser(ctx context.Context, username string) (*UserRecord, error)
	UserFolders(ctx context.Context, username string) ([]*Folder, error)
	UserItems(ctx context.Context, username string) ([]*ItemRecord, error)

	SearchGroups(ctx context.Context, query string) ([]*GroupRecord, error)
	CreateGroup(ctx context.Context, def *GroupDefinition) (*GroupRecord, error)
	GroupMembers(ctx context.Context, groupID string) (*GroupMembership, error)
	ReassignGroup(ctx context.Context, groupID, owner string) error
	AddGroupMembers(ctx context.Context, groupID string, users []string) error

	SearchItems(ctx context.Context, query, itemType string) ([]*ItemRecord, error)
	AddItem(ctx context.Context, def *ItemDefinition, folder string, data io.Reader) (*ItemRecord, error)
	PublishItem(ctx context.Context, itemID string, opts *PublishOptions) (*ItemRecord, error)
	MoveItem(ctx context.Context, itemID, folder string) error
	DeleteItem(ctx context.Context, itemID string) error
	CreateFolder(ctx context.Context, username, name string) (*Folder, error)
}
