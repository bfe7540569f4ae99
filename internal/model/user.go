// internal/model/user.go
package model

import (
	"fmt"
	"strings"

	"github.com/bxgeo/portalmigrate/internal/domain"
	"github.com/bxgeo/portalmigrate/internal/portal"
)

// User is the local snapshot representation of a portal user. Identity key
// is ID within one organization; Email is the correspondence key across
// organizations and is kept exactly as the portal returned it.
type User struct {
	ID              string  `json:"id"`
	Username        string  `json:"username"`
	FullName        string  `json:"full_name"`
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	Email           string  `json:"email"`
	Description     string  `json:"description"`
	Thumbnail       string  `json:"thumbnail"`
	Role            string  `json:"role"`
	Provider        string  `json:"provider"`
	IDPUsername     string  `json:"idp_username"`
	Level           string  `json:"level"`
	UserType        string  `json:"user_type"`
	OrgID           string  `json:"org_id"`
	FavoriteGroupID string  `json:"favorite_group_id"`
	Credits         float64 `json:"credits"`
	Groups          []Group `json:"groups"`
}

// UserFromRecord normalizes a portal user record. Credits are not part of
// the user search response, so they are defaulted to -1. Fails when the full
// name cannot be split into first and last name.
func UserFromRecord(rec *portal.UserRecord) (*User, error) {
	first, last, err := SplitFullName(rec.FullName)
	if err != nil {
		return nil, err
	}

	user := &User{
		ID:              rec.ID,
		Username:        rec.Username,
		FullName:        rec.FullName,
		FirstName:       first,
		LastName:        last,
		Email:           rec.Email,
		Description:     rec.Description,
		Thumbnail:       rec.Thumbnail,
		Role:            rec.RoleID,
		Provider:        rec.Provider,
		IDPUsername:     rec.IDPUsername,
		Level:           rec.Level,
		UserType:        rec.UserType,
		OrgID:           rec.OrgID,
		FavoriteGroupID: rec.FavGroupID,
		Credits:         -1,
		Groups:          []Group{},
	}

	for i := range rec.Groups {
		user.Groups = append(user.Groups, GroupFromRecord(&rec.Groups[i]))
	}
	return user, nil
}

// SplitFullName derives first and last name from a comma-separated full
// name. Directory entries come in three shapes: "Last, First",
// "Last, Suffix, First" (last segment is the first name), and a single
// token used for both.
func SplitFullName(fullName string) (first, last string, err error) {
	if fullName == "" {
		return "", "", fmt.Errorf("%w: empty full name", domain.ErrInvalidFullName)
	}

	parts := strings.Split(fullName, ",")
	switch {
	case len(parts) > 2:
		last = parts[0]
		first = parts[len(parts)-1]
	case len(parts) == 2:
		last = parts[0]
		first = parts[1]
	default:
		last = parts[0]
		first = parts[0]
	}
	return first, last, nil
}
