// internal/model/content.go
package model

import "github.com/bxgeo/portalmigrate/internal/portal"

// UserContent is the snapshot of one user's content: their folders and
// root-level items.
type UserContent struct {
	Folders []*portal.Folder     `json:"folders"`
	Items   []*portal.ItemRecord `json:"items"`
	UserID  string               `json:"user_id"`
}
