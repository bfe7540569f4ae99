// internal/model/group.go
package model

import "github.com/bxgeo/portalmigrate/internal/portal"

// Group is the local snapshot representation of a portal group. Groups are
// never mutated after construction; migration builds a translated copy
// instead.
type Group struct {
	ID               string             `json:"id"`
	Title            string             `json:"title"`
	Description      string             `json:"description"`
	Tags             []string           `json:"tags"`
	Snippet          []string           `json:"snippet"`
	Phone            string             `json:"phone"`
	Access           portal.AccessLevel `json:"access"`
	IsInvitationOnly bool               `json:"isInvitationOnly"`
}

// GroupFromRecord normalizes a portal group record.
//
// Snippet is populated from the tags, not from the record's snippet field.
// Snapshots written by every released version carry tags in both fields and
// downstream consumers read them that way, so the shape is kept as is.
func GroupFromRecord(rec *portal.GroupRecord) Group {
	return Group{
		ID:               rec.ID,
		Title:            rec.Title,
		Description:      rec.Description,
		Tags:             append([]string(nil), rec.Tags...),
		Snippet:          append([]string(nil), rec.Tags...),
		Phone:            rec.Phone,
		Access:           rec.Access,
		IsInvitationOnly: rec.IsInvitationOnly,
	}
}
