package model

import "inspirehub/shared/model"

const (
	TableName  = "documents"
	EntityName = "document"

	FieldID          = "id"
	FieldMemberID    = "member_id"
	FieldTitle       = "title"
	FieldKind        = "kind"
	FieldFileName    = "file_name"
	FieldFileURL     = "file_url"
	FieldContentType = "content_type"

	KindContract = "contract"
	KindNotice   = "notice"
	KindOther    = "other"
)

// Document is a file attached to a member: a signed contract, a billing
// notice PDF, or anything else the staff files against the account. The
// bytes live in object storage; this row holds the pointer.
type Document struct {
	ID          string `db:"id"`
	MemberID    string `db:"member_id"`
	Title       string `db:"title"`
	Kind        string `db:"kind"`
	FileName    string `db:"file_name"`
	FileURL     string `db:"file_url"`
	ContentType string `db:"content_type"`
	model.Metadata
}
