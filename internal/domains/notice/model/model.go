package model

import "inspirehub/shared/model"

const (
	TableName  = "notices"
	EntityName = "notice"

	FieldID        = "id"
	FieldMemberID  = "member_id"
	FieldTitle     = "title"
	FieldBody      = "body"
	FieldAmountDue = "amount_due"
	FieldDueDate   = "due_date"
	FieldSettled   = "settled"
)

// Notice is a billing notice addressed to one member. AmountDue is in the
// smallest currency unit.
type Notice struct {
	ID        string `db:"id"`
	MemberID  string `db:"member_id"`
	Title     string `db:"title"`
	Body      string `db:"body"`
	AmountDue int64  `db:"amount_due"`
	DueDate   string `db:"due_date"`
	Settled   bool   `db:"settled"`
	model.Metadata
}
