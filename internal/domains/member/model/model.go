package model

import "inspirehub/shared/model"

const (
	TableName  = "members"
	EntityName = "member"

	FieldID        = "id"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldLevel     = "level"
	FieldFullName  = "full_name"
	FieldCompany   = "company"
	FieldPhone     = "phone"
	FieldVerified  = "verified"
	FieldLastLogin = "last_login"
	FieldActive    = "active"
)

type Member struct {
	ID        string  `db:"id"`
	Email     string  `db:"email"`
	Password  string  `db:"password"`
	Level     string  `db:"level"`
	FullName  string  `db:"full_name"`
	Company   *string `db:"company"`
	Phone     *string `db:"phone"`
	Verified  bool    `db:"verified"`
	LastLogin *string `db:"last_login"`
	Active    bool    `db:"active"`
	model.Metadata
}
