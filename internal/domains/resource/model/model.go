package model

import "inspirehub/shared/model"

const (
	TableName  = "resources"
	EntityName = "resource"

	FieldID         = "id"
	FieldName       = "name"
	FieldKind       = "kind"
	FieldLocation   = "location"
	FieldCapacity   = "capacity"
	FieldHourlyRate = "hourly_rate"
	FieldImage      = "image"
	FieldActive     = "active"
)

// Resource kinds the space rents out.
const (
	KindMeetingRoom   = "meeting_room"
	KindDedicatedDesk = "dedicated_desk"
	KindPrivateOffice = "private_office"
	KindVirtualOffice = "virtual_office"
)

type Resource struct {
	ID         string `db:"id"`
	Name       string `db:"name"`
	Kind       string `db:"kind"`
	Location   string `db:"location"`
	Capacity   int    `db:"capacity"`
	HourlyRate int64  `db:"hourly_rate"`
	Image      string `db:"image"`
	Active     bool   `db:"active"`
	model.Metadata
}
