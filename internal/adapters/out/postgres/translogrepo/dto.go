// Package translogrepo provides data transfer objects and mapping functions for
// the transition log. The log is append-only: the repository exposes no update
// or delete path, and rows are written exactly once per applied transition.
package translogrepo

import (
	"time"

	"waybill/internal/core/domain/model/kernel"
	"waybill/internal/core/domain/model/waybill"

	"github.com/google/uuid"
)

// TransitionLogDTO represents the database structure for transition log entries.
// The auto-incremented id doubles as the chronological order of a waybill's
// history.
type TransitionLogDTO struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	WaybillID   uuid.UUID `gorm:"type:uuid;index:idx_transition_logs_waybill_time"`
	FromStatus  int
	ToStatus    int
	Operator    string
	OperateTime time.Time `gorm:"index:idx_transition_logs_waybill_time"`
	Remark      string
}

// TableName specifies the database table name for transition log entries.
// Overrides GORM's default naming convention to use "transition_logs".
func (TransitionLogDTO) TableName() string {
	return "transition_logs"
}

// fromDomain converts a transition log entry to its database representation.
// The id is left zero so storage assigns it on insert.
func fromDomain(entry *waybill.TransitionLogEntry) TransitionLogDTO {
	return TransitionLogDTO{
		WaybillID:   entry.WaybillID().Bytes(),
		FromStatus:  int(entry.From()),
		ToStatus:    int(entry.To()),
		Operator:    entry.Operator(),
		OperateTime: entry.OperateTime(),
		Remark:      entry.Remark(),
	}
}

// toDomain converts a database DTO to a transition log entry using RestoreTransitionLogEntry.
func toDomain(dto TransitionLogDTO) (*waybill.TransitionLogEntry, error) {
	waybillID, err := kernel.UUIDFromBytes(dto.WaybillID[:])
	if err != nil {
		return nil, err
	}

	return waybill.RestoreTransitionLogEntry(
		dto.ID,
		waybillID,
		waybill.Status(dto.FromStatus),
		waybill.Status(dto.ToStatus),
		dto.Operator,
		dto.Remark,
		dto.OperateTime,
	)
}
