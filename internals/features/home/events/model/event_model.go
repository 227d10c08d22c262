package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DateLayout: format tanggal event di wire & snapshot.
const DateLayout = "2006-01-02"

type EventModel struct {
	EventID          uuid.UUID      `gorm:"column:event_id;primaryKey;type:uuid"`
	EventTitle       string         `gorm:"column:event_title;type:varchar(255);not null"`
	EventDescription string         `gorm:"column:event_description;type:text"`
	EventDate        datatypes.Date `gorm:"column:event_date;not null;index"`
	EventTime        *string        `gorm:"column:event_time;type:varchar(50)"`
	EventLocation    *string        `gorm:"column:event_location;type:varchar(255)"`
	EventIsRecurring bool           `gorm:"column:event_is_recurring;not null;default:false"`
	EventPublished   bool           `gorm:"column:event_published;not null;default:false;index"`
	EventCreatedAt   time.Time      `gorm:"column:event_created_at;autoCreateTime"`
	EventUpdatedAt   time.Time      `gorm:"column:event_updated_at;autoUpdateTime"`
}

func (EventModel) TableName() string {
	return "events"
}

func (m *EventModel) BeforeCreate(tx *gorm.DB) error {
	if m.EventID == uuid.Nil {
		m.EventID = uuid.New()
	}
	return nil
}

// ParseDate: "YYYY-MM-DD" → datatypes.Date (UTC).
func ParseDate(s string) (datatypes.Date, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return datatypes.Date{}, err
	}
	return datatypes.Date(t), nil
}

func FormatDate(d datatypes.Date) string {
	return time.Time(d).Format(DateLayout)
}
