package models

import "time"

// LoginEvent is an audit row written on every successful login.
type LoginEvent struct {
	ID         string    `json:"id" gorm:"type:uuid;primaryKey"`
	UserID     string    `json:"user_id" gorm:"column:user_id;type:uuid;not null;index"`
	LoggedInAt time.Time `json:"logged_in_at" gorm:"column:logged_in_at;not null"`
	IPAddress  string    `json:"ip_address" gorm:"column:ip_address;type:varchar(64)"`
	UserAgent  string    `json:"user_agent" gorm:"column:user_agent;type:text"`
	DeviceType string    `json:"device_type" gorm:"column:device_type;type:varchar(20)"`
	Browser    string    `json:"browser" gorm:"type:varchar(30)"`
	OS         string    `json:"os" gorm:"column:os;type:varchar(30)"`
}

func (LoginEvent) TableName() string {
	return "login_events"
}
