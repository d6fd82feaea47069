package postgres

import (
	"time"

	"gorm.io/datatypes"
)

// Request counters, one row per endpoint and method
type Tracking struct {
	ID             uint                       `gorm:"primaryKey;autoIncrement" json:"id"`
	EndpointAccess string                     `gorm:"size:255;not null;uniqueIndex:idx_tracking_endpoint_method,priority:1" json:"endpointAccess"`
	RequestMethod  string                     `gorm:"size:10;not null;uniqueIndex:idx_tracking_endpoint_method,priority:2" json:"requestMethod"`
	StatusCode     int                        `gorm:"not null" json:"statusCode"`
	RequestCount   int                        `gorm:"not null" json:"requestCount"`
	ResponseTimes  datatypes.JSONSlice[int64] `gorm:"type:jsonb;not null" json:"responseTimes"`
	UserID         *string                    `gorm:"size:36" json:"userId,omitempty"`
	Timestamp      time.Time                  `gorm:"not null" json:"timestamp"`
}

func (Tracking) TableName() string {
	return "tracking"
}
