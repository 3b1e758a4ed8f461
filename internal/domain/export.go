package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExportFormat is the serialization of a diary export.
type ExportFormat string

const (
	ExportJSON ExportFormat = "json"
	ExportCSV  ExportFormat = "csv"
)

// ContentType returns the MIME type stored with the exported object.
func (f ExportFormat) ContentType() string {
	if f == ExportCSV {
		return "text/csv"
	}
	return "application/json"
}

// Export stores metadata about a diary export. The file itself lives in S3.
type Export struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	S3ObjectKey string             `bson:"s3ObjectKey" json:"-"` // internal use
	Format      ExportFormat       `bson:"format" json:"format"`
	EntryCount  int                `bson:"entryCount" json:"entryCount"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
