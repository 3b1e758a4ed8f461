package domain

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TimeOfDayLayout is the "HH:MM" format of ScheduledFor.
const TimeOfDayLayout = "15:04"

// MessageType ties a motivational message to a meal, or to no meal at all.
type MessageType string

const (
	MessageBreakfast MessageType = "breakfast"
	MessageLunch     MessageType = "lunch"
	MessageDinner    MessageType = "dinner"
	MessageGeneral   MessageType = "general"
)

// ParseMessageType matches s case-insensitively.
func ParseMessageType(s string) (MessageType, bool) {
	switch mt := MessageType(strings.ToLower(strings.TrimSpace(s))); mt {
	case MessageBreakfast, MessageLunch, MessageDinner, MessageGeneral:
		return mt, true
	default:
		return "", false
	}
}

// MotivationalMessage is a short nudge shown to a user. General messages
// are always eligible; the others are shown at their ScheduledFor time.
type MotivationalMessage struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID       primitive.ObjectID `bson:"userId" json:"userId"`
	Message      string             `bson:"message" json:"message"`
	MessageType  MessageType        `bson:"messageType" json:"messageType"`
	IsRead       bool               `bson:"isRead" json:"isRead"`
	ScheduledFor string             `bson:"scheduledFor,omitempty" json:"scheduledFor,omitempty"` // HH:MM
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}
