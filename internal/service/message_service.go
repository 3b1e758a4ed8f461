package service

import (
	"alcyxob/nutrition-app/internal/domain"
	"alcyxob/nutrition-app/internal/repository"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrMessageNotFound = errors.New("motivational message not found")
	ErrInvalidMessage  = errors.New("invalid motivational message")
)

// Default schedule of the built-in meal reminders.
const (
	breakfastReminderAt = "08:00"
	lunchReminderAt     = "12:30"
	dinnerReminderAt    = "18:30"
)

var defaultMessageTexts = map[domain.MessageType][]string{
	domain.MessageBreakfast: {
		"Start your day right with a nutritious breakfast!",
		"Good morning! Remember that breakfast is the most important meal of the day.",
		"A healthy breakfast sets you up for success all day long.",
		"Time for breakfast! Fuel your body for the day ahead.",
		"Don't skip breakfast today - your body needs energy to start the day!",
	},
	domain.MessageLunch: {
		"It's lunchtime! Take a break and enjoy a balanced meal.",
		"Don't forget to eat lunch today - your body needs refueling!",
		"A nutritious lunch helps maintain your energy throughout the day.",
		"Lunchtime reminder: Eating regularly helps maintain stable blood sugar levels.",
		"Take time to enjoy your lunch - mindful eating improves digestion!",
	},
	domain.MessageDinner: {
		"Dinner time! End your day with a balanced, nutritious meal.",
		"Remember to eat dinner at a reasonable time for better sleep.",
		"A light, healthy dinner is best for good sleep and digestion.",
		"Don't skip dinner - your body needs nutrients to recover overnight.",
		"Enjoy a mindful dinner without distractions for better digestion.",
	},
	domain.MessageGeneral: {
		"Staying hydrated is just as important as eating well!",
		"Remember to include fruits and vegetables in your meals today.",
		"Eating regularly helps maintain your energy and focus.",
		"Listen to your body's hunger cues - eat when you're hungry, stop when you're full.",
		"Small, balanced meals throughout the day can help maintain steady energy levels.",
		"Don't forget to enjoy your food - satisfaction is an important part of nutrition!",
		"Eating a variety of foods ensures you get all the nutrients you need.",
		"Great job tracking your meals! Consistency is key to healthy habits.",
	},
}

// DefaultMessages returns the built-in reminders for userID, meal reminders
// first in day order.
func DefaultMessages(userID primitive.ObjectID) []domain.MotivationalMessage {
	schedule := []struct {
		messageType domain.MessageType
		at          string
	}{
		{domain.MessageBreakfast, breakfastReminderAt},
		{domain.MessageLunch, lunchReminderAt},
		{domain.MessageDinner, dinnerReminderAt},
		{domain.MessageGeneral, ""},
	}
	var out []domain.MotivationalMessage
	for _, s := range schedule {
		for _, text := range defaultMessageTexts[s.messageType] {
			out = append(out, domain.MotivationalMessage{
				UserID:       userID,
				Message:      text,
				MessageType:  s.messageType,
				ScheduledFor: s.at,
			})
		}
	}
	return out
}

// MessageInput is a user-authored motivational message.
type MessageInput struct {
	Message      string
	MessageType  string
	ScheduledFor string
}

type MessageService interface {
	CreateMessage(ctx context.Context, userID primitive.ObjectID, in MessageInput) (*domain.MotivationalMessage, error)
	ListMessages(ctx context.Context, userID primitive.ObjectID, unreadOnly bool) ([]domain.MotivationalMessage, error)
	// GetTimedMessages returns messages due at the current minute plus general ones.
	GetTimedMessages(ctx context.Context, userID primitive.ObjectID) ([]domain.MotivationalMessage, error)
	// GetFeed merges unread and timed messages without duplicates.
	GetFeed(ctx context.Context, userID primitive.ObjectID) ([]domain.MotivationalMessage, error)
	MarkAsRead(ctx context.Context, userID, id primitive.ObjectID) error
	DeleteMessage(ctx context.Context, userID, id primitive.ObjectID) error
	// SeedDefaultMessages gives the user the built-in reminders and returns how many were added.
	SeedDefaultMessages(ctx context.Context, userID primitive.ObjectID) (int, error)
}

type messageService struct {
	messageRepo repository.MotivationalMessageRepository
	now         Clock
}

func NewMessageService(messageRepo repository.MotivationalMessageRepository, now Clock) MessageService {
	return &messageService{messageRepo: messageRepo, now: clockOrNow(now)}
}

func (s *messageService) CreateMessage(ctx context.Context, userID primitive.ObjectID, in MessageInput) (*domain.MotivationalMessage, error) {
	text := strings.TrimSpace(in.Message)
	if text == "" {
		return nil, fmt.Errorf("%w: message is required", ErrInvalidMessage)
	}
	messageType, ok := domain.ParseMessageType(in.MessageType)
	if !ok {
		return nil, fmt.Errorf("%w: unknown message type %q", ErrInvalidMessage, in.MessageType)
	}
	at := strings.TrimSpace(in.ScheduledFor)
	if at != "" {
		if _, err := time.Parse(domain.TimeOfDayLayout, at); err != nil {
			return nil, fmt.Errorf("%w: scheduledFor must be HH:MM", ErrInvalidMessage)
		}
	}

	msgs := []domain.MotivationalMessage{{
		UserID:       userID,
		Message:      text,
		MessageType:  messageType,
		ScheduledFor: at,
	}}
	if _, err := s.messageRepo.CreateMany(ctx, msgs); err != nil {
		return nil, err
	}
	return &msgs[0], nil
}

func (s *messageService) ListMessages(ctx context.Context, userID primitive.ObjectID, unreadOnly bool) ([]domain.MotivationalMessage, error) {
	return s.messageRepo.List(ctx, repository.MessageFilter{UserID: userID, UnreadOnly: unreadOnly})
}

func (s *messageService) GetTimedMessages(ctx context.Context, userID primitive.ObjectID) ([]domain.MotivationalMessage, error) {
	return s.messageRepo.ListTimed(ctx, userID, s.now().Format(domain.TimeOfDayLayout))
}

func (s *messageService) GetFeed(ctx context.Context, userID primitive.ObjectID) ([]domain.MotivationalMessage, error) {
	unread, err := s.ListMessages(ctx, userID, true)
	if err != nil {
		return nil, err
	}
	timed, err := s.GetTimedMessages(ctx, userID)
	if err != nil {
		return nil, err
	}

	seen := make(map[primitive.ObjectID]struct{}, len(unread))
	feed := make([]domain.MotivationalMessage, 0, len(unread)+len(timed))
	for _, group := range [][]domain.MotivationalMessage{unread, timed} {
		for _, m := range group {
			if _, dup := seen[m.ID]; dup {
				continue
			}
			seen[m.ID] = struct{}{}
			feed = append(feed, m)
		}
	}
	return feed, nil
}

func (s *messageService) MarkAsRead(ctx context.Context, userID, id primitive.ObjectID) error {
	if err := s.messageRepo.MarkRead(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrMessageNotFound
		}
		return err
	}
	return nil
}

func (s *messageService) DeleteMessage(ctx context.Context, userID, id primitive.ObjectID) error {
	if err := s.messageRepo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrMessageNotFound
		}
		return err
	}
	return nil
}

func (s *messageService) SeedDefaultMessages(ctx context.Context, userID primitive.ObjectID) (int, error) {
	ids, err := s.messageRepo.CreateMany(ctx, DefaultMessages(userID))
	if err != nil {
		return 0, fmt.Errorf("seeding motivational messages: %w", err)
	}
	return len(ids), nil
}
