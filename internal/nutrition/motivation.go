package nutrition

// MotivationText returns the encouragement line shown next to a streak.
func MotivationText(streak int) string {
	switch {
	case streak <= 0:
		return "Start your streak today!"
	case streak == 1:
		return "Great start! Keep going!"
	case streak < 5:
		return "You're building momentum!"
	case streak < 10:
		return "Impressive streak! You're doing great!"
	case streak < 30:
		return "Amazing dedication! Keep it up!"
	default:
		return "Incredible commitment! You're unstoppable!"
	}
}
