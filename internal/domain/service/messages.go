package service

// Notification templates. {members} is replaced with a chunk of mentions.
const (
	DailyUnverifiedTemplate = "⚠️ Members who have not checked in yet today:\n{members}\nPost your proof before the window closes!"

	YesterdayUnverifiedTemplate = "⚠️ Members who did not check in yesterday:\n{members}\nTime to pay the penalty!"

	FridayUnverifiedTemplate = "⚠️ Members who did not check in last Friday:\n{members}\nTime to pay the penalty!"

	AllVerifiedDailyMessage = "🎉 Everyone has checked in today! Keep it up tomorrow! 💪"

	AllVerifiedYesterdayMessage = "🎉 Everyone checked in yesterday! Great consistency, keep going today! 💪"

	membersPlaceholder = "{members}"
)
