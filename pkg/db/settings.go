package db

const DefaultReminderTime = "09:00"

// EnsureReminderSettings returns the user's reminder settings, creating the
// 1:1 row with defaults on first touch. Callers on the user-creation path
// invoke this so every user always has a settings row.
func EnsureReminderSettings(userID int64) (*ReminderSettings, error) {
	settings := ReminderSettings{
		UserID:             userID,
		Enabled:            true,
		ReminderTime:       DefaultReminderTime,
		EmailNotifications: true,
	}
	if err := DB.Where("user_id = ?", userID).FirstOrCreate(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}
