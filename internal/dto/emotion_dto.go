package dto

// CreateEmotionLogRequest records the user's emotions for today. Several
// emotion ids may be submitted at once; each becomes its own log row sharing
// today's date.
type CreateEmotionLogRequest struct {
	EmotionIDs []uint  `json:"emotion_ids"`
	Note       *string `json:"note"`
}

// EmotionRef is the catalog slice attached to a log row.
type EmotionRef struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// EmotionLogItem is one row of the log history listing.
type EmotionLogItem struct {
	LogID   uint       `json:"log_id"`
	LogDate string     `json:"log_date"`
	Note    *string    `json:"note"`
	Emotion EmotionRef `json:"emotion"`
}
