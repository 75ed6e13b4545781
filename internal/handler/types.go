package handler

// PhotoVerifyRequest is the body for the fixed photo kinds (bed, sunlight,
// hydration).
type PhotoVerifyRequest struct {
	ImageBase64 string `json:"imageBase64" binding:"required"`
}

// CustomPhotoVerifyRequest is the body for user-defined photo habits.
type CustomPhotoVerifyRequest struct {
	ImageBase64       string `json:"imageBase64" binding:"required"`
	HabitName         string `json:"habitName" binding:"required"`
	AIPrompt          string `json:"aiPrompt"`
	AllowsScreenshots bool   `json:"allowsScreenshots"`
}

// CustomVideoVerifyRequest is the body for user-defined video habits. Frames
// are chronological samples of a short clip; duration is reported by the
// client and passed to the prompt for context only.
type CustomVideoVerifyRequest struct {
	Frames    []string `json:"frames" binding:"required,min=1"`
	HabitName string   `json:"habitName" binding:"required"`
	AIPrompt  string   `json:"aiPrompt"`
	Duration  int      `json:"duration"`
}

// BedVerdictResponse mirrors the bed response schema.
type BedVerdictResponse struct {
	IsMade          bool   `json:"is_made"`
	DetectedSubject string `json:"detected_subject"`
	Feedback        string `json:"feedback"`
}

// SunlightVerdictResponse mirrors the sunlight response schema.
type SunlightVerdictResponse struct {
	IsOutside       bool   `json:"is_outside"`
	DetectedSubject string `json:"detected_subject"`
	Feedback        string `json:"feedback"`
}

// HydrationVerdictResponse mirrors the hydration response schema.
type HydrationVerdictResponse struct {
	IsWater         bool   `json:"is_water"`
	DetectedSubject string `json:"detected_subject"`
	Feedback        string `json:"feedback"`
}

// CustomPhotoVerdictResponse mirrors the custom photo response schema.
type CustomPhotoVerdictResponse struct {
	IsVerified      bool   `json:"is_verified"`
	DetectedSubject string `json:"detected_subject"`
	Feedback        string `json:"feedback"`
}

// CustomVideoVerdictResponse mirrors the custom video response schema.
type CustomVideoVerdictResponse struct {
	IsVerified     bool   `json:"is_verified"`
	DetectedAction string `json:"detected_action"`
	Confidence     string `json:"confidence"`
	Feedback       string `json:"feedback"`
}
