package dto

// RecommendationRequest deliberately carries no `required` tag: the live
// frontend always sends preferences, and the endpoint has historically
// accepted an empty string. Kept as-is instead of silently tightening.
type RecommendationRequest struct {
	Preferences string `json:"preferences"`
}

// RecommendationResponse carries the model's free-text ranked list. The
// 🎬/Dopasowanie/Dlaczego block format is a prompt convention, not parsed or
// enforced here.
type RecommendationResponse struct {
	Recommendations string `json:"recommendations"`
}
